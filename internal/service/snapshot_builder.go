package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/academics"
	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/models"
	"github.com/trackademic/trackademic-api/internal/repository"
)

// SnapshotBuilder loads every collection the engine consumes for one
// owner and assembles the immutable snapshot the aggregate endpoints
// compute from.
type SnapshotBuilder interface {
	Build(ctx context.Context, ownerID string) (*academics.Snapshot, error)
}

type snapshotBuilder struct {
	classes   repository.ClassRepository
	work      repository.AssignmentRepository
	weights   repository.WeightRepository
	semesters repository.SemesterRepository
	core      repository.CoreRequirementRepository
	major     repository.MajorRequirementRepository
	minor     repository.MinorRequirementRepository
	profiles  repository.ProfileRepository
}

// NewSnapshotBuilder wires the engine's inputs to their repositories.
func NewSnapshotBuilder(
	classes repository.ClassRepository,
	work repository.AssignmentRepository,
	weights repository.WeightRepository,
	semesters repository.SemesterRepository,
	core repository.CoreRequirementRepository,
	major repository.MajorRequirementRepository,
	minor repository.MinorRequirementRepository,
	profiles repository.ProfileRepository,
) SnapshotBuilder {
	return &snapshotBuilder{
		classes:   classes,
		work:      work,
		weights:   weights,
		semesters: semesters,
		core:      core,
		major:     major,
		minor:     minor,
		profiles:  profiles,
	}
}

func (b *snapshotBuilder) Build(ctx context.Context, ownerID string) (*academics.Snapshot, error) {
	active, err := b.classes.ListActive(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	completed, err := b.classes.ListCompleted(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	graded, err := b.work.ListGraded(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	pending, err := b.work.ListPending(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	semesters, err := b.semesters.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	core, err := b.core.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	major, err := b.major.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	minor, err := b.minor.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	snapshot := &academics.Snapshot{
		Classes:   classInfoSlice(active),
		Completed: classInfoSlice(completed),
		Weights:   map[string]float64{},
	}

	for _, a := range graded {
		if a.EarnedPoints == nil {
			continue
		}
		snapshot.Graded = append(snapshot.Graded, academics.GradedAssignment{
			ClassID:      a.ClassID,
			Category:     a.Category,
			TotalPoints:  a.TotalPoints,
			EarnedPoints: *a.EarnedPoints,
		})
	}
	for _, a := range pending {
		snapshot.Pending = append(snapshot.Pending, academics.PendingAssignment{
			ID:          a.ID,
			ClassID:     a.ClassID,
			Category:    a.Category,
			TotalPoints: a.TotalPoints,
		})
	}

	doc, err := b.weights.Get(ctx, ownerID)
	switch {
	case err == nil:
		for key, value := range doc.Weights {
			if weight, ok := value.(float64); ok {
				snapshot.Weights[key] = weight
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no weights configured yet
	default:
		return nil, err
	}

	for _, sem := range semesters {
		snapshot.Semesters = append(snapshot.Semesters, academics.SemesterPlan{
			Name:    sem.Name,
			Courses: dto.DecodePlannedCourses(sem.Courses),
		})
	}

	for _, row := range core {
		snapshot.Core = append(snapshot.Core, academics.RequirementCourse{
			CourseCode:  row.CourseCode,
			CreditHours: row.CreditHours,
			Status:      row.Status,
			IsTransfer:  row.IsTransfer,
		})
	}
	for _, row := range major {
		snapshot.Major = append(snapshot.Major, academics.RequirementCourse{
			CourseCode:  row.CourseCode,
			CreditHours: row.CreditHours,
			IsCompleted: row.IsCompleted,
			IsTransfer:  row.IsTransfer,
		})
	}
	for _, row := range minor {
		snapshot.Minor = append(snapshot.Minor, academics.RequirementCourse{
			CourseCode:  row.CourseCode,
			CreditHours: row.CreditHours,
			IsCompleted: row.IsCompleted,
			IsTransfer:  row.IsTransfer,
		})
	}

	profile, err := b.profiles.Get(ctx, ownerID)
	switch {
	case err == nil:
		snapshot.Profile = academics.Profile{
			CurrentGPA:              profile.CurrentGPA,
			CompletedCreditHours:    profile.CompletedCreditHours,
			DegreeCreditRequirement: profile.DegreeCreditRequirement,
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// defaults apply
	default:
		return nil, err
	}

	return snapshot, nil
}

func classInfoSlice(classes []models.Class) []academics.ClassInfo {
	infos := make([]academics.ClassInfo, 0, len(classes))
	for _, class := range classes {
		infos = append(infos, academics.ClassInfo{
			ID:           class.ID,
			CourseCode:   class.CourseCode,
			CreditHours:  class.CreditHours,
			Category:     class.Category,
			CoreCategory: class.CoreCategory,
			IsCompleted:  class.IsCompleted,
			IsTransfer:   class.IsTransfer,
			FinalGPA:     class.FinalGPA,
			GradePercent: class.Grade,
		})
	}

	return infos
}
