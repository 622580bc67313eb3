package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/models"
	"github.com/trackademic/trackademic-api/internal/repository"
)

const testOwner = "owner-1"

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Class{},
		&models.Assignment{},
		&models.Semester{},
		&models.CoreRequirement{},
		&models.MajorRequirement{},
		&models.MinorRequirement{},
		&models.UserProfile{},
		&models.DegreeSettings{},
		&models.CategoryWeightDoc{},
		&models.Note{},
		&models.Todo{},
		&models.Application{},
	))

	return db
}

func noopBroadcaster() ChangeBroadcaster {
	return NewChangeBroadcaster(nil, "", nil, zerolog.Nop())
}

func seedClass(t *testing.T, db *gorm.DB, ownerID string) models.Class {
	t.Helper()

	class := models.Class{
		OwnerID:     ownerID,
		CourseCode:  "CS101",
		CourseName:  "Intro to Computer Science",
		CreditHours: 3,
		Category:    models.CategoryMajor,
		IsActive:    true,
	}
	require.NoError(t, db.Create(&class).Error)

	return class
}

func TestAssignmentServiceCreateSingle(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, testOwner)

	svc := NewAssignmentService(
		repository.NewAssignmentRepository(db),
		repository.NewClassRepository(db),
		noopBroadcaster(),
		validator.New(),
		zerolog.Nop(),
	)

	created, err := svc.Create(context.Background(), testOwner, dto.AssignmentCreateRequest{
		ClassID: class.ID,
		Title:   "Essay Draft",
		DueDate: "2025-10-01T23:59:00Z",
	})
	require.NoError(t, err)
	require.Len(t, created, 1)
	require.Equal(t, "Essay Draft", created[0].Title)
	require.Equal(t, "Homework", created[0].Category)
	require.Equal(t, 100.0, created[0].TotalPoints)
	require.False(t, created[0].IsGraded)
}

func TestAssignmentServiceCreateRecurringExpandsWeekly(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, testOwner)

	svc := NewAssignmentService(
		repository.NewAssignmentRepository(db),
		repository.NewClassRepository(db),
		noopBroadcaster(),
		validator.New(),
		zerolog.Nop(),
	)

	end := "2025-09-22T23:59:00Z"
	created, err := svc.Create(context.Background(), testOwner, dto.AssignmentCreateRequest{
		ClassID:       class.ID,
		Title:         "Weekly Reading",
		Category:      "Reading",
		DueDate:       "2025-09-01T23:59:00Z",
		IsRecurring:   true,
		RecurrenceEnd: &end,
	})
	require.NoError(t, err)
	require.Len(t, created, 4)

	for i, row := range created {
		require.Equal(t, fmt.Sprintf("Weekly Reading %d", i+1), row.Title)
		expected := time.Date(2025, 9, 1+7*i, 23, 59, 0, 0, time.UTC)
		require.True(t, row.DueDate.Equal(expected), "row %d due %s", i, row.DueDate)
	}

	var count int64
	require.NoError(t, db.Model(&models.Assignment{}).Where("owner_id = ?", testOwner).Count(&count).Error)
	require.EqualValues(t, 4, count)
}

func TestAssignmentServiceCreateRecurringRejectsBackwardRange(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, testOwner)

	svc := NewAssignmentService(
		repository.NewAssignmentRepository(db),
		repository.NewClassRepository(db),
		noopBroadcaster(),
		validator.New(),
		zerolog.Nop(),
	)

	end := "2025-08-01T23:59:00Z"
	_, err := svc.Create(context.Background(), testOwner, dto.AssignmentCreateRequest{
		ClassID:       class.ID,
		Title:         "Weekly Reading",
		DueDate:       "2025-09-01T23:59:00Z",
		IsRecurring:   true,
		RecurrenceEnd: &end,
	})
	require.ErrorIs(t, err, ErrRecurrenceEndBeforeStart)
}

func TestAssignmentServiceGradeMarksCompleted(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, testOwner)

	svc := NewAssignmentService(
		repository.NewAssignmentRepository(db),
		repository.NewClassRepository(db),
		noopBroadcaster(),
		validator.New(),
		zerolog.Nop(),
	)

	created, err := svc.Create(context.Background(), testOwner, dto.AssignmentCreateRequest{
		ClassID: class.ID,
		Title:   "Quiz 1",
		DueDate: "2025-10-01T10:00:00Z",
	})
	require.NoError(t, err)

	graded, err := svc.Grade(context.Background(), testOwner, created[0].ID, dto.AssignmentGradeRequest{
		EarnedPoints: 88,
	})
	require.NoError(t, err)
	require.True(t, graded.IsGraded)
	require.True(t, graded.IsCompleted)
	require.NotNil(t, graded.EarnedPoints)
	require.Equal(t, 88.0, *graded.EarnedPoints)
}

func TestAssignmentServiceOwnerScoping(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, testOwner)

	svc := NewAssignmentService(
		repository.NewAssignmentRepository(db),
		repository.NewClassRepository(db),
		noopBroadcaster(),
		validator.New(),
		zerolog.Nop(),
	)

	created, err := svc.Create(context.Background(), testOwner, dto.AssignmentCreateRequest{
		ClassID: class.ID,
		Title:   "Lab Report",
		DueDate: "2025-10-05T10:00:00Z",
	})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), "someone-else", created[0].ID)
	require.ErrorIs(t, err, ErrAssignmentNotFound)
}
