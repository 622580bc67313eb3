package service

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/trackademic/trackademic-api/internal/academics"
	"github.com/trackademic/trackademic-api/internal/dto"
	"github.com/trackademic/trackademic-api/internal/models"
	"github.com/trackademic/trackademic-api/internal/repository"
)

func floatPointer(v float64) *float64 { return &v }

func newSnapshotBuilder(db *gorm.DB) SnapshotBuilder {
	return NewSnapshotBuilder(
		repository.NewClassRepository(db),
		repository.NewAssignmentRepository(db),
		repository.NewWeightRepository(db),
		repository.NewSemesterRepository(db),
		repository.NewCoreRequirementRepository(db),
		repository.NewMajorRequirementRepository(db),
		repository.NewMinorRequirementRepository(db),
		repository.NewProfileRepository(db),
	)
}

func TestGradebookServiceAggregationAndCaching(t *testing.T) {
	mini, err := miniredis.Run()
	require.NoError(t, err)
	defer mini.Close()

	redisClient := redis.NewClient(&redis.Options{Addr: mini.Addr()})

	db := openTestDB(t)
	class := seedClass(t, db, testOwner)

	assignments := []models.Assignment{
		{OwnerID: testOwner, ClassID: class.ID, Title: "HW 1", Category: "Homework", TotalPoints: 10, EarnedPoints: floatPointer(10), IsGraded: true, IsCompleted: true},
		{OwnerID: testOwner, ClassID: class.ID, Title: "Exam 1", Category: "Exam", TotalPoints: 20, EarnedPoints: floatPointer(15), IsGraded: true, IsCompleted: true},
	}
	for i := range assignments {
		require.NoError(t, db.Create(&assignments[i]).Error)
	}

	svc := NewGradebookService(newSnapshotBuilder(db), repository.NewClassRepository(db), redisClient, time.Minute, validator.New(), zerolog.Nop())

	ctx := context.Background()
	first, err := svc.GetGradebook(ctx, testOwner)
	require.NoError(t, err)
	require.Len(t, first.Classes, 1)

	grade := first.Classes[0].Grade
	require.NotNil(t, grade)
	require.InDelta(t, 83.33, grade.Percentage, 0.01)
	require.Equal(t, "B", grade.Letter)

	// A direct DB write does not drop the cache; the second read must be
	// served from redis with the old numbers.
	require.NoError(t, db.Create(&models.Assignment{
		OwnerID: testOwner, ClassID: class.ID, Title: "Exam 2", Category: "Exam",
		TotalPoints: 100, EarnedPoints: floatPointer(0), IsGraded: true, IsCompleted: true,
	}).Error)

	second, err := svc.GetGradebook(ctx, testOwner)
	require.NoError(t, err)
	require.InDelta(t, grade.Percentage, second.Classes[0].Grade.Percentage, 0.001)

	// Dropping the cache the way mutations do forces a recompute.
	require.NoError(t, redisClient.Del(ctx, gradebookCacheKey(testOwner)).Err())
	third, err := svc.GetGradebook(ctx, testOwner)
	require.NoError(t, err)
	require.Less(t, third.Classes[0].Grade.Percentage, grade.Percentage)
}

func TestGradebookServiceWeightedGrades(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, testOwner)

	assignments := []models.Assignment{
		{OwnerID: testOwner, ClassID: class.ID, Title: "Exam 1", Category: "Exam", TotalPoints: 50, EarnedPoints: floatPointer(45), IsGraded: true},
		{OwnerID: testOwner, ClassID: class.ID, Title: "HW 1", Category: "HW", TotalPoints: 10, EarnedPoints: floatPointer(8), IsGraded: true},
	}
	for i := range assignments {
		require.NoError(t, db.Create(&assignments[i]).Error)
	}

	doc := models.CategoryWeightDoc{
		OwnerID: testOwner,
		Weights: datatypes.JSONMap{
			academics.WeightKey(class.ID, "Exam"): 70.0,
			academics.WeightKey(class.ID, "HW"):   30.0,
		},
	}
	require.NoError(t, db.Create(&doc).Error)

	svc := NewGradebookService(newSnapshotBuilder(db), repository.NewClassRepository(db), nil, time.Minute, validator.New(), zerolog.Nop())

	book, err := svc.GetGradebook(context.Background(), testOwner)
	require.NoError(t, err)
	require.Len(t, book.Classes, 1)

	grade := book.Classes[0].Grade
	require.NotNil(t, grade)
	require.True(t, grade.Weighted)
	require.InDelta(t, 87.0, grade.Percentage, 0.001)
	require.Equal(t, "B+", grade.Letter)
}

func TestGradebookServiceGPASummary(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, testOwner)

	require.NoError(t, db.Create(&models.Assignment{
		OwnerID: testOwner, ClassID: class.ID, Title: "Exam 1", Category: "Exam",
		TotalPoints: 100, EarnedPoints: floatPointer(95), IsGraded: true,
	}).Error)

	profile := models.UserProfile{
		OwnerID:                 testOwner,
		DegreeCreditRequirement: 120,
		CurrentGPA:              floatPointer(3.5),
		CompletedCreditHours:    30,
	}
	require.NoError(t, db.Create(&profile).Error)

	svc := NewGradebookService(newSnapshotBuilder(db), repository.NewClassRepository(db), nil, time.Minute, validator.New(), zerolog.Nop())

	summary, err := svc.GetGPASummary(context.Background(), testOwner)
	require.NoError(t, err)
	// Semester: one 3-credit class at 95% (A, 4.0).
	require.InDelta(t, 4.0, summary.SemesterGPA, 0.001)
	// Cumulative: (3.5*30 + 4.0*3) / 33.
	require.InDelta(t, 3.5454545, summary.CumulativeGPA, 0.0001)
	require.Equal(t, 30.0, summary.PriorCredits)
}

func TestGradebookServiceProjection(t *testing.T) {
	db := openTestDB(t)
	class := seedClass(t, db, testOwner)

	require.NoError(t, db.Create(&models.Assignment{
		OwnerID: testOwner, ClassID: class.ID, Title: "Exam 1", Category: "Exam",
		TotalPoints: 100, EarnedPoints: floatPointer(70), IsGraded: true,
	}).Error)
	pending := models.Assignment{
		OwnerID: testOwner, ClassID: class.ID, Title: "Final", Category: "Exam",
		TotalPoints: 100, DueDate: time.Now().Add(30 * 24 * time.Hour),
	}
	require.NoError(t, db.Create(&pending).Error)

	svc := NewGradebookService(newSnapshotBuilder(db), repository.NewClassRepository(db), nil, time.Minute, validator.New(), zerolog.Nop())

	result, err := svc.Project(context.Background(), testOwner, dto.GradeProjectionRequest{
		ClassID:     class.ID,
		Anticipated: map[uint]float64{pending.ID: 100},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Current)
	require.NotNil(t, result.Projected)
	require.InDelta(t, 70.0, result.Current.Percentage, 0.001)
	require.InDelta(t, 85.0, result.Projected.Percentage, 0.001)
}
