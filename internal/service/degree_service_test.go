package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/trackademic/trackademic-api/internal/models"
	"github.com/trackademic/trackademic-api/internal/repository"
)

func TestDegreeServiceProgress(t *testing.T) {
	db := openTestDB(t)

	rows := []models.CoreRequirement{
		{OwnerID: testOwner, CourseCode: "ENGL110", CreditHours: 3, Status: models.StatusCompleted},
		{OwnerID: testOwner, CourseCode: "HIST101", CreditHours: 3, Status: models.StatusNotStarted},
	}
	for i := range rows {
		require.NoError(t, db.Create(&rows[i]).Error)
	}
	require.NoError(t, db.Create(&models.MajorRequirement{
		OwnerID: testOwner, CourseCode: "CS250", CreditHours: 3, IsCompleted: true,
	}).Error)
	require.NoError(t, db.Create(&models.MajorRequirement{
		OwnerID: testOwner, CourseCode: "MATH150", CreditHours: 4, IsTransfer: true,
	}).Error)

	semester := models.Semester{
		OwnerID: testOwner,
		Name:    "Fall 2026",
		Courses: datatypes.JSON([]byte(`[{"id":"a","course_code":"CS340","course_name":"Algorithms","credit_hours":3,"category":"Major","core_category":"","status":"Not Started"}]`)),
	}
	require.NoError(t, db.Create(&semester).Error)

	require.NoError(t, db.Create(&models.UserProfile{
		OwnerID:                 testOwner,
		DegreeCreditRequirement: 120,
		CompletedCreditHours:    24,
	}).Error)

	svc := NewDegreeService(
		newSnapshotBuilder(db),
		repository.NewSemesterRepository(db),
		repository.NewCoreRequirementRepository(db),
		repository.NewMajorRequirementRepository(db),
		repository.NewMinorRequirementRepository(db),
		repository.NewProfileRepository(db),
		nil,
		time.Minute,
		zerolog.Nop(),
	)

	result, err := svc.GetProgress(context.Background(), testOwner)
	require.NoError(t, err)

	// ENGL110 + CS250 completed; MATH150 transfers, which suppresses the
	// profile baseline instead of adding to it.
	require.Equal(t, 6.0, result.Progress.CompletedCredits)
	require.Equal(t, 4.0, result.Progress.TransferredCredits)
	require.Equal(t, 10.0, result.Progress.CombinedCompleted)
	require.Equal(t, 3.0, result.Progress.InProgressCredits)
	require.Equal(t, 120.0, result.Progress.TotalRequired)

	require.Len(t, result.Core, 2)
	require.Len(t, result.Major, 2)
	require.Len(t, result.Semesters, 1)
	require.Len(t, result.Semesters[0].Courses, 1)
	require.Nil(t, result.Minor)
}

func TestDegreeServiceMinorSection(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Create(&models.MinorRequirement{
		OwnerID: testOwner, CourseCode: "ART101", CreditHours: 3, IsCompleted: true,
	}).Error)
	require.NoError(t, db.Create(&models.DegreeSettings{
		OwnerID:              testOwner,
		MinorName:            "Studio Art",
		MinorCreditsRequired: 18,
	}).Error)

	svc := NewDegreeService(
		newSnapshotBuilder(db),
		repository.NewSemesterRepository(db),
		repository.NewCoreRequirementRepository(db),
		repository.NewMajorRequirementRepository(db),
		repository.NewMinorRequirementRepository(db),
		repository.NewProfileRepository(db),
		nil,
		time.Minute,
		zerolog.Nop(),
	)

	result, err := svc.GetProgress(context.Background(), testOwner)
	require.NoError(t, err)
	require.NotNil(t, result.Minor)
	require.Equal(t, "Studio Art", result.Minor.Name)
	require.Equal(t, 3.0, result.Minor.Progress.Completed)
	require.Equal(t, 18.0, result.Minor.Progress.Required)
}
