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

func TestDashboardServiceAggregation(t *testing.T) {
	db := openTestDB(t)

	reference := time.Date(2025, 9, 3, 9, 0, 0, 0, time.UTC) // a Wednesday

	class := models.Class{
		OwnerID:     testOwner,
		CourseCode:  "CS101",
		CourseName:  "Intro to Computer Science",
		CreditHours: 3,
		Category:    models.CategoryMajor,
		Days:        datatypes.JSON([]byte(`["Monday","Wednesday"]`)),
		IsActive:    true,
	}
	require.NoError(t, db.Create(&class).Error)

	offDay := models.Class{
		OwnerID:     testOwner,
		CourseCode:  "MATH201",
		CourseName:  "Calculus II",
		CreditHours: 4,
		Category:    models.CategoryCore,
		Days:        datatypes.JSON([]byte(`["Tuesday","Thursday"]`)),
		IsActive:    true,
	}
	require.NoError(t, db.Create(&offDay).Error)

	assignments := []models.Assignment{
		{OwnerID: testOwner, ClassID: class.ID, Title: "Due Soon", TotalPoints: 100, DueDate: reference.Add(48 * time.Hour)},
		{OwnerID: testOwner, ClassID: class.ID, Title: "Overdue", TotalPoints: 100, DueDate: reference.Add(-24 * time.Hour)},
		{OwnerID: testOwner, ClassID: class.ID, Title: "Far Out", TotalPoints: 100, DueDate: reference.Add(21 * 24 * time.Hour)},
		{OwnerID: testOwner, ClassID: class.ID, Title: "Done", TotalPoints: 100, DueDate: reference.Add(24 * time.Hour), IsCompleted: true},
		{OwnerID: testOwner, ClassID: class.ID, Title: "Graded", Category: "Exam", TotalPoints: 100, EarnedPoints: floatPointer(90), IsGraded: true, IsCompleted: true, DueDate: reference.Add(-72 * time.Hour)},
	}
	for i := range assignments {
		require.NoError(t, db.Create(&assignments[i]).Error)
	}

	require.NoError(t, db.Create(&models.Todo{OwnerID: testOwner, Title: "Register for next term"}).Error)

	profile := models.UserProfile{
		OwnerID:                 testOwner,
		DegreeCreditRequirement: 120,
		CurrentGPA:              floatPointer(3.5),
		CompletedCreditHours:    30,
	}
	require.NoError(t, db.Create(&profile).Error)

	svc := NewDashboardService(
		newSnapshotBuilder(db),
		repository.NewClassRepository(db),
		repository.NewAssignmentRepository(db),
		repository.NewTodoRepository(db),
		nil,
		time.Minute,
		zerolog.Nop(),
	).(*dashboardService)
	svc.now = func() time.Time { return reference }

	dashboard, err := svc.GetDashboard(context.Background(), testOwner)
	require.NoError(t, err)

	require.Len(t, dashboard.TodayClasses, 1)
	require.Equal(t, "CS101", dashboard.TodayClasses[0].CourseCode)

	require.Len(t, dashboard.UpcomingWork, 1)
	require.Equal(t, "Due Soon", dashboard.UpcomingWork[0].Title)
	require.Len(t, dashboard.OverdueWork, 1)
	require.Equal(t, "Overdue", dashboard.OverdueWork[0].Title)

	require.Len(t, dashboard.PendingTodos, 1)
	require.Equal(t, 2, dashboard.ActiveClasses)

	// Dashboard GPA: both classes carry credit but only CS101 has graded
	// work, so 90% on the collapsed scale (A-, 3.67) over 3 credits
	// blends with the prior baseline.
	require.True(t, dashboard.GPA.HasData)
	require.InDelta(t, (3.5*30+3.67*3)/33, dashboard.GPA.GPA, 0.0001)

	// Dashboard progress: no planner rows, so just the profile baseline.
	require.Equal(t, 30.0, dashboard.DegreeProgress.TotalCompleted)
	require.InDelta(t, 25.0, dashboard.DegreeProgress.Percentage, 0.001)
}
