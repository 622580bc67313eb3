package academics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDegreeProgressDeduplicatesWithinSource(t *testing.T) {
	snapshot := &Snapshot{
		Core: []RequirementCourse{
			{CourseCode: "CS101", CreditHours: 3, Status: "Completed"},
			{CourseCode: "CS101", CreditHours: 3, Status: "Completed"},
		},
	}

	result := snapshot.DegreeProgress()
	require.Equal(t, 3.0, result.CompletedCredits)
}

func TestDegreeProgressCountsPerSource(t *testing.T) {
	snapshot := &Snapshot{
		Core: []RequirementCourse{
			{CourseCode: "CS101", CreditHours: 3, Status: "Completed"},
		},
		Major: []RequirementCourse{
			{CourseCode: "CS101", CreditHours: 3, IsCompleted: true},
		},
	}

	// The same course code in two collections is counted once per
	// collection.
	result := snapshot.DegreeProgress()
	require.Equal(t, 6.0, result.CompletedCredits)
}

func TestDegreeProgressTransferFallback(t *testing.T) {
	base := Snapshot{
		Core: []RequirementCourse{
			{CourseCode: "CS101", CreditHours: 3, Status: "Completed"},
		},
		Profile: Profile{CompletedCreditHours: 24},
	}

	// No transferred course entries: the profile baseline stands in.
	result := base.DegreeProgress()
	require.Equal(t, 24.0, result.TransferredCredits)
	require.Equal(t, 27.0, result.CombinedCompleted)

	// With transferred entries the baseline is ignored, never summed.
	withTransfer := base
	withTransfer.Major = []RequirementCourse{
		{CourseCode: "MATH150", CreditHours: 4, IsTransfer: true},
	}
	result = withTransfer.DegreeProgress()
	require.Equal(t, 4.0, result.TransferredCredits)
	require.Equal(t, 7.0, result.CombinedCompleted)
}

func TestDegreeProgressInProgressAndRemaining(t *testing.T) {
	snapshot := &Snapshot{
		Core: []RequirementCourse{
			{CourseCode: "CORE1", CreditHours: 60, Status: "Completed"},
		},
		Classes: []ClassInfo{
			{ID: 1, CourseCode: "CS340", CreditHours: 3},
		},
		Semesters: []SemesterPlan{
			{Name: "Fall 2026", Courses: []PlannedCourse{
				{CourseCode: "MATH201", CreditHours: 3, Status: "Not Started"},
				{CourseCode: "HIST110", CreditHours: 3, Status: "Completed"},
			}},
		},
		Profile: Profile{DegreeCreditRequirement: 120},
	}

	result := snapshot.DegreeProgress()
	require.Equal(t, 63.0, result.CompletedCredits)
	require.Equal(t, 6.0, result.InProgressCredits)
	require.Equal(t, 51.0, result.Remaining)
	require.InDelta(t, 52.5, result.Percentage, 0.001)
	require.Equal(t, 120.0, result.TotalRequired)
}

func TestDegreeProgressClampsPercentage(t *testing.T) {
	snapshot := &Snapshot{
		Core: []RequirementCourse{
			{CourseCode: "CORE1", CreditHours: 130, Status: "Completed"},
		},
		Profile: Profile{DegreeCreditRequirement: 120},
	}

	result := snapshot.DegreeProgress()
	require.Equal(t, 100.0, result.Percentage)
	require.Equal(t, 0.0, result.Remaining)
}

func TestDegreeProgressDefaultRequirement(t *testing.T) {
	snapshot := &Snapshot{}
	result := snapshot.DegreeProgress()
	require.Equal(t, float64(DefaultDegreeCredits), result.TotalRequired)
}

func TestDashboardProgressDeduplicatesByBareCode(t *testing.T) {
	snapshot := &Snapshot{
		Core: []RequirementCourse{
			{CourseCode: "CS101", CreditHours: 3, Status: "Completed"},
		},
		Major: []RequirementCourse{
			{CourseCode: "CS101", CreditHours: 3, IsCompleted: true},
		},
		Profile: Profile{CompletedCreditHours: 30, DegreeCreditRequirement: 120},
	}

	// Unlike the planner view, the dashboard keys by bare course code
	// and always adds the baseline on top.
	result := snapshot.DashboardProgress()
	require.Equal(t, 33.0, result.TotalCompleted)
	require.InDelta(t, 27.5, result.Percentage, 0.001)
}

func TestDashboardProgressCountsTransferredStatusRows(t *testing.T) {
	snapshot := &Snapshot{
		Minor: []RequirementCourse{
			{CourseCode: "ART200", CreditHours: 3, Status: "Transferred"},
		},
		Semesters: []SemesterPlan{
			{Courses: []PlannedCourse{
				{CourseCode: "HIST120", CreditHours: 3, Status: "Transferred"},
			}},
		},
		Profile: Profile{CompletedCreditHours: 12},
	}

	result := snapshot.DashboardProgress()
	require.Equal(t, 18.0, result.TotalCompleted)
}

func TestDashboardProgressSkipsTransferFlagOnlyRows(t *testing.T) {
	snapshot := &Snapshot{
		Minor: []RequirementCourse{
			{CourseCode: "ART101", CreditHours: 3, IsTransfer: true},
		},
		Profile: Profile{CompletedCreditHours: 30},
	}

	// A bare transfer flag never counts on the dashboard; those hours
	// only enter through the profile baseline.
	result := snapshot.DashboardProgress()
	require.Equal(t, 30.0, result.TotalCompleted)
}

func TestMinorProgress(t *testing.T) {
	snapshot := &Snapshot{
		Minor: []RequirementCourse{
			{CourseCode: "ART101", CreditHours: 3, IsCompleted: true},
			{CourseCode: "ART205", CreditHours: 3},
		},
		Classes: []ClassInfo{
			{ID: 1, CourseCode: "ART210", CreditHours: 3, Category: "Minor"},
			{ID: 2, CourseCode: "CS340", CreditHours: 3, Category: "Major"},
		},
	}

	result := snapshot.MinorProgress(0)
	require.Equal(t, 3.0, result.Completed)
	require.Equal(t, 3.0, result.InProgress)
	require.Equal(t, float64(DefaultMinorCredits), result.Required)
	require.InDelta(t, 16.666, result.Percentage, 0.01)
}

func TestMinorProgressClamp(t *testing.T) {
	snapshot := &Snapshot{
		Minor: []RequirementCourse{
			{CourseCode: "ART101", CreditHours: 20, IsCompleted: true},
		},
	}

	result := snapshot.MinorProgress(18)
	require.Equal(t, 100.0, result.Percentage)
}
