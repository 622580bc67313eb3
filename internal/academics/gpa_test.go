package academics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestSemesterGPA(t *testing.T) {
	snapshot := &Snapshot{
		Classes: []ClassInfo{
			{ID: 1, CreditHours: 3},
			{ID: 2, CreditHours: 3},
			{ID: 3, CreditHours: 3, IsTransfer: true},
			{ID: 4, CreditHours: 0},
			{ID: 5, CreditHours: 4}, // no graded work, excluded
		},
		Graded: []GradedAssignment{
			{ClassID: 1, TotalPoints: 100, EarnedPoints: 95},
			{ClassID: 2, TotalPoints: 100, EarnedPoints: 85},
			{ClassID: 3, TotalPoints: 100, EarnedPoints: 100},
			{ClassID: 4, TotalPoints: 100, EarnedPoints: 100},
		},
		Weights: map[string]float64{},
	}

	// (4.0*3 + 3.0*3) / 6
	require.InDelta(t, 3.5, snapshot.SemesterGPA(), 0.001)
}

func TestSemesterGPAEmpty(t *testing.T) {
	snapshot := &Snapshot{Weights: map[string]float64{}}
	require.Equal(t, 0.0, snapshot.SemesterGPA())
}

func TestCumulativeGPABlendsPriorAndCalculated(t *testing.T) {
	snapshot := &Snapshot{
		Completed: []ClassInfo{
			{ID: 10, CreditHours: 3, FinalGPA: floatPtr(4.0)},
		},
		Weights: map[string]float64{},
		Profile: Profile{
			CurrentGPA:           floatPtr(3.5),
			CompletedCreditHours: 30,
		},
	}

	// (3.5*30 + 4.0*3) / 33
	require.InDelta(t, 3.5454545, snapshot.CumulativeGPA(), 0.0001)
}

func TestCumulativeGPAPriorOnlyFallback(t *testing.T) {
	snapshot := &Snapshot{
		Weights: map[string]float64{},
		Profile: Profile{
			CurrentGPA:           floatPtr(3.2),
			CompletedCreditHours: 45,
		},
	}

	// Nothing calculated: the declared prior stands alone instead of
	// being divided through its own credits.
	require.Equal(t, 3.2, snapshot.CumulativeGPA())
}

func TestCumulativeGPAPercentageConversion(t *testing.T) {
	snapshot := &Snapshot{
		Completed: []ClassInfo{
			{ID: 11, CreditHours: 3, GradePercent: floatPtr(85)},
			{ID: 12, CreditHours: 3, IsTransfer: true, FinalGPA: floatPtr(4.0)},
			{ID: 13, CreditHours: 3}, // no stored grade, skipped
		},
		Weights: map[string]float64{},
	}

	// 85% maps to B on the plus-tier scale.
	require.InDelta(t, 3.0, snapshot.CumulativeGPA(), 0.001)
}

func TestCumulativeGPANoData(t *testing.T) {
	snapshot := &Snapshot{Weights: map[string]float64{}}
	require.Equal(t, 0.0, snapshot.CumulativeGPA())
}

func TestTotalCredits(t *testing.T) {
	snapshot := &Snapshot{
		Classes:   []ClassInfo{{ID: 1, CreditHours: 3}, {ID: 2, CreditHours: 4}},
		Completed: []ClassInfo{{ID: 3, CreditHours: 3}},
	}
	require.Equal(t, 10.0, snapshot.TotalCredits())
}

func TestDashboardGPABlend(t *testing.T) {
	snapshot := &Snapshot{
		Classes: []ClassInfo{
			{ID: 1, CreditHours: 3},
		},
		Graded: []GradedAssignment{
			{ClassID: 1, TotalPoints: 100, EarnedPoints: 90},
		},
		Weights: map[string]float64{},
		Profile: Profile{
			CurrentGPA:           floatPtr(3.5),
			CompletedCreditHours: 30,
		},
	}

	result := snapshot.DashboardGPA()
	require.True(t, result.HasData)
	// (3.5*30 + 3.67*3) / 33
	require.InDelta(t, (3.5*30+3.67*3)/33, result.GPA, 0.0001)
}

func TestDashboardGPAPriorOnly(t *testing.T) {
	snapshot := &Snapshot{
		Weights: map[string]float64{},
		Profile: Profile{CurrentGPA: floatPtr(3.8)},
	}

	result := snapshot.DashboardGPA()
	require.True(t, result.HasData)
	require.Equal(t, 3.8, result.GPA)
}

func TestDashboardGPANoData(t *testing.T) {
	snapshot := &Snapshot{
		Classes: []ClassInfo{{ID: 1, CreditHours: 3}},
		Weights: map[string]float64{},
	}

	result := snapshot.DashboardGPA()
	require.False(t, result.HasData)
	require.Equal(t, 0.0, result.GPA)
}
