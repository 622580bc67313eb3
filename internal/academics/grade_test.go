package academics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassGradeFallbackMode(t *testing.T) {
	snapshot := &Snapshot{
		Graded: []GradedAssignment{
			{ClassID: 1, Category: "Homework", TotalPoints: 10, EarnedPoints: 10},
			{ClassID: 1, Category: "Exam", TotalPoints: 20, EarnedPoints: 15},
		},
		Weights: map[string]float64{},
	}

	grade := snapshot.ClassGrade(1, nil, ScaleCollapsed)
	require.NotNil(t, grade)
	require.False(t, grade.Weighted)
	require.InDelta(t, 83.33, grade.Percentage, 0.01)
	require.Equal(t, "B", grade.Letter)
	require.Equal(t, 2, grade.GradedCount)
}

func TestClassGradeWeightedMode(t *testing.T) {
	snapshot := &Snapshot{
		Graded: []GradedAssignment{
			{ClassID: 7, Category: "Exam", TotalPoints: 50, EarnedPoints: 45},
			{ClassID: 7, Category: "HW", TotalPoints: 10, EarnedPoints: 8},
		},
		Weights: map[string]float64{
			WeightKey(7, "Exam"): 70,
			WeightKey(7, "HW"):   30,
		},
	}

	grade := snapshot.ClassGrade(7, nil, ScalePlusTiers)
	require.NotNil(t, grade)
	require.True(t, grade.Weighted)
	require.InDelta(t, 87.0, grade.Percentage, 0.001)
	require.Equal(t, "B+", grade.Letter)
	require.InDelta(t, 3.33, grade.Points, 0.001)
}

func TestClassGradeZeroWeightCategoryExcluded(t *testing.T) {
	snapshot := &Snapshot{
		Graded: []GradedAssignment{
			{ClassID: 3, Category: "Exam", TotalPoints: 100, EarnedPoints: 90},
			{ClassID: 3, Category: "Participation", TotalPoints: 10, EarnedPoints: 0},
		},
		Weights: map[string]float64{
			WeightKey(3, "Exam"): 60,
			// Participation has no weight configured; it must not zero
			// out the weighted grade.
		},
	}

	grade := snapshot.ClassGrade(3, nil, ScalePlusTiers)
	require.NotNil(t, grade)
	require.True(t, grade.Weighted)
	require.InDelta(t, 90.0, grade.Percentage, 0.001)
}

func TestClassGradeInvalidWeightTotalFallsBack(t *testing.T) {
	snapshot := &Snapshot{
		Graded: []GradedAssignment{
			{ClassID: 2, Category: "Exam", TotalPoints: 100, EarnedPoints: 50},
			{ClassID: 2, Category: "HW", TotalPoints: 100, EarnedPoints: 100},
		},
		Weights: map[string]float64{
			WeightKey(2, "Exam"): 80,
			WeightKey(2, "HW"):   80,
		},
	}

	// 160% total weight is not a valid scheme; raw points apply.
	grade := snapshot.ClassGrade(2, nil, ScalePlusTiers)
	require.NotNil(t, grade)
	require.False(t, grade.Weighted)
	require.InDelta(t, 75.0, grade.Percentage, 0.001)
}

func TestClassGradeNilWithoutGradedWork(t *testing.T) {
	snapshot := &Snapshot{
		Pending: []PendingAssignment{
			{ID: 11, ClassID: 5, Category: "Exam", TotalPoints: 100},
		},
		Weights: map[string]float64{},
	}

	require.Nil(t, snapshot.ClassGrade(5, nil, ScalePlusTiers))

	// Projection mode with a zero anticipated score is still "nothing".
	require.Nil(t, snapshot.ClassGrade(5, map[uint]float64{11: 0}, ScalePlusTiers))
}

func TestClassGradeProjectionIncludesAnticipated(t *testing.T) {
	snapshot := &Snapshot{
		Graded: []GradedAssignment{
			{ClassID: 4, Category: "Exam", TotalPoints: 100, EarnedPoints: 70},
		},
		Pending: []PendingAssignment{
			{ID: 21, ClassID: 4, Category: "Exam", TotalPoints: 100},
		},
		Weights: map[string]float64{},
	}

	current := snapshot.ClassGrade(4, nil, ScalePlusTiers)
	require.NotNil(t, current)
	require.InDelta(t, 70.0, current.Percentage, 0.001)

	projected := snapshot.ClassGrade(4, map[uint]float64{21: 100}, ScalePlusTiers)
	require.NotNil(t, projected)
	require.InDelta(t, 85.0, projected.Percentage, 0.001)
}

func TestClassGradeDefaultsCategory(t *testing.T) {
	snapshot := &Snapshot{
		Graded: []GradedAssignment{
			{ClassID: 6, TotalPoints: 10, EarnedPoints: 9},
		},
		Weights: map[string]float64{},
	}

	grade := snapshot.ClassGrade(6, nil, ScalePlusTiers)
	require.NotNil(t, grade)
	require.Contains(t, grade.Categories, DefaultCategory)
}

func TestClassGradeZeroTotalPointsGuard(t *testing.T) {
	snapshot := &Snapshot{
		Graded: []GradedAssignment{
			{ClassID: 9, Category: "Lab", TotalPoints: 0, EarnedPoints: 0},
		},
		Weights: map[string]float64{},
	}

	grade := snapshot.ClassGrade(9, nil, ScalePlusTiers)
	require.NotNil(t, grade)
	require.Equal(t, 0.0, grade.Percentage)
	require.NotContains(t, grade.Categories, "Lab")
}
