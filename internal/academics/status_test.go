package academics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	require.Equal(t, InProgress, StatusFromString("In Progress"))
	require.Equal(t, Completed, StatusFromString("Completed"))
	require.Equal(t, Transferred, StatusFromString("Transferred"))
	require.Equal(t, NotStarted, StatusFromString("Not Started"))
	require.Equal(t, NotStarted, StatusFromString(""))
	require.Equal(t, NotStarted, StatusFromString("completed"))
}

func TestStatusFromFlags(t *testing.T) {
	require.Equal(t, Transferred, StatusFromFlags(true, true))
	require.Equal(t, Transferred, StatusFromFlags(false, true))
	require.Equal(t, Completed, StatusFromFlags(true, false))
	require.Equal(t, NotStarted, StatusFromFlags(false, false))
}

func TestRequirementCourseNormalize(t *testing.T) {
	cases := []struct {
		name   string
		course RequirementCourse
		want   CourseStatus
	}{
		{"transfer flag wins", RequirementCourse{Status: "Completed", IsTransfer: true}, Transferred},
		{"transferred status", RequirementCourse{Status: "Transferred"}, Transferred},
		{"status string", RequirementCourse{Status: "In Progress"}, InProgress},
		{"completed flag fallback", RequirementCourse{IsCompleted: true}, Completed},
		{"status beats flag", RequirementCourse{Status: "In Progress", IsCompleted: true}, InProgress},
		{"zero value", RequirementCourse{}, NotStarted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.course.Normalize())
		})
	}
}

func TestClassInfoNormalize(t *testing.T) {
	require.Equal(t, Transferred, ClassInfo{IsTransfer: true, IsCompleted: true}.Normalize())
	require.Equal(t, Completed, ClassInfo{IsCompleted: true}.Normalize())
	require.Equal(t, InProgress, ClassInfo{}.Normalize())
}

func TestCourseStatusString(t *testing.T) {
	require.Equal(t, "Not Started", NotStarted.String())
	require.Equal(t, "In Progress", InProgress.String())
	require.Equal(t, "Completed", Completed.String())
	require.Equal(t, "Transferred", Transferred.String())
}
