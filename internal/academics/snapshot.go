// Package academics implements the pure academic aggregation engine:
// weighted per-class grades, semester and cumulative GPA blending, and
// degree-credit progress with cross-source de-duplication. Every function
// is a total, side-effect-free computation over a Snapshot; callers
// rebuild the snapshot and recompute whenever any input collection
// changes.
package academics

import "fmt"

// ClassInfo is the engine's view of a class record. Active classes feed
// the current-term calculations; completed classes feed cumulative GPA.
type ClassInfo struct {
	ID           uint
	CourseCode   string
	CreditHours  float64
	Category     string
	CoreCategory string
	IsCompleted  bool
	IsTransfer   bool
	// FinalGPA takes precedence over GradePercent when converting a
	// completed course to grade points.
	FinalGPA     *float64
	GradePercent *float64
}

// GradedAssignment is a completed-and-graded assignment.
type GradedAssignment struct {
	ClassID      uint
	Category     string
	TotalPoints  float64
	EarnedPoints float64
}

// PendingAssignment is an ungraded assignment eligible for projection.
type PendingAssignment struct {
	ID          uint
	ClassID     uint
	Category    string
	TotalPoints float64
}

// PlannedCourse is a course embedded in a semester plan.
type PlannedCourse struct {
	ID           string  `json:"id"`
	CourseCode   string  `json:"course_code"`
	CourseName   string  `json:"course_name"`
	CreditHours  float64 `json:"credit_hours"`
	Category     string  `json:"category"`
	CoreCategory string  `json:"core_category"`
	Status       string  `json:"status"`
}

// SemesterPlan is a planned term with its embedded course list.
type SemesterPlan struct {
	Name    string
	Courses []PlannedCourse
}

// RequirementCourse is a manually entered degree requirement. Core rows
// carry a Status string; major/minor rows carry the boolean pair. Both
// conventions are normalized through CourseStatus before aggregation.
type RequirementCourse struct {
	CourseCode  string
	CreditHours float64
	Status      string
	IsCompleted bool
	IsTransfer  bool
}

// Profile carries the user-declared baseline. Missing profile data is
// represented by the zero value plus the documented defaults.
type Profile struct {
	CurrentGPA              *float64
	CompletedCreditHours    float64
	DegreeCreditRequirement float64
}

// DefaultDegreeCredits is used when no requirement has been configured.
const DefaultDegreeCredits = 120

// Requirement returns the configured degree credit requirement or the
// default when unset.
func (p Profile) Requirement() float64 {
	if p.DegreeCreditRequirement > 0 {
		return p.DegreeCreditRequirement
	}
	return DefaultDegreeCredits
}

// Snapshot is an immutable view of every collection the engine consumes,
// already scoped to a single owner.
type Snapshot struct {
	Classes   []ClassInfo // active classes only
	Completed []ClassInfo // classes flagged is_completed
	Graded    []GradedAssignment
	Pending   []PendingAssignment
	Weights   map[string]float64 // keyed by WeightKey
	Semesters []SemesterPlan
	Core      []RequirementCourse
	Major     []RequirementCourse
	Minor     []RequirementCourse
	Profile   Profile
}

// WeightKey builds the category-weight map key for a class/category pair.
func WeightKey(classID uint, category string) string {
	return fmt.Sprintf("%d_%s", classID, category)
}

// DefaultCategory is assigned to assignments without a category label.
const DefaultCategory = "Other"

func categoryOrDefault(category string) string {
	if category == "" {
		return DefaultCategory
	}
	return category
}
