package academics

import "math"

// Source tags scoping the de-duplication keys. A course is only
// de-duplicated within its originating collection; the same course code
// appearing in two collections is counted once per collection.
const (
	sourceCore     = "core"
	sourceMajor    = "major"
	sourceMinor    = "minor"
	sourceSemester = "semester"
	sourceCurrent  = "current"
)

// DegreeProgressResult is the planner's credit-progress summary.
type DegreeProgressResult struct {
	CompletedCredits   float64 `json:"completed_credits"`
	TransferredCredits float64 `json:"transferred_credits"`
	CombinedCompleted  float64 `json:"combined_completed"`
	InProgressCredits  float64 `json:"in_progress_credits"`
	Remaining          float64 `json:"remaining"`
	TotalRequired      float64 `json:"total_required"`
	Percentage         float64 `json:"percentage"`
}

type creditMap map[string]float64

// add inserts credits under key only if the key is not already present.
func (m creditMap) add(key string, credits float64) {
	if _, ok := m[key]; !ok {
		m[key] = credits
	}
}

func (m creditMap) sum() float64 {
	total := 0.0
	for _, credits := range m {
		total += credits
	}
	return total
}

// DegreeProgress aggregates completed, transferred, and in-progress
// credits across the manual requirement collections, semester plans, and
// current classes, de-duplicating per source. The profile's baseline
// credit hours act as a fallback for transferred credits only when no
// transferred course entries exist. The two are alternatives, never
// summed.
func (s *Snapshot) DegreeProgress() DegreeProgressResult {
	totalRequired := s.Profile.Requirement()

	completed := make(creditMap)
	transferred := make(creditMap)

	classify := func(key string, status CourseStatus, credits float64) {
		switch status {
		case Transferred:
			transferred.add(key, credits)
		case Completed:
			completed.add(key, credits)
		}
	}

	for _, c := range s.Core {
		classify(c.CourseCode+"-"+sourceCore, c.Normalize(), c.CreditHours)
	}
	for _, c := range s.Major {
		classify(c.CourseCode+"-"+sourceMajor, c.Normalize(), c.CreditHours)
	}
	for _, c := range s.Minor {
		classify(c.CourseCode+"-"+sourceMinor, c.Normalize(), c.CreditHours)
	}
	for _, sem := range s.Semesters {
		for _, c := range sem.Courses {
			classify(c.CourseCode+"-"+sourceSemester, StatusFromString(c.Status), c.CreditHours)
		}
	}
	for _, cls := range s.Classes {
		classify(cls.CourseCode+"-"+sourceCurrent, cls.Normalize(), cls.CreditHours)
	}

	completedFromCourses := completed.sum()
	transferredFromCourses := transferred.sum()

	transferredCredits := transferredFromCourses
	if transferredCredits == 0 {
		transferredCredits = s.Profile.CompletedCreditHours
	}

	inProgress := make(creditMap)
	for _, cls := range s.Classes {
		// Active classes always count as in progress, whatever their
		// own completion flags say.
		inProgress.add(cls.CourseCode+"-"+sourceCurrent, cls.CreditHours)
	}
	for _, sem := range s.Semesters {
		for _, c := range sem.Courses {
			switch StatusFromString(c.Status) {
			case InProgress, NotStarted:
				inProgress.add(c.CourseCode+"-"+sourceSemester+"-progress", c.CreditHours)
			}
		}
	}
	inProgressCredits := inProgress.sum()

	combinedCompleted := transferredCredits + completedFromCourses
	remaining := math.Max(0, totalRequired-combinedCompleted-inProgressCredits)

	percentage := 0.0
	if totalRequired > 0 {
		percentage = math.Min(combinedCompleted/totalRequired*100, 100)
	}

	return DegreeProgressResult{
		CompletedCredits:   completedFromCourses,
		TransferredCredits: transferredCredits,
		CombinedCompleted:  combinedCompleted,
		InProgressCredits:  inProgressCredits,
		Remaining:          remaining,
		TotalRequired:      totalRequired,
		Percentage:         percentage,
	}
}

// DashboardProgressResult is the home-dashboard credit summary.
type DashboardProgressResult struct {
	TotalCompleted float64 `json:"total_completed"`
	TotalRequired  float64 `json:"total_required"`
	Percentage     float64 `json:"percentage"`
}

// DashboardProgress is the home-dashboard variant of degree progress. It
// de-duplicates by bare course code across the manual collections and
// semester plans (no source tags, last write wins), skips current
// classes, and always adds the profile's baseline credit hours on top
// instead of using them as a fallback. Kept separate from
// DegreeProgress because the two views intentionally disagree.
func (s *Snapshot) DashboardProgress() DashboardProgressResult {
	totalRequired := s.Profile.Requirement()

	completed := make(map[string]float64)
	record := func(code string, counts bool, credits float64) {
		if counts {
			completed[code] = credits
		}
	}

	// Manual rows count on the completion flag or a terminal status
	// string. The transfer flag alone does not count here; those hours
	// are already covered by the baseline added below.
	manualCounts := func(c RequirementCourse) bool {
		return c.IsCompleted || c.Status == "Completed" || c.Status == "Transferred"
	}

	for _, c := range s.Core {
		record(c.CourseCode, manualCounts(c), c.CreditHours)
	}
	for _, c := range s.Major {
		record(c.CourseCode, manualCounts(c), c.CreditHours)
	}
	for _, c := range s.Minor {
		record(c.CourseCode, manualCounts(c), c.CreditHours)
	}
	for _, sem := range s.Semesters {
		for _, c := range sem.Courses {
			record(c.CourseCode, c.Status == "Completed" || c.Status == "Transferred", c.CreditHours)
		}
	}

	courseCredits := 0.0
	for _, credits := range completed {
		courseCredits += credits
	}

	totalCompleted := courseCredits + s.Profile.CompletedCreditHours

	percentage := 0.0
	if totalRequired > 0 {
		percentage = math.Min(totalCompleted/totalRequired*100, 100)
	}

	return DashboardProgressResult{
		TotalCompleted: totalCompleted,
		TotalRequired:  totalRequired,
		Percentage:     percentage,
	}
}

// MinorProgressResult is the minor-track credit summary.
type MinorProgressResult struct {
	Completed  float64 `json:"completed"`
	InProgress float64 `json:"in_progress"`
	Required   float64 `json:"required"`
	Percentage float64 `json:"percentage"`
}

// DefaultMinorCredits is used when no minor requirement is configured.
const DefaultMinorCredits = 18

// MinorProgress sums completed manual minor requirements against the
// configured credit target, with current minor-category classes reported
// as in progress.
func (s *Snapshot) MinorProgress(required float64) MinorProgressResult {
	if required <= 0 {
		required = DefaultMinorCredits
	}

	completed := 0.0
	for _, c := range s.Minor {
		if c.IsCompleted {
			completed += c.CreditHours
		}
	}

	inProgress := 0.0
	for _, cls := range s.Classes {
		if cls.Category == "Minor" {
			inProgress += cls.CreditHours
		}
	}

	return MinorProgressResult{
		Completed:  completed,
		InProgress: inProgress,
		Required:   required,
		Percentage: math.Min(completed/required*100, 100),
	}
}
