package academics

// CourseStatus is the normalized completion state shared by every source
// collection, regardless of whether the record stores a status string or
// the is_completed/is_transfer boolean pair.
type CourseStatus int

// Normalized course states.
const (
	NotStarted CourseStatus = iota
	InProgress
	Completed
	Transferred
)

// String returns the planner-facing label for the status.
func (s CourseStatus) String() string {
	switch s {
	case InProgress:
		return "In Progress"
	case Completed:
		return "Completed"
	case Transferred:
		return "Transferred"
	default:
		return "Not Started"
	}
}

// StatusFromString normalizes a planner status label. Unknown or empty
// values map to NotStarted.
func StatusFromString(status string) CourseStatus {
	switch status {
	case "In Progress":
		return InProgress
	case "Completed":
		return Completed
	case "Transferred":
		return Transferred
	default:
		return NotStarted
	}
}

// StatusFromFlags normalizes the boolean completion convention used by
// major/minor manual records. Transfer wins over completion.
func StatusFromFlags(isCompleted, isTransfer bool) CourseStatus {
	switch {
	case isTransfer:
		return Transferred
	case isCompleted:
		return Completed
	default:
		return NotStarted
	}
}

// Normalize resolves a requirement record that may carry either
// convention. A Transferred status or transfer flag takes precedence,
// then the status string, then the completion flag.
func (r RequirementCourse) Normalize() CourseStatus {
	if r.IsTransfer || r.Status == "Transferred" {
		return Transferred
	}
	if status := StatusFromString(r.Status); status != NotStarted {
		return status
	}
	if r.IsCompleted {
		return Completed
	}
	return NotStarted
}

// Normalize resolves a class record's completion state. Active classes
// without flags count as in progress.
func (c ClassInfo) Normalize() CourseStatus {
	switch {
	case c.IsTransfer:
		return Transferred
	case c.IsCompleted:
		return Completed
	default:
		return InProgress
	}
}
