package academics

// SemesterGPA averages the computed grades of currently active,
// non-transfer, credit-bearing classes. Classes without any graded work
// are excluded from both numerator and denominator. Returns 0 when no
// class qualifies; callers decide whether 0 means "no data" in context.
func (s *Snapshot) SemesterGPA() float64 {
	totalPoints := 0.0
	totalCredits := 0.0

	for _, cls := range s.Classes {
		if cls.CreditHours <= 0 || cls.IsTransfer {
			continue
		}
		grade := s.ClassGrade(cls.ID, nil, ScalePlusTiers)
		if grade == nil {
			continue
		}
		totalPoints += grade.Points * cls.CreditHours
		totalCredits += cls.CreditHours
	}

	if totalCredits <= 0 {
		return 0
	}
	return totalPoints / totalCredits
}

// CumulativeGPA blends three sources without double counting: completed
// courses (via their stored final GPA, else their stored percentage run
// through the plus-tier scale), active classes' computed grades, and the
// user-declared prior baseline.
func (s *Snapshot) CumulativeGPA() float64 {
	calculatedPoints := 0.0
	calculatedCredits := 0.0

	for _, course := range s.Completed {
		if course.IsTransfer {
			continue
		}
		var points float64
		switch {
		case course.FinalGPA != nil:
			points = *course.FinalGPA
		case course.GradePercent != nil:
			points = ScalePlusTiers.Points(*course.GradePercent)
		default:
			continue
		}
		calculatedPoints += points * course.CreditHours
		calculatedCredits += course.CreditHours
	}

	for _, cls := range s.Classes {
		if cls.IsTransfer {
			continue
		}
		grade := s.ClassGrade(cls.ID, nil, ScalePlusTiers)
		if grade == nil {
			continue
		}
		calculatedPoints += grade.Points * cls.CreditHours
		calculatedCredits += cls.CreditHours
	}

	priorGPA := s.Profile.CurrentGPA
	priorCredits := s.Profile.CompletedCreditHours

	// A declared prior GPA with no calculated credits takes precedence
	// outright; dividing by the stray prior-credit term alone would just
	// echo it back with extra steps.
	if priorGPA != nil && calculatedCredits == 0 {
		return *priorGPA
	}

	if priorGPA != nil && priorCredits > 0 {
		totalPoints := *priorGPA*priorCredits + calculatedPoints
		totalCredits := priorCredits + calculatedCredits
		if totalCredits <= 0 {
			return *priorGPA
		}
		return totalPoints / totalCredits
	}

	if calculatedCredits > 0 {
		return calculatedPoints / calculatedCredits
	}
	if priorGPA != nil {
		return *priorGPA
	}
	return 0
}

// TotalCredits sums completed and active class credit hours. Used for the
// GPA summary card, not for degree progress.
func (s *Snapshot) TotalCredits() float64 {
	total := 0.0
	for _, course := range s.Completed {
		total += course.CreditHours
	}
	for _, cls := range s.Classes {
		total += cls.CreditHours
	}
	return total
}

// DashboardGPAResult is the home-dashboard GPA card payload.
type DashboardGPAResult struct {
	GPA     float64 `json:"gpa"`
	HasData bool    `json:"has_data"`
}

// DashboardGPA is the home-dashboard variant of the cumulative blend. It
// differs from CumulativeGPA on purpose: class percentages are raw
// points (weights ignored), grade points come from the collapsed scale,
// completed courses are not consulted, and a missing prior GPA is
// treated as zero rather than null. Both variants ship because their
// views intentionally disagree.
func (s *Snapshot) DashboardGPA() DashboardGPAResult {
	priorGPA := 0.0
	if s.Profile.CurrentGPA != nil {
		priorGPA = *s.Profile.CurrentGPA
	}
	priorCredits := s.Profile.CompletedCreditHours

	currentPoints := 0.0
	currentCredits := 0.0

	for _, cls := range s.Classes {
		if cls.CreditHours <= 0 {
			continue
		}
		totalPts := 0.0
		earnedPts := 0.0
		count := 0
		for _, a := range s.Graded {
			if a.ClassID != cls.ID {
				continue
			}
			totalPts += a.TotalPoints
			earnedPts += a.EarnedPoints
			count++
		}
		if count == 0 || totalPts <= 0 {
			continue
		}
		percentage := earnedPts / totalPts * 100
		currentPoints += ScaleCollapsed.Points(percentage) * cls.CreditHours
		currentCredits += cls.CreditHours
	}

	totalCredits := priorCredits + currentCredits
	if totalCredits == 0 {
		if priorGPA > 0 {
			return DashboardGPAResult{GPA: priorGPA, HasData: true}
		}
		return DashboardGPAResult{}
	}

	totalPoints := priorGPA*priorCredits + currentPoints
	return DashboardGPAResult{GPA: totalPoints / totalCredits, HasData: true}
}
