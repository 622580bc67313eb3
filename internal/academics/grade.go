package academics

// CategoryScore is the per-category breakdown of a class grade.
type CategoryScore struct {
	Earned     float64 `json:"earned"`
	Total      float64 `json:"total"`
	Percentage float64 `json:"percentage"`
	Weight     float64 `json:"weight"`
}

// ClassGradeResult is the derived grade for one class.
type ClassGradeResult struct {
	Percentage  float64                  `json:"percentage"`
	Categories  map[string]CategoryScore `json:"categories"`
	Letter      string                   `json:"letter"`
	Points      float64                  `json:"points"`
	GradedCount int                      `json:"graded_count"`
	Weighted    bool                     `json:"weighted"`
}

// ClassGrade computes the weighted (or raw-points fallback) grade for a
// class. anticipated maps pending-assignment ids to hypothetical
// percentage scores; pass nil for the current grade, non-nil for a
// projection. Returns nil when there is nothing graded and nothing
// anticipated; callers must treat that as "no grade yet", not zero.
func (s *Snapshot) ClassGrade(classID uint, anticipated map[uint]float64, scale Scale) *ClassGradeResult {
	graded := make([]GradedAssignment, 0)
	for _, a := range s.Graded {
		if a.ClassID == classID {
			graded = append(graded, a)
		}
	}

	pending := make([]PendingAssignment, 0)
	if anticipated != nil {
		for _, a := range s.Pending {
			if a.ClassID == classID && anticipated[a.ID] > 0 {
				pending = append(pending, a)
			}
		}
	}

	if len(graded) == 0 && len(pending) == 0 {
		return nil
	}

	categories := make(map[string]CategoryScore)
	for _, a := range graded {
		cat := categoryOrDefault(a.Category)
		score := categories[cat]
		score.Total += a.TotalPoints
		score.Earned += a.EarnedPoints
		categories[cat] = score
	}
	for _, a := range pending {
		cat := categoryOrDefault(a.Category)
		score := categories[cat]
		score.Total += a.TotalPoints
		score.Earned += anticipated[a.ID] / 100 * a.TotalPoints
		categories[cat] = score
	}

	// Categories with zero total points carry no signal and are dropped
	// before weights are considered.
	totalWeight := 0.0
	for cat, score := range categories {
		if score.Total <= 0 {
			delete(categories, cat)
			continue
		}
		score.Percentage = score.Earned / score.Total * 100
		score.Weight = s.Weights[WeightKey(classID, cat)]
		categories[cat] = score
		totalWeight += score.Weight
	}

	result := &ClassGradeResult{Categories: categories, GradedCount: len(graded)}

	if totalWeight > 0 && totalWeight <= 100 {
		// Weighted mode. Zero-weight categories are excluded from both
		// the numerator and the denominator so they never drag the
		// grade to zero.
		weightedSum := 0.0
		usedWeight := 0.0
		for _, score := range categories {
			if score.Weight > 0 {
				weightedSum += score.Percentage * (score.Weight / 100)
				usedWeight += score.Weight
			}
		}
		if usedWeight > 0 {
			result.Percentage = weightedSum / usedWeight * 100
		}
		result.Weighted = true
	} else {
		// Fallback: raw points across everything graded plus anything
		// anticipated. A total weight above 100 is not a valid scheme
		// and lands here too.
		totalPoints := 0.0
		earnedPoints := 0.0
		for _, a := range graded {
			totalPoints += a.TotalPoints
			earnedPoints += a.EarnedPoints
		}
		for _, a := range pending {
			totalPoints += a.TotalPoints
			earnedPoints += anticipated[a.ID] / 100 * a.TotalPoints
		}
		if totalPoints > 0 {
			result.Percentage = earnedPoints / totalPoints * 100
		}
	}

	result.Letter = scale.Letter(result.Percentage)
	result.Points = scale.Points(result.Percentage)

	return result
}
