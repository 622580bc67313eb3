package academics

// Tier maps a minimum percentage to a letter grade and grade points.
type Tier struct {
	Min    float64
	Letter string
	Points float64
}

// Scale is an ordered list of grade tiers, highest cutoff first.
type Scale []Tier

// ScalePlusTiers is the 4.0 scale with A+ as a distinct tier above 97%.
// The GPA calculator converts stored percentages through this table.
var ScalePlusTiers = Scale{
	{97, "A+", 4.0},
	{93, "A", 4.0},
	{90, "A-", 3.67},
	{87, "B+", 3.33},
	{83, "B", 3.0},
	{80, "B-", 2.67},
	{77, "C+", 2.33},
	{73, "C", 2.0},
	{70, "C-", 1.67},
	{67, "D+", 1.33},
	{63, "D", 1.0},
	{60, "D-", 0.67},
}

// ScaleCollapsed folds A+ into A; the grade tracker and the home
// dashboard use this variant. Keep both tables separate: their call
// sites intentionally disagree.
var ScaleCollapsed = Scale{
	{93, "A", 4.0},
	{90, "A-", 3.67},
	{87, "B+", 3.33},
	{83, "B", 3.0},
	{80, "B-", 2.67},
	{77, "C+", 2.33},
	{73, "C", 2.0},
	{70, "C-", 1.67},
	{67, "D+", 1.33},
	{63, "D", 1.0},
	{60, "D-", 0.67},
}

// Letter returns the letter grade for a percentage, F below the lowest
// tier.
func (s Scale) Letter(percentage float64) string {
	for _, tier := range s {
		if percentage >= tier.Min {
			return tier.Letter
		}
	}
	return "F"
}

// Points returns the grade points for a percentage on the 4.0 scale.
func (s Scale) Points(percentage float64) float64 {
	for _, tier := range s {
		if percentage >= tier.Min {
			return tier.Points
		}
	}
	return 0.0
}
