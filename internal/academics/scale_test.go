package academics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScaleLetterBoundaries(t *testing.T) {
	cases := []struct {
		percentage float64
		plus       string
		collapsed  string
	}{
		{100, "A+", "A"},
		{97, "A+", "A"},
		{96.99, "A", "A"},
		{93, "A", "A"},
		{90, "A-", "A-"},
		{87, "B+", "B+"},
		{83.33, "B", "B"},
		{60, "D-", "D-"},
		{59.99, "F", "F"},
		{0, "F", "F"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.plus, ScalePlusTiers.Letter(tc.percentage), "plus scale at %.2f", tc.percentage)
		require.Equal(t, tc.collapsed, ScaleCollapsed.Letter(tc.percentage), "collapsed scale at %.2f", tc.percentage)
	}
}

func TestScalePoints(t *testing.T) {
	require.Equal(t, 4.0, ScalePlusTiers.Points(98))
	require.Equal(t, 3.33, ScalePlusTiers.Points(87))
	require.Equal(t, 0.67, ScalePlusTiers.Points(60))
	require.Equal(t, 0.0, ScalePlusTiers.Points(59.9))
	require.Equal(t, 4.0, ScaleCollapsed.Points(93))
	require.Equal(t, 0.0, ScaleCollapsed.Points(12))
}
