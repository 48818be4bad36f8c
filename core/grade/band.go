package grade

import "math"

// DefaultTotalPoints is used when the graded assignment is unknown.
const DefaultTotalPoints = 100

// Bands
const (
	BandExcellent = "excellent"
	BandGood      = "good"
	BandFair      = "fair"
	BandPassing   = "passing"
	BandFailing   = "failing"
)

// Percentage returns score out of totalPoints as a rounded percentage.
// A non-positive totalPoints falls back to DefaultTotalPoints.
func Percentage(score float64, totalPoints int) int {
	if totalPoints <= 0 {
		totalPoints = DefaultTotalPoints
	}
	return int(math.Round(score / float64(totalPoints) * 100))
}

// Band classifies a percentage.
func Band(percentage int) string {
	switch {
	case percentage >= 90:
		return BandExcellent
	case percentage >= 80:
		return BandGood
	case percentage >= 70:
		return BandFair
	case percentage >= 60:
		return BandPassing
	default:
		return BandFailing
	}
}
