package catalog

import (
	"math"
	"strings"
)

// MaxRating is the top of the restaurant rating scale
const MaxRating = 5.0

// StarGlyph is repeated once per star
const StarGlyph = "★"

// StarCount rounds a rating to the nearest whole star, ties rounding up
func StarCount(rating float64) int {
	return int(math.Floor(rating + 0.5))
}

// Stars renders a rating as a run of star glyphs
func Stars(rating float64) string {
	n := StarCount(rating)
	if n < 0 {
		n = 0
	}
	return strings.Repeat(StarGlyph, n)
}
