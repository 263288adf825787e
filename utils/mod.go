package utils

import (
	"math"
	"strconv"
	"time"
)

// Round rounds x half away from zero to the given number of decimal digits.
func Round(x float64, digits int) float64 {
	scale := math.Pow(10, float64(digits))
	return math.Round(x*scale) / scale
}

// FormatSeconds prints d in seconds with at most 5 decimal digits, e.g. "0.01234".
func FormatSeconds(d time.Duration) string {
	return strconv.FormatFloat(Round(d.Seconds(), 5), 'f', -1, 64)
}
