package ui

import (
	"fmt"
	"strings"
)

// truncate shortens s to max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// formatPrice renders a price in dollars with two decimals.
func formatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

// ratingStars renders a rating in [0,5] as filled and empty stars,
// rounding to the nearest whole star.
func ratingStars(rating float64) string {
	filled := int(rating + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
