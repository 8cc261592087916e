package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a longer product name", 10, "a longer …"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
		{"", 5, ""},
		{"crème brûlée deluxe", 12, "crème brûlé…"},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.max); got != tc.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{9.99, "$9.99"},
		{0, "$0.00"},
		{1234.5, "$1234.50"},
		{49.999, "$50.00"},
	}
	for _, tc := range cases {
		if got := formatPrice(tc.in); got != tc.want {
			t.Fatalf("formatPrice(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRatingStars(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "☆☆☆☆☆"},
		{2.4, "★★☆☆☆"},
		{2.56, "★★★☆☆"},
		{4.64, "★★★★★"},
		{5, "★★★★★"},
		{-1, "☆☆☆☆☆"},
		{9, "★★★★★"},
	}
	for _, tc := range cases {
		if got := ratingStars(tc.in); got != tc.want {
			t.Fatalf("ratingStars(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		v, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-2, 0, 10, 0},
		{12, 0, 10, 10},
		{3, 5, 2, 5},
	}
	for _, tc := range cases {
		if got := clamp(tc.v, tc.lo, tc.hi); got != tc.want {
			t.Fatalf("clamp(%d, %d, %d) = %d, want %d", tc.v, tc.lo, tc.hi, got, tc.want)
		}
	}
}
