package ui

import "testing"

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "desk lamp", 20, "desk lamp"},
		{"exact", "abc", 3, "abc"},
		{"trimmed", "  desk lamp  ", 20, "desk lamp"},
		{"ellipsis", "mechanical keyboard", 10, "mechani..."},
		{"tiny_limit", "abcd", 2, "ab"},
		{"no_limit", "anything", 0, "anything"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Fatalf("padRight = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abcdef" {
		t.Fatalf("padRight should not trim, got %q", got)
	}
	if got := padRight("x", 0); got != "x" {
		t.Fatalf("padRight zero width = %q", got)
	}
}

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		name string
		in   float64
		want string
	}{
		{"whole", 450, "₹450"},
		{"thousands", 12500, "₹12,500"},
		{"lakhs", 1250000, "₹1,250,000"},
		{"fraction", 99.5, "₹99.50"},
		{"fraction_grouped", 12345.75, "₹12,345.75"},
		{"zero", 0, "₹0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatPrice(tc.in); got != tc.want {
				t.Fatalf("formatPrice(%v) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
