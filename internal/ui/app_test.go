package ui

import (
	"testing"

	"github.com/hawkerdev/hawker/internal/bazaar"
)

func TestCycleValue(t *testing.T) {
	values := []string{"New", "Like New", "Used"}
	cases := []struct {
		name    string
		current string
		want    string
	}{
		{"empty_to_first", "", "New"},
		{"advance", "New", "Like New"},
		{"last_wraps_to_empty", "Used", ""},
		{"unknown_resets", "Broken", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cycleValue(tc.current, values); got != tc.want {
				t.Fatalf("cycleValue(%q) = %q, want %q", tc.current, got, tc.want)
			}
		})
	}

	if got := cycleValue("", nil); got != "" {
		t.Fatalf("cycleValue with no values = %q, want empty", got)
	}
}

func TestCycleValueCoversCatalogVocabulary(t *testing.T) {
	// Cycling from empty through every category must land back on empty.
	current := ""
	for range bazaar.Categories {
		current = cycleValue(current, bazaar.Categories)
		if current == "" {
			t.Fatalf("cycle ended early")
		}
	}
	if got := cycleValue(current, bazaar.Categories); got != "" {
		t.Fatalf("full cycle should return to empty, got %q", got)
	}
}
