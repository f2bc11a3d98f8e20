package filter

import "testing"

func TestWithFilterFieldsResetPage(t *testing.T) {
	s := New().WithPage(5)
	if s.Page != 5 {
		t.Fatalf("Page = %d, want 5", s.Page)
	}

	if got := s.WithSearch("lamp"); got.Page != 1 || got.Search != "lamp" {
		t.Fatalf("WithSearch = %#v, want search=lamp page=1", got)
	}
	if got := s.WithCategory("Electronics"); got.Page != 1 || got.Category != "Electronics" {
		t.Fatalf("WithCategory = %#v, want category=Electronics page=1", got)
	}
	if got := s.WithCondition("Used"); got.Page != 1 || got.Condition != "Used" {
		t.Fatalf("WithCondition = %#v, want condition=Used page=1", got)
	}

	// The receiver is untouched.
	if s.Page != 5 || s.Search != "" {
		t.Fatalf("receiver mutated: %#v", s)
	}
}

func TestWithPageClampsBelowOne(t *testing.T) {
	if got := New().WithPage(0); got.Page != 1 {
		t.Fatalf("WithPage(0).Page = %d, want 1", got.Page)
	}
	if got := New().WithPage(-3); got.Page != 1 {
		t.Fatalf("WithPage(-3).Page = %d, want 1", got.Page)
	}
}

func TestEncode_OmitsDefaults(t *testing.T) {
	if got := New().Encode(); got != "" {
		t.Fatalf("default Encode = %q, want empty", got)
	}

	s := State{Category: "Electronics", Page: 1}
	got := s.Encode()
	if got != "category=Electronics" {
		t.Fatalf("Encode = %q, want category=Electronics", got)
	}

	s = State{Search: "desk lamp", Condition: "Like New", Page: 3}
	got = s.Encode()
	want := "condition=Like+New&page=3&q=desk+lamp"
	if got != want {
		t.Fatalf("Encode = %q, want %q", got, want)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	states := []State{
		New(),
		New().WithSearch("desk lamp"),
		New().WithCategory("Room Essentials"),
		New().WithCondition("Used"),
		{Search: "calc", Category: "Books & Study Material", Condition: "New", Page: 7},
	}
	for _, s := range states {
		if got := Decode(s.Encode()); got != s {
			t.Fatalf("Decode(Encode(%#v)) = %#v", s, got)
		}
	}
}

func TestDecode_Fallbacks(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want State
	}{
		{"empty", "", New()},
		{"leading question mark", "?category=Electronics", New().WithCategory("Electronics")},
		{"malformed query", "%zz=1", New()},
		{"unparseable page", "page=abc", New()},
		{"zero page", "page=0", New()},
		{"negative page", "page=-2", New()},
		{"unknown category", "category=Furniture", New()},
		{"unknown condition", "condition=Broken", New()},
		{"unknown fields with valid page", "category=Furniture&page=4", New().WithPage(4)},
	}
	for _, tc := range cases {
		if got := Decode(tc.raw); got != tc.want {
			t.Fatalf("%s: Decode(%q) = %#v, want %#v", tc.name, tc.raw, got, tc.want)
		}
	}
}
