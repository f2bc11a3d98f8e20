package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	p := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.Location != "" {
		t.Fatalf("Location = %q, want empty", p.Location)
	}
}

func TestLoad_MalformedFileReturnsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = [broken"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}
	p := Load(path)
	if p.Theme != defaultTheme || p.Location != "" {
		t.Fatalf("prefs = %#v, want defaults", p)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")

	saved := Prefs{Theme: "Slate", Location: "category=Electronics&page=2"}
	if err := Save(path, saved); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	p := Load(path)
	if p != saved {
		t.Fatalf("Load = %#v, want %#v", p, saved)
	}
}

func TestLoad_EmptyThemeFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"\"\nlocation = \"page=3\"\n"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}
	p := Load(path)
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want fallback %q", p.Theme, defaultTheme)
	}
	if p.Location != "page=3" {
		t.Fatalf("Location = %q, want page=3", p.Location)
	}
}
