package credential

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProvider_SeedsFromTokenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token")
	if err := os.WriteFile(path, []byte("tok-123\n"), 0o600); err != nil {
		t.Fatalf("write token file: %v", err)
	}

	p := NewProvider("", path)
	if got := p.Token(); got != "tok-123" {
		t.Fatalf("Token = %q, want tok-123", got)
	}
	if !p.Authenticated() {
		t.Fatal("Authenticated = false, want true")
	}
}

func TestProvider_ExplicitTokenWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token")
	if err := os.WriteFile(path, []byte("file-token"), 0o600); err != nil {
		t.Fatalf("write token file: %v", err)
	}

	p := NewProvider("env-token", path)
	if got := p.Token(); got != "env-token" {
		t.Fatalf("Token = %q, want env-token", got)
	}
}

func TestProvider_MissingFileMeansUnauthenticated(t *testing.T) {
	p := NewProvider("", filepath.Join(t.TempDir(), "absent"))
	if p.Authenticated() {
		t.Fatal("Authenticated = true, want false")
	}
}

func TestProvider_SetNotifiesAndPersists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "token")
	p := NewProvider("", path)

	var notified []string
	p.Subscribe(func(token string) { notified = append(notified, token) })

	if err := p.Set("new-tok"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if len(notified) != 1 || notified[0] != "new-tok" {
		t.Fatalf("notifications = %v, want [new-tok]", notified)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read persisted token: %v", err)
	}
	if string(data) != "new-tok\n" {
		t.Fatalf("persisted token = %q, want new-tok\\n", data)
	}

	// Setting the same token again is a no-op.
	if err := p.Set("new-tok"); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if len(notified) != 1 {
		t.Fatalf("notifications = %v, want no duplicate", notified)
	}

	// Clear notifies with "" and removes the file.
	if err := p.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}
	if len(notified) != 2 || notified[1] != "" {
		t.Fatalf("notifications = %v, want trailing empty token", notified)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("token file still present after Clear: %v", err)
	}
}
