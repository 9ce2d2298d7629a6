package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/moodflix/moodflix/internal/source"
)

func TestFetch(t *testing.T) {
	dir := t.TempDir()
	want := []byte("id,title\n1,Up\n")
	if err := os.WriteFile(filepath.Join(dir, source.Movies), want, 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := f.Fetch(context.Background(), source.Movies)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Fetch = %q, want %q", got, want)
	}
}

func TestFetch_Missing(t *testing.T) {
	f, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = f.Fetch(context.Background(), source.Tags)
	if !errors.Is(err, source.ErrNotFound) {
		t.Fatalf("expected source.ErrNotFound, got %v", err)
	}
}

func TestFetch_RejectsTraversal(t *testing.T) {
	f, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, id := range []string{"../etc/passwd", "/etc/passwd", "a/../../b"} {
		if _, err := f.Fetch(context.Background(), id); err == nil {
			t.Errorf("expected error for source id %q", id)
		}
	}
}

func TestNew_MissingDir(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
