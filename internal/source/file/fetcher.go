// Package file implements source.Fetcher over a local data directory.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/moodflix/moodflix/internal/source"
)

// Compile-time check: Fetcher implements source.Fetcher.
var _ source.Fetcher = (*Fetcher)(nil)

// Fetcher reads tabular sources from a directory.
type Fetcher struct {
	dir string
}

// New creates a file fetcher rooted at dir.
func New(dir string) (*Fetcher, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("data directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data directory %s is not a directory", dir)
	}
	return &Fetcher{dir: dir}, nil
}

// Fetch reads a source by ID. Returns source.ErrNotFound for missing files.
// Source IDs that escape the data directory are rejected.
func (f *Fetcher) Fetch(ctx context.Context, sourceID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean := filepath.Clean(sourceID)
	if clean != sourceID || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("invalid source id %q", sourceID)
	}

	data, err := os.ReadFile(filepath.Join(f.dir, clean))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", source.ErrNotFound, sourceID)
		}
		return nil, fmt.Errorf("read source %s: %w", sourceID, err)
	}
	return data, nil
}

// Ping checks that the data directory is still reachable.
func (f *Fetcher) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := os.Stat(f.dir); err != nil {
		return fmt.Errorf("data directory %s: %w", f.dir, err)
	}
	return nil
}
