// Package source defines the retrieval boundary for the tabular movie data.
// The engine never touches files or the network directly; it asks a Fetcher
// for a source by ID and treats a missing optional source as an empty table.
package source

import (
	"context"
	"errors"
)

// Source IDs for the three tabular inputs.
const (
	// Movies is the primary movie metadata source. Required.
	Movies = "movies_metadata.csv"
	// Tags assigns free-text user tags to movies. Optional.
	Tags = "tags.csv"
	// Ratings assigns individual numeric ratings to movies. Optional.
	Ratings = "ratings.csv"
)

// ErrNotFound signals a missing source. The catalog builder recovers from it
// for the optional sources and fails ingestion for the primary one.
var ErrNotFound = errors.New("source: not found")

// Fetcher retrieves a raw tabular source by ID.
type Fetcher interface {
	Fetch(ctx context.Context, sourceID string) ([]byte, error)
}
