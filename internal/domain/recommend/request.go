package recommend

import (
	"fmt"

	"github.com/moodflix/moodflix/internal/domain/mood"
)

// Result limits.
const (
	DefaultLimit = 10
	MaxLimit     = 100
	// PageStep is how many extra results a load-more request reveals.
	PageStep = 10
)

// Request is a validated recommendation query.
type Request struct {
	moods      mood.Vector
	preference mood.Preference
	limit      int
}

// New validates and normalizes recommendation parameters.
// Defaults: preference=match, limit=10. An empty mood vector is legal and
// yields an empty result by contract.
func New(moods mood.Vector, preference mood.Preference, limit int) (Request, error) {
	if preference == "" {
		preference = mood.Match
	}
	if !preference.IsValid() {
		return Request{}, fmt.Errorf("invalid preference: %q", preference)
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Request{moods: moods, preference: preference, limit: limit}, nil
}

// Moods returns the mood vector.
func (r *Request) Moods() mood.Vector { return r.moods }

// Preference returns the preference mode.
func (r *Request) Preference() mood.Preference { return r.preference }

// Limit returns the maximum number of results.
func (r *Request) Limit() int { return r.limit }
