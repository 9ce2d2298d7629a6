package movie

import (
	"regexp"
	"strings"
)

// Movie is one catalog entry. Entries are built once during ingestion and
// shared read-only afterwards; nothing may mutate them past construction.
type Movie struct {
	ID          string
	Title       string
	Overview    string
	Genres      []string
	ReleaseDate string
	VoteAverage float64
	PosterPath  string
	Keywords    []string
	Runtime     float64
	Tagline     string
	Popularity  float64
	VoteCount   int
}

// Recommendation is a scored catalog entry. Created fresh per scoring call.
type Recommendation struct {
	Movie
	Score       float64
	MatchReason string
}

// posterPathPattern is the strict TMDB-style poster filename shape. Anything
// else is cleared rather than failing the record.
var posterPathPattern = regexp.MustCompile(`(?i)^[a-zA-Z0-9/_-]+\.(jpg|jpeg|png)$`)

// NormalizePosterPath trims the raw path, strips leading slashes, and clears
// paths that do not match the expected filename shape.
func NormalizePosterPath(raw string) string {
	p := strings.TrimSpace(raw)
	p = strings.TrimLeft(p, "/")
	if !posterPathPattern.MatchString(p) {
		return ""
	}
	return p
}

// SearchText concatenates overview, tagline, and keywords lower-cased.
// Keyword signal matching runs against this text.
func (m *Movie) SearchText() string {
	parts := make([]string, 0, 2+len(m.Keywords))
	parts = append(parts, m.Overview, m.Tagline)
	parts = append(parts, m.Keywords...)
	return strings.ToLower(strings.Join(parts, " "))
}
