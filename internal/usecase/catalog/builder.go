package catalog

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/moodflix/moodflix/internal/domain/movie"
)

// Limits bound catalog construction. Zero values are replaced by defaults.
type Limits struct {
	// MaxEntries caps the catalog at the first N rows surviving the filters.
	MaxEntries int
	// QualityFloor drops movies with an aggregate vote average below it.
	QualityFloor float64
	// RatingsSample caps how many rating rows are joined, for ingest cost.
	RatingsSample int
}

// Default catalog limits, matching the served dataset shape.
const (
	DefaultMaxEntries    = 10000
	DefaultQualityFloor  = 5.0
	DefaultRatingsSample = 50000
)

// withDefaults fills unset limits.
func (l Limits) withDefaults() Limits {
	if l.MaxEntries <= 0 {
		l.MaxEntries = DefaultMaxEntries
	}
	if l.QualityFloor <= 0 {
		l.QualityFloor = DefaultQualityFloor
	}
	if l.RatingsSample <= 0 {
		l.RatingsSample = DefaultRatingsSample
	}
	return l
}

// buildTagMap folds tag rows into movieID -> lower-cased tags, in row order.
func buildTagMap(rows []Row) map[string][]string {
	tags := make(map[string][]string)
	for _, row := range rows {
		id := row["movieId"]
		tag := strings.ToLower(strings.TrimSpace(row["tag"]))
		if id == "" || tag == "" {
			continue
		}
		tags[id] = append(tags[id], tag)
	}
	return tags
}

// buildRatingMap folds rating rows into movieID -> ratings. Only the first
// sample-many rows are considered; unparsable ratings are dropped.
func buildRatingMap(rows []Row, sample int) map[string][]float64 {
	if len(rows) > sample {
		rows = rows[:sample]
	}
	ratings := make(map[string][]float64)
	for _, row := range rows {
		id := row["movieId"]
		if id == "" {
			continue
		}
		rating, err := strconv.ParseFloat(row["rating"], 64)
		if err != nil {
			continue
		}
		ratings[id] = append(ratings[id], rating)
	}
	return ratings
}

// buildCatalog joins tags and ratings onto the primary movie rows, normalizes
// and validates fields, drops low-quality or incomplete entries, and caps the
// result at the first MaxEntries survivors in source order.
func buildCatalog(
	movieRows []Row, tags map[string][]string, ratings map[string][]float64, limits Limits,
) []movie.Movie {
	limits = limits.withDefaults()

	catalog := make([]movie.Movie, 0, limits.MaxEntries)
	for _, row := range movieRows {
		title := strings.TrimSpace(row["title"])
		genres := parseGenres(row["genres"])
		if title == "" || len(genres) == 0 {
			continue
		}

		id := row["id"]
		voteAverage := aggregateRating(ratings[id], row["vote_average"])
		if voteAverage < limits.QualityFloor {
			continue
		}

		catalog = append(catalog, movie.Movie{
			ID:          id,
			Title:       title,
			Overview:    strings.TrimSpace(row["overview"]),
			Genres:      genres,
			ReleaseDate: row["release_date"],
			VoteAverage: voteAverage,
			PosterPath:  movie.NormalizePosterPath(row["poster_path"]),
			Keywords:    dedupe(tags[id]),
			Runtime:     parseFloat(row["runtime"]),
			Tagline:     row["tagline"],
			Popularity:  parseFloat(row["popularity"]),
			VoteCount:   parseInt(row["vote_count"]),
		})
		if len(catalog) == limits.MaxEntries {
			break
		}
	}
	return catalog
}

// aggregateRating is the mean of the joined ratings when any exist, else the
// row's own vote_average field, 0 if unparsable.
func aggregateRating(ratings []float64, rawVoteAverage string) float64 {
	if len(ratings) > 0 {
		sum := 0.0
		for _, r := range ratings {
			sum += r
		}
		return sum / float64(len(ratings))
	}
	return parseFloat(rawVoteAverage)
}

// parseGenres handles both shapes the dataset ships: a JSON array of
// {name: ...} objects or plain strings, and comma-separated text. The JSON
// attempt falls back to comma-split on any parse failure.
func parseGenres(raw string) []string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "[") {
		if names, ok := parseGenreArray(s); ok {
			return names
		}
	}
	return splitCommaList(s)
}

func parseGenreArray(s string) ([]string, bool) {
	var entries []json.RawMessage
	if err := json.Unmarshal([]byte(s), &entries); err != nil {
		return nil, false
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(entry, &obj); err == nil && obj.Name != "" {
			names = append(names, obj.Name)
			continue
		}
		var name string
		if err := json.Unmarshal(entry, &name); err == nil && name != "" {
			names = append(names, name)
		}
	}
	return names, true
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return v
}
