package recommend

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/moodflix/moodflix/internal/domain/mood"
	"github.com/moodflix/moodflix/internal/domain/movie"
)

// Score-shaping policy. Tunable in one place; the rest of the scorer only
// refers to these names.
const (
	// Mood relevance blend across the three alignment signals.
	genreWeight   = 0.5
	keywordWeight = 0.3
	tagWeight     = 0.2

	// qualityBoostFloor triggers the quality-dominant reweighting: above it,
	// relevance is compressed toward 1 so strong movies surface regardless of
	// a weak mood fit.
	qualityBoostFloor  = 0.7
	qualityBoostFactor = 0.7
	qualityBoostBase   = 0.3

	// changeRelevanceFloor keeps inverted relevance above a minimum so the
	// "change" mode still honors the quality floor.
	changeRelevanceFloor = 0.1

	// Final blend of mood relevance against intrinsic quality.
	relevanceWeight    = 0.8
	finalQualityWeight = 0.2

	// minScore drops movies that barely registered against the vector.
	minScore = 0.01
	// tieEpsilon treats scores this close as equal; ties break on vote average.
	tieEpsilon = 0.01
)

// Quality sub-score weights and bonuses.
const (
	ratingWeight      = 0.4
	popularityWeight  = 0.2
	popularityScale   = 50.0
	reliabilityWeight = 0.2
	reliabilityScale  = 1000.0

	recentYears     = 5
	recentBonus     = 0.1
	modernYears     = 15
	modernBonus     = 0.05
	runtimeBonusMin = 80.0
	runtimeBonusMax = 180.0
	runtimeBonus    = 0.1
)

// subScores holds the per-movie signal breakdown, kept around for the match
// reason templates.
type subScores struct {
	genre   float64
	keyword float64
	tag     float64
	quality float64
}

// scoreMovie computes the final [0,1] score for one movie against the vector.
func scoreMovie(
	m *movie.Movie, moods mood.Vector, preference mood.Preference, currentYear int,
) (float64, subScores) {
	sub := subScores{
		genre:   genreScore(m, moods),
		keyword: keywordScore(m, moods),
		tag:     tagScore(m, moods),
		quality: qualityScore(m, currentYear),
	}

	relevance := genreWeight*sub.genre + keywordWeight*sub.keyword + tagWeight*sub.tag
	if sub.quality > qualityBoostFloor {
		relevance = relevance*qualityBoostFactor + qualityBoostBase
	}
	if preference == mood.Change {
		relevance = math.Max(changeRelevanceFloor, 1-relevance)
	}

	final := relevanceWeight*relevance + finalQualityWeight*sub.quality
	return clamp01(final), sub
}

// genreScore measures how much of the movie's genre list carries the moods in
// the vector, weighted by relative intensity.
func genreScore(m *movie.Movie, moods mood.Vector) float64 {
	total := moods.TotalIntensity()
	if total == 0 || len(m.Genres) == 0 {
		return 0
	}

	score := 0.0
	for md, intensity := range moods {
		weight := float64(intensity) / float64(total)
		matches := 0
		for _, genre := range m.Genres {
			g := strings.ToLower(genre)
			for _, signal := range md.Genres() {
				sg := strings.ToLower(signal)
				if strings.Contains(g, sg) || strings.Contains(sg, g) {
					matches++
					break
				}
			}
		}
		score += float64(matches) / float64(len(m.Genres)) * weight
	}
	return math.Min(1, score)
}

// keywordScore matches mood keyword signals as substrings of the movie's
// overview, tagline, and tags, weighted by relative intensity.
func keywordScore(m *movie.Movie, moods mood.Vector) float64 {
	total := moods.TotalIntensity()
	if total == 0 {
		return 0
	}

	text := m.SearchText()
	score := 0.0
	for md, intensity := range moods {
		signals := md.Keywords()
		if len(signals) == 0 {
			continue
		}
		weight := float64(intensity) / float64(total)
		matches := 0
		for _, signal := range signals {
			if strings.Contains(text, strings.ToLower(signal)) {
				matches++
			}
		}
		score += float64(matches) / float64(len(signals)) * weight
	}
	return score
}

// tagScore restricts matching to the movie's own tag set, matched in either
// substring direction against the mood keyword signals.
func tagScore(m *movie.Movie, moods mood.Vector) float64 {
	total := moods.TotalIntensity()
	if total == 0 || len(m.Keywords) == 0 {
		return 0
	}

	score := 0.0
	for md, intensity := range moods {
		weight := float64(intensity) / float64(total)
		matches := 0
		for _, tag := range m.Keywords {
			for _, signal := range md.Keywords() {
				s := strings.ToLower(signal)
				if strings.Contains(tag, s) || strings.Contains(s, tag) {
					matches++
					break
				}
			}
		}
		score += float64(matches) / float64(len(m.Keywords)) * weight
	}
	return score
}

// qualityScore composes rating, popularity, vote-count reliability, recency,
// and runtime suitability into a [0,1] intrinsic quality signal.
func qualityScore(m *movie.Movie, currentYear int) float64 {
	score := clamp01((m.VoteAverage-4)/6) * ratingWeight

	if m.Popularity > 0 {
		score += math.Min(1, m.Popularity/popularityScale) * popularityWeight
	}
	if m.VoteCount > 0 {
		score += math.Min(1, float64(m.VoteCount)/reliabilityScale) * reliabilityWeight
	}

	if year := releaseYear(m.ReleaseDate); year > 0 {
		switch age := currentYear - year; {
		case age <= recentYears:
			score += recentBonus
		case age <= modernYears:
			score += modernBonus
		}
	}

	if m.Runtime > runtimeBonusMin && m.Runtime < runtimeBonusMax {
		score += runtimeBonus
	}

	return math.Min(1, score)
}

// releaseYear extracts the year from a release date, 0 when unknown.
func releaseYear(date string) int {
	if t, err := time.Parse("2006-01-02", date); err == nil {
		return t.Year()
	}
	if len(date) >= 4 {
		if year, err := strconv.Atoi(date[:4]); err == nil && year > 0 {
			return year
		}
	}
	return 0
}

// rank scores every catalog entry, drops the barely-relevant ones, and sorts
// descending by score with near-ties broken by vote average.
func rank(
	catalog []movie.Movie, moods mood.Vector, preference mood.Preference, currentYear int,
) []movie.Recommendation {
	scored := make([]movie.Recommendation, 0, len(catalog))
	for i := range catalog {
		m := &catalog[i]
		score, sub := scoreMovie(m, moods, preference, currentYear)
		if score <= minScore {
			continue
		}
		scored = append(scored, movie.Recommendation{
			Movie:       *m,
			Score:       score,
			MatchReason: matchReason(moods, preference, score, sub),
		})
	}

	sort.Slice(scored, func(i, j int) bool {
		if math.Abs(scored[i].Score-scored[j].Score) > tieEpsilon {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].VoteAverage > scored[j].VoteAverage
	})
	return scored
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
