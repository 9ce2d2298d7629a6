package catalog

import (
	"fmt"
	"testing"
)

func TestParseGenres(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"json objects", `[{"id": 16, "name": "Animation"}, {"id": 35, "name": "Comedy"}]`,
			[]string{"Animation", "Comedy"}},
		{"json strings", `["Drama", "Romance"]`, []string{"Drama", "Romance"}},
		{"comma separated", "Action, Crime , Thriller", []string{"Action", "Crime", "Thriller"}},
		{"python-style falls back to split", `[{'id': 16, 'name': 'Animation'}]`,
			[]string{"[{'id': 16", "'name': 'Animation'}]"}},
		{"empty", "", nil},
		{"whitespace", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseGenres(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("parseGenres(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("parseGenres(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBuildTagMap(t *testing.T) {
	rows := []Row{
		{"movieId": "1", "tag": " Funny "},
		{"movieId": "1", "tag": "CLASSIC"},
		{"movieId": "2", "tag": "dark"},
		{"movieId": "", "tag": "orphan"},
		{"movieId": "3", "tag": ""},
	}
	tags := buildTagMap(rows)
	if len(tags) != 2 {
		t.Fatalf("expected 2 movies with tags, got %d", len(tags))
	}
	if tags["1"][0] != "funny" || tags["1"][1] != "classic" {
		t.Errorf("tags for movie 1: %v", tags["1"])
	}
}

func TestBuildRatingMap_SampleCap(t *testing.T) {
	rows := make([]Row, 0, 20)
	for i := 0; i < 20; i++ {
		rows = append(rows, Row{"movieId": "1", "rating": "4.0"})
	}
	ratings := buildRatingMap(rows, 5)
	if len(ratings["1"]) != 5 {
		t.Errorf("expected 5 sampled ratings, got %d", len(ratings["1"]))
	}
}

func TestBuildRatingMap_DropsUnparsable(t *testing.T) {
	rows := []Row{
		{"movieId": "1", "rating": "4.5"},
		{"movieId": "1", "rating": "not-a-number"},
	}
	ratings := buildRatingMap(rows, 100)
	if len(ratings["1"]) != 1 {
		t.Errorf("expected 1 rating, got %v", ratings["1"])
	}
}

func movieRow(id, title, genres, voteAverage string) Row {
	return Row{
		"id": id, "title": title, "genres": genres, "vote_average": voteAverage,
		"overview": "an overview", "release_date": "2020-01-01",
		"popularity": "12.5", "vote_count": "350", "runtime": "100",
	}
}

func TestBuildCatalog_Filters(t *testing.T) {
	rows := []Row{
		movieRow("1", "Keeper", "Comedy", "7.2"),
		movieRow("2", "", "Comedy", "9.0"),        // empty title
		movieRow("3", "No Genres", "", "9.0"),     // empty genres
		movieRow("4", "Low Quality", "Drama", "4.9"),
	}
	catalog := buildCatalog(rows, nil, nil, Limits{})
	if len(catalog) != 1 {
		t.Fatalf("expected 1 movie, got %d", len(catalog))
	}
	if catalog[0].Title != "Keeper" {
		t.Errorf("kept movie = %q", catalog[0].Title)
	}
	for _, m := range catalog {
		if m.VoteAverage < DefaultQualityFloor {
			t.Errorf("movie %s below quality floor: %f", m.Title, m.VoteAverage)
		}
	}
}

func TestBuildCatalog_AggregateRatingPrefersJoinedRatings(t *testing.T) {
	rows := []Row{movieRow("1", "Rated", "Drama", "2.0")}
	ratings := map[string][]float64{"1": {6.0, 8.0}}
	catalog := buildCatalog(rows, nil, ratings, Limits{})
	if len(catalog) != 1 {
		t.Fatalf("expected 1 movie, got %d", len(catalog))
	}
	if catalog[0].VoteAverage != 7.0 {
		t.Errorf("vote average = %f, want 7.0", catalog[0].VoteAverage)
	}
}

func TestBuildCatalog_FallsBackToRowVoteAverage(t *testing.T) {
	rows := []Row{
		movieRow("1", "Own Field", "Drama", "6.5"),
		movieRow("2", "Unparsable", "Drama", "n/a"), // parses to 0, dropped by floor
	}
	catalog := buildCatalog(rows, nil, nil, Limits{})
	if len(catalog) != 1 || catalog[0].VoteAverage != 6.5 {
		t.Fatalf("unexpected catalog: %+v", catalog)
	}
}

func TestBuildCatalog_JoinsTagsDeduplicated(t *testing.T) {
	rows := []Row{movieRow("1", "Tagged", "Comedy", "7.0")}
	tags := map[string][]string{"1": {"funny", "classic", "funny"}}
	catalog := buildCatalog(rows, tags, nil, Limits{})
	if len(catalog[0].Keywords) != 2 {
		t.Errorf("keywords = %v, want deduplicated pair", catalog[0].Keywords)
	}
}

func TestBuildCatalog_CapsEntries(t *testing.T) {
	rows := make([]Row, 0, 30)
	for i := 0; i < 30; i++ {
		rows = append(rows, movieRow(fmt.Sprintf("%d", i), fmt.Sprintf("Movie %d", i), "Drama", "7.0"))
	}
	catalog := buildCatalog(rows, nil, nil, Limits{MaxEntries: 10})
	if len(catalog) != 10 {
		t.Fatalf("expected 10 movies, got %d", len(catalog))
	}
	// First-N in source order, not a sample.
	if catalog[0].Title != "Movie 0" || catalog[9].Title != "Movie 9" {
		t.Errorf("cap must keep the first rows in order: %s ... %s",
			catalog[0].Title, catalog[9].Title)
	}
}

func TestBuildCatalog_NormalizesPoster(t *testing.T) {
	row := movieRow("1", "Poster", "Drama", "7.0")
	row["poster_path"] = "/valid_poster.jpg"
	bad := movieRow("2", "Bad Poster", "Drama", "7.0")
	bad["poster_path"] = "not a poster!"
	catalog := buildCatalog([]Row{row, bad}, nil, nil, Limits{})
	if catalog[0].PosterPath != "valid_poster.jpg" {
		t.Errorf("poster = %q", catalog[0].PosterPath)
	}
	if catalog[1].PosterPath != "" {
		t.Errorf("invalid poster should be cleared, got %q", catalog[1].PosterPath)
	}
}
