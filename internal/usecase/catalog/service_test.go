package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/moodflix/moodflix/internal/domain"
	"github.com/moodflix/moodflix/internal/source"
)

// --- Mocks ---

type mockFetcher struct {
	sources    map[string][]byte
	fetchCount atomic.Int32
}

func (m *mockFetcher) Fetch(_ context.Context, sourceID string) ([]byte, error) {
	if sourceID == source.Movies {
		m.fetchCount.Add(1)
	}
	data, ok := m.sources[sourceID]
	if !ok {
		return nil, source.ErrNotFound
	}
	return data, nil
}

const moviesCSV = "id,title,genres,overview,release_date,vote_average,popularity,vote_count,runtime,tagline,poster_path\n" +
	"1,Up,\"Animation, Comedy\",a balloon adventure,2009-05-29,7.9,30,9000,96,,/up.jpg\n" +
	"2,Heat,\"Action, Crime\",a heist thriller,1995-12-15,7.8,20,6000,170,,/heat.jpg\n"

func newTestService(sources map[string][]byte) (*Service, *mockFetcher) {
	fetcher := &mockFetcher{sources: sources}
	return New(fetcher, Limits{}, nil), fetcher
}

// --- Tests ---

func TestLoad(t *testing.T) {
	svc, _ := newTestService(map[string][]byte{
		source.Movies:  []byte(moviesCSV),
		source.Tags:    []byte("userId,movieId,tag,timestamp\n10,1,uplifting,0\n"),
		source.Ratings: []byte("userId,movieId,rating,timestamp\n10,1,8.0,0\n10,1,9.0,0\n"),
	})

	catalog, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(catalog))
	}
	if catalog[0].VoteAverage != 8.5 {
		t.Errorf("joined rating mean = %f, want 8.5", catalog[0].VoteAverage)
	}
	if len(catalog[0].Keywords) != 1 || catalog[0].Keywords[0] != "uplifting" {
		t.Errorf("keywords = %v", catalog[0].Keywords)
	}
	// Second movie has no joined ratings: falls back to its own field.
	if catalog[1].VoteAverage != 7.8 {
		t.Errorf("fallback vote average = %f, want 7.8", catalog[1].VoteAverage)
	}
}

func TestLoad_MissingOptionalSources(t *testing.T) {
	svc, _ := newTestService(map[string][]byte{source.Movies: []byte(moviesCSV)})

	catalog, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("optional sources must not fail the build: %v", err)
	}
	if len(catalog) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(catalog))
	}
	if catalog[0].VoteAverage != 7.9 {
		t.Errorf("vote average = %f, want raw field 7.9", catalog[0].VoteAverage)
	}
}

func TestLoad_MissingPrimarySource(t *testing.T) {
	svc, _ := newTestService(map[string][]byte{})

	_, err := svc.Load(context.Background())
	if !errors.Is(err, domain.ErrIngestion) {
		t.Fatalf("expected ErrIngestion, got %v", err)
	}
}

func TestLoad_HeaderOnlyPrimarySource(t *testing.T) {
	svc, _ := newTestService(map[string][]byte{
		source.Movies: []byte("id,title,genres,vote_average\n"),
	})

	_, err := svc.Load(context.Background())
	if !errors.Is(err, domain.ErrIngestion) {
		t.Fatalf("expected ErrIngestion for zero rows, got %v", err)
	}
}

func TestLoad_NothingSurvivesFiltering(t *testing.T) {
	svc, _ := newTestService(map[string][]byte{
		source.Movies: []byte("id,title,genres,vote_average\n1,Bad,Drama,3.0\n"),
	})

	_, err := svc.Load(context.Background())
	if !errors.Is(err, domain.ErrIngestion) {
		t.Fatalf("expected ErrIngestion when filtering drops everything, got %v", err)
	}
}

func TestLoad_BuildOnce(t *testing.T) {
	svc, fetcher := newTestService(map[string][]byte{source.Movies: []byte(moviesCSV)})

	const callers = 16
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Load(context.Background()); err != nil {
				t.Errorf("Load: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := fetcher.fetchCount.Load(); got != 1 {
		t.Errorf("primary source fetched %d times, want 1", got)
	}
	if svc.Size() != 2 {
		t.Errorf("catalog size = %d, want 2", svc.Size())
	}
}

func TestLoad_FailureNotCached(t *testing.T) {
	fetcher := &mockFetcher{sources: map[string][]byte{}}
	svc := New(fetcher, Limits{}, nil)

	if _, err := svc.Load(context.Background()); !errors.Is(err, domain.ErrIngestion) {
		t.Fatalf("expected ErrIngestion, got %v", err)
	}

	// Source appears later; a retry succeeds.
	fetcher.sources[source.Movies] = []byte(moviesCSV)
	catalog, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if len(catalog) != 2 {
		t.Errorf("expected 2 movies after retry, got %d", len(catalog))
	}
}
