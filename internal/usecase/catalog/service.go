// Package catalog turns the raw tabular sources into the immutable in-memory
// movie catalog the scorer runs over. The build happens at most once per
// process; every later call returns the cached result.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/moodflix/moodflix/internal/domain"
	"github.com/moodflix/moodflix/internal/domain/movie"
	"github.com/moodflix/moodflix/internal/metrics"
	"github.com/moodflix/moodflix/internal/source"
)

// Service loads and caches the movie catalog.
type Service struct {
	fetcher source.Fetcher
	limits  Limits
	logger  *zap.Logger

	mu      sync.Mutex
	catalog []movie.Movie
}

// New creates a catalog service. logger may be nil.
func New(fetcher source.Fetcher, limits Limits, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{fetcher: fetcher, limits: limits.withDefaults(), logger: logger}
}

// Load returns the catalog, building it on first use. Concurrent first calls
// serialize on the build so it runs at most once; a failed build is not
// cached, so a later call may retry.
func (s *Service) Load(ctx context.Context) ([]movie.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.catalog != nil {
		return s.catalog, nil
	}

	start := time.Now()
	catalog, err := s.build(ctx)
	if err != nil {
		metrics.CatalogBuildErrorsTotal.Inc()
		return nil, err
	}

	metrics.CatalogBuildDuration.Observe(time.Since(start).Seconds())
	metrics.CatalogSize.Set(float64(len(catalog)))
	s.logger.Info("catalog built",
		zap.Int("movies", len(catalog)),
		zap.Duration("took", time.Since(start)),
	)

	s.catalog = catalog
	return s.catalog, nil
}

// Size reports the cached catalog size, 0 before the first successful Load.
func (s *Service) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.catalog)
}

// build runs the full ingestion pass: fetch and parse the three sources, join
// tags and ratings onto the movie rows, filter, and cap.
func (s *Service) build(ctx context.Context) ([]movie.Movie, error) {
	movieData, err := s.fetcher.Fetch(ctx, source.Movies)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch %s: %w", domain.ErrIngestion, source.Movies, err)
	}
	movieRows := parseTable(movieData)
	if len(movieRows) == 0 {
		return nil, fmt.Errorf("%w: %s has no data rows", domain.ErrIngestion, source.Movies)
	}

	tags := buildTagMap(s.fetchOptional(ctx, source.Tags))
	ratings := buildRatingMap(s.fetchOptional(ctx, source.Ratings), s.limits.RatingsSample)

	catalog := buildCatalog(movieRows, tags, ratings, s.limits)
	if len(catalog) == 0 {
		return nil, fmt.Errorf("%w: no movies survived filtering (%d raw rows)",
			domain.ErrIngestion, len(movieRows))
	}
	return catalog, nil
}

// fetchOptional loads a secondary source, recovering a missing or unreadable
// one as an empty table with a warning.
func (s *Service) fetchOptional(ctx context.Context, sourceID string) []Row {
	data, err := s.fetcher.Fetch(ctx, sourceID)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			s.logger.Warn("optional source missing, proceeding without it",
				zap.String("source", sourceID))
		} else {
			s.logger.Warn("optional source unreadable, proceeding without it",
				zap.String("source", sourceID), zap.Error(err))
		}
		return nil
	}
	return parseTable(data)
}
