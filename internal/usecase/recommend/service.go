// Package recommend scores and ranks the catalog against a mood vector.
// Scoring is a pure function over the immutable catalog, so calls may run
// concurrently without locking.
package recommend

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/moodflix/moodflix/internal/domain/mood"
	"github.com/moodflix/moodflix/internal/domain/movie"
	domrec "github.com/moodflix/moodflix/internal/domain/recommend"
	"github.com/moodflix/moodflix/internal/metrics"
)

// Service is the recommendation engine facade: it ensures the catalog exists
// and delegates to the scorer.
type Service struct {
	catalog CatalogLoader
	logger  *zap.Logger
	now     func() time.Time
}

// New creates a recommendation service. logger may be nil.
func New(catalog CatalogLoader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{catalog: catalog, logger: logger, now: time.Now}
}

// Recommend returns up to req.Limit() scored movies, best first. An empty
// mood vector yields an empty result by contract, not an error; the only
// error path is a failed catalog build.
func (s *Service) Recommend(ctx context.Context, req domrec.Request) ([]movie.Recommendation, error) {
	if len(req.Moods()) == 0 {
		return nil, nil
	}

	catalog, err := s.catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	ranked := rank(catalog, req.Moods(), req.Preference(), s.now().Year())
	if len(ranked) > req.Limit() {
		ranked = ranked[:req.Limit()]
	}

	metrics.RecommendationsTotal.WithLabelValues(string(req.Preference())).Inc()
	metrics.RecommendationResults.WithLabelValues(string(req.Preference())).Observe(float64(len(ranked)))
	s.logger.Debug("recommendations generated",
		zap.Int("results", len(ranked)),
		zap.Int("catalog", len(catalog)),
		zap.String("preference", string(req.Preference())),
	)

	return ranked, nil
}

// LoadMore re-runs the ranking with a larger limit. The full ranking is
// recomputed from scratch; over the immutable catalog this is a stable,
// deterministic superset reveal rather than an append.
func (s *Service) LoadMore(
	ctx context.Context, moods mood.Vector, preference mood.Preference, currentCount int,
) ([]movie.Recommendation, error) {
	if currentCount < 0 {
		currentCount = 0
	}
	req, err := domrec.New(moods, preference, currentCount+domrec.PageStep)
	if err != nil {
		return nil, err
	}
	return s.Recommend(ctx, req)
}
