package recommend

import (
	"context"

	"github.com/moodflix/moodflix/internal/domain/movie"
)

// CatalogLoader supplies the immutable movie catalog, building it on first use.
type CatalogLoader interface {
	Load(ctx context.Context) ([]movie.Movie, error)
}
