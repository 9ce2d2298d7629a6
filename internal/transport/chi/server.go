// Package chi exposes the recommendation engine over HTTP: the two engine
// operations, health, metrics, and the raw tabular sources for clients that
// want them.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/moodflix/moodflix/internal/domain"
	"github.com/moodflix/moodflix/internal/domain/mood"
	"github.com/moodflix/moodflix/internal/domain/movie"
	domrec "github.com/moodflix/moodflix/internal/domain/recommend"
	"github.com/moodflix/moodflix/internal/metrics"
	"github.com/moodflix/moodflix/internal/source"
	healthuc "github.com/moodflix/moodflix/internal/usecase/health"
	recommenduc "github.com/moodflix/moodflix/internal/usecase/recommend"
)

// Error codes returned in the JSON error envelope.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeIngestionFailed  = "ingestion_failed"
	codeNotFound         = "not_found"
	codeInternalError    = "internal_error"
)

// Server holds the HTTP handlers for the engine.
type Server struct {
	recommender *recommenduc.Service
	health      *healthuc.Service
	fetcher     source.Fetcher
	logger      *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	recommender *recommenduc.Service,
	health *healthuc.Service,
	fetcher source.Fetcher,
	logger *zap.Logger,
) *Server {
	return &Server{
		recommender: recommender,
		health:      health,
		fetcher:     fetcher,
		logger:      logger,
	}
}

// Router assembles the chi router with the standard middleware stack.
func (s *Server) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Middleware())

	r.Post("/api/recommendations", s.Recommendations)
	r.Post("/api/recommendations/more", s.MoreRecommendations)
	r.Get("/api/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	// Raw tabular sources, served for clients that parse them directly.
	for _, id := range []string{source.Movies, source.Tags, source.Ratings} {
		r.Get("/"+id, s.sourceHandler(id))
	}

	return r
}

// recommendationsRequest is the body of both recommendation endpoints.
type recommendationsRequest struct {
	Moods        map[string]int `json:"moods"`
	Preference   string         `json:"preference"`
	Limit        int            `json:"limit"`
	CurrentCount int            `json:"current_count"`
}

// recommendationDTO mirrors the movie fields clients render, plus the score
// and explanation.
type recommendationDTO struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Overview        string   `json:"overview"`
	Genres          []string `json:"genres"`
	ReleaseDate     string   `json:"release_date"`
	VoteAverage     float64  `json:"vote_average"`
	PosterPath      string   `json:"poster_path,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	Runtime         float64  `json:"runtime,omitempty"`
	Tagline         string   `json:"tagline,omitempty"`
	Popularity      float64  `json:"popularity,omitempty"`
	VoteCount       int      `json:"vote_count,omitempty"`
	SimilarityScore float64  `json:"similarityScore"`
	MatchReason     string   `json:"matchReason"`
}

type recommendationsResponse struct {
	Recommendations []recommendationDTO `json:"recommendations"`
	Count           int                 `json:"count"`
}

// Recommendations handles POST /api/recommendations.
func (s *Server) Recommendations(w http.ResponseWriter, r *http.Request) {
	var body recommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	vector, err := mood.NewVector(body.Moods)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	req, err := domrec.New(vector, mood.Preference(body.Preference), body.Limit)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	recs, err := s.recommender.Recommend(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(recs))
}

// MoreRecommendations handles POST /api/recommendations/more: it reveals a
// larger prefix of the same deterministic ranking.
func (s *Server) MoreRecommendations(w http.ResponseWriter, r *http.Request) {
	var body recommendationsRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	vector, err := mood.NewVector(body.Moods)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	preference := mood.Preference(body.Preference)
	if preference == "" {
		preference = mood.Match
	}
	if !preference.IsValid() {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "invalid preference")
		return
	}

	recs, err := s.recommender.LoadMore(r.Context(), vector, preference, body.CurrentCount)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResponse(recs))
}

// HealthCheck handles GET /api/health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status":       report.Status,
		"checks":       report.Checks,
		"catalog_size": report.CatalogSize,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// sourceHandler serves one raw tabular source through the fetcher, so both
// the file and redis backends expose the same routes.
func (s *Server) sourceHandler(sourceID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := s.fetcher.Fetch(r.Context(), sourceID)
		if err != nil {
			if errors.Is(err, source.ErrNotFound) {
				writeError(w, http.StatusNotFound, codeNotFound, "source not available")
				return
			}
			s.logger.Error("serve source", zap.String("source", sourceID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func toResponse(recs []movie.Recommendation) recommendationsResponse {
	dtos := make([]recommendationDTO, 0, len(recs))
	for i := range recs {
		dtos = append(dtos, recommendationToDTO(&recs[i]))
	}
	return recommendationsResponse{Recommendations: dtos, Count: len(dtos)}
}

func recommendationToDTO(rec *movie.Recommendation) recommendationDTO {
	return recommendationDTO{
		ID:              rec.ID,
		Title:           rec.Title,
		Overview:        rec.Overview,
		Genres:          rec.Genres,
		ReleaseDate:     rec.ReleaseDate,
		VoteAverage:     rec.VoteAverage,
		PosterPath:      rec.PosterPath,
		Keywords:        rec.Keywords,
		Runtime:         rec.Runtime,
		Tagline:         rec.Tagline,
		Popularity:      rec.Popularity,
		VoteCount:       rec.VoteCount,
		SimilarityScore: rec.Score,
		MatchReason:     rec.MatchReason,
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrIngestion) {
		s.logger.Error("catalog ingestion failed", zap.Error(err))
		writeError(w, http.StatusServiceUnavailable, codeIngestionFailed,
			domain.ErrIngestion.Error())
		return
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
