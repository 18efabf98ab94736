// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"review_pulse/internal/app"
	"review_pulse/internal/domain"
)

type Handlers struct {
	Ingest   *app.IngestionService
	Analysis *app.AnalysisService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/v1/apps/{id}/reviews", h.fetchReviews)
	s.mux.Get("/v1/apps/{id}/analysis", h.analyzeReviews)
	s.mux.Get("/v1/apps/{id}/negative-signals", h.negativeSignals)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func appID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

// queryInt parses an integer query param with a default and inclusive
// bounds; ok is false on a malformed or out-of-range value.
func queryInt(r *http.Request, name string, def, min, max int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < min || n > max {
		return 0, false
	}
	return n, true
}

func (h *Handlers) fetchReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := appID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	minRating, ok := queryInt(r, "min_rating", 1, 1, 5)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid min_rating", "min_rating must be an integer between 1 and 5")
		return
	}
	maxRating, ok := queryInt(r, "max_rating", 5, 1, 5)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid max_rating", "max_rating must be an integer between 1 and 5")
		return
	}
	limit, ok := queryInt(r, "limit", 500, 1, 500)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid limit", "limit must be an integer between 1 and 500")
		return
	}

	batch, err := h.Ingest.FetchReviews(r.Context(), id, app.FetchOptions{
		MinRating: minRating,
		MaxRating: maxRating,
		Limit:     limit,
	})
	if errors.Is(err, domain.ErrInvalidRange) {
		writeProblem(w, http.StatusBadRequest, "Invalid rating range", "min_rating must be <= max_rating")
		return
	}
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Fetch failed", err.Error())
		return
	}
	if len(batch.Reviews) == 0 {
		writeProblem(w, http.StatusNotFound, "No reviews", "no reviews fetched from the store feed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"app_id":           batch.AppID,
		"min_rating":       batch.MinRating,
		"max_rating":       batch.MaxRating,
		"requested_limit":  batch.Limit,
		"returned_reviews": len(batch.Reviews),
		"message":          "reviews fetched and cached; call the analysis endpoint for metrics",
	})
}

func (h *Handlers) analyzeReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := appID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}

	kind := domain.AnalysisKind(r.URL.Query().Get("kind"))
	switch kind {
	case "":
		kind = domain.AnalysisBasic
	case domain.AnalysisBasic, domain.AnalysisLexicon:
	default:
		writeProblem(w, http.StatusBadRequest, "Invalid kind", "kind must be basic or lexicon")
		return
	}

	withInsights := true
	if raw := r.URL.Query().Get("insights"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			writeProblem(w, http.StatusBadRequest, "Invalid insights", "insights must be a boolean")
			return
		}
		withInsights = b
	}

	res, err := h.Analysis.Analyze(r.Context(), id, kind, withInsights)
	if err != nil {
		h.writeAnalysisError(w, err)
		return
	}

	etag, body := calcETagAndBody(res)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write analysis body")
	}
}

func (h *Handlers) negativeSignals(w http.ResponseWriter, r *http.Request) {
	id, ok := appID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a positive number")
		return
	}
	topK, ok := queryInt(r, "top_k", 20, 5, 100)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid top_k", "top_k must be an integer between 5 and 100")
		return
	}

	signals, err := h.Analysis.ExtractNegativeSignals(r.Context(), id, topK)
	if err != nil {
		h.writeAnalysisError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, signals)
}

func (h *Handlers) writeAnalysisError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNoBatch):
		writeProblem(w, http.StatusNotFound, "Not Found", "no cached batch for this app id; fetch reviews first")
	case errors.Is(err, domain.ErrEmptyBatch):
		writeProblem(w, http.StatusNotFound, "Not Found", "cached batch is empty")
	default:
		writeProblem(w, http.StatusInternalServerError, "Analysis failed", err.Error())
	}
}
