package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/llm"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Cache is the optional answer cache in front of the pipeline.
type Cache interface {
	Get(ctx context.Context, question string) (*models.Answer, bool)
	Set(ctx context.Context, question string, ans *models.Answer) error
}

// HistoryStore logs answered questions for analytics.
type HistoryStore interface {
	InsertQuestion(ctx context.Context, rec *models.QuestionRecord) error
}

// Handler exposes the pipeline over HTTP.
type Handler struct {
	pipeline *Pipeline
	cache    Cache
	history  HistoryStore
	log      *zap.Logger
}

func NewHandler(pipeline *Pipeline, cache Cache, history HistoryStore, log *zap.Logger) *Handler {
	return &Handler{pipeline: pipeline, cache: cache, history: history, log: log}
}

// Ask answers one question. Empty questions are rejected before the
// pipeline runs; a dual model failure is the only terminal error.
func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}
	question := strings.TrimSpace(req.Question)
	if question == "" {
		http.Error(w, `{"error":"question cannot be empty"}`, http.StatusBadRequest)
		return
	}

	if h.cache != nil {
		if ans, ok := h.cache.Get(r.Context(), question); ok {
			writeJSON(w, http.StatusOK, toResponse(ans))
			return
		}
	}

	start := time.Now()
	ans, err := h.pipeline.Answer(r.Context(), question)
	if err != nil {
		h.log.Error("pipeline failed", zap.Error(err))
		status := http.StatusInternalServerError
		if errors.Is(err, llm.ErrAllModelsFailed) {
			status = http.StatusBadGateway
		}
		writeJSON(w, status, map[string]string{"error": err.Error()})
		return
	}
	latency := time.Since(start)

	if h.history != nil {
		rec := &models.QuestionRecord{
			ID:        uuid.New().String(),
			SessionID: req.SessionID,
			Question:  question,
			Answer:    ans.Text,
			Intent:    string(ans.Intent),
			LatencyMS: latency.Milliseconds(),
		}
		if err := h.history.InsertQuestion(r.Context(), rec); err != nil {
			h.log.Warn("history insert failed", zap.Error(err))
		}
	}

	if h.cache != nil {
		if err := h.cache.Set(r.Context(), question, ans); err != nil {
			h.log.Warn("answer cache set failed", zap.Error(err))
		}
	}

	writeJSON(w, http.StatusOK, toResponse(ans))
}

func toResponse(ans *models.Answer) models.AskResponse {
	resp := models.AskResponse{
		Answer:               ans.Text,
		LocalSources:         ans.Sources.Local,
		WebSourcesVerified:   ans.Sources.WebVerified,
		WebSourcesUnverified: ans.Sources.WebUnverified,
		Intent:               string(ans.Intent),
	}
	if resp.LocalSources == nil {
		resp.LocalSources = []string{}
	}
	if resp.WebSourcesVerified == nil {
		resp.WebSourcesVerified = []string{}
	}
	if resp.WebSourcesUnverified == nil {
		resp.WebSourcesUnverified = []string{}
	}
	return resp
}
