// Package analytics exposes read-only reporting over the question history.
package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

// Store defines the history queries the handlers need.
type Store interface {
	ListQuestions(ctx context.Context, limit int) ([]models.QuestionRecord, error)
	CountByIntent(ctx context.Context) (map[string]int64, error)
}

// Handler holds the analytics HTTP handlers.
type Handler struct {
	store Store
	log   *zap.Logger
}

func NewHandler(store Store, log *zap.Logger) *Handler {
	return &Handler{store: store, log: log}
}

// Questions lists recently answered questions, newest first.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	records, err := h.store.ListQuestions(r.Context(), limit)
	if err != nil {
		h.log.Error("list questions failed", zap.Error(err))
		http.Error(w, `{"error":"database error"}`, http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.QuestionRecord{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// Intents reports how many questions fell into each intent category.
func (h *Handler) Intents(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.CountByIntent(r.Context())
	if err != nil {
		h.log.Error("intent counts failed", zap.Error(err))
		http.Error(w, `{"error":"database error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(counts)
}
