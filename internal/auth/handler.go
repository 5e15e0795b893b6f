package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

// AdminStore defines the interface for admin account persistence.
type AdminStore interface {
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
}

// Reloader re-reads the corpus and reports its size.
type Reloader interface {
	Reload(ctx context.Context) error
	Size() int
}

// Handler holds the admin HTTP handlers: login, logout, corpus reload.
type Handler struct {
	admins   AdminStore
	sessions *SessionStore
	index    Reloader
	log      *zap.Logger
}

func NewHandler(admins AdminStore, sessions *SessionStore, index Reloader, log *zap.Logger) *Handler {
	return &Handler{admins: admins, sessions: sessions, index: index, log: log}
}

// Login authenticates an admin and creates a session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
		return
	}

	admin, err := h.admins.GetAdminByUsername(r.Context(), req.Username)
	if err != nil || admin == nil {
		http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
		return
	}

	sid, err := h.sessions.Create(r.Context(), admin.ID)
	if err != nil {
		http.Error(w, `{"error":"session creation failed"}`, http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(SessionTTL / time.Second),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"username": admin.Username})
}

// Logout destroys the current session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(SessionCookie)
	if err == nil {
		h.sessions.Delete(r.Context(), cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"message":"logged out"}`))
}

// Reload re-ingests the corpus from its provider with an atomic swap.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	if err := h.index.Reload(r.Context()); err != nil {
		h.log.Error("corpus reload failed", zap.Error(err))
		http.Error(w, `{"error":"corpus reload failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":   "corpus reloaded",
		"documents": h.index.Size(),
	})
}
