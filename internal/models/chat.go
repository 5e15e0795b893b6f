package models

import "time"

// Intent is the inferred topical category of a question. It decides
// which sources are trusted downstream.
type Intent string

const (
	// IntentTanya is a question about the business itself.
	IntentTanya Intent = "tanya"
	// IntentBaking is a generic baking question.
	IntentBaking Intent = "baking"
	// IntentHybrid mixes business and generic vocabulary.
	IntentHybrid Intent = "hybrid"
)

// Reasons recorded on unverified (and some verified) web results.
const (
	ReasonNotWhitelisted     = "not_whitelisted"
	ReasonFailedVerification = "failed_verification"
)

// WebResult is a single web search or review hit. It is produced per
// search call and never persisted. Rating and Author are only set on
// review results.
type WebResult struct {
	Title    string  `json:"title"`
	Snippet  string  `json:"snippet"`
	Link     string  `json:"link"`
	Verified bool    `json:"verified"`
	Reason   string  `json:"reason,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	Author   string  `json:"author,omitempty"`
}

// SourceBundle partitions the sources behind an answer for citation
// display. Unverified entries carry their reason inline.
type SourceBundle struct {
	Local         []string `json:"local"`
	WebVerified   []string `json:"web_verified"`
	WebUnverified []string `json:"web_unverified"`
}

// Answer is the result of one pipeline run.
type Answer struct {
	Text    string       `json:"answer"`
	Intent  Intent       `json:"intent"`
	Sources SourceBundle `json:"sources"`
}

// AskRequest is the JSON body for POST /api/chat/ask. SessionID is
// accepted for the widget but unused by the pipeline.
type AskRequest struct {
	Question  string `json:"question"`
	SessionID string `json:"session_id,omitempty"`
}

// AskResponse is the JSON body returned by POST /api/chat/ask.
type AskResponse struct {
	Answer               string   `json:"answer"`
	LocalSources         []string `json:"local_sources"`
	WebSourcesVerified   []string `json:"web_sources_verified"`
	WebSourcesUnverified []string `json:"web_sources_unverified"`
	Intent               string   `json:"intent"`
}

// QuestionRecord is a row in the PostgreSQL questions table.
type QuestionRecord struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id,omitempty"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Intent    string    `json:"intent"`
	LatencyMS int64     `json:"latency_ms"`
	CreatedAt time.Time `json:"created_at"`
}

// Admin represents a row in the PostgreSQL admins table.
type Admin struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"` // never serialize
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest is the JSON body for POST /api/admin/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
