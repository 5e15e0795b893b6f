package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

// PostgresStore handles admin accounts and the question history against
// PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// Migrate creates the admins and questions tables if they don't exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS admins (
			id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username   VARCHAR(50)  UNIQUE NOT NULL,
			password   VARCHAR(255) NOT NULL,
			created_at TIMESTAMPTZ  DEFAULT NOW()
		)
	`)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS questions (
			id         UUID PRIMARY KEY,
			session_id VARCHAR(100),
			question   TEXT NOT NULL,
			answer     TEXT NOT NULL,
			intent     VARCHAR(20) NOT NULL,
			latency_ms BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`)
	return err
}

// EnsureAdmin creates or updates the bootstrap admin account.
func (s *PostgresStore) EnsureAdmin(ctx context.Context, username, hashedPassword string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO admins (username, password) VALUES ($1, $2)
		 ON CONFLICT (username) DO UPDATE SET password = EXCLUDED.password`,
		username, hashedPassword,
	)
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var a models.Admin
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, password, created_at FROM admins WHERE username = $1`, username,
	).Scan(&a.ID, &a.Username, &a.Password, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// InsertQuestion logs one answered question.
func (s *PostgresStore) InsertQuestion(ctx context.Context, rec *models.QuestionRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO questions (id, session_id, question, answer, intent, latency_ms)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		rec.ID, rec.SessionID, rec.Question, rec.Answer, rec.Intent, rec.LatencyMS,
	)
	if err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

// ListQuestions returns the most recent answered questions.
func (s *PostgresStore) ListQuestions(ctx context.Context, limit int) ([]models.QuestionRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, COALESCE(session_id, ''), question, answer, intent, latency_ms, created_at
		 FROM questions ORDER BY created_at DESC LIMIT $1`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.QuestionRecord
	for rows.Next() {
		var r models.QuestionRecord
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Question, &r.Answer, &r.Intent, &r.LatencyMS, &r.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// CountByIntent aggregates answered questions per intent label.
func (s *PostgresStore) CountByIntent(ctx context.Context) (map[string]int64, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT intent, COUNT(*) FROM questions GROUP BY intent`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var intent string
		var n int64
		if err := rows.Scan(&intent, &n); err != nil {
			return nil, err
		}
		counts[intent] = n
	}
	return counts, rows.Err()
}
