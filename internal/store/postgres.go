package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"

	"github.com/RogerGower/hsw-mvp/internal/models"
)

/* ------------------------------------------------------------------
   DB abstraction (satisfied by *pgxpool.Pool)
------------------------------------------------------------------ */

type DB interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

const appendMaxRetries = 5

type postgresStore struct{ db DB }

// NewPostgresStore returns a SubmissionStore backed by Postgres. Records
// are stored as jsonb with an explicit zero-based position column.
func NewPostgresStore(db DB) SubmissionStore {
	return &postgresStore{db: db}
}

// EnsureSchema creates the submissions table if it does not exist.
func EnsureSchema(ctx context.Context, db DB) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS prestart_submissions (
			id           UUID PRIMARY KEY,
			position     BIGINT NOT NULL UNIQUE,
			payload      JSONB NOT NULL,
			submitted_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	return err
}

func (s *postgresStore) Append(ctx context.Context, rec *models.Prestart) (int, error) {
	payload, err := json.Marshal(rec)
	if err != nil {
		return 0, fmt.Errorf("marshal submission: %w", err)
	}

	// Concurrent appenders race for the next position; the UNIQUE
	// constraint arbitrates and the loser retries with a fresh count.
	for attempt := 1; attempt <= appendMaxRetries; attempt++ {
		var pos int
		err = s.db.QueryRow(ctx, `
			INSERT INTO prestart_submissions (id, position, payload)
			VALUES ($1, (SELECT COUNT(*) FROM prestart_submissions), $2)
			RETURNING position
		`, uuid.New(), payload).Scan(&pos)
		if err == nil {
			return pos, nil
		}
		if !isUniqueViolation(err) {
			return 0, fmt.Errorf("append submission: %w", err)
		}
	}
	return 0, fmt.Errorf("append submission: gave up after %d contended attempts: %w", appendMaxRetries, err)
}

func (s *postgresStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM prestart_submissions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count submissions: %w", err)
	}
	return n, nil
}

// Helper to check for unique violation error (PostgreSQL specific code)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
