package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/RogerGower/hsw-mvp/internal/models"
)

// storedSubmission wraps an accepted record with its storage identity.
type storedSubmission struct {
	ID          uuid.UUID
	SubmittedAt time.Time
	Record      models.Prestart
}

type memoryStore struct {
	mu   sync.Mutex
	recs []storedSubmission
}

// NewMemoryStore returns the process-lifetime in-memory store.
func NewMemoryStore() SubmissionStore {
	return &memoryStore{}
}

func (s *memoryStore) Append(_ context.Context, rec *models.Prestart) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recs = append(s.recs, storedSubmission{
		ID:          uuid.New(),
		SubmittedAt: time.Now().UTC(),
		Record:      *rec,
	})
	return len(s.recs) - 1, nil
}

func (s *memoryStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recs), nil
}
