package store

import (
	"context"

	"github.com/RogerGower/hsw-mvp/internal/models"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// SubmissionStore is the append-only log of accepted submissions. The
// in-memory implementation is the default; the Postgres one exists so a
// real database can be swapped in without touching the validator or the
// HTTP surface.
type SubmissionStore interface {
	// Append stores an accepted record and returns its zero-based
	// position. Positions are strictly increasing; no record is ever
	// overwritten.
	Append(ctx context.Context, rec *models.Prestart) (int, error)

	// Count returns the number of stored records.
	Count(ctx context.Context) (int, error)
}
