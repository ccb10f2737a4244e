package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/require"

	"github.com/RogerGower/hsw-mvp/internal/models"
)

// fakeDB satisfies the DB interface without a live database.
type fakeDB struct {
	execSQL  []string
	rowQueue []fakeRow
	queries  int
}

type fakeRow struct {
	pos int
	err error
}

func (f *fakeDB) Exec(_ context.Context, sql string, _ ...interface{}) (pgconn.CommandTag, error) {
	f.execSQL = append(f.execSQL, sql)
	return pgconn.CommandTag("CREATE TABLE"), nil
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, _ ...interface{}) pgx.Row {
	row := f.rowQueue[f.queries]
	f.queries++
	return row
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int)) = r.pos
	return nil
}

func uniqueViolation() error {
	return &pgconn.PgError{Code: "23505"}
}

func TestPostgresStoreAppend(t *testing.T) {
	db := &fakeDB{rowQueue: []fakeRow{{pos: 0}}}
	s := NewPostgresStore(db)

	idx, err := s.Append(context.Background(), models.Example())
	require.NoError(t, err)
	require.Equal(t, 0, idx)
	require.Equal(t, 1, db.queries)
}

func TestPostgresStoreAppendRetriesOnContention(t *testing.T) {
	// Two concurrent writers raced for position 3; the loser retries and
	// lands on 4.
	db := &fakeDB{rowQueue: []fakeRow{
		{err: uniqueViolation()},
		{pos: 4},
	}}
	s := NewPostgresStore(db)

	idx, err := s.Append(context.Background(), models.Example())
	require.NoError(t, err)
	require.Equal(t, 4, idx)
	require.Equal(t, 2, db.queries)
}

func TestPostgresStoreAppendGivesUpEventually(t *testing.T) {
	rows := make([]fakeRow, appendMaxRetries)
	for i := range rows {
		rows[i] = fakeRow{err: uniqueViolation()}
	}
	db := &fakeDB{rowQueue: rows}
	s := NewPostgresStore(db)

	_, err := s.Append(context.Background(), models.Example())
	require.Error(t, err)
	require.Equal(t, appendMaxRetries, db.queries)
}

func TestPostgresStoreAppendStopsOnOtherErrors(t *testing.T) {
	db := &fakeDB{rowQueue: []fakeRow{{err: errors.New("connection lost")}}}
	s := NewPostgresStore(db)

	_, err := s.Append(context.Background(), models.Example())
	require.Error(t, err)
	require.Equal(t, 1, db.queries, "non-contention errors must not be retried")
}

func TestPostgresStoreCount(t *testing.T) {
	db := &fakeDB{rowQueue: []fakeRow{{pos: 7}}}
	s := NewPostgresStore(db)

	n, err := s.Count(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, n)
}

func TestEnsureSchemaCreatesTable(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, EnsureSchema(context.Background(), db))
	require.Len(t, db.execSQL, 1)
	require.Contains(t, db.execSQL[0], "CREATE TABLE IF NOT EXISTS prestart_submissions")
}
