package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/hotel_console/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRow отдаёт заранее заданные значения в Scan
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("scan: column count mismatch")
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.values[i].(int64)
		case *string:
			*p = r.values[i].(string)
		case *time.Time:
			*p = r.values[i].(time.Time)
		default:
			return errors.New("scan: unsupported destination")
		}
	}
	return nil
}

type fakeDB struct {
	row     fakeRow
	tag     string
	execErr error

	lastArgs []any
}

func (db *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	db.lastArgs = args
	return db.row
}

func (db *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	db.lastArgs = args
	if db.execErr != nil {
		return pgconn.CommandTag{}, db.execErr
	}
	return pgconn.NewCommandTag(db.tag), nil
}

func TestGetByTelegramIDWithoutSessionIsNil(t *testing.T) {
	repo := NewSessionRepository(&fakeDB{row: fakeRow{err: pgx.ErrNoRows}})

	session, err := repo.GetByTelegramID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestGetByTelegramIDScansSession(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	db := &fakeDB{row: fakeRow{values: []any{int64(42), "tok", "admin", created, created.Add(time.Hour)}}}
	repo := NewSessionRepository(db)

	session, err := repo.GetByTelegramID(context.Background(), 42)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, model.Session{
		TelegramID: 42,
		Token:      "tok",
		Username:   "admin",
		CreatedAt:  created,
		ExpiresAt:  created.Add(time.Hour),
	}, *session)
	assert.Equal(t, []any{int64(42)}, db.lastArgs)
}

func TestGetByTelegramIDWrapsDatabaseError(t *testing.T) {
	dbErr := errors.New("connection refused")
	repo := NewSessionRepository(&fakeDB{row: fakeRow{err: dbErr}})

	session, err := repo.GetByTelegramID(context.Background(), 42)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, dbErr)
}

func TestSaveFillsCreatedAt(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := NewSessionRepository(&fakeDB{row: fakeRow{values: []any{created}}})

	session := &model.Session{TelegramID: 7, Token: "tok", Username: "admin", ExpiresAt: created.Add(time.Hour)}
	require.NoError(t, repo.Save(context.Background(), session))
	assert.Equal(t, created, session.CreatedAt)
}

func TestDeleteExpiredReportsAffectedRows(t *testing.T) {
	now := time.Now()
	db := &fakeDB{tag: "DELETE 3"}
	repo := NewSessionRepository(db)

	affected, err := repo.DeleteExpired(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
	assert.Equal(t, []any{now}, db.lastArgs)

	db.execErr = errors.New("timeout")
	_, err = repo.DeleteExpired(context.Background(), now)
	assert.ErrorIs(t, err, db.execErr)
	assert.Error(t, repo.Delete(context.Background(), 7))
}
