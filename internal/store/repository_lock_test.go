package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	deleteExpiredLockSQL = `DELETE FROM locks WHERE since < $1 AND hardware_id = $2`
	insertLockSQL        = `INSERT INTO locks (hardware_id,since) VALUES ($1,$2) ON CONFLICT (hardware_id) DO NOTHING`
)

func TestAcquireLock(t *testing.T) {
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	validity := 10 * time.Minute

	tests := []struct {
		name     string
		inserted int64
		want     bool
	}{
		{name: "free", inserted: 1, want: true},
		{name: "held by somebody else", inserted: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewLockRepository(db, db.logger)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(deleteExpiredLockSQL)).
				WithArgs(now.Add(-validity), int64(8)).
				WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectExec(regexp.QuoteMeta(insertLockSQL)).
				WithArgs(int64(8), now).
				WillReturnResult(sqlmock.NewResult(0, tt.inserted))
			mock.ExpectCommit()

			got, err := repo.AcquireLock(testContext(), 8, now, validity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestAcquireLock_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLockRepository(db, db.logger)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteExpiredLockSQL)).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	ok, err := repo.AcquireLock(testContext(), 8, time.Now(), time.Minute)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestReleaseLock(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLockRepository(db, db.logger)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM locks WHERE hardware_id = $1`)).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.ReleaseLock(testContext(), 8))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSweepLocks(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewLockRepository(db, db.logger)
	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM locks WHERE since < $1`)).
		WithArgs(now.Add(-time.Hour)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.SweepLocks(testContext(), now, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
