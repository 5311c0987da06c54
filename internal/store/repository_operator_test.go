package store

import (
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-braintacle/models"
)

func TestCreateOperator(t *testing.T) {
	created := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewOperatorRepository(db, db.logger)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO operators (login,password_hash) VALUES ($1,$2) RETURNING id, created_at`)).
			WithArgs("admin", "$2a$hash").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), created))

		got, err := repo.CreateOperator(testContext(), models.Operator{Login: "admin", Password: "secret-pass", PasswordHash: "$2a$hash"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, created, got.CreatedAt)
		assert.Empty(t, got.Password)
	})

	t.Run("login taken", func(t *testing.T) {
		db, mock := newTestDB(t)
		repo := NewOperatorRepository(db, db.logger)

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO operators`)).
			WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.CreateOperator(testContext(), models.Operator{Login: "admin"})
		assert.ErrorIs(t, err, ErrLoginAlreadyExists)
	})
}

func TestFindOperatorByLogin(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOperatorRepository(db, db.logger)
	created := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	query := regexp.QuoteMeta(`SELECT id, login, password_hash, created_at FROM operators WHERE login = $1 ORDER BY login`)
	mock.ExpectQuery(query).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "login", "password_hash", "created_at"}).AddRow(int64(1), "admin", "h", created))
	mock.ExpectQuery(query).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "login", "password_hash", "created_at"}))

	got, err := repo.FindOperatorByLogin(testContext(), "admin")
	require.NoError(t, err)
	assert.Equal(t, models.Operator{ID: 1, Login: "admin", PasswordHash: "h", CreatedAt: created}, got)

	_, err = repo.FindOperatorByLogin(testContext(), "ghost")
	assert.ErrorIs(t, err, ErrNoOperatorWasFound)
}

func TestDeleteOperator(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewOperatorRepository(db, db.logger)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM operators WHERE login = $1`)).
		WithArgs("admin").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM operators WHERE login = $1`)).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteOperator(testContext(), "admin"))
	assert.ErrorIs(t, repo.DeleteOperator(testContext(), "ghost"), ErrNoOperatorWasFound)
}
