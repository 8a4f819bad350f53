package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/sbilibin2017/lightbnb-gateway/internal/logger"
	"github.com/sbilibin2017/lightbnb-gateway/internal/models"
	"github.com/sbilibin2017/lightbnb-gateway/internal/sqlerr"
)

var userColumns = []string{"id", "name", "email", "password"}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("normalizes email to lower case", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db)

		mock.ExpectQuery(`SELECT id, name, email, password FROM users WHERE lower(email) = $1`).
			WithArgs("alice@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(1), "Alice", "Alice@Example.com", "secret"))

		user, err := repo.GetByEmail(ctx, "  ALICE@example.COM ")
		assert.NoError(t, err)
		assert.Equal(t, &models.User{ID: 1, Name: "Alice", Email: "Alice@Example.com", Password: "secret"}, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db)

		mock.ExpectQuery(`FROM users WHERE lower(email) = $1`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns))

		user, err := repo.GetByEmail(ctx, "nobody@example.com")
		assert.ErrorIs(t, err, sqlerr.ErrNotFound)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserReadRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db)

		mock.ExpectQuery(`FROM users WHERE id = $1`).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(42), "Bob", "bob@example.com", "pw"))

		user, err := repo.GetByID(ctx, 42)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)
		assert.Equal(t, "bob@example.com", user.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("connection lost", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserReadRepository(db)

		mock.ExpectQuery(`FROM users WHERE id = $1`).
			WithArgs(int64(42)).
			WillReturnError(&pgconn.PgError{Code: "08006", Message: "connection failure"})

		user, err := repo.GetByID(ctx, 42)
		assert.ErrorIs(t, err, sqlerr.ErrConnection)
		assert.Nil(t, user)
	})
}

func TestUserWriteRepository_Save(t *testing.T) {
	ctx := context.Background()
	newUser := models.NewUser{Name: "Carol", Email: "carol@example.com", Password: "pw"}

	t.Run("returns persisted row with id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db)

		mock.ExpectQuery(`INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id, name, email, password`).
			WithArgs("Carol", "carol@example.com", "pw").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(int64(7), "Carol", "carol@example.com", "pw"))

		user, err := repo.Save(ctx, newUser)
		assert.NoError(t, err)
		assert.Equal(t, &models.User{ID: 7, Name: "Carol", Email: "carol@example.com", Password: "pw"}, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewUserWriteRepository(db)

		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs("Carol", "carol@example.com", "pw").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

		user, err := repo.Save(ctx, newUser)
		assert.ErrorIs(t, err, sqlerr.ErrConstraintViolation)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		email string
		want  string
	}{
		{"alice@example.com", "a***@example.com"},
		{"a@b.c", "a***@b.c"},
		{"@example.com", "***"},
		{"no-at-sign", "***"},
		{"", "***"},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, maskEmail(tt.email))
		})
	}
}

func TestUserRepositories_DoNotLogEmails(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	originalLog := logger.Log
	logger.Log = zap.New(core).Sugar()
	defer func() { logger.Log = originalLog }()

	ctx := context.Background()
	db, mock := newMockDB(t)

	mock.ExpectQuery(`FROM users WHERE lower(email) = $1`).
		WithArgs("carol@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns))
	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Carol", "carol@example.com", "pw").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(7), "Carol", "carol@example.com", "pw"))

	_, err := NewUserReadRepository(db).GetByEmail(ctx, "carol@example.com")
	require.ErrorIs(t, err, sqlerr.ErrNotFound)
	_, err = NewUserWriteRepository(db).Save(ctx, models.NewUser{Name: "Carol", Email: "carol@example.com", Password: "pw"})
	require.NoError(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	for _, entry := range entries {
		assert.NotContains(t, fmt.Sprint(entry.ContextMap()["args"]), "carol@example.com")
		assert.Contains(t, fmt.Sprint(entry.ContextMap()["args"]), "c***@example.com")
	}
}
