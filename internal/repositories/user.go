package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/lightbnb-gateway/internal/logger"
	"github.com/sbilibin2017/lightbnb-gateway/internal/models"
	"github.com/sbilibin2017/lightbnb-gateway/internal/sqlerr"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user whose email matches case-insensitively.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT id, name, email, password
		FROM users
		WHERE lower(email) = $1
		LIMIT 1
	`
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Query(query, []any{maskEmail(email)}, user.ID, err)

	if err != nil {
		return nil, sqlerr.Classify("users.get_by_email", err)
	}
	return &user, nil
}

func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT id, name, email, password
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Query(query, []any{id}, user.ID, err)

	if err != nil {
		return nil, sqlerr.Classify("users.get_by_id", err)
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a user and returns the persisted row, including its id.
func (r *UserWriteRepository) Save(ctx context.Context, user models.NewUser) (*models.User, error) {
	const query = `
		INSERT INTO users (name, email, password)
		VALUES ($1, $2, $3)
		RETURNING id, name, email, password
	`
	args := []any{user.Name, user.Email, user.Password}

	var saved models.User
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Query(query, []any{user.Name, maskEmail(user.Email)}, saved.ID, err)

	if err != nil {
		return nil, sqlerr.Classify("users.save", err)
	}
	return &saved, nil
}

// maskEmail keeps the first character of the local part and the domain,
// so log lines can be correlated without recording the address.
func maskEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 1 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
