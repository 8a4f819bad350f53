package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/lightbnb-gateway/internal/logger"
	"github.com/sbilibin2017/lightbnb-gateway/internal/models"
	"github.com/sbilibin2017/lightbnb-gateway/internal/sqlerr"
)

// ErrUserAlreadyExists is returned when the email is already registered.
var ErrUserAlreadyExists = errors.New("email already exists")

// UserService handles user registration and lookup.
type UserService struct {
	reader    UserReader
	writer    UserWriter
	publisher eventPublisher
}

// NewUserService creates a new UserService. kafkaWriter may be nil.
func NewUserService(reader UserReader, writer UserWriter, kafkaWriter KafkaWriter) *UserService {
	return &UserService{
		reader:    reader,
		writer:    writer,
		publisher: newEventPublisher(kafkaWriter),
	}
}

// Register stores a new user unless the email, compared case-insensitively,
// is already taken.
func (svc *UserService) Register(ctx context.Context, user models.NewUser) (*models.User, error) {
	existing, err := svc.reader.GetByEmail(ctx, user.Email)
	switch {
	case err == nil && existing != nil:
		logger.Log.Errorw("user already exists", "email", user.Email)
		return nil, ErrUserAlreadyExists
	case err != nil && !errors.Is(err, sqlerr.ErrNotFound):
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}

	saved, err := svc.writer.Save(ctx, user)
	if err != nil {
		if errors.Is(err, sqlerr.ErrConstraintViolation) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	svc.publisher.publish(ctx, models.EventUserCreated, saved.ID)
	return saved, nil
}

// GetByEmail returns the user registered with email.
func (svc *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user by email", "email", email, "err", err)
		return nil, err
	}
	return user, nil
}

// GetByID returns the user with the given id.
func (svc *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user by id", "id", id, "err", err)
		return nil, err
	}
	return user, nil
}
