package services

//go:generate mockgen -source=interfaces.go -destination=mocks.go -package=services

import (
	"context"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/lightbnb-gateway/internal/models"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.NewUser) (*models.User, error)
}

// PropertyReader searches properties.
type PropertyReader interface {
	GetAll(ctx context.Context, filter models.PropertyFilter, limit int) ([]models.PropertyListing, error)
}

// PropertyWriter inserts properties.
type PropertyWriter interface {
	Save(ctx context.Context, property models.NewProperty) (*models.Property, error)
}

// ReservationReader lists reservations.
type ReservationReader interface {
	GetAllByGuestID(ctx context.Context, guestID int64, limit int) ([]models.GuestReservation, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}
