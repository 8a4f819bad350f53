package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/lightbnb-gateway/internal/logger"
	"github.com/sbilibin2017/lightbnb-gateway/internal/models"
	"github.com/sbilibin2017/lightbnb-gateway/internal/sqlbuilder"
	"github.com/sbilibin2017/lightbnb-gateway/internal/sqlerr"
)

type ReservationReadRepository struct {
	db *sqlx.DB
}

func NewReservationReadRepository(db *sqlx.DB) *ReservationReadRepository {
	return &ReservationReadRepository{db: db}
}

// GetAllByGuestID returns at most limit reservations made by a guest,
// earliest first, with the reserved property and its average rating.
// A property without reviews is reported with a zero rating.
func (r *ReservationReadRepository) GetAllByGuestID(ctx context.Context, guestID int64, limit int) ([]models.GuestReservation, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	query, args := sqlbuilder.NewSelect(`
		SELECT reservations.id, reservations.guest_id, reservations.property_id,
			reservations.start_date, reservations.end_date,
			properties.title, properties.city, properties.cost_per_night,
			properties.thumbnail_photo_url,
			coalesce(avg(property_reviews.rating), 0)::float8 AS average_rating
		FROM reservations
		JOIN properties ON reservations.property_id = properties.id
		LEFT JOIN property_reviews ON properties.id = property_reviews.property_id
	`).
		Where("reservations.guest_id = ?", guestID).
		GroupBy("reservations.id", "properties.id").
		OrderBy("reservations.start_date").
		Limit(limit).
		Build()

	reservations := []models.GuestReservation{}
	err := r.db.SelectContext(ctx, &reservations, query, args...)

	logger.Query(query, args, len(reservations), err)

	if err != nil {
		return nil, sqlerr.Classify("reservations.get_all_by_guest_id", err)
	}
	return reservations, nil
}
