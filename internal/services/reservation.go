package services

import (
	"context"

	"github.com/sbilibin2017/lightbnb-gateway/internal/logger"
	"github.com/sbilibin2017/lightbnb-gateway/internal/models"
)

type ReservationService struct {
	reader ReservationReader
}

func NewReservationService(reader ReservationReader) *ReservationService {
	return &ReservationService{reader: reader}
}

// ListForGuest returns at most limit reservations of a guest.
func (svc *ReservationService) ListForGuest(ctx context.Context, guestID int64, limit int) ([]models.GuestReservation, error) {
	reservations, err := svc.reader.GetAllByGuestID(ctx, guestID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list reservations", "guest_id", guestID, "err", err)
		return nil, err
	}
	return reservations, nil
}
