package handlers

//go:generate mockgen -source=reservation.go -destination=reservation_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/lightbnb-gateway/internal/models"
)

// ReservationLister defines the interface that the reservation service must implement.
type ReservationLister interface {
	ListForGuest(ctx context.Context, guestID int64, limit int) ([]models.GuestReservation, error)
}

// ReservationsResponse represents a guest's reservations
// swagger:model ReservationsResponse
type ReservationsResponse struct {
	Reservations []models.GuestReservation `json:"reservations"`
}

// NewListReservationsHandler returns an HTTP handler listing a guest's reservations.
// @Summary List reservations of a guest
// @Tags reservations
// @Produce json
// @Param guest_id query int true "Guest id"
// @Param limit query int false "Maximum number of rows, default 10"
// @Success 200 {object} handlers.ReservationsResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid guest_id"
// @Router /api/reservations [get]
func NewListReservationsHandler(svc ReservationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guestID, err := queryInt64(r, "guest_id")
		if err != nil || guestID == nil {
			writeBadRequest(w, "Invalid guest_id")
			return
		}
		limit, err := queryLimit(r)
		if err != nil {
			writeBadRequest(w, "Invalid limit")
			return
		}

		reservations, err := svc.ListForGuest(r.Context(), *guestID, limit)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ReservationsResponse{Reservations: reservations})
	}
}
