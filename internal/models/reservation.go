package models

import "time"

// GuestReservation is a reservation joined with the reserved property.
type GuestReservation struct {
	ID                int64     `json:"id" db:"id"`
	GuestID           int64     `json:"guest_id" db:"guest_id"`
	PropertyID        int64     `json:"property_id" db:"property_id"`
	StartDate         time.Time `json:"start_date" db:"start_date"`
	EndDate           time.Time `json:"end_date" db:"end_date"`
	Title             string    `json:"title" db:"title"`
	City              string    `json:"city" db:"city"`
	CostPerNight      int64     `json:"cost_per_night" db:"cost_per_night"`
	ThumbnailPhotoURL string    `json:"thumbnail_photo_url" db:"thumbnail_photo_url"`
	AverageRating     float64   `json:"average_rating" db:"average_rating"`
}
