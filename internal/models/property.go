package models

import "github.com/sbilibin2017/lightbnb-gateway/internal/validation"

// Property represents a row of the properties table.
// CostPerNight is expressed in the smallest currency unit.
// Description is nil when the column is NULL.
type Property struct {
	ID                int64   `json:"id" db:"id"`
	OwnerID           int64   `json:"owner_id" db:"owner_id"`
	Title             string  `json:"title" db:"title"`
	Description       *string `json:"description" db:"description"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url" db:"thumbnail_photo_url"`
	CoverPhotoURL     string  `json:"cover_photo_url" db:"cover_photo_url"`
	CostPerNight      int64   `json:"cost_per_night" db:"cost_per_night"`
	Street            string  `json:"street" db:"street"`
	City              string  `json:"city" db:"city"`
	Province          string  `json:"province" db:"province"`
	PostCode          string  `json:"post_code" db:"post_code"`
	Country           string  `json:"country" db:"country"`
	ParkingSpaces     int     `json:"parking_spaces" db:"parking_spaces"`
	NumberOfBathrooms int     `json:"number_of_bathrooms" db:"number_of_bathrooms"`
	NumberOfBedrooms  int     `json:"number_of_bedrooms" db:"number_of_bedrooms"`
	Active            bool    `json:"active" db:"active"`
}

// NewProperty holds the fourteen insertable property columns.
type NewProperty struct {
	OwnerID           int64  `json:"owner_id" db:"owner_id" validate:"required,gt=0"`
	Title             string `json:"title" db:"title" validate:"required,max=255"`
	Description       string `json:"description" db:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url" db:"thumbnail_photo_url" validate:"required,max=255"`
	CoverPhotoURL     string `json:"cover_photo_url" db:"cover_photo_url" validate:"required,max=255"`
	CostPerNight      int64  `json:"cost_per_night" db:"cost_per_night" validate:"gte=0"`
	Street            string `json:"street" db:"street" validate:"required,max=255"`
	City              string `json:"city" db:"city" validate:"required,max=255"`
	Province          string `json:"province" db:"province" validate:"required,max=255"`
	PostCode          string `json:"post_code" db:"post_code" validate:"required,max=255"`
	Country           string `json:"country" db:"country" validate:"required,max=255"`
	ParkingSpaces     int    `json:"parking_spaces" db:"parking_spaces" validate:"gte=0"`
	NumberOfBathrooms int    `json:"number_of_bathrooms" db:"number_of_bathrooms" validate:"gte=0"`
	NumberOfBedrooms  int    `json:"number_of_bedrooms" db:"number_of_bedrooms" validate:"gte=0"`
}

func (p NewProperty) Validate() error {
	return validation.Struct(p)
}

// PropertyListing is a property together with its average review rating.
type PropertyListing struct {
	Property
	AverageRating float64 `json:"average_rating" db:"average_rating"`
}

// PropertyFilter holds the optional search filters. Nil fields are ignored.
// The price range applies only when both bounds are set.
type PropertyFilter struct {
	City                 *string  `json:"city,omitempty"`
	OwnerID              *int64   `json:"owner_id,omitempty"`
	MinimumPricePerNight *int64   `json:"minimum_price_per_night,omitempty"`
	MaximumPricePerNight *int64   `json:"maximum_price_per_night,omitempty"`
	MinimumRating        *float64 `json:"minimum_rating,omitempty"`
}

// HasPriceRange reports whether both price bounds are set.
func (f PropertyFilter) HasPriceRange() bool {
	return f.MinimumPricePerNight != nil && f.MaximumPricePerNight != nil
}
