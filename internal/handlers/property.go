package handlers

//go:generate mockgen -source=property.go -destination=property_mock.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/lightbnb-gateway/internal/models"
)

// PropertySearcher defines the interface that the search service must implement.
type PropertySearcher interface {
	Search(ctx context.Context, filter models.PropertyFilter, limit int) ([]models.PropertyListing, error)
}

// PropertyCreator defines the interface that the listing service must implement.
type PropertyCreator interface {
	Create(ctx context.Context, property models.NewProperty) (*models.Property, error)
}

// PropertiesResponse represents a property search result
// swagger:model PropertiesResponse
type PropertiesResponse struct {
	Properties []models.PropertyListing `json:"properties"`
}

// NewSearchPropertiesHandler returns an HTTP handler for property search.
// @Summary Search properties
// @Description Lists properties cheapest first. The price range applies only when both bounds are given.
// @Tags properties
// @Produce json
// @Param city query string false "Case-insensitive part of the city name"
// @Param owner_id query int false "Owner id"
// @Param minimum_price_per_night query int false "Exclusive lower price bound"
// @Param maximum_price_per_night query int false "Exclusive upper price bound"
// @Param minimum_rating query number false "Minimum average rating"
// @Param limit query int false "Maximum number of rows, default 10"
// @Success 200 {object} handlers.PropertiesResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Router /api/properties [get]
func NewSearchPropertiesHandler(svc PropertySearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var filter models.PropertyFilter
		var err error

		if city := r.URL.Query().Get("city"); city != "" {
			filter.City = &city
		}
		if filter.OwnerID, err = queryInt64(r, "owner_id"); err != nil {
			writeBadRequest(w, "Invalid owner_id")
			return
		}
		if filter.MinimumPricePerNight, err = queryInt64(r, "minimum_price_per_night"); err != nil {
			writeBadRequest(w, "Invalid minimum_price_per_night")
			return
		}
		if filter.MaximumPricePerNight, err = queryInt64(r, "maximum_price_per_night"); err != nil {
			writeBadRequest(w, "Invalid maximum_price_per_night")
			return
		}
		if filter.MinimumRating, err = queryFloat64(r, "minimum_rating"); err != nil {
			writeBadRequest(w, "Invalid minimum_rating")
			return
		}
		limit, err := queryLimit(r)
		if err != nil {
			writeBadRequest(w, "Invalid limit")
			return
		}

		listings, err := svc.Search(r.Context(), filter, limit)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, PropertiesResponse{Properties: listings})
	}
}

// NewCreatePropertyHandler returns an HTTP handler that lists a new property.
// @Summary Create a property
// @Tags properties
// @Accept json
// @Produce json
// @Param property body models.NewProperty true "Property"
// @Success 201 {object} models.Property
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Unknown owner"
// @Router /api/properties [post]
func NewCreatePropertyHandler(svc PropertyCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.NewProperty
		if !decodeAndValidate(w, r, &req) {
			return
		}

		property, err := svc.Create(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, property)
	}
}
