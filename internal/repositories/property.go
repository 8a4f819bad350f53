package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/lightbnb-gateway/internal/logger"
	"github.com/sbilibin2017/lightbnb-gateway/internal/models"
	"github.com/sbilibin2017/lightbnb-gateway/internal/sqlbuilder"
	"github.com/sbilibin2017/lightbnb-gateway/internal/sqlerr"
)

// DefaultLimit is the row limit used when a caller passes a non-positive one.
const DefaultLimit = 10

const propertyColumns = `
	properties.id, properties.owner_id, properties.title, properties.description,
	properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
	properties.street, properties.city, properties.province, properties.post_code,
	properties.country, properties.parking_spaces, properties.number_of_bathrooms,
	properties.number_of_bedrooms, properties.active
`

const averageRating = `avg(property_reviews.rating)::float8`

// likeEscaper makes LIKE metacharacters match literally under the default
// backslash escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// PropertyReadRepository searches listed properties.
type PropertyReadRepository struct {
	db *sqlx.DB
}

func NewPropertyReadRepository(db *sqlx.DB) *PropertyReadRepository {
	return &PropertyReadRepository{db: db}
}

// GetAll returns at most limit properties matching filter, cheapest first,
// each with its average review rating. Properties without reviews are not
// listed.
func (r *PropertyReadRepository) GetAll(ctx context.Context, filter models.PropertyFilter, limit int) ([]models.PropertyListing, error) {
	query, args := buildPropertySearch(filter, limit)

	listings := []models.PropertyListing{}
	err := r.db.SelectContext(ctx, &listings, query, args...)

	logger.Query(query, args, len(listings), err)

	if err != nil {
		return nil, sqlerr.Classify("properties.get_all", err)
	}
	return listings, nil
}

func buildPropertySearch(filter models.PropertyFilter, limit int) (string, []any) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := sqlbuilder.NewSelect(`
		SELECT ` + propertyColumns + `, ` + averageRating + ` AS average_rating
		FROM properties
		JOIN property_reviews ON properties.id = property_reviews.property_id
	`)

	if filter.City != nil && *filter.City != "" {
		q.Where("properties.city ILIKE ?", "%"+likeEscaper.Replace(*filter.City)+"%")
	}
	if filter.OwnerID != nil {
		q.Where("properties.owner_id = ?", *filter.OwnerID)
	}
	if filter.HasPriceRange() {
		q.Where("? < properties.cost_per_night AND properties.cost_per_night < ?",
			*filter.MinimumPricePerNight, *filter.MaximumPricePerNight)
	}

	q.GroupBy("properties.id")

	if filter.MinimumRating != nil {
		q.Having(averageRating+" >= ?", *filter.MinimumRating)
	}

	return q.OrderBy("properties.cost_per_night").Limit(limit).Build()
}

// PropertyWriteRepository inserts properties.
type PropertyWriteRepository struct {
	db *sqlx.DB
}

func NewPropertyWriteRepository(db *sqlx.DB) *PropertyWriteRepository {
	return &PropertyWriteRepository{db: db}
}

// Save inserts a property and returns the persisted row.
func (r *PropertyWriteRepository) Save(ctx context.Context, p models.NewProperty) (*models.Property, error) {
	const query = `
		INSERT INTO properties (
			owner_id, title, description, thumbnail_photo_url, cover_photo_url,
			cost_per_night, street, city, province, post_code, country,
			parking_spaces, number_of_bathrooms, number_of_bedrooms
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + propertyColumns
	args := []any{
		p.OwnerID, p.Title, p.Description, p.ThumbnailPhotoURL, p.CoverPhotoURL,
		p.CostPerNight, p.Street, p.City, p.Province, p.PostCode, p.Country,
		p.ParkingSpaces, p.NumberOfBathrooms, p.NumberOfBedrooms,
	}

	var saved models.Property
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Query(query, args, saved.ID, err)

	if err != nil {
		return nil, sqlerr.Classify("properties.save", err)
	}
	return &saved, nil
}
