package services

import (
	"context"

	"github.com/sbilibin2017/lightbnb-gateway/internal/logger"
	"github.com/sbilibin2017/lightbnb-gateway/internal/models"
)

// PropertyService handles property search and listing.
type PropertyService struct {
	reader    PropertyReader
	writer    PropertyWriter
	publisher eventPublisher
}

// NewPropertyService creates a new PropertyService. kafkaWriter may be nil.
func NewPropertyService(reader PropertyReader, writer PropertyWriter, kafkaWriter KafkaWriter) *PropertyService {
	return &PropertyService{
		reader:    reader,
		writer:    writer,
		publisher: newEventPublisher(kafkaWriter),
	}
}

// Search returns at most limit properties matching filter, cheapest first.
func (svc *PropertyService) Search(ctx context.Context, filter models.PropertyFilter, limit int) ([]models.PropertyListing, error) {
	listings, err := svc.reader.GetAll(ctx, filter, limit)
	if err != nil {
		logger.Log.Errorw("failed to search properties", "filter", filter, "limit", limit, "err", err)
		return nil, err
	}
	return listings, nil
}

// Create lists a new property.
func (svc *PropertyService) Create(ctx context.Context, property models.NewProperty) (*models.Property, error) {
	saved, err := svc.writer.Save(ctx, property)
	if err != nil {
		logger.Log.Errorw("failed to save property", "owner_id", property.OwnerID, "err", err)
		return nil, err
	}

	svc.publisher.publish(ctx, models.EventPropertyCreated, saved.ID)
	return saved, nil
}
