package models

// Event types published after successful inserts.
const (
	EventUserCreated     = "user.created"
	EventPropertyCreated = "property.created"
)

// Event describes a change to the listing data, published to Kafka.
type Event struct {
	EventID    string `json:"event_id"`    // EventID is a unique identifier for the event.
	Type       string `json:"type"`        // Type is one of the Event* constants.
	EntityID   int64  `json:"entity_id"`   // EntityID is the id of the inserted row.
	OccurredAt int64  `json:"occurred_at"` // OccurredAt is the Unix timestamp (in seconds) of the insert.
}
