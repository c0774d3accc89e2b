package models

// Event types published to the message broker.
const (
	EventListingCreated = "listing.created"
	EventListingUpdated = "listing.updated"
	EventListingDeleted = "listing.deleted"
	EventReviewCreated  = "review.created"
	EventReviewUpdated  = "review.updated"
	EventReviewDeleted  = "review.deleted"
)

// Event represents a domain change, including the affected entity, the acting user and the time it happened.
type Event struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier for the event.
	Type      string `json:"type"`       // Type is one of the Event* constants.
	EntityID  string `json:"entity_id"`  // EntityID is the identifier of the listing or review that changed.
	ListingID string `json:"listing_id"` // ListingID is the listing the change belongs to.
	UserID    string `json:"user_id"`    // UserID is the identifier of the user who made the change.
	Timestamp int64  `json:"timestamp"`  // Timestamp is the Unix timestamp (in seconds) when the change occurred.
}
