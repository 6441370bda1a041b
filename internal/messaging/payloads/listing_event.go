package payloads

import "time"

// Типы объявлений, о которых публикуются события
const (
	KindVenue  = "venue"
	KindArtist = "artist"
	KindShow   = "show"
)

// ListingEvent описывает только что созданное объявление
// (площадку, исполнителя или шоу) и передается через RabbitMQ.
type ListingEvent struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	EntityID   int64     `json:"entity_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}
