package ports

import (
	"context"

	"github.com/GoArmGo/fyyur/internal/messaging/payloads"
)

// ListingPublisher публикует события о новых объявлениях.
// Используется use case'ами после успешной вставки.
type ListingPublisher interface {
	PublishListingEvent(ctx context.Context, event payloads.ListingEvent) error
}

// ListingConsumer используется воркером для получения событий из очереди
type ListingConsumer interface {
	StartConsumingListingEvents(ctx context.Context, handler func(context.Context, payloads.ListingEvent) error) error
}
