package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/GoArmGo/fyyur/internal/core/ports"
	"github.com/GoArmGo/fyyur/internal/messaging/payloads"
	"github.com/GoArmGo/fyyur/internal/metrics"
	"github.com/google/uuid"
)

type noopPublisher struct{}

func (noopPublisher) PublishListingEvent(context.Context, payloads.ListingEvent) error { return nil }

// listingNotifier учитывает созданное объявление в метриках и публикует
// событие. Ошибка публикации только логируется: объявление уже сохранено.
type listingNotifier struct {
	publisher ports.ListingPublisher
	logger    *slog.Logger
}

func newListingNotifier(publisher ports.ListingPublisher, logger *slog.Logger) listingNotifier {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	return listingNotifier{publisher: publisher, logger: logger}
}

func (n listingNotifier) listed(ctx context.Context, kind string, id int64, name string, at time.Time) {
	metrics.RecordListingCreated(kind)

	event := payloads.ListingEvent{
		ID:         uuid.NewString(),
		Kind:       kind,
		EntityID:   id,
		Name:       name,
		OccurredAt: at.UTC(),
	}
	if err := n.publisher.PublishListingEvent(ctx, event); err != nil {
		n.logger.Warn("failed to publish listing event",
			"kind", kind,
			"entity_id", id,
			"error", err,
		)
	}
}
