package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/fyyur/internal/core/ports"
	"github.com/GoArmGo/fyyur/internal/messaging/payloads"
)

var errNoConsumer = errors.New("worker mode requires RABBITMQ_URL")

// runWorker потребляет события о новых объявлениях до отмены ctx
func runWorker(ctx context.Context, consumer ports.ListingConsumer, logger *slog.Logger) error {
	if consumer == nil {
		return errNoConsumer
	}

	if err := consumer.StartConsumingListingEvents(ctx, notifyListing(logger)); err != nil {
		return fmt.Errorf("start listing consumer: %w", err)
	}
	logger.Info("worker started, waiting for listing events")

	<-ctx.Done()
	logger.Info("worker stopped")
	return nil
}

// notifyListing пишет строку уведомления на каждое новое объявление
func notifyListing(logger *slog.Logger) func(context.Context, payloads.ListingEvent) error {
	return func(_ context.Context, event payloads.ListingEvent) error {
		switch event.Kind {
		case payloads.KindVenue, payloads.KindArtist, payloads.KindShow:
		default:
			// повторная доставка не поможет
			logger.Warn("skipping listing event of unknown kind", "event_id", event.ID, "kind", event.Kind)
			return nil
		}
		logger.Info(fmt.Sprintf("new %s listed: %s", event.Kind, event.Name),
			"event_id", event.ID,
			"entity_id", event.EntityID,
			"occurred_at", event.OccurredAt,
		)
		return nil
	}
}
