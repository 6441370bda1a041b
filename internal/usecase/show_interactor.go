package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/fyyur/internal/core/ports"
	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/GoArmGo/fyyur/internal/messaging/payloads"
)

// ShowInteractor реализует ShowUseCase
type ShowInteractor struct {
	shows    ports.ShowStorage
	notifier listingNotifier
	now      Clock
	logger   *slog.Logger
}

func NewShowInteractor(shows ports.ShowStorage, publisher ports.ListingPublisher, now Clock, logger *slog.Logger) *ShowInteractor {
	if now == nil {
		now = time.Now
	}
	return &ShowInteractor{
		shows:    shows,
		notifier: newListingNotifier(publisher, logger),
		now:      now,
		logger:   logger,
	}
}

func (uc *ShowInteractor) ListShows(ctx context.Context) ([]domain.ShowListing, error) {
	shows, err := uc.shows.ListShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: list shows: %w", err)
	}
	return shorts(shows, showListing), nil
}

func (uc *ShowInteractor) CreateShow(ctx context.Context, show *domain.Show) error {
	if err := uc.shows.InsertShow(ctx, show); err != nil {
		return fmt.Errorf("usecase: create show (venue %d, artist %d): %w", show.VenueID, show.ArtistID, err)
	}

	uc.logger.Info("show listed",
		"show_id", show.ID,
		"venue_id", show.VenueID,
		"artist_id", show.ArtistID,
		"start_time", show.StartTime,
	)
	name := fmt.Sprintf("artist %d at venue %d", show.ArtistID, show.VenueID)
	uc.notifier.listed(ctx, payloads.KindShow, show.ID, name, uc.now())
	return nil
}
