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

// VenueInteractor реализует VenueUseCase
type VenueInteractor struct {
	venues   ports.VenueStorage
	shows    ports.ShowStorage
	notifier listingNotifier
	now      Clock
	logger   *slog.Logger
}

// NewVenueInteractor создает интерактор площадок.
// publisher может быть nil, now по умолчанию time.Now.
func NewVenueInteractor(
	venues ports.VenueStorage,
	shows ports.ShowStorage,
	publisher ports.ListingPublisher,
	now Clock,
	logger *slog.Logger,
) *VenueInteractor {
	if now == nil {
		now = time.Now
	}
	return &VenueInteractor{
		venues:   venues,
		shows:    shows,
		notifier: newListingNotifier(publisher, logger),
		now:      now,
		logger:   logger,
	}
}

func (uc *VenueInteractor) ListVenueAreas(ctx context.Context) ([]domain.VenueArea, error) {
	listings, err := uc.venues.ListVenuesWithUpcoming(ctx, uc.now())
	if err != nil {
		return nil, fmt.Errorf("usecase: list venues: %w", err)
	}
	return GroupVenuesByArea(listings), nil
}

func (uc *VenueInteractor) SearchVenues(ctx context.Context, term string) (domain.SearchResult[domain.VenueShort], error) {
	venues, err := uc.venues.SearchVenuesByName(ctx, term)
	if err != nil {
		return domain.SearchResult[domain.VenueShort]{}, fmt.Errorf("usecase: search venues %q: %w", term, err)
	}
	return domain.NewSearchResult(shorts(venues, domain.Venue.Short)), nil
}

func (uc *VenueInteractor) GetVenueDetail(ctx context.Context, id int64) (*domain.VenueDetail, error) {
	venue, err := uc.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := uc.shows.ListShowsByVenue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: list shows of venue %d: %w", id, err)
	}

	upcoming, past := splitShows(shows, uc.now(), artistShowView)
	return &domain.VenueDetail{
		Venue:              *venue,
		UpcomingShows:      upcoming,
		PastShows:          past,
		UpcomingShowsCount: len(upcoming),
		PastShowsCount:     len(past),
	}, nil
}

func (uc *VenueInteractor) GetVenue(ctx context.Context, id int64) (*domain.Venue, error) {
	venue, err := uc.venues.GetVenueByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: get venue %d: %w", id, err)
	}
	return venue, nil
}

func (uc *VenueInteractor) CreateVenue(ctx context.Context, venue *domain.Venue) error {
	if err := uc.venues.InsertVenue(ctx, venue); err != nil {
		return fmt.Errorf("usecase: create venue %q: %w", venue.Name, err)
	}

	uc.logger.Info("venue listed", "venue_id", venue.ID, "name", venue.Name)
	uc.notifier.listed(ctx, payloads.KindVenue, venue.ID, venue.Name, uc.now())
	return nil
}

func (uc *VenueInteractor) UpdateVenue(ctx context.Context, id int64, upd domain.VenueUpdate) error {
	if err := uc.venues.UpdateVenue(ctx, id, upd); err != nil {
		return fmt.Errorf("usecase: update venue %d: %w", id, err)
	}
	return nil
}

func (uc *VenueInteractor) DeleteVenue(ctx context.Context, id int64) error {
	if err := uc.venues.DeleteVenue(ctx, id); err != nil {
		return fmt.Errorf("usecase: delete venue %d: %w", id, err)
	}
	return nil
}
