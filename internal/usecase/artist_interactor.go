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

// ArtistInteractor реализует ArtistUseCase
type ArtistInteractor struct {
	artists  ports.ArtistStorage
	shows    ports.ShowStorage
	notifier listingNotifier
	now      Clock
	logger   *slog.Logger
}

func NewArtistInteractor(
	artists ports.ArtistStorage,
	shows ports.ShowStorage,
	publisher ports.ListingPublisher,
	now Clock,
	logger *slog.Logger,
) *ArtistInteractor {
	if now == nil {
		now = time.Now
	}
	return &ArtistInteractor{
		artists:  artists,
		shows:    shows,
		notifier: newListingNotifier(publisher, logger),
		now:      now,
		logger:   logger,
	}
}

func (uc *ArtistInteractor) ListArtists(ctx context.Context) ([]domain.ArtistShort, error) {
	artists, err := uc.artists.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: list artists: %w", err)
	}
	return shorts(artists, domain.Artist.Short), nil
}

func (uc *ArtistInteractor) SearchArtists(ctx context.Context, term string) (domain.SearchResult[domain.ArtistShort], error) {
	artists, err := uc.artists.SearchArtistsByName(ctx, term)
	if err != nil {
		return domain.SearchResult[domain.ArtistShort]{}, fmt.Errorf("usecase: search artists %q: %w", term, err)
	}
	return domain.NewSearchResult(shorts(artists, domain.Artist.Short)), nil
}

func (uc *ArtistInteractor) GetArtistDetail(ctx context.Context, id int64) (*domain.ArtistDetail, error) {
	artist, err := uc.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	shows, err := uc.shows.ListShowsByArtist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: list shows of artist %d: %w", id, err)
	}

	upcoming, past := splitShows(shows, uc.now(), venueShowView)
	return &domain.ArtistDetail{
		Artist:             *artist,
		UpcomingShows:      upcoming,
		PastShows:          past,
		UpcomingShowsCount: len(upcoming),
		PastShowsCount:     len(past),
	}, nil
}

func (uc *ArtistInteractor) GetArtist(ctx context.Context, id int64) (*domain.Artist, error) {
	artist, err := uc.artists.GetArtistByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: get artist %d: %w", id, err)
	}
	return artist, nil
}

func (uc *ArtistInteractor) CreateArtist(ctx context.Context, artist *domain.Artist) error {
	if err := uc.artists.InsertArtist(ctx, artist); err != nil {
		return fmt.Errorf("usecase: create artist %q: %w", artist.Name, err)
	}

	uc.logger.Info("artist listed", "artist_id", artist.ID, "name", artist.Name)
	uc.notifier.listed(ctx, payloads.KindArtist, artist.ID, artist.Name, uc.now())
	return nil
}

func (uc *ArtistInteractor) UpdateArtist(ctx context.Context, id int64, upd domain.ArtistUpdate) error {
	if err := uc.artists.UpdateArtist(ctx, id, upd); err != nil {
		return fmt.Errorf("usecase: update artist %d: %w", id, err)
	}
	return nil
}
