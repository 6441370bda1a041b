package usecase

import (
	"context"
	"time"

	"github.com/GoArmGo/fyyur/internal/domain"
)

// Clock возвращает текущее время. Читается один раз на запрос.
type Clock func() time.Time

// VenueUseCase определяет бизнес-логику работы с площадками
type VenueUseCase interface {
	// ListVenueAreas группирует площадки по (city, state) в порядке первого появления
	ListVenueAreas(ctx context.Context) ([]domain.VenueArea, error)
	SearchVenues(ctx context.Context, term string) (domain.SearchResult[domain.VenueShort], error)
	// GetVenueDetail возвращает площадку с шоу, разделенными на предстоящие и прошедшие
	GetVenueDetail(ctx context.Context, id int64) (*domain.VenueDetail, error)
	GetVenue(ctx context.Context, id int64) (*domain.Venue, error)
	CreateVenue(ctx context.Context, venue *domain.Venue) error
	UpdateVenue(ctx context.Context, id int64, upd domain.VenueUpdate) error
	// DeleteVenue удаляет площадку вместе с ее шоу. Отсутствующий id не ошибка.
	DeleteVenue(ctx context.Context, id int64) error
}

// ArtistUseCase определяет бизнес-логику работы с исполнителями
type ArtistUseCase interface {
	ListArtists(ctx context.Context) ([]domain.ArtistShort, error)
	SearchArtists(ctx context.Context, term string) (domain.SearchResult[domain.ArtistShort], error)
	GetArtistDetail(ctx context.Context, id int64) (*domain.ArtistDetail, error)
	GetArtist(ctx context.Context, id int64) (*domain.Artist, error)
	CreateArtist(ctx context.Context, artist *domain.Artist) error
	UpdateArtist(ctx context.Context, id int64, upd domain.ArtistUpdate) error
}

// ShowUseCase определяет бизнес-логику работы с шоу
type ShowUseCase interface {
	// ListShows возвращает все шоу по start_time с именами площадки и исполнителя
	ListShows(ctx context.Context) ([]domain.ShowListing, error)
	CreateShow(ctx context.Context, show *domain.Show) error
}

var (
	_ VenueUseCase  = (*VenueInteractor)(nil)
	_ ArtistUseCase = (*ArtistInteractor)(nil)
	_ ShowUseCase   = (*ShowInteractor)(nil)
)
