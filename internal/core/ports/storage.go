package ports

import (
	"context"
	"time"

	"github.com/GoArmGo/fyyur/internal/domain"
)

// VenueStorage определяет методы для взаимодействия с хранилищем площадок
type VenueStorage interface {
	InsertVenue(ctx context.Context, venue *domain.Venue) error
	UpdateVenue(ctx context.Context, id int64, upd domain.VenueUpdate) error
	DeleteVenue(ctx context.Context, id int64) error
	GetVenueByID(ctx context.Context, id int64) (*domain.Venue, error)
	SearchVenuesByName(ctx context.Context, term string) ([]domain.Venue, error)
	// ListVenuesWithUpcoming возвращает все площадки по порядку id
	// с количеством шоу, начинающихся позже now
	ListVenuesWithUpcoming(ctx context.Context, now time.Time) ([]domain.VenueListing, error)
}

// ArtistStorage определяет методы для взаимодействия с хранилищем исполнителей
type ArtistStorage interface {
	InsertArtist(ctx context.Context, artist *domain.Artist) error
	UpdateArtist(ctx context.Context, id int64, upd domain.ArtistUpdate) error
	GetArtistByID(ctx context.Context, id int64) (*domain.Artist, error)
	SearchArtistsByName(ctx context.Context, term string) ([]domain.Artist, error)
	ListArtists(ctx context.Context) ([]domain.Artist, error)
}

// ShowStorage определяет методы для работы с шоу.
// Все выборки возвращают шоу с заранее подгруженными Venue и Artist.
type ShowStorage interface {
	InsertShow(ctx context.Context, show *domain.Show) error
	ListShows(ctx context.Context) ([]domain.Show, error)
	ListShowsByVenue(ctx context.Context, venueID int64) ([]domain.Show, error)
	ListShowsByArtist(ctx context.Context, artistID int64) ([]domain.Show, error)
}
