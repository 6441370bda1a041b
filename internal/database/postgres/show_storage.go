package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/GoArmGo/fyyur/internal/domain"
)

// ShowStorage реализует ports.ShowStorage с использованием GORM.
// Площадка и исполнитель подгружаются явно через Preload, отдельными пакетными запросами.
type ShowStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewShowStorage(db *gorm.DB, logger *slog.Logger) *ShowStorage {
	return &ShowStorage{db: db, logger: logger}
}

// InsertShow сохраняет шоу. Несуществующие venue_id/artist_id
// отклоняются внешним ключом и возвращаются как PersistenceError.
func (s *ShowStorage) InsertShow(ctx context.Context, show *domain.Show) error {
	row := domain.Show{
		VenueID:   show.VenueID,
		ArtistID:  show.ArtistID,
		StartTime: show.StartTime.UTC(),
	}

	result := s.db.WithContext(ctx).Omit("Venue", "Artist").Create(&row)
	if result.Error != nil {
		s.logger.Error("failed to insert show",
			"venue_id", show.VenueID,
			"artist_id", show.ArtistID,
			"error", result.Error,
		)
		return domain.NewPersistenceError("insert show", result.Error)
	}

	show.ID = row.ID
	s.logger.Info("show saved successfully", "id", show.ID, "venue_id", show.VenueID, "artist_id", show.ArtistID)
	return nil
}

// ListShows получает все шоу вместе с площадкой и исполнителем
func (s *ShowStorage) ListShows(ctx context.Context) ([]domain.Show, error) {
	return s.find("list shows", s.db.WithContext(ctx).Preload("Venue").Preload("Artist"))
}

// ListShowsByVenue получает шоу площадки вместе с исполнителями
func (s *ShowStorage) ListShowsByVenue(ctx context.Context, venueID int64) ([]domain.Show, error) {
	q := s.db.WithContext(ctx).Preload("Artist").Where("venue_id = ?", venueID)
	return s.find("list shows by venue", q)
}

// ListShowsByArtist получает шоу исполнителя вместе с площадками
func (s *ShowStorage) ListShowsByArtist(ctx context.Context, artistID int64) ([]domain.Show, error) {
	q := s.db.WithContext(ctx).Preload("Venue").Where("artist_id = ?", artistID)
	return s.find("list shows by artist", q)
}

func (s *ShowStorage) find(op string, q *gorm.DB) ([]domain.Show, error) {
	start := time.Now()

	var shows []domain.Show
	if err := q.Order("start_time ASC").Order("id ASC").Find(&shows).Error; err != nil {
		s.logger.Error("failed to query shows", "op", op, "error", err)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.logger.Debug("shows query completed",
		"op", op,
		"count", len(shows),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return shows, nil
}
