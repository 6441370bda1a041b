package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/GoArmGo/fyyur/internal/domain"
)

const artistColumns = `id, name, city, state, phone, website, image_link, facebook_link,
	genres, seeking_venue, seeking_description, created_at`

// ArtistStorage реализует ports.ArtistStorage поверх sqlx
type ArtistStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewArtistStorage(db *sqlx.DB, logger *slog.Logger) *ArtistStorage {
	return &ArtistStorage{db: db, logger: logger}
}

// InsertArtist сохраняет нового исполнителя и проставляет ему id
func (s *ArtistStorage) InsertArtist(ctx context.Context, artist *domain.Artist) error {
	start := time.Now()

	if artist.Genres == nil {
		artist.Genres = pq.StringArray{}
	}

	query := `
	INSERT INTO artists (name, city, state, phone, website, image_link, facebook_link,
		genres, seeking_venue, seeking_description)
	VALUES (:name, :city, :state, :phone, :website, :image_link, :facebook_link,
		:genres, :seeking_venue, :seeking_description)
	RETURNING id, created_at
	`

	rows, err := s.db.NamedQueryContext(ctx, query, artist)
	if err != nil {
		s.logger.Error("failed to insert artist", "name", artist.Name, "pg_code", pqCode(err), "error", err)
		return persistence("insert artist", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&artist.ID, &artist.CreatedAt); err != nil {
			return persistence("insert artist", err)
		}
	}
	if err := rows.Err(); err != nil {
		return persistence("insert artist", err)
	}

	s.logger.Info("artist saved successfully",
		"id", artist.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// UpdateArtist записывает все изменяемые поля исполнителя
func (s *ArtistStorage) UpdateArtist(ctx context.Context, id int64, upd domain.ArtistUpdate) error {
	genres := upd.Genres
	if genres == nil {
		genres = []string{}
	}

	q := `
	UPDATE artists SET
		name = $1, city = $2, state = $3, phone = $4, website = $5, image_link = $6,
		facebook_link = $7, genres = $8, seeking_venue = $9, seeking_description = $10
	WHERE id = $11
	`

	res, err := s.db.ExecContext(ctx, q,
		upd.Name, upd.City, upd.State, upd.Phone, upd.Website, upd.ImageLink,
		upd.FacebookLink, pq.StringArray(genres), upd.SeekingVenue, upd.SeekingDescription, id,
	)
	if err != nil {
		s.logger.Error("failed to update artist", "id", id, "pg_code", pqCode(err), "error", err)
		return persistence("update artist", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return persistence("update artist", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}

	s.logger.Info("artist updated", "id", id)
	return nil
}

// GetArtistByID получает исполнителя по id
func (s *ArtistStorage) GetArtistByID(ctx context.Context, id int64) (*domain.Artist, error) {
	var artist domain.Artist
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1 LIMIT 1`

	if err := s.db.GetContext(ctx, &artist, query, id); err != nil {
		err = notFound(err)
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("artist not found by id", "id", id)
			return nil, err
		}
		s.logger.Error("failed to get artist by id", "id", id, "error", err)
		return nil, fmt.Errorf("get artist %d: %w", id, err)
	}
	return &artist, nil
}

// SearchArtistsByName ищет исполнителей по подстроке имени без учета регистра
func (s *ArtistStorage) SearchArtistsByName(ctx context.Context, term string) ([]domain.Artist, error) {
	start := time.Now()

	q := `SELECT ` + artistColumns + ` FROM artists WHERE name ILIKE $1 ORDER BY id`

	var artists []domain.Artist
	if err := s.db.SelectContext(ctx, &artists, q, likePattern(term)); err != nil {
		s.logger.Error("failed to search artists", "term", term, "error", err)
		return nil, fmt.Errorf("search artists: %w", err)
	}

	s.logger.Info("artists search completed",
		"term", term,
		"found", len(artists),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return artists, nil
}

// ListArtists получает всех исполнителей по порядку id
func (s *ArtistStorage) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	var artists []domain.Artist
	q := `SELECT ` + artistColumns + ` FROM artists ORDER BY id`

	if err := s.db.SelectContext(ctx, &artists, q); err != nil {
		s.logger.Error("failed to list artists", "error", err)
		return nil, fmt.Errorf("list artists: %w", err)
	}
	return artists, nil
}
