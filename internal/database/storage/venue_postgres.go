package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/GoArmGo/fyyur/internal/domain"
)

const venueColumns = `id, name, city, state, address, phone, website, facebook_link,
	image_link, genres, seeking_talent, seeking_description, created_at`

// VenueStorage реализует ports.VenueStorage поверх sqlx
type VenueStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewVenueStorage(db *sqlx.DB, logger *slog.Logger) *VenueStorage {
	return &VenueStorage{db: db, logger: logger}
}

// InsertVenue сохраняет новую площадку и проставляет ей id
func (s *VenueStorage) InsertVenue(ctx context.Context, venue *domain.Venue) error {
	start := time.Now()

	if venue.Genres == nil {
		venue.Genres = pq.StringArray{}
	}

	query := `
	INSERT INTO venues (name, city, state, address, phone, website, facebook_link,
		image_link, genres, seeking_talent, seeking_description)
	VALUES (:name, :city, :state, :address, :phone, :website, :facebook_link,
		:image_link, :genres, :seeking_talent, :seeking_description)
	RETURNING id, created_at
	`

	rows, err := s.db.NamedQueryContext(ctx, query, venue)
	if err != nil {
		s.logger.Error("failed to insert venue", "name", venue.Name, "pg_code", pqCode(err), "error", err)
		return persistence("insert venue", err)
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&venue.ID, &venue.CreatedAt); err != nil {
			return persistence("insert venue", err)
		}
	}
	if err := rows.Err(); err != nil {
		return persistence("insert venue", err)
	}

	s.logger.Info("venue saved successfully",
		"id", venue.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// UpdateVenue записывает все изменяемые поля площадки
func (s *VenueStorage) UpdateVenue(ctx context.Context, id int64, upd domain.VenueUpdate) error {
	start := time.Now()

	genres := upd.Genres
	if genres == nil {
		genres = []string{}
	}

	q := `
	UPDATE venues SET
		name = $1, city = $2, state = $3, address = $4, phone = $5, website = $6,
		facebook_link = $7, image_link = $8, genres = $9, seeking_talent = $10,
		seeking_description = $11
	WHERE id = $12
	`

	res, err := s.db.ExecContext(ctx, q,
		upd.Name, upd.City, upd.State, upd.Address, upd.Phone, upd.Website,
		upd.FacebookLink, upd.ImageLink, pq.StringArray(genres), upd.SeekingTalent,
		upd.SeekingDescription, id,
	)
	if err != nil {
		s.logger.Error("failed to update venue", "id", id, "pg_code", pqCode(err), "error", err)
		return persistence("update venue", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return persistence("update venue", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}

	s.logger.Info("venue updated", "id", id, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// DeleteVenue удаляет площадку (и каскадно её шоу) в транзакции.
// Отсутствующий id не считается ошибкой. Транзакция освобождается на любом пути выхода.
func (s *VenueStorage) DeleteVenue(ctx context.Context, id int64) (err error) {
	start := time.Now()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error("failed to begin delete transaction", "id", id, "error", err)
		return persistence("delete venue", err)
	}
	defer func() {
		// после Commit откат вернет sql.ErrTxDone, это ожидаемо
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			s.logger.Error("failed to rollback delete transaction", "id", id, "error", rbErr)
		}
	}()

	res, err := tx.ExecContext(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete venue", "id", id, "pg_code", pqCode(err), "error", err)
		return persistence("delete venue", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("failed to commit venue delete", "id", id, "error", err)
		return persistence("delete venue", err)
	}

	n, _ := res.RowsAffected()
	s.logger.Info("venue delete committed",
		"id", id,
		"deleted", n,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetVenueByID получает площадку по id
func (s *VenueStorage) GetVenueByID(ctx context.Context, id int64) (*domain.Venue, error) {
	start := time.Now()

	var venue domain.Venue
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1 LIMIT 1`

	if err := s.db.GetContext(ctx, &venue, query, id); err != nil {
		err = notFound(err)
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Warn("venue not found by id", "id", id)
			return nil, err
		}
		s.logger.Error("failed to get venue by id", "id", id, "error", err)
		return nil, fmt.Errorf("get venue %d: %w", id, err)
	}

	s.logger.Debug("venue retrieved by id", "id", id, "duration_ms", time.Since(start).Milliseconds())
	return &venue, nil
}

// SearchVenuesByName ищет площадки по подстроке имени без учета регистра
func (s *VenueStorage) SearchVenuesByName(ctx context.Context, term string) ([]domain.Venue, error) {
	start := time.Now()

	q := `SELECT ` + venueColumns + ` FROM venues WHERE name ILIKE $1 ORDER BY id`

	var venues []domain.Venue
	if err := s.db.SelectContext(ctx, &venues, q, likePattern(term)); err != nil {
		s.logger.Error("failed to search venues", "term", term, "error", err)
		return nil, fmt.Errorf("search venues: %w", err)
	}

	s.logger.Info("venues search completed",
		"term", term,
		"found", len(venues),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return venues, nil
}

// ListVenuesWithUpcoming получает все площадки с количеством предстоящих шоу
func (s *VenueStorage) ListVenuesWithUpcoming(ctx context.Context, now time.Time) ([]domain.VenueListing, error) {
	start := time.Now()

	q := `
	SELECT v.id, v.name, v.city, v.state,
		COUNT(sh.id) FILTER (WHERE sh.start_time > $1) AS num_upcoming_shows
	FROM venues v
	LEFT JOIN shows sh ON sh.venue_id = v.id
	GROUP BY v.id
	ORDER BY v.id
	`

	var listings []domain.VenueListing
	if err := s.db.SelectContext(ctx, &listings, q, now.UTC()); err != nil {
		s.logger.Error("failed to list venues", "error", err)
		return nil, fmt.Errorf("list venues: %w", err)
	}

	s.logger.Info("listed venues successfully",
		"count", len(listings),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return listings, nil
}
