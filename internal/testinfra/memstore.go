// Package testinfra содержит вспомогательные реализации портов для тестов.
package testinfra

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/GoArmGo/fyyur/internal/messaging/payloads"
	"github.com/lib/pq"
)

// ErrInjected возвращается хранилищем, когда тест включил сбой записи.
var ErrInjected = errors.New("injected storage failure")

// Store — in-memory хранилище, реализующее VenueStorage, ArtistStorage и
// ShowStorage. Повторяет ограничения схемы: непустое имя, внешние ключи
// шоу и каскадное удаление.
type Store struct {
	mu      sync.Mutex
	venues  map[int64]domain.Venue
	artists map[int64]domain.Artist
	shows   map[int64]domain.Show
	nextID  int64

	writeErr error
	readErr  error
}

func NewStore() *Store {
	return &Store{
		venues:  make(map[int64]domain.Venue),
		artists: make(map[int64]domain.Artist),
		shows:   make(map[int64]domain.Show),
	}
}

// FailWrites заставляет все последующие записи завершаться ошибкой.
// nil отключает сбой.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writeErr = err
}

func (s *Store) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.readErr = err
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) VenueCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.venues)
}

func (s *Store) ArtistCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.artists)
}

func (s *Store) ShowCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.shows)
}

func (s *Store) checkWrite(op, name string) error {
	if s.writeErr != nil {
		return domain.NewPersistenceError(op, s.writeErr)
	}
	if strings.TrimSpace(name) == "" {
		return domain.NewPersistenceError(op, errors.New("check constraint violated: name must not be empty"))
	}
	return nil
}

func (s *Store) InsertVenue(_ context.Context, v *domain.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWrite("insert venue", v.Name); err != nil {
		return err
	}
	v.ID = s.id()
	v.CreatedAt = time.Now().UTC()
	if v.Genres == nil {
		v.Genres = pq.StringArray{}
	}
	s.venues[v.ID] = *v
	return nil
}

func (s *Store) UpdateVenue(_ context.Context, id int64, upd domain.VenueUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWrite("update venue", upd.Name); err != nil {
		return err
	}
	v, ok := s.venues[id]
	if !ok {
		return domain.ErrNotFound
	}
	applyVenueUpdate(&v, upd)
	s.venues[id] = v
	return nil
}

func (s *Store) DeleteVenue(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return domain.NewPersistenceError("delete venue", s.writeErr)
	}
	delete(s.venues, id)
	for showID, sh := range s.shows {
		if sh.VenueID == id {
			delete(s.shows, showID)
		}
	}
	return nil
}

func (s *Store) GetVenueByID(_ context.Context, id int64) (*domain.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, domain.NewPersistenceError("get venue", s.readErr)
	}
	v, ok := s.venues[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (s *Store) SearchVenuesByName(_ context.Context, term string) ([]domain.Venue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, domain.NewPersistenceError("search venues", s.readErr)
	}
	var out []domain.Venue
	for _, v := range s.venues {
		if containsFold(v.Name, term) {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListVenuesWithUpcoming(_ context.Context, now time.Time) ([]domain.VenueListing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, domain.NewPersistenceError("list venues", s.readErr)
	}
	out := make([]domain.VenueListing, 0, len(s.venues))
	for _, v := range s.venues {
		item := domain.VenueListing{ID: v.ID, Name: v.Name, City: v.City, State: v.State}
		for _, sh := range s.shows {
			if sh.VenueID == v.ID && sh.IsUpcoming(now) {
				item.NumUpcomingShows++
			}
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) InsertArtist(_ context.Context, a *domain.Artist) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWrite("insert artist", a.Name); err != nil {
		return err
	}
	a.ID = s.id()
	a.CreatedAt = time.Now().UTC()
	if a.Genres == nil {
		a.Genres = pq.StringArray{}
	}
	s.artists[a.ID] = *a
	return nil
}

func (s *Store) UpdateArtist(_ context.Context, id int64, upd domain.ArtistUpdate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkWrite("update artist", upd.Name); err != nil {
		return err
	}
	a, ok := s.artists[id]
	if !ok {
		return domain.ErrNotFound
	}
	applyArtistUpdate(&a, upd)
	s.artists[id] = a
	return nil
}

func (s *Store) GetArtistByID(_ context.Context, id int64) (*domain.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, domain.NewPersistenceError("get artist", s.readErr)
	}
	a, ok := s.artists[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &a, nil
}

func (s *Store) SearchArtistsByName(_ context.Context, term string) ([]domain.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, domain.NewPersistenceError("search artists", s.readErr)
	}
	var out []domain.Artist
	for _, a := range s.artists {
		if containsFold(a.Name, term) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListArtists(ctx context.Context) ([]domain.Artist, error) {
	return s.SearchArtistsByName(ctx, "")
}

func (s *Store) InsertShow(_ context.Context, sh *domain.Show) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writeErr != nil {
		return domain.NewPersistenceError("insert show", s.writeErr)
	}
	if _, ok := s.venues[sh.VenueID]; !ok {
		return domain.NewPersistenceError("insert show", errors.New("foreign key violation: venue_id"))
	}
	if _, ok := s.artists[sh.ArtistID]; !ok {
		return domain.NewPersistenceError("insert show", errors.New("foreign key violation: artist_id"))
	}
	sh.ID = s.id()
	sh.StartTime = sh.StartTime.UTC()
	stored := *sh
	stored.Venue, stored.Artist = nil, nil
	s.shows[sh.ID] = stored
	return nil
}

func (s *Store) ListShows(_ context.Context) ([]domain.Show, error) {
	return s.listShows(func(domain.Show) bool { return true })
}

func (s *Store) ListShowsByVenue(_ context.Context, venueID int64) ([]domain.Show, error) {
	return s.listShows(func(sh domain.Show) bool { return sh.VenueID == venueID })
}

func (s *Store) ListShowsByArtist(_ context.Context, artistID int64) ([]domain.Show, error) {
	return s.listShows(func(sh domain.Show) bool { return sh.ArtistID == artistID })
}

// listShows подгружает Venue и Artist так же, как Preload в gorm-хранилище.
func (s *Store) listShows(keep func(domain.Show) bool) ([]domain.Show, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.readErr != nil {
		return nil, domain.NewPersistenceError("list shows", s.readErr)
	}
	var out []domain.Show
	for _, sh := range s.shows {
		if !keep(sh) {
			continue
		}
		v := s.venues[sh.VenueID]
		a := s.artists[sh.ArtistID]
		sh.Venue, sh.Artist = &v, &a
		out = append(out, sh)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartTime.Equal(out[j].StartTime) {
			return out[i].StartTime.Before(out[j].StartTime)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// applyVenueUpdate повторяет список колонок UPDATE в VenueStorage
func applyVenueUpdate(v *domain.Venue, u domain.VenueUpdate) {
	v.Name = u.Name
	v.City = u.City
	v.State = u.State
	v.Address = u.Address
	v.Phone = u.Phone
	v.Website = u.Website
	v.FacebookLink = u.FacebookLink
	v.ImageLink = u.ImageLink
	v.Genres = pq.StringArray(u.Genres)
	v.SeekingTalent = u.SeekingTalent
	v.SeekingDescription = u.SeekingDescription
}

func applyArtistUpdate(a *domain.Artist, u domain.ArtistUpdate) {
	a.Name = u.Name
	a.City = u.City
	a.State = u.State
	a.Phone = u.Phone
	a.Website = u.Website
	a.ImageLink = u.ImageLink
	a.FacebookLink = u.FacebookLink
	a.Genres = pq.StringArray(u.Genres)
	a.SeekingVenue = u.SeekingVenue
	a.SeekingDescription = u.SeekingDescription
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// Publisher запоминает опубликованные события.
type Publisher struct {
	mu     sync.Mutex
	events []payloads.ListingEvent
	Err    error
}

func (p *Publisher) PublishListingEvent(_ context.Context, event payloads.ListingEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.events = append(p.events, event)
	return nil
}

func (p *Publisher) Events() []payloads.ListingEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]payloads.ListingEvent(nil), p.events...)
}
