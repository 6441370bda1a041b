package domain

import (
	"time"

	"github.com/lib/pq"
)

// Venue представляет площадку, на которой проходят шоу,
// соответствует таблице venues в бд
type Venue struct {
	ID                 int64          `json:"id" db:"id" gorm:"primaryKey"`
	Name               string         `json:"name" db:"name"`
	City               string         `json:"city" db:"city"`
	State              string         `json:"state" db:"state"`
	Address            string         `json:"address" db:"address"`
	Phone              string         `json:"phone" db:"phone"`
	Website            string         `json:"website" db:"website"`
	FacebookLink       string         `json:"facebook_link" db:"facebook_link"`
	ImageLink          string         `json:"image_link" db:"image_link"`
	Genres             pq.StringArray `json:"genres" db:"genres" gorm:"type:text[]"`
	SeekingTalent      bool           `json:"seeking_talent" db:"seeking_talent"`
	SeekingDescription string         `json:"seeking_description" db:"seeking_description"`
	CreatedAt          time.Time      `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
}

func (Venue) TableName() string {
	return "venues"
}

// Short возвращает укороченную проекцию для результатов поиска
func (v Venue) Short() VenueShort {
	return VenueShort{ID: v.ID, Name: v.Name, ImageLink: v.ImageLink}
}

// VenueUpdate содержит все изменяемые поля площадки.
// Обновление пишется целиком, поле за полем.
type VenueUpdate struct {
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Website            string
	FacebookLink       string
	ImageLink          string
	Genres             []string
	SeekingTalent      bool
	SeekingDescription string
}

type VenueShort struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImageLink string `json:"image_link"`
}

// VenueListing — строка сгруппированного списка площадок
// вместе с количеством предстоящих шоу
type VenueListing struct {
	ID               int64  `db:"id"`
	Name             string `db:"name"`
	City             string `db:"city"`
	State            string `db:"state"`
	NumUpcomingShows int    `db:"num_upcoming_shows"`
}

// VenueArea объединяет площадки с одинаковыми городом и штатом
type VenueArea struct {
	City   string          `json:"city"`
	State  string          `json:"state"`
	Venues []VenueAreaItem `json:"venues"`
}

type VenueAreaItem struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// VenueDetail — полная проекция для страницы площадки
type VenueDetail struct {
	Venue
	UpcomingShows      []ArtistShowView `json:"upcoming_shows"`
	PastShows          []ArtistShowView `json:"past_shows"`
	UpcomingShowsCount int              `json:"upcoming_shows_count"`
	PastShowsCount     int              `json:"past_shows_count"`
}
