package domain

import (
	"time"

	"github.com/lib/pq"
)

// Artist представляет исполнителя,
// соответствует таблице artists в бд
type Artist struct {
	ID                 int64          `json:"id" db:"id" gorm:"primaryKey"`
	Name               string         `json:"name" db:"name"`
	City               string         `json:"city" db:"city"`
	State              string         `json:"state" db:"state"`
	Phone              string         `json:"phone" db:"phone"`
	Website            string         `json:"website" db:"website"`
	ImageLink          string         `json:"image_link" db:"image_link"`
	FacebookLink       string         `json:"facebook_link" db:"facebook_link"`
	Genres             pq.StringArray `json:"genres" db:"genres" gorm:"type:text[]"`
	SeekingVenue       bool           `json:"seeking_venue" db:"seeking_venue"`
	SeekingDescription string         `json:"seeking_description" db:"seeking_description"`
	CreatedAt          time.Time      `json:"created_at" db:"created_at" gorm:"autoCreateTime"`
}

func (Artist) TableName() string {
	return "artists"
}

func (a Artist) Short() ArtistShort {
	return ArtistShort{ID: a.ID, Name: a.Name, ImageLink: a.ImageLink}
}

// ArtistUpdate содержит все изменяемые поля исполнителя
type ArtistUpdate struct {
	Name               string
	City               string
	State              string
	Phone              string
	Website            string
	ImageLink          string
	FacebookLink       string
	Genres             []string
	SeekingVenue       bool
	SeekingDescription string
}

type ArtistShort struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ImageLink string `json:"image_link"`
}

// ArtistDetail — полная проекция для страницы исполнителя
type ArtistDetail struct {
	Artist
	UpcomingShows      []VenueShowView `json:"upcoming_shows"`
	PastShows          []VenueShowView `json:"past_shows"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
	PastShowsCount     int             `json:"past_shows_count"`
}
