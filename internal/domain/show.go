package domain

import "time"

// Show — выступление исполнителя на площадке в заданное время,
// соответствует таблице shows в бд
type Show struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`

	Venue  *Venue  `json:"venue,omitempty" gorm:"foreignKey:VenueID"`
	Artist *Artist `json:"artist,omitempty" gorm:"foreignKey:ArtistID"`
}

func (Show) TableName() string {
	return "shows"
}

// IsUpcoming сообщает, начнется ли шоу строго позже now
func (s Show) IsUpcoming(now time.Time) bool {
	return s.StartTime.After(now)
}

// ArtistShowView — шоу на странице площадки
type ArtistShowView struct {
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// VenueShowView — шоу на странице исполнителя
type VenueShowView struct {
	VenueID        int64     `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink string    `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// ShowListing — плоская строка общего списка шоу
type ShowListing struct {
	VenueID         int64     `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int64     `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// SearchResult — результат поиска по подстроке имени
type SearchResult[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

func NewSearchResult[T any](data []T) SearchResult[T] {
	if data == nil {
		data = []T{}
	}
	return SearchResult[T]{Count: len(data), Data: data}
}
