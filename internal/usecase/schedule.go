package usecase

import (
	"time"

	"github.com/GoArmGo/fyyur/internal/domain"
)

type areaKey struct {
	city  string
	state string
}

// GroupVenuesByArea объединяет площадки с одинаковыми city и state в одну
// группу. Порядок групп и площадок внутри них повторяет порядок входа.
func GroupVenuesByArea(listings []domain.VenueListing) []domain.VenueArea {
	areas := make([]domain.VenueArea, 0)
	index := make(map[areaKey]int)

	for _, l := range listings {
		key := areaKey{city: l.City, state: l.State}
		i, ok := index[key]
		if !ok {
			i = len(areas)
			index[key] = i
			areas = append(areas, domain.VenueArea{City: l.City, State: l.State})
		}
		areas[i].Venues = append(areas[i].Venues, domain.VenueAreaItem{
			ID:               l.ID,
			Name:             l.Name,
			NumUpcomingShows: l.NumUpcomingShows,
		})
	}
	return areas
}

// splitShows делит шоу на предстоящие (start_time > now) и прошедшие.
// Оба среза не nil, даже если пусты.
func splitShows[T any](shows []domain.Show, now time.Time, project func(domain.Show) T) (upcoming, past []T) {
	upcoming, past = make([]T, 0), make([]T, 0)
	for _, sh := range shows {
		if sh.IsUpcoming(now) {
			upcoming = append(upcoming, project(sh))
		} else {
			past = append(past, project(sh))
		}
	}
	return upcoming, past
}

func artistShowView(sh domain.Show) domain.ArtistShowView {
	v := domain.ArtistShowView{ArtistID: sh.ArtistID, StartTime: sh.StartTime}
	if sh.Artist != nil {
		v.ArtistName = sh.Artist.Name
		v.ArtistImageLink = sh.Artist.ImageLink
	}
	return v
}

func venueShowView(sh domain.Show) domain.VenueShowView {
	v := domain.VenueShowView{VenueID: sh.VenueID, StartTime: sh.StartTime}
	if sh.Venue != nil {
		v.VenueName = sh.Venue.Name
		v.VenueImageLink = sh.Venue.ImageLink
	}
	return v
}

func showListing(sh domain.Show) domain.ShowListing {
	l := domain.ShowListing{VenueID: sh.VenueID, ArtistID: sh.ArtistID, StartTime: sh.StartTime}
	if sh.Venue != nil {
		l.VenueName = sh.Venue.Name
	}
	if sh.Artist != nil {
		l.ArtistName = sh.Artist.Name
		l.ArtistImageLink = sh.Artist.ImageLink
	}
	return l
}

func shorts[E any, S any](items []E, short func(E) S) []S {
	out := make([]S, 0, len(items))
	for _, it := range items {
		out = append(out, short(it))
	}
	return out
}
