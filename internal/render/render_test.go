package render

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/GoArmGo/fyyur/internal/core/ports"
	"github.com/GoArmGo/fyyur/internal/domain"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestRenderPages(t *testing.T) {
	r := newTestRenderer(t)
	start := time.Date(2035, time.April, 15, 20, 0, 0, 0, time.UTC)

	venue := domain.Venue{ID: 1, Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: []string{"Jazz", "Folk"}}
	artist := domain.Artist{ID: 4, Name: "Guns N Petals", City: "San Francisco", State: "CA", SeekingVenue: true}

	tests := []struct {
		name     string
		template string
		page     Page
		contains []string
	}{
		{
			name:     "home with flashes",
			template: "pages/home.html",
			page:     Page{Flashes: []ports.Flash{{Category: "info", Message: "Venue The Musical Hop was successfully listed!"}}},
			contains: []string{"Venue The Musical Hop was successfully listed!"},
		},
		{
			name:     "venues grouped",
			template: "pages/venues.html",
			page: Page{Data: []domain.VenueArea{{
				City: "San Francisco", State: "CA",
				Venues: []domain.VenueAreaItem{{ID: 1, Name: "The Musical Hop", NumUpcomingShows: 2}},
			}}},
			contains: []string{"San Francisco, CA", "The Musical Hop", "2 upcoming shows"},
		},
		{
			name:     "venue search",
			template: "pages/search_venues.html",
			page:     Page{SearchTerm: "hop", Data: domain.NewSearchResult([]domain.VenueShort{venue.Short()})},
			contains: []string{`search results for "hop": 1`, "/venues/1"},
		},
		{
			name:     "venue detail",
			template: "pages/show_venue.html",
			page: Page{Data: domain.VenueDetail{
				Venue:              venue,
				UpcomingShows:      []domain.ArtistShowView{{ArtistID: 4, ArtistName: "Guns N Petals", StartTime: start}},
				UpcomingShowsCount: 1,
			}},
			contains: []string{"1 Upcoming Show", "0 Past Shows", "Sunday April, 15, 2035 at 8:00PM", "Not currently seeking talent"},
		},
		{
			name:     "artist detail",
			template: "pages/show_artist.html",
			page:     Page{Data: domain.ArtistDetail{Artist: artist}},
			contains: []string{"Guns N Petals", "Currently seeking performance venues"},
		},
		{
			name:     "artists",
			template: "pages/artists.html",
			page:     Page{Data: []domain.ArtistShort{artist.Short()}},
			contains: []string{"/artists/4"},
		},
		{
			name:     "shows",
			template: "pages/shows.html",
			page: Page{Data: []domain.ShowListing{{
				VenueID: 1, VenueName: "The Musical Hop", ArtistID: 4, ArtistName: "Guns N Petals", StartTime: start,
			}}},
			contains: []string{"The Musical Hop", "Guns N Petals", "Sunday April, 15, 2035 at 8:00PM"},
		},
		{
			name:     "edit venue form",
			template: "forms/edit_venue.html",
			page:     Page{Form: venue, Data: venue.ID},
			contains: []string{`action="/venues/1/edit"`, `value="Jazz" selected`, `value="CA" selected`},
		},
		{
			name:     "new artist form",
			template: "forms/new_artist.html",
			page:     Page{Form: domain.Artist{}},
			contains: []string{`action="/artists/create"`, `name="seeking_venue"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.Render(rec, http.StatusOK, tt.template, tt.page)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
			}
			body := rec.Body.String()
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
		})
	}
}

func TestRenderErrorPages(t *testing.T) {
	r := newTestRenderer(t)

	rec := httptest.NewRecorder()
	r.NotFound(rec)
	if rec.Code != http.StatusNotFound || !strings.Contains(rec.Body.String(), "404") {
		t.Errorf("NotFound: status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServerError(rec)
	if rec.Code != http.StatusInternalServerError || !strings.Contains(rec.Body.String(), "500") {
		t.Errorf("ServerError: status %d", rec.Code)
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := newTestRenderer(t)
	rec := httptest.NewRecorder()
	r.Render(rec, http.StatusOK, "pages/missing.html", Page{})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
