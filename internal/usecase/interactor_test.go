package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/GoArmGo/fyyur/internal/messaging/payloads"
	"github.com/GoArmGo/fyyur/internal/testinfra"
)

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	store     *testinfra.Store
	publisher *testinfra.Publisher
	venues    *VenueInteractor
	artists   *ArtistInteractor
	shows     *ShowInteractor
}

func newFixture() *fixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := func() time.Time { return testNow }
	store := testinfra.NewStore()
	pub := &testinfra.Publisher{}
	return &fixture{
		store:     store,
		publisher: pub,
		venues:    NewVenueInteractor(store, store, pub, clock, logger),
		artists:   NewArtistInteractor(store, store, pub, clock, logger),
		shows:     NewShowInteractor(store, pub, clock, logger),
	}
}

func (f *fixture) seed(t *testing.T) (venue *domain.Venue, artist *domain.Artist) {
	t.Helper()
	ctx := context.Background()
	venue = &domain.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA"}
	if err := f.venues.CreateVenue(ctx, venue); err != nil {
		t.Fatalf("CreateVenue: %v", err)
	}
	artist = &domain.Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA", ImageLink: "https://example.com/gnp.jpg"}
	if err := f.artists.CreateArtist(ctx, artist); err != nil {
		t.Fatalf("CreateArtist: %v", err)
	}
	return venue, artist
}

func TestVenueDetailSplitsShows(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	venue, artist := f.seed(t)

	for _, start := range []time.Time{testNow.Add(-48 * time.Hour), testNow, testNow.Add(72 * time.Hour)} {
		if err := f.shows.CreateShow(ctx, &domain.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: start}); err != nil {
			t.Fatalf("CreateShow: %v", err)
		}
	}

	detail, err := f.venues.GetVenueDetail(ctx, venue.ID)
	if err != nil {
		t.Fatalf("GetVenueDetail: %v", err)
	}
	if detail.UpcomingShowsCount != 1 || detail.PastShowsCount != 2 {
		t.Errorf("counts = %d/%d, want 1/2", detail.UpcomingShowsCount, detail.PastShowsCount)
	}
	if detail.UpcomingShows[0].ArtistName != "Guns N Petals" {
		t.Errorf("upcoming artist = %q", detail.UpcomingShows[0].ArtistName)
	}

	artistDetail, err := f.artists.GetArtistDetail(ctx, artist.ID)
	if err != nil {
		t.Fatalf("GetArtistDetail: %v", err)
	}
	if artistDetail.UpcomingShowsCount != 1 || artistDetail.PastShowsCount != 2 {
		t.Errorf("artist counts = %d/%d, want 1/2", artistDetail.UpcomingShowsCount, artistDetail.PastShowsCount)
	}
	if artistDetail.PastShows[0].VenueName != "The Musical Hop" {
		t.Errorf("past venue = %q", artistDetail.PastShows[0].VenueName)
	}
}

func TestVenueDetailWithoutShows(t *testing.T) {
	f := newFixture()
	venue, _ := f.seed(t)

	detail, err := f.venues.GetVenueDetail(context.Background(), venue.ID)
	if err != nil {
		t.Fatalf("GetVenueDetail: %v", err)
	}
	if detail.UpcomingShowsCount != 0 || detail.PastShowsCount != 0 {
		t.Errorf("counts = %d/%d, want 0/0", detail.UpcomingShowsCount, detail.PastShowsCount)
	}
}

func TestGetDetailNotFound(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	if _, err := f.venues.GetVenueDetail(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("venue: err = %v, want ErrNotFound", err)
	}
	if _, err := f.artists.GetArtistDetail(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("artist: err = %v, want ErrNotFound", err)
	}
}

func TestSearch(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.seed(t)
	if err := f.venues.CreateVenue(ctx, &domain.Venue{Name: "Park Square Live Music & Coffee"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		term string
		want int
	}{
		{term: "", want: 2},
		{term: "hop", want: 1},
		{term: "MUSIC", want: 2},
		{term: "nothing like this", want: 0},
	}
	for _, tt := range tests {
		res, err := f.venues.SearchVenues(ctx, tt.term)
		if err != nil {
			t.Fatalf("SearchVenues(%q): %v", tt.term, err)
		}
		if res.Count != tt.want || len(res.Data) != tt.want {
			t.Errorf("SearchVenues(%q) count=%d len=%d, want %d", tt.term, res.Count, len(res.Data), tt.want)
		}
		if res.Data == nil {
			t.Errorf("SearchVenues(%q) data is nil", tt.term)
		}
	}

	res, err := f.artists.SearchArtists(ctx, "petal")
	if err != nil || res.Count != 1 {
		t.Errorf("SearchArtists = %+v, %v", res, err)
	}
}

func TestListVenueAreasCountsUpcoming(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	venue, artist := f.seed(t)
	if err := f.venues.CreateVenue(ctx, &domain.Venue{Name: "Park Square", City: "San Francisco", State: "CA"}); err != nil {
		t.Fatal(err)
	}
	if err := f.shows.CreateShow(ctx, &domain.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: testNow.Add(time.Hour)}); err != nil {
		t.Fatal(err)
	}

	areas, err := f.venues.ListVenueAreas(ctx)
	if err != nil {
		t.Fatalf("ListVenueAreas: %v", err)
	}
	if len(areas) != 1 || len(areas[0].Venues) != 2 {
		t.Fatalf("areas = %+v", areas)
	}
	if areas[0].Venues[0].NumUpcomingShows != 1 {
		t.Errorf("num_upcoming_shows = %d, want 1", areas[0].Venues[0].NumUpcomingShows)
	}
}

func TestCreatePublishesEvents(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	venue, artist := f.seed(t)
	if err := f.shows.CreateShow(ctx, &domain.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: testNow}); err != nil {
		t.Fatal(err)
	}

	events := f.publisher.Events()
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	wantKinds := []string{payloads.KindVenue, payloads.KindArtist, payloads.KindShow}
	for i, e := range events {
		if e.Kind != wantKinds[i] {
			t.Errorf("event %d kind = %q, want %q", i, e.Kind, wantKinds[i])
		}
		if e.ID == "" || !e.OccurredAt.Equal(testNow) {
			t.Errorf("event %d = %+v", i, e)
		}
	}
	if events[0].EntityID != venue.ID || events[0].Name != "The Musical Hop" {
		t.Errorf("venue event = %+v", events[0])
	}
}

func TestCreateSurvivesPublisherFailure(t *testing.T) {
	f := newFixture()
	f.publisher.Err = errors.New("broker down")

	v := &domain.Venue{Name: "The Musical Hop"}
	if err := f.venues.CreateVenue(context.Background(), v); err != nil {
		t.Fatalf("CreateVenue should ignore publish errors, got %v", err)
	}
	if f.store.VenueCount() != 1 {
		t.Errorf("venue not stored")
	}
}

func TestCreateFailures(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	err := f.venues.CreateVenue(ctx, &domain.Venue{Name: ""})
	if !domain.IsPersistence(err) {
		t.Errorf("empty name: err = %v, want persistence error", err)
	}
	if f.store.VenueCount() != 0 {
		t.Errorf("no row expected after failed insert")
	}

	err = f.shows.CreateShow(ctx, &domain.Show{VenueID: 99, ArtistID: 98, StartTime: testNow})
	if !domain.IsPersistence(err) {
		t.Errorf("missing FK: err = %v, want persistence error", err)
	}

	f.store.FailWrites(errors.New("connection reset"))
	err = f.artists.CreateArtist(ctx, &domain.Artist{Name: "Matt Quevedo"})
	var perr *domain.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *PersistenceError", err)
	}
	if len(f.publisher.Events()) != 0 {
		t.Errorf("no events expected for failed creates")
	}
}

func TestUpdateAndDeleteVenue(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	venue, artist := f.seed(t)
	if err := f.shows.CreateShow(ctx, &domain.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: testNow}); err != nil {
		t.Fatal(err)
	}

	upd := domain.VenueUpdate{Name: "The Musical Hop II", City: "Oakland", State: "CA", SeekingTalent: true}
	if err := f.venues.UpdateVenue(ctx, venue.ID, upd); err != nil {
		t.Fatalf("UpdateVenue: %v", err)
	}
	got, err := f.venues.GetVenue(ctx, venue.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "The Musical Hop II" || got.City != "Oakland" || !got.SeekingTalent {
		t.Errorf("updated venue = %+v", got)
	}

	if err := f.venues.UpdateVenue(ctx, 999, upd); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("update missing: err = %v", err)
	}

	if err := f.venues.DeleteVenue(ctx, venue.ID); err != nil {
		t.Fatalf("DeleteVenue: %v", err)
	}
	if f.store.ShowCount() != 0 {
		t.Errorf("shows should cascade with their venue")
	}
	if err := f.venues.DeleteVenue(ctx, venue.ID); err != nil {
		t.Errorf("deleting a missing venue should be a no-op, got %v", err)
	}
}

func TestListShowsProjection(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	venue, artist := f.seed(t)
	start := time.Date(2035, time.April, 1, 20, 0, 0, 0, time.UTC)
	if err := f.shows.CreateShow(ctx, &domain.Show{VenueID: venue.ID, ArtistID: artist.ID, StartTime: start}); err != nil {
		t.Fatal(err)
	}

	listings, err := f.shows.ListShows(ctx)
	if err != nil {
		t.Fatalf("ListShows: %v", err)
	}
	if len(listings) != 1 {
		t.Fatalf("got %d listings", len(listings))
	}
	l := listings[0]
	if l.VenueName != "The Musical Hop" || l.ArtistName != "Guns N Petals" || !l.StartTime.Equal(start) {
		t.Errorf("listing = %+v", l)
	}
	if l.ArtistImageLink != artist.ImageLink {
		t.Errorf("artist image = %q", l.ArtistImageLink)
	}
}
