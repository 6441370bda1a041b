package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/GoArmGo/fyyur/internal/render"
	"github.com/GoArmGo/fyyur/internal/validation"
)

const (
	maxUploadSize = 8 << 20
	// флажок чекбокса seeking_*: любое другое значение означает false
	checkboxOn = "y"
)

// VenueForm — поля формы площадки
type VenueForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"max=120"`
	State              string   `form:"state" validate:"max=120"`
	Address            string   `form:"address" validate:"max=120"`
	Phone              string   `form:"phone" validate:"max=120"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" validate:"max=20,dive,required,max=120"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `form:"website" validate:"omitempty,url,max=120"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

// ArtistForm — поля формы исполнителя
type ArtistForm struct {
	Name               string   `form:"name" validate:"required,max=120"`
	City               string   `form:"city" validate:"max=120"`
	State              string   `form:"state" validate:"max=120"`
	Phone              string   `form:"phone" validate:"max=120"`
	ImageLink          string   `form:"image_link" validate:"omitempty,url,max=500"`
	Genres             []string `form:"genres" validate:"max=20,dive,required,max=120"`
	FacebookLink       string   `form:"facebook_link" validate:"omitempty,url,max=120"`
	Website            string   `form:"website" validate:"omitempty,url,max=120"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description" validate:"max=500"`
}

// ShowForm хранит значения строками, чтобы вернуть их в форму как есть
type ShowForm struct {
	ArtistID  string `form:"artist_id" validate:"required,number"`
	VenueID   string `form:"venue_id" validate:"required,number"`
	StartTime string `form:"start_time" validate:"required"`
}

// parseForm разбирает и urlencoded, и multipart тело запроса
func parseForm(w http.ResponseWriter, r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+(1<<20))
		return r.ParseMultipartForm(maxUploadSize)
	}
	return r.ParseForm()
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostForm.Get(key))
}

func formValues(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.PostForm[key] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// decodeVenueForm разбирает и валидирует форму площадки.
// Ошибка валидации имеет тип *validation.RequestValidationError.
func decodeVenueForm(w http.ResponseWriter, r *http.Request) (VenueForm, error) {
	if err := parseForm(w, r); err != nil {
		return VenueForm{}, fmt.Errorf("parse venue form: %w", err)
	}
	form := VenueForm{
		Name:               formValue(r, "name"),
		City:               formValue(r, "city"),
		State:              formValue(r, "state"),
		Address:            formValue(r, "address"),
		Phone:              formValue(r, "phone"),
		ImageLink:          formValue(r, "image_link"),
		Genres:             formValues(r, "genres"),
		FacebookLink:       formValue(r, "facebook_link"),
		Website:            formValue(r, "website"),
		SeekingTalent:      formValue(r, "seeking_talent") == checkboxOn,
		SeekingDescription: formValue(r, "seeking_description"),
	}
	if verr := validation.ValidateStruct(form); verr != nil {
		return form, verr
	}
	return form, nil
}

func decodeArtistForm(w http.ResponseWriter, r *http.Request) (ArtistForm, error) {
	if err := parseForm(w, r); err != nil {
		return ArtistForm{}, fmt.Errorf("parse artist form: %w", err)
	}
	form := ArtistForm{
		Name:               formValue(r, "name"),
		City:               formValue(r, "city"),
		State:              formValue(r, "state"),
		Phone:              formValue(r, "phone"),
		ImageLink:          formValue(r, "image_link"),
		Genres:             formValues(r, "genres"),
		FacebookLink:       formValue(r, "facebook_link"),
		Website:            formValue(r, "website"),
		SeekingVenue:       formValue(r, "seeking_venue") == checkboxOn,
		SeekingDescription: formValue(r, "seeking_description"),
	}
	if verr := validation.ValidateStruct(form); verr != nil {
		return form, verr
	}
	return form, nil
}

var errInvalidShow = errors.New("invalid show")

func decodeShowForm(r *http.Request) (ShowForm, *domain.Show, error) {
	if err := r.ParseForm(); err != nil {
		return ShowForm{}, nil, fmt.Errorf("parse show form: %w", err)
	}
	form := ShowForm{
		ArtistID:  formValue(r, "artist_id"),
		VenueID:   formValue(r, "venue_id"),
		StartTime: formValue(r, "start_time"),
	}
	if verr := validation.ValidateStruct(form); verr != nil {
		return form, nil, verr
	}

	artistID, err := strconv.ParseInt(form.ArtistID, 10, 64)
	if err != nil || artistID <= 0 {
		return form, nil, fmt.Errorf("%w: artist_id %q", errInvalidShow, form.ArtistID)
	}
	venueID, err := strconv.ParseInt(form.VenueID, 10, 64)
	if err != nil || venueID <= 0 {
		return form, nil, fmt.Errorf("%w: venue_id %q", errInvalidShow, form.VenueID)
	}
	start, err := render.ParseDateTime(form.StartTime)
	if err != nil {
		return form, nil, fmt.Errorf("%w: %w", errInvalidShow, err)
	}

	return form, &domain.Show{ArtistID: artistID, VenueID: venueID, StartTime: start.UTC()}, nil
}

func (f VenueForm) venue() *domain.Venue {
	return &domain.Venue{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		Genres:             f.Genres,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

func (f VenueForm) update() domain.VenueUpdate {
	return domain.VenueUpdate{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Website:            f.Website,
		FacebookLink:       f.FacebookLink,
		ImageLink:          f.ImageLink,
		Genres:             f.Genres,
		SeekingTalent:      f.SeekingTalent,
		SeekingDescription: f.SeekingDescription,
	}
}

func venueFormFrom(v *domain.Venue) VenueForm {
	return VenueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		ImageLink:          v.ImageLink,
		Genres:             v.Genres,
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

func (f ArtistForm) artist() *domain.Artist {
	return &domain.Artist{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Website:            f.Website,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Genres:             f.Genres,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

func (f ArtistForm) update() domain.ArtistUpdate {
	return domain.ArtistUpdate{
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Website:            f.Website,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		Genres:             f.Genres,
		SeekingVenue:       f.SeekingVenue,
		SeekingDescription: f.SeekingDescription,
	}
}

func artistFormFrom(a *domain.Artist) ArtistForm {
	return ArtistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		ImageLink:          a.ImageLink,
		Genres:             a.Genres,
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}
