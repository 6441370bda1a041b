package handler

import (
	"fmt"
	"net/http"

	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/GoArmGo/fyyur/internal/render"
)

// ListVenues — площадки, сгруппированные по городу и штату
func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := h.venues.ListVenueAreas(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.pages.Render(w, http.StatusOK, "pages/venues.html", render.Page{Data: areas})
}

func (h *Handler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, err)
		return
	}
	term := r.PostForm.Get("search_term")

	result, err := h.venues.SearchVenues(r.Context(), term)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.pages.Render(w, http.StatusOK, "pages/search_venues.html", render.Page{SearchTerm: term, Data: result})
}

func (h *Handler) ShowVenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	detail, err := h.venues.GetVenueDetail(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.pages.Render(w, http.StatusOK, "pages/show_venue.html", render.Page{Data: detail})
}

func (h *Handler) CreateVenueForm(w http.ResponseWriter, r *http.Request) {
	h.pages.Render(w, http.StatusOK, "forms/new_venue.html", render.Page{Form: VenueForm{}})
}

// CreateVenueSubmission сохраняет площадку. Любой исход, кроме неожиданной
// ошибки, заканчивается уведомлением и редиректом на главную.
func (h *Handler) CreateVenueSubmission(w http.ResponseWriter, r *http.Request) {
	form, err := decodeVenueForm(w, r)
	failure := fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name)
	if err != nil {
		h.logger.Warn("invalid venue form", "error", err)
		h.notifyAndGoHome(w, r, flashError, failure)
		return
	}

	venue := form.venue()
	imageKey := h.applyUpload(r, "venue", &venue.ImageLink)

	if err := h.venues.CreateVenue(r.Context(), venue); err != nil {
		h.discardUpload(r, imageKey)
		if !domain.IsPersistence(err) {
			h.fail(w, r, err)
			return
		}
		h.logger.Error("failed to create venue", "name", form.Name, "error", err)
		h.notifyAndGoHome(w, r, flashError, failure)
		return
	}

	h.notifyAndGoHome(w, r, flashSuccess, fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
}

// DeleteVenue всегда отвечает 204: сбой хранилища только логируется,
// транзакция к этому моменту уже откатана.
func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err := h.venues.DeleteVenue(r.Context(), id); err != nil {
		if !domain.IsPersistence(err) {
			h.fail(w, r, err)
			return
		}
		h.logger.Error("failed to delete venue", "venue_id", id, "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) EditVenueForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	venue, err := h.venues.GetVenue(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.pages.Render(w, http.StatusOK, "forms/edit_venue.html", render.Page{Form: venueFormFrom(venue), Data: id})
}

// EditVenueSubmission отвечает 404, если площадки нет или форма невалидна.
// Сбой записи заканчивается уведомлением и редиректом на главную.
func (h *Handler) EditVenueSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	form, err := decodeVenueForm(w, r)
	if err != nil {
		h.logger.Warn("invalid venue form", "venue_id", id, "error", err)
		h.pages.NotFound(w)
		return
	}

	upd := form.update()
	imageKey := h.applyUpload(r, "venue", &upd.ImageLink)

	if err := h.venues.UpdateVenue(r.Context(), id, upd); err != nil {
		h.discardUpload(r, imageKey)
		if !domain.IsPersistence(err) {
			h.fail(w, r, err)
			return
		}
		h.logger.Error("failed to update venue", "venue_id", id, "error", err)
		h.notifyAndGoHome(w, r, flashError, fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/venues/%d", id), http.StatusSeeOther)
}
