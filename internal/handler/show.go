package handler

import (
	"net/http"

	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/GoArmGo/fyyur/internal/render"
)

const (
	showListed     = "Show was successfully listed!"
	showListFailed = "An error occurred. Show could not be listed."
)

func (h *Handler) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.shows.ListShows(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.pages.Render(w, http.StatusOK, "pages/shows.html", render.Page{Data: shows})
}

func (h *Handler) CreateShowForm(w http.ResponseWriter, r *http.Request) {
	h.pages.Render(w, http.StatusOK, "forms/new_show.html", render.Page{Form: ShowForm{}})
}

// CreateShowSubmission: несуществующие venue_id или artist_id отклоняет
// внешний ключ, что приходит как ошибка хранилища.
func (h *Handler) CreateShowSubmission(w http.ResponseWriter, r *http.Request) {
	_, show, err := decodeShowForm(r)
	if err != nil {
		h.logger.Warn("invalid show form", "error", err)
		h.notifyAndGoHome(w, r, flashError, showListFailed)
		return
	}

	if err := h.shows.CreateShow(r.Context(), show); err != nil {
		if !domain.IsPersistence(err) {
			h.fail(w, r, err)
			return
		}
		h.logger.Error("failed to create show", "venue_id", show.VenueID, "artist_id", show.ArtistID, "error", err)
		h.notifyAndGoHome(w, r, flashError, showListFailed)
		return
	}

	h.notifyAndGoHome(w, r, flashSuccess, showListed)
}
