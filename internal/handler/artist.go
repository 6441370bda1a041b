package handler

import (
	"fmt"
	"net/http"

	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/GoArmGo/fyyur/internal/render"
)

func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.artists.ListArtists(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.pages.Render(w, http.StatusOK, "pages/artists.html", render.Page{Data: artists})
}

func (h *Handler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.fail(w, r, err)
		return
	}
	term := r.PostForm.Get("search_term")

	result, err := h.artists.SearchArtists(r.Context(), term)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.pages.Render(w, http.StatusOK, "pages/search_artists.html", render.Page{SearchTerm: term, Data: result})
}

func (h *Handler) ShowArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	detail, err := h.artists.GetArtistDetail(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.pages.Render(w, http.StatusOK, "pages/show_artist.html", render.Page{Data: detail})
}

func (h *Handler) CreateArtistForm(w http.ResponseWriter, r *http.Request) {
	h.pages.Render(w, http.StatusOK, "forms/new_artist.html", render.Page{Form: ArtistForm{}})
}

func (h *Handler) CreateArtistSubmission(w http.ResponseWriter, r *http.Request) {
	form, err := decodeArtistForm(w, r)
	failure := fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name)
	if err != nil {
		h.logger.Warn("invalid artist form", "error", err)
		h.notifyAndGoHome(w, r, flashError, failure)
		return
	}

	artist := form.artist()
	imageKey := h.applyUpload(r, "artist", &artist.ImageLink)

	if err := h.artists.CreateArtist(r.Context(), artist); err != nil {
		h.discardUpload(r, imageKey)
		if !domain.IsPersistence(err) {
			h.fail(w, r, err)
			return
		}
		h.logger.Error("failed to create artist", "name", form.Name, "error", err)
		h.notifyAndGoHome(w, r, flashError, failure)
		return
	}

	h.notifyAndGoHome(w, r, flashSuccess, fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
}

func (h *Handler) EditArtistForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	artist, err := h.artists.GetArtist(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.pages.Render(w, http.StatusOK, "forms/edit_artist.html", render.Page{Form: artistFormFrom(artist), Data: id})
}

func (h *Handler) EditArtistSubmission(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	form, err := decodeArtistForm(w, r)
	if err != nil {
		h.logger.Warn("invalid artist form", "artist_id", id, "error", err)
		h.pages.NotFound(w)
		return
	}

	upd := form.update()
	imageKey := h.applyUpload(r, "artist", &upd.ImageLink)

	if err := h.artists.UpdateArtist(r.Context(), id, upd); err != nil {
		h.discardUpload(r, imageKey)
		if !domain.IsPersistence(err) {
			h.fail(w, r, err)
			return
		}
		h.logger.Error("failed to update artist", "artist_id", id, "error", err)
		h.notifyAndGoHome(w, r, flashError, fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/artists/%d", id), http.StatusSeeOther)
}
