package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/fyyur/internal/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger проверяет доступность базы данных для /healthz
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterConfig — параметры маршрутизатора
type RouterConfig struct {
	RequestTimeout time.Duration
	// RateLimitPerMinute ограничивает POST-запросы форм с одного IP, 0 отключает лимит
	RateLimitPerMinute int
}

// NewRouter собирает все маршруты сайта
func NewRouter(h *Handler, cfg RouterConfig, db Pinger, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(Recoverer(h.pages, logger))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}

	limit := func(next http.Handler) http.Handler { return next }
	if cfg.RateLimitPerMinute > 0 {
		limit = httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		h.pages.NotFound(w)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		h.pages.Render(w, http.StatusMethodNotAllowed, "errors/404.html", render.Page{})
	})

	r.Get("/", h.Index)
	r.Get("/healthz", healthz(db, logger))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", h.ListVenues)
		r.With(limit).Post("/search", h.SearchVenues)
		r.Get("/create", h.CreateVenueForm)
		r.With(limit).Post("/create", h.CreateVenueSubmission)
		r.Get("/{id:[0-9]+}", h.ShowVenue)
		r.Delete("/{id:[0-9]+}", h.DeleteVenue)
		r.Get("/{id:[0-9]+}/edit", h.EditVenueForm)
		r.With(limit).Post("/{id:[0-9]+}/edit", h.EditVenueSubmission)
	})

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", h.ListArtists)
		r.With(limit).Post("/search", h.SearchArtists)
		r.Get("/create", h.CreateArtistForm)
		r.With(limit).Post("/create", h.CreateArtistSubmission)
		r.Get("/{id:[0-9]+}", h.ShowArtist)
		r.Get("/{id:[0-9]+}/edit", h.EditArtistForm)
		r.With(limit).Post("/{id:[0-9]+}/edit", h.EditArtistSubmission)
	})

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", h.ListShows)
		r.Get("/create", h.CreateShowForm)
		r.With(limit).Post("/create", h.CreateShowSubmission)
	})

	return r
}

func healthz(db Pinger, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				logger.Error("health check failed", "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("database unavailable\n"))
				return
			}
		}
		_, _ = w.Write([]byte("ok\n"))
	}
}
