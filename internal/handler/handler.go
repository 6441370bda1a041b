package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/GoArmGo/fyyur/internal/core/ports"
	"github.com/GoArmGo/fyyur/internal/domain"
	"github.com/GoArmGo/fyyur/internal/render"
	"github.com/GoArmGo/fyyur/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	sessionCookie = "fyyur_session"

	flashSuccess = "success"
	flashError   = "error"
)

// Handler — обработчик HTTP-запросов сайта: страницы, формы и уведомления.
type Handler struct {
	venues  usecase.VenueUseCase
	artists usecase.ArtistUseCase
	shows   usecase.ShowUseCase
	flashes ports.FlashStore
	files   ports.FileStorage
	pages   *render.Renderer
	logger  *slog.Logger
}

// Deps — зависимости Handler. Files может быть nil: загрузка изображений выключена.
type Deps struct {
	Venues  usecase.VenueUseCase
	Artists usecase.ArtistUseCase
	Shows   usecase.ShowUseCase
	Flashes ports.FlashStore
	Files   ports.FileStorage
	Pages   *render.Renderer
	Logger  *slog.Logger
}

// NewHandler создаёт новый экземпляр Handler.
func NewHandler(d Deps) *Handler {
	return &Handler{
		venues:  d.Venues,
		artists: d.Artists,
		shows:   d.Shows,
		flashes: d.Flashes,
		files:   d.Files,
		pages:   d.Pages,
		logger:  d.Logger,
	}
}

// Index — главная страница, показывает накопленные уведомления
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	page := render.Page{}
	if c, err := r.Cookie(sessionCookie); err == nil {
		flashes, err := h.flashes.Pop(r.Context(), c.Value)
		if err != nil {
			h.logger.Warn("failed to read flashes", "error", err)
		}
		page.Flashes = flashes
	}
	h.pages.Render(w, http.StatusOK, "pages/home.html", page)
}

// sessionID возвращает id сессии из cookie или выдает новый
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// notifyAndGoHome сохраняет уведомление и перенаправляет на главную
func (h *Handler) notifyAndGoHome(w http.ResponseWriter, r *http.Request, category, message string) {
	sid := h.sessionID(w, r)
	if err := h.flashes.Push(r.Context(), sid, ports.Flash{Category: category, Message: message}); err != nil {
		h.logger.Warn("failed to store flash", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// fail переводит ошибку use case в страницу ошибки
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		h.pages.NotFound(w)
		return
	}
	h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	h.pages.ServerError(w)
}

// pathID читает {id} из маршрута. Маршрут уже ограничивает его цифрами,
// переполнение int64 считается отсутствующей записью.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

// uploadImage загружает необязательный файл image_file и возвращает ключ
// объекта и его URL. Пустой ключ означает, что файла нет или хранилище не настроено.
func (h *Handler) uploadImage(r *http.Request, kind string) (key, url string, err error) {
	if h.files == nil || r.MultipartForm == nil {
		return "", "", nil
	}

	file, header, err := r.FormFile("image_file")
	if errors.Is(err, http.ErrMissingFile) {
		return "", "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("read image_file: %w", err)
	}
	defer file.Close()

	if header.Size == 0 {
		return "", "", nil
	}
	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", "", fmt.Errorf("image_file has unsupported content type %q", contentType)
	}

	key = fmt.Sprintf("%s/%s%s", kind, uuid.NewString(), strings.ToLower(filepath.Ext(header.Filename)))
	url, err = h.files.UploadFile(r.Context(), key, file, contentType)
	if err != nil {
		return "", "", err
	}
	return key, url, nil
}

// applyUpload подменяет image_link ссылкой на загруженный файл и
// возвращает ключ объекта. Ошибка загрузки не мешает сохранить объявление.
func (h *Handler) applyUpload(r *http.Request, kind string, imageLink *string) string {
	key, url, err := h.uploadImage(r, kind)
	if err != nil {
		h.logger.Warn("image upload failed", "kind", kind, "error", err)
		return ""
	}
	if key != "" {
		*imageLink = url
	}
	return key
}

// discardUpload удаляет файл, загруженный для записи, которую не удалось сохранить
func (h *Handler) discardUpload(r *http.Request, key string) {
	if key == "" {
		return
	}
	if err := h.files.DeleteFile(r.Context(), key); err != nil {
		h.logger.Warn("failed to delete orphaned image", "key", key, "error", err)
	}
}
