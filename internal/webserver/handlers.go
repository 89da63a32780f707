package webserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shaharia-lab/reskin/internal/history"
	"github.com/shaharia-lab/reskin/internal/resource"
	"github.com/shaharia-lab/reskin/internal/theme"
)

// HistoryReader lists recorded theme changes
type HistoryReader interface {
	Recent(ctx context.Context, limit int) ([]history.Transition, error)
}

// ThemeHandler serves the registry over HTTP
type ThemeHandler struct {
	registry *theme.Registry
	history  HistoryReader
}

// NewThemeHandler creates a handler for registry. history may be nil.
func NewThemeHandler(registry *theme.Registry, history HistoryReader) *ThemeHandler {
	return &ThemeHandler{registry: registry, history: history}
}

func (h *ThemeHandler) describe(d *theme.Descriptor) ThemeResponse {
	return ThemeResponse{
		Name:    d.Name(),
		Suffix:  d.Suffix(),
		Source:  d.SourcePath(),
		Package: d.PackageName(),
		Current: h.registry.IsCurrentTheme(d),
		Default: h.registry.IsDefaultTheme(d),
	}
}

// ListThemesHTTPHandler handles GET /themes
func (h *ThemeHandler) ListThemesHTTPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		themes := h.registry.Themes()
		response := ListThemesResponse{
			Mode:   h.registry.Mode().String(),
			Themes: make([]ThemeResponse, 0, len(themes)),
			Pagination: Pagination{
				Page:    1,
				PerPage: len(themes),
				Total:   len(themes),
			},
		}
		for _, d := range themes {
			response.Themes = append(response.Themes, h.describe(d))
		}
		writeJSON(w, http.StatusOK, response)
	}
}

// CurrentThemeHTTPHandler handles GET /themes/current
func (h *ThemeHandler) CurrentThemeHTTPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		current := h.registry.CurrentTheme()
		if current == nil {
			writeError(w, http.StatusServiceUnavailable, theme.ErrNotInitialized)
			return
		}
		writeJSON(w, http.StatusOK, h.describe(current))
	}
}

// ActivateThemeHTTPHandler handles POST /themes/{name}/activate
func (h *ThemeHandler) ActivateThemeHTTPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		err := h.registry.Activate(r.Context(), name)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, h.describe(h.registry.CurrentTheme()))
		case errors.Is(err, theme.ErrUnknownTheme):
			writeError(w, http.StatusNotFound, err)
		case theme.IsLoadError(err):
			writeError(w, http.StatusUnprocessableEntity, err)
		case errors.Is(err, theme.ErrNotInitialized):
			writeError(w, http.StatusServiceUnavailable, err)
		default:
			writeError(w, http.StatusInternalServerError, err)
		}
	}
}

// GetResourceHTTPHandler handles GET /resources/{kind}/{name}. Drawables are
// returned as raw bytes when ?raw=true.
func (h *ThemeHandler) GetResourceHTTPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := resource.ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		name := chi.URLParam(r, "name")

		resolver := h.registry.CurrentResolver()
		base := h.registry.BaseProvider()
		if resolver == nil || base == nil {
			writeError(w, http.StatusServiceUnavailable, theme.ErrNotInitialized)
			return
		}

		id, err := theme.Ref(base, kind, name)
		if err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}

		response := ResourceResponse{
			Kind:  string(kind),
			Name:  name,
			Theme: resolver.Theme().Name(),
		}
		if target, err := resolver.Identifier(id); err == nil {
			response.ID = target.String()
		}

		switch kind {
		case resource.KindString:
			response.Value, err = resolver.String(id)
		case resource.KindColor:
			var c resource.Color
			c, err = resolver.Color(id)
			response.Value = c.Hex()
		case resource.KindDrawable:
			var d resource.Drawable
			d, err = resolver.Drawable(id)
			if err == nil && r.URL.Query().Get("raw") == "true" {
				w.Header().Set("Content-Type", d.MediaType)
				w.WriteHeader(http.StatusOK)
				w.Write(d.Data)
				return
			}
			response.Value = d.Name
			response.MediaType = d.MediaType
			response.Data = d.Data
		}
		if err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}

		writeJSON(w, http.StatusOK, response)
	}
}

// HistoryHTTPHandler handles GET /history?limit=n
func (h *ThemeHandler) HistoryHTTPHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h.history == nil {
			writeJSON(w, http.StatusOK, HistoryResponse{Transitions: []history.Transition{}})
			return
		}

		limit := history.DefaultLimit
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				writeError(w, http.StatusBadRequest, errors.New("limit must be a positive integer"))
				return
			}
			limit = n
		}

		transitions, err := h.history.Recent(r.Context(), limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		writeJSON(w, http.StatusOK, HistoryResponse{Transitions: transitions})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, ErrorResponse{Error: err.Error(), Time: time.Now().UTC()})
}
