// Package webserver exposes the theme registry over HTTP
package webserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shaharia-lab/reskin/internal/logger"
)

// WebServer represents a simple HTTP server
type WebServer struct {
	APIPort string
	server  *http.Server
	router  *chi.Mux
	logger  logger.Logger
}

// NewWebServer creates a new WebServer instance with the specified API port
func NewWebServer(apiPort string, l logger.Logger) *WebServer {
	if l == nil {
		l = logger.Discard
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(l))
	r.Use(middleware.Recoverer)

	ws := &WebServer{
		APIPort: apiPort,
		router:  r,
		logger:  l,
	}
	ws.router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("pong"))
	})
	return ws
}

// Router returns the chi router to allow adding routes from outside
func (ws *WebServer) Router() *chi.Mux {
	return ws.router
}

// Mount registers the theme routes of h
func (ws *WebServer) Mount(h *ThemeHandler) {
	ws.router.Get("/themes", h.ListThemesHTTPHandler())
	ws.router.Get("/themes/current", h.CurrentThemeHTTPHandler())
	ws.router.Post("/themes/{name}/activate", h.ActivateThemeHTTPHandler())
	ws.router.Get("/resources/{kind}/{name}", h.GetResourceHTTPHandler())
	ws.router.Get("/history", h.HistoryHTTPHandler())
}

// Start listens on APIPort and serves in the background
func (ws *WebServer) Start() error {
	ln, err := net.Listen("tcp", ":"+ws.APIPort)
	if err != nil {
		return err
	}

	ws.server = &http.Server{
		Handler:           ws.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := ws.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ws.logger.Error("HTTP server stopped", map[string]interface{}{logger.ErrorKey: err})
		}
	}()

	ws.logger.Info("HTTP server listening", map[string]interface{}{"addr": ln.Addr().String()})
	return nil
}

// Stop gracefully shuts down the server with a timeout
func (ws *WebServer) Stop() error {
	if ws.server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return ws.server.Shutdown(ctx)
}

func requestLogger(l logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			l.Debug("HTTP request", map[string]interface{}{
				"method":     r.Method,
				"path":       r.URL.Path,
				"status":     ww.Status(),
				"duration":   time.Since(start),
				"request_id": middleware.GetReqID(r.Context()),
			})
		})
	}
}
