// Package http serves the rendered guide, the editor views, and the
// search suggestion API over HTTP.
package http

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/pwielgus/triage"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

//go:embed static/style.css
var styleCSS []byte

// ShutdownTimeout bounds how long in-flight requests may run during a
// graceful shutdown.
const ShutdownTimeout = 5 * time.Second

// Server is the HTTP server for the guide.
type Server struct {
	ln     net.Listener
	server *http.Server
	router *http.ServeMux
	tmpl   *template.Template

	// Listen address, e.g. ":8000". Set before calling Open().
	Addr string

	// Page title shown in the header.
	Title string

	// Store persists editor submissions.
	Store triage.GuideStore

	// Sections provides the parsed, cached guide.
	Sections triage.SectionSource

	Logger *slog.Logger
}

// NewServer creates a new Server with routes registered.
func NewServer() *Server {
	s := &Server{
		router: http.NewServeMux(),
		tmpl:   template.Must(template.ParseFS(templatesFS, "templates/*.tmpl")),
		Logger: slog.Default(),
	}

	s.router.HandleFunc("GET /{$}", s.handleIndex)
	s.router.HandleFunc("GET /style.css", s.handleCSS)
	s.router.HandleFunc("GET /editor", s.handleEditorPage)
	s.router.HandleFunc("POST /editor", s.handleEditorSubmit)
	s.router.HandleFunc("GET /api/search", s.handleSearch)

	s.server = &http.Server{Handler: s.logRequests(s.router)}
	return s
}

// ServeHTTP makes the server usable directly as an http.Handler in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.logRequests(s.router).ServeHTTP(w, r)
}

// Open begins listening on s.Addr.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln
	return nil
}

// URL returns the base URL the server is listening on. Useful when the
// address was chosen by the OS (port 0).
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Serve handles requests until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() { errCh <- s.server.Serve(s.ln) }()

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.server.Shutdown(shutCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Close stops the server immediately.
func (s *Server) Close() error {
	return s.server.Close()
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = w.Write(styleCSS)
}

// statusWriter captures the response status for request logging.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		s.Logger.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(begin),
		)
	})
}
