package http

import (
	"net/http"

	"github.com/pwielgus/triage"
)

// statusFromCode maps application error codes onto HTTP status codes.
func statusFromCode(code string) int {
	switch code {
	case triage.ENOTFOUND:
		return http.StatusNotFound
	case triage.EINVALID:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

type errorData struct {
	Title   string
	Status  int
	Message string
}

// renderError writes an HTML error page for err. Internal error details
// are logged, never shown.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	code := triage.ErrorCode(err)
	status := statusFromCode(code)

	if code == triage.EINTERNAL {
		s.Logger.Error("internal error", "path", r.URL.Path, "err", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	data := errorData{
		Title:   s.Title,
		Status:  status,
		Message: triage.ErrorMessage(err),
	}
	if err := s.tmpl.ExecuteTemplate(w, "error.tmpl", data); err != nil {
		s.Logger.Error("render error page", "err", err)
	}
}
