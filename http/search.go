package http

import (
	"encoding/json"
	"net/http"

	"github.com/pwielgus/triage"
)

type searchResponse struct {
	Results []triage.Suggestion `json:"results"`
	Count   int                 `json:"count"`
	Query   string              `json:"query"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("q")

	sections, _, err := s.Sections.Sections(r.Context())
	if err != nil {
		code := triage.ErrorCode(err)
		if code == triage.EINTERNAL {
			s.Logger.Error("internal error", "path", r.URL.Path, "err", err)
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(statusFromCode(code))
		_ = json.NewEncoder(w).Encode(map[string]string{"error": triage.ErrorMessage(err)})
		return
	}

	results := triage.Suggest(sections, term)
	if results == nil {
		results = []triage.Suggestion{}
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(searchResponse{
		Results: results,
		Count:   len(results),
		Query:   term,
	})
}
