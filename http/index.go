package http

import (
	"bytes"
	"html/template"
	"net/http"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/pwielgus/triage"
)

type appOption struct {
	Value    string
	Label    string
	Selected bool
}

type sectionData struct {
	Name       string
	Slug       string
	ErrorCount int
	Body       template.HTML
}

type indexData struct {
	Title       string
	Msg         string
	LastUpdated string
	Options     []appOption
	Sections    []sectionData
	Query       string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sections, modTime, err := s.Sections.Sections(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	q := r.URL.Query()
	selected := q.Get("app")
	term := q.Get("q")

	views := triage.Apply(sections, selected, term)

	data := indexData{
		Title:       s.Title,
		Msg:         q.Get("msg"),
		LastUpdated: modTime.Format("2006-01-02 15:04:05"),
		Query:       term,
	}

	// Each distinct application name appears once in the dropdown even if
	// the guide repeats it; options carry the name so a repeated name
	// selects every section bearing it.
	data.Options = append(data.Options, appOption{
		Value:    triage.AllApplications,
		Label:    "All applications",
		Selected: selected == "" || selected == triage.AllApplications,
	})
	seen := make(map[string]bool)
	for _, sec := range sections {
		if seen[sec.Name] {
			continue
		}
		seen[sec.Name] = true
		data.Options = append(data.Options, appOption{
			Value:    sec.Name,
			Label:    sec.Name,
			Selected: selected == sec.Name,
		})
	}

	for _, v := range views {
		if !v.Visible {
			continue
		}
		data.Sections = append(data.Sections, sectionData{
			Name:       v.Name,
			Slug:       v.Slug,
			ErrorCount: v.ErrorCount,
			Body:       renderBlocks(v.Blocks),
		})
	}

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.tmpl", data); err != nil {
		s.renderError(w, r, err)
		return
	}

	etag := `"` + strconv.FormatUint(xxhash.Sum64(buf.Bytes()), 16) + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Last-Modified", modTime.UTC().Format(http.TimeFormat))
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
