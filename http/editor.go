package http

import (
	"net/http"
	"net/url"

	"github.com/pwielgus/triage"
)

type editorData struct {
	Title   string
	Content string
}

func (s *Server) handleEditorPage(w http.ResponseWriter, r *http.Request) {
	content := ""
	guide, err := s.Store.Read(r.Context())
	switch {
	case err == nil:
		content = guide.Content
	case triage.ErrorCode(err) == triage.ENOTFOUND:
		// A fresh install has no guide yet; the editor is how one gets
		// created.
	default:
		s.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := editorData{Title: s.Title, Content: content}
	if err := s.tmpl.ExecuteTemplate(w, "editor.tmpl", data); err != nil {
		s.Logger.Error("render editor page", "err", err)
	}
}

func (s *Server) handleEditorSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.renderError(w, r, triage.Errorf(triage.EINVALID, "invalid form submission"))
		return
	}

	var msg string
	if r.PostFormValue("action") == "save_full" {
		if err := s.Store.Overwrite(r.Context(), r.PostFormValue("fullContent")); err != nil {
			s.renderError(w, r, err)
			return
		}
		msg = "Content saved successfully"
	} else {
		name := r.PostFormValue("appName")
		steps := r.PostFormValue("appSteps")
		err := s.Store.Append(r.Context(), name, steps)
		switch {
		case err == nil:
			msg = "Added: " + name
		case triage.ErrorCode(err) == triage.EINVALID:
			msg = triage.ErrorMessage(err)
		default:
			s.renderError(w, r, err)
			return
		}
	}

	http.Redirect(w, r, "/?msg="+url.QueryEscape(msg), http.StatusSeeOther)
}
