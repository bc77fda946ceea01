package web

import (
	"net/http"

	"github.com/dmitrijs2005/saferoom/internal/server/view"
)

// render drains the queued notices, appends extra and writes the page.
func (s *Server) render(w http.ResponseWriter, r *http.Request, name, title string, data any, extra ...view.Notice) {
	page := view.Page{
		Title:   title,
		UserID:  currentUser(r),
		Notices: append(s.drain(w, r), extra...),
		Data:    data,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.renderer.RenderTemplate(w, name, page); err != nil {
		s.internalError(w, r, "rendering "+name, err)
	}
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.logger.Error(r.Context(), msg, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}
