package web

import (
	"net/http"

	"github.com/dmitrijs2005/saferoom/internal/server/models"
)

type homeData struct {
	UserID string
	Email  string
	Status *models.SafetyStatus
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	userID := currentUser(r)
	email, err := s.users.Email(r.Context(), userID)
	if err != nil {
		s.internalError(w, r, "home", err)
		return
	}
	status, err := s.safety.Status(r.Context(), userID)
	if err != nil {
		s.internalError(w, r, "home", err)
		return
	}
	s.render(w, r, "home.html", "Home", homeData{UserID: userID, Email: email, Status: status})
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, "menu.html", "Menu", nil)
}

// handleUnderConstruction answers the menu entries that have no
// implementation yet.
func (s *Server) handleUnderConstruction(w http.ResponseWriter, r *http.Request) {
	s.notify(w, r, info("This feature is under construction."))
	redirect(w, r, "/menu")
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
