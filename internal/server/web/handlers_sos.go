package web

import (
	"net/http"

	"github.com/dmitrijs2005/saferoom/internal/server/metrics"
)

func (s *Server) handleSOS(w http.ResponseWriter, r *http.Request) {
	history, err := s.sos.History(r.Context(), currentUser(r))
	if err != nil {
		s.internalError(w, r, "sos history", err)
		return
	}
	s.render(w, r, "emergency_sos.html", "Emergency SOS", history)
}

func (s *Server) handleSubmitSOS(w http.ResponseWriter, r *http.Request) {
	if _, err := s.sos.Submit(r.Context(), currentUser(r)); err != nil {
		s.internalError(w, r, "sos", err)
		return
	}
	if s.metrics != nil {
		s.metrics.Submitted(metrics.KindSOS)
	}
	s.notify(w, r, danger("SOS sent. Your emergency contacts have been notified."))
	redirect(w, r, "/emergency_sos")
}
