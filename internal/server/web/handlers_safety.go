package web

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/saferoom/internal/server/metrics"
)

func (s *Server) handleSafetyCheck(w http.ResponseWriter, r *http.Request) {
	overview, err := s.safety.Overview(r.Context())
	if err != nil {
		s.internalError(w, r, "safety overview", err)
		return
	}
	s.render(w, r, "safety_check.html", "Safety check", overview)
}

func (s *Server) handleSubmitRequest(w http.ResponseWriter, r *http.Request) {
	_, err := s.safety.SubmitRequest(r.Context(), currentUser(r),
		r.PostFormValue("category"), r.PostFormValue("priority"), r.PostFormValue("details"))
	if err != nil {
		s.internalError(w, r, "submit request", err)
		return
	}
	if s.metrics != nil {
		s.metrics.Submitted(metrics.KindSupportRequest)
	}
	s.notify(w, r, success("Your support request has been sent."))
	redirect(w, r, "/safety_check")
}

func (s *Server) handleSubmitSafetyCheck(w http.ResponseWriter, r *http.Request) {
	status, err := s.safety.CheckIn(r.Context(), currentUser(r))
	if err != nil {
		s.internalError(w, r, "safety check", err)
		return
	}
	if s.metrics != nil {
		s.metrics.Submitted(metrics.KindSafetyCheck)
	}
	s.notify(w, r, success(fmt.Sprintf("%s has been reported as safe.", status.UserID)))
	redirect(w, r, "/safety_check")
}
