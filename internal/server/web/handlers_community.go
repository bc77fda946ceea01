package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"github.com/dmitrijs2005/saferoom/internal/server/metrics"
)

func (s *Server) handleCommunity(w http.ResponseWriter, r *http.Request) {
	posts, err := s.community.List(r.Context())
	if err != nil {
		s.internalError(w, r, "community", err)
		return
	}
	s.render(w, r, "community.html", "Community", posts)
}

func (s *Server) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	_, err := s.community.Create(r.Context(), currentUser(r), r.PostFormValue("title"), r.PostFormValue("content"))
	if errors.Is(err, common.ErrorValidation) {
		posts, err := s.community.List(r.Context())
		if err != nil {
			s.internalError(w, r, "community", err)
			return
		}
		s.render(w, r, "community.html", "Community", posts, danger("Please enter both a title and content."))
		return
	}
	if err != nil {
		s.internalError(w, r, "create post", err)
		return
	}
	if s.metrics != nil {
		s.metrics.Submitted(metrics.KindPost)
	}
	s.notify(w, r, success("Your post has been published."))
	redirect(w, r, "/community")
}
