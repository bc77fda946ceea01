package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"github.com/dmitrijs2005/saferoom/internal/server/metrics"
	"github.com/gorilla/mux"
)

const groupNotFound = "Chat group not found."

func (s *Server) handleChatGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := s.chat.Groups(r.Context())
	if err != nil {
		s.internalError(w, r, "chat groups", err)
		return
	}
	s.render(w, r, "chat_groups.html", "Chat", groups)
}

func (s *Server) handleChatRoom(w http.ResponseWriter, r *http.Request) {
	room, err := s.chat.Room(r.Context(), mux.Vars(r)["groupId"])
	if errors.Is(err, common.ErrorNotFound) {
		s.notify(w, r, danger(groupNotFound))
		redirect(w, r, "/chat")
		return
	}
	if err != nil {
		s.internalError(w, r, "chat room", err)
		return
	}
	s.render(w, r, "chat_room.html", room.Group.Name, room)
}

func (s *Server) handleChatPost(w http.ResponseWriter, r *http.Request) {
	groupID := mux.Vars(r)["groupId"]

	msg, err := s.chat.Post(r.Context(), groupID, currentUser(r), r.PostFormValue("message_text"))
	if errors.Is(err, common.ErrorNotFound) {
		s.notify(w, r, danger(groupNotFound))
		redirect(w, r, "/chat")
		return
	}
	if err != nil {
		s.internalError(w, r, "chat post", err)
		return
	}
	if msg != nil && s.metrics != nil {
		s.metrics.Submitted(metrics.KindChatMessage)
	}
	redirect(w, r, "/chat/"+url.PathEscape(groupID))
}
