package web

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handler builds the router. Guards are attached per route: "warn" pages
// tell the visitor why they were sent to the login form, the rest redirect
// silently.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.accessLog)

	get := []string{http.MethodGet, http.MethodHead}

	r.HandleFunc("/", s.handleIndex).Methods(get...)
	r.HandleFunc("/login", s.handleLogin).Methods(http.MethodGet, http.MethodHead, http.MethodPost)
	r.HandleFunc("/register", s.handleRegister).Methods(http.MethodGet, http.MethodHead, http.MethodPost)
	r.HandleFunc("/logout", s.handleLogout).Methods(get...)
	r.HandleFunc("/healthz", s.handleHealth).Methods(get...)
	if s.metrics != nil {
		r.Handle("/metrics", s.metrics.Handler()).Methods(get...)
	}

	r.Handle("/home", s.requireSession(guardWarn, s.handleHome)).Methods(get...)
	r.Handle("/menu", s.requireSession(guardWarn, s.handleMenu)).Methods(get...)

	r.Handle("/safety_check", s.requireSession(guardWarn, s.handleSafetyCheck)).Methods(get...)
	r.Handle("/submit_request", s.requireSession(guardSilent, s.handleSubmitRequest)).Methods(http.MethodPost)
	r.Handle("/submit_safety_check", s.requireSession(guardSilent, s.handleSubmitSafetyCheck)).Methods(http.MethodPost)

	r.Handle("/chat", s.requireSession(guardSilent, s.handleChatGroups)).Methods(get...)
	r.Handle("/chat/{groupId}", s.requireSession(guardSilent, s.handleChatRoom)).Methods(get...)
	r.Handle("/chat/{groupId}", s.requireSession(guardSilent, s.handleChatPost)).Methods(http.MethodPost)

	r.Handle("/community", s.requireSession(guardWarn, s.handleCommunity)).Methods(get...)
	r.Handle("/community", s.requireSession(guardSilent, s.handleCreatePost)).Methods(http.MethodPost)

	r.Handle("/emergency_sos", s.requireSession(guardWarn, s.handleSOS)).Methods(get...)
	r.Handle("/submit_sos", s.requireSession(guardSilent, s.handleSubmitSOS)).Methods(http.MethodPost)

	for _, path := range []string{"/group_management", "/qr_code", "/settings"} {
		r.Handle(path, s.requireSession(guardWarn, s.handleUnderConstruction)).Methods(get...)
	}

	return r
}
