package web

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/saferoom/internal/common"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.identify(w, r) != "" {
		redirect(w, r, "/home")
		return
	}
	redirect(w, r, "/login")
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.identify(w, r) != "" {
		redirect(w, r, "/home")
		return
	}
	if r.Method != http.MethodPost {
		s.render(w, r, "login.html", "Log in", nil)
		return
	}

	token, err := s.users.Login(r.Context(), r.PostFormValue("user_id"), r.PostFormValue("password"))
	if err != nil {
		if s.metrics != nil {
			s.metrics.Login(false)
		}
		if errors.Is(err, common.ErrorUnauthorized) {
			s.render(w, r, "login.html", "Log in", nil, danger("Invalid user ID or password."))
			return
		}
		s.internalError(w, r, "login", err)
		return
	}

	if s.metrics != nil {
		s.metrics.Login(true)
	}
	s.setSession(w, token)
	s.notify(w, r, success("Logged in successfully."))
	redirect(w, r, "/home")
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if s.identify(w, r) != "" {
		redirect(w, r, "/home")
		return
	}
	if r.Method != http.MethodPost {
		s.render(w, r, "register.html", "Register", nil)
		return
	}

	_, err := s.users.Register(r.Context(),
		r.PostFormValue("user_id"), r.PostFormValue("password"), r.PostFormValue("email"))
	switch {
	case errors.Is(err, common.ErrorValidation):
		s.render(w, r, "register.html", "Register", nil, danger("Please fill in all fields."))
	case errors.Is(err, common.ErrorAlreadyExists):
		s.render(w, r, "register.html", "Register", nil, danger("This user ID is already taken."))
	case err != nil:
		s.internalError(w, r, "register", err)
	default:
		s.notify(w, r, success("Registration complete. Please log in."))
		redirect(w, r, "/login")
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.clearSession(w)
	s.notify(w, r, info("You have been logged out."))
	redirect(w, r, "/login")
}
