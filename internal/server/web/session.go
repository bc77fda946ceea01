package web

import (
	"context"
	"net/http"
	"time"
)

const sessionCookie = "session"

type ctxKey string

const userIDKey ctxKey = "userID"

type guard int

const (
	guardSilent guard = iota
	guardWarn
)

const loginRequired = "Please log in to access this page."

// identify returns the identity behind the session cookie, or "" when the
// cookie is missing, expired, tampered with or names a deleted user. A
// rejected cookie is cleared.
func (s *Server) identify(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil || c.Value == "" {
		return ""
	}

	userID, err := s.users.Authenticate(r.Context(), c.Value)
	if err != nil {
		s.logger.Debug(r.Context(), "session rejected", "error", err)
		s.clearSession(w)
		return ""
	}
	return userID
}

func (s *Server) setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.sessionValidity / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// requireSession redirects visitors without a session to /login, adding a
// warning notice when g is guardWarn.
func (s *Server) requireSession(g guard, next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := s.identify(w, r)
		if userID == "" {
			if g == guardWarn {
				s.notify(w, r, warning(loginRequired))
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

func currentUser(r *http.Request) string {
	userID, _ := r.Context().Value(userIDKey).(string)
	return userID
}
