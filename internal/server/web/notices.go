package web

import (
	"encoding/gob"
	"net/http"

	"github.com/dmitrijs2005/saferoom/internal/server/view"
	"github.com/gorilla/sessions"
)

const noticeSession = "notices"

func init() {
	gob.Register(view.Notice{})
}

func newNoticeStore(secretKey string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secretKey))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

func success(msg string) view.Notice { return view.Notice{Category: view.Success, Message: msg} }
func danger(msg string) view.Notice  { return view.Notice{Category: view.Danger, Message: msg} }
func warning(msg string) view.Notice { return view.Notice{Category: view.Warning, Message: msg} }
func info(msg string) view.Notice    { return view.Notice{Category: view.Info, Message: msg} }

// notify queues n for the next rendered page. It must run before the
// response header is written.
func (s *Server) notify(w http.ResponseWriter, r *http.Request, n view.Notice) {
	// A tampered notice cookie yields a fresh session alongside the error.
	sess, err := s.notices.Get(r, noticeSession)
	if err != nil {
		s.logger.Debug(r.Context(), "notice cookie rejected", "error", err)
	}
	sess.AddFlash(n)
	if err := sess.Save(r, w); err != nil {
		s.logger.Error(r.Context(), "saving notice", "error", err)
	}
}

// drain removes and returns every queued notice.
func (s *Server) drain(w http.ResponseWriter, r *http.Request) []view.Notice {
	sess, err := s.notices.Get(r, noticeSession)
	if err != nil {
		s.logger.Debug(r.Context(), "notice cookie rejected", "error", err)
	}

	flashes := sess.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		s.logger.Error(r.Context(), "clearing notices", "error", err)
	}

	notices := make([]view.Notice, 0, len(flashes))
	for _, f := range flashes {
		if n, ok := f.(view.Notice); ok {
			notices = append(notices, n)
		}
	}
	return notices
}
