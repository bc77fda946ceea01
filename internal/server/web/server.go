// Package web serves the HTML interface: routing, sessions, notices and
// one handler per page or form.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/saferoom/internal/logging"
	"github.com/dmitrijs2005/saferoom/internal/server/metrics"
	"github.com/dmitrijs2005/saferoom/internal/server/models"
	"github.com/dmitrijs2005/saferoom/internal/server/services"
	"github.com/dmitrijs2005/saferoom/internal/server/view"
	"github.com/gorilla/sessions"
)

type userSvc interface {
	Register(ctx context.Context, userID, password, email string) (*models.User, error)
	Login(ctx context.Context, userID, password string) (string, error)
	Authenticate(ctx context.Context, token string) (string, error)
	Email(ctx context.Context, userID string) (string, error)
}

type safetySvc interface {
	SubmitRequest(ctx context.Context, userID, category, priority, details string) (*models.SupportRequest, error)
	CheckIn(ctx context.Context, userID string) (*models.SafetyStatus, error)
	Status(ctx context.Context, userID string) (*models.SafetyStatus, error)
	Overview(ctx context.Context) (*services.SafetyOverview, error)
}

type chatSvc interface {
	Groups(ctx context.Context) ([]models.ChatGroup, error)
	Room(ctx context.Context, groupID string) (*services.ChatRoom, error)
	Post(ctx context.Context, groupID, userID, text string) (*models.ChatMessage, error)
}

type communitySvc interface {
	List(ctx context.Context) ([]models.Post, error)
	Create(ctx context.Context, userID, title, content string) (*models.Post, error)
}

type sosSvc interface {
	Submit(ctx context.Context, userID string) (*models.SOSReport, error)
	History(ctx context.Context, userID string) ([]models.SOSReport, error)
}

// Services bundles the business logic the handlers call.
type Services struct {
	Users     userSvc
	Safety    safetySvc
	Chat      chatSvc
	Community communitySvc
	SOS       sosSvc
}

type Server struct {
	address         string
	users           userSvc
	safety          safetySvc
	chat            chatSvc
	community       communitySvc
	sos             sosSvc
	renderer        *view.PageRenderer
	notices         sessions.Store
	metrics         *metrics.Metrics
	logger          logging.Logger
	sessionValidity time.Duration
}

// NewServer wires the handlers. secretKey signs the notice cookie; m may
// be nil, in which case /metrics is not served.
func NewServer(address string, l logging.Logger, svc Services, renderer *view.PageRenderer, m *metrics.Metrics, secretKey string, sessionValidity time.Duration) *Server {
	return &Server{
		address:         address,
		users:           svc.Users,
		safety:          svc.Safety,
		chat:            svc.Chat,
		community:       svc.Community,
		sos:             svc.SOS,
		renderer:        renderer,
		notices:         newNoticeStore(secretKey),
		metrics:         m,
		logger:          l.With("module", "web_server"),
		sessionValidity: sessionValidity,
	}
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping web server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting web server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
