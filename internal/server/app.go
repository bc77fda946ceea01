// Package server wires configuration, storage, services and the web server
// together and runs them until the process is signalled.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/saferoom/internal/common"
	"github.com/dmitrijs2005/saferoom/internal/logging"
	"github.com/dmitrijs2005/saferoom/internal/server/config"
	"github.com/dmitrijs2005/saferoom/internal/server/metrics"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/chat"
	"github.com/dmitrijs2005/saferoom/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/saferoom/internal/server/services"
	"github.com/dmitrijs2005/saferoom/internal/server/view"
	"github.com/dmitrijs2005/saferoom/internal/server/web"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
	web         *web.Server
}

func NewApp(c *config.Config) (*App, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := logging.NewJSONLogger(os.Stdout, level)

	if c.SecretKey == "" {
		key, err := common.MakeRandHexString(32)
		if err != nil {
			return nil, fmt.Errorf("generating secret key: %w", err)
		}
		c.SecretKey = key
		logger.Warn(context.Background(), "no secret key configured, using a random one; sessions will not survive a restart")
	}

	rm := repomanager.NewInMemoryRepositoryManager(chat.DefaultGroups)

	us := services.NewUserService(rm, logger, c)
	svc := web.Services{
		Users:     us,
		Safety:    services.NewSafetyService(rm, logger),
		Chat:      services.NewChatService(rm, logger),
		Community: services.NewCommunityService(rm, logger),
		SOS:       services.NewSOSService(rm, logger),
	}

	renderer, err := view.NewDefaultPageRenderer()
	if err != nil {
		return nil, fmt.Errorf("templates init error: %w", err)
	}

	var m *metrics.Metrics
	if c.MetricsEnabled {
		m = metrics.New()
	}

	ws := web.NewServer(c.EndpointAddrHTTP, logger, svc, renderer, m, c.SecretKey, c.SessionValidityDuration)

	return &App{config: c, logger: logger, userService: us, web: ws}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case <-sigs:
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

func (app *App) startWebServer(ctx context.Context, cancelFunc context.CancelFunc) error {
	if err := app.web.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return fmt.Errorf("web server: %w", err)
	}
	return nil
}

// Run blocks until ctx is cancelled, a termination signal arrives or the
// web server fails, in which case the failure is returned.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	if app.config.SeedDemoUsers {
		if err := app.userService.SeedDemoUsers(ctx); err != nil {
			return fmt.Errorf("seeding demo users: %w", err)
		}
	}

	app.initSignalHandler(ctx, cancelFunc)

	var (
		wg     sync.WaitGroup
		webErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		webErr = app.startWebServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.logger.Info(context.Background(), "App stopped")
	return webErr
}
