// Package server initializes and runs the catalog server. It wires the
// JSON-document store, the session store and the services together, starts
// the HTTP API and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"artcatalog/internal/logging"
	"artcatalog/internal/server/config"
	"artcatalog/internal/server/httpapi"
	"artcatalog/internal/server/repomanager"
	"artcatalog/internal/server/services"
	"artcatalog/internal/server/sessions"
)

type App struct {
	config     *config.Config
	logger     logging.Logger
	auth       *services.AuthService
	moderation *services.ModerationService
	query      *services.QueryService
	admin      *services.AdminService
	images     *services.ImageService
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	m, err := repomanager.NewJSONFileManager(c.DataDir)
	if err != nil {
		return nil, fmt.Errorf("store init error: %w", err)
	}

	sess := sessions.NewMemoryStore()

	as := services.NewAuthService(m.Users(), sess)
	ms := services.NewModerationService(m.Submissions(), m.Artworks())
	qs := services.NewQueryService(m.Artworks(), m.Submissions(), m.Users(), m.Categories())
	ads := services.NewAdminService(m.Users(), m.Artworks(), m.Categories())
	is := services.NewImageService(c)

	return &App{
		config:     c,
		logger:     logger,
		auth:       as,
		moderation: ms,
		query:      qs,
		admin:      ads,
		images:     is,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddr, app.logger,
		app.auth, app.moderation, app.query, app.admin, app.images)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

}
