// Package categories initializes and runs the movie-categories service.
package categories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/moviecategories/internal/auth/token"
	"github.com/dmitrijs2005/moviecategories/internal/categories/authclient"
	"github.com/dmitrijs2005/moviecategories/internal/categories/config"
	"github.com/dmitrijs2005/moviecategories/internal/categories/httpserver"
	"github.com/dmitrijs2005/moviecategories/internal/categories/repositories/repomanager"
	"github.com/dmitrijs2005/moviecategories/internal/categories/services"
	"github.com/dmitrijs2005/moviecategories/internal/common"
	"github.com/dmitrijs2005/moviecategories/internal/logging"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	db              *sql.DB
	categoryService *services.CategoryService
	authClient      *authclient.Client
	codec           *token.Codec
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.Environment).With("service", "movie-categories")

	if c.JWTKey == "" {
		return nil, common.ErrSigningKeyMissing
	}

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	ac := authclient.New(authclient.Config{
		BaseURL:   c.AuthAPIURL,
		Timeout:   c.AuthTimeout,
		Retries:   c.AuthRetries,
		BaseDelay: c.AuthRetryBaseDelay,
	})

	// Validation only: lifetime is irrelevant here.
	codec := token.NewCodec([]byte(c.JWTKey), c.JWTIssuer, c.JWTAudience, 0)

	return &App{
		config:          c,
		logger:          logger,
		db:              db,
		categoryService: services.NewCategoryService(db, rm),
		authClient:      ac,
		codec:           codec,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	development := app.config.Environment == common.EnvironmentDevelopment
	s := httpserver.NewHTTPServer(app.config.Address, app.logger, app.categoryService, app.authClient, app.codec, development)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
	app.logger.Info(ctx, "App stopped")
}
