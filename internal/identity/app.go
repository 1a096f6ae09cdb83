// Package identity initializes and runs the identity service: it opens the
// credential store, applies migrations, wires hashing and token signing into
// the user service and serves the HTTP API until a termination signal arrives.
package identity

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/moviecategories/internal/auth/password"
	"github.com/dmitrijs2005/moviecategories/internal/auth/token"
	"github.com/dmitrijs2005/moviecategories/internal/common"
	"github.com/dmitrijs2005/moviecategories/internal/identity/config"
	"github.com/dmitrijs2005/moviecategories/internal/identity/httpserver"
	"github.com/dmitrijs2005/moviecategories/internal/identity/repositories/repomanager"
	"github.com/dmitrijs2005/moviecategories/internal/identity/services"
	"github.com/dmitrijs2005/moviecategories/internal/logging"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	userService *services.UserService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, c.Environment).With("service", "identity")

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

	codec := token.NewCodec([]byte(c.JWTKey), c.JWTIssuer, c.JWTAudience, c.TokenLifetime)
	us := services.NewUserService(db, rm, password.NewHasher(), codec)

	return &App{config: c, logger: logger, db: db, userService: us}, nil
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
	s := httpserver.NewHTTPServer(app.config.Address, app.logger, app.userService, development)

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
