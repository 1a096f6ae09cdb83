// Package httpserver exposes the movie-categories service over HTTP.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/moviecategories/internal/categories/authclient"
	"github.com/dmitrijs2005/moviecategories/internal/categories/models"
	"github.com/dmitrijs2005/moviecategories/internal/httpx"
	"github.com/dmitrijs2005/moviecategories/internal/logging"
	"github.com/gin-gonic/gin"
)

const (
	shutdownTimeout = 10 * time.Second
	basePath        = "/api/MoviesCategories"
)

// CategoryService is satisfied by *services.CategoryService.
type CategoryService interface {
	GetAll(ctx context.Context) ([]models.MovieCategory, error)
	GetByID(ctx context.Context, id int64) (*models.MovieCategory, error)
	Create(ctx context.Context, c *models.MovieCategory) (int64, error)
	Update(ctx context.Context, c *models.MovieCategory) error
	Delete(ctx context.Context, id int64) error
}

// Authenticator is satisfied by *authclient.Client.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*authclient.TokenResponse, error)
}

type HTTPServer struct {
	address    string
	categories CategoryService
	auth       Authenticator
	tokens     httpx.TokenValidator
	logger     logging.Logger
	router     *gin.Engine
}

func NewHTTPServer(a string, l logging.Logger, cs CategoryService, auth Authenticator, tv httpx.TokenValidator, development bool) *HTTPServer {
	s := &HTTPServer{
		address:    a,
		categories: cs,
		auth:       auth,
		tokens:     tv,
		logger:     l.With("module", "http_server"),
	}
	s.router = httpx.NewEngine(s.logger, development)
	s.routes()
	return s
}

func (s *HTTPServer) routes() {
	s.router.GET(basePath+"/GetAllHttpAuth", s.getAllHTTPAuth)

	protected := s.router.Group(basePath, httpx.BearerAuth(s.tokens, s.logger))
	protected.GET("", s.getAll)
	protected.GET("/:id", s.getByID)
	protected.POST("", s.create)
	protected.PUT("/:id", s.update)
	protected.DELETE("/:id", s.delete)
}

// Handler returns the routed gin engine.
func (s *HTTPServer) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
