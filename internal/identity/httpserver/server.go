// Package httpserver exposes the identity service over HTTP.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/moviecategories/internal/httpx"
	"github.com/dmitrijs2005/moviecategories/internal/identity/services"
	"github.com/dmitrijs2005/moviecategories/internal/logging"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// UserService is satisfied by *services.UserService.
type UserService interface {
	Register(ctx context.Context, email, password string) (int64, error)
	IssueToken(ctx context.Context, email, password string) (*services.IssuedToken, error)
}

type HTTPServer struct {
	address string
	users   UserService
	logger  logging.Logger
	router  *gin.Engine
}

func NewHTTPServer(a string, l logging.Logger, us UserService, development bool) *HTTPServer {
	s := &HTTPServer{
		address: a,
		users:   us,
		logger:  l.With("module", "http_server"),
	}
	s.router = httpx.NewEngine(s.logger, development)
	s.routes()
	return s
}

func (s *HTTPServer) routes() {
	s.router.POST("/Users", s.createUser)
	s.router.POST("/token", s.createToken)
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
