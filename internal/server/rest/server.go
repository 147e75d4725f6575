// Package rest exposes the user service over HTTP/JSON.
package rest

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gtsdev/usuarios/internal/logging"
	"github.com/gtsdev/usuarios/internal/server/models"
)

// userSvc is the subset of services.UserService the handlers need.
type userSvc interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id uint32) (models.User, error)
	Create(ctx context.Context, candidate models.User) (models.User, error)
	Update(ctx context.Context, id uint32, candidate models.User) (models.User, error)
	Delete(ctx context.Context, id uint32) error
}

type stdLogger interface {
	StdLogger(level slog.Level) *log.Logger
}

// maxBodyBytes caps request bodies; larger ones get 413.
const maxBodyBytes = 2 << 20

// listen is a test seam for net.Listen.
var listen = net.Listen

type HTTPServer struct {
	address         string
	users           userSvc
	logger          logging.Logger
	shutdownTimeout time.Duration
}

func NewHTTPServer(a string, l logging.Logger, us userSvc, shutdownTimeout time.Duration) *HTTPServer {
	return &HTTPServer{
		address:         a,
		logger:          l.With("module", "http_server"),
		users:           us,
		shutdownTimeout: shutdownTimeout,
	}
}

// Router returns the chi router with every route and middleware mounted.
func (s *HTTPServer) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/usuarios", s.listUsers)
	r.With(middleware.AllowContentType("application/json")).Post("/usuarios", s.createUser)
	r.Get("/usuarios/{id}", s.getUser)
	r.With(middleware.AllowContentType("application/json")).Put("/usuarios/{id}", s.updateUser)
	r.Delete("/usuarios/{id}", s.deleteUser)

	return r
}

// Run listens on the configured address and serves until ctx is cancelled,
// then shuts down gracefully within the shutdown timeout.
func (s *HTTPServer) Run(ctx context.Context) error {

	lis, err := listen("tcp", s.address)
	if err != nil {
		return err
	}

	// also releases the shutdown goroutine when Serve fails on its own
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	if sl, ok := s.logger.(stdLogger); ok {
		srv.ErrorLog = sl.StdLogger(slog.LevelError)
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
