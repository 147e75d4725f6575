// Package server wires the usuarios process together: logger, the seeded
// in-memory store, the user service and the HTTP and gRPC transports. It
// handles OS signals and graceful shutdown.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gtsdev/usuarios/internal/logging"
	"github.com/gtsdev/usuarios/internal/server/config"
	"github.com/gtsdev/usuarios/internal/server/models"
	"github.com/gtsdev/usuarios/internal/server/repositories/users"
	"github.com/gtsdev/usuarios/internal/server/rest"
	"github.com/gtsdev/usuarios/internal/server/services"
	"github.com/gtsdev/usuarios/internal/telemetry"
	"golang.org/x/sync/errgroup"

	gs "github.com/gtsdev/usuarios/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
}

// NewApp builds the application from c, logging to stdout.
func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdout)
}

func newApp(c *config.Config, out io.Writer) (*App, error) {
	logger, err := logging.New(out, c.LogLevel, c.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	repo := users.NewInMemoryRepository(models.SeedUser)
	us := services.NewUserService(repo, logger, telemetry.Default())

	return &App{config: c, logger: logger, userService: us}, nil
}

func (app *App) initSignalHandler(ctx context.Context, cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		defer signal.Stop(sigs)
		select {
		case s := <-sigs:
			app.logger.Info(context.Background(), "Received signal", "signal", s.String())
			cancelFunc()
		case <-ctx.Done():
		}
	}()
}

// Run serves HTTP and, when configured, gRPC until ctx is cancelled or a
// termination signal arrives. If one transport fails the other is stopped
// and the first error is returned.
func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(ctx, cancelFunc)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s := rest.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.config.ShutdownTimeout)
		if err := s.Run(gctx); err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if app.config.EndpointAddrGRPC != "" {
		g.Go(func() error {
			s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService)
			if err := s.Run(gctx); err != nil {
				return fmt.Errorf("grpc server: %w", err)
			}
			return nil
		})
	} else {
		app.logger.Info(ctx, "gRPC endpoint disabled")
	}

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "app stopped with error", "error", err)
		return err
	}

	app.logger.Info(ctx, "App stopped")
	return nil
}
