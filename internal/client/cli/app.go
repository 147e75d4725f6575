package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gtsdev/usuarios/internal/client/client"
	"github.com/gtsdev/usuarios/internal/client/config"
)

type App struct {
	config *config.Config
	client client.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewUsersClientService(c.ServerEndpointAddr)
	if err != nil {
		return nil, fmt.Errorf("error creating client: %w", err)
	}

	return &App{config: c, client: apiClient, reader: bufio.NewReader(os.Stdin), out: os.Stdout}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()

	fmt.Fprintf(a.out, "Connected to %s (type 'help' for commands)\n", a.config.ServerEndpointAddr)
	runREPL(ctx, a, a.reader)
}

// callCtx bounds a single remote call by the configured request timeout.
func (a *App) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := a.config.RequestTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}

func (a *App) report(err error) {
	fmt.Fprintf(a.out, "Error: %s\n", err.Error())
}
