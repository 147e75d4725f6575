package config

import (
	"flag"

	"github.com/gtsdev/usuarios/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-a string     address and port of the server gRPC endpoint
//	-t duration   per-request timeout (e.g. "3s")
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
