package config

import (
	"flag"

	"github.com/gtsdev/usuarios/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     HTTP bind address (e.g. "127.0.0.1:3000")
//	-g string     gRPC bind address, "-g=" disables gRPC
//	-l string     log level
//	-f string     log format: json, text or auto
//	-t duration   graceful shutdown timeout (e.g. "5s")
//
// args are filtered with flagx.FilterArgs first so -c/-config and flags of
// other components do not collide. Invalid values panic.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-l", "-f", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port to run server")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC address and port, empty to disable")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json, text, auto)")
	fs.DurationVar(&config.ShutdownTimeout, "t", config.ShutdownTimeout, "graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
