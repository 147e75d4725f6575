package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvHTTPAddr        = "USUARIOS_HTTP_ADDR"
	EnvGRPCAddr        = "USUARIOS_GRPC_ADDR"
	EnvLogLevel        = "USUARIOS_LOG_LEVEL"
	EnvLogFormat       = "USUARIOS_LOG_FORMAT"
	EnvShutdownTimeout = "USUARIOS_SHUTDOWN_TIMEOUT"
)

// loadDotEnv exports the variables from path into the process environment.
// Variables that are already set win over the file. A missing file is not
// an error.
func loadDotEnv(path string) {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}
}

// parseEnv overlays values found through lookup. A variable that is set but
// empty counts as set, which is how USUARIOS_GRPC_ADDR disables gRPC.
func parseEnv(config *Config, lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvHTTPAddr); ok && v != "" {
		config.EndpointAddrHTTP = v
	}
	if v, ok := lookup(EnvGRPCAddr); ok {
		config.EndpointAddrGRPC = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		config.LogLevel = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		config.LogFormat = v
	}
	if v, ok := lookup(EnvShutdownTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.ShutdownTimeout = d
	}
}
