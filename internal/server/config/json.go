package config

import (
	"encoding/json"
	"os"

	"github.com/gtsdev/usuarios/internal/flagx"
	"github.com/gtsdev/usuarios/internal/timex"
)

// JsonConfig is the on-disk shape of the server config file. Absent fields
// keep their previous value. EndpointAddrGRPC is a pointer so that an
// explicit "" can disable the gRPC listener.
type JsonConfig struct {
	EndpointAddrHTTP string          `json:"endpoint_addr_http"`
	EndpointAddrGRPC *string         `json:"endpoint_addr_grpc"`
	LogLevel         string          `json:"log_level"`
	LogFormat        string          `json:"log_format"`
	ShutdownTimeout  *timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays values from the file named by -c/-config in args.
// Nothing happens when no file is given; an unreadable file or invalid
// JSON panics.
func parseJson(config *Config, args []string) {
	jsonConfigFile := flagx.ConfigPath(args)

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.EndpointAddrGRPC != nil {
		config.EndpointAddrGRPC = *c.EndpointAddrGRPC
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.LogFormat != "" {
		config.LogFormat = c.LogFormat
	}
	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
