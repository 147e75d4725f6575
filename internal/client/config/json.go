package config

import (
	"encoding/json"
	"os"

	"github.com/gtsdev/usuarios/internal/flagx"
	"github.com/gtsdev/usuarios/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. RequestTimeout
// accepts "3s" style strings or integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string          `json:"server_endpoint_addr"`
	RequestTimeout     *timex.Duration `json:"request_timeout"`
}

// parseJson overlays cfg with the file named by -c/-config. Fields missing
// from the file are left alone. Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.ConfigPath(args)
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
}
