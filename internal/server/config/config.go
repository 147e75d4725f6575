// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment and command-line flags.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the usuarios server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the REST API.
//   - EndpointAddrGRPC: bind address for the gRPC mirror; empty disables it.
//   - LogLevel: debug, info, warn or error.
//   - LogFormat: json, text or auto (text on a terminal, JSON otherwise).
//   - ShutdownTimeout: how long in-flight HTTP requests get on shutdown.
type Config struct {
	EndpointAddrHTTP string
	EndpointAddrGRPC string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = "127.0.0.1:3000"
	c.EndpointAddrGRPC = "127.0.0.1:50051"
	c.LogLevel = "info"
	c.LogFormat = "auto"
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment (including an optional .env
// file) and finally command-line flags. It panics on malformed input.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	loadDotEnv(".env")
	parseEnv(cfg, os.LookupEnv)
	parseFlags(cfg, args)
	return cfg
}
