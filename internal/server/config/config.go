// Package config handles configuration for the server, including defaults,
// JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the web endpoint.
//   - SecretKey: HMAC secret for session tokens and the notice cookie. Empty means a
//     random key is generated at startup.
//   - SessionValidityDuration: lifetime of a login session.
//   - SeedDemoUsers: preload the demo accounts at startup.
//   - MetricsEnabled: expose Prometheus metrics on /metrics.
//   - LogLevel: one of debug, info, warn, error.
type Config struct {
	EndpointAddrHTTP        string
	SecretKey               string
	SessionValidityDuration time.Duration
	SeedDemoUsers           bool
	MetricsEnabled          bool
	LogLevel                string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.SecretKey = ""
	c.SessionValidityDuration = 60 * time.Minute
	c.SeedDemoUsers = true
	c.MetricsEnabled = true
	c.LogLevel = "info"
}

// LoadConfig applies defaults, then the optional JSON file, then flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
