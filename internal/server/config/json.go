package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/saferoom/internal/flagx"
	"github.com/dmitrijs2005/saferoom/internal/timex"
)

// JsonConfig is the on-disk form of Config. Pointer fields distinguish
// "absent" from the zero value so a partial file only overrides what it
// names.
type JsonConfig struct {
	EndpointAddrHTTP        *string         `json:"endpoint_addr_http"`
	SecretKey               *string         `json:"secret_key"`
	SessionValidityDuration *timex.Duration `json:"session_validity_duration"`
	SeedDemoUsers           *bool           `json:"seed_demo_users"`
	MetricsEnabled          *bool           `json:"metrics_enabled"`
	LogLevel                *string         `json:"log_level"`
}

// parseJson overlays values from the file named by -c/-config. Nothing is
// loaded when the flag is absent; an unreadable or invalid file panics.
func parseJson(config *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.SessionValidityDuration != nil {
		config.SessionValidityDuration = c.SessionValidityDuration.Duration
	}
	if c.SeedDemoUsers != nil {
		config.SeedDemoUsers = *c.SeedDemoUsers
	}
	if c.MetricsEnabled != nil {
		config.MetricsEnabled = *c.MetricsEnabled
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}
