package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/saferoom/internal/flagx"
)

// parseFlags populates Config from command-line flags.
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-s string   session/notice signing secret
//	-t int      session validity, minutes
//	-demo bool  preload demo users
//	-m bool     expose /metrics
//	-l string   log level
//
// Only the flags above are picked out of os.Args, so -c/-config can share
// the command line. Boolean flags must use the -name=value form to be set
// to false.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-t", "-demo", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	sessionValidity := fs.Int("t", int(config.SessionValidityDuration.Minutes()), "session validity (in minutes)")
	fs.BoolVar(&config.SeedDemoUsers, "demo", config.SeedDemoUsers, "preload demo users")
	fs.BoolVar(&config.MetricsEnabled, "m", config.MetricsEnabled, "expose prometheus metrics")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -t only counts when given, so a JSON duration finer than a minute survives.
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.SessionValidityDuration = time.Duration(*sessionValidity) * time.Minute
		}
	})
}
