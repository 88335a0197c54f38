package config

import (
	"flag"
	"os"
	"time"

	"github.com/navbug/compintel-cli/internal/flagx"
)

// parseFlags overlays selected Config fields from command-line flags:
//
//	-a string   base URL of the backend API
//	-d string   path to the local database file
//	-t int      request timeout in seconds
//
// os.Args is filtered to the flags this function owns so parsing never
// collides with flags defined elsewhere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	timeoutSec := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		return
	}

	cfg.RequestTimeout = time.Duration(*timeoutSec) * time.Second
}
