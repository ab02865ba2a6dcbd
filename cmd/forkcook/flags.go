package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hammamikhairi/forkcook/internal/config"
)

// cliFlags are the command-line overrides. Empty strings and false mean
// "not given" so config values stand.
type cliFlags struct {
	config  string
	verbose bool
	quiet   bool
	offline bool
	store   string
	dataDir string
	logFile string
	apiURL  string
}

func parseFlags(args []string) cliFlags {
	var f cliFlags
	fs := flag.NewFlagSet("forkcook", flag.ExitOnError)
	fs.StringVar(&f.config, "config", "forkcook.yaml", "YAML config file (missing file is fine)")
	fs.BoolVar(&f.verbose, "verbose", false, "enable verbose/debug logging")
	fs.BoolVar(&f.quiet, "quiet", false, "disable all logging")
	fs.BoolVar(&f.offline, "offline", false, "use the built-in recipes instead of the API")
	fs.StringVar(&f.store, "store", "", "where likes are kept: file, sqlite or memory")
	fs.StringVar(&f.dataDir, "data-dir", "", "directory for the file and sqlite stores")
	fs.StringVar(&f.logFile, "log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	fs.StringVar(&f.apiURL, "api-url", "", "recipe API base URL")
	fs.SetOutput(os.Stderr)
	fs.Parse(args)
	return f
}

// apply overlays the flags onto cfg and re-validates it.
func (f cliFlags) apply(cfg *config.Config) error {
	if f.verbose && f.quiet {
		return fmt.Errorf("-verbose and -quiet are mutually exclusive")
	}
	if f.verbose {
		cfg.LogLevel = "debug"
	}
	if f.quiet {
		cfg.LogLevel = "off"
	}
	if f.offline {
		cfg.Offline = true
	}
	if f.store != "" {
		cfg.Store = f.store
	}
	if f.dataDir != "" {
		cfg.DataDir = f.dataDir
	}
	if f.logFile != "" {
		cfg.LogFile = f.logFile
	}
	if f.apiURL != "" {
		cfg.APIURL = f.apiURL
	}
	return cfg.Validate()
}
