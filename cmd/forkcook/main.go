// Forkcook: search recipes, scale servings, build a shopping list.
//
// Usage:
//
//	forkcook [-config forkcook.yaml] [-offline] [-store file|sqlite|memory] [-verbose] [-quiet]
package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/hammamikhairi/forkcook/internal/config"
	"github.com/hammamikhairi/forkcook/internal/conversation"
	"github.com/hammamikhairi/forkcook/internal/display"
	"github.com/hammamikhairi/forkcook/internal/domain"
	"github.com/hammamikhairi/forkcook/internal/engine"
	"github.com/hammamikhairi/forkcook/internal/forkify"
	"github.com/hammamikhairi/forkcook/internal/logger"
	"github.com/hammamikhairi/forkcook/internal/recipe"
	"github.com/hammamikhairi/forkcook/internal/storage"
)

const sqliteFile = "forkcook.db"

func main() {
	fl := parseFlags(os.Args[1:])

	cfg, err := config.Load(fl.config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := fl.apply(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logLevel, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Direct logs to a file by default so the prompt stays clean.
	var logOut io.Writer = os.Stderr
	if cfg.LogFile != "" && cfg.LogFile != "stderr" {
		dir := filepath.Dir(cfg.LogFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", cfg.LogFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Third-party libraries log through the standard logger.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// Cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	var recipes domain.RecipeSource
	if cfg.Offline {
		recipes = recipe.NewMemorySource(log)
		log.Info("offline: using built-in recipes")
	} else {
		recipes = forkify.NewClient(log,
			forkify.WithBaseURL(cfg.APIURL),
			forkify.WithTimeout(cfg.Timeout),
			forkify.WithRateLimit(cfg.RateLimit, 1),
		)
		log.Info("using recipe API at %s", cfg.APIURL)
	}

	eng := engine.New(recipes, store, log,
		engine.WithServingsDefault(cfg.Servings),
		engine.WithPageSize(cfg.PageSize),
	)

	ui := display.NewUI()
	app := &cliApp{
		engine:   eng,
		parser:   conversation.NewKeywordParser(log),
		notifier: conversation.NewCLINotifier(log, ui.Printf),
		log:      log,
		ui:       ui,
	}

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal. Blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}

// openStore opens the configured blob store. The returned func releases it.
func openStore(ctx context.Context, cfg config.Config, log *logger.Logger) (domain.BlobStore, func(), error) {
	noop := func() {}

	switch cfg.Store {
	case config.StoreMemory:
		return storage.NewMemoryStore(log), noop, nil
	case config.StoreSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, noop, fmt.Errorf("creating data dir %s: %w", cfg.DataDir, err)
		}
		s, err := storage.OpenSQLite(ctx, filepath.Join(cfg.DataDir, sqliteFile), log)
		if err != nil {
			return nil, noop, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				log.Warn("closing store: %v", err)
			}
		}, nil
	default:
		s, err := storage.NewFileStore(cfg.DataDir, log)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	}
}
