// Copyright (c) 2024-2025 Hassan Kazmi
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/config"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/portfolio"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/server"
	"github.com/sm-Hassan-Kazmi/ai-portfolio/internal/ui"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

const usageText = `portfolio-terminal - interactive terminal portfolio

Usage:
  portfolio-terminal [command] [flags]

Commands:
  tui        Start the interactive terminal UI (default)
  serve      Run the HTTP API server
  seed       Populate the database with the demo portfolio
  version    Print the version
  help       Show this help

Flags:
  -config PATH   Use an alternate config file
  -plain         Use the plain line-based REPL instead of the full TUI
`

// Run parses the process arguments and dispatches to the chosen command.
func Run(rawArgs []string) error {
	args := NewArgParser(rawArgs)

	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	switch args.Subcommand() {
	case "", "tui":
		return runInteractive(cfg, args)
	case "serve":
		return runServe(cfg, configPath(args))
	case "seed":
		return runSeed(cfg)
	case "version":
		fmt.Printf("portfolio-terminal %s\n", Version)
		return nil
	case "help":
		fmt.Print(usageText)
		return nil
	default:
		fmt.Print(usageText)
		return fmt.Errorf("unknown command: %s", args.Subcommand())
	}
}

func loadConfig(args *ArgParser) (*config.Config, error) {
	if path := args.Flag("config"); path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

func configPath(args *ArgParser) string {
	if path := args.Flag("config"); path != "" {
		return path
	}
	path, err := config.Path()
	if err != nil {
		return ""
	}
	return path
}

func openStore(cfg *config.Config) (*portfolio.Store, error) {
	store, err := portfolio.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open portfolio store: %w", err)
	}
	return store, nil
}

// =============================================================================
// COMMANDS
// =============================================================================

func runInteractive(cfg *config.Config, args *ArgParser) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	// The full-screen TUI needs a real terminal. Fall back to the plain
	// REPL when stdout is redirected or -plain is given.
	if args.HasFlag("plain") || !term.IsTerminal(int(os.Stdout.Fd())) {
		return RunREPL(cfg, store)
	}
	return ui.Run(cfg, store)
}

func runServe(cfg *config.Config, cfgPath string) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := server.New(cfg, store)

	// Pick up contact webhook changes without a restart.
	if cfgPath != "" {
		if watcher, err := config.NewWatcher(cfgPath, srv.Reconfigure); err == nil {
			if err := watcher.Watch(); err != nil {
				log.Printf("CONFIG_WATCH_UNAVAILABLE | path=%s error=%v", cfgPath, err)
			} else {
				defer watcher.Close()
			}
		}
	}

	return srv.ListenAndServe(ctx)
}

func runSeed(cfg *config.Config) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := portfolio.Seed(context.Background(), store); err != nil {
		return fmt.Errorf("seed portfolio: %w", err)
	}

	log.Printf("SEED_COMPLETE | db=%s", cfg.Database.Path)
	fmt.Println("Portfolio database seeded.")
	return nil
}
