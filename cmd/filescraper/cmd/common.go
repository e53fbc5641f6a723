package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/filescraper/internal/config"
	"github.com/dbsmedya/filescraper/internal/extraction"
	"github.com/dbsmedya/filescraper/internal/logger"
	"github.com/dbsmedya/filescraper/internal/prompt"
	"github.com/dbsmedya/filescraper/internal/scraper"
)

// fileSystem backs every command; tests swap it for an in-memory one.
var fileSystem = afero.NewOsFs()

// newPrompter builds the interactive prompter for cmd. A non-empty root skips
// the folder dialog.
var newPrompter = func(cmd *cobra.Command, root string) prompt.Prompter {
	return prompt.Overrides{
		Base:      prompt.NewDialog(cmd.InOrStdin(), cmd.OutOrStdout()),
		Directory: root,
	}
}

// loadConfig loads the config file and applies CLI overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	if overrides.Depth != 0 {
		if _, err := extraction.ParseDepth(overrides.Depth); err != nil {
			return nil, fmt.Errorf("invalid --depth: %w", err)
		}
	}
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat, overrides.OutputDir, overrides.Depth)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newScraper wires a Scraper for cmd from config and flags.
func newScraper(cmd *cobra.Command) (*scraper.Scraper, *logger.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	s, err := scraper.New(cfg, fileSystem, newPrompter(cmd, GetCLIOverrides().RootDir), log, cmd.OutOrStdout())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create scraper: %w", err)
	}
	return s, log, nil
}

// withSignals returns a context cancelled on SIGINT or SIGTERM.
func withSignals(parent context.Context, log *logger.Logger) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigChan)
		select {
		case <-sigChan:
			log.Warn("Received shutdown signal - stopping...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
