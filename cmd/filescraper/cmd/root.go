package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/filescraper/internal/scraper"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	outputDir string
	rootDir   string
	depth     int
)

var rootCmd = &cobra.Command{
	Use:   "filescraper",
	Short: "Important file scraper",
	Long: `Scan a project for important files and dump their contents into one
text report.

Without a subcommand the scan runs interactively:
  1. Pick the project root in a folder dialog
  2. The structure of important files is saved to structure.json
  3. Choose a depth level: 1 for contents, 2 for contents plus Python
     function and class names
  4. The report is written to extracted_data.txt

Example:
  filescraper
  filescraper --root ./myproject --depth 2 --output-dir ./out`,
	Version:       Version,
	Args:          cobra.NoArgs,
	RunE:          runScan,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// a cancelled folder dialog has already been reported
		if !errors.Is(err, scraper.ErrNoDirectorySelected) {
			fmt.Fprintln(os.Stderr, color.Red.Sprintf("Error: %v", err))
		}
		os.Exit(exitCode(err))
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to configuration file (optional)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Output overrides
	rootCmd.PersistentFlags().StringVar(&outputDir, "output-dir", "",
		"Override the directory for structure.json and extracted_data.txt")

	// Prompt overrides
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "",
		"Project root to scan instead of opening the folder dialog")
	rootCmd.PersistentFlags().IntVar(&depth, "depth", 0,
		"Depth level (1 or 2) instead of prompting for it")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	OutputDir string
	RootDir   string
	Depth     int
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		OutputDir: outputDir,
		RootDir:   rootDir,
		Depth:     depth,
	}
}
