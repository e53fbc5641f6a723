package cmd

import (
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a project, save its structure and extract important files",
	Long: `Scan walks the chosen project root, saves the important files it finds
to structure.json, then asks for a depth level and writes their contents
to extracted_data.txt. Running filescraper without a subcommand does the same.

Example:
  filescraper scan
  filescraper scan --root ./myproject --depth 1`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	s, log, err := newScraper(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, cancel := withSignals(cmd.Context(), log)
	defer cancel()

	log.Infow("Starting scan", "config", GetConfigFile())

	result, err := s.Run(ctx)
	if err != nil {
		return err
	}

	log.Infow("Scan completed",
		"root", result.RootDir,
		"structure", result.StructurePath,
		"report", result.ReportPath,
		"duration", result.Duration,
	)
	return nil
}
