package cmd

import (
	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract important files listed in an existing structure file",
	Long: `Extract skips the scan and reads structure.json from a previous run.
It asks for the project root the structure was generated from and a depth
level, then writes extracted_data.txt. Files that no longer exist are skipped.

Example:
  filescraper extract
  filescraper extract --output-dir ./out --root ./myproject --depth 2`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	s, log, err := newScraper(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, cancel := withSignals(cmd.Context(), log)
	defer cancel()

	log.Infow("Starting extraction from structure file", "config", GetConfigFile())

	result, err := s.RunFromIndex(ctx)
	if err != nil {
		return err
	}

	log.Infow("Extraction completed",
		"root", result.RootDir,
		"report", result.ReportPath,
		"records", result.Stats.Read,
		"duration", result.Duration,
	)
	return nil
}
