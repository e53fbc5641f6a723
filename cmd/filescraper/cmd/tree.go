package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/filescraper/internal/structure"
)

var treeRoot string

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Show the saved structure file as a tree",
	Long: `Tree loads structure.json and prints its directories and important files
as a tree. Nothing is scanned or written.

Example:
  filescraper tree
  filescraper tree --output-dir ./out --name myproject`,
	Args: cobra.NoArgs,
	RunE: runTree,
}

func init() {
	treeCmd.Flags().StringVar(&treeRoot, "name", ".",
		"Label for the root node of the tree")

	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.StructurePath()
	m, err := structure.NewStore(fileSystem).Load(path)
	if err != nil {
		return err
	}

	if err := structure.RenderTree(cmd.OutOrStdout(), m, treeRoot); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}
