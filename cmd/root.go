package cmd

import (
	"fmt"
	"os"

	"github.com/mgarcia/palabra/internal/content"
	"github.com/mgarcia/palabra/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "palabra",
	Short: "Terminal Spanish study tool",
	Long:  "Palabra — browse a Spanish study page, drill it with balanced quizzes, and grow a personal word list.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PALABRA_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to the study-page HTML file (overrides PALABRA_CONTENT env var)")
	rootCmd.PersistentFlags().String("mode", "mixed", "Quiz mode: single or mixed")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then PALABRA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveMode parses the --mode flag.
func resolveMode(cmd *cobra.Command) (content.Mode, error) {
	m, _ := cmd.Flags().GetString("mode")
	return content.ParseMode(m)
}

// loadContent reads and parses the study page named by --content or
// PALABRA_CONTENT.
func loadContent(cmd *cobra.Command) (*content.Document, error) {
	path, _ := cmd.Flags().GetString("content")
	if path == "" {
		path = os.Getenv("PALABRA_CONTENT")
	}
	if path == "" {
		return nil, fmt.Errorf("no study page: pass --content or set PALABRA_CONTENT")
	}
	doc, err := content.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load study page: %w", err)
	}
	return doc, nil
}
