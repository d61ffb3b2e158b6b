package cmd

import (
	"fmt"

	"github.com/mgarcia/palabra/internal/store"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <english> <spanish>",
	Short: "Add a word to your personal vocabulary",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		entry, err := st.Entries().Add(cmd.Context(), category, args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("added %q — %q to %s\n", entry.English, entry.Spanish, entry.Category)
		return nil
	},
}

func init() {
	addCmd.Flags().String("category", "My Words", "Category to file the word under")
}
