package cmd

import (
	"fmt"

	"github.com/mgarcia/palabra/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete personal vocabulary and quiz history",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("reset deletes all personal vocabulary and quiz history; re-run with --force")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		n, err := st.Entries().Clear(cmd.Context())
		if err != nil {
			return err
		}
		if _, err := st.DB().ExecContext(cmd.Context(), "DELETE FROM quiz_events"); err != nil {
			return fmt.Errorf("clear quiz history: %w", err)
		}
		fmt.Printf("deleted %d personal entries and all quiz history\n", n)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Skip the confirmation")
}
