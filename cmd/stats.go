package cmd

import (
	"fmt"

	"github.com/mgarcia/palabra/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		totals, err := st.Quizzes().Totals(cmd.Context())
		if err != nil {
			return err
		}
		if totals.Quizzes == 0 {
			fmt.Println("No quizzes yet.")
			return nil
		}

		fmt.Printf("Quizzes taken:      %d\n", totals.Quizzes)
		fmt.Printf("Questions answered: %d\n", totals.Questions)
		fmt.Printf("Correct:            %d (%.0f%%)\n", totals.Correct, totals.Accuracy()*100)

		recent, err := st.Quizzes().Recent(cmd.Context(), 5)
		if err != nil {
			return err
		}
		fmt.Println("\nRecent:")
		for _, r := range recent {
			fmt.Printf("  %s  %-6s  %d/%d\n",
				r.Timestamp.Format("Jan 02 15:04"), r.Mode, r.Score, r.Total)
		}
		return nil
	},
}
