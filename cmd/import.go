package cmd

import (
	"fmt"
	"os"

	"github.com/mgarcia/palabra/internal/store"
	"github.com/mgarcia/palabra/internal/vocab"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Import personal vocabulary from a JSON file",
	Long:  "Import reads a {categories:[{title,items:[{en,es}]}]} JSON document, validates it, and appends every entry to your personal vocabulary.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		extras, err := vocab.Parse(data)
		if err != nil {
			return err
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

		repo := st.Entries()
		n := 0
		for _, cat := range extras.Categories {
			for _, e := range cat.Items {
				if _, err := repo.Add(cmd.Context(), cat.Title, e.English, e.Spanish); err != nil {
					return fmt.Errorf("import %q: %w", e.English, err)
				}
				n++
			}
		}
		fmt.Printf("imported %d entries from %s\n", n, args[0])
		return nil
	},
}
