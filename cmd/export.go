package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/mgarcia/palabra/internal/content"
	"github.com/mgarcia/palabra/internal/store"
	"github.com/mgarcia/palabra/internal/vocab"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export study content or personal vocabulary",
	Long: `Export writes to stdout (or --out).

  --format html   the study page merged with your personal vocabulary
  --format json   just your personal vocabulary, as importable JSON`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		entries, err := st.Entries().List(context.Background())
		if err != nil {
			return fmt.Errorf("load personal vocabulary: %w", err)
		}
		extras := entriesToExtras(entries)

		out := os.Stdout
		if outPath != "" {
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			defer f.Close()
			out = f
		}

		switch format {
		case "json":
			data, err := vocab.Marshal(extras)
			if err != nil {
				return err
			}
			_, err = out.Write(data)
			return err

		case "html":
			doc, err := loadContent(cmd)
			if err != nil {
				return err
			}
			vocab.MergeInto(doc, extras)
			return content.WriteHTML(doc, out)
		}
		return fmt.Errorf("unknown format %q (want html or json)", format)
	},
}

func init() {
	exportCmd.Flags().String("format", "json", "Output format: html or json")
	exportCmd.Flags().String("out", "", "Write to a file instead of stdout")
}
