package cmd

import (
	"context"
	"fmt"

	"github.com/mgarcia/palabra/internal/app"
	"github.com/mgarcia/palabra/internal/store"
	"github.com/mgarcia/palabra/internal/vocab"
	"github.com/spf13/cobra"
)

// runApp loads the study page, opens the store, folds the personal
// vocabulary in, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	doc, err := loadContent(cmd)
	if err != nil {
		return err
	}

	mode, err := resolveMode(cmd)
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

	entries, err := st.Entries().List(context.Background())
	if err != nil {
		return fmt.Errorf("load personal vocabulary: %w", err)
	}
	vocab.MergeInto(doc, entriesToExtras(entries))

	return app.Run(app.Options{
		Doc:     doc,
		Mode:    mode,
		Entries: st.Entries(),
		Quizzes: st.Quizzes(),
	})
}

// entriesToExtras groups stored entries by category, preserving the
// repository's category ordering.
func entriesToExtras(entries []store.Entry) *vocab.Extras {
	extras := &vocab.Extras{}
	index := make(map[string]int)
	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			i = len(extras.Categories)
			index[e.Category] = i
			extras.Categories = append(extras.Categories, vocab.Category{Title: e.Category})
		}
		extras.Categories[i].Items = append(extras.Categories[i].Items,
			vocab.Entry{English: e.English, Spanish: e.Spanish})
	}
	return extras
}
