package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mgarcia/palabra/ent"
	"github.com/mgarcia/palabra/ent/extraentry"
)

// Entry is one personal vocabulary pair as stored.
type Entry struct {
	ID        int
	Category  string
	English   string
	Spanish   string
	CreatedAt time.Time
}

// EntryRepo manages personal vocabulary entries.
type EntryRepo struct {
	client *ent.Client
}

// Add stores a new entry and returns it with its assigned ID.
func (r *EntryRepo) Add(ctx context.Context, category, english, spanish string) (*Entry, error) {
	row, err := r.client.ExtraEntry.Create().
		SetCategory(category).
		SetEnglish(english).
		SetSpanish(spanish).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save entry: %w", err)
	}
	return entryFromRow(row), nil
}

// List returns all entries ordered by category, then insertion order.
func (r *EntryRepo) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.client.ExtraEntry.Query().
		Order(ent.Asc(extraentry.FieldCategory), ent.Asc(extraentry.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	entries := make([]Entry, len(rows))
	for i, row := range rows {
		entries[i] = *entryFromRow(row)
	}
	return entries, nil
}

// Clear deletes every entry and reports how many were removed.
func (r *EntryRepo) Clear(ctx context.Context) (int, error) {
	n, err := r.client.ExtraEntry.Delete().Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear entries: %w", err)
	}
	return n, nil
}

func entryFromRow(row *ent.ExtraEntry) *Entry {
	return &Entry{
		ID:        row.ID,
		Category:  row.Category,
		English:   row.English,
		Spanish:   row.Spanish,
		CreatedAt: row.CreatedAt,
	}
}
