package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mgarcia/palabra/ent"
	"github.com/mgarcia/palabra/ent/quizevent"
)

// QuizResult is one finished quiz run.
type QuizResult struct {
	SessionID string
	Mode      string
	Score     int
	Total     int
	Timestamp time.Time
}

// Stats aggregates the full quiz history.
type Stats struct {
	Quizzes   int
	Questions int
	Correct   int
}

// Accuracy is the overall fraction of correct answers, 0 when no
// questions were answered yet.
func (st Stats) Accuracy() float64 {
	if st.Questions == 0 {
		return 0
	}
	return float64(st.Correct) / float64(st.Questions)
}

// QuizRepo appends and queries quiz history events.
type QuizRepo struct {
	client *ent.Client
}

// Append records a finished quiz.
func (r *QuizRepo) Append(ctx context.Context, res QuizResult) error {
	_, err := r.client.QuizEvent.Create().
		SetSessionID(res.SessionID).
		SetMode(res.Mode).
		SetScore(res.Score).
		SetTotal(res.Total).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save quiz event: %w", err)
	}
	return nil
}

// Recent returns the newest results first, at most limit of them.
func (r *QuizRepo) Recent(ctx context.Context, limit int) ([]QuizResult, error) {
	q := r.client.QuizEvent.Query().
		Order(ent.Desc(quizevent.FieldTimestamp), ent.Desc(quizevent.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query quiz history: %w", err)
	}

	results := make([]QuizResult, len(rows))
	for i, row := range rows {
		results[i] = QuizResult{
			SessionID: row.SessionID,
			Mode:      row.Mode,
			Score:     row.Score,
			Total:     row.Total,
			Timestamp: row.Timestamp,
		}
	}
	return results, nil
}

// Totals aggregates the whole history.
func (r *QuizRepo) Totals(ctx context.Context) (Stats, error) {
	rows, err := r.client.QuizEvent.Query().All(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("query quiz totals: %w", err)
	}
	var st Stats
	for _, row := range rows {
		st.Quizzes++
		st.Questions += row.Total
		st.Correct += row.Score
	}
	return st, nil
}
