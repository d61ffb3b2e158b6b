package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizEvent records one finished quiz run. Append-only.
type QuizEvent struct {
	ent.Schema
}

func (QuizEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the quiz session"),
		field.String("mode").
			NotEmpty().
			Comment("single or mixed"),
		field.Int("score"),
		field.Int("total"),
		field.Time("timestamp").
			Default(time.Now).
			Immutable(),
	}
}

func (QuizEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("timestamp"),
	}
}
