package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtraEntry is a user-added vocabulary pair, merged into the study
// page before browsing and quiz generation.
type ExtraEntry struct {
	ent.Schema
}

func (ExtraEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("category").
			NotEmpty().
			Comment("Display category the entry is filed under"),
		field.String("english").
			NotEmpty(),
		field.String("spanish").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ExtraEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("category"),
	}
}
