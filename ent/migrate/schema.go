// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtraEntriesColumns holds the columns for the "extra_entries" table.
	ExtraEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "category", Type: field.TypeString},
		{Name: "english", Type: field.TypeString},
		{Name: "spanish", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ExtraEntriesTable holds the schema information for the "extra_entries" table.
	ExtraEntriesTable = &schema.Table{
		Name:       "extra_entries",
		Columns:    ExtraEntriesColumns,
		PrimaryKey: []*schema.Column{ExtraEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extraentry_category",
				Unique:  false,
				Columns: []*schema.Column{ExtraEntriesColumns[1]},
			},
		},
	}
	// QuizEventsColumns holds the columns for the "quiz_events" table.
	QuizEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString},
		{Name: "score", Type: field.TypeInt},
		{Name: "total", Type: field.TypeInt},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// QuizEventsTable holds the schema information for the "quiz_events" table.
	QuizEventsTable = &schema.Table{
		Name:       "quiz_events",
		Columns:    QuizEventsColumns,
		PrimaryKey: []*schema.Column{QuizEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quizevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[1]},
			},
			{
				Name:    "quizevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{QuizEventsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtraEntriesTable,
		QuizEventsTable,
	}
)

func init() {
}
