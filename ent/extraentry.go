// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/mgarcia/palabra/ent/extraentry"
)

// ExtraEntry is the model entity for the ExtraEntry schema.
type ExtraEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Display category the entry is filed under
	Category string `json:"category,omitempty"`
	// English holds the value of the "english" field.
	English string `json:"english,omitempty"`
	// Spanish holds the value of the "spanish" field.
	Spanish string `json:"spanish,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtraEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extraentry.FieldID:
			values[i] = new(sql.NullInt64)
		case extraentry.FieldCategory, extraentry.FieldEnglish, extraentry.FieldSpanish:
			values[i] = new(sql.NullString)
		case extraentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtraEntry fields.
func (_m *ExtraEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extraentry.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case extraentry.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case extraentry.FieldEnglish:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field english", values[i])
			} else if value.Valid {
				_m.English = value.String
			}
		case extraentry.FieldSpanish:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spanish", values[i])
			} else if value.Valid {
				_m.Spanish = value.String
			}
		case extraentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtraEntry.
// This includes values selected through modifiers, order, etc.
func (_m *ExtraEntry) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ExtraEntry.
// Note that you need to call ExtraEntry.Unwrap() before calling this method if this ExtraEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtraEntry) Update() *ExtraEntryUpdateOne {
	return NewExtraEntryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtraEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtraEntry) Unwrap() *ExtraEntry {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtraEntry is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtraEntry) String() string {
	var builder strings.Builder
	builder.WriteString("ExtraEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("english=")
	builder.WriteString(_m.English)
	builder.WriteString(", ")
	builder.WriteString("spanish=")
	builder.WriteString(_m.Spanish)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtraEntries is a parsable slice of ExtraEntry.
type ExtraEntries []*ExtraEntry
