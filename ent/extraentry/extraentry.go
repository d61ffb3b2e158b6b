// Code generated by ent, DO NOT EDIT.

package extraentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the extraentry type in the database.
	Label = "extra_entry"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldEnglish holds the string denoting the english field in the database.
	FieldEnglish = "english"
	// FieldSpanish holds the string denoting the spanish field in the database.
	FieldSpanish = "spanish"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the extraentry in the database.
	Table = "extra_entries"
)

// Columns holds all SQL columns for extraentry fields.
var Columns = []string{
	FieldID,
	FieldCategory,
	FieldEnglish,
	FieldSpanish,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// EnglishValidator is a validator for the "english" field. It is called by the builders before save.
	EnglishValidator func(string) error
	// SpanishValidator is a validator for the "spanish" field. It is called by the builders before save.
	SpanishValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExtraEntry queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByEnglish orders the results by the english field.
func ByEnglish(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnglish, opts...).ToFunc()
}

// BySpanish orders the results by the spanish field.
func BySpanish(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpanish, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
