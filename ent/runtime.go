// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/mgarcia/palabra/ent/extraentry"
	"github.com/mgarcia/palabra/ent/quizevent"
	"github.com/mgarcia/palabra/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extraentryFields := schema.ExtraEntry{}.Fields()
	_ = extraentryFields
	// extraentryDescCategory is the schema descriptor for category field.
	extraentryDescCategory := extraentryFields[0].Descriptor()
	// extraentry.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	extraentry.CategoryValidator = extraentryDescCategory.Validators[0].(func(string) error)
	// extraentryDescEnglish is the schema descriptor for english field.
	extraentryDescEnglish := extraentryFields[1].Descriptor()
	// extraentry.EnglishValidator is a validator for the "english" field. It is called by the builders before save.
	extraentry.EnglishValidator = extraentryDescEnglish.Validators[0].(func(string) error)
	// extraentryDescSpanish is the schema descriptor for spanish field.
	extraentryDescSpanish := extraentryFields[2].Descriptor()
	// extraentry.SpanishValidator is a validator for the "spanish" field. It is called by the builders before save.
	extraentry.SpanishValidator = extraentryDescSpanish.Validators[0].(func(string) error)
	// extraentryDescCreatedAt is the schema descriptor for created_at field.
	extraentryDescCreatedAt := extraentryFields[3].Descriptor()
	// extraentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	extraentry.DefaultCreatedAt = extraentryDescCreatedAt.Default.(func() time.Time)
	quizeventFields := schema.QuizEvent{}.Fields()
	_ = quizeventFields
	// quizeventDescSessionID is the schema descriptor for session_id field.
	quizeventDescSessionID := quizeventFields[0].Descriptor()
	// quizevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizevent.SessionIDValidator = quizeventDescSessionID.Validators[0].(func(string) error)
	// quizeventDescMode is the schema descriptor for mode field.
	quizeventDescMode := quizeventFields[1].Descriptor()
	// quizevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	quizevent.ModeValidator = quizeventDescMode.Validators[0].(func(string) error)
	// quizeventDescTimestamp is the schema descriptor for timestamp field.
	quizeventDescTimestamp := quizeventFields[4].Descriptor()
	// quizevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	quizevent.DefaultTimestamp = quizeventDescTimestamp.Default.(func() time.Time)
}
