// Code generated by ent, DO NOT EDIT.

package extraentry

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/mgarcia/palabra/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldLTE(FieldID, id))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldEQ(FieldCategory, v))
}

// English applies equality check predicate on the "english" field. It's identical to EnglishEQ.
func English(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldEQ(FieldEnglish, v))
}

// Spanish applies equality check predicate on the "spanish" field. It's identical to SpanishEQ.
func Spanish(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldEQ(FieldSpanish, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldContainsFold(FieldCategory, v))
}

// EnglishEQ applies the EQ predicate on the "english" field.
func EnglishEQ(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldEQ(FieldEnglish, v))
}

// EnglishNEQ applies the NEQ predicate on the "english" field.
func EnglishNEQ(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldNEQ(FieldEnglish, v))
}

// EnglishIn applies the In predicate on the "english" field.
func EnglishIn(vs ...string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldIn(FieldEnglish, vs...))
}

// EnglishNotIn applies the NotIn predicate on the "english" field.
func EnglishNotIn(vs ...string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldNotIn(FieldEnglish, vs...))
}

// EnglishGT applies the GT predicate on the "english" field.
func EnglishGT(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldGT(FieldEnglish, v))
}

// EnglishGTE applies the GTE predicate on the "english" field.
func EnglishGTE(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldGTE(FieldEnglish, v))
}

// EnglishLT applies the LT predicate on the "english" field.
func EnglishLT(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldLT(FieldEnglish, v))
}

// EnglishLTE applies the LTE predicate on the "english" field.
func EnglishLTE(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldLTE(FieldEnglish, v))
}

// EnglishContains applies the Contains predicate on the "english" field.
func EnglishContains(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldContains(FieldEnglish, v))
}

// EnglishHasPrefix applies the HasPrefix predicate on the "english" field.
func EnglishHasPrefix(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldHasPrefix(FieldEnglish, v))
}

// EnglishHasSuffix applies the HasSuffix predicate on the "english" field.
func EnglishHasSuffix(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldHasSuffix(FieldEnglish, v))
}

// EnglishEqualFold applies the EqualFold predicate on the "english" field.
func EnglishEqualFold(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldEqualFold(FieldEnglish, v))
}

// EnglishContainsFold applies the ContainsFold predicate on the "english" field.
func EnglishContainsFold(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldContainsFold(FieldEnglish, v))
}

// SpanishEQ applies the EQ predicate on the "spanish" field.
func SpanishEQ(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldEQ(FieldSpanish, v))
}

// SpanishNEQ applies the NEQ predicate on the "spanish" field.
func SpanishNEQ(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldNEQ(FieldSpanish, v))
}

// SpanishIn applies the In predicate on the "spanish" field.
func SpanishIn(vs ...string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldIn(FieldSpanish, vs...))
}

// SpanishNotIn applies the NotIn predicate on the "spanish" field.
func SpanishNotIn(vs ...string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldNotIn(FieldSpanish, vs...))
}

// SpanishGT applies the GT predicate on the "spanish" field.
func SpanishGT(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldGT(FieldSpanish, v))
}

// SpanishGTE applies the GTE predicate on the "spanish" field.
func SpanishGTE(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldGTE(FieldSpanish, v))
}

// SpanishLT applies the LT predicate on the "spanish" field.
func SpanishLT(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldLT(FieldSpanish, v))
}

// SpanishLTE applies the LTE predicate on the "spanish" field.
func SpanishLTE(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldLTE(FieldSpanish, v))
}

// SpanishContains applies the Contains predicate on the "spanish" field.
func SpanishContains(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldContains(FieldSpanish, v))
}

// SpanishHasPrefix applies the HasPrefix predicate on the "spanish" field.
func SpanishHasPrefix(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldHasPrefix(FieldSpanish, v))
}

// SpanishHasSuffix applies the HasSuffix predicate on the "spanish" field.
func SpanishHasSuffix(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldHasSuffix(FieldSpanish, v))
}

// SpanishEqualFold applies the EqualFold predicate on the "spanish" field.
func SpanishEqualFold(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldEqualFold(FieldSpanish, v))
}

// SpanishContainsFold applies the ContainsFold predicate on the "spanish" field.
func SpanishContainsFold(v string) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldContainsFold(FieldSpanish, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtraEntry) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtraEntry) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtraEntry) predicate.ExtraEntry {
	return predicate.ExtraEntry(sql.NotPredicates(p))
}
