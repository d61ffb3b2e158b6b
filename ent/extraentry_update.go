// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgarcia/palabra/ent/extraentry"
	"github.com/mgarcia/palabra/ent/predicate"
)

// ExtraEntryUpdate is the builder for updating ExtraEntry entities.
type ExtraEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ExtraEntryMutation
}

// Where appends a list predicates to the ExtraEntryUpdate builder.
func (_u *ExtraEntryUpdate) Where(ps ...predicate.ExtraEntry) *ExtraEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *ExtraEntryUpdate) SetCategory(v string) *ExtraEntryUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtraEntryUpdate) SetNillableCategory(v *string) *ExtraEntryUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetEnglish sets the "english" field.
func (_u *ExtraEntryUpdate) SetEnglish(v string) *ExtraEntryUpdate {
	_u.mutation.SetEnglish(v)
	return _u
}

// SetNillableEnglish sets the "english" field if the given value is not nil.
func (_u *ExtraEntryUpdate) SetNillableEnglish(v *string) *ExtraEntryUpdate {
	if v != nil {
		_u.SetEnglish(*v)
	}
	return _u
}

// SetSpanish sets the "spanish" field.
func (_u *ExtraEntryUpdate) SetSpanish(v string) *ExtraEntryUpdate {
	_u.mutation.SetSpanish(v)
	return _u
}

// SetNillableSpanish sets the "spanish" field if the given value is not nil.
func (_u *ExtraEntryUpdate) SetNillableSpanish(v *string) *ExtraEntryUpdate {
	if v != nil {
		_u.SetSpanish(*v)
	}
	return _u
}

// Mutation returns the ExtraEntryMutation object of the builder.
func (_u *ExtraEntryUpdate) Mutation() *ExtraEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtraEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtraEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtraEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtraEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtraEntryUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := extraentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExtraEntry.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.English(); ok {
		if err := extraentry.EnglishValidator(v); err != nil {
			return &ValidationError{Name: "english", err: fmt.Errorf(`ent: validator failed for field "ExtraEntry.english": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Spanish(); ok {
		if err := extraentry.SpanishValidator(v); err != nil {
			return &ValidationError{Name: "spanish", err: fmt.Errorf(`ent: validator failed for field "ExtraEntry.spanish": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtraEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraentry.Table, extraentry.Columns, sqlgraph.NewFieldSpec(extraentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extraentry.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.English(); ok {
		_spec.SetField(extraentry.FieldEnglish, field.TypeString, value)
	}
	if value, ok := _u.mutation.Spanish(); ok {
		_spec.SetField(extraentry.FieldSpanish, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtraEntryUpdateOne is the builder for updating a single ExtraEntry entity.
type ExtraEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtraEntryMutation
}

// SetCategory sets the "category" field.
func (_u *ExtraEntryUpdateOne) SetCategory(v string) *ExtraEntryUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *ExtraEntryUpdateOne) SetNillableCategory(v *string) *ExtraEntryUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetEnglish sets the "english" field.
func (_u *ExtraEntryUpdateOne) SetEnglish(v string) *ExtraEntryUpdateOne {
	_u.mutation.SetEnglish(v)
	return _u
}

// SetNillableEnglish sets the "english" field if the given value is not nil.
func (_u *ExtraEntryUpdateOne) SetNillableEnglish(v *string) *ExtraEntryUpdateOne {
	if v != nil {
		_u.SetEnglish(*v)
	}
	return _u
}

// SetSpanish sets the "spanish" field.
func (_u *ExtraEntryUpdateOne) SetSpanish(v string) *ExtraEntryUpdateOne {
	_u.mutation.SetSpanish(v)
	return _u
}

// SetNillableSpanish sets the "spanish" field if the given value is not nil.
func (_u *ExtraEntryUpdateOne) SetNillableSpanish(v *string) *ExtraEntryUpdateOne {
	if v != nil {
		_u.SetSpanish(*v)
	}
	return _u
}

// Mutation returns the ExtraEntryMutation object of the builder.
func (_u *ExtraEntryUpdateOne) Mutation() *ExtraEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtraEntryUpdate builder.
func (_u *ExtraEntryUpdateOne) Where(ps ...predicate.ExtraEntry) *ExtraEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtraEntryUpdateOne) Select(field string, fields ...string) *ExtraEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtraEntry entity.
func (_u *ExtraEntryUpdateOne) Save(ctx context.Context) (*ExtraEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtraEntryUpdateOne) SaveX(ctx context.Context) *ExtraEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtraEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtraEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtraEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := extraentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExtraEntry.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.English(); ok {
		if err := extraentry.EnglishValidator(v); err != nil {
			return &ValidationError{Name: "english", err: fmt.Errorf(`ent: validator failed for field "ExtraEntry.english": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Spanish(); ok {
		if err := extraentry.SpanishValidator(v); err != nil {
			return &ValidationError{Name: "spanish", err: fmt.Errorf(`ent: validator failed for field "ExtraEntry.spanish": %w`, err)}
		}
	}
	return nil
}

func (_u *ExtraEntryUpdateOne) sqlSave(ctx context.Context) (_node *ExtraEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraentry.Table, extraentry.Columns, sqlgraph.NewFieldSpec(extraentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtraEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extraentry.FieldID)
		for _, f := range fields {
			if !extraentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extraentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(extraentry.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.English(); ok {
		_spec.SetField(extraentry.FieldEnglish, field.TypeString, value)
	}
	if value, ok := _u.mutation.Spanish(); ok {
		_spec.SetField(extraentry.FieldSpanish, field.TypeString, value)
	}
	_node = &ExtraEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
