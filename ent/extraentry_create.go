// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/mgarcia/palabra/ent/extraentry"
)

// ExtraEntryCreate is the builder for creating a ExtraEntry entity.
type ExtraEntryCreate struct {
	config
	mutation *ExtraEntryMutation
	hooks    []Hook
}

// SetCategory sets the "category" field.
func (_c *ExtraEntryCreate) SetCategory(v string) *ExtraEntryCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetEnglish sets the "english" field.
func (_c *ExtraEntryCreate) SetEnglish(v string) *ExtraEntryCreate {
	_c.mutation.SetEnglish(v)
	return _c
}

// SetSpanish sets the "spanish" field.
func (_c *ExtraEntryCreate) SetSpanish(v string) *ExtraEntryCreate {
	_c.mutation.SetSpanish(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtraEntryCreate) SetCreatedAt(v time.Time) *ExtraEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtraEntryCreate) SetNillableCreatedAt(v *time.Time) *ExtraEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ExtraEntryMutation object of the builder.
func (_c *ExtraEntryCreate) Mutation() *ExtraEntryMutation {
	return _c.mutation
}

// Save creates the ExtraEntry in the database.
func (_c *ExtraEntryCreate) Save(ctx context.Context) (*ExtraEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtraEntryCreate) SaveX(ctx context.Context) *ExtraEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtraEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtraEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtraEntryCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extraentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtraEntryCreate) check() error {
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "ExtraEntry.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := extraentry.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "ExtraEntry.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.English(); !ok {
		return &ValidationError{Name: "english", err: errors.New(`ent: missing required field "ExtraEntry.english"`)}
	}
	if v, ok := _c.mutation.English(); ok {
		if err := extraentry.EnglishValidator(v); err != nil {
			return &ValidationError{Name: "english", err: fmt.Errorf(`ent: validator failed for field "ExtraEntry.english": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Spanish(); !ok {
		return &ValidationError{Name: "spanish", err: errors.New(`ent: missing required field "ExtraEntry.spanish"`)}
	}
	if v, ok := _c.mutation.Spanish(); ok {
		if err := extraentry.SpanishValidator(v); err != nil {
			return &ValidationError{Name: "spanish", err: fmt.Errorf(`ent: validator failed for field "ExtraEntry.spanish": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtraEntry.created_at"`)}
	}
	return nil
}

func (_c *ExtraEntryCreate) sqlSave(ctx context.Context) (*ExtraEntry, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtraEntryCreate) createSpec() (*ExtraEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtraEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extraentry.Table, sqlgraph.NewFieldSpec(extraentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(extraentry.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.English(); ok {
		_spec.SetField(extraentry.FieldEnglish, field.TypeString, value)
		_node.English = value
	}
	if value, ok := _c.mutation.Spanish(); ok {
		_spec.SetField(extraentry.FieldSpanish, field.TypeString, value)
		_node.Spanish = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extraentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ExtraEntryCreateBulk is the builder for creating many ExtraEntry entities in bulk.
type ExtraEntryCreateBulk struct {
	config
	err      error
	builders []*ExtraEntryCreate
}

// Save creates the ExtraEntry entities in the database.
func (_c *ExtraEntryCreateBulk) Save(ctx context.Context) ([]*ExtraEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtraEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtraEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ExtraEntryCreateBulk) SaveX(ctx context.Context) []*ExtraEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtraEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtraEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
