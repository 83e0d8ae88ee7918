// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dermee/dermee_backend/internal/repo/scheduleexception"
	"github.com/google/uuid"
)

// ScheduleExceptionCreate is the builder for creating a ScheduleException entity.
type ScheduleExceptionCreate struct {
	config
	mutation *ScheduleExceptionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduleExceptionCreate) SetCreatedAt(v time.Time) *ScheduleExceptionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduleExceptionCreate) SetNillableCreatedAt(v *time.Time) *ScheduleExceptionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ScheduleExceptionCreate) SetUpdatedAt(v time.Time) *ScheduleExceptionCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ScheduleExceptionCreate) SetNillableUpdatedAt(v *time.Time) *ScheduleExceptionCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDoctorID sets the "doctor_id" field.
func (_c *ScheduleExceptionCreate) SetDoctorID(v uuid.UUID) *ScheduleExceptionCreate {
	_c.mutation.SetDoctorID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *ScheduleExceptionCreate) SetDate(v time.Time) *ScheduleExceptionCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetType sets the "type" field.
func (_c *ScheduleExceptionCreate) SetType(v scheduleexception.Type) *ScheduleExceptionCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetStart sets the "start" field.
func (_c *ScheduleExceptionCreate) SetStart(v string) *ScheduleExceptionCreate {
	_c.mutation.SetStart(v)
	return _c
}

// SetNillableStart sets the "start" field if the given value is not nil.
func (_c *ScheduleExceptionCreate) SetNillableStart(v *string) *ScheduleExceptionCreate {
	if v != nil {
		_c.SetStart(*v)
	}
	return _c
}

// SetEnd sets the "end" field.
func (_c *ScheduleExceptionCreate) SetEnd(v string) *ScheduleExceptionCreate {
	_c.mutation.SetEnd(v)
	return _c
}

// SetNillableEnd sets the "end" field if the given value is not nil.
func (_c *ScheduleExceptionCreate) SetNillableEnd(v *string) *ScheduleExceptionCreate {
	if v != nil {
		_c.SetEnd(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *ScheduleExceptionCreate) SetReason(v string) *ScheduleExceptionCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ScheduleExceptionCreate) SetNillableReason(v *string) *ScheduleExceptionCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduleExceptionCreate) SetID(v uuid.UUID) *ScheduleExceptionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ScheduleExceptionCreate) SetNillableID(v *uuid.UUID) *ScheduleExceptionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ScheduleExceptionMutation object of the builder.
func (_c *ScheduleExceptionCreate) Mutation() *ScheduleExceptionMutation {
	return _c.mutation
}

// Save creates the ScheduleException in the database.
func (_c *ScheduleExceptionCreate) Save(ctx context.Context) (*ScheduleException, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduleExceptionCreate) SaveX(ctx context.Context) *ScheduleException {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleExceptionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleExceptionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduleExceptionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduleexception.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := scheduleexception.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := scheduleexception.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduleExceptionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "ScheduleException.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "ScheduleException.updated_at"`)}
	}
	if _, ok := _c.mutation.DoctorID(); !ok {
		return &ValidationError{Name: "doctor_id", err: errors.New(`repo: missing required field "ScheduleException.doctor_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`repo: missing required field "ScheduleException.date"`)}
	}
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`repo: missing required field "ScheduleException.type"`)}
	}
	if v, ok := _c.mutation.GetType(); ok {
		if err := scheduleexception.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "ScheduleException.type": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Start(); ok {
		if err := scheduleexception.StartValidator(v); err != nil {
			return &ValidationError{Name: "start", err: fmt.Errorf(`repo: validator failed for field "ScheduleException.start": %w`, err)}
		}
	}
	if v, ok := _c.mutation.End(); ok {
		if err := scheduleexception.EndValidator(v); err != nil {
			return &ValidationError{Name: "end", err: fmt.Errorf(`repo: validator failed for field "ScheduleException.end": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := scheduleexception.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "ScheduleException.reason": %w`, err)}
		}
	}
	return nil
}

func (_c *ScheduleExceptionCreate) sqlSave(ctx context.Context) (*ScheduleException, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduleExceptionCreate) createSpec() (*ScheduleException, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduleException{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduleexception.Table, sqlgraph.NewFieldSpec(scheduleexception.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduleexception.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduleexception.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DoctorID(); ok {
		_spec.SetField(scheduleexception.FieldDoctorID, field.TypeUUID, value)
		_node.DoctorID = value
	}
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(scheduleexception.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(scheduleexception.FieldType, field.TypeEnum, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Start(); ok {
		_spec.SetField(scheduleexception.FieldStart, field.TypeString, value)
		_node.Start = &value
	}
	if value, ok := _c.mutation.End(); ok {
		_spec.SetField(scheduleexception.FieldEnd, field.TypeString, value)
		_node.End = &value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(scheduleexception.FieldReason, field.TypeString, value)
		_node.Reason = &value
	}
	return _node, _spec
}

// ScheduleExceptionCreateBulk is the builder for creating many ScheduleException entities in bulk.
type ScheduleExceptionCreateBulk struct {
	config
	err      error
	builders []*ScheduleExceptionCreate
}

// Save creates the ScheduleException entities in the database.
func (_c *ScheduleExceptionCreateBulk) Save(ctx context.Context) ([]*ScheduleException, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduleException, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduleExceptionMutation)
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
func (_c *ScheduleExceptionCreateBulk) SaveX(ctx context.Context) []*ScheduleException {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduleExceptionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduleExceptionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
