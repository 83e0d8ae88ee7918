// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dermee/dermee_backend/internal/repo/predicate"
	"github.com/dermee/dermee_backend/internal/repo/scheduleexception"
	"github.com/google/uuid"
)

// ScheduleExceptionUpdate is the builder for updating ScheduleException entities.
type ScheduleExceptionUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduleExceptionMutation
}

// Where appends a list predicates to the ScheduleExceptionUpdate builder.
func (_u *ScheduleExceptionUpdate) Where(ps ...predicate.ScheduleException) *ScheduleExceptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduleExceptionUpdate) SetUpdatedAt(v time.Time) *ScheduleExceptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *ScheduleExceptionUpdate) SetDoctorID(v uuid.UUID) *ScheduleExceptionUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *ScheduleExceptionUpdate) SetNillableDoctorID(v *uuid.UUID) *ScheduleExceptionUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *ScheduleExceptionUpdate) SetDate(v time.Time) *ScheduleExceptionUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ScheduleExceptionUpdate) SetNillableDate(v *time.Time) *ScheduleExceptionUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ScheduleExceptionUpdate) SetType(v scheduleexception.Type) *ScheduleExceptionUpdate {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ScheduleExceptionUpdate) SetNillableType(v *scheduleexception.Type) *ScheduleExceptionUpdate {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStart sets the "start" field.
func (_u *ScheduleExceptionUpdate) SetStart(v string) *ScheduleExceptionUpdate {
	_u.mutation.SetStart(v)
	return _u
}

// SetNillableStart sets the "start" field if the given value is not nil.
func (_u *ScheduleExceptionUpdate) SetNillableStart(v *string) *ScheduleExceptionUpdate {
	if v != nil {
		_u.SetStart(*v)
	}
	return _u
}

// ClearStart clears the value of the "start" field.
func (_u *ScheduleExceptionUpdate) ClearStart() *ScheduleExceptionUpdate {
	_u.mutation.ClearStart()
	return _u
}

// SetEnd sets the "end" field.
func (_u *ScheduleExceptionUpdate) SetEnd(v string) *ScheduleExceptionUpdate {
	_u.mutation.SetEnd(v)
	return _u
}

// SetNillableEnd sets the "end" field if the given value is not nil.
func (_u *ScheduleExceptionUpdate) SetNillableEnd(v *string) *ScheduleExceptionUpdate {
	if v != nil {
		_u.SetEnd(*v)
	}
	return _u
}

// ClearEnd clears the value of the "end" field.
func (_u *ScheduleExceptionUpdate) ClearEnd() *ScheduleExceptionUpdate {
	_u.mutation.ClearEnd()
	return _u
}

// SetReason sets the "reason" field.
func (_u *ScheduleExceptionUpdate) SetReason(v string) *ScheduleExceptionUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ScheduleExceptionUpdate) SetNillableReason(v *string) *ScheduleExceptionUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ScheduleExceptionUpdate) ClearReason() *ScheduleExceptionUpdate {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the ScheduleExceptionMutation object of the builder.
func (_u *ScheduleExceptionUpdate) Mutation() *ScheduleExceptionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduleExceptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleExceptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduleExceptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleExceptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduleExceptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduleexception.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduleExceptionUpdate) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := scheduleexception.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "ScheduleException.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Start(); ok {
		if err := scheduleexception.StartValidator(v); err != nil {
			return &ValidationError{Name: "start", err: fmt.Errorf(`repo: validator failed for field "ScheduleException.start": %w`, err)}
		}
	}
	if v, ok := _u.mutation.End(); ok {
		if err := scheduleexception.EndValidator(v); err != nil {
			return &ValidationError{Name: "end", err: fmt.Errorf(`repo: validator failed for field "ScheduleException.end": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := scheduleexception.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "ScheduleException.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduleExceptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduleexception.Table, scheduleexception.Columns, sqlgraph.NewFieldSpec(scheduleexception.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduleexception.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(scheduleexception.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(scheduleexception.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(scheduleexception.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Start(); ok {
		_spec.SetField(scheduleexception.FieldStart, field.TypeString, value)
	}
	if _u.mutation.StartCleared() {
		_spec.ClearField(scheduleexception.FieldStart, field.TypeString)
	}
	if value, ok := _u.mutation.End(); ok {
		_spec.SetField(scheduleexception.FieldEnd, field.TypeString, value)
	}
	if _u.mutation.EndCleared() {
		_spec.ClearField(scheduleexception.FieldEnd, field.TypeString)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(scheduleexception.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(scheduleexception.FieldReason, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduleexception.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduleExceptionUpdateOne is the builder for updating a single ScheduleException entity.
type ScheduleExceptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduleExceptionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ScheduleExceptionUpdateOne) SetUpdatedAt(v time.Time) *ScheduleExceptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *ScheduleExceptionUpdateOne) SetDoctorID(v uuid.UUID) *ScheduleExceptionUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *ScheduleExceptionUpdateOne) SetNillableDoctorID(v *uuid.UUID) *ScheduleExceptionUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *ScheduleExceptionUpdateOne) SetDate(v time.Time) *ScheduleExceptionUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *ScheduleExceptionUpdateOne) SetNillableDate(v *time.Time) *ScheduleExceptionUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetType sets the "type" field.
func (_u *ScheduleExceptionUpdateOne) SetType(v scheduleexception.Type) *ScheduleExceptionUpdateOne {
	_u.mutation.SetType(v)
	return _u
}

// SetNillableType sets the "type" field if the given value is not nil.
func (_u *ScheduleExceptionUpdateOne) SetNillableType(v *scheduleexception.Type) *ScheduleExceptionUpdateOne {
	if v != nil {
		_u.SetType(*v)
	}
	return _u
}

// SetStart sets the "start" field.
func (_u *ScheduleExceptionUpdateOne) SetStart(v string) *ScheduleExceptionUpdateOne {
	_u.mutation.SetStart(v)
	return _u
}

// SetNillableStart sets the "start" field if the given value is not nil.
func (_u *ScheduleExceptionUpdateOne) SetNillableStart(v *string) *ScheduleExceptionUpdateOne {
	if v != nil {
		_u.SetStart(*v)
	}
	return _u
}

// ClearStart clears the value of the "start" field.
func (_u *ScheduleExceptionUpdateOne) ClearStart() *ScheduleExceptionUpdateOne {
	_u.mutation.ClearStart()
	return _u
}

// SetEnd sets the "end" field.
func (_u *ScheduleExceptionUpdateOne) SetEnd(v string) *ScheduleExceptionUpdateOne {
	_u.mutation.SetEnd(v)
	return _u
}

// SetNillableEnd sets the "end" field if the given value is not nil.
func (_u *ScheduleExceptionUpdateOne) SetNillableEnd(v *string) *ScheduleExceptionUpdateOne {
	if v != nil {
		_u.SetEnd(*v)
	}
	return _u
}

// ClearEnd clears the value of the "end" field.
func (_u *ScheduleExceptionUpdateOne) ClearEnd() *ScheduleExceptionUpdateOne {
	_u.mutation.ClearEnd()
	return _u
}

// SetReason sets the "reason" field.
func (_u *ScheduleExceptionUpdateOne) SetReason(v string) *ScheduleExceptionUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ScheduleExceptionUpdateOne) SetNillableReason(v *string) *ScheduleExceptionUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// ClearReason clears the value of the "reason" field.
func (_u *ScheduleExceptionUpdateOne) ClearReason() *ScheduleExceptionUpdateOne {
	_u.mutation.ClearReason()
	return _u
}

// Mutation returns the ScheduleExceptionMutation object of the builder.
func (_u *ScheduleExceptionUpdateOne) Mutation() *ScheduleExceptionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduleExceptionUpdate builder.
func (_u *ScheduleExceptionUpdateOne) Where(ps ...predicate.ScheduleException) *ScheduleExceptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduleExceptionUpdateOne) Select(field string, fields ...string) *ScheduleExceptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduleException entity.
func (_u *ScheduleExceptionUpdateOne) Save(ctx context.Context) (*ScheduleException, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduleExceptionUpdateOne) SaveX(ctx context.Context) *ScheduleException {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduleExceptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduleExceptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ScheduleExceptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := scheduleexception.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduleExceptionUpdateOne) check() error {
	if v, ok := _u.mutation.GetType(); ok {
		if err := scheduleexception.TypeValidator(v); err != nil {
			return &ValidationError{Name: "type", err: fmt.Errorf(`repo: validator failed for field "ScheduleException.type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Start(); ok {
		if err := scheduleexception.StartValidator(v); err != nil {
			return &ValidationError{Name: "start", err: fmt.Errorf(`repo: validator failed for field "ScheduleException.start": %w`, err)}
		}
	}
	if v, ok := _u.mutation.End(); ok {
		if err := scheduleexception.EndValidator(v); err != nil {
			return &ValidationError{Name: "end", err: fmt.Errorf(`repo: validator failed for field "ScheduleException.end": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := scheduleexception.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`repo: validator failed for field "ScheduleException.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *ScheduleExceptionUpdateOne) sqlSave(ctx context.Context) (_node *ScheduleException, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduleexception.Table, scheduleexception.Columns, sqlgraph.NewFieldSpec(scheduleexception.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "ScheduleException.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduleexception.FieldID)
		for _, f := range fields {
			if !scheduleexception.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != scheduleexception.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(scheduleexception.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(scheduleexception.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(scheduleexception.FieldDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.GetType(); ok {
		_spec.SetField(scheduleexception.FieldType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Start(); ok {
		_spec.SetField(scheduleexception.FieldStart, field.TypeString, value)
	}
	if _u.mutation.StartCleared() {
		_spec.ClearField(scheduleexception.FieldStart, field.TypeString)
	}
	if value, ok := _u.mutation.End(); ok {
		_spec.SetField(scheduleexception.FieldEnd, field.TypeString, value)
	}
	if _u.mutation.EndCleared() {
		_spec.ClearField(scheduleexception.FieldEnd, field.TypeString)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(scheduleexception.FieldReason, field.TypeString, value)
	}
	if _u.mutation.ReasonCleared() {
		_spec.ClearField(scheduleexception.FieldReason, field.TypeString)
	}
	_node = &ScheduleException{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduleexception.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
