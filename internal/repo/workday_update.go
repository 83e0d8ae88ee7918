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
	"github.com/dermee/dermee_backend/internal/repo/workday"
	"github.com/google/uuid"
)

// WorkDayUpdate is the builder for updating WorkDay entities.
type WorkDayUpdate struct {
	config
	hooks    []Hook
	mutation *WorkDayMutation
}

// Where appends a list predicates to the WorkDayUpdate builder.
func (_u *WorkDayUpdate) Where(ps ...predicate.WorkDay) *WorkDayUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkDayUpdate) SetUpdatedAt(v time.Time) *WorkDayUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *WorkDayUpdate) SetDoctorID(v uuid.UUID) *WorkDayUpdate {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *WorkDayUpdate) SetNillableDoctorID(v *uuid.UUID) *WorkDayUpdate {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *WorkDayUpdate) SetDay(v int8) *WorkDayUpdate {
	_u.mutation.ResetDay()
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *WorkDayUpdate) SetNillableDay(v *int8) *WorkDayUpdate {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// AddDay adds value to the "day" field.
func (_u *WorkDayUpdate) AddDay(v int8) *WorkDayUpdate {
	_u.mutation.AddDay(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *WorkDayUpdate) SetStartTime(v string) *WorkDayUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *WorkDayUpdate) SetNillableStartTime(v *string) *WorkDayUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *WorkDayUpdate) SetEndTime(v string) *WorkDayUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *WorkDayUpdate) SetNillableEndTime(v *string) *WorkDayUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// Mutation returns the WorkDayMutation object of the builder.
func (_u *WorkDayUpdate) Mutation() *WorkDayMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkDayUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkDayUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkDayUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkDayUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkDayUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workday.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkDayUpdate) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := workday.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "WorkDay.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := workday.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "WorkDay.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := workday.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "WorkDay.end_time": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkDayUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workday.Table, workday.Columns, sqlgraph.NewFieldSpec(workday.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(workday.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(workday.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(workday.FieldDay, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDay(); ok {
		_spec.AddField(workday.FieldDay, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(workday.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(workday.FieldEndTime, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkDayUpdateOne is the builder for updating a single WorkDay entity.
type WorkDayUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkDayMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WorkDayUpdateOne) SetUpdatedAt(v time.Time) *WorkDayUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDoctorID sets the "doctor_id" field.
func (_u *WorkDayUpdateOne) SetDoctorID(v uuid.UUID) *WorkDayUpdateOne {
	_u.mutation.SetDoctorID(v)
	return _u
}

// SetNillableDoctorID sets the "doctor_id" field if the given value is not nil.
func (_u *WorkDayUpdateOne) SetNillableDoctorID(v *uuid.UUID) *WorkDayUpdateOne {
	if v != nil {
		_u.SetDoctorID(*v)
	}
	return _u
}

// SetDay sets the "day" field.
func (_u *WorkDayUpdateOne) SetDay(v int8) *WorkDayUpdateOne {
	_u.mutation.ResetDay()
	_u.mutation.SetDay(v)
	return _u
}

// SetNillableDay sets the "day" field if the given value is not nil.
func (_u *WorkDayUpdateOne) SetNillableDay(v *int8) *WorkDayUpdateOne {
	if v != nil {
		_u.SetDay(*v)
	}
	return _u
}

// AddDay adds value to the "day" field.
func (_u *WorkDayUpdateOne) AddDay(v int8) *WorkDayUpdateOne {
	_u.mutation.AddDay(v)
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *WorkDayUpdateOne) SetStartTime(v string) *WorkDayUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *WorkDayUpdateOne) SetNillableStartTime(v *string) *WorkDayUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *WorkDayUpdateOne) SetEndTime(v string) *WorkDayUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *WorkDayUpdateOne) SetNillableEndTime(v *string) *WorkDayUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// Mutation returns the WorkDayMutation object of the builder.
func (_u *WorkDayUpdateOne) Mutation() *WorkDayMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkDayUpdate builder.
func (_u *WorkDayUpdateOne) Where(ps ...predicate.WorkDay) *WorkDayUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkDayUpdateOne) Select(field string, fields ...string) *WorkDayUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkDay entity.
func (_u *WorkDayUpdateOne) Save(ctx context.Context) (*WorkDay, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkDayUpdateOne) SaveX(ctx context.Context) *WorkDay {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkDayUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkDayUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WorkDayUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := workday.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkDayUpdateOne) check() error {
	if v, ok := _u.mutation.Day(); ok {
		if err := workday.DayValidator(v); err != nil {
			return &ValidationError{Name: "day", err: fmt.Errorf(`repo: validator failed for field "WorkDay.day": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartTime(); ok {
		if err := workday.StartTimeValidator(v); err != nil {
			return &ValidationError{Name: "start_time", err: fmt.Errorf(`repo: validator failed for field "WorkDay.start_time": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndTime(); ok {
		if err := workday.EndTimeValidator(v); err != nil {
			return &ValidationError{Name: "end_time", err: fmt.Errorf(`repo: validator failed for field "WorkDay.end_time": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkDayUpdateOne) sqlSave(ctx context.Context) (_node *WorkDay, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workday.Table, workday.Columns, sqlgraph.NewFieldSpec(workday.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "WorkDay.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workday.FieldID)
		for _, f := range fields {
			if !workday.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != workday.FieldID {
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
		_spec.SetField(workday.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DoctorID(); ok {
		_spec.SetField(workday.FieldDoctorID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Day(); ok {
		_spec.SetField(workday.FieldDay, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.AddedDay(); ok {
		_spec.AddField(workday.FieldDay, field.TypeInt8, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(workday.FieldStartTime, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(workday.FieldEndTime, field.TypeString, value)
	}
	_node = &WorkDay{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workday.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
