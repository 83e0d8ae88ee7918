// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dermee/dermee_backend/internal/repo/predicate"
	"github.com/dermee/dermee_backend/internal/repo/scheduleexception"
)

// ScheduleExceptionDelete is the builder for deleting a ScheduleException entity.
type ScheduleExceptionDelete struct {
	config
	hooks    []Hook
	mutation *ScheduleExceptionMutation
}

// Where appends a list predicates to the ScheduleExceptionDelete builder.
func (_d *ScheduleExceptionDelete) Where(ps ...predicate.ScheduleException) *ScheduleExceptionDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ScheduleExceptionDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScheduleExceptionDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ScheduleExceptionDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(scheduleexception.Table, sqlgraph.NewFieldSpec(scheduleexception.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ScheduleExceptionDeleteOne is the builder for deleting a single ScheduleException entity.
type ScheduleExceptionDeleteOne struct {
	_d *ScheduleExceptionDelete
}

// Where appends a list predicates to the ScheduleExceptionDelete builder.
func (_d *ScheduleExceptionDeleteOne) Where(ps ...predicate.ScheduleException) *ScheduleExceptionDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ScheduleExceptionDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{scheduleexception.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ScheduleExceptionDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
