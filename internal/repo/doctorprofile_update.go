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
	"github.com/dermee/dermee_backend/internal/repo/doctorprofile"
	"github.com/dermee/dermee_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// DoctorProfileUpdate is the builder for updating DoctorProfile entities.
type DoctorProfileUpdate struct {
	config
	hooks    []Hook
	mutation *DoctorProfileMutation
}

// Where appends a list predicates to the DoctorProfileUpdate builder.
func (_u *DoctorProfileUpdate) Where(ps ...predicate.DoctorProfile) *DoctorProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorProfileUpdate) SetUpdatedAt(v time.Time) *DoctorProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorProfileUpdate) SetUserID(v uuid.UUID) *DoctorProfileUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableUserID(v *uuid.UUID) *DoctorProfileUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *DoctorProfileUpdate) SetSpecialty(v string) *DoctorProfileUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableSpecialty(v *string) *DoctorProfileUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *DoctorProfileUpdate) ClearSpecialty() *DoctorProfileUpdate {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetBio sets the "bio" field.
func (_u *DoctorProfileUpdate) SetBio(v string) *DoctorProfileUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *DoctorProfileUpdate) SetNillableBio(v *string) *DoctorProfileUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *DoctorProfileUpdate) ClearBio() *DoctorProfileUpdate {
	_u.mutation.ClearBio()
	return _u
}

// Mutation returns the DoctorProfileMutation object of the builder.
func (_u *DoctorProfileUpdate) Mutation() *DoctorProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DoctorProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DoctorProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorProfileUpdate) check() error {
	if v, ok := _u.mutation.Specialty(); ok {
		if err := doctorprofile.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.specialty": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorprofile.Table, doctorprofile.Columns, sqlgraph.NewFieldSpec(doctorprofile.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(doctorprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(doctorprofile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(doctorprofile.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(doctorprofile.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(doctorprofile.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(doctorprofile.FieldBio, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DoctorProfileUpdateOne is the builder for updating a single DoctorProfile entity.
type DoctorProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DoctorProfileMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DoctorProfileUpdateOne) SetUpdatedAt(v time.Time) *DoctorProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DoctorProfileUpdateOne) SetUserID(v uuid.UUID) *DoctorProfileUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableUserID(v *uuid.UUID) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *DoctorProfileUpdateOne) SetSpecialty(v string) *DoctorProfileUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableSpecialty(v *string) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *DoctorProfileUpdateOne) ClearSpecialty() *DoctorProfileUpdateOne {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetBio sets the "bio" field.
func (_u *DoctorProfileUpdateOne) SetBio(v string) *DoctorProfileUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *DoctorProfileUpdateOne) SetNillableBio(v *string) *DoctorProfileUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// ClearBio clears the value of the "bio" field.
func (_u *DoctorProfileUpdateOne) ClearBio() *DoctorProfileUpdateOne {
	_u.mutation.ClearBio()
	return _u
}

// Mutation returns the DoctorProfileMutation object of the builder.
func (_u *DoctorProfileUpdateOne) Mutation() *DoctorProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the DoctorProfileUpdate builder.
func (_u *DoctorProfileUpdateOne) Where(ps ...predicate.DoctorProfile) *DoctorProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DoctorProfileUpdateOne) Select(field string, fields ...string) *DoctorProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DoctorProfile entity.
func (_u *DoctorProfileUpdateOne) Save(ctx context.Context) (*DoctorProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DoctorProfileUpdateOne) SaveX(ctx context.Context) *DoctorProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DoctorProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DoctorProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DoctorProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := doctorprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DoctorProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Specialty(); ok {
		if err := doctorprofile.SpecialtyValidator(v); err != nil {
			return &ValidationError{Name: "specialty", err: fmt.Errorf(`repo: validator failed for field "DoctorProfile.specialty": %w`, err)}
		}
	}
	return nil
}

func (_u *DoctorProfileUpdateOne) sqlSave(ctx context.Context) (_node *DoctorProfile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(doctorprofile.Table, doctorprofile.Columns, sqlgraph.NewFieldSpec(doctorprofile.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "DoctorProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, doctorprofile.FieldID)
		for _, f := range fields {
			if !doctorprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != doctorprofile.FieldID {
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
		_spec.SetField(doctorprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(doctorprofile.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(doctorprofile.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(doctorprofile.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(doctorprofile.FieldBio, field.TypeString, value)
	}
	if _u.mutation.BioCleared() {
		_spec.ClearField(doctorprofile.FieldBio, field.TypeString)
	}
	_node = &DoctorProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{doctorprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
