// Code generated by ent, DO NOT EDIT.

package scheduleexception

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/dermee/dermee_backend/internal/repo/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldUpdatedAt, v))
}

// DoctorID applies equality check predicate on the "doctor_id" field. It's identical to DoctorIDEQ.
func DoctorID(v uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldDoctorID, v))
}

// Date applies equality check predicate on the "date" field. It's identical to DateEQ.
func Date(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldDate, v))
}

// Start applies equality check predicate on the "start" field. It's identical to StartEQ.
func Start(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldStart, v))
}

// End applies equality check predicate on the "end" field. It's identical to EndEQ.
func End(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldEnd, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldReason, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLTE(FieldUpdatedAt, v))
}

// DoctorIDEQ applies the EQ predicate on the "doctor_id" field.
func DoctorIDEQ(v uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldDoctorID, v))
}

// DoctorIDNEQ applies the NEQ predicate on the "doctor_id" field.
func DoctorIDNEQ(v uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNEQ(FieldDoctorID, v))
}

// DoctorIDIn applies the In predicate on the "doctor_id" field.
func DoctorIDIn(vs ...uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldIn(FieldDoctorID, vs...))
}

// DoctorIDNotIn applies the NotIn predicate on the "doctor_id" field.
func DoctorIDNotIn(vs ...uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNotIn(FieldDoctorID, vs...))
}

// DoctorIDGT applies the GT predicate on the "doctor_id" field.
func DoctorIDGT(v uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGT(FieldDoctorID, v))
}

// DoctorIDGTE applies the GTE predicate on the "doctor_id" field.
func DoctorIDGTE(v uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGTE(FieldDoctorID, v))
}

// DoctorIDLT applies the LT predicate on the "doctor_id" field.
func DoctorIDLT(v uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLT(FieldDoctorID, v))
}

// DoctorIDLTE applies the LTE predicate on the "doctor_id" field.
func DoctorIDLTE(v uuid.UUID) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLTE(FieldDoctorID, v))
}

// DateEQ applies the EQ predicate on the "date" field.
func DateEQ(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldDate, v))
}

// DateNEQ applies the NEQ predicate on the "date" field.
func DateNEQ(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNEQ(FieldDate, v))
}

// DateIn applies the In predicate on the "date" field.
func DateIn(vs ...time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldIn(FieldDate, vs...))
}

// DateNotIn applies the NotIn predicate on the "date" field.
func DateNotIn(vs ...time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNotIn(FieldDate, vs...))
}

// DateGT applies the GT predicate on the "date" field.
func DateGT(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGT(FieldDate, v))
}

// DateGTE applies the GTE predicate on the "date" field.
func DateGTE(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGTE(FieldDate, v))
}

// DateLT applies the LT predicate on the "date" field.
func DateLT(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLT(FieldDate, v))
}

// DateLTE applies the LTE predicate on the "date" field.
func DateLTE(v time.Time) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLTE(FieldDate, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNotIn(FieldType, vs...))
}

// StartEQ applies the EQ predicate on the "start" field.
func StartEQ(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldStart, v))
}

// StartNEQ applies the NEQ predicate on the "start" field.
func StartNEQ(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNEQ(FieldStart, v))
}

// StartIn applies the In predicate on the "start" field.
func StartIn(vs ...string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldIn(FieldStart, vs...))
}

// StartNotIn applies the NotIn predicate on the "start" field.
func StartNotIn(vs ...string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNotIn(FieldStart, vs...))
}

// StartGT applies the GT predicate on the "start" field.
func StartGT(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGT(FieldStart, v))
}

// StartGTE applies the GTE predicate on the "start" field.
func StartGTE(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGTE(FieldStart, v))
}

// StartLT applies the LT predicate on the "start" field.
func StartLT(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLT(FieldStart, v))
}

// StartLTE applies the LTE predicate on the "start" field.
func StartLTE(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLTE(FieldStart, v))
}

// StartContains applies the Contains predicate on the "start" field.
func StartContains(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldContains(FieldStart, v))
}

// StartHasPrefix applies the HasPrefix predicate on the "start" field.
func StartHasPrefix(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldHasPrefix(FieldStart, v))
}

// StartHasSuffix applies the HasSuffix predicate on the "start" field.
func StartHasSuffix(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldHasSuffix(FieldStart, v))
}

// StartIsNil applies the IsNil predicate on the "start" field.
func StartIsNil() predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldIsNull(FieldStart))
}

// StartNotNil applies the NotNil predicate on the "start" field.
func StartNotNil() predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNotNull(FieldStart))
}

// StartEqualFold applies the EqualFold predicate on the "start" field.
func StartEqualFold(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEqualFold(FieldStart, v))
}

// StartContainsFold applies the ContainsFold predicate on the "start" field.
func StartContainsFold(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldContainsFold(FieldStart, v))
}

// EndEQ applies the EQ predicate on the "end" field.
func EndEQ(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldEnd, v))
}

// EndNEQ applies the NEQ predicate on the "end" field.
func EndNEQ(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNEQ(FieldEnd, v))
}

// EndIn applies the In predicate on the "end" field.
func EndIn(vs ...string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldIn(FieldEnd, vs...))
}

// EndNotIn applies the NotIn predicate on the "end" field.
func EndNotIn(vs ...string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNotIn(FieldEnd, vs...))
}

// EndGT applies the GT predicate on the "end" field.
func EndGT(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGT(FieldEnd, v))
}

// EndGTE applies the GTE predicate on the "end" field.
func EndGTE(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGTE(FieldEnd, v))
}

// EndLT applies the LT predicate on the "end" field.
func EndLT(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLT(FieldEnd, v))
}

// EndLTE applies the LTE predicate on the "end" field.
func EndLTE(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLTE(FieldEnd, v))
}

// EndContains applies the Contains predicate on the "end" field.
func EndContains(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldContains(FieldEnd, v))
}

// EndHasPrefix applies the HasPrefix predicate on the "end" field.
func EndHasPrefix(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldHasPrefix(FieldEnd, v))
}

// EndHasSuffix applies the HasSuffix predicate on the "end" field.
func EndHasSuffix(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldHasSuffix(FieldEnd, v))
}

// EndIsNil applies the IsNil predicate on the "end" field.
func EndIsNil() predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldIsNull(FieldEnd))
}

// EndNotNil applies the NotNil predicate on the "end" field.
func EndNotNil() predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNotNull(FieldEnd))
}

// EndEqualFold applies the EqualFold predicate on the "end" field.
func EndEqualFold(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEqualFold(FieldEnd, v))
}

// EndContainsFold applies the ContainsFold predicate on the "end" field.
func EndContainsFold(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldContainsFold(FieldEnd, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonIsNil applies the IsNil predicate on the "reason" field.
func ReasonIsNil() predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldIsNull(FieldReason))
}

// ReasonNotNil applies the NotNil predicate on the "reason" field.
func ReasonNotNil() predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldNotNull(FieldReason))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.ScheduleException {
	return predicate.ScheduleException(sql.FieldContainsFold(FieldReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduleException) predicate.ScheduleException {
	return predicate.ScheduleException(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduleException) predicate.ScheduleException {
	return predicate.ScheduleException(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduleException) predicate.ScheduleException {
	return predicate.ScheduleException(sql.NotPredicates(p))
}
