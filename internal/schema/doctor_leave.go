package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DoctorLeave is a date-range unavailability period. Ranges for one doctor
// never overlap; the service enforces this on create.
type DoctorLeave struct {
	ent.Schema
}

func (DoctorLeave) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DoctorLeave) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctor_profiles.id"),

		field.Time("start_date"),

		field.Time("end_date"),

		field.String("reason").
			MaxLen(255),
	}
}

func (DoctorLeave) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "start_date"),
	}
}
