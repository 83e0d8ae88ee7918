package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Appointment is a booked slot. Only SCHEDULED/CONFIRMED appointments block
// a doctor+interval; the conflict check runs inside a serializable
// transaction on every booking path.
type Appointment struct {
	ent.Schema
}

func (Appointment) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Appointment) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctor_profiles.id"),

		field.UUID("patient_id", uuid.UUID{}).
			Comment("FK → patient_profiles.id"),

		field.String("type").
			Default("GENERAL").
			MaxLen(50),

		field.Enum("state").
			Values("SCHEDULED", "PENDING", "CONFIRMED", "CANCELLED").
			Default("PENDING"),

		field.Time("start_at"),

		field.Time("end_at"),
	}
}

func (Appointment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "start_at"),
		index.Fields("patient_id", "start_at"),
		index.Fields("state"),
	}
}
