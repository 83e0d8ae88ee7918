package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// ScheduleException is a per-date override of the weekly rule. CANCELLED
// carries no times; ADDED/CHANGED carry both. date is normalized to UTC
// midnight so the unique index and lookups line up.
type ScheduleException struct {
	ent.Schema
}

func (ScheduleException) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (ScheduleException) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctor_profiles.id"),

		field.Time("date").
			Comment("Calendar day, UTC midnight"),

		field.Enum("type").
			Values("CANCELLED", "ADDED", "CHANGED"),

		field.String("start").
			Optional().
			Nillable().
			MaxLen(5).
			Comment("HH:mm"),

		field.String("end").
			Optional().
			Nillable().
			MaxLen(5).
			Comment("HH:mm"),

		field.String("reason").
			Optional().
			Nillable().
			MaxLen(255),
	}
}

func (ScheduleException) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "date").Unique(),
	}
}
