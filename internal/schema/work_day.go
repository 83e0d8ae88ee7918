package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// WorkDay is a doctor's recurring weekly availability window, one row per
// weekday.
type WorkDay struct {
	ent.Schema
}

func (WorkDay) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (WorkDay) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("doctor_id", uuid.UUID{}).
			Comment("FK → doctor_profiles.id"),

		field.Int8("day").
			Min(0).
			Max(6).
			Comment("0=Sunday, 1=Monday … 6=Saturday"),

		field.String("start_time").
			MaxLen(5).
			Comment("HH:mm"),

		field.String("end_time").
			MaxLen(5).
			Comment("HH:mm"),
	}
}

func (WorkDay) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("doctor_id", "day").Unique(),
	}
}
