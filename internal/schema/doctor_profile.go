package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// DoctorProfile is the scheduling identity of a DOCTOR user. Work days,
// exceptions, leaves and appointments all reference this id, not the user id.
type DoctorProfile struct {
	ent.Schema
}

func (DoctorProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (DoctorProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Unique().
			Comment("FK → users.id"),

		field.String("specialty").
			Optional().
			Nillable().
			MaxLen(150),

		field.Text("bio").
			Optional().
			Nillable(),
	}
}

func (DoctorProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id").Unique(),
	}
}
