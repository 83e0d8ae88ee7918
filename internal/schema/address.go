package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Address struct {
	ent.Schema
}

func (Address) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Address) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.String("city").
			MaxLen(100),

		field.String("street").
			MaxLen(255),

		field.String("postal_code").
			Optional().
			Nillable().
			MaxLen(20),
	}
}

func (Address) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
	}
}
