package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Message is a direct message between two users, relayed live over the
// WebSocket hub when the recipient is connected.
type Message struct {
	ent.Schema
}

func (Message) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
		SoftDeleteMixin{},
	}
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("sender_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.UUID("recipient_id", uuid.UUID{}).
			Comment("FK → users.id"),

		field.Text("content").
			NotEmpty(),

		field.Time("read_at").
			Optional().
			Nillable(),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("sender_id", "recipient_id", "created_at"),
		index.Fields("recipient_id", "created_at"),
	}
}
