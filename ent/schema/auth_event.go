package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuthEvent records session lifecycle outcomes observed by the client:
// restore attempts, token exchanges, login redirects and logouts.
type AuthEvent struct {
	ent.Schema
}

func (AuthEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AuthEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("action").
			NotEmpty().
			Comment("restore, exchange, login_redirect or logout"),
		field.Bool("success").
			Comment("Outcome of the backend call; a restore miss is success=false"),
		field.String("user_id").
			Optional().
			Comment("Authenticated user id, when known"),
		field.String("message").
			Optional().
			Comment("Error detail on failure"),
	}
}

func (AuthEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
	}
}
