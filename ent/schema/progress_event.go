package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressEvent records curriculum actions taken from this client: starting a
// competence and submitting a quiz. The backend owns the progress records;
// this is the local activity trail shown by the journal command.
type ProgressEvent struct {
	ent.Schema
}

func (ProgressEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ProgressEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("competence_id").
			NotEmpty(),
		field.Int("competence_number").
			Default(0),
		field.String("action").
			NotEmpty().
			Comment("started or quiz_submitted"),
		field.Float("score").
			Default(0).
			Comment("Server-graded score (quiz_submitted only)"),
		field.Bool("passed").
			Default(false).
			Comment("Quiz outcome (quiz_submitted only)"),
	}
}

func (ProgressEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("competence_id"),
		index.Fields("action"),
	}
}
