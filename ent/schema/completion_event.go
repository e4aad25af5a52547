package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records a learner finishing a topic.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic_id").NotEmpty(),
		field.String("topic_name").NotEmpty(),
		field.Float("hours_spent").Default(0),
		field.Bool("forced").
			Default(false).
			Comment("Recorded despite unmet prerequisites"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic_id"),
		index.Fields("learner_id", "topic_id"),
	}
}
