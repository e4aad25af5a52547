package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BadgeEvent records a badge award.
type BadgeEvent struct {
	ent.Schema
}

func (BadgeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (BadgeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("badge_type").NotEmpty(),
		field.String("rarity").NotEmpty(),
		field.String("topic_id").Optional().Nillable(),
		field.String("topic_name").Optional().Nillable(),
		field.String("reason").NotEmpty(),
	}
}

func (BadgeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("badge_type"),
		index.Fields("rarity"),
	}
}
