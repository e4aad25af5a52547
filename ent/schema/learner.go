package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Learner is a registered profile. The id is a UUID assigned by the
// application, not a database auto-increment.
type Learner struct {
	ent.Schema
}

func (Learner) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Immutable(),
		field.String("name").
			NotEmpty().
			Unique(),
		field.String("grade").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}
