package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// UsageRecord tracks pipeline invocations per identity for the free-tier gate.
// One row per identity; used_count only ever grows within a record's lifetime.
type UsageRecord struct {
	ent.Schema
}

func (UsageRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("identity").
			Unique().
			NotEmpty().
			Comment("Identity key: anon:<session-id> or user:<user-id>"),
		field.String("identity_kind").
			NotEmpty().
			Comment("anonymous or authenticated"),
		field.Int("used_count").
			Default(0).
			Comment("Pipeline invocations consumed"),
		field.Int("quota").
			Comment("Max invocations; -1 means unlimited"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (UsageRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("identity"),
	}
}
