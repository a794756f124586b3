package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEvent records a single answer during review. This is the answer log
// that streak and badge computation read; it is append-only.
type ReviewEvent struct {
	ent.Schema
}

func (ReviewEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ReviewEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("identity").
			NotEmpty().
			Comment("Identity that answered"),
		field.String("artifact_id").
			NotEmpty().
			Comment("Artifact that was reviewed"),
		field.String("kind").
			NotEmpty().
			Comment("Artifact kind at time of review"),
		field.Bool("correct"),
		field.String("day").
			NotEmpty().
			Comment("Calendar day of the review (YYYY-MM-DD, UTC), for streak queries"),
		field.Float("interval_days").
			Comment("Interval assigned by this review"),
		field.Float("ease_factor").
			Comment("Ease factor after this review"),
		field.Int("repetitions").
			Comment("Repetition count after this review"),
	}
}

func (ReviewEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("identity", "day"),
		index.Fields("artifact_id"),
		index.Fields("correct"),
	}
}
