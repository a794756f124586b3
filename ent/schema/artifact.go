package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Artifact is one generated study item together with its review state.
// The payload fields (question, answer, options, ...) are written once by the
// generation pipeline; only the review_* columns change afterwards, and only
// through the scheduler's guarded update.
type Artifact struct {
	ent.Schema
}

func (Artifact) Fields() []ent.Field {
	return []ent.Field{
		field.String("artifact_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Globally unique artifact ID (UUID)"),
		field.String("kind").
			Immutable().
			NotEmpty().
			Comment("flashcard, multiple_choice, or fill_in_blank"),
		field.String("question").
			Immutable().
			NotEmpty().
			Comment("Question prompt. For fill-in-blank: the sentence containing the blank"),
		field.String("answer").
			Immutable().
			NotEmpty().
			Comment("Canonical answer text"),
		field.JSON("options", []string{}).
			Optional().
			Immutable().
			Comment("Ordered choices, multiple_choice only (2-6 entries)"),
		field.Int("correct_index").
			Default(0).
			Immutable().
			Comment("Index into options of the correct choice, multiple_choice only"),
		field.String("category").
			Immutable().
			NotEmpty().
			Comment("Topic label, taken from the concept-extraction stage"),
		field.String("difficulty").
			Immutable().
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.String("source_unit_id").
			Immutable().
			NotEmpty().
			Comment("ContentUnit this artifact was generated from (lookup only)"),
		field.Int("batch_order").
			Immutable().
			Comment("Position within the generated batch, for deterministic listing"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),

		// Review state (SM-2 variant). Mutated only by the scheduler.
		field.Float("interval_days").
			Default(0),
		field.Float("ease_factor").
			Default(2.5),
		field.Int("repetitions").
			Default(0),
		field.Int("lapses").
			Default(0),
		field.Time("due_at"),
		field.Time("last_reviewed_at").
			Optional().
			Nillable(),
		field.Int64("review_version").
			Default(0).
			Comment("Bumped on every review update; guards against lost updates"),
	}
}

func (Artifact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("artifact_id"),
		index.Fields("due_at"),
		index.Fields("kind"),
		index.Fields("source_unit_id"),
	}
}
