package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PipelineRunEvent records the outcome of one generation pipeline run.
// Live run state stays in memory; this row is the durable diagnostic trail.
type PipelineRunEvent struct {
	ent.Schema
}

func (PipelineRunEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PipelineRunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("run_id").
			NotEmpty().
			Comment("Pipeline run ID (UUID)"),
		field.String("content_unit_id").
			NotEmpty(),
		field.String("identity").
			NotEmpty().
			Comment("Identity that submitted the run"),
		field.String("source_kind").
			NotEmpty().
			Comment("text, document, or audio"),
		field.String("status").
			NotEmpty().
			Comment("succeeded, failed, or cancelled"),
		field.String("failed_stage").
			Default("").
			Comment("Stage name when status is failed, empty otherwise"),
		field.String("error_message").
			Default(""),
		field.Int("artifact_count").
			Default(0).
			Comment("Artifacts committed (0 unless succeeded)"),
		field.Int64("duration_ms").
			Default(0),
	}
}

func (PipelineRunEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("run_id"),
		index.Fields("identity"),
		index.Fields("status"),
	}
}
