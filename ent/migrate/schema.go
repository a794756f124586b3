// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ArtifactsColumns holds the columns for the "artifacts" table.
	ArtifactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "artifact_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeString},
		{Name: "question", Type: field.TypeString},
		{Name: "answer", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "correct_index", Type: field.TypeInt, Default: 0},
		{Name: "category", Type: field.TypeString},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "source_unit_id", Type: field.TypeString},
		{Name: "batch_order", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "interval_days", Type: field.TypeFloat64, Default: 0},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "repetitions", Type: field.TypeInt, Default: 0},
		{Name: "lapses", Type: field.TypeInt, Default: 0},
		{Name: "due_at", Type: field.TypeTime},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "review_version", Type: field.TypeInt64, Default: 0},
	}
	// ArtifactsTable holds the schema information for the "artifacts" table.
	ArtifactsTable = &schema.Table{
		Name:       "artifacts",
		Columns:    ArtifactsColumns,
		PrimaryKey: []*schema.Column{ArtifactsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "artifact_artifact_id",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[1]},
			},
			{
				Name:    "artifact_due_at",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[16]},
			},
			{
				Name:    "artifact_kind",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[2]},
			},
			{
				Name:    "artifact_source_unit_id",
				Unique:  false,
				Columns: []*schema.Column{ArtifactsColumns[9]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// PipelineRunEventsColumns holds the columns for the "pipeline_run_events" table.
	PipelineRunEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "run_id", Type: field.TypeString},
		{Name: "content_unit_id", Type: field.TypeString},
		{Name: "identity", Type: field.TypeString},
		{Name: "source_kind", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "failed_stage", Type: field.TypeString, Default: ""},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "artifact_count", Type: field.TypeInt, Default: 0},
		{Name: "duration_ms", Type: field.TypeInt64, Default: 0},
	}
	// PipelineRunEventsTable holds the schema information for the "pipeline_run_events" table.
	PipelineRunEventsTable = &schema.Table{
		Name:       "pipeline_run_events",
		Columns:    PipelineRunEventsColumns,
		PrimaryKey: []*schema.Column{PipelineRunEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipelinerunevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunEventsColumns[1]},
			},
			{
				Name:    "pipelinerunevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunEventsColumns[2]},
			},
			{
				Name:    "pipelinerunevent_run_id",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunEventsColumns[3]},
			},
			{
				Name:    "pipelinerunevent_identity",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunEventsColumns[5]},
			},
			{
				Name:    "pipelinerunevent_status",
				Unique:  false,
				Columns: []*schema.Column{PipelineRunEventsColumns[7]},
			},
		},
	}
	// ReviewEventsColumns holds the columns for the "review_events" table.
	ReviewEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "identity", Type: field.TypeString},
		{Name: "artifact_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "day", Type: field.TypeString},
		{Name: "interval_days", Type: field.TypeFloat64},
		{Name: "ease_factor", Type: field.TypeFloat64},
		{Name: "repetitions", Type: field.TypeInt},
	}
	// ReviewEventsTable holds the schema information for the "review_events" table.
	ReviewEventsTable = &schema.Table{
		Name:       "review_events",
		Columns:    ReviewEventsColumns,
		PrimaryKey: []*schema.Column{ReviewEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[1]},
			},
			{
				Name:    "reviewevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[2]},
			},
			{
				Name:    "reviewevent_identity_day",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[3], ReviewEventsColumns[7]},
			},
			{
				Name:    "reviewevent_artifact_id",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[4]},
			},
			{
				Name:    "reviewevent_correct",
				Unique:  false,
				Columns: []*schema.Column{ReviewEventsColumns[6]},
			},
		},
	}
	// UsageRecordsColumns holds the columns for the "usage_records" table.
	UsageRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "identity", Type: field.TypeString, Unique: true},
		{Name: "identity_kind", Type: field.TypeString},
		{Name: "used_count", Type: field.TypeInt, Default: 0},
		{Name: "quota", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsageRecordsTable holds the schema information for the "usage_records" table.
	UsageRecordsTable = &schema.Table{
		Name:       "usage_records",
		Columns:    UsageRecordsColumns,
		PrimaryKey: []*schema.Column{UsageRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usagerecord_identity",
				Unique:  false,
				Columns: []*schema.Column{UsageRecordsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ArtifactsTable,
		LlmRequestEventsTable,
		PipelineRunEventsTable,
		ReviewEventsTable,
		UsageRecordsTable,
	}
)

func init() {
}
