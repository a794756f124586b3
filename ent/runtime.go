// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/mindmorph/ent/artifact"
	"github.com/abhisek/mindmorph/ent/llmrequestevent"
	"github.com/abhisek/mindmorph/ent/pipelinerunevent"
	"github.com/abhisek/mindmorph/ent/reviewevent"
	"github.com/abhisek/mindmorph/ent/schema"
	"github.com/abhisek/mindmorph/ent/usagerecord"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	artifactFields := schema.Artifact{}.Fields()
	_ = artifactFields
	// artifactDescArtifactID is the schema descriptor for artifact_id field.
	artifactDescArtifactID := artifactFields[0].Descriptor()
	// artifact.ArtifactIDValidator is a validator for the "artifact_id" field. It is called by the builders before save.
	artifact.ArtifactIDValidator = artifactDescArtifactID.Validators[0].(func(string) error)
	// artifactDescKind is the schema descriptor for kind field.
	artifactDescKind := artifactFields[1].Descriptor()
	// artifact.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	artifact.KindValidator = artifactDescKind.Validators[0].(func(string) error)
	// artifactDescQuestion is the schema descriptor for question field.
	artifactDescQuestion := artifactFields[2].Descriptor()
	// artifact.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	artifact.QuestionValidator = artifactDescQuestion.Validators[0].(func(string) error)
	// artifactDescAnswer is the schema descriptor for answer field.
	artifactDescAnswer := artifactFields[3].Descriptor()
	// artifact.AnswerValidator is a validator for the "answer" field. It is called by the builders before save.
	artifact.AnswerValidator = artifactDescAnswer.Validators[0].(func(string) error)
	// artifactDescCorrectIndex is the schema descriptor for correct_index field.
	artifactDescCorrectIndex := artifactFields[5].Descriptor()
	// artifact.DefaultCorrectIndex holds the default value on creation for the correct_index field.
	artifact.DefaultCorrectIndex = artifactDescCorrectIndex.Default.(int)
	// artifactDescCategory is the schema descriptor for category field.
	artifactDescCategory := artifactFields[6].Descriptor()
	// artifact.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	artifact.CategoryValidator = artifactDescCategory.Validators[0].(func(string) error)
	// artifactDescDifficulty is the schema descriptor for difficulty field.
	artifactDescDifficulty := artifactFields[7].Descriptor()
	// artifact.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	artifact.DifficultyValidator = artifactDescDifficulty.Validators[0].(func(string) error)
	// artifactDescSourceUnitID is the schema descriptor for source_unit_id field.
	artifactDescSourceUnitID := artifactFields[8].Descriptor()
	// artifact.SourceUnitIDValidator is a validator for the "source_unit_id" field. It is called by the builders before save.
	artifact.SourceUnitIDValidator = artifactDescSourceUnitID.Validators[0].(func(string) error)
	// artifactDescCreatedAt is the schema descriptor for created_at field.
	artifactDescCreatedAt := artifactFields[10].Descriptor()
	// artifact.DefaultCreatedAt holds the default value on creation for the created_at field.
	artifact.DefaultCreatedAt = artifactDescCreatedAt.Default.(func() time.Time)
	// artifactDescIntervalDays is the schema descriptor for interval_days field.
	artifactDescIntervalDays := artifactFields[11].Descriptor()
	// artifact.DefaultIntervalDays holds the default value on creation for the interval_days field.
	artifact.DefaultIntervalDays = artifactDescIntervalDays.Default.(float64)
	// artifactDescEaseFactor is the schema descriptor for ease_factor field.
	artifactDescEaseFactor := artifactFields[12].Descriptor()
	// artifact.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	artifact.DefaultEaseFactor = artifactDescEaseFactor.Default.(float64)
	// artifactDescRepetitions is the schema descriptor for repetitions field.
	artifactDescRepetitions := artifactFields[13].Descriptor()
	// artifact.DefaultRepetitions holds the default value on creation for the repetitions field.
	artifact.DefaultRepetitions = artifactDescRepetitions.Default.(int)
	// artifactDescLapses is the schema descriptor for lapses field.
	artifactDescLapses := artifactFields[14].Descriptor()
	// artifact.DefaultLapses holds the default value on creation for the lapses field.
	artifact.DefaultLapses = artifactDescLapses.Default.(int)
	// artifactDescReviewVersion is the schema descriptor for review_version field.
	artifactDescReviewVersion := artifactFields[17].Descriptor()
	// artifact.DefaultReviewVersion holds the default value on creation for the review_version field.
	artifact.DefaultReviewVersion = artifactDescReviewVersion.Default.(int64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	pipelineruneventMixin := schema.PipelineRunEvent{}.Mixin()
	pipelineruneventMixinFields0 := pipelineruneventMixin[0].Fields()
	_ = pipelineruneventMixinFields0
	pipelineruneventFields := schema.PipelineRunEvent{}.Fields()
	_ = pipelineruneventFields
	// pipelineruneventDescTimestamp is the schema descriptor for timestamp field.
	pipelineruneventDescTimestamp := pipelineruneventMixinFields0[1].Descriptor()
	// pipelinerunevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	pipelinerunevent.DefaultTimestamp = pipelineruneventDescTimestamp.Default.(func() time.Time)
	// pipelineruneventDescRunID is the schema descriptor for run_id field.
	pipelineruneventDescRunID := pipelineruneventFields[0].Descriptor()
	// pipelinerunevent.RunIDValidator is a validator for the "run_id" field. It is called by the builders before save.
	pipelinerunevent.RunIDValidator = pipelineruneventDescRunID.Validators[0].(func(string) error)
	// pipelineruneventDescContentUnitID is the schema descriptor for content_unit_id field.
	pipelineruneventDescContentUnitID := pipelineruneventFields[1].Descriptor()
	// pipelinerunevent.ContentUnitIDValidator is a validator for the "content_unit_id" field. It is called by the builders before save.
	pipelinerunevent.ContentUnitIDValidator = pipelineruneventDescContentUnitID.Validators[0].(func(string) error)
	// pipelineruneventDescIdentity is the schema descriptor for identity field.
	pipelineruneventDescIdentity := pipelineruneventFields[2].Descriptor()
	// pipelinerunevent.IdentityValidator is a validator for the "identity" field. It is called by the builders before save.
	pipelinerunevent.IdentityValidator = pipelineruneventDescIdentity.Validators[0].(func(string) error)
	// pipelineruneventDescSourceKind is the schema descriptor for source_kind field.
	pipelineruneventDescSourceKind := pipelineruneventFields[3].Descriptor()
	// pipelinerunevent.SourceKindValidator is a validator for the "source_kind" field. It is called by the builders before save.
	pipelinerunevent.SourceKindValidator = pipelineruneventDescSourceKind.Validators[0].(func(string) error)
	// pipelineruneventDescStatus is the schema descriptor for status field.
	pipelineruneventDescStatus := pipelineruneventFields[4].Descriptor()
	// pipelinerunevent.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	pipelinerunevent.StatusValidator = pipelineruneventDescStatus.Validators[0].(func(string) error)
	// pipelineruneventDescFailedStage is the schema descriptor for failed_stage field.
	pipelineruneventDescFailedStage := pipelineruneventFields[5].Descriptor()
	// pipelinerunevent.DefaultFailedStage holds the default value on creation for the failed_stage field.
	pipelinerunevent.DefaultFailedStage = pipelineruneventDescFailedStage.Default.(string)
	// pipelineruneventDescErrorMessage is the schema descriptor for error_message field.
	pipelineruneventDescErrorMessage := pipelineruneventFields[6].Descriptor()
	// pipelinerunevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	pipelinerunevent.DefaultErrorMessage = pipelineruneventDescErrorMessage.Default.(string)
	// pipelineruneventDescArtifactCount is the schema descriptor for artifact_count field.
	pipelineruneventDescArtifactCount := pipelineruneventFields[7].Descriptor()
	// pipelinerunevent.DefaultArtifactCount holds the default value on creation for the artifact_count field.
	pipelinerunevent.DefaultArtifactCount = pipelineruneventDescArtifactCount.Default.(int)
	// pipelineruneventDescDurationMs is the schema descriptor for duration_ms field.
	pipelineruneventDescDurationMs := pipelineruneventFields[8].Descriptor()
	// pipelinerunevent.DefaultDurationMs holds the default value on creation for the duration_ms field.
	pipelinerunevent.DefaultDurationMs = pipelineruneventDescDurationMs.Default.(int64)
	revieweventMixin := schema.ReviewEvent{}.Mixin()
	revieweventMixinFields0 := revieweventMixin[0].Fields()
	_ = revieweventMixinFields0
	revieweventFields := schema.ReviewEvent{}.Fields()
	_ = revieweventFields
	// revieweventDescTimestamp is the schema descriptor for timestamp field.
	revieweventDescTimestamp := revieweventMixinFields0[1].Descriptor()
	// reviewevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewevent.DefaultTimestamp = revieweventDescTimestamp.Default.(func() time.Time)
	// revieweventDescIdentity is the schema descriptor for identity field.
	revieweventDescIdentity := revieweventFields[0].Descriptor()
	// reviewevent.IdentityValidator is a validator for the "identity" field. It is called by the builders before save.
	reviewevent.IdentityValidator = revieweventDescIdentity.Validators[0].(func(string) error)
	// revieweventDescArtifactID is the schema descriptor for artifact_id field.
	revieweventDescArtifactID := revieweventFields[1].Descriptor()
	// reviewevent.ArtifactIDValidator is a validator for the "artifact_id" field. It is called by the builders before save.
	reviewevent.ArtifactIDValidator = revieweventDescArtifactID.Validators[0].(func(string) error)
	// revieweventDescKind is the schema descriptor for kind field.
	revieweventDescKind := revieweventFields[2].Descriptor()
	// reviewevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	reviewevent.KindValidator = revieweventDescKind.Validators[0].(func(string) error)
	// revieweventDescDay is the schema descriptor for day field.
	revieweventDescDay := revieweventFields[4].Descriptor()
	// reviewevent.DayValidator is a validator for the "day" field. It is called by the builders before save.
	reviewevent.DayValidator = revieweventDescDay.Validators[0].(func(string) error)
	usagerecordFields := schema.UsageRecord{}.Fields()
	_ = usagerecordFields
	// usagerecordDescIdentity is the schema descriptor for identity field.
	usagerecordDescIdentity := usagerecordFields[0].Descriptor()
	// usagerecord.IdentityValidator is a validator for the "identity" field. It is called by the builders before save.
	usagerecord.IdentityValidator = usagerecordDescIdentity.Validators[0].(func(string) error)
	// usagerecordDescIdentityKind is the schema descriptor for identity_kind field.
	usagerecordDescIdentityKind := usagerecordFields[1].Descriptor()
	// usagerecord.IdentityKindValidator is a validator for the "identity_kind" field. It is called by the builders before save.
	usagerecord.IdentityKindValidator = usagerecordDescIdentityKind.Validators[0].(func(string) error)
	// usagerecordDescUsedCount is the schema descriptor for used_count field.
	usagerecordDescUsedCount := usagerecordFields[2].Descriptor()
	// usagerecord.DefaultUsedCount holds the default value on creation for the used_count field.
	usagerecord.DefaultUsedCount = usagerecordDescUsedCount.Default.(int)
	// usagerecordDescCreatedAt is the schema descriptor for created_at field.
	usagerecordDescCreatedAt := usagerecordFields[4].Descriptor()
	// usagerecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	usagerecord.DefaultCreatedAt = usagerecordDescCreatedAt.Default.(func() time.Time)
}
