// Code generated by ent, DO NOT EDIT.

package pipelinerunevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mindmorph/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldTimestamp, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldRunID, v))
}

// ContentUnitID applies equality check predicate on the "content_unit_id" field. It's identical to ContentUnitIDEQ.
func ContentUnitID(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldContentUnitID, v))
}

// Identity applies equality check predicate on the "identity" field. It's identical to IdentityEQ.
func Identity(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldIdentity, v))
}

// SourceKind applies equality check predicate on the "source_kind" field. It's identical to SourceKindEQ.
func SourceKind(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldSourceKind, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldStatus, v))
}

// FailedStage applies equality check predicate on the "failed_stage" field. It's identical to FailedStageEQ.
func FailedStage(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldFailedStage, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ArtifactCount applies equality check predicate on the "artifact_count" field. It's identical to ArtifactCountEQ.
func ArtifactCount(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldArtifactCount, v))
}

// DurationMs applies equality check predicate on the "duration_ms" field. It's identical to DurationMsEQ.
func DurationMs(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldDurationMs, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldTimestamp, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContainsFold(FieldRunID, v))
}

// ContentUnitIDEQ applies the EQ predicate on the "content_unit_id" field.
func ContentUnitIDEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldContentUnitID, v))
}

// ContentUnitIDNEQ applies the NEQ predicate on the "content_unit_id" field.
func ContentUnitIDNEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldContentUnitID, v))
}

// ContentUnitIDIn applies the In predicate on the "content_unit_id" field.
func ContentUnitIDIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldContentUnitID, vs...))
}

// ContentUnitIDNotIn applies the NotIn predicate on the "content_unit_id" field.
func ContentUnitIDNotIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldContentUnitID, vs...))
}

// ContentUnitIDGT applies the GT predicate on the "content_unit_id" field.
func ContentUnitIDGT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldContentUnitID, v))
}

// ContentUnitIDGTE applies the GTE predicate on the "content_unit_id" field.
func ContentUnitIDGTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldContentUnitID, v))
}

// ContentUnitIDLT applies the LT predicate on the "content_unit_id" field.
func ContentUnitIDLT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldContentUnitID, v))
}

// ContentUnitIDLTE applies the LTE predicate on the "content_unit_id" field.
func ContentUnitIDLTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldContentUnitID, v))
}

// ContentUnitIDContains applies the Contains predicate on the "content_unit_id" field.
func ContentUnitIDContains(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContains(FieldContentUnitID, v))
}

// ContentUnitIDHasPrefix applies the HasPrefix predicate on the "content_unit_id" field.
func ContentUnitIDHasPrefix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasPrefix(FieldContentUnitID, v))
}

// ContentUnitIDHasSuffix applies the HasSuffix predicate on the "content_unit_id" field.
func ContentUnitIDHasSuffix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasSuffix(FieldContentUnitID, v))
}

// ContentUnitIDEqualFold applies the EqualFold predicate on the "content_unit_id" field.
func ContentUnitIDEqualFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEqualFold(FieldContentUnitID, v))
}

// ContentUnitIDContainsFold applies the ContainsFold predicate on the "content_unit_id" field.
func ContentUnitIDContainsFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContainsFold(FieldContentUnitID, v))
}

// IdentityEQ applies the EQ predicate on the "identity" field.
func IdentityEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldIdentity, v))
}

// IdentityNEQ applies the NEQ predicate on the "identity" field.
func IdentityNEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldIdentity, v))
}

// IdentityIn applies the In predicate on the "identity" field.
func IdentityIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldIdentity, vs...))
}

// IdentityNotIn applies the NotIn predicate on the "identity" field.
func IdentityNotIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldIdentity, vs...))
}

// IdentityGT applies the GT predicate on the "identity" field.
func IdentityGT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldIdentity, v))
}

// IdentityGTE applies the GTE predicate on the "identity" field.
func IdentityGTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldIdentity, v))
}

// IdentityLT applies the LT predicate on the "identity" field.
func IdentityLT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldIdentity, v))
}

// IdentityLTE applies the LTE predicate on the "identity" field.
func IdentityLTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldIdentity, v))
}

// IdentityContains applies the Contains predicate on the "identity" field.
func IdentityContains(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContains(FieldIdentity, v))
}

// IdentityHasPrefix applies the HasPrefix predicate on the "identity" field.
func IdentityHasPrefix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasPrefix(FieldIdentity, v))
}

// IdentityHasSuffix applies the HasSuffix predicate on the "identity" field.
func IdentityHasSuffix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasSuffix(FieldIdentity, v))
}

// IdentityEqualFold applies the EqualFold predicate on the "identity" field.
func IdentityEqualFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEqualFold(FieldIdentity, v))
}

// IdentityContainsFold applies the ContainsFold predicate on the "identity" field.
func IdentityContainsFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContainsFold(FieldIdentity, v))
}

// SourceKindEQ applies the EQ predicate on the "source_kind" field.
func SourceKindEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldSourceKind, v))
}

// SourceKindNEQ applies the NEQ predicate on the "source_kind" field.
func SourceKindNEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldSourceKind, v))
}

// SourceKindIn applies the In predicate on the "source_kind" field.
func SourceKindIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldSourceKind, vs...))
}

// SourceKindNotIn applies the NotIn predicate on the "source_kind" field.
func SourceKindNotIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldSourceKind, vs...))
}

// SourceKindGT applies the GT predicate on the "source_kind" field.
func SourceKindGT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldSourceKind, v))
}

// SourceKindGTE applies the GTE predicate on the "source_kind" field.
func SourceKindGTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldSourceKind, v))
}

// SourceKindLT applies the LT predicate on the "source_kind" field.
func SourceKindLT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldSourceKind, v))
}

// SourceKindLTE applies the LTE predicate on the "source_kind" field.
func SourceKindLTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldSourceKind, v))
}

// SourceKindContains applies the Contains predicate on the "source_kind" field.
func SourceKindContains(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContains(FieldSourceKind, v))
}

// SourceKindHasPrefix applies the HasPrefix predicate on the "source_kind" field.
func SourceKindHasPrefix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasPrefix(FieldSourceKind, v))
}

// SourceKindHasSuffix applies the HasSuffix predicate on the "source_kind" field.
func SourceKindHasSuffix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasSuffix(FieldSourceKind, v))
}

// SourceKindEqualFold applies the EqualFold predicate on the "source_kind" field.
func SourceKindEqualFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEqualFold(FieldSourceKind, v))
}

// SourceKindContainsFold applies the ContainsFold predicate on the "source_kind" field.
func SourceKindContainsFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContainsFold(FieldSourceKind, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContainsFold(FieldStatus, v))
}

// FailedStageEQ applies the EQ predicate on the "failed_stage" field.
func FailedStageEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldFailedStage, v))
}

// FailedStageNEQ applies the NEQ predicate on the "failed_stage" field.
func FailedStageNEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldFailedStage, v))
}

// FailedStageIn applies the In predicate on the "failed_stage" field.
func FailedStageIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldFailedStage, vs...))
}

// FailedStageNotIn applies the NotIn predicate on the "failed_stage" field.
func FailedStageNotIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldFailedStage, vs...))
}

// FailedStageGT applies the GT predicate on the "failed_stage" field.
func FailedStageGT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldFailedStage, v))
}

// FailedStageGTE applies the GTE predicate on the "failed_stage" field.
func FailedStageGTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldFailedStage, v))
}

// FailedStageLT applies the LT predicate on the "failed_stage" field.
func FailedStageLT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldFailedStage, v))
}

// FailedStageLTE applies the LTE predicate on the "failed_stage" field.
func FailedStageLTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldFailedStage, v))
}

// FailedStageContains applies the Contains predicate on the "failed_stage" field.
func FailedStageContains(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContains(FieldFailedStage, v))
}

// FailedStageHasPrefix applies the HasPrefix predicate on the "failed_stage" field.
func FailedStageHasPrefix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasPrefix(FieldFailedStage, v))
}

// FailedStageHasSuffix applies the HasSuffix predicate on the "failed_stage" field.
func FailedStageHasSuffix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasSuffix(FieldFailedStage, v))
}

// FailedStageEqualFold applies the EqualFold predicate on the "failed_stage" field.
func FailedStageEqualFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEqualFold(FieldFailedStage, v))
}

// FailedStageContainsFold applies the ContainsFold predicate on the "failed_stage" field.
func FailedStageContainsFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContainsFold(FieldFailedStage, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ArtifactCountEQ applies the EQ predicate on the "artifact_count" field.
func ArtifactCountEQ(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldArtifactCount, v))
}

// ArtifactCountNEQ applies the NEQ predicate on the "artifact_count" field.
func ArtifactCountNEQ(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldArtifactCount, v))
}

// ArtifactCountIn applies the In predicate on the "artifact_count" field.
func ArtifactCountIn(vs ...int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldArtifactCount, vs...))
}

// ArtifactCountNotIn applies the NotIn predicate on the "artifact_count" field.
func ArtifactCountNotIn(vs ...int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldArtifactCount, vs...))
}

// ArtifactCountGT applies the GT predicate on the "artifact_count" field.
func ArtifactCountGT(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldArtifactCount, v))
}

// ArtifactCountGTE applies the GTE predicate on the "artifact_count" field.
func ArtifactCountGTE(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldArtifactCount, v))
}

// ArtifactCountLT applies the LT predicate on the "artifact_count" field.
func ArtifactCountLT(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldArtifactCount, v))
}

// ArtifactCountLTE applies the LTE predicate on the "artifact_count" field.
func ArtifactCountLTE(v int) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldArtifactCount, v))
}

// DurationMsEQ applies the EQ predicate on the "duration_ms" field.
func DurationMsEQ(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldEQ(FieldDurationMs, v))
}

// DurationMsNEQ applies the NEQ predicate on the "duration_ms" field.
func DurationMsNEQ(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNEQ(FieldDurationMs, v))
}

// DurationMsIn applies the In predicate on the "duration_ms" field.
func DurationMsIn(vs ...int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldIn(FieldDurationMs, vs...))
}

// DurationMsNotIn applies the NotIn predicate on the "duration_ms" field.
func DurationMsNotIn(vs ...int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldNotIn(FieldDurationMs, vs...))
}

// DurationMsGT applies the GT predicate on the "duration_ms" field.
func DurationMsGT(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGT(FieldDurationMs, v))
}

// DurationMsGTE applies the GTE predicate on the "duration_ms" field.
func DurationMsGTE(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldGTE(FieldDurationMs, v))
}

// DurationMsLT applies the LT predicate on the "duration_ms" field.
func DurationMsLT(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLT(FieldDurationMs, v))
}

// DurationMsLTE applies the LTE predicate on the "duration_ms" field.
func DurationMsLTE(v int64) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.FieldLTE(FieldDurationMs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PipelineRunEvent) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PipelineRunEvent) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PipelineRunEvent) predicate.PipelineRunEvent {
	return predicate.PipelineRunEvent(sql.NotPredicates(p))
}
