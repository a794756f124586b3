// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/mindmorph/ent/pipelinerunevent"
)

// PipelineRunEvent is the model entity for the PipelineRunEvent schema.
type PipelineRunEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Pipeline run ID (UUID)
	RunID string `json:"run_id,omitempty"`
	// ContentUnitID holds the value of the "content_unit_id" field.
	ContentUnitID string `json:"content_unit_id,omitempty"`
	// Identity that submitted the run
	Identity string `json:"identity,omitempty"`
	// text, document, or audio
	SourceKind string `json:"source_kind,omitempty"`
	// succeeded, failed, or cancelled
	Status string `json:"status,omitempty"`
	// Stage name when status is failed, empty otherwise
	FailedStage string `json:"failed_stage,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// Artifacts committed (0 unless succeeded)
	ArtifactCount int `json:"artifact_count,omitempty"`
	// DurationMs holds the value of the "duration_ms" field.
	DurationMs   int64 `json:"duration_ms,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PipelineRunEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipelinerunevent.FieldID, pipelinerunevent.FieldSequence, pipelinerunevent.FieldArtifactCount, pipelinerunevent.FieldDurationMs:
			values[i] = new(sql.NullInt64)
		case pipelinerunevent.FieldRunID, pipelinerunevent.FieldContentUnitID, pipelinerunevent.FieldIdentity, pipelinerunevent.FieldSourceKind, pipelinerunevent.FieldStatus, pipelinerunevent.FieldFailedStage, pipelinerunevent.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case pipelinerunevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PipelineRunEvent fields.
func (_m *PipelineRunEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipelinerunevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case pipelinerunevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case pipelinerunevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case pipelinerunevent.FieldRunID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field run_id", values[i])
			} else if value.Valid {
				_m.RunID = value.String
			}
		case pipelinerunevent.FieldContentUnitID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_unit_id", values[i])
			} else if value.Valid {
				_m.ContentUnitID = value.String
			}
		case pipelinerunevent.FieldIdentity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field identity", values[i])
			} else if value.Valid {
				_m.Identity = value.String
			}
		case pipelinerunevent.FieldSourceKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_kind", values[i])
			} else if value.Valid {
				_m.SourceKind = value.String
			}
		case pipelinerunevent.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case pipelinerunevent.FieldFailedStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field failed_stage", values[i])
			} else if value.Valid {
				_m.FailedStage = value.String
			}
		case pipelinerunevent.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case pipelinerunevent.FieldArtifactCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field artifact_count", values[i])
			} else if value.Valid {
				_m.ArtifactCount = int(value.Int64)
			}
		case pipelinerunevent.FieldDurationMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field duration_ms", values[i])
			} else if value.Valid {
				_m.DurationMs = value.Int64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PipelineRunEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PipelineRunEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PipelineRunEvent.
// Note that you need to call PipelineRunEvent.Unwrap() before calling this method if this PipelineRunEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PipelineRunEvent) Update() *PipelineRunEventUpdateOne {
	return NewPipelineRunEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PipelineRunEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PipelineRunEvent) Unwrap() *PipelineRunEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PipelineRunEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PipelineRunEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PipelineRunEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("run_id=")
	builder.WriteString(_m.RunID)
	builder.WriteString(", ")
	builder.WriteString("content_unit_id=")
	builder.WriteString(_m.ContentUnitID)
	builder.WriteString(", ")
	builder.WriteString("identity=")
	builder.WriteString(_m.Identity)
	builder.WriteString(", ")
	builder.WriteString("source_kind=")
	builder.WriteString(_m.SourceKind)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("failed_stage=")
	builder.WriteString(_m.FailedStage)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("artifact_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ArtifactCount))
	builder.WriteString(", ")
	builder.WriteString("duration_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.DurationMs))
	builder.WriteByte(')')
	return builder.String()
}

// PipelineRunEvents is a parsable slice of PipelineRunEvent.
type PipelineRunEvents []*PipelineRunEvent
