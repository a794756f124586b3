// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mindmorph/ent/pipelinerunevent"
)

// PipelineRunEventCreate is the builder for creating a PipelineRunEvent entity.
type PipelineRunEventCreate struct {
	config
	mutation *PipelineRunEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PipelineRunEventCreate) SetSequence(v int64) *PipelineRunEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PipelineRunEventCreate) SetTimestamp(v time.Time) *PipelineRunEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PipelineRunEventCreate) SetNillableTimestamp(v *time.Time) *PipelineRunEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetRunID sets the "run_id" field.
func (_c *PipelineRunEventCreate) SetRunID(v string) *PipelineRunEventCreate {
	_c.mutation.SetRunID(v)
	return _c
}

// SetContentUnitID sets the "content_unit_id" field.
func (_c *PipelineRunEventCreate) SetContentUnitID(v string) *PipelineRunEventCreate {
	_c.mutation.SetContentUnitID(v)
	return _c
}

// SetIdentity sets the "identity" field.
func (_c *PipelineRunEventCreate) SetIdentity(v string) *PipelineRunEventCreate {
	_c.mutation.SetIdentity(v)
	return _c
}

// SetSourceKind sets the "source_kind" field.
func (_c *PipelineRunEventCreate) SetSourceKind(v string) *PipelineRunEventCreate {
	_c.mutation.SetSourceKind(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PipelineRunEventCreate) SetStatus(v string) *PipelineRunEventCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetFailedStage sets the "failed_stage" field.
func (_c *PipelineRunEventCreate) SetFailedStage(v string) *PipelineRunEventCreate {
	_c.mutation.SetFailedStage(v)
	return _c
}

// SetNillableFailedStage sets the "failed_stage" field if the given value is not nil.
func (_c *PipelineRunEventCreate) SetNillableFailedStage(v *string) *PipelineRunEventCreate {
	if v != nil {
		_c.SetFailedStage(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *PipelineRunEventCreate) SetErrorMessage(v string) *PipelineRunEventCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *PipelineRunEventCreate) SetNillableErrorMessage(v *string) *PipelineRunEventCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetArtifactCount sets the "artifact_count" field.
func (_c *PipelineRunEventCreate) SetArtifactCount(v int) *PipelineRunEventCreate {
	_c.mutation.SetArtifactCount(v)
	return _c
}

// SetNillableArtifactCount sets the "artifact_count" field if the given value is not nil.
func (_c *PipelineRunEventCreate) SetNillableArtifactCount(v *int) *PipelineRunEventCreate {
	if v != nil {
		_c.SetArtifactCount(*v)
	}
	return _c
}

// SetDurationMs sets the "duration_ms" field.
func (_c *PipelineRunEventCreate) SetDurationMs(v int64) *PipelineRunEventCreate {
	_c.mutation.SetDurationMs(v)
	return _c
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_c *PipelineRunEventCreate) SetNillableDurationMs(v *int64) *PipelineRunEventCreate {
	if v != nil {
		_c.SetDurationMs(*v)
	}
	return _c
}

// Mutation returns the PipelineRunEventMutation object of the builder.
func (_c *PipelineRunEventCreate) Mutation() *PipelineRunEventMutation {
	return _c.mutation
}

// Save creates the PipelineRunEvent in the database.
func (_c *PipelineRunEventCreate) Save(ctx context.Context) (*PipelineRunEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineRunEventCreate) SaveX(ctx context.Context) *PipelineRunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineRunEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := pipelinerunevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.FailedStage(); !ok {
		v := pipelinerunevent.DefaultFailedStage
		_c.mutation.SetFailedStage(v)
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		v := pipelinerunevent.DefaultErrorMessage
		_c.mutation.SetErrorMessage(v)
	}
	if _, ok := _c.mutation.ArtifactCount(); !ok {
		v := pipelinerunevent.DefaultArtifactCount
		_c.mutation.SetArtifactCount(v)
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		v := pipelinerunevent.DefaultDurationMs
		_c.mutation.SetDurationMs(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineRunEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PipelineRunEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PipelineRunEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.RunID(); !ok {
		return &ValidationError{Name: "run_id", err: errors.New(`ent: missing required field "PipelineRunEvent.run_id"`)}
	}
	if v, ok := _c.mutation.RunID(); ok {
		if err := pipelinerunevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.run_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContentUnitID(); !ok {
		return &ValidationError{Name: "content_unit_id", err: errors.New(`ent: missing required field "PipelineRunEvent.content_unit_id"`)}
	}
	if v, ok := _c.mutation.ContentUnitID(); ok {
		if err := pipelinerunevent.ContentUnitIDValidator(v); err != nil {
			return &ValidationError{Name: "content_unit_id", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.content_unit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Identity(); !ok {
		return &ValidationError{Name: "identity", err: errors.New(`ent: missing required field "PipelineRunEvent.identity"`)}
	}
	if v, ok := _c.mutation.Identity(); ok {
		if err := pipelinerunevent.IdentityValidator(v); err != nil {
			return &ValidationError{Name: "identity", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.identity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceKind(); !ok {
		return &ValidationError{Name: "source_kind", err: errors.New(`ent: missing required field "PipelineRunEvent.source_kind"`)}
	}
	if v, ok := _c.mutation.SourceKind(); ok {
		if err := pipelinerunevent.SourceKindValidator(v); err != nil {
			return &ValidationError{Name: "source_kind", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.source_kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PipelineRunEvent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := pipelinerunevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FailedStage(); !ok {
		return &ValidationError{Name: "failed_stage", err: errors.New(`ent: missing required field "PipelineRunEvent.failed_stage"`)}
	}
	if _, ok := _c.mutation.ErrorMessage(); !ok {
		return &ValidationError{Name: "error_message", err: errors.New(`ent: missing required field "PipelineRunEvent.error_message"`)}
	}
	if _, ok := _c.mutation.ArtifactCount(); !ok {
		return &ValidationError{Name: "artifact_count", err: errors.New(`ent: missing required field "PipelineRunEvent.artifact_count"`)}
	}
	if _, ok := _c.mutation.DurationMs(); !ok {
		return &ValidationError{Name: "duration_ms", err: errors.New(`ent: missing required field "PipelineRunEvent.duration_ms"`)}
	}
	return nil
}

func (_c *PipelineRunEventCreate) sqlSave(ctx context.Context) (*PipelineRunEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineRunEventCreate) createSpec() (*PipelineRunEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PipelineRunEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipelinerunevent.Table, sqlgraph.NewFieldSpec(pipelinerunevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(pipelinerunevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(pipelinerunevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.RunID(); ok {
		_spec.SetField(pipelinerunevent.FieldRunID, field.TypeString, value)
		_node.RunID = value
	}
	if value, ok := _c.mutation.ContentUnitID(); ok {
		_spec.SetField(pipelinerunevent.FieldContentUnitID, field.TypeString, value)
		_node.ContentUnitID = value
	}
	if value, ok := _c.mutation.Identity(); ok {
		_spec.SetField(pipelinerunevent.FieldIdentity, field.TypeString, value)
		_node.Identity = value
	}
	if value, ok := _c.mutation.SourceKind(); ok {
		_spec.SetField(pipelinerunevent.FieldSourceKind, field.TypeString, value)
		_node.SourceKind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(pipelinerunevent.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FailedStage(); ok {
		_spec.SetField(pipelinerunevent.FieldFailedStage, field.TypeString, value)
		_node.FailedStage = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerunevent.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = value
	}
	if value, ok := _c.mutation.ArtifactCount(); ok {
		_spec.SetField(pipelinerunevent.FieldArtifactCount, field.TypeInt, value)
		_node.ArtifactCount = value
	}
	if value, ok := _c.mutation.DurationMs(); ok {
		_spec.SetField(pipelinerunevent.FieldDurationMs, field.TypeInt64, value)
		_node.DurationMs = value
	}
	return _node, _spec
}

// PipelineRunEventCreateBulk is the builder for creating many PipelineRunEvent entities in bulk.
type PipelineRunEventCreateBulk struct {
	config
	err      error
	builders []*PipelineRunEventCreate
}

// Save creates the PipelineRunEvent entities in the database.
func (_c *PipelineRunEventCreateBulk) Save(ctx context.Context) ([]*PipelineRunEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PipelineRunEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineRunEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PipelineRunEventCreateBulk) SaveX(ctx context.Context) []*PipelineRunEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineRunEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineRunEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
