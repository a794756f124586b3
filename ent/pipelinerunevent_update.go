// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mindmorph/ent/pipelinerunevent"
	"github.com/abhisek/mindmorph/ent/predicate"
)

// PipelineRunEventUpdate is the builder for updating PipelineRunEvent entities.
type PipelineRunEventUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineRunEventMutation
}

// Where appends a list predicates to the PipelineRunEventUpdate builder.
func (_u *PipelineRunEventUpdate) Where(ps ...predicate.PipelineRunEvent) *PipelineRunEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRunID sets the "run_id" field.
func (_u *PipelineRunEventUpdate) SetRunID(v string) *PipelineRunEventUpdate {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableRunID(v *string) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetContentUnitID sets the "content_unit_id" field.
func (_u *PipelineRunEventUpdate) SetContentUnitID(v string) *PipelineRunEventUpdate {
	_u.mutation.SetContentUnitID(v)
	return _u
}

// SetNillableContentUnitID sets the "content_unit_id" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableContentUnitID(v *string) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetContentUnitID(*v)
	}
	return _u
}

// SetIdentity sets the "identity" field.
func (_u *PipelineRunEventUpdate) SetIdentity(v string) *PipelineRunEventUpdate {
	_u.mutation.SetIdentity(v)
	return _u
}

// SetNillableIdentity sets the "identity" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableIdentity(v *string) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetIdentity(*v)
	}
	return _u
}

// SetSourceKind sets the "source_kind" field.
func (_u *PipelineRunEventUpdate) SetSourceKind(v string) *PipelineRunEventUpdate {
	_u.mutation.SetSourceKind(v)
	return _u
}

// SetNillableSourceKind sets the "source_kind" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableSourceKind(v *string) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetSourceKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunEventUpdate) SetStatus(v string) *PipelineRunEventUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableStatus(v *string) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailedStage sets the "failed_stage" field.
func (_u *PipelineRunEventUpdate) SetFailedStage(v string) *PipelineRunEventUpdate {
	_u.mutation.SetFailedStage(v)
	return _u
}

// SetNillableFailedStage sets the "failed_stage" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableFailedStage(v *string) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetFailedStage(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineRunEventUpdate) SetErrorMessage(v string) *PipelineRunEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableErrorMessage(v *string) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetArtifactCount sets the "artifact_count" field.
func (_u *PipelineRunEventUpdate) SetArtifactCount(v int) *PipelineRunEventUpdate {
	_u.mutation.ResetArtifactCount()
	_u.mutation.SetArtifactCount(v)
	return _u
}

// SetNillableArtifactCount sets the "artifact_count" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableArtifactCount(v *int) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetArtifactCount(*v)
	}
	return _u
}

// AddArtifactCount adds value to the "artifact_count" field.
func (_u *PipelineRunEventUpdate) AddArtifactCount(v int) *PipelineRunEventUpdate {
	_u.mutation.AddArtifactCount(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *PipelineRunEventUpdate) SetDurationMs(v int64) *PipelineRunEventUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *PipelineRunEventUpdate) SetNillableDurationMs(v *int64) *PipelineRunEventUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *PipelineRunEventUpdate) AddDurationMs(v int64) *PipelineRunEventUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the PipelineRunEventMutation object of the builder.
func (_u *PipelineRunEventUpdate) Mutation() *PipelineRunEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineRunEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineRunEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunEventUpdate) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := pipelinerunevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentUnitID(); ok {
		if err := pipelinerunevent.ContentUnitIDValidator(v); err != nil {
			return &ValidationError{Name: "content_unit_id", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.content_unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Identity(); ok {
		if err := pipelinerunevent.IdentityValidator(v); err != nil {
			return &ValidationError{Name: "identity", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.identity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceKind(); ok {
		if err := pipelinerunevent.SourceKindValidator(v); err != nil {
			return &ValidationError{Name: "source_kind", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.source_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerunevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerunevent.Table, pipelinerunevent.Columns, sqlgraph.NewFieldSpec(pipelinerunevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(pipelinerunevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentUnitID(); ok {
		_spec.SetField(pipelinerunevent.FieldContentUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Identity(); ok {
		_spec.SetField(pipelinerunevent.FieldIdentity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceKind(); ok {
		_spec.SetField(pipelinerunevent.FieldSourceKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerunevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailedStage(); ok {
		_spec.SetField(pipelinerunevent.FieldFailedStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerunevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactCount(); ok {
		_spec.SetField(pipelinerunevent.FieldArtifactCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArtifactCount(); ok {
		_spec.AddField(pipelinerunevent.FieldArtifactCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(pipelinerunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(pipelinerunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerunevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineRunEventUpdateOne is the builder for updating a single PipelineRunEvent entity.
type PipelineRunEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineRunEventMutation
}

// SetRunID sets the "run_id" field.
func (_u *PipelineRunEventUpdateOne) SetRunID(v string) *PipelineRunEventUpdateOne {
	_u.mutation.SetRunID(v)
	return _u
}

// SetNillableRunID sets the "run_id" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableRunID(v *string) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetRunID(*v)
	}
	return _u
}

// SetContentUnitID sets the "content_unit_id" field.
func (_u *PipelineRunEventUpdateOne) SetContentUnitID(v string) *PipelineRunEventUpdateOne {
	_u.mutation.SetContentUnitID(v)
	return _u
}

// SetNillableContentUnitID sets the "content_unit_id" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableContentUnitID(v *string) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetContentUnitID(*v)
	}
	return _u
}

// SetIdentity sets the "identity" field.
func (_u *PipelineRunEventUpdateOne) SetIdentity(v string) *PipelineRunEventUpdateOne {
	_u.mutation.SetIdentity(v)
	return _u
}

// SetNillableIdentity sets the "identity" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableIdentity(v *string) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetIdentity(*v)
	}
	return _u
}

// SetSourceKind sets the "source_kind" field.
func (_u *PipelineRunEventUpdateOne) SetSourceKind(v string) *PipelineRunEventUpdateOne {
	_u.mutation.SetSourceKind(v)
	return _u
}

// SetNillableSourceKind sets the "source_kind" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableSourceKind(v *string) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetSourceKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PipelineRunEventUpdateOne) SetStatus(v string) *PipelineRunEventUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableStatus(v *string) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailedStage sets the "failed_stage" field.
func (_u *PipelineRunEventUpdateOne) SetFailedStage(v string) *PipelineRunEventUpdateOne {
	_u.mutation.SetFailedStage(v)
	return _u
}

// SetNillableFailedStage sets the "failed_stage" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableFailedStage(v *string) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetFailedStage(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PipelineRunEventUpdateOne) SetErrorMessage(v string) *PipelineRunEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableErrorMessage(v *string) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetArtifactCount sets the "artifact_count" field.
func (_u *PipelineRunEventUpdateOne) SetArtifactCount(v int) *PipelineRunEventUpdateOne {
	_u.mutation.ResetArtifactCount()
	_u.mutation.SetArtifactCount(v)
	return _u
}

// SetNillableArtifactCount sets the "artifact_count" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableArtifactCount(v *int) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetArtifactCount(*v)
	}
	return _u
}

// AddArtifactCount adds value to the "artifact_count" field.
func (_u *PipelineRunEventUpdateOne) AddArtifactCount(v int) *PipelineRunEventUpdateOne {
	_u.mutation.AddArtifactCount(v)
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *PipelineRunEventUpdateOne) SetDurationMs(v int64) *PipelineRunEventUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *PipelineRunEventUpdateOne) SetNillableDurationMs(v *int64) *PipelineRunEventUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *PipelineRunEventUpdateOne) AddDurationMs(v int64) *PipelineRunEventUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// Mutation returns the PipelineRunEventMutation object of the builder.
func (_u *PipelineRunEventUpdateOne) Mutation() *PipelineRunEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PipelineRunEventUpdate builder.
func (_u *PipelineRunEventUpdateOne) Where(ps ...predicate.PipelineRunEvent) *PipelineRunEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineRunEventUpdateOne) Select(field string, fields ...string) *PipelineRunEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PipelineRunEvent entity.
func (_u *PipelineRunEventUpdateOne) Save(ctx context.Context) (*PipelineRunEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineRunEventUpdateOne) SaveX(ctx context.Context) *PipelineRunEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineRunEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineRunEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineRunEventUpdateOne) check() error {
	if v, ok := _u.mutation.RunID(); ok {
		if err := pipelinerunevent.RunIDValidator(v); err != nil {
			return &ValidationError{Name: "run_id", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.run_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ContentUnitID(); ok {
		if err := pipelinerunevent.ContentUnitIDValidator(v); err != nil {
			return &ValidationError{Name: "content_unit_id", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.content_unit_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Identity(); ok {
		if err := pipelinerunevent.IdentityValidator(v); err != nil {
			return &ValidationError{Name: "identity", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.identity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceKind(); ok {
		if err := pipelinerunevent.SourceKindValidator(v); err != nil {
			return &ValidationError{Name: "source_kind", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.source_kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := pipelinerunevent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PipelineRunEvent.status": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineRunEventUpdateOne) sqlSave(ctx context.Context) (_node *PipelineRunEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipelinerunevent.Table, pipelinerunevent.Columns, sqlgraph.NewFieldSpec(pipelinerunevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PipelineRunEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipelinerunevent.FieldID)
		for _, f := range fields {
			if !pipelinerunevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipelinerunevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RunID(); ok {
		_spec.SetField(pipelinerunevent.FieldRunID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ContentUnitID(); ok {
		_spec.SetField(pipelinerunevent.FieldContentUnitID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Identity(); ok {
		_spec.SetField(pipelinerunevent.FieldIdentity, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceKind(); ok {
		_spec.SetField(pipelinerunevent.FieldSourceKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(pipelinerunevent.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.FailedStage(); ok {
		_spec.SetField(pipelinerunevent.FieldFailedStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(pipelinerunevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArtifactCount(); ok {
		_spec.SetField(pipelinerunevent.FieldArtifactCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedArtifactCount(); ok {
		_spec.AddField(pipelinerunevent.FieldArtifactCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(pipelinerunevent.FieldDurationMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(pipelinerunevent.FieldDurationMs, field.TypeInt64, value)
	}
	_node = &PipelineRunEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipelinerunevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
