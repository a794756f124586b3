// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mindmorph/ent/artifact"
	"github.com/abhisek/mindmorph/ent/predicate"
)

// ArtifactUpdate is the builder for updating Artifact entities.
type ArtifactUpdate struct {
	config
	hooks    []Hook
	mutation *ArtifactMutation
}

// Where appends a list predicates to the ArtifactUpdate builder.
func (_u *ArtifactUpdate) Where(ps ...predicate.Artifact) *ArtifactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ArtifactUpdate) SetIntervalDays(v float64) *ArtifactUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableIntervalDays(v *float64) *ArtifactUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ArtifactUpdate) AddIntervalDays(v float64) *ArtifactUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ArtifactUpdate) SetEaseFactor(v float64) *ArtifactUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableEaseFactor(v *float64) *ArtifactUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ArtifactUpdate) AddEaseFactor(v float64) *ArtifactUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ArtifactUpdate) SetRepetitions(v int) *ArtifactUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableRepetitions(v *int) *ArtifactUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ArtifactUpdate) AddRepetitions(v int) *ArtifactUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *ArtifactUpdate) SetLapses(v int) *ArtifactUpdate {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableLapses(v *int) *ArtifactUpdate {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *ArtifactUpdate) AddLapses(v int) *ArtifactUpdate {
	_u.mutation.AddLapses(v)
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ArtifactUpdate) SetDueAt(v time.Time) *ArtifactUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableDueAt(v *time.Time) *ArtifactUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ArtifactUpdate) SetLastReviewedAt(v time.Time) *ArtifactUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableLastReviewedAt(v *time.Time) *ArtifactUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *ArtifactUpdate) ClearLastReviewedAt() *ArtifactUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetReviewVersion sets the "review_version" field.
func (_u *ArtifactUpdate) SetReviewVersion(v int64) *ArtifactUpdate {
	_u.mutation.ResetReviewVersion()
	_u.mutation.SetReviewVersion(v)
	return _u
}

// SetNillableReviewVersion sets the "review_version" field if the given value is not nil.
func (_u *ArtifactUpdate) SetNillableReviewVersion(v *int64) *ArtifactUpdate {
	if v != nil {
		_u.SetReviewVersion(*v)
	}
	return _u
}

// AddReviewVersion adds value to the "review_version" field.
func (_u *ArtifactUpdate) AddReviewVersion(v int64) *ArtifactUpdate {
	_u.mutation.AddReviewVersion(v)
	return _u
}

// Mutation returns the ArtifactMutation object of the builder.
func (_u *ArtifactUpdate) Mutation() *ArtifactMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ArtifactUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ArtifactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ArtifactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(artifact.Table, artifact.Columns, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(artifact.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(artifact.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(artifact.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(artifact.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(artifact.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(artifact.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(artifact.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(artifact.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(artifact.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(artifact.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(artifact.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(artifact.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewVersion(); ok {
		_spec.SetField(artifact.FieldReviewVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedReviewVersion(); ok {
		_spec.AddField(artifact.FieldReviewVersion, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ArtifactUpdateOne is the builder for updating a single Artifact entity.
type ArtifactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ArtifactMutation
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ArtifactUpdateOne) SetIntervalDays(v float64) *ArtifactUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableIntervalDays(v *float64) *ArtifactUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ArtifactUpdateOne) AddIntervalDays(v float64) *ArtifactUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ArtifactUpdateOne) SetEaseFactor(v float64) *ArtifactUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableEaseFactor(v *float64) *ArtifactUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ArtifactUpdateOne) AddEaseFactor(v float64) *ArtifactUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ArtifactUpdateOne) SetRepetitions(v int) *ArtifactUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableRepetitions(v *int) *ArtifactUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ArtifactUpdateOne) AddRepetitions(v int) *ArtifactUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetLapses sets the "lapses" field.
func (_u *ArtifactUpdateOne) SetLapses(v int) *ArtifactUpdateOne {
	_u.mutation.ResetLapses()
	_u.mutation.SetLapses(v)
	return _u
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableLapses(v *int) *ArtifactUpdateOne {
	if v != nil {
		_u.SetLapses(*v)
	}
	return _u
}

// AddLapses adds value to the "lapses" field.
func (_u *ArtifactUpdateOne) AddLapses(v int) *ArtifactUpdateOne {
	_u.mutation.AddLapses(v)
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ArtifactUpdateOne) SetDueAt(v time.Time) *ArtifactUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableDueAt(v *time.Time) *ArtifactUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ArtifactUpdateOne) SetLastReviewedAt(v time.Time) *ArtifactUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableLastReviewedAt(v *time.Time) *ArtifactUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *ArtifactUpdateOne) ClearLastReviewedAt() *ArtifactUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetReviewVersion sets the "review_version" field.
func (_u *ArtifactUpdateOne) SetReviewVersion(v int64) *ArtifactUpdateOne {
	_u.mutation.ResetReviewVersion()
	_u.mutation.SetReviewVersion(v)
	return _u
}

// SetNillableReviewVersion sets the "review_version" field if the given value is not nil.
func (_u *ArtifactUpdateOne) SetNillableReviewVersion(v *int64) *ArtifactUpdateOne {
	if v != nil {
		_u.SetReviewVersion(*v)
	}
	return _u
}

// AddReviewVersion adds value to the "review_version" field.
func (_u *ArtifactUpdateOne) AddReviewVersion(v int64) *ArtifactUpdateOne {
	_u.mutation.AddReviewVersion(v)
	return _u
}

// Mutation returns the ArtifactMutation object of the builder.
func (_u *ArtifactUpdateOne) Mutation() *ArtifactMutation {
	return _u.mutation
}

// Where appends a list predicates to the ArtifactUpdate builder.
func (_u *ArtifactUpdateOne) Where(ps ...predicate.Artifact) *ArtifactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ArtifactUpdateOne) Select(field string, fields ...string) *ArtifactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Artifact entity.
func (_u *ArtifactUpdateOne) Save(ctx context.Context) (*Artifact, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ArtifactUpdateOne) SaveX(ctx context.Context) *Artifact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ArtifactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ArtifactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ArtifactUpdateOne) sqlSave(ctx context.Context) (_node *Artifact, err error) {
	_spec := sqlgraph.NewUpdateSpec(artifact.Table, artifact.Columns, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Artifact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, artifact.FieldID)
		for _, f := range fields {
			if !artifact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != artifact.FieldID {
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
	if _u.mutation.OptionsCleared() {
		_spec.ClearField(artifact.FieldOptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(artifact.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(artifact.FieldIntervalDays, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(artifact.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(artifact.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(artifact.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(artifact.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Lapses(); ok {
		_spec.SetField(artifact.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLapses(); ok {
		_spec.AddField(artifact.FieldLapses, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(artifact.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(artifact.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(artifact.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewVersion(); ok {
		_spec.SetField(artifact.FieldReviewVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedReviewVersion(); ok {
		_spec.AddField(artifact.FieldReviewVersion, field.TypeInt64, value)
	}
	_node = &Artifact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{artifact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
