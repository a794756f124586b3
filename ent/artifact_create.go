// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mindmorph/ent/artifact"
)

// ArtifactCreate is the builder for creating a Artifact entity.
type ArtifactCreate struct {
	config
	mutation *ArtifactMutation
	hooks    []Hook
}

// SetArtifactID sets the "artifact_id" field.
func (_c *ArtifactCreate) SetArtifactID(v string) *ArtifactCreate {
	_c.mutation.SetArtifactID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ArtifactCreate) SetKind(v string) *ArtifactCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *ArtifactCreate) SetQuestion(v string) *ArtifactCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *ArtifactCreate) SetAnswer(v string) *ArtifactCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *ArtifactCreate) SetOptions(v []string) *ArtifactCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectIndex sets the "correct_index" field.
func (_c *ArtifactCreate) SetCorrectIndex(v int) *ArtifactCreate {
	_c.mutation.SetCorrectIndex(v)
	return _c
}

// SetNillableCorrectIndex sets the "correct_index" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableCorrectIndex(v *int) *ArtifactCreate {
	if v != nil {
		_c.SetCorrectIndex(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *ArtifactCreate) SetCategory(v string) *ArtifactCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *ArtifactCreate) SetDifficulty(v string) *ArtifactCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetSourceUnitID sets the "source_unit_id" field.
func (_c *ArtifactCreate) SetSourceUnitID(v string) *ArtifactCreate {
	_c.mutation.SetSourceUnitID(v)
	return _c
}

// SetBatchOrder sets the "batch_order" field.
func (_c *ArtifactCreate) SetBatchOrder(v int) *ArtifactCreate {
	_c.mutation.SetBatchOrder(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ArtifactCreate) SetCreatedAt(v time.Time) *ArtifactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableCreatedAt(v *time.Time) *ArtifactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ArtifactCreate) SetIntervalDays(v float64) *ArtifactCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableIntervalDays(v *float64) *ArtifactCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ArtifactCreate) SetEaseFactor(v float64) *ArtifactCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableEaseFactor(v *float64) *ArtifactCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *ArtifactCreate) SetRepetitions(v int) *ArtifactCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableRepetitions(v *int) *ArtifactCreate {
	if v != nil {
		_c.SetRepetitions(*v)
	}
	return _c
}

// SetLapses sets the "lapses" field.
func (_c *ArtifactCreate) SetLapses(v int) *ArtifactCreate {
	_c.mutation.SetLapses(v)
	return _c
}

// SetNillableLapses sets the "lapses" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableLapses(v *int) *ArtifactCreate {
	if v != nil {
		_c.SetLapses(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *ArtifactCreate) SetDueAt(v time.Time) *ArtifactCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *ArtifactCreate) SetLastReviewedAt(v time.Time) *ArtifactCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableLastReviewedAt(v *time.Time) *ArtifactCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetReviewVersion sets the "review_version" field.
func (_c *ArtifactCreate) SetReviewVersion(v int64) *ArtifactCreate {
	_c.mutation.SetReviewVersion(v)
	return _c
}

// SetNillableReviewVersion sets the "review_version" field if the given value is not nil.
func (_c *ArtifactCreate) SetNillableReviewVersion(v *int64) *ArtifactCreate {
	if v != nil {
		_c.SetReviewVersion(*v)
	}
	return _c
}

// Mutation returns the ArtifactMutation object of the builder.
func (_c *ArtifactCreate) Mutation() *ArtifactMutation {
	return _c.mutation
}

// Save creates the Artifact in the database.
func (_c *ArtifactCreate) Save(ctx context.Context) (*Artifact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ArtifactCreate) SaveX(ctx context.Context) *Artifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ArtifactCreate) defaults() {
	if _, ok := _c.mutation.CorrectIndex(); !ok {
		v := artifact.DefaultCorrectIndex
		_c.mutation.SetCorrectIndex(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := artifact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := artifact.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := artifact.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		v := artifact.DefaultRepetitions
		_c.mutation.SetRepetitions(v)
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		v := artifact.DefaultLapses
		_c.mutation.SetLapses(v)
	}
	if _, ok := _c.mutation.ReviewVersion(); !ok {
		v := artifact.DefaultReviewVersion
		_c.mutation.SetReviewVersion(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ArtifactCreate) check() error {
	if _, ok := _c.mutation.ArtifactID(); !ok {
		return &ValidationError{Name: "artifact_id", err: errors.New(`ent: missing required field "Artifact.artifact_id"`)}
	}
	if v, ok := _c.mutation.ArtifactID(); ok {
		if err := artifact.ArtifactIDValidator(v); err != nil {
			return &ValidationError{Name: "artifact_id", err: fmt.Errorf(`ent: validator failed for field "Artifact.artifact_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Artifact.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := artifact.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Artifact.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Artifact.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := artifact.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Artifact.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "Artifact.answer"`)}
	}
	if v, ok := _c.mutation.Answer(); ok {
		if err := artifact.AnswerValidator(v); err != nil {
			return &ValidationError{Name: "answer", err: fmt.Errorf(`ent: validator failed for field "Artifact.answer": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CorrectIndex(); !ok {
		return &ValidationError{Name: "correct_index", err: errors.New(`ent: missing required field "Artifact.correct_index"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Artifact.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := artifact.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Artifact.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Artifact.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := artifact.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "Artifact.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceUnitID(); !ok {
		return &ValidationError{Name: "source_unit_id", err: errors.New(`ent: missing required field "Artifact.source_unit_id"`)}
	}
	if v, ok := _c.mutation.SourceUnitID(); ok {
		if err := artifact.SourceUnitIDValidator(v); err != nil {
			return &ValidationError{Name: "source_unit_id", err: fmt.Errorf(`ent: validator failed for field "Artifact.source_unit_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BatchOrder(); !ok {
		return &ValidationError{Name: "batch_order", err: errors.New(`ent: missing required field "Artifact.batch_order"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Artifact.created_at"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "Artifact.interval_days"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "Artifact.ease_factor"`)}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "Artifact.repetitions"`)}
	}
	if _, ok := _c.mutation.Lapses(); !ok {
		return &ValidationError{Name: "lapses", err: errors.New(`ent: missing required field "Artifact.lapses"`)}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "Artifact.due_at"`)}
	}
	if _, ok := _c.mutation.ReviewVersion(); !ok {
		return &ValidationError{Name: "review_version", err: errors.New(`ent: missing required field "Artifact.review_version"`)}
	}
	return nil
}

func (_c *ArtifactCreate) sqlSave(ctx context.Context) (*Artifact, error) {
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

func (_c *ArtifactCreate) createSpec() (*Artifact, *sqlgraph.CreateSpec) {
	var (
		_node = &Artifact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(artifact.Table, sqlgraph.NewFieldSpec(artifact.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ArtifactID(); ok {
		_spec.SetField(artifact.FieldArtifactID, field.TypeString, value)
		_node.ArtifactID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(artifact.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(artifact.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(artifact.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(artifact.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectIndex(); ok {
		_spec.SetField(artifact.FieldCorrectIndex, field.TypeInt, value)
		_node.CorrectIndex = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(artifact.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(artifact.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.SourceUnitID(); ok {
		_spec.SetField(artifact.FieldSourceUnitID, field.TypeString, value)
		_node.SourceUnitID = value
	}
	if value, ok := _c.mutation.BatchOrder(); ok {
		_spec.SetField(artifact.FieldBatchOrder, field.TypeInt, value)
		_node.BatchOrder = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(artifact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(artifact.FieldIntervalDays, field.TypeFloat64, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(artifact.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(artifact.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.Lapses(); ok {
		_spec.SetField(artifact.FieldLapses, field.TypeInt, value)
		_node.Lapses = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(artifact.FieldDueAt, field.TypeTime, value)
		_node.DueAt = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(artifact.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.ReviewVersion(); ok {
		_spec.SetField(artifact.FieldReviewVersion, field.TypeInt64, value)
		_node.ReviewVersion = value
	}
	return _node, _spec
}

// ArtifactCreateBulk is the builder for creating many Artifact entities in bulk.
type ArtifactCreateBulk struct {
	config
	err      error
	builders []*ArtifactCreate
}

// Save creates the Artifact entities in the database.
func (_c *ArtifactCreateBulk) Save(ctx context.Context) ([]*Artifact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Artifact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ArtifactMutation)
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
func (_c *ArtifactCreateBulk) SaveX(ctx context.Context) []*Artifact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ArtifactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ArtifactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
