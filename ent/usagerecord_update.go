// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/mindmorph/ent/predicate"
	"github.com/abhisek/mindmorph/ent/usagerecord"
)

// UsageRecordUpdate is the builder for updating UsageRecord entities.
type UsageRecordUpdate struct {
	config
	hooks    []Hook
	mutation *UsageRecordMutation
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdate) Where(ps ...predicate.UsageRecord) *UsageRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetIdentity sets the "identity" field.
func (_u *UsageRecordUpdate) SetIdentity(v string) *UsageRecordUpdate {
	_u.mutation.SetIdentity(v)
	return _u
}

// SetNillableIdentity sets the "identity" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableIdentity(v *string) *UsageRecordUpdate {
	if v != nil {
		_u.SetIdentity(*v)
	}
	return _u
}

// SetIdentityKind sets the "identity_kind" field.
func (_u *UsageRecordUpdate) SetIdentityKind(v string) *UsageRecordUpdate {
	_u.mutation.SetIdentityKind(v)
	return _u
}

// SetNillableIdentityKind sets the "identity_kind" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableIdentityKind(v *string) *UsageRecordUpdate {
	if v != nil {
		_u.SetIdentityKind(*v)
	}
	return _u
}

// SetUsedCount sets the "used_count" field.
func (_u *UsageRecordUpdate) SetUsedCount(v int) *UsageRecordUpdate {
	_u.mutation.ResetUsedCount()
	_u.mutation.SetUsedCount(v)
	return _u
}

// SetNillableUsedCount sets the "used_count" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableUsedCount(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetUsedCount(*v)
	}
	return _u
}

// AddUsedCount adds value to the "used_count" field.
func (_u *UsageRecordUpdate) AddUsedCount(v int) *UsageRecordUpdate {
	_u.mutation.AddUsedCount(v)
	return _u
}

// SetQuota sets the "quota" field.
func (_u *UsageRecordUpdate) SetQuota(v int) *UsageRecordUpdate {
	_u.mutation.ResetQuota()
	_u.mutation.SetQuota(v)
	return _u
}

// SetNillableQuota sets the "quota" field if the given value is not nil.
func (_u *UsageRecordUpdate) SetNillableQuota(v *int) *UsageRecordUpdate {
	if v != nil {
		_u.SetQuota(*v)
	}
	return _u
}

// AddQuota adds value to the "quota" field.
func (_u *UsageRecordUpdate) AddQuota(v int) *UsageRecordUpdate {
	_u.mutation.AddQuota(v)
	return _u
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdate) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsageRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsageRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageRecordUpdate) check() error {
	if v, ok := _u.mutation.Identity(); ok {
		if err := usagerecord.IdentityValidator(v); err != nil {
			return &ValidationError{Name: "identity", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.identity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IdentityKind(); ok {
		if err := usagerecord.IdentityKindValidator(v); err != nil {
			return &ValidationError{Name: "identity_kind", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.identity_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Identity(); ok {
		_spec.SetField(usagerecord.FieldIdentity, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdentityKind(); ok {
		_spec.SetField(usagerecord.FieldIdentityKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.UsedCount(); ok {
		_spec.SetField(usagerecord.FieldUsedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsedCount(); ok {
		_spec.AddField(usagerecord.FieldUsedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Quota(); ok {
		_spec.SetField(usagerecord.FieldQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuota(); ok {
		_spec.AddField(usagerecord.FieldQuota, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsageRecordUpdateOne is the builder for updating a single UsageRecord entity.
type UsageRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsageRecordMutation
}

// SetIdentity sets the "identity" field.
func (_u *UsageRecordUpdateOne) SetIdentity(v string) *UsageRecordUpdateOne {
	_u.mutation.SetIdentity(v)
	return _u
}

// SetNillableIdentity sets the "identity" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableIdentity(v *string) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetIdentity(*v)
	}
	return _u
}

// SetIdentityKind sets the "identity_kind" field.
func (_u *UsageRecordUpdateOne) SetIdentityKind(v string) *UsageRecordUpdateOne {
	_u.mutation.SetIdentityKind(v)
	return _u
}

// SetNillableIdentityKind sets the "identity_kind" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableIdentityKind(v *string) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetIdentityKind(*v)
	}
	return _u
}

// SetUsedCount sets the "used_count" field.
func (_u *UsageRecordUpdateOne) SetUsedCount(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetUsedCount()
	_u.mutation.SetUsedCount(v)
	return _u
}

// SetNillableUsedCount sets the "used_count" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableUsedCount(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetUsedCount(*v)
	}
	return _u
}

// AddUsedCount adds value to the "used_count" field.
func (_u *UsageRecordUpdateOne) AddUsedCount(v int) *UsageRecordUpdateOne {
	_u.mutation.AddUsedCount(v)
	return _u
}

// SetQuota sets the "quota" field.
func (_u *UsageRecordUpdateOne) SetQuota(v int) *UsageRecordUpdateOne {
	_u.mutation.ResetQuota()
	_u.mutation.SetQuota(v)
	return _u
}

// SetNillableQuota sets the "quota" field if the given value is not nil.
func (_u *UsageRecordUpdateOne) SetNillableQuota(v *int) *UsageRecordUpdateOne {
	if v != nil {
		_u.SetQuota(*v)
	}
	return _u
}

// AddQuota adds value to the "quota" field.
func (_u *UsageRecordUpdateOne) AddQuota(v int) *UsageRecordUpdateOne {
	_u.mutation.AddQuota(v)
	return _u
}

// Mutation returns the UsageRecordMutation object of the builder.
func (_u *UsageRecordUpdateOne) Mutation() *UsageRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsageRecordUpdate builder.
func (_u *UsageRecordUpdateOne) Where(ps ...predicate.UsageRecord) *UsageRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsageRecordUpdateOne) Select(field string, fields ...string) *UsageRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated UsageRecord entity.
func (_u *UsageRecordUpdateOne) Save(ctx context.Context) (*UsageRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) SaveX(ctx context.Context) *UsageRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsageRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsageRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsageRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Identity(); ok {
		if err := usagerecord.IdentityValidator(v); err != nil {
			return &ValidationError{Name: "identity", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.identity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IdentityKind(); ok {
		if err := usagerecord.IdentityKindValidator(v); err != nil {
			return &ValidationError{Name: "identity_kind", err: fmt.Errorf(`ent: validator failed for field "UsageRecord.identity_kind": %w`, err)}
		}
	}
	return nil
}

func (_u *UsageRecordUpdateOne) sqlSave(ctx context.Context) (_node *UsageRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usagerecord.Table, usagerecord.Columns, sqlgraph.NewFieldSpec(usagerecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "UsageRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usagerecord.FieldID)
		for _, f := range fields {
			if !usagerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != usagerecord.FieldID {
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
	if value, ok := _u.mutation.Identity(); ok {
		_spec.SetField(usagerecord.FieldIdentity, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdentityKind(); ok {
		_spec.SetField(usagerecord.FieldIdentityKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.UsedCount(); ok {
		_spec.SetField(usagerecord.FieldUsedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUsedCount(); ok {
		_spec.AddField(usagerecord.FieldUsedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Quota(); ok {
		_spec.SetField(usagerecord.FieldQuota, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuota(); ok {
		_spec.AddField(usagerecord.FieldQuota, field.TypeInt, value)
	}
	_node = &UsageRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usagerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
