// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/specularhq/specular/ent/auditaggregate"
	"github.com/specularhq/specular/ent/predicate"
)

// AuditAggregateDelete is the builder for deleting a AuditAggregate entity.
type AuditAggregateDelete struct {
	config
	hooks    []Hook
	mutation *AuditAggregateMutation
}

// Where appends a list predicates to the AuditAggregateDelete builder.
func (_d *AuditAggregateDelete) Where(ps ...predicate.AuditAggregate) *AuditAggregateDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AuditAggregateDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AuditAggregateDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AuditAggregateDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(auditaggregate.Table, sqlgraph.NewFieldSpec(auditaggregate.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// AuditAggregateDeleteOne is the builder for deleting a single AuditAggregate entity.
type AuditAggregateDeleteOne struct {
	_d *AuditAggregateDelete
}

// Where appends a list predicates to the AuditAggregateDelete builder.
func (_d *AuditAggregateDeleteOne) Where(ps ...predicate.AuditAggregate) *AuditAggregateDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AuditAggregateDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{auditaggregate.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AuditAggregateDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
