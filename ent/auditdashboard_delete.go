// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/specularhq/specular/ent/auditdashboard"
	"github.com/specularhq/specular/ent/predicate"
)

// AuditDashboardDelete is the builder for deleting a AuditDashboard entity.
type AuditDashboardDelete struct {
	config
	hooks    []Hook
	mutation *AuditDashboardMutation
}

// Where appends a list predicates to the AuditDashboardDelete builder.
func (_d *AuditDashboardDelete) Where(ps ...predicate.AuditDashboard) *AuditDashboardDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *AuditDashboardDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AuditDashboardDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *AuditDashboardDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(auditdashboard.Table, sqlgraph.NewFieldSpec(auditdashboard.FieldID, field.TypeString))
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

// AuditDashboardDeleteOne is the builder for deleting a single AuditDashboard entity.
type AuditDashboardDeleteOne struct {
	_d *AuditDashboardDelete
}

// Where appends a list predicates to the AuditDashboardDelete builder.
func (_d *AuditDashboardDeleteOne) Where(ps ...predicate.AuditDashboard) *AuditDashboardDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *AuditDashboardDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{auditdashboard.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *AuditDashboardDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
