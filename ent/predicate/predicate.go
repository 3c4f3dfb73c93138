// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Audit is the predicate function for audit builders.
type Audit func(*sql.Selector)

// AuditAggregate is the predicate function for auditaggregate builders.
type AuditAggregate func(*sql.Selector)

// AuditAnalysis is the predicate function for auditanalysis builders.
type AuditAnalysis func(*sql.Selector)

// AuditDashboard is the predicate function for auditdashboard builders.
type AuditDashboard func(*sql.Selector)

// AuditEvent is the predicate function for auditevent builders.
type AuditEvent func(*sql.Selector)

// AuditQuery is the predicate function for auditquery builders.
type AuditQuery func(*sql.Selector)

// AuditResponse is the predicate function for auditresponse builders.
type AuditResponse func(*sql.Selector)

// Company is the predicate function for company builders.
type Company func(*sql.Selector)
