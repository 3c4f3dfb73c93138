// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/specularhq/specular/ent/audit"
	"github.com/specularhq/specular/ent/auditaggregate"
	"github.com/specularhq/specular/ent/auditanalysis"
	"github.com/specularhq/specular/ent/auditdashboard"
	"github.com/specularhq/specular/ent/auditevent"
	"github.com/specularhq/specular/ent/auditquery"
	"github.com/specularhq/specular/ent/auditresponse"
	"github.com/specularhq/specular/ent/company"
	"github.com/specularhq/specular/ent/predicate"
	"github.com/specularhq/specular/ent/schema"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAudit          = "Audit"
	TypeAuditAggregate = "AuditAggregate"
	TypeAuditAnalysis  = "AuditAnalysis"
	TypeAuditDashboard = "AuditDashboard"
	TypeAuditEvent     = "AuditEvent"
	TypeAuditQuery     = "AuditQuery"
	TypeAuditResponse  = "AuditResponse"
	TypeCompany        = "Company"
)

// AuditMutation represents an operation that mutates the Audit nodes in the graph.
type AuditMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	user_id               *string
	status                *audit.Status
	providers             *[]string
	appendproviders       []string
	query_count           *int
	addquery_count        *int
	overall_score         *float64
	addoverall_score      *float64
	brand_mention_rate    *float64
	addbrand_mention_rate *float64
	error_message         *string
	created_at            *time.Time
	started_at            *time.Time
	completed_at          *time.Time
	processing_time_ms    *int
	addprocessing_time_ms *int
	heartbeat_at          *time.Time
	claimed_by            *string
	clearedFields         map[string]struct{}
	company               *string
	clearedcompany        bool
	queries               map[string]struct{}
	removedqueries        map[string]struct{}
	clearedqueries        bool
	responses             map[string]struct{}
	removedresponses      map[string]struct{}
	clearedresponses      bool
	analyses              map[string]struct{}
	removedanalyses       map[string]struct{}
	clearedanalyses       bool
	aggregate             *string
	clearedaggregate      bool
	dashboard             *string
	cleareddashboard      bool
	events                map[int]struct{}
	removedevents         map[int]struct{}
	clearedevents         bool
	done                  bool
	oldValue              func(context.Context) (*Audit, error)
	predicates            []predicate.Audit
}

var _ ent.Mutation = (*AuditMutation)(nil)

// auditOption allows management of the mutation configuration using functional options.
type auditOption func(*AuditMutation)

// newAuditMutation creates new mutation for the Audit entity.
func newAuditMutation(c config, op Op, opts ...auditOption) *AuditMutation {
	m := &AuditMutation{
		config:        c,
		op:            op,
		typ:           TypeAudit,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditID sets the ID field of the mutation.
func withAuditID(id string) auditOption {
	return func(m *AuditMutation) {
		var (
			err   error
			once  sync.Once
			value *Audit
		)
		m.oldValue = func(ctx context.Context) (*Audit, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Audit.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAudit sets the old Audit of the mutation.
func withAudit(node *Audit) auditOption {
	return func(m *AuditMutation) {
		m.oldValue = func(context.Context) (*Audit, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Audit entities.
func (m *AuditMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Audit.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCompanyID sets the "company_id" field.
func (m *AuditMutation) SetCompanyID(s string) {
	m.company = &s
}

// CompanyID returns the value of the "company_id" field in the mutation.
func (m *AuditMutation) CompanyID() (r string, exists bool) {
	v := m.company
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyID returns the old "company_id" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCompanyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyID: %w", err)
	}
	return oldValue.CompanyID, nil
}

// ResetCompanyID resets all changes to the "company_id" field.
func (m *AuditMutation) ResetCompanyID() {
	m.company = nil
}

// SetUserID sets the "user_id" field.
func (m *AuditMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AuditMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AuditMutation) ResetUserID() {
	m.user_id = nil
}

// SetStatus sets the "status" field.
func (m *AuditMutation) SetStatus(a audit.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditMutation) Status() (r audit.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldStatus(ctx context.Context) (v audit.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AuditMutation) ResetStatus() {
	m.status = nil
}

// SetProviders sets the "providers" field.
func (m *AuditMutation) SetProviders(s []string) {
	m.providers = &s
	m.appendproviders = nil
}

// Providers returns the value of the "providers" field in the mutation.
func (m *AuditMutation) Providers() (r []string, exists bool) {
	v := m.providers
	if v == nil {
		return
	}
	return *v, true
}

// OldProviders returns the old "providers" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldProviders(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviders is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviders requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviders: %w", err)
	}
	return oldValue.Providers, nil
}

// AppendProviders adds s to the "providers" field.
func (m *AuditMutation) AppendProviders(s []string) {
	m.appendproviders = append(m.appendproviders, s...)
}

// AppendedProviders returns the list of values that were appended to the "providers" field in this mutation.
func (m *AuditMutation) AppendedProviders() ([]string, bool) {
	if len(m.appendproviders) == 0 {
		return nil, false
	}
	return m.appendproviders, true
}

// ResetProviders resets all changes to the "providers" field.
func (m *AuditMutation) ResetProviders() {
	m.providers = nil
	m.appendproviders = nil
}

// SetQueryCount sets the "query_count" field.
func (m *AuditMutation) SetQueryCount(i int) {
	m.query_count = &i
	m.addquery_count = nil
}

// QueryCount returns the value of the "query_count" field in the mutation.
func (m *AuditMutation) QueryCount() (r int, exists bool) {
	v := m.query_count
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryCount returns the old "query_count" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldQueryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryCount: %w", err)
	}
	return oldValue.QueryCount, nil
}

// AddQueryCount adds i to the "query_count" field.
func (m *AuditMutation) AddQueryCount(i int) {
	if m.addquery_count != nil {
		*m.addquery_count += i
	} else {
		m.addquery_count = &i
	}
}

// AddedQueryCount returns the value that was added to the "query_count" field in this mutation.
func (m *AuditMutation) AddedQueryCount() (r int, exists bool) {
	v := m.addquery_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetQueryCount resets all changes to the "query_count" field.
func (m *AuditMutation) ResetQueryCount() {
	m.query_count = nil
	m.addquery_count = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *AuditMutation) SetOverallScore(f float64) {
	m.overall_score = &f
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *AuditMutation) OverallScore() (r float64, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldOverallScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds f to the "overall_score" field.
func (m *AuditMutation) AddOverallScore(f float64) {
	if m.addoverall_score != nil {
		*m.addoverall_score += f
	} else {
		m.addoverall_score = &f
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *AuditMutation) AddedOverallScore() (r float64, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearOverallScore clears the value of the "overall_score" field.
func (m *AuditMutation) ClearOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
	m.clearedFields[audit.FieldOverallScore] = struct{}{}
}

// OverallScoreCleared returns if the "overall_score" field was cleared in this mutation.
func (m *AuditMutation) OverallScoreCleared() bool {
	_, ok := m.clearedFields[audit.FieldOverallScore]
	return ok
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *AuditMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
	delete(m.clearedFields, audit.FieldOverallScore)
}

// SetBrandMentionRate sets the "brand_mention_rate" field.
func (m *AuditMutation) SetBrandMentionRate(f float64) {
	m.brand_mention_rate = &f
	m.addbrand_mention_rate = nil
}

// BrandMentionRate returns the value of the "brand_mention_rate" field in the mutation.
func (m *AuditMutation) BrandMentionRate() (r float64, exists bool) {
	v := m.brand_mention_rate
	if v == nil {
		return
	}
	return *v, true
}

// OldBrandMentionRate returns the old "brand_mention_rate" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldBrandMentionRate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrandMentionRate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrandMentionRate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrandMentionRate: %w", err)
	}
	return oldValue.BrandMentionRate, nil
}

// AddBrandMentionRate adds f to the "brand_mention_rate" field.
func (m *AuditMutation) AddBrandMentionRate(f float64) {
	if m.addbrand_mention_rate != nil {
		*m.addbrand_mention_rate += f
	} else {
		m.addbrand_mention_rate = &f
	}
}

// AddedBrandMentionRate returns the value that was added to the "brand_mention_rate" field in this mutation.
func (m *AuditMutation) AddedBrandMentionRate() (r float64, exists bool) {
	v := m.addbrand_mention_rate
	if v == nil {
		return
	}
	return *v, true
}

// ClearBrandMentionRate clears the value of the "brand_mention_rate" field.
func (m *AuditMutation) ClearBrandMentionRate() {
	m.brand_mention_rate = nil
	m.addbrand_mention_rate = nil
	m.clearedFields[audit.FieldBrandMentionRate] = struct{}{}
}

// BrandMentionRateCleared returns if the "brand_mention_rate" field was cleared in this mutation.
func (m *AuditMutation) BrandMentionRateCleared() bool {
	_, ok := m.clearedFields[audit.FieldBrandMentionRate]
	return ok
}

// ResetBrandMentionRate resets all changes to the "brand_mention_rate" field.
func (m *AuditMutation) ResetBrandMentionRate() {
	m.brand_mention_rate = nil
	m.addbrand_mention_rate = nil
	delete(m.clearedFields, audit.FieldBrandMentionRate)
}

// SetErrorMessage sets the "error_message" field.
func (m *AuditMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AuditMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AuditMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[audit.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AuditMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[audit.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AuditMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, audit.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetStartedAt sets the "started_at" field.
func (m *AuditMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *AuditMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *AuditMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[audit.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *AuditMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[audit.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *AuditMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, audit.FieldStartedAt)
}

// SetCompletedAt sets the "completed_at" field.
func (m *AuditMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *AuditMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *AuditMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[audit.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *AuditMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[audit.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *AuditMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, audit.FieldCompletedAt)
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (m *AuditMutation) SetProcessingTimeMs(i int) {
	m.processing_time_ms = &i
	m.addprocessing_time_ms = nil
}

// ProcessingTimeMs returns the value of the "processing_time_ms" field in the mutation.
func (m *AuditMutation) ProcessingTimeMs() (r int, exists bool) {
	v := m.processing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTimeMs returns the old "processing_time_ms" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldProcessingTimeMs(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTimeMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTimeMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTimeMs: %w", err)
	}
	return oldValue.ProcessingTimeMs, nil
}

// AddProcessingTimeMs adds i to the "processing_time_ms" field.
func (m *AuditMutation) AddProcessingTimeMs(i int) {
	if m.addprocessing_time_ms != nil {
		*m.addprocessing_time_ms += i
	} else {
		m.addprocessing_time_ms = &i
	}
}

// AddedProcessingTimeMs returns the value that was added to the "processing_time_ms" field in this mutation.
func (m *AuditMutation) AddedProcessingTimeMs() (r int, exists bool) {
	v := m.addprocessing_time_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearProcessingTimeMs clears the value of the "processing_time_ms" field.
func (m *AuditMutation) ClearProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
	m.clearedFields[audit.FieldProcessingTimeMs] = struct{}{}
}

// ProcessingTimeMsCleared returns if the "processing_time_ms" field was cleared in this mutation.
func (m *AuditMutation) ProcessingTimeMsCleared() bool {
	_, ok := m.clearedFields[audit.FieldProcessingTimeMs]
	return ok
}

// ResetProcessingTimeMs resets all changes to the "processing_time_ms" field.
func (m *AuditMutation) ResetProcessingTimeMs() {
	m.processing_time_ms = nil
	m.addprocessing_time_ms = nil
	delete(m.clearedFields, audit.FieldProcessingTimeMs)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *AuditMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *AuditMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *AuditMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[audit.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *AuditMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[audit.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *AuditMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, audit.FieldHeartbeatAt)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *AuditMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *AuditMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the Audit entity.
// If the Audit object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *AuditMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[audit.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *AuditMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[audit.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *AuditMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, audit.FieldClaimedBy)
}

// ClearCompany clears the "company" edge to the Company entity.
func (m *AuditMutation) ClearCompany() {
	m.clearedcompany = true
	m.clearedFields[audit.FieldCompanyID] = struct{}{}
}

// CompanyCleared reports if the "company" edge to the Company entity was cleared.
func (m *AuditMutation) CompanyCleared() bool {
	return m.clearedcompany
}

// CompanyIDs returns the "company" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CompanyID instead. It exists only for internal usage by the builders.
func (m *AuditMutation) CompanyIDs() (ids []string) {
	if id := m.company; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCompany resets all changes to the "company" edge.
func (m *AuditMutation) ResetCompany() {
	m.company = nil
	m.clearedcompany = false
}

// AddQueryIDs adds the "queries" edge to the AuditQuery entity by ids.
func (m *AuditMutation) AddQueryIDs(ids ...string) {
	if m.queries == nil {
		m.queries = make(map[string]struct{})
	}
	for i := range ids {
		m.queries[ids[i]] = struct{}{}
	}
}

// ClearQueries clears the "queries" edge to the AuditQuery entity.
func (m *AuditMutation) ClearQueries() {
	m.clearedqueries = true
}

// QueriesCleared reports if the "queries" edge to the AuditQuery entity was cleared.
func (m *AuditMutation) QueriesCleared() bool {
	return m.clearedqueries
}

// RemoveQueryIDs removes the "queries" edge to the AuditQuery entity by IDs.
func (m *AuditMutation) RemoveQueryIDs(ids ...string) {
	if m.removedqueries == nil {
		m.removedqueries = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.queries, ids[i])
		m.removedqueries[ids[i]] = struct{}{}
	}
}

// RemovedQueries returns the removed IDs of the "queries" edge to the AuditQuery entity.
func (m *AuditMutation) RemovedQueriesIDs() (ids []string) {
	for id := range m.removedqueries {
		ids = append(ids, id)
	}
	return
}

// QueriesIDs returns the "queries" edge IDs in the mutation.
func (m *AuditMutation) QueriesIDs() (ids []string) {
	for id := range m.queries {
		ids = append(ids, id)
	}
	return
}

// ResetQueries resets all changes to the "queries" edge.
func (m *AuditMutation) ResetQueries() {
	m.queries = nil
	m.clearedqueries = false
	m.removedqueries = nil
}

// AddResponseIDs adds the "responses" edge to the AuditResponse entity by ids.
func (m *AuditMutation) AddResponseIDs(ids ...string) {
	if m.responses == nil {
		m.responses = make(map[string]struct{})
	}
	for i := range ids {
		m.responses[ids[i]] = struct{}{}
	}
}

// ClearResponses clears the "responses" edge to the AuditResponse entity.
func (m *AuditMutation) ClearResponses() {
	m.clearedresponses = true
}

// ResponsesCleared reports if the "responses" edge to the AuditResponse entity was cleared.
func (m *AuditMutation) ResponsesCleared() bool {
	return m.clearedresponses
}

// RemoveResponseIDs removes the "responses" edge to the AuditResponse entity by IDs.
func (m *AuditMutation) RemoveResponseIDs(ids ...string) {
	if m.removedresponses == nil {
		m.removedresponses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.responses, ids[i])
		m.removedresponses[ids[i]] = struct{}{}
	}
}

// RemovedResponses returns the removed IDs of the "responses" edge to the AuditResponse entity.
func (m *AuditMutation) RemovedResponsesIDs() (ids []string) {
	for id := range m.removedresponses {
		ids = append(ids, id)
	}
	return
}

// ResponsesIDs returns the "responses" edge IDs in the mutation.
func (m *AuditMutation) ResponsesIDs() (ids []string) {
	for id := range m.responses {
		ids = append(ids, id)
	}
	return
}

// ResetResponses resets all changes to the "responses" edge.
func (m *AuditMutation) ResetResponses() {
	m.responses = nil
	m.clearedresponses = false
	m.removedresponses = nil
}

// AddAnalysisIDs adds the "analyses" edge to the AuditAnalysis entity by ids.
func (m *AuditMutation) AddAnalysisIDs(ids ...string) {
	if m.analyses == nil {
		m.analyses = make(map[string]struct{})
	}
	for i := range ids {
		m.analyses[ids[i]] = struct{}{}
	}
}

// ClearAnalyses clears the "analyses" edge to the AuditAnalysis entity.
func (m *AuditMutation) ClearAnalyses() {
	m.clearedanalyses = true
}

// AnalysesCleared reports if the "analyses" edge to the AuditAnalysis entity was cleared.
func (m *AuditMutation) AnalysesCleared() bool {
	return m.clearedanalyses
}

// RemoveAnalysisIDs removes the "analyses" edge to the AuditAnalysis entity by IDs.
func (m *AuditMutation) RemoveAnalysisIDs(ids ...string) {
	if m.removedanalyses == nil {
		m.removedanalyses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.analyses, ids[i])
		m.removedanalyses[ids[i]] = struct{}{}
	}
}

// RemovedAnalyses returns the removed IDs of the "analyses" edge to the AuditAnalysis entity.
func (m *AuditMutation) RemovedAnalysesIDs() (ids []string) {
	for id := range m.removedanalyses {
		ids = append(ids, id)
	}
	return
}

// AnalysesIDs returns the "analyses" edge IDs in the mutation.
func (m *AuditMutation) AnalysesIDs() (ids []string) {
	for id := range m.analyses {
		ids = append(ids, id)
	}
	return
}

// ResetAnalyses resets all changes to the "analyses" edge.
func (m *AuditMutation) ResetAnalyses() {
	m.analyses = nil
	m.clearedanalyses = false
	m.removedanalyses = nil
}

// SetAggregateID sets the "aggregate" edge to the AuditAggregate entity by id.
func (m *AuditMutation) SetAggregateID(id string) {
	m.aggregate = &id
}

// ClearAggregate clears the "aggregate" edge to the AuditAggregate entity.
func (m *AuditMutation) ClearAggregate() {
	m.clearedaggregate = true
}

// AggregateCleared reports if the "aggregate" edge to the AuditAggregate entity was cleared.
func (m *AuditMutation) AggregateCleared() bool {
	return m.clearedaggregate
}

// AggregateID returns the "aggregate" edge ID in the mutation.
func (m *AuditMutation) AggregateID() (id string, exists bool) {
	if m.aggregate != nil {
		return *m.aggregate, true
	}
	return
}

// AggregateIDs returns the "aggregate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AggregateID instead. It exists only for internal usage by the builders.
func (m *AuditMutation) AggregateIDs() (ids []string) {
	if id := m.aggregate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAggregate resets all changes to the "aggregate" edge.
func (m *AuditMutation) ResetAggregate() {
	m.aggregate = nil
	m.clearedaggregate = false
}

// SetDashboardID sets the "dashboard" edge to the AuditDashboard entity by id.
func (m *AuditMutation) SetDashboardID(id string) {
	m.dashboard = &id
}

// ClearDashboard clears the "dashboard" edge to the AuditDashboard entity.
func (m *AuditMutation) ClearDashboard() {
	m.cleareddashboard = true
}

// DashboardCleared reports if the "dashboard" edge to the AuditDashboard entity was cleared.
func (m *AuditMutation) DashboardCleared() bool {
	return m.cleareddashboard
}

// DashboardID returns the "dashboard" edge ID in the mutation.
func (m *AuditMutation) DashboardID() (id string, exists bool) {
	if m.dashboard != nil {
		return *m.dashboard, true
	}
	return
}

// DashboardIDs returns the "dashboard" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DashboardID instead. It exists only for internal usage by the builders.
func (m *AuditMutation) DashboardIDs() (ids []string) {
	if id := m.dashboard; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDashboard resets all changes to the "dashboard" edge.
func (m *AuditMutation) ResetDashboard() {
	m.dashboard = nil
	m.cleareddashboard = false
}

// AddEventIDs adds the "events" edge to the AuditEvent entity by ids.
func (m *AuditMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the AuditEvent entity.
func (m *AuditMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the AuditEvent entity was cleared.
func (m *AuditMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the AuditEvent entity by IDs.
func (m *AuditMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the AuditEvent entity.
func (m *AuditMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *AuditMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *AuditMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the AuditMutation builder.
func (m *AuditMutation) Where(ps ...predicate.Audit) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Audit, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Audit).
func (m *AuditMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.company != nil {
		fields = append(fields, audit.FieldCompanyID)
	}
	if m.user_id != nil {
		fields = append(fields, audit.FieldUserID)
	}
	if m.status != nil {
		fields = append(fields, audit.FieldStatus)
	}
	if m.providers != nil {
		fields = append(fields, audit.FieldProviders)
	}
	if m.query_count != nil {
		fields = append(fields, audit.FieldQueryCount)
	}
	if m.overall_score != nil {
		fields = append(fields, audit.FieldOverallScore)
	}
	if m.brand_mention_rate != nil {
		fields = append(fields, audit.FieldBrandMentionRate)
	}
	if m.error_message != nil {
		fields = append(fields, audit.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, audit.FieldCreatedAt)
	}
	if m.started_at != nil {
		fields = append(fields, audit.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, audit.FieldCompletedAt)
	}
	if m.processing_time_ms != nil {
		fields = append(fields, audit.FieldProcessingTimeMs)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, audit.FieldHeartbeatAt)
	}
	if m.claimed_by != nil {
		fields = append(fields, audit.FieldClaimedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case audit.FieldCompanyID:
		return m.CompanyID()
	case audit.FieldUserID:
		return m.UserID()
	case audit.FieldStatus:
		return m.Status()
	case audit.FieldProviders:
		return m.Providers()
	case audit.FieldQueryCount:
		return m.QueryCount()
	case audit.FieldOverallScore:
		return m.OverallScore()
	case audit.FieldBrandMentionRate:
		return m.BrandMentionRate()
	case audit.FieldErrorMessage:
		return m.ErrorMessage()
	case audit.FieldCreatedAt:
		return m.CreatedAt()
	case audit.FieldStartedAt:
		return m.StartedAt()
	case audit.FieldCompletedAt:
		return m.CompletedAt()
	case audit.FieldProcessingTimeMs:
		return m.ProcessingTimeMs()
	case audit.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case audit.FieldClaimedBy:
		return m.ClaimedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case audit.FieldCompanyID:
		return m.OldCompanyID(ctx)
	case audit.FieldUserID:
		return m.OldUserID(ctx)
	case audit.FieldStatus:
		return m.OldStatus(ctx)
	case audit.FieldProviders:
		return m.OldProviders(ctx)
	case audit.FieldQueryCount:
		return m.OldQueryCount(ctx)
	case audit.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case audit.FieldBrandMentionRate:
		return m.OldBrandMentionRate(ctx)
	case audit.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case audit.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case audit.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case audit.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case audit.FieldProcessingTimeMs:
		return m.OldProcessingTimeMs(ctx)
	case audit.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case audit.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	}
	return nil, fmt.Errorf("unknown Audit field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditMutation) SetField(name string, value ent.Value) error {
	switch name {
	case audit.FieldCompanyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyID(v)
		return nil
	case audit.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case audit.FieldStatus:
		v, ok := value.(audit.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case audit.FieldProviders:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviders(v)
		return nil
	case audit.FieldQueryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryCount(v)
		return nil
	case audit.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case audit.FieldBrandMentionRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrandMentionRate(v)
		return nil
	case audit.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case audit.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case audit.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case audit.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case audit.FieldProcessingTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTimeMs(v)
		return nil
	case audit.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case audit.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	}
	return fmt.Errorf("unknown Audit field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditMutation) AddedFields() []string {
	var fields []string
	if m.addquery_count != nil {
		fields = append(fields, audit.FieldQueryCount)
	}
	if m.addoverall_score != nil {
		fields = append(fields, audit.FieldOverallScore)
	}
	if m.addbrand_mention_rate != nil {
		fields = append(fields, audit.FieldBrandMentionRate)
	}
	if m.addprocessing_time_ms != nil {
		fields = append(fields, audit.FieldProcessingTimeMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case audit.FieldQueryCount:
		return m.AddedQueryCount()
	case audit.FieldOverallScore:
		return m.AddedOverallScore()
	case audit.FieldBrandMentionRate:
		return m.AddedBrandMentionRate()
	case audit.FieldProcessingTimeMs:
		return m.AddedProcessingTimeMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditMutation) AddField(name string, value ent.Value) error {
	switch name {
	case audit.FieldQueryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQueryCount(v)
		return nil
	case audit.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	case audit.FieldBrandMentionRate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBrandMentionRate(v)
		return nil
	case audit.FieldProcessingTimeMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTimeMs(v)
		return nil
	}
	return fmt.Errorf("unknown Audit numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(audit.FieldOverallScore) {
		fields = append(fields, audit.FieldOverallScore)
	}
	if m.FieldCleared(audit.FieldBrandMentionRate) {
		fields = append(fields, audit.FieldBrandMentionRate)
	}
	if m.FieldCleared(audit.FieldErrorMessage) {
		fields = append(fields, audit.FieldErrorMessage)
	}
	if m.FieldCleared(audit.FieldStartedAt) {
		fields = append(fields, audit.FieldStartedAt)
	}
	if m.FieldCleared(audit.FieldCompletedAt) {
		fields = append(fields, audit.FieldCompletedAt)
	}
	if m.FieldCleared(audit.FieldProcessingTimeMs) {
		fields = append(fields, audit.FieldProcessingTimeMs)
	}
	if m.FieldCleared(audit.FieldHeartbeatAt) {
		fields = append(fields, audit.FieldHeartbeatAt)
	}
	if m.FieldCleared(audit.FieldClaimedBy) {
		fields = append(fields, audit.FieldClaimedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditMutation) ClearField(name string) error {
	switch name {
	case audit.FieldOverallScore:
		m.ClearOverallScore()
		return nil
	case audit.FieldBrandMentionRate:
		m.ClearBrandMentionRate()
		return nil
	case audit.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case audit.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case audit.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case audit.FieldProcessingTimeMs:
		m.ClearProcessingTimeMs()
		return nil
	case audit.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	case audit.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	}
	return fmt.Errorf("unknown Audit nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditMutation) ResetField(name string) error {
	switch name {
	case audit.FieldCompanyID:
		m.ResetCompanyID()
		return nil
	case audit.FieldUserID:
		m.ResetUserID()
		return nil
	case audit.FieldStatus:
		m.ResetStatus()
		return nil
	case audit.FieldProviders:
		m.ResetProviders()
		return nil
	case audit.FieldQueryCount:
		m.ResetQueryCount()
		return nil
	case audit.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case audit.FieldBrandMentionRate:
		m.ResetBrandMentionRate()
		return nil
	case audit.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case audit.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case audit.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case audit.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case audit.FieldProcessingTimeMs:
		m.ResetProcessingTimeMs()
		return nil
	case audit.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case audit.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	}
	return fmt.Errorf("unknown Audit field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.company != nil {
		edges = append(edges, audit.EdgeCompany)
	}
	if m.queries != nil {
		edges = append(edges, audit.EdgeQueries)
	}
	if m.responses != nil {
		edges = append(edges, audit.EdgeResponses)
	}
	if m.analyses != nil {
		edges = append(edges, audit.EdgeAnalyses)
	}
	if m.aggregate != nil {
		edges = append(edges, audit.EdgeAggregate)
	}
	if m.dashboard != nil {
		edges = append(edges, audit.EdgeDashboard)
	}
	if m.events != nil {
		edges = append(edges, audit.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case audit.EdgeCompany:
		if id := m.company; id != nil {
			return []ent.Value{*id}
		}
	case audit.EdgeQueries:
		ids := make([]ent.Value, 0, len(m.queries))
		for id := range m.queries {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.responses))
		for id := range m.responses {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.analyses))
		for id := range m.analyses {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeAggregate:
		if id := m.aggregate; id != nil {
			return []ent.Value{*id}
		}
	case audit.EdgeDashboard:
		if id := m.dashboard; id != nil {
			return []ent.Value{*id}
		}
	case audit.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedqueries != nil {
		edges = append(edges, audit.EdgeQueries)
	}
	if m.removedresponses != nil {
		edges = append(edges, audit.EdgeResponses)
	}
	if m.removedanalyses != nil {
		edges = append(edges, audit.EdgeAnalyses)
	}
	if m.removedevents != nil {
		edges = append(edges, audit.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case audit.EdgeQueries:
		ids := make([]ent.Value, 0, len(m.removedqueries))
		for id := range m.removedqueries {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.removedresponses))
		for id := range m.removedresponses {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeAnalyses:
		ids := make([]ent.Value, 0, len(m.removedanalyses))
		for id := range m.removedanalyses {
			ids = append(ids, id)
		}
		return ids
	case audit.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedcompany {
		edges = append(edges, audit.EdgeCompany)
	}
	if m.clearedqueries {
		edges = append(edges, audit.EdgeQueries)
	}
	if m.clearedresponses {
		edges = append(edges, audit.EdgeResponses)
	}
	if m.clearedanalyses {
		edges = append(edges, audit.EdgeAnalyses)
	}
	if m.clearedaggregate {
		edges = append(edges, audit.EdgeAggregate)
	}
	if m.cleareddashboard {
		edges = append(edges, audit.EdgeDashboard)
	}
	if m.clearedevents {
		edges = append(edges, audit.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditMutation) EdgeCleared(name string) bool {
	switch name {
	case audit.EdgeCompany:
		return m.clearedcompany
	case audit.EdgeQueries:
		return m.clearedqueries
	case audit.EdgeResponses:
		return m.clearedresponses
	case audit.EdgeAnalyses:
		return m.clearedanalyses
	case audit.EdgeAggregate:
		return m.clearedaggregate
	case audit.EdgeDashboard:
		return m.cleareddashboard
	case audit.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditMutation) ClearEdge(name string) error {
	switch name {
	case audit.EdgeCompany:
		m.ClearCompany()
		return nil
	case audit.EdgeAggregate:
		m.ClearAggregate()
		return nil
	case audit.EdgeDashboard:
		m.ClearDashboard()
		return nil
	}
	return fmt.Errorf("unknown Audit unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditMutation) ResetEdge(name string) error {
	switch name {
	case audit.EdgeCompany:
		m.ResetCompany()
		return nil
	case audit.EdgeQueries:
		m.ResetQueries()
		return nil
	case audit.EdgeResponses:
		m.ResetResponses()
		return nil
	case audit.EdgeAnalyses:
		m.ResetAnalyses()
		return nil
	case audit.EdgeAggregate:
		m.ResetAggregate()
		return nil
	case audit.EdgeDashboard:
		m.ResetDashboard()
		return nil
	case audit.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Audit edge %s", name)
}

// AuditAggregateMutation represents an operation that mutates the AuditAggregate nodes in the graph.
type AuditAggregateMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	overall_score           *float64
	addoverall_score        *float64
	geo_score               *float64
	addgeo_score            *float64
	sov_score               *float64
	addsov_score            *float64
	recommendation_score    *float64
	addrecommendation_score *float64
	sentiment_score         *float64
	addsentiment_score      *float64
	visibility_score        *float64
	addvisibility_score     *float64
	context_completeness    *float64
	addcontext_completeness *float64
	provider_breakdown      *map[string]schema.ScoreBreakdown
	category_breakdown      *map[string]schema.ScoreBreakdown
	competitor_mentions     *map[string]int
	total_responses         *int
	addtotal_responses      *int
	analyzed_responses      *int
	addanalyzed_responses   *int
	created_at              *time.Time
	clearedFields           map[string]struct{}
	audit                   *string
	clearedaudit            bool
	done                    bool
	oldValue                func(context.Context) (*AuditAggregate, error)
	predicates              []predicate.AuditAggregate
}

var _ ent.Mutation = (*AuditAggregateMutation)(nil)

// auditaggregateOption allows management of the mutation configuration using functional options.
type auditaggregateOption func(*AuditAggregateMutation)

// newAuditAggregateMutation creates new mutation for the AuditAggregate entity.
func newAuditAggregateMutation(c config, op Op, opts ...auditaggregateOption) *AuditAggregateMutation {
	m := &AuditAggregateMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditAggregate,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditAggregateID sets the ID field of the mutation.
func withAuditAggregateID(id string) auditaggregateOption {
	return func(m *AuditAggregateMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditAggregate
		)
		m.oldValue = func(ctx context.Context) (*AuditAggregate, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditAggregate.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditAggregate sets the old AuditAggregate of the mutation.
func withAuditAggregate(node *AuditAggregate) auditaggregateOption {
	return func(m *AuditAggregateMutation) {
		m.oldValue = func(context.Context) (*AuditAggregate, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditAggregateMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditAggregateMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditAggregate entities.
func (m *AuditAggregateMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditAggregateMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditAggregateMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditAggregate.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *AuditAggregateMutation) SetAuditID(s string) {
	m.audit = &s
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *AuditAggregateMutation) AuditID() (r string, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the AuditAggregate entity.
// If the AuditAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAggregateMutation) OldAuditID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *AuditAggregateMutation) ResetAuditID() {
	m.audit = nil
}

// SetOverallScore sets the "overall_score" field.
func (m *AuditAggregateMutation) SetOverallScore(f float64) {
	m.overall_score = &f
	m.addoverall_score = nil
}

// OverallScore returns the value of the "overall_score" field in the mutation.
func (m *AuditAggregateMutation) OverallScore() (r float64, exists bool) {
	v := m.overall_score
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallScore returns the old "overall_score" field's value of the AuditAggregate entity.
// If the AuditAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAggregateMutation) OldOverallScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallScore: %w", err)
	}
	return oldValue.OverallScore, nil
}

// AddOverallScore adds f to the "overall_score" field.
func (m *AuditAggregateMutation) AddOverallScore(f float64) {
	if m.addoverall_score != nil {
		*m.addoverall_score += f
	} else {
		m.addoverall_score = &f
	}
}

// AddedOverallScore returns the value that was added to the "overall_score" field in this mutation.
func (m *AuditAggregateMutation) AddedOverallScore() (r float64, exists bool) {
	v := m.addoverall_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallScore resets all changes to the "overall_score" field.
func (m *AuditAggregateMutation) ResetOverallScore() {
	m.overall_score = nil
	m.addoverall_score = nil
}

// SetGeoScore sets the "geo_score" field.
func (m *AuditAggregateMutation) SetGeoScore(f float64) {
	m.geo_score = &f
	m.addgeo_score = nil
}

// GeoScore returns the value of the "geo_score" field in the mutation.
func (m *AuditAggregateMutation) GeoScore() (r float64, exists bool) {
	v := m.geo_score
	if v == nil {
		return
	}
	return *v, true
}

// OldGeoScore returns the old "geo_score" field's value of the AuditAggregate entity.
// If the AuditAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAggregateMutation) OldGeoScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeoScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeoScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeoScore: %w", err)
	}
	return oldValue.GeoScore, nil
}

// AddGeoScore adds f to the "geo_score" field.
func (m *AuditAggregateMutation) AddGeoScore(f float64) {
	if m.addgeo_score != nil {
		*m.addgeo_score += f
	} else {
		m.addgeo_score = &f
	}
}

// AddedGeoScore returns the value that was added to the "geo_score" field in this mutation.
func (m *AuditAggregateMutation) AddedGeoScore() (r float64, exists bool) {
	v := m.addgeo_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetGeoScore resets all changes to the "geo_score" field.
func (m *AuditAggregateMutation) ResetGeoScore() {
	m.geo_score = nil
	m.addgeo_score = nil
}

// SetSovScore sets the "sov_score" field.
func (m *AuditAggregateMutation) SetSovScore(f float64) {
	m.sov_score = &f
	m.addsov_score = nil
}

// SovScore returns the value of the "sov_score" field in the mutation.
func (m *AuditAggregateMutation) SovScore() (r float64, exists bool) {
	v := m.sov_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSovScore returns the old "sov_score" field's value of the AuditAggregate entity.
// If the AuditAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAggregateMutation) OldSovScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSovScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSovScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSovScore: %w", err)
	}
	return oldValue.SovScore, nil
}

// AddSovScore adds f to the "sov_score" field.
func (m *AuditAggregateMutation) AddSovScore(f float64) {
	if m.addsov_score != nil {
		*m.addsov_score += f
	} else {
		m.addsov_score = &f
	}
}

// AddedSovScore returns the value that was added to the "sov_score" field in this mutation.
func (m *AuditAggregateMutation) AddedSovScore() (r float64, exists bool) {
	v := m.addsov_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSovScore resets all changes to the "sov_score" field.
func (m *AuditAggregateMutation) ResetSovScore() {
	m.sov_score = nil
	m.addsov_score = nil
}

// SetRecommendationScore sets the "recommendation_score" field.
func (m *AuditAggregateMutation) SetRecommendationScore(f float64) {
	m.recommendation_score = &f
	m.addrecommendation_score = nil
}

// RecommendationScore returns the value of the "recommendation_score" field in the mutation.
func (m *AuditAggregateMutation) RecommendationScore() (r float64, exists bool) {
	v := m.recommendation_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendationScore returns the old "recommendation_score" field's value of the AuditAggregate entity.
// If the AuditAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAggregateMutation) OldRecommendationScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendationScore: %w", err)
	}
	return oldValue.RecommendationScore, nil
}

// AddRecommendationScore adds f to the "recommendation_score" field.
func (m *AuditAggregateMutation) AddRecommendationScore(f float64) {
	if m.addrecommendation_score != nil {
		*m.addrecommendation_score += f
	} else {
		m.addrecommendation_score = &f
	}
}

// AddedRecommendationScore returns the value that was added to the "recommendation_score" field in this mutation.
func (m *AuditAggregateMutation) AddedRecommendationScore() (r float64, exists bool) {
	v := m.addrecommendation_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecommendationScore resets all changes to the "recommendation_score" field.
func (m *AuditAggregateMutation) ResetRecommendationScore() {
	m.recommendation_score = nil
	m.addrecommendation_score = nil
}

// SetSentimentScore sets the "sentiment_score" field.
func (m *AuditAggregateMutation) SetSentimentScore(f float64) {
	m.sentiment_score = &f
	m.addsentiment_score = nil
}

// SentimentScore returns the value of the "sentiment_score" field in the mutation.
func (m *AuditAggregateMutation) SentimentScore() (r float64, exists bool) {
	v := m.sentiment_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSentimentScore returns the old "sentiment_score" field's value of the AuditAggregate entity.
// If the AuditAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAggregateMutation) OldSentimentScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentimentScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentimentScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentimentScore: %w", err)
	}
	return oldValue.SentimentScore, nil
}

// AddSentimentScore adds f to the "sentiment_score" field.
func (m *AuditAggregateMutation) AddSentimentScore(f float64) {
	if m.addsentiment_score != nil {
		*m.addsentiment_score += f
	} else {
		m.addsentiment_score = &f
	}
}

// AddedSentimentScore returns the value that was added to the "sentiment_score" field in this mutation.
func (m *AuditAggregateMutation) AddedSentimentScore() (r float64, exists bool) {
	v := m.addsentiment_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSentimentScore resets all changes to the "sentiment_score" field.
func (m *AuditAggregateMutation) ResetSentimentScore() {
	m.sentiment_score = nil
	m.addsentiment_score = nil
}

// SetVisibilityScore sets the "visibility_score" field.
func (m *AuditAggregateMutation) SetVisibilityScore(f float64) {
	m.visibility_score = &f
	m.addvisibility_score = nil
}

// VisibilityScore returns the value of the "visibility_score" field in the mutation.
func (m *AuditAggregateMutation) VisibilityScore() (r float64, exists bool) {
	v := m.visibility_score
	if v == nil {
		return
	}
	return *v, true
}

// OldVisibilityScore returns the old "visibility_score" field's value of the AuditAggregate entity.
// If the AuditAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAggregateMutation) OldVisibilityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVisibilityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVisibilityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVisibilityScore: %w", err)
	}
	return oldValue.VisibilityScore, nil
}

// AddVisibilityScore adds f to the "visibility_score" field.
func (m *AuditAggregateMutation) AddVisibilityScore(f float64) {
	if m.addvisibility_score != nil {
		*m.addvisibility_score += f
	} else {
		m.addvisibility_score = &f
	}
}

// AddedVisibilityScore returns the value that was added to the "visibility_score" field in this mutation.
func (m *AuditAggregateMutation) AddedVisibilityScore() (r float64, exists bool) {
	v := m.addvisibility_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetVisibilityScore resets all changes to the "visibility_score" field.
func (m *AuditAggregateMutation) ResetVisibilityScore() {
	m.visibility_score = nil
	m.addvisibility_score = nil
}

// SetContextCompleteness sets the "context_completeness" field.
func (m *AuditAggregateMutation) SetContextCompleteness(f float64) {
	m.context_completeness = &f
	m.addcontext_completeness = nil
}

// ContextCompleteness returns the value of the "context_completeness" field in the mutation.
func (m *AuditAggregateMutation) ContextCompleteness() (r float64, exists bool) {
	v := m.context_completeness
	if v == nil {
		return
	}
	return *v, true
}

// OldContextCompleteness returns the old "context_completeness" field's value of the AuditAggregate entity.
// If the AuditAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAggregateMutation) OldContextCompleteness(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextCompleteness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextCompleteness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextCompleteness: %w", err)
	}
	return oldValue.ContextCompleteness, nil
}

// AddContextCompleteness adds f to the "context_completeness" field.
func (m *AuditAggregateMutation) AddContextCompleteness(f float64) {
	if m.addcontext_completeness != nil {
		*m.addcontext_completeness += f
	} else {
		m.addcontext_completeness = &f
	}
}

// AddedContextCompleteness returns the value that was added to the "context_completeness" field in this mutation.
func (m *AuditAggregateMutation) AddedContextCompleteness() (r float64, exists bool) {
	v := m.addcontext_completeness
	if v == nil {
		return
	}
	return *v, true
}

// ResetContextCompleteness resets all changes to the "context_completeness" field.
func (m *AuditAggregateMutation) ResetContextCompleteness() {
	m.context_completeness = nil
	m.addcontext_completeness = nil
}

// SetProviderBreakdown sets the "provider_breakdown" field.
func (m *AuditAggregateMutation) SetProviderBreakdown(mb map[string]schema.ScoreBreakdown) {
	m.provider_breakdown = &mb
}

// ProviderBreakdown returns the value of the "provider_breakdown" field in the mutation.
func (m *AuditAggregateMutation) ProviderBreakdown() (r map[string]schema.ScoreBreakdown, exists bool) {
	v := m.provider_breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderBreakdown returns the old "provider_breakdown" field's value of the AuditAggregate entity.
// If the AuditAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAggregateMutation) OldProviderBreakdown(ctx context.Context) (v map[string]schema.ScoreBreakdown, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderBreakdown: %w", err)
	}
	return oldValue.ProviderBreakdown, nil
}

// ClearProviderBreakdown clears the value of the "provider_breakdown" field.
func (m *AuditAggregateMutation) ClearProviderBreakdown() {
	m.provider_breakdown = nil
	m.clearedFields[auditaggregate.FieldProviderBreakdown] = struct{}{}
}

// ProviderBreakdownCleared returns if the "provider_breakdown" field was cleared in this mutation.
func (m *AuditAggregateMutation) ProviderBreakdownCleared() bool {
	_, ok := m.clearedFields[auditaggregate.FieldProviderBreakdown]
	return ok
}

// ResetProviderBreakdown resets all changes to the "provider_breakdown" field.
func (m *AuditAggregateMutation) ResetProviderBreakdown() {
	m.provider_breakdown = nil
	delete(m.clearedFields, auditaggregate.FieldProviderBreakdown)
}

// SetCategoryBreakdown sets the "category_breakdown" field.
func (m *AuditAggregateMutation) SetCategoryBreakdown(mb map[string]schema.ScoreBreakdown) {
	m.category_breakdown = &mb
}

// CategoryBreakdown returns the value of the "category_breakdown" field in the mutation.
func (m *AuditAggregateMutation) CategoryBreakdown() (r map[string]schema.ScoreBreakdown, exists bool) {
	v := m.category_breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryBreakdown returns the old "category_breakdown" field's value of the AuditAggregate entity.
// If the AuditAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAggregateMutation) OldCategoryBreakdown(ctx context.Context) (v map[string]schema.ScoreBreakdown, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryBreakdown: %w", err)
	}
	return oldValue.CategoryBreakdown, nil
}

// ClearCategoryBreakdown clears the value of the "category_breakdown" field.
func (m *AuditAggregateMutation) ClearCategoryBreakdown() {
	m.category_breakdown = nil
	m.clearedFields[auditaggregate.FieldCategoryBreakdown] = struct{}{}
}

// CategoryBreakdownCleared returns if the "category_breakdown" field was cleared in this mutation.
func (m *AuditAggregateMutation) CategoryBreakdownCleared() bool {
	_, ok := m.clearedFields[auditaggregate.FieldCategoryBreakdown]
	return ok
}

// ResetCategoryBreakdown resets all changes to the "category_breakdown" field.
func (m *AuditAggregateMutation) ResetCategoryBreakdown() {
	m.category_breakdown = nil
	delete(m.clearedFields, auditaggregate.FieldCategoryBreakdown)
}

// SetCompetitorMentions sets the "competitor_mentions" field.
func (m *AuditAggregateMutation) SetCompetitorMentions(value map[string]int) {
	m.competitor_mentions = &value
}

// CompetitorMentions returns the value of the "competitor_mentions" field in the mutation.
func (m *AuditAggregateMutation) CompetitorMentions() (r map[string]int, exists bool) {
	v := m.competitor_mentions
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitorMentions returns the old "competitor_mentions" field's value of the AuditAggregate entity.
// If the AuditAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAggregateMutation) OldCompetitorMentions(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitorMentions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitorMentions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitorMentions: %w", err)
	}
	return oldValue.CompetitorMentions, nil
}

// ClearCompetitorMentions clears the value of the "competitor_mentions" field.
func (m *AuditAggregateMutation) ClearCompetitorMentions() {
	m.competitor_mentions = nil
	m.clearedFields[auditaggregate.FieldCompetitorMentions] = struct{}{}
}

// CompetitorMentionsCleared returns if the "competitor_mentions" field was cleared in this mutation.
func (m *AuditAggregateMutation) CompetitorMentionsCleared() bool {
	_, ok := m.clearedFields[auditaggregate.FieldCompetitorMentions]
	return ok
}

// ResetCompetitorMentions resets all changes to the "competitor_mentions" field.
func (m *AuditAggregateMutation) ResetCompetitorMentions() {
	m.competitor_mentions = nil
	delete(m.clearedFields, auditaggregate.FieldCompetitorMentions)
}

// SetTotalResponses sets the "total_responses" field.
func (m *AuditAggregateMutation) SetTotalResponses(i int) {
	m.total_responses = &i
	m.addtotal_responses = nil
}

// TotalResponses returns the value of the "total_responses" field in the mutation.
func (m *AuditAggregateMutation) TotalResponses() (r int, exists bool) {
	v := m.total_responses
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalResponses returns the old "total_responses" field's value of the AuditAggregate entity.
// If the AuditAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAggregateMutation) OldTotalResponses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalResponses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalResponses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalResponses: %w", err)
	}
	return oldValue.TotalResponses, nil
}

// AddTotalResponses adds i to the "total_responses" field.
func (m *AuditAggregateMutation) AddTotalResponses(i int) {
	if m.addtotal_responses != nil {
		*m.addtotal_responses += i
	} else {
		m.addtotal_responses = &i
	}
}

// AddedTotalResponses returns the value that was added to the "total_responses" field in this mutation.
func (m *AuditAggregateMutation) AddedTotalResponses() (r int, exists bool) {
	v := m.addtotal_responses
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalResponses resets all changes to the "total_responses" field.
func (m *AuditAggregateMutation) ResetTotalResponses() {
	m.total_responses = nil
	m.addtotal_responses = nil
}

// SetAnalyzedResponses sets the "analyzed_responses" field.
func (m *AuditAggregateMutation) SetAnalyzedResponses(i int) {
	m.analyzed_responses = &i
	m.addanalyzed_responses = nil
}

// AnalyzedResponses returns the value of the "analyzed_responses" field in the mutation.
func (m *AuditAggregateMutation) AnalyzedResponses() (r int, exists bool) {
	v := m.analyzed_responses
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalyzedResponses returns the old "analyzed_responses" field's value of the AuditAggregate entity.
// If the AuditAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAggregateMutation) OldAnalyzedResponses(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalyzedResponses is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalyzedResponses requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalyzedResponses: %w", err)
	}
	return oldValue.AnalyzedResponses, nil
}

// AddAnalyzedResponses adds i to the "analyzed_responses" field.
func (m *AuditAggregateMutation) AddAnalyzedResponses(i int) {
	if m.addanalyzed_responses != nil {
		*m.addanalyzed_responses += i
	} else {
		m.addanalyzed_responses = &i
	}
}

// AddedAnalyzedResponses returns the value that was added to the "analyzed_responses" field in this mutation.
func (m *AuditAggregateMutation) AddedAnalyzedResponses() (r int, exists bool) {
	v := m.addanalyzed_responses
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnalyzedResponses resets all changes to the "analyzed_responses" field.
func (m *AuditAggregateMutation) ResetAnalyzedResponses() {
	m.analyzed_responses = nil
	m.addanalyzed_responses = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditAggregateMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditAggregateMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditAggregate entity.
// If the AuditAggregate object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAggregateMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditAggregateMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *AuditAggregateMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[auditaggregate.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *AuditAggregateMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *AuditAggregateMutation) AuditIDs() (ids []string) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *AuditAggregateMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the AuditAggregateMutation builder.
func (m *AuditAggregateMutation) Where(ps ...predicate.AuditAggregate) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditAggregateMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditAggregateMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditAggregate, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditAggregateMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditAggregateMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditAggregate).
func (m *AuditAggregateMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditAggregateMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.audit != nil {
		fields = append(fields, auditaggregate.FieldAuditID)
	}
	if m.overall_score != nil {
		fields = append(fields, auditaggregate.FieldOverallScore)
	}
	if m.geo_score != nil {
		fields = append(fields, auditaggregate.FieldGeoScore)
	}
	if m.sov_score != nil {
		fields = append(fields, auditaggregate.FieldSovScore)
	}
	if m.recommendation_score != nil {
		fields = append(fields, auditaggregate.FieldRecommendationScore)
	}
	if m.sentiment_score != nil {
		fields = append(fields, auditaggregate.FieldSentimentScore)
	}
	if m.visibility_score != nil {
		fields = append(fields, auditaggregate.FieldVisibilityScore)
	}
	if m.context_completeness != nil {
		fields = append(fields, auditaggregate.FieldContextCompleteness)
	}
	if m.provider_breakdown != nil {
		fields = append(fields, auditaggregate.FieldProviderBreakdown)
	}
	if m.category_breakdown != nil {
		fields = append(fields, auditaggregate.FieldCategoryBreakdown)
	}
	if m.competitor_mentions != nil {
		fields = append(fields, auditaggregate.FieldCompetitorMentions)
	}
	if m.total_responses != nil {
		fields = append(fields, auditaggregate.FieldTotalResponses)
	}
	if m.analyzed_responses != nil {
		fields = append(fields, auditaggregate.FieldAnalyzedResponses)
	}
	if m.created_at != nil {
		fields = append(fields, auditaggregate.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditAggregateMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditaggregate.FieldAuditID:
		return m.AuditID()
	case auditaggregate.FieldOverallScore:
		return m.OverallScore()
	case auditaggregate.FieldGeoScore:
		return m.GeoScore()
	case auditaggregate.FieldSovScore:
		return m.SovScore()
	case auditaggregate.FieldRecommendationScore:
		return m.RecommendationScore()
	case auditaggregate.FieldSentimentScore:
		return m.SentimentScore()
	case auditaggregate.FieldVisibilityScore:
		return m.VisibilityScore()
	case auditaggregate.FieldContextCompleteness:
		return m.ContextCompleteness()
	case auditaggregate.FieldProviderBreakdown:
		return m.ProviderBreakdown()
	case auditaggregate.FieldCategoryBreakdown:
		return m.CategoryBreakdown()
	case auditaggregate.FieldCompetitorMentions:
		return m.CompetitorMentions()
	case auditaggregate.FieldTotalResponses:
		return m.TotalResponses()
	case auditaggregate.FieldAnalyzedResponses:
		return m.AnalyzedResponses()
	case auditaggregate.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditAggregateMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditaggregate.FieldAuditID:
		return m.OldAuditID(ctx)
	case auditaggregate.FieldOverallScore:
		return m.OldOverallScore(ctx)
	case auditaggregate.FieldGeoScore:
		return m.OldGeoScore(ctx)
	case auditaggregate.FieldSovScore:
		return m.OldSovScore(ctx)
	case auditaggregate.FieldRecommendationScore:
		return m.OldRecommendationScore(ctx)
	case auditaggregate.FieldSentimentScore:
		return m.OldSentimentScore(ctx)
	case auditaggregate.FieldVisibilityScore:
		return m.OldVisibilityScore(ctx)
	case auditaggregate.FieldContextCompleteness:
		return m.OldContextCompleteness(ctx)
	case auditaggregate.FieldProviderBreakdown:
		return m.OldProviderBreakdown(ctx)
	case auditaggregate.FieldCategoryBreakdown:
		return m.OldCategoryBreakdown(ctx)
	case auditaggregate.FieldCompetitorMentions:
		return m.OldCompetitorMentions(ctx)
	case auditaggregate.FieldTotalResponses:
		return m.OldTotalResponses(ctx)
	case auditaggregate.FieldAnalyzedResponses:
		return m.OldAnalyzedResponses(ctx)
	case auditaggregate.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditAggregate field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditAggregateMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditaggregate.FieldAuditID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case auditaggregate.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallScore(v)
		return nil
	case auditaggregate.FieldGeoScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeoScore(v)
		return nil
	case auditaggregate.FieldSovScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSovScore(v)
		return nil
	case auditaggregate.FieldRecommendationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendationScore(v)
		return nil
	case auditaggregate.FieldSentimentScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentimentScore(v)
		return nil
	case auditaggregate.FieldVisibilityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVisibilityScore(v)
		return nil
	case auditaggregate.FieldContextCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextCompleteness(v)
		return nil
	case auditaggregate.FieldProviderBreakdown:
		v, ok := value.(map[string]schema.ScoreBreakdown)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderBreakdown(v)
		return nil
	case auditaggregate.FieldCategoryBreakdown:
		v, ok := value.(map[string]schema.ScoreBreakdown)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryBreakdown(v)
		return nil
	case auditaggregate.FieldCompetitorMentions:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitorMentions(v)
		return nil
	case auditaggregate.FieldTotalResponses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalResponses(v)
		return nil
	case auditaggregate.FieldAnalyzedResponses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalyzedResponses(v)
		return nil
	case auditaggregate.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditAggregate field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditAggregateMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_score != nil {
		fields = append(fields, auditaggregate.FieldOverallScore)
	}
	if m.addgeo_score != nil {
		fields = append(fields, auditaggregate.FieldGeoScore)
	}
	if m.addsov_score != nil {
		fields = append(fields, auditaggregate.FieldSovScore)
	}
	if m.addrecommendation_score != nil {
		fields = append(fields, auditaggregate.FieldRecommendationScore)
	}
	if m.addsentiment_score != nil {
		fields = append(fields, auditaggregate.FieldSentimentScore)
	}
	if m.addvisibility_score != nil {
		fields = append(fields, auditaggregate.FieldVisibilityScore)
	}
	if m.addcontext_completeness != nil {
		fields = append(fields, auditaggregate.FieldContextCompleteness)
	}
	if m.addtotal_responses != nil {
		fields = append(fields, auditaggregate.FieldTotalResponses)
	}
	if m.addanalyzed_responses != nil {
		fields = append(fields, auditaggregate.FieldAnalyzedResponses)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditAggregateMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditaggregate.FieldOverallScore:
		return m.AddedOverallScore()
	case auditaggregate.FieldGeoScore:
		return m.AddedGeoScore()
	case auditaggregate.FieldSovScore:
		return m.AddedSovScore()
	case auditaggregate.FieldRecommendationScore:
		return m.AddedRecommendationScore()
	case auditaggregate.FieldSentimentScore:
		return m.AddedSentimentScore()
	case auditaggregate.FieldVisibilityScore:
		return m.AddedVisibilityScore()
	case auditaggregate.FieldContextCompleteness:
		return m.AddedContextCompleteness()
	case auditaggregate.FieldTotalResponses:
		return m.AddedTotalResponses()
	case auditaggregate.FieldAnalyzedResponses:
		return m.AddedAnalyzedResponses()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditAggregateMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditaggregate.FieldOverallScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallScore(v)
		return nil
	case auditaggregate.FieldGeoScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGeoScore(v)
		return nil
	case auditaggregate.FieldSovScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSovScore(v)
		return nil
	case auditaggregate.FieldRecommendationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecommendationScore(v)
		return nil
	case auditaggregate.FieldSentimentScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentimentScore(v)
		return nil
	case auditaggregate.FieldVisibilityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVisibilityScore(v)
		return nil
	case auditaggregate.FieldContextCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContextCompleteness(v)
		return nil
	case auditaggregate.FieldTotalResponses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalResponses(v)
		return nil
	case auditaggregate.FieldAnalyzedResponses:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnalyzedResponses(v)
		return nil
	}
	return fmt.Errorf("unknown AuditAggregate numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditAggregateMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditaggregate.FieldProviderBreakdown) {
		fields = append(fields, auditaggregate.FieldProviderBreakdown)
	}
	if m.FieldCleared(auditaggregate.FieldCategoryBreakdown) {
		fields = append(fields, auditaggregate.FieldCategoryBreakdown)
	}
	if m.FieldCleared(auditaggregate.FieldCompetitorMentions) {
		fields = append(fields, auditaggregate.FieldCompetitorMentions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditAggregateMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditAggregateMutation) ClearField(name string) error {
	switch name {
	case auditaggregate.FieldProviderBreakdown:
		m.ClearProviderBreakdown()
		return nil
	case auditaggregate.FieldCategoryBreakdown:
		m.ClearCategoryBreakdown()
		return nil
	case auditaggregate.FieldCompetitorMentions:
		m.ClearCompetitorMentions()
		return nil
	}
	return fmt.Errorf("unknown AuditAggregate nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditAggregateMutation) ResetField(name string) error {
	switch name {
	case auditaggregate.FieldAuditID:
		m.ResetAuditID()
		return nil
	case auditaggregate.FieldOverallScore:
		m.ResetOverallScore()
		return nil
	case auditaggregate.FieldGeoScore:
		m.ResetGeoScore()
		return nil
	case auditaggregate.FieldSovScore:
		m.ResetSovScore()
		return nil
	case auditaggregate.FieldRecommendationScore:
		m.ResetRecommendationScore()
		return nil
	case auditaggregate.FieldSentimentScore:
		m.ResetSentimentScore()
		return nil
	case auditaggregate.FieldVisibilityScore:
		m.ResetVisibilityScore()
		return nil
	case auditaggregate.FieldContextCompleteness:
		m.ResetContextCompleteness()
		return nil
	case auditaggregate.FieldProviderBreakdown:
		m.ResetProviderBreakdown()
		return nil
	case auditaggregate.FieldCategoryBreakdown:
		m.ResetCategoryBreakdown()
		return nil
	case auditaggregate.FieldCompetitorMentions:
		m.ResetCompetitorMentions()
		return nil
	case auditaggregate.FieldTotalResponses:
		m.ResetTotalResponses()
		return nil
	case auditaggregate.FieldAnalyzedResponses:
		m.ResetAnalyzedResponses()
		return nil
	case auditaggregate.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditAggregate field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditAggregateMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit != nil {
		edges = append(edges, auditaggregate.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditAggregateMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditaggregate.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditAggregateMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditAggregateMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditAggregateMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit {
		edges = append(edges, auditaggregate.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditAggregateMutation) EdgeCleared(name string) bool {
	switch name {
	case auditaggregate.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditAggregateMutation) ClearEdge(name string) error {
	switch name {
	case auditaggregate.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditAggregate unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditAggregateMutation) ResetEdge(name string) error {
	switch name {
	case auditaggregate.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditAggregate edge %s", name)
}

// AuditAnalysisMutation represents an operation that mutates the AuditAnalysis nodes in the graph.
type AuditAnalysisMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	provider                    *string
	category                    *auditanalysis.Category
	brand_mentioned             *bool
	first_position              *int
	addfirst_position           *int
	sentiment                   *auditanalysis.Sentiment
	sentiment_score             *float64
	addsentiment_score          *float64
	competitors_mentioned       *[]schema.CompetitorMention
	appendcompetitors_mentioned []schema.CompetitorMention
	geo_score                   *float64
	addgeo_score                *float64
	sov_score                   *float64
	addsov_score                *float64
	context_completeness        *float64
	addcontext_completeness     *float64
	recommendation_signal       *float64
	addrecommendation_signal    *float64
	recommendations             *[]string
	appendrecommendations       []string
	errored                     *bool
	error_message               *string
	created_at                  *time.Time
	clearedFields               map[string]struct{}
	audit                       *string
	clearedaudit                bool
	response                    *string
	clearedresponse             bool
	done                        bool
	oldValue                    func(context.Context) (*AuditAnalysis, error)
	predicates                  []predicate.AuditAnalysis
}

var _ ent.Mutation = (*AuditAnalysisMutation)(nil)

// auditanalysisOption allows management of the mutation configuration using functional options.
type auditanalysisOption func(*AuditAnalysisMutation)

// newAuditAnalysisMutation creates new mutation for the AuditAnalysis entity.
func newAuditAnalysisMutation(c config, op Op, opts ...auditanalysisOption) *AuditAnalysisMutation {
	m := &AuditAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditAnalysisID sets the ID field of the mutation.
func withAuditAnalysisID(id string) auditanalysisOption {
	return func(m *AuditAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditAnalysis
		)
		m.oldValue = func(ctx context.Context) (*AuditAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditAnalysis sets the old AuditAnalysis of the mutation.
func withAuditAnalysis(node *AuditAnalysis) auditanalysisOption {
	return func(m *AuditAnalysisMutation) {
		m.oldValue = func(context.Context) (*AuditAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditAnalysis entities.
func (m *AuditAnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditAnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditAnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *AuditAnalysisMutation) SetAuditID(s string) {
	m.audit = &s
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *AuditAnalysisMutation) AuditID() (r string, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldAuditID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *AuditAnalysisMutation) ResetAuditID() {
	m.audit = nil
}

// SetResponseID sets the "response_id" field.
func (m *AuditAnalysisMutation) SetResponseID(s string) {
	m.response = &s
}

// ResponseID returns the value of the "response_id" field in the mutation.
func (m *AuditAnalysisMutation) ResponseID() (r string, exists bool) {
	v := m.response
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseID returns the old "response_id" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldResponseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseID: %w", err)
	}
	return oldValue.ResponseID, nil
}

// ResetResponseID resets all changes to the "response_id" field.
func (m *AuditAnalysisMutation) ResetResponseID() {
	m.response = nil
}

// SetProvider sets the "provider" field.
func (m *AuditAnalysisMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *AuditAnalysisMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *AuditAnalysisMutation) ResetProvider() {
	m.provider = nil
}

// SetCategory sets the "category" field.
func (m *AuditAnalysisMutation) SetCategory(a auditanalysis.Category) {
	m.category = &a
}

// Category returns the value of the "category" field in the mutation.
func (m *AuditAnalysisMutation) Category() (r auditanalysis.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldCategory(ctx context.Context) (v auditanalysis.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *AuditAnalysisMutation) ResetCategory() {
	m.category = nil
}

// SetBrandMentioned sets the "brand_mentioned" field.
func (m *AuditAnalysisMutation) SetBrandMentioned(b bool) {
	m.brand_mentioned = &b
}

// BrandMentioned returns the value of the "brand_mentioned" field in the mutation.
func (m *AuditAnalysisMutation) BrandMentioned() (r bool, exists bool) {
	v := m.brand_mentioned
	if v == nil {
		return
	}
	return *v, true
}

// OldBrandMentioned returns the old "brand_mentioned" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldBrandMentioned(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBrandMentioned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBrandMentioned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBrandMentioned: %w", err)
	}
	return oldValue.BrandMentioned, nil
}

// ResetBrandMentioned resets all changes to the "brand_mentioned" field.
func (m *AuditAnalysisMutation) ResetBrandMentioned() {
	m.brand_mentioned = nil
}

// SetFirstPosition sets the "first_position" field.
func (m *AuditAnalysisMutation) SetFirstPosition(i int) {
	m.first_position = &i
	m.addfirst_position = nil
}

// FirstPosition returns the value of the "first_position" field in the mutation.
func (m *AuditAnalysisMutation) FirstPosition() (r int, exists bool) {
	v := m.first_position
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstPosition returns the old "first_position" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldFirstPosition(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstPosition: %w", err)
	}
	return oldValue.FirstPosition, nil
}

// AddFirstPosition adds i to the "first_position" field.
func (m *AuditAnalysisMutation) AddFirstPosition(i int) {
	if m.addfirst_position != nil {
		*m.addfirst_position += i
	} else {
		m.addfirst_position = &i
	}
}

// AddedFirstPosition returns the value that was added to the "first_position" field in this mutation.
func (m *AuditAnalysisMutation) AddedFirstPosition() (r int, exists bool) {
	v := m.addfirst_position
	if v == nil {
		return
	}
	return *v, true
}

// ClearFirstPosition clears the value of the "first_position" field.
func (m *AuditAnalysisMutation) ClearFirstPosition() {
	m.first_position = nil
	m.addfirst_position = nil
	m.clearedFields[auditanalysis.FieldFirstPosition] = struct{}{}
}

// FirstPositionCleared returns if the "first_position" field was cleared in this mutation.
func (m *AuditAnalysisMutation) FirstPositionCleared() bool {
	_, ok := m.clearedFields[auditanalysis.FieldFirstPosition]
	return ok
}

// ResetFirstPosition resets all changes to the "first_position" field.
func (m *AuditAnalysisMutation) ResetFirstPosition() {
	m.first_position = nil
	m.addfirst_position = nil
	delete(m.clearedFields, auditanalysis.FieldFirstPosition)
}

// SetSentiment sets the "sentiment" field.
func (m *AuditAnalysisMutation) SetSentiment(a auditanalysis.Sentiment) {
	m.sentiment = &a
}

// Sentiment returns the value of the "sentiment" field in the mutation.
func (m *AuditAnalysisMutation) Sentiment() (r auditanalysis.Sentiment, exists bool) {
	v := m.sentiment
	if v == nil {
		return
	}
	return *v, true
}

// OldSentiment returns the old "sentiment" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldSentiment(ctx context.Context) (v *auditanalysis.Sentiment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentiment: %w", err)
	}
	return oldValue.Sentiment, nil
}

// ClearSentiment clears the value of the "sentiment" field.
func (m *AuditAnalysisMutation) ClearSentiment() {
	m.sentiment = nil
	m.clearedFields[auditanalysis.FieldSentiment] = struct{}{}
}

// SentimentCleared returns if the "sentiment" field was cleared in this mutation.
func (m *AuditAnalysisMutation) SentimentCleared() bool {
	_, ok := m.clearedFields[auditanalysis.FieldSentiment]
	return ok
}

// ResetSentiment resets all changes to the "sentiment" field.
func (m *AuditAnalysisMutation) ResetSentiment() {
	m.sentiment = nil
	delete(m.clearedFields, auditanalysis.FieldSentiment)
}

// SetSentimentScore sets the "sentiment_score" field.
func (m *AuditAnalysisMutation) SetSentimentScore(f float64) {
	m.sentiment_score = &f
	m.addsentiment_score = nil
}

// SentimentScore returns the value of the "sentiment_score" field in the mutation.
func (m *AuditAnalysisMutation) SentimentScore() (r float64, exists bool) {
	v := m.sentiment_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSentimentScore returns the old "sentiment_score" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldSentimentScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentimentScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentimentScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentimentScore: %w", err)
	}
	return oldValue.SentimentScore, nil
}

// AddSentimentScore adds f to the "sentiment_score" field.
func (m *AuditAnalysisMutation) AddSentimentScore(f float64) {
	if m.addsentiment_score != nil {
		*m.addsentiment_score += f
	} else {
		m.addsentiment_score = &f
	}
}

// AddedSentimentScore returns the value that was added to the "sentiment_score" field in this mutation.
func (m *AuditAnalysisMutation) AddedSentimentScore() (r float64, exists bool) {
	v := m.addsentiment_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSentimentScore resets all changes to the "sentiment_score" field.
func (m *AuditAnalysisMutation) ResetSentimentScore() {
	m.sentiment_score = nil
	m.addsentiment_score = nil
}

// SetCompetitorsMentioned sets the "competitors_mentioned" field.
func (m *AuditAnalysisMutation) SetCompetitorsMentioned(sm []schema.CompetitorMention) {
	m.competitors_mentioned = &sm
	m.appendcompetitors_mentioned = nil
}

// CompetitorsMentioned returns the value of the "competitors_mentioned" field in the mutation.
func (m *AuditAnalysisMutation) CompetitorsMentioned() (r []schema.CompetitorMention, exists bool) {
	v := m.competitors_mentioned
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitorsMentioned returns the old "competitors_mentioned" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldCompetitorsMentioned(ctx context.Context) (v []schema.CompetitorMention, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitorsMentioned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitorsMentioned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitorsMentioned: %w", err)
	}
	return oldValue.CompetitorsMentioned, nil
}

// AppendCompetitorsMentioned adds sm to the "competitors_mentioned" field.
func (m *AuditAnalysisMutation) AppendCompetitorsMentioned(sm []schema.CompetitorMention) {
	m.appendcompetitors_mentioned = append(m.appendcompetitors_mentioned, sm...)
}

// AppendedCompetitorsMentioned returns the list of values that were appended to the "competitors_mentioned" field in this mutation.
func (m *AuditAnalysisMutation) AppendedCompetitorsMentioned() ([]schema.CompetitorMention, bool) {
	if len(m.appendcompetitors_mentioned) == 0 {
		return nil, false
	}
	return m.appendcompetitors_mentioned, true
}

// ClearCompetitorsMentioned clears the value of the "competitors_mentioned" field.
func (m *AuditAnalysisMutation) ClearCompetitorsMentioned() {
	m.competitors_mentioned = nil
	m.appendcompetitors_mentioned = nil
	m.clearedFields[auditanalysis.FieldCompetitorsMentioned] = struct{}{}
}

// CompetitorsMentionedCleared returns if the "competitors_mentioned" field was cleared in this mutation.
func (m *AuditAnalysisMutation) CompetitorsMentionedCleared() bool {
	_, ok := m.clearedFields[auditanalysis.FieldCompetitorsMentioned]
	return ok
}

// ResetCompetitorsMentioned resets all changes to the "competitors_mentioned" field.
func (m *AuditAnalysisMutation) ResetCompetitorsMentioned() {
	m.competitors_mentioned = nil
	m.appendcompetitors_mentioned = nil
	delete(m.clearedFields, auditanalysis.FieldCompetitorsMentioned)
}

// SetGeoScore sets the "geo_score" field.
func (m *AuditAnalysisMutation) SetGeoScore(f float64) {
	m.geo_score = &f
	m.addgeo_score = nil
}

// GeoScore returns the value of the "geo_score" field in the mutation.
func (m *AuditAnalysisMutation) GeoScore() (r float64, exists bool) {
	v := m.geo_score
	if v == nil {
		return
	}
	return *v, true
}

// OldGeoScore returns the old "geo_score" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldGeoScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeoScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeoScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeoScore: %w", err)
	}
	return oldValue.GeoScore, nil
}

// AddGeoScore adds f to the "geo_score" field.
func (m *AuditAnalysisMutation) AddGeoScore(f float64) {
	if m.addgeo_score != nil {
		*m.addgeo_score += f
	} else {
		m.addgeo_score = &f
	}
}

// AddedGeoScore returns the value that was added to the "geo_score" field in this mutation.
func (m *AuditAnalysisMutation) AddedGeoScore() (r float64, exists bool) {
	v := m.addgeo_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetGeoScore resets all changes to the "geo_score" field.
func (m *AuditAnalysisMutation) ResetGeoScore() {
	m.geo_score = nil
	m.addgeo_score = nil
}

// SetSovScore sets the "sov_score" field.
func (m *AuditAnalysisMutation) SetSovScore(f float64) {
	m.sov_score = &f
	m.addsov_score = nil
}

// SovScore returns the value of the "sov_score" field in the mutation.
func (m *AuditAnalysisMutation) SovScore() (r float64, exists bool) {
	v := m.sov_score
	if v == nil {
		return
	}
	return *v, true
}

// OldSovScore returns the old "sov_score" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldSovScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSovScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSovScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSovScore: %w", err)
	}
	return oldValue.SovScore, nil
}

// AddSovScore adds f to the "sov_score" field.
func (m *AuditAnalysisMutation) AddSovScore(f float64) {
	if m.addsov_score != nil {
		*m.addsov_score += f
	} else {
		m.addsov_score = &f
	}
}

// AddedSovScore returns the value that was added to the "sov_score" field in this mutation.
func (m *AuditAnalysisMutation) AddedSovScore() (r float64, exists bool) {
	v := m.addsov_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetSovScore resets all changes to the "sov_score" field.
func (m *AuditAnalysisMutation) ResetSovScore() {
	m.sov_score = nil
	m.addsov_score = nil
}

// SetContextCompleteness sets the "context_completeness" field.
func (m *AuditAnalysisMutation) SetContextCompleteness(f float64) {
	m.context_completeness = &f
	m.addcontext_completeness = nil
}

// ContextCompleteness returns the value of the "context_completeness" field in the mutation.
func (m *AuditAnalysisMutation) ContextCompleteness() (r float64, exists bool) {
	v := m.context_completeness
	if v == nil {
		return
	}
	return *v, true
}

// OldContextCompleteness returns the old "context_completeness" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldContextCompleteness(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContextCompleteness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContextCompleteness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContextCompleteness: %w", err)
	}
	return oldValue.ContextCompleteness, nil
}

// AddContextCompleteness adds f to the "context_completeness" field.
func (m *AuditAnalysisMutation) AddContextCompleteness(f float64) {
	if m.addcontext_completeness != nil {
		*m.addcontext_completeness += f
	} else {
		m.addcontext_completeness = &f
	}
}

// AddedContextCompleteness returns the value that was added to the "context_completeness" field in this mutation.
func (m *AuditAnalysisMutation) AddedContextCompleteness() (r float64, exists bool) {
	v := m.addcontext_completeness
	if v == nil {
		return
	}
	return *v, true
}

// ResetContextCompleteness resets all changes to the "context_completeness" field.
func (m *AuditAnalysisMutation) ResetContextCompleteness() {
	m.context_completeness = nil
	m.addcontext_completeness = nil
}

// SetRecommendationSignal sets the "recommendation_signal" field.
func (m *AuditAnalysisMutation) SetRecommendationSignal(f float64) {
	m.recommendation_signal = &f
	m.addrecommendation_signal = nil
}

// RecommendationSignal returns the value of the "recommendation_signal" field in the mutation.
func (m *AuditAnalysisMutation) RecommendationSignal() (r float64, exists bool) {
	v := m.recommendation_signal
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendationSignal returns the old "recommendation_signal" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldRecommendationSignal(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendationSignal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendationSignal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendationSignal: %w", err)
	}
	return oldValue.RecommendationSignal, nil
}

// AddRecommendationSignal adds f to the "recommendation_signal" field.
func (m *AuditAnalysisMutation) AddRecommendationSignal(f float64) {
	if m.addrecommendation_signal != nil {
		*m.addrecommendation_signal += f
	} else {
		m.addrecommendation_signal = &f
	}
}

// AddedRecommendationSignal returns the value that was added to the "recommendation_signal" field in this mutation.
func (m *AuditAnalysisMutation) AddedRecommendationSignal() (r float64, exists bool) {
	v := m.addrecommendation_signal
	if v == nil {
		return
	}
	return *v, true
}

// ResetRecommendationSignal resets all changes to the "recommendation_signal" field.
func (m *AuditAnalysisMutation) ResetRecommendationSignal() {
	m.recommendation_signal = nil
	m.addrecommendation_signal = nil
}

// SetRecommendations sets the "recommendations" field.
func (m *AuditAnalysisMutation) SetRecommendations(s []string) {
	m.recommendations = &s
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *AuditAnalysisMutation) Recommendations() (r []string, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldRecommendations(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds s to the "recommendations" field.
func (m *AuditAnalysisMutation) AppendRecommendations(s []string) {
	m.appendrecommendations = append(m.appendrecommendations, s...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *AuditAnalysisMutation) AppendedRecommendations() ([]string, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *AuditAnalysisMutation) ClearRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	m.clearedFields[auditanalysis.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *AuditAnalysisMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[auditanalysis.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *AuditAnalysisMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	delete(m.clearedFields, auditanalysis.FieldRecommendations)
}

// SetErrored sets the "errored" field.
func (m *AuditAnalysisMutation) SetErrored(b bool) {
	m.errored = &b
}

// Errored returns the value of the "errored" field in the mutation.
func (m *AuditAnalysisMutation) Errored() (r bool, exists bool) {
	v := m.errored
	if v == nil {
		return
	}
	return *v, true
}

// OldErrored returns the old "errored" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldErrored(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrored is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrored requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrored: %w", err)
	}
	return oldValue.Errored, nil
}

// ResetErrored resets all changes to the "errored" field.
func (m *AuditAnalysisMutation) ResetErrored() {
	m.errored = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *AuditAnalysisMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AuditAnalysisMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AuditAnalysisMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[auditanalysis.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AuditAnalysisMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[auditanalysis.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AuditAnalysisMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, auditanalysis.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditAnalysis entity.
// If the AuditAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *AuditAnalysisMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[auditanalysis.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *AuditAnalysisMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *AuditAnalysisMutation) AuditIDs() (ids []string) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *AuditAnalysisMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// ClearResponse clears the "response" edge to the AuditResponse entity.
func (m *AuditAnalysisMutation) ClearResponse() {
	m.clearedresponse = true
	m.clearedFields[auditanalysis.FieldResponseID] = struct{}{}
}

// ResponseCleared reports if the "response" edge to the AuditResponse entity was cleared.
func (m *AuditAnalysisMutation) ResponseCleared() bool {
	return m.clearedresponse
}

// ResponseIDs returns the "response" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ResponseID instead. It exists only for internal usage by the builders.
func (m *AuditAnalysisMutation) ResponseIDs() (ids []string) {
	if id := m.response; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetResponse resets all changes to the "response" edge.
func (m *AuditAnalysisMutation) ResetResponse() {
	m.response = nil
	m.clearedresponse = false
}

// Where appends a list predicates to the AuditAnalysisMutation builder.
func (m *AuditAnalysisMutation) Where(ps ...predicate.AuditAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditAnalysis).
func (m *AuditAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.audit != nil {
		fields = append(fields, auditanalysis.FieldAuditID)
	}
	if m.response != nil {
		fields = append(fields, auditanalysis.FieldResponseID)
	}
	if m.provider != nil {
		fields = append(fields, auditanalysis.FieldProvider)
	}
	if m.category != nil {
		fields = append(fields, auditanalysis.FieldCategory)
	}
	if m.brand_mentioned != nil {
		fields = append(fields, auditanalysis.FieldBrandMentioned)
	}
	if m.first_position != nil {
		fields = append(fields, auditanalysis.FieldFirstPosition)
	}
	if m.sentiment != nil {
		fields = append(fields, auditanalysis.FieldSentiment)
	}
	if m.sentiment_score != nil {
		fields = append(fields, auditanalysis.FieldSentimentScore)
	}
	if m.competitors_mentioned != nil {
		fields = append(fields, auditanalysis.FieldCompetitorsMentioned)
	}
	if m.geo_score != nil {
		fields = append(fields, auditanalysis.FieldGeoScore)
	}
	if m.sov_score != nil {
		fields = append(fields, auditanalysis.FieldSovScore)
	}
	if m.context_completeness != nil {
		fields = append(fields, auditanalysis.FieldContextCompleteness)
	}
	if m.recommendation_signal != nil {
		fields = append(fields, auditanalysis.FieldRecommendationSignal)
	}
	if m.recommendations != nil {
		fields = append(fields, auditanalysis.FieldRecommendations)
	}
	if m.errored != nil {
		fields = append(fields, auditanalysis.FieldErrored)
	}
	if m.error_message != nil {
		fields = append(fields, auditanalysis.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, auditanalysis.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditanalysis.FieldAuditID:
		return m.AuditID()
	case auditanalysis.FieldResponseID:
		return m.ResponseID()
	case auditanalysis.FieldProvider:
		return m.Provider()
	case auditanalysis.FieldCategory:
		return m.Category()
	case auditanalysis.FieldBrandMentioned:
		return m.BrandMentioned()
	case auditanalysis.FieldFirstPosition:
		return m.FirstPosition()
	case auditanalysis.FieldSentiment:
		return m.Sentiment()
	case auditanalysis.FieldSentimentScore:
		return m.SentimentScore()
	case auditanalysis.FieldCompetitorsMentioned:
		return m.CompetitorsMentioned()
	case auditanalysis.FieldGeoScore:
		return m.GeoScore()
	case auditanalysis.FieldSovScore:
		return m.SovScore()
	case auditanalysis.FieldContextCompleteness:
		return m.ContextCompleteness()
	case auditanalysis.FieldRecommendationSignal:
		return m.RecommendationSignal()
	case auditanalysis.FieldRecommendations:
		return m.Recommendations()
	case auditanalysis.FieldErrored:
		return m.Errored()
	case auditanalysis.FieldErrorMessage:
		return m.ErrorMessage()
	case auditanalysis.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditanalysis.FieldAuditID:
		return m.OldAuditID(ctx)
	case auditanalysis.FieldResponseID:
		return m.OldResponseID(ctx)
	case auditanalysis.FieldProvider:
		return m.OldProvider(ctx)
	case auditanalysis.FieldCategory:
		return m.OldCategory(ctx)
	case auditanalysis.FieldBrandMentioned:
		return m.OldBrandMentioned(ctx)
	case auditanalysis.FieldFirstPosition:
		return m.OldFirstPosition(ctx)
	case auditanalysis.FieldSentiment:
		return m.OldSentiment(ctx)
	case auditanalysis.FieldSentimentScore:
		return m.OldSentimentScore(ctx)
	case auditanalysis.FieldCompetitorsMentioned:
		return m.OldCompetitorsMentioned(ctx)
	case auditanalysis.FieldGeoScore:
		return m.OldGeoScore(ctx)
	case auditanalysis.FieldSovScore:
		return m.OldSovScore(ctx)
	case auditanalysis.FieldContextCompleteness:
		return m.OldContextCompleteness(ctx)
	case auditanalysis.FieldRecommendationSignal:
		return m.OldRecommendationSignal(ctx)
	case auditanalysis.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case auditanalysis.FieldErrored:
		return m.OldErrored(ctx)
	case auditanalysis.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case auditanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditanalysis.FieldAuditID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case auditanalysis.FieldResponseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseID(v)
		return nil
	case auditanalysis.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case auditanalysis.FieldCategory:
		v, ok := value.(auditanalysis.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case auditanalysis.FieldBrandMentioned:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBrandMentioned(v)
		return nil
	case auditanalysis.FieldFirstPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstPosition(v)
		return nil
	case auditanalysis.FieldSentiment:
		v, ok := value.(auditanalysis.Sentiment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentiment(v)
		return nil
	case auditanalysis.FieldSentimentScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentimentScore(v)
		return nil
	case auditanalysis.FieldCompetitorsMentioned:
		v, ok := value.([]schema.CompetitorMention)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitorsMentioned(v)
		return nil
	case auditanalysis.FieldGeoScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeoScore(v)
		return nil
	case auditanalysis.FieldSovScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSovScore(v)
		return nil
	case auditanalysis.FieldContextCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContextCompleteness(v)
		return nil
	case auditanalysis.FieldRecommendationSignal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendationSignal(v)
		return nil
	case auditanalysis.FieldRecommendations:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case auditanalysis.FieldErrored:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrored(v)
		return nil
	case auditanalysis.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case auditanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addfirst_position != nil {
		fields = append(fields, auditanalysis.FieldFirstPosition)
	}
	if m.addsentiment_score != nil {
		fields = append(fields, auditanalysis.FieldSentimentScore)
	}
	if m.addgeo_score != nil {
		fields = append(fields, auditanalysis.FieldGeoScore)
	}
	if m.addsov_score != nil {
		fields = append(fields, auditanalysis.FieldSovScore)
	}
	if m.addcontext_completeness != nil {
		fields = append(fields, auditanalysis.FieldContextCompleteness)
	}
	if m.addrecommendation_signal != nil {
		fields = append(fields, auditanalysis.FieldRecommendationSignal)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditanalysis.FieldFirstPosition:
		return m.AddedFirstPosition()
	case auditanalysis.FieldSentimentScore:
		return m.AddedSentimentScore()
	case auditanalysis.FieldGeoScore:
		return m.AddedGeoScore()
	case auditanalysis.FieldSovScore:
		return m.AddedSovScore()
	case auditanalysis.FieldContextCompleteness:
		return m.AddedContextCompleteness()
	case auditanalysis.FieldRecommendationSignal:
		return m.AddedRecommendationSignal()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditanalysis.FieldFirstPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFirstPosition(v)
		return nil
	case auditanalysis.FieldSentimentScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSentimentScore(v)
		return nil
	case auditanalysis.FieldGeoScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGeoScore(v)
		return nil
	case auditanalysis.FieldSovScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSovScore(v)
		return nil
	case auditanalysis.FieldContextCompleteness:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContextCompleteness(v)
		return nil
	case auditanalysis.FieldRecommendationSignal:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRecommendationSignal(v)
		return nil
	}
	return fmt.Errorf("unknown AuditAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditanalysis.FieldFirstPosition) {
		fields = append(fields, auditanalysis.FieldFirstPosition)
	}
	if m.FieldCleared(auditanalysis.FieldSentiment) {
		fields = append(fields, auditanalysis.FieldSentiment)
	}
	if m.FieldCleared(auditanalysis.FieldCompetitorsMentioned) {
		fields = append(fields, auditanalysis.FieldCompetitorsMentioned)
	}
	if m.FieldCleared(auditanalysis.FieldRecommendations) {
		fields = append(fields, auditanalysis.FieldRecommendations)
	}
	if m.FieldCleared(auditanalysis.FieldErrorMessage) {
		fields = append(fields, auditanalysis.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditAnalysisMutation) ClearField(name string) error {
	switch name {
	case auditanalysis.FieldFirstPosition:
		m.ClearFirstPosition()
		return nil
	case auditanalysis.FieldSentiment:
		m.ClearSentiment()
		return nil
	case auditanalysis.FieldCompetitorsMentioned:
		m.ClearCompetitorsMentioned()
		return nil
	case auditanalysis.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	case auditanalysis.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AuditAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditAnalysisMutation) ResetField(name string) error {
	switch name {
	case auditanalysis.FieldAuditID:
		m.ResetAuditID()
		return nil
	case auditanalysis.FieldResponseID:
		m.ResetResponseID()
		return nil
	case auditanalysis.FieldProvider:
		m.ResetProvider()
		return nil
	case auditanalysis.FieldCategory:
		m.ResetCategory()
		return nil
	case auditanalysis.FieldBrandMentioned:
		m.ResetBrandMentioned()
		return nil
	case auditanalysis.FieldFirstPosition:
		m.ResetFirstPosition()
		return nil
	case auditanalysis.FieldSentiment:
		m.ResetSentiment()
		return nil
	case auditanalysis.FieldSentimentScore:
		m.ResetSentimentScore()
		return nil
	case auditanalysis.FieldCompetitorsMentioned:
		m.ResetCompetitorsMentioned()
		return nil
	case auditanalysis.FieldGeoScore:
		m.ResetGeoScore()
		return nil
	case auditanalysis.FieldSovScore:
		m.ResetSovScore()
		return nil
	case auditanalysis.FieldContextCompleteness:
		m.ResetContextCompleteness()
		return nil
	case auditanalysis.FieldRecommendationSignal:
		m.ResetRecommendationSignal()
		return nil
	case auditanalysis.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case auditanalysis.FieldErrored:
		m.ResetErrored()
		return nil
	case auditanalysis.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case auditanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.audit != nil {
		edges = append(edges, auditanalysis.EdgeAudit)
	}
	if m.response != nil {
		edges = append(edges, auditanalysis.EdgeResponse)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditAnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditanalysis.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	case auditanalysis.EdgeResponse:
		if id := m.response; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaudit {
		edges = append(edges, auditanalysis.EdgeAudit)
	}
	if m.clearedresponse {
		edges = append(edges, auditanalysis.EdgeResponse)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditAnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case auditanalysis.EdgeAudit:
		return m.clearedaudit
	case auditanalysis.EdgeResponse:
		return m.clearedresponse
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditAnalysisMutation) ClearEdge(name string) error {
	switch name {
	case auditanalysis.EdgeAudit:
		m.ClearAudit()
		return nil
	case auditanalysis.EdgeResponse:
		m.ClearResponse()
		return nil
	}
	return fmt.Errorf("unknown AuditAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditAnalysisMutation) ResetEdge(name string) error {
	switch name {
	case auditanalysis.EdgeAudit:
		m.ResetAudit()
		return nil
	case auditanalysis.EdgeResponse:
		m.ResetResponse()
		return nil
	}
	return fmt.Errorf("unknown AuditAnalysis edge %s", name)
}

// AuditDashboardMutation represents an operation that mutates the AuditDashboard nodes in the graph.
type AuditDashboardMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	scores                  *schema.DashboardScores
	recommendations         *[]schema.RankedRecommendation
	appendrecommendations   []schema.RankedRecommendation
	competitor_landscape    *schema.CompetitorLandscape
	category_insights       *[]schema.CategoryInsight
	appendcategory_insights []schema.CategoryInsight
	executive_summary       *string
	generated_at            *time.Time
	clearedFields           map[string]struct{}
	audit                   *string
	clearedaudit            bool
	done                    bool
	oldValue                func(context.Context) (*AuditDashboard, error)
	predicates              []predicate.AuditDashboard
}

var _ ent.Mutation = (*AuditDashboardMutation)(nil)

// auditdashboardOption allows management of the mutation configuration using functional options.
type auditdashboardOption func(*AuditDashboardMutation)

// newAuditDashboardMutation creates new mutation for the AuditDashboard entity.
func newAuditDashboardMutation(c config, op Op, opts ...auditdashboardOption) *AuditDashboardMutation {
	m := &AuditDashboardMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditDashboard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditDashboardID sets the ID field of the mutation.
func withAuditDashboardID(id string) auditdashboardOption {
	return func(m *AuditDashboardMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditDashboard
		)
		m.oldValue = func(ctx context.Context) (*AuditDashboard, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditDashboard.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditDashboard sets the old AuditDashboard of the mutation.
func withAuditDashboard(node *AuditDashboard) auditdashboardOption {
	return func(m *AuditDashboardMutation) {
		m.oldValue = func(context.Context) (*AuditDashboard, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditDashboardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditDashboardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditDashboard entities.
func (m *AuditDashboardMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditDashboardMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditDashboardMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditDashboard.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *AuditDashboardMutation) SetAuditID(s string) {
	m.audit = &s
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *AuditDashboardMutation) AuditID() (r string, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the AuditDashboard entity.
// If the AuditDashboard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditDashboardMutation) OldAuditID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *AuditDashboardMutation) ResetAuditID() {
	m.audit = nil
}

// SetScores sets the "scores" field.
func (m *AuditDashboardMutation) SetScores(ss schema.DashboardScores) {
	m.scores = &ss
}

// Scores returns the value of the "scores" field in the mutation.
func (m *AuditDashboardMutation) Scores() (r schema.DashboardScores, exists bool) {
	v := m.scores
	if v == nil {
		return
	}
	return *v, true
}

// OldScores returns the old "scores" field's value of the AuditDashboard entity.
// If the AuditDashboard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditDashboardMutation) OldScores(ctx context.Context) (v schema.DashboardScores, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScores: %w", err)
	}
	return oldValue.Scores, nil
}

// ResetScores resets all changes to the "scores" field.
func (m *AuditDashboardMutation) ResetScores() {
	m.scores = nil
}

// SetRecommendations sets the "recommendations" field.
func (m *AuditDashboardMutation) SetRecommendations(sr []schema.RankedRecommendation) {
	m.recommendations = &sr
	m.appendrecommendations = nil
}

// Recommendations returns the value of the "recommendations" field in the mutation.
func (m *AuditDashboardMutation) Recommendations() (r []schema.RankedRecommendation, exists bool) {
	v := m.recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendations returns the old "recommendations" field's value of the AuditDashboard entity.
// If the AuditDashboard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditDashboardMutation) OldRecommendations(ctx context.Context) (v []schema.RankedRecommendation, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendations: %w", err)
	}
	return oldValue.Recommendations, nil
}

// AppendRecommendations adds sr to the "recommendations" field.
func (m *AuditDashboardMutation) AppendRecommendations(sr []schema.RankedRecommendation) {
	m.appendrecommendations = append(m.appendrecommendations, sr...)
}

// AppendedRecommendations returns the list of values that were appended to the "recommendations" field in this mutation.
func (m *AuditDashboardMutation) AppendedRecommendations() ([]schema.RankedRecommendation, bool) {
	if len(m.appendrecommendations) == 0 {
		return nil, false
	}
	return m.appendrecommendations, true
}

// ClearRecommendations clears the value of the "recommendations" field.
func (m *AuditDashboardMutation) ClearRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	m.clearedFields[auditdashboard.FieldRecommendations] = struct{}{}
}

// RecommendationsCleared returns if the "recommendations" field was cleared in this mutation.
func (m *AuditDashboardMutation) RecommendationsCleared() bool {
	_, ok := m.clearedFields[auditdashboard.FieldRecommendations]
	return ok
}

// ResetRecommendations resets all changes to the "recommendations" field.
func (m *AuditDashboardMutation) ResetRecommendations() {
	m.recommendations = nil
	m.appendrecommendations = nil
	delete(m.clearedFields, auditdashboard.FieldRecommendations)
}

// SetCompetitorLandscape sets the "competitor_landscape" field.
func (m *AuditDashboardMutation) SetCompetitorLandscape(sl schema.CompetitorLandscape) {
	m.competitor_landscape = &sl
}

// CompetitorLandscape returns the value of the "competitor_landscape" field in the mutation.
func (m *AuditDashboardMutation) CompetitorLandscape() (r schema.CompetitorLandscape, exists bool) {
	v := m.competitor_landscape
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitorLandscape returns the old "competitor_landscape" field's value of the AuditDashboard entity.
// If the AuditDashboard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditDashboardMutation) OldCompetitorLandscape(ctx context.Context) (v schema.CompetitorLandscape, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitorLandscape is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitorLandscape requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitorLandscape: %w", err)
	}
	return oldValue.CompetitorLandscape, nil
}

// ClearCompetitorLandscape clears the value of the "competitor_landscape" field.
func (m *AuditDashboardMutation) ClearCompetitorLandscape() {
	m.competitor_landscape = nil
	m.clearedFields[auditdashboard.FieldCompetitorLandscape] = struct{}{}
}

// CompetitorLandscapeCleared returns if the "competitor_landscape" field was cleared in this mutation.
func (m *AuditDashboardMutation) CompetitorLandscapeCleared() bool {
	_, ok := m.clearedFields[auditdashboard.FieldCompetitorLandscape]
	return ok
}

// ResetCompetitorLandscape resets all changes to the "competitor_landscape" field.
func (m *AuditDashboardMutation) ResetCompetitorLandscape() {
	m.competitor_landscape = nil
	delete(m.clearedFields, auditdashboard.FieldCompetitorLandscape)
}

// SetCategoryInsights sets the "category_insights" field.
func (m *AuditDashboardMutation) SetCategoryInsights(si []schema.CategoryInsight) {
	m.category_insights = &si
	m.appendcategory_insights = nil
}

// CategoryInsights returns the value of the "category_insights" field in the mutation.
func (m *AuditDashboardMutation) CategoryInsights() (r []schema.CategoryInsight, exists bool) {
	v := m.category_insights
	if v == nil {
		return
	}
	return *v, true
}

// OldCategoryInsights returns the old "category_insights" field's value of the AuditDashboard entity.
// If the AuditDashboard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditDashboardMutation) OldCategoryInsights(ctx context.Context) (v []schema.CategoryInsight, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategoryInsights is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategoryInsights requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategoryInsights: %w", err)
	}
	return oldValue.CategoryInsights, nil
}

// AppendCategoryInsights adds si to the "category_insights" field.
func (m *AuditDashboardMutation) AppendCategoryInsights(si []schema.CategoryInsight) {
	m.appendcategory_insights = append(m.appendcategory_insights, si...)
}

// AppendedCategoryInsights returns the list of values that were appended to the "category_insights" field in this mutation.
func (m *AuditDashboardMutation) AppendedCategoryInsights() ([]schema.CategoryInsight, bool) {
	if len(m.appendcategory_insights) == 0 {
		return nil, false
	}
	return m.appendcategory_insights, true
}

// ClearCategoryInsights clears the value of the "category_insights" field.
func (m *AuditDashboardMutation) ClearCategoryInsights() {
	m.category_insights = nil
	m.appendcategory_insights = nil
	m.clearedFields[auditdashboard.FieldCategoryInsights] = struct{}{}
}

// CategoryInsightsCleared returns if the "category_insights" field was cleared in this mutation.
func (m *AuditDashboardMutation) CategoryInsightsCleared() bool {
	_, ok := m.clearedFields[auditdashboard.FieldCategoryInsights]
	return ok
}

// ResetCategoryInsights resets all changes to the "category_insights" field.
func (m *AuditDashboardMutation) ResetCategoryInsights() {
	m.category_insights = nil
	m.appendcategory_insights = nil
	delete(m.clearedFields, auditdashboard.FieldCategoryInsights)
}

// SetExecutiveSummary sets the "executive_summary" field.
func (m *AuditDashboardMutation) SetExecutiveSummary(s string) {
	m.executive_summary = &s
}

// ExecutiveSummary returns the value of the "executive_summary" field in the mutation.
func (m *AuditDashboardMutation) ExecutiveSummary() (r string, exists bool) {
	v := m.executive_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutiveSummary returns the old "executive_summary" field's value of the AuditDashboard entity.
// If the AuditDashboard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditDashboardMutation) OldExecutiveSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutiveSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutiveSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutiveSummary: %w", err)
	}
	return oldValue.ExecutiveSummary, nil
}

// ClearExecutiveSummary clears the value of the "executive_summary" field.
func (m *AuditDashboardMutation) ClearExecutiveSummary() {
	m.executive_summary = nil
	m.clearedFields[auditdashboard.FieldExecutiveSummary] = struct{}{}
}

// ExecutiveSummaryCleared returns if the "executive_summary" field was cleared in this mutation.
func (m *AuditDashboardMutation) ExecutiveSummaryCleared() bool {
	_, ok := m.clearedFields[auditdashboard.FieldExecutiveSummary]
	return ok
}

// ResetExecutiveSummary resets all changes to the "executive_summary" field.
func (m *AuditDashboardMutation) ResetExecutiveSummary() {
	m.executive_summary = nil
	delete(m.clearedFields, auditdashboard.FieldExecutiveSummary)
}

// SetGeneratedAt sets the "generated_at" field.
func (m *AuditDashboardMutation) SetGeneratedAt(t time.Time) {
	m.generated_at = &t
}

// GeneratedAt returns the value of the "generated_at" field in the mutation.
func (m *AuditDashboardMutation) GeneratedAt() (r time.Time, exists bool) {
	v := m.generated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneratedAt returns the old "generated_at" field's value of the AuditDashboard entity.
// If the AuditDashboard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditDashboardMutation) OldGeneratedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneratedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneratedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneratedAt: %w", err)
	}
	return oldValue.GeneratedAt, nil
}

// ResetGeneratedAt resets all changes to the "generated_at" field.
func (m *AuditDashboardMutation) ResetGeneratedAt() {
	m.generated_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *AuditDashboardMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[auditdashboard.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *AuditDashboardMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *AuditDashboardMutation) AuditIDs() (ids []string) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *AuditDashboardMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the AuditDashboardMutation builder.
func (m *AuditDashboardMutation) Where(ps ...predicate.AuditDashboard) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditDashboardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditDashboardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditDashboard, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditDashboardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditDashboardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditDashboard).
func (m *AuditDashboardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditDashboardMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.audit != nil {
		fields = append(fields, auditdashboard.FieldAuditID)
	}
	if m.scores != nil {
		fields = append(fields, auditdashboard.FieldScores)
	}
	if m.recommendations != nil {
		fields = append(fields, auditdashboard.FieldRecommendations)
	}
	if m.competitor_landscape != nil {
		fields = append(fields, auditdashboard.FieldCompetitorLandscape)
	}
	if m.category_insights != nil {
		fields = append(fields, auditdashboard.FieldCategoryInsights)
	}
	if m.executive_summary != nil {
		fields = append(fields, auditdashboard.FieldExecutiveSummary)
	}
	if m.generated_at != nil {
		fields = append(fields, auditdashboard.FieldGeneratedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditDashboardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditdashboard.FieldAuditID:
		return m.AuditID()
	case auditdashboard.FieldScores:
		return m.Scores()
	case auditdashboard.FieldRecommendations:
		return m.Recommendations()
	case auditdashboard.FieldCompetitorLandscape:
		return m.CompetitorLandscape()
	case auditdashboard.FieldCategoryInsights:
		return m.CategoryInsights()
	case auditdashboard.FieldExecutiveSummary:
		return m.ExecutiveSummary()
	case auditdashboard.FieldGeneratedAt:
		return m.GeneratedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditDashboardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditdashboard.FieldAuditID:
		return m.OldAuditID(ctx)
	case auditdashboard.FieldScores:
		return m.OldScores(ctx)
	case auditdashboard.FieldRecommendations:
		return m.OldRecommendations(ctx)
	case auditdashboard.FieldCompetitorLandscape:
		return m.OldCompetitorLandscape(ctx)
	case auditdashboard.FieldCategoryInsights:
		return m.OldCategoryInsights(ctx)
	case auditdashboard.FieldExecutiveSummary:
		return m.OldExecutiveSummary(ctx)
	case auditdashboard.FieldGeneratedAt:
		return m.OldGeneratedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditDashboard field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditDashboardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditdashboard.FieldAuditID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case auditdashboard.FieldScores:
		v, ok := value.(schema.DashboardScores)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScores(v)
		return nil
	case auditdashboard.FieldRecommendations:
		v, ok := value.([]schema.RankedRecommendation)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendations(v)
		return nil
	case auditdashboard.FieldCompetitorLandscape:
		v, ok := value.(schema.CompetitorLandscape)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitorLandscape(v)
		return nil
	case auditdashboard.FieldCategoryInsights:
		v, ok := value.([]schema.CategoryInsight)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategoryInsights(v)
		return nil
	case auditdashboard.FieldExecutiveSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutiveSummary(v)
		return nil
	case auditdashboard.FieldGeneratedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneratedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditDashboard field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditDashboardMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditDashboardMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditDashboardMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditDashboard numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditDashboardMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditdashboard.FieldRecommendations) {
		fields = append(fields, auditdashboard.FieldRecommendations)
	}
	if m.FieldCleared(auditdashboard.FieldCompetitorLandscape) {
		fields = append(fields, auditdashboard.FieldCompetitorLandscape)
	}
	if m.FieldCleared(auditdashboard.FieldCategoryInsights) {
		fields = append(fields, auditdashboard.FieldCategoryInsights)
	}
	if m.FieldCleared(auditdashboard.FieldExecutiveSummary) {
		fields = append(fields, auditdashboard.FieldExecutiveSummary)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditDashboardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditDashboardMutation) ClearField(name string) error {
	switch name {
	case auditdashboard.FieldRecommendations:
		m.ClearRecommendations()
		return nil
	case auditdashboard.FieldCompetitorLandscape:
		m.ClearCompetitorLandscape()
		return nil
	case auditdashboard.FieldCategoryInsights:
		m.ClearCategoryInsights()
		return nil
	case auditdashboard.FieldExecutiveSummary:
		m.ClearExecutiveSummary()
		return nil
	}
	return fmt.Errorf("unknown AuditDashboard nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditDashboardMutation) ResetField(name string) error {
	switch name {
	case auditdashboard.FieldAuditID:
		m.ResetAuditID()
		return nil
	case auditdashboard.FieldScores:
		m.ResetScores()
		return nil
	case auditdashboard.FieldRecommendations:
		m.ResetRecommendations()
		return nil
	case auditdashboard.FieldCompetitorLandscape:
		m.ResetCompetitorLandscape()
		return nil
	case auditdashboard.FieldCategoryInsights:
		m.ResetCategoryInsights()
		return nil
	case auditdashboard.FieldExecutiveSummary:
		m.ResetExecutiveSummary()
		return nil
	case auditdashboard.FieldGeneratedAt:
		m.ResetGeneratedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditDashboard field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditDashboardMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit != nil {
		edges = append(edges, auditdashboard.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditDashboardMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditdashboard.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditDashboardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditDashboardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditDashboardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit {
		edges = append(edges, auditdashboard.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditDashboardMutation) EdgeCleared(name string) bool {
	switch name {
	case auditdashboard.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditDashboardMutation) ClearEdge(name string) error {
	switch name {
	case auditdashboard.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditDashboard unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditDashboardMutation) ResetEdge(name string) error {
	switch name {
	case auditdashboard.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditDashboard edge %s", name)
}

// AuditEventMutation represents an operation that mutates the AuditEvent nodes in the graph.
type AuditEventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	audit         *string
	clearedaudit  bool
	done          bool
	oldValue      func(context.Context) (*AuditEvent, error)
	predicates    []predicate.AuditEvent
}

var _ ent.Mutation = (*AuditEventMutation)(nil)

// auditeventOption allows management of the mutation configuration using functional options.
type auditeventOption func(*AuditEventMutation)

// newAuditEventMutation creates new mutation for the AuditEvent entity.
func newAuditEventMutation(c config, op Op, opts ...auditeventOption) *AuditEventMutation {
	m := &AuditEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditEventID sets the ID field of the mutation.
func withAuditEventID(id int) auditeventOption {
	return func(m *AuditEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditEvent
		)
		m.oldValue = func(ctx context.Context) (*AuditEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditEvent sets the old AuditEvent of the mutation.
func withAuditEvent(node *AuditEvent) auditeventOption {
	return func(m *AuditEventMutation) {
		m.oldValue = func(context.Context) (*AuditEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *AuditEventMutation) SetAuditID(s string) {
	m.audit = &s
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *AuditEventMutation) AuditID() (r string, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldAuditID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *AuditEventMutation) ResetAuditID() {
	m.audit = nil
}

// SetChannel sets the "channel" field.
func (m *AuditEventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *AuditEventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *AuditEventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *AuditEventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *AuditEventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *AuditEventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditEventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditEventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditEvent entity.
// If the AuditEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditEventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditEventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *AuditEventMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[auditevent.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *AuditEventMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *AuditEventMutation) AuditIDs() (ids []string) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *AuditEventMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// Where appends a list predicates to the AuditEventMutation builder.
func (m *AuditEventMutation) Where(ps ...predicate.AuditEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditEvent).
func (m *AuditEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditEventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.audit != nil {
		fields = append(fields, auditevent.FieldAuditID)
	}
	if m.channel != nil {
		fields = append(fields, auditevent.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, auditevent.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, auditevent.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditevent.FieldAuditID:
		return m.AuditID()
	case auditevent.FieldChannel:
		return m.Channel()
	case auditevent.FieldPayload:
		return m.Payload()
	case auditevent.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditevent.FieldAuditID:
		return m.OldAuditID(ctx)
	case auditevent.FieldChannel:
		return m.OldChannel(ctx)
	case auditevent.FieldPayload:
		return m.OldPayload(ctx)
	case auditevent.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditevent.FieldAuditID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case auditevent.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case auditevent.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case auditevent.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditEventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditEventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AuditEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditEventMutation) ResetField(name string) error {
	switch name {
	case auditevent.FieldAuditID:
		m.ResetAuditID()
		return nil
	case auditevent.FieldChannel:
		m.ResetChannel()
		return nil
	case auditevent.FieldPayload:
		m.ResetPayload()
		return nil
	case auditevent.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audit != nil {
		edges = append(edges, auditevent.EdgeAudit)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditEventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditevent.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudit {
		edges = append(edges, auditevent.EdgeAudit)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditEventMutation) EdgeCleared(name string) bool {
	switch name {
	case auditevent.EdgeAudit:
		return m.clearedaudit
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditEventMutation) ClearEdge(name string) error {
	switch name {
	case auditevent.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditEventMutation) ResetEdge(name string) error {
	switch name {
	case auditevent.EdgeAudit:
		m.ResetAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditEvent edge %s", name)
}

// AuditQueryMutation represents an operation that mutates the AuditQuery nodes in the graph.
type AuditQueryMutation struct {
	config
	op               Op
	typ              string
	id               *string
	text             *string
	text_normalized  *string
	category         *auditquery.Category
	intent           *string
	priority         *float64
	addpriority      *float64
	metadata         *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	audit            *string
	clearedaudit     bool
	responses        map[string]struct{}
	removedresponses map[string]struct{}
	clearedresponses bool
	done             bool
	oldValue         func(context.Context) (*AuditQuery, error)
	predicates       []predicate.AuditQuery
}

var _ ent.Mutation = (*AuditQueryMutation)(nil)

// auditqueryOption allows management of the mutation configuration using functional options.
type auditqueryOption func(*AuditQueryMutation)

// newAuditQueryMutation creates new mutation for the AuditQuery entity.
func newAuditQueryMutation(c config, op Op, opts ...auditqueryOption) *AuditQueryMutation {
	m := &AuditQueryMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditQuery,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditQueryID sets the ID field of the mutation.
func withAuditQueryID(id string) auditqueryOption {
	return func(m *AuditQueryMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditQuery
		)
		m.oldValue = func(ctx context.Context) (*AuditQuery, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditQuery.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditQuery sets the old AuditQuery of the mutation.
func withAuditQuery(node *AuditQuery) auditqueryOption {
	return func(m *AuditQueryMutation) {
		m.oldValue = func(context.Context) (*AuditQuery, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditQueryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditQueryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditQuery entities.
func (m *AuditQueryMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditQueryMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditQueryMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditQuery.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *AuditQueryMutation) SetAuditID(s string) {
	m.audit = &s
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *AuditQueryMutation) AuditID() (r string, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldAuditID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *AuditQueryMutation) ResetAuditID() {
	m.audit = nil
}

// SetText sets the "text" field.
func (m *AuditQueryMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *AuditQueryMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *AuditQueryMutation) ResetText() {
	m.text = nil
}

// SetTextNormalized sets the "text_normalized" field.
func (m *AuditQueryMutation) SetTextNormalized(s string) {
	m.text_normalized = &s
}

// TextNormalized returns the value of the "text_normalized" field in the mutation.
func (m *AuditQueryMutation) TextNormalized() (r string, exists bool) {
	v := m.text_normalized
	if v == nil {
		return
	}
	return *v, true
}

// OldTextNormalized returns the old "text_normalized" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldTextNormalized(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextNormalized is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextNormalized requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextNormalized: %w", err)
	}
	return oldValue.TextNormalized, nil
}

// ResetTextNormalized resets all changes to the "text_normalized" field.
func (m *AuditQueryMutation) ResetTextNormalized() {
	m.text_normalized = nil
}

// SetCategory sets the "category" field.
func (m *AuditQueryMutation) SetCategory(a auditquery.Category) {
	m.category = &a
}

// Category returns the value of the "category" field in the mutation.
func (m *AuditQueryMutation) Category() (r auditquery.Category, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldCategory(ctx context.Context) (v auditquery.Category, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *AuditQueryMutation) ResetCategory() {
	m.category = nil
}

// SetIntent sets the "intent" field.
func (m *AuditQueryMutation) SetIntent(s string) {
	m.intent = &s
}

// Intent returns the value of the "intent" field in the mutation.
func (m *AuditQueryMutation) Intent() (r string, exists bool) {
	v := m.intent
	if v == nil {
		return
	}
	return *v, true
}

// OldIntent returns the old "intent" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldIntent(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntent: %w", err)
	}
	return oldValue.Intent, nil
}

// ClearIntent clears the value of the "intent" field.
func (m *AuditQueryMutation) ClearIntent() {
	m.intent = nil
	m.clearedFields[auditquery.FieldIntent] = struct{}{}
}

// IntentCleared returns if the "intent" field was cleared in this mutation.
func (m *AuditQueryMutation) IntentCleared() bool {
	_, ok := m.clearedFields[auditquery.FieldIntent]
	return ok
}

// ResetIntent resets all changes to the "intent" field.
func (m *AuditQueryMutation) ResetIntent() {
	m.intent = nil
	delete(m.clearedFields, auditquery.FieldIntent)
}

// SetPriority sets the "priority" field.
func (m *AuditQueryMutation) SetPriority(f float64) {
	m.priority = &f
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *AuditQueryMutation) Priority() (r float64, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldPriority(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds f to the "priority" field.
func (m *AuditQueryMutation) AddPriority(f float64) {
	if m.addpriority != nil {
		*m.addpriority += f
	} else {
		m.addpriority = &f
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *AuditQueryMutation) AddedPriority() (r float64, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *AuditQueryMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetMetadata sets the "metadata" field.
func (m *AuditQueryMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *AuditQueryMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *AuditQueryMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[auditquery.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *AuditQueryMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[auditquery.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *AuditQueryMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, auditquery.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditQueryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditQueryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditQuery entity.
// If the AuditQuery object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditQueryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditQueryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *AuditQueryMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[auditquery.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *AuditQueryMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *AuditQueryMutation) AuditIDs() (ids []string) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *AuditQueryMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// AddResponseIDs adds the "responses" edge to the AuditResponse entity by ids.
func (m *AuditQueryMutation) AddResponseIDs(ids ...string) {
	if m.responses == nil {
		m.responses = make(map[string]struct{})
	}
	for i := range ids {
		m.responses[ids[i]] = struct{}{}
	}
}

// ClearResponses clears the "responses" edge to the AuditResponse entity.
func (m *AuditQueryMutation) ClearResponses() {
	m.clearedresponses = true
}

// ResponsesCleared reports if the "responses" edge to the AuditResponse entity was cleared.
func (m *AuditQueryMutation) ResponsesCleared() bool {
	return m.clearedresponses
}

// RemoveResponseIDs removes the "responses" edge to the AuditResponse entity by IDs.
func (m *AuditQueryMutation) RemoveResponseIDs(ids ...string) {
	if m.removedresponses == nil {
		m.removedresponses = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.responses, ids[i])
		m.removedresponses[ids[i]] = struct{}{}
	}
}

// RemovedResponses returns the removed IDs of the "responses" edge to the AuditResponse entity.
func (m *AuditQueryMutation) RemovedResponsesIDs() (ids []string) {
	for id := range m.removedresponses {
		ids = append(ids, id)
	}
	return
}

// ResponsesIDs returns the "responses" edge IDs in the mutation.
func (m *AuditQueryMutation) ResponsesIDs() (ids []string) {
	for id := range m.responses {
		ids = append(ids, id)
	}
	return
}

// ResetResponses resets all changes to the "responses" edge.
func (m *AuditQueryMutation) ResetResponses() {
	m.responses = nil
	m.clearedresponses = false
	m.removedresponses = nil
}

// Where appends a list predicates to the AuditQueryMutation builder.
func (m *AuditQueryMutation) Where(ps ...predicate.AuditQuery) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditQueryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditQueryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditQuery, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditQueryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditQueryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditQuery).
func (m *AuditQueryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditQueryMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.audit != nil {
		fields = append(fields, auditquery.FieldAuditID)
	}
	if m.text != nil {
		fields = append(fields, auditquery.FieldText)
	}
	if m.text_normalized != nil {
		fields = append(fields, auditquery.FieldTextNormalized)
	}
	if m.category != nil {
		fields = append(fields, auditquery.FieldCategory)
	}
	if m.intent != nil {
		fields = append(fields, auditquery.FieldIntent)
	}
	if m.priority != nil {
		fields = append(fields, auditquery.FieldPriority)
	}
	if m.metadata != nil {
		fields = append(fields, auditquery.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, auditquery.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditQueryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditquery.FieldAuditID:
		return m.AuditID()
	case auditquery.FieldText:
		return m.Text()
	case auditquery.FieldTextNormalized:
		return m.TextNormalized()
	case auditquery.FieldCategory:
		return m.Category()
	case auditquery.FieldIntent:
		return m.Intent()
	case auditquery.FieldPriority:
		return m.Priority()
	case auditquery.FieldMetadata:
		return m.Metadata()
	case auditquery.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditQueryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditquery.FieldAuditID:
		return m.OldAuditID(ctx)
	case auditquery.FieldText:
		return m.OldText(ctx)
	case auditquery.FieldTextNormalized:
		return m.OldTextNormalized(ctx)
	case auditquery.FieldCategory:
		return m.OldCategory(ctx)
	case auditquery.FieldIntent:
		return m.OldIntent(ctx)
	case auditquery.FieldPriority:
		return m.OldPriority(ctx)
	case auditquery.FieldMetadata:
		return m.OldMetadata(ctx)
	case auditquery.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditQuery field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditQueryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditquery.FieldAuditID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case auditquery.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case auditquery.FieldTextNormalized:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextNormalized(v)
		return nil
	case auditquery.FieldCategory:
		v, ok := value.(auditquery.Category)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case auditquery.FieldIntent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntent(v)
		return nil
	case auditquery.FieldPriority:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case auditquery.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case auditquery.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditQuery field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditQueryMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, auditquery.FieldPriority)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditQueryMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditquery.FieldPriority:
		return m.AddedPriority()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditQueryMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditquery.FieldPriority:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	}
	return fmt.Errorf("unknown AuditQuery numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditQueryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditquery.FieldIntent) {
		fields = append(fields, auditquery.FieldIntent)
	}
	if m.FieldCleared(auditquery.FieldMetadata) {
		fields = append(fields, auditquery.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditQueryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditQueryMutation) ClearField(name string) error {
	switch name {
	case auditquery.FieldIntent:
		m.ClearIntent()
		return nil
	case auditquery.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown AuditQuery nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditQueryMutation) ResetField(name string) error {
	switch name {
	case auditquery.FieldAuditID:
		m.ResetAuditID()
		return nil
	case auditquery.FieldText:
		m.ResetText()
		return nil
	case auditquery.FieldTextNormalized:
		m.ResetTextNormalized()
		return nil
	case auditquery.FieldCategory:
		m.ResetCategory()
		return nil
	case auditquery.FieldIntent:
		m.ResetIntent()
		return nil
	case auditquery.FieldPriority:
		m.ResetPriority()
		return nil
	case auditquery.FieldMetadata:
		m.ResetMetadata()
		return nil
	case auditquery.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditQuery field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditQueryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.audit != nil {
		edges = append(edges, auditquery.EdgeAudit)
	}
	if m.responses != nil {
		edges = append(edges, auditquery.EdgeResponses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditQueryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditquery.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	case auditquery.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.responses))
		for id := range m.responses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditQueryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedresponses != nil {
		edges = append(edges, auditquery.EdgeResponses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditQueryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case auditquery.EdgeResponses:
		ids := make([]ent.Value, 0, len(m.removedresponses))
		for id := range m.removedresponses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditQueryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedaudit {
		edges = append(edges, auditquery.EdgeAudit)
	}
	if m.clearedresponses {
		edges = append(edges, auditquery.EdgeResponses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditQueryMutation) EdgeCleared(name string) bool {
	switch name {
	case auditquery.EdgeAudit:
		return m.clearedaudit
	case auditquery.EdgeResponses:
		return m.clearedresponses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditQueryMutation) ClearEdge(name string) error {
	switch name {
	case auditquery.EdgeAudit:
		m.ClearAudit()
		return nil
	}
	return fmt.Errorf("unknown AuditQuery unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditQueryMutation) ResetEdge(name string) error {
	switch name {
	case auditquery.EdgeAudit:
		m.ResetAudit()
		return nil
	case auditquery.EdgeResponses:
		m.ResetResponses()
		return nil
	}
	return fmt.Errorf("unknown AuditQuery edge %s", name)
}

// AuditResponseMutation represents an operation that mutates the AuditResponse nodes in the graph.
type AuditResponseMutation struct {
	config
	op               Op
	typ              string
	id               *string
	provider         *string
	model            *string
	text             *string
	latency_ms       *int
	addlatency_ms    *int
	input_tokens     *int
	addinput_tokens  *int
	output_tokens    *int
	addoutput_tokens *int
	cost_estimate    *float64
	addcost_estimate *float64
	error_kind       *auditresponse.ErrorKind
	error_message    *string
	created_at       *time.Time
	clearedFields    map[string]struct{}
	audit            *string
	clearedaudit     bool
	query            *string
	clearedquery     bool
	analysis         *string
	clearedanalysis  bool
	done             bool
	oldValue         func(context.Context) (*AuditResponse, error)
	predicates       []predicate.AuditResponse
}

var _ ent.Mutation = (*AuditResponseMutation)(nil)

// auditresponseOption allows management of the mutation configuration using functional options.
type auditresponseOption func(*AuditResponseMutation)

// newAuditResponseMutation creates new mutation for the AuditResponse entity.
func newAuditResponseMutation(c config, op Op, opts ...auditresponseOption) *AuditResponseMutation {
	m := &AuditResponseMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditResponse,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditResponseID sets the ID field of the mutation.
func withAuditResponseID(id string) auditresponseOption {
	return func(m *AuditResponseMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditResponse
		)
		m.oldValue = func(ctx context.Context) (*AuditResponse, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditResponse.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditResponse sets the old AuditResponse of the mutation.
func withAuditResponse(node *AuditResponse) auditresponseOption {
	return func(m *AuditResponseMutation) {
		m.oldValue = func(context.Context) (*AuditResponse, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditResponseMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditResponseMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AuditResponse entities.
func (m *AuditResponseMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditResponseMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditResponseMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditResponse.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAuditID sets the "audit_id" field.
func (m *AuditResponseMutation) SetAuditID(s string) {
	m.audit = &s
}

// AuditID returns the value of the "audit_id" field in the mutation.
func (m *AuditResponseMutation) AuditID() (r string, exists bool) {
	v := m.audit
	if v == nil {
		return
	}
	return *v, true
}

// OldAuditID returns the old "audit_id" field's value of the AuditResponse entity.
// If the AuditResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResponseMutation) OldAuditID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuditID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuditID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuditID: %w", err)
	}
	return oldValue.AuditID, nil
}

// ResetAuditID resets all changes to the "audit_id" field.
func (m *AuditResponseMutation) ResetAuditID() {
	m.audit = nil
}

// SetQueryID sets the "query_id" field.
func (m *AuditResponseMutation) SetQueryID(s string) {
	m.query = &s
}

// QueryID returns the value of the "query_id" field in the mutation.
func (m *AuditResponseMutation) QueryID() (r string, exists bool) {
	v := m.query
	if v == nil {
		return
	}
	return *v, true
}

// OldQueryID returns the old "query_id" field's value of the AuditResponse entity.
// If the AuditResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResponseMutation) OldQueryID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueryID: %w", err)
	}
	return oldValue.QueryID, nil
}

// ResetQueryID resets all changes to the "query_id" field.
func (m *AuditResponseMutation) ResetQueryID() {
	m.query = nil
}

// SetProvider sets the "provider" field.
func (m *AuditResponseMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *AuditResponseMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the AuditResponse entity.
// If the AuditResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResponseMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *AuditResponseMutation) ResetProvider() {
	m.provider = nil
}

// SetModel sets the "model" field.
func (m *AuditResponseMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AuditResponseMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the AuditResponse entity.
// If the AuditResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResponseMutation) OldModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ClearModel clears the value of the "model" field.
func (m *AuditResponseMutation) ClearModel() {
	m.model = nil
	m.clearedFields[auditresponse.FieldModel] = struct{}{}
}

// ModelCleared returns if the "model" field was cleared in this mutation.
func (m *AuditResponseMutation) ModelCleared() bool {
	_, ok := m.clearedFields[auditresponse.FieldModel]
	return ok
}

// ResetModel resets all changes to the "model" field.
func (m *AuditResponseMutation) ResetModel() {
	m.model = nil
	delete(m.clearedFields, auditresponse.FieldModel)
}

// SetText sets the "text" field.
func (m *AuditResponseMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *AuditResponseMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the AuditResponse entity.
// If the AuditResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResponseMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ClearText clears the value of the "text" field.
func (m *AuditResponseMutation) ClearText() {
	m.text = nil
	m.clearedFields[auditresponse.FieldText] = struct{}{}
}

// TextCleared returns if the "text" field was cleared in this mutation.
func (m *AuditResponseMutation) TextCleared() bool {
	_, ok := m.clearedFields[auditresponse.FieldText]
	return ok
}

// ResetText resets all changes to the "text" field.
func (m *AuditResponseMutation) ResetText() {
	m.text = nil
	delete(m.clearedFields, auditresponse.FieldText)
}

// SetLatencyMs sets the "latency_ms" field.
func (m *AuditResponseMutation) SetLatencyMs(i int) {
	m.latency_ms = &i
	m.addlatency_ms = nil
}

// LatencyMs returns the value of the "latency_ms" field in the mutation.
func (m *AuditResponseMutation) LatencyMs() (r int, exists bool) {
	v := m.latency_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldLatencyMs returns the old "latency_ms" field's value of the AuditResponse entity.
// If the AuditResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResponseMutation) OldLatencyMs(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLatencyMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLatencyMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLatencyMs: %w", err)
	}
	return oldValue.LatencyMs, nil
}

// AddLatencyMs adds i to the "latency_ms" field.
func (m *AuditResponseMutation) AddLatencyMs(i int) {
	if m.addlatency_ms != nil {
		*m.addlatency_ms += i
	} else {
		m.addlatency_ms = &i
	}
}

// AddedLatencyMs returns the value that was added to the "latency_ms" field in this mutation.
func (m *AuditResponseMutation) AddedLatencyMs() (r int, exists bool) {
	v := m.addlatency_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetLatencyMs resets all changes to the "latency_ms" field.
func (m *AuditResponseMutation) ResetLatencyMs() {
	m.latency_ms = nil
	m.addlatency_ms = nil
}

// SetInputTokens sets the "input_tokens" field.
func (m *AuditResponseMutation) SetInputTokens(i int) {
	m.input_tokens = &i
	m.addinput_tokens = nil
}

// InputTokens returns the value of the "input_tokens" field in the mutation.
func (m *AuditResponseMutation) InputTokens() (r int, exists bool) {
	v := m.input_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldInputTokens returns the old "input_tokens" field's value of the AuditResponse entity.
// If the AuditResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResponseMutation) OldInputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputTokens: %w", err)
	}
	return oldValue.InputTokens, nil
}

// AddInputTokens adds i to the "input_tokens" field.
func (m *AuditResponseMutation) AddInputTokens(i int) {
	if m.addinput_tokens != nil {
		*m.addinput_tokens += i
	} else {
		m.addinput_tokens = &i
	}
}

// AddedInputTokens returns the value that was added to the "input_tokens" field in this mutation.
func (m *AuditResponseMutation) AddedInputTokens() (r int, exists bool) {
	v := m.addinput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetInputTokens resets all changes to the "input_tokens" field.
func (m *AuditResponseMutation) ResetInputTokens() {
	m.input_tokens = nil
	m.addinput_tokens = nil
}

// SetOutputTokens sets the "output_tokens" field.
func (m *AuditResponseMutation) SetOutputTokens(i int) {
	m.output_tokens = &i
	m.addoutput_tokens = nil
}

// OutputTokens returns the value of the "output_tokens" field in the mutation.
func (m *AuditResponseMutation) OutputTokens() (r int, exists bool) {
	v := m.output_tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputTokens returns the old "output_tokens" field's value of the AuditResponse entity.
// If the AuditResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResponseMutation) OldOutputTokens(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputTokens: %w", err)
	}
	return oldValue.OutputTokens, nil
}

// AddOutputTokens adds i to the "output_tokens" field.
func (m *AuditResponseMutation) AddOutputTokens(i int) {
	if m.addoutput_tokens != nil {
		*m.addoutput_tokens += i
	} else {
		m.addoutput_tokens = &i
	}
}

// AddedOutputTokens returns the value that was added to the "output_tokens" field in this mutation.
func (m *AuditResponseMutation) AddedOutputTokens() (r int, exists bool) {
	v := m.addoutput_tokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutputTokens resets all changes to the "output_tokens" field.
func (m *AuditResponseMutation) ResetOutputTokens() {
	m.output_tokens = nil
	m.addoutput_tokens = nil
}

// SetCostEstimate sets the "cost_estimate" field.
func (m *AuditResponseMutation) SetCostEstimate(f float64) {
	m.cost_estimate = &f
	m.addcost_estimate = nil
}

// CostEstimate returns the value of the "cost_estimate" field in the mutation.
func (m *AuditResponseMutation) CostEstimate() (r float64, exists bool) {
	v := m.cost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldCostEstimate returns the old "cost_estimate" field's value of the AuditResponse entity.
// If the AuditResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResponseMutation) OldCostEstimate(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostEstimate: %w", err)
	}
	return oldValue.CostEstimate, nil
}

// AddCostEstimate adds f to the "cost_estimate" field.
func (m *AuditResponseMutation) AddCostEstimate(f float64) {
	if m.addcost_estimate != nil {
		*m.addcost_estimate += f
	} else {
		m.addcost_estimate = &f
	}
}

// AddedCostEstimate returns the value that was added to the "cost_estimate" field in this mutation.
func (m *AuditResponseMutation) AddedCostEstimate() (r float64, exists bool) {
	v := m.addcost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ClearCostEstimate clears the value of the "cost_estimate" field.
func (m *AuditResponseMutation) ClearCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
	m.clearedFields[auditresponse.FieldCostEstimate] = struct{}{}
}

// CostEstimateCleared returns if the "cost_estimate" field was cleared in this mutation.
func (m *AuditResponseMutation) CostEstimateCleared() bool {
	_, ok := m.clearedFields[auditresponse.FieldCostEstimate]
	return ok
}

// ResetCostEstimate resets all changes to the "cost_estimate" field.
func (m *AuditResponseMutation) ResetCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
	delete(m.clearedFields, auditresponse.FieldCostEstimate)
}

// SetErrorKind sets the "error_kind" field.
func (m *AuditResponseMutation) SetErrorKind(ak auditresponse.ErrorKind) {
	m.error_kind = &ak
}

// ErrorKind returns the value of the "error_kind" field in the mutation.
func (m *AuditResponseMutation) ErrorKind() (r auditresponse.ErrorKind, exists bool) {
	v := m.error_kind
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorKind returns the old "error_kind" field's value of the AuditResponse entity.
// If the AuditResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResponseMutation) OldErrorKind(ctx context.Context) (v *auditresponse.ErrorKind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorKind: %w", err)
	}
	return oldValue.ErrorKind, nil
}

// ClearErrorKind clears the value of the "error_kind" field.
func (m *AuditResponseMutation) ClearErrorKind() {
	m.error_kind = nil
	m.clearedFields[auditresponse.FieldErrorKind] = struct{}{}
}

// ErrorKindCleared returns if the "error_kind" field was cleared in this mutation.
func (m *AuditResponseMutation) ErrorKindCleared() bool {
	_, ok := m.clearedFields[auditresponse.FieldErrorKind]
	return ok
}

// ResetErrorKind resets all changes to the "error_kind" field.
func (m *AuditResponseMutation) ResetErrorKind() {
	m.error_kind = nil
	delete(m.clearedFields, auditresponse.FieldErrorKind)
}

// SetErrorMessage sets the "error_message" field.
func (m *AuditResponseMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *AuditResponseMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the AuditResponse entity.
// If the AuditResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResponseMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *AuditResponseMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[auditresponse.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *AuditResponseMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[auditresponse.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *AuditResponseMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, auditresponse.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *AuditResponseMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AuditResponseMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the AuditResponse entity.
// If the AuditResponse object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditResponseMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AuditResponseMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAudit clears the "audit" edge to the Audit entity.
func (m *AuditResponseMutation) ClearAudit() {
	m.clearedaudit = true
	m.clearedFields[auditresponse.FieldAuditID] = struct{}{}
}

// AuditCleared reports if the "audit" edge to the Audit entity was cleared.
func (m *AuditResponseMutation) AuditCleared() bool {
	return m.clearedaudit
}

// AuditIDs returns the "audit" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AuditID instead. It exists only for internal usage by the builders.
func (m *AuditResponseMutation) AuditIDs() (ids []string) {
	if id := m.audit; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAudit resets all changes to the "audit" edge.
func (m *AuditResponseMutation) ResetAudit() {
	m.audit = nil
	m.clearedaudit = false
}

// ClearQuery clears the "query" edge to the AuditQuery entity.
func (m *AuditResponseMutation) ClearQuery() {
	m.clearedquery = true
	m.clearedFields[auditresponse.FieldQueryID] = struct{}{}
}

// QueryCleared reports if the "query" edge to the AuditQuery entity was cleared.
func (m *AuditResponseMutation) QueryCleared() bool {
	return m.clearedquery
}

// QueryIDs returns the "query" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// QueryID instead. It exists only for internal usage by the builders.
func (m *AuditResponseMutation) QueryIDs() (ids []string) {
	if id := m.query; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetQuery resets all changes to the "query" edge.
func (m *AuditResponseMutation) ResetQuery() {
	m.query = nil
	m.clearedquery = false
}

// SetAnalysisID sets the "analysis" edge to the AuditAnalysis entity by id.
func (m *AuditResponseMutation) SetAnalysisID(id string) {
	m.analysis = &id
}

// ClearAnalysis clears the "analysis" edge to the AuditAnalysis entity.
func (m *AuditResponseMutation) ClearAnalysis() {
	m.clearedanalysis = true
}

// AnalysisCleared reports if the "analysis" edge to the AuditAnalysis entity was cleared.
func (m *AuditResponseMutation) AnalysisCleared() bool {
	return m.clearedanalysis
}

// AnalysisID returns the "analysis" edge ID in the mutation.
func (m *AuditResponseMutation) AnalysisID() (id string, exists bool) {
	if m.analysis != nil {
		return *m.analysis, true
	}
	return
}

// AnalysisIDs returns the "analysis" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnalysisID instead. It exists only for internal usage by the builders.
func (m *AuditResponseMutation) AnalysisIDs() (ids []string) {
	if id := m.analysis; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnalysis resets all changes to the "analysis" edge.
func (m *AuditResponseMutation) ResetAnalysis() {
	m.analysis = nil
	m.clearedanalysis = false
}

// Where appends a list predicates to the AuditResponseMutation builder.
func (m *AuditResponseMutation) Where(ps ...predicate.AuditResponse) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditResponseMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditResponseMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditResponse, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditResponseMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditResponseMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditResponse).
func (m *AuditResponseMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditResponseMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.audit != nil {
		fields = append(fields, auditresponse.FieldAuditID)
	}
	if m.query != nil {
		fields = append(fields, auditresponse.FieldQueryID)
	}
	if m.provider != nil {
		fields = append(fields, auditresponse.FieldProvider)
	}
	if m.model != nil {
		fields = append(fields, auditresponse.FieldModel)
	}
	if m.text != nil {
		fields = append(fields, auditresponse.FieldText)
	}
	if m.latency_ms != nil {
		fields = append(fields, auditresponse.FieldLatencyMs)
	}
	if m.input_tokens != nil {
		fields = append(fields, auditresponse.FieldInputTokens)
	}
	if m.output_tokens != nil {
		fields = append(fields, auditresponse.FieldOutputTokens)
	}
	if m.cost_estimate != nil {
		fields = append(fields, auditresponse.FieldCostEstimate)
	}
	if m.error_kind != nil {
		fields = append(fields, auditresponse.FieldErrorKind)
	}
	if m.error_message != nil {
		fields = append(fields, auditresponse.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, auditresponse.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditResponseMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditresponse.FieldAuditID:
		return m.AuditID()
	case auditresponse.FieldQueryID:
		return m.QueryID()
	case auditresponse.FieldProvider:
		return m.Provider()
	case auditresponse.FieldModel:
		return m.Model()
	case auditresponse.FieldText:
		return m.Text()
	case auditresponse.FieldLatencyMs:
		return m.LatencyMs()
	case auditresponse.FieldInputTokens:
		return m.InputTokens()
	case auditresponse.FieldOutputTokens:
		return m.OutputTokens()
	case auditresponse.FieldCostEstimate:
		return m.CostEstimate()
	case auditresponse.FieldErrorKind:
		return m.ErrorKind()
	case auditresponse.FieldErrorMessage:
		return m.ErrorMessage()
	case auditresponse.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditResponseMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditresponse.FieldAuditID:
		return m.OldAuditID(ctx)
	case auditresponse.FieldQueryID:
		return m.OldQueryID(ctx)
	case auditresponse.FieldProvider:
		return m.OldProvider(ctx)
	case auditresponse.FieldModel:
		return m.OldModel(ctx)
	case auditresponse.FieldText:
		return m.OldText(ctx)
	case auditresponse.FieldLatencyMs:
		return m.OldLatencyMs(ctx)
	case auditresponse.FieldInputTokens:
		return m.OldInputTokens(ctx)
	case auditresponse.FieldOutputTokens:
		return m.OldOutputTokens(ctx)
	case auditresponse.FieldCostEstimate:
		return m.OldCostEstimate(ctx)
	case auditresponse.FieldErrorKind:
		return m.OldErrorKind(ctx)
	case auditresponse.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case auditresponse.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AuditResponse field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditResponseMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditresponse.FieldAuditID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuditID(v)
		return nil
	case auditresponse.FieldQueryID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueryID(v)
		return nil
	case auditresponse.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case auditresponse.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case auditresponse.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case auditresponse.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLatencyMs(v)
		return nil
	case auditresponse.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputTokens(v)
		return nil
	case auditresponse.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputTokens(v)
		return nil
	case auditresponse.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostEstimate(v)
		return nil
	case auditresponse.FieldErrorKind:
		v, ok := value.(auditresponse.ErrorKind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorKind(v)
		return nil
	case auditresponse.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case auditresponse.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AuditResponse field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditResponseMutation) AddedFields() []string {
	var fields []string
	if m.addlatency_ms != nil {
		fields = append(fields, auditresponse.FieldLatencyMs)
	}
	if m.addinput_tokens != nil {
		fields = append(fields, auditresponse.FieldInputTokens)
	}
	if m.addoutput_tokens != nil {
		fields = append(fields, auditresponse.FieldOutputTokens)
	}
	if m.addcost_estimate != nil {
		fields = append(fields, auditresponse.FieldCostEstimate)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditResponseMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case auditresponse.FieldLatencyMs:
		return m.AddedLatencyMs()
	case auditresponse.FieldInputTokens:
		return m.AddedInputTokens()
	case auditresponse.FieldOutputTokens:
		return m.AddedOutputTokens()
	case auditresponse.FieldCostEstimate:
		return m.AddedCostEstimate()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditResponseMutation) AddField(name string, value ent.Value) error {
	switch name {
	case auditresponse.FieldLatencyMs:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLatencyMs(v)
		return nil
	case auditresponse.FieldInputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInputTokens(v)
		return nil
	case auditresponse.FieldOutputTokens:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutputTokens(v)
		return nil
	case auditresponse.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostEstimate(v)
		return nil
	}
	return fmt.Errorf("unknown AuditResponse numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditResponseMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditresponse.FieldModel) {
		fields = append(fields, auditresponse.FieldModel)
	}
	if m.FieldCleared(auditresponse.FieldText) {
		fields = append(fields, auditresponse.FieldText)
	}
	if m.FieldCleared(auditresponse.FieldCostEstimate) {
		fields = append(fields, auditresponse.FieldCostEstimate)
	}
	if m.FieldCleared(auditresponse.FieldErrorKind) {
		fields = append(fields, auditresponse.FieldErrorKind)
	}
	if m.FieldCleared(auditresponse.FieldErrorMessage) {
		fields = append(fields, auditresponse.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditResponseMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditResponseMutation) ClearField(name string) error {
	switch name {
	case auditresponse.FieldModel:
		m.ClearModel()
		return nil
	case auditresponse.FieldText:
		m.ClearText()
		return nil
	case auditresponse.FieldCostEstimate:
		m.ClearCostEstimate()
		return nil
	case auditresponse.FieldErrorKind:
		m.ClearErrorKind()
		return nil
	case auditresponse.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown AuditResponse nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditResponseMutation) ResetField(name string) error {
	switch name {
	case auditresponse.FieldAuditID:
		m.ResetAuditID()
		return nil
	case auditresponse.FieldQueryID:
		m.ResetQueryID()
		return nil
	case auditresponse.FieldProvider:
		m.ResetProvider()
		return nil
	case auditresponse.FieldModel:
		m.ResetModel()
		return nil
	case auditresponse.FieldText:
		m.ResetText()
		return nil
	case auditresponse.FieldLatencyMs:
		m.ResetLatencyMs()
		return nil
	case auditresponse.FieldInputTokens:
		m.ResetInputTokens()
		return nil
	case auditresponse.FieldOutputTokens:
		m.ResetOutputTokens()
		return nil
	case auditresponse.FieldCostEstimate:
		m.ResetCostEstimate()
		return nil
	case auditresponse.FieldErrorKind:
		m.ResetErrorKind()
		return nil
	case auditresponse.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case auditresponse.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown AuditResponse field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditResponseMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.audit != nil {
		edges = append(edges, auditresponse.EdgeAudit)
	}
	if m.query != nil {
		edges = append(edges, auditresponse.EdgeQuery)
	}
	if m.analysis != nil {
		edges = append(edges, auditresponse.EdgeAnalysis)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditResponseMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditresponse.EdgeAudit:
		if id := m.audit; id != nil {
			return []ent.Value{*id}
		}
	case auditresponse.EdgeQuery:
		if id := m.query; id != nil {
			return []ent.Value{*id}
		}
	case auditresponse.EdgeAnalysis:
		if id := m.analysis; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditResponseMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditResponseMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditResponseMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedaudit {
		edges = append(edges, auditresponse.EdgeAudit)
	}
	if m.clearedquery {
		edges = append(edges, auditresponse.EdgeQuery)
	}
	if m.clearedanalysis {
		edges = append(edges, auditresponse.EdgeAnalysis)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditResponseMutation) EdgeCleared(name string) bool {
	switch name {
	case auditresponse.EdgeAudit:
		return m.clearedaudit
	case auditresponse.EdgeQuery:
		return m.clearedquery
	case auditresponse.EdgeAnalysis:
		return m.clearedanalysis
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditResponseMutation) ClearEdge(name string) error {
	switch name {
	case auditresponse.EdgeAudit:
		m.ClearAudit()
		return nil
	case auditresponse.EdgeQuery:
		m.ClearQuery()
		return nil
	case auditresponse.EdgeAnalysis:
		m.ClearAnalysis()
		return nil
	}
	return fmt.Errorf("unknown AuditResponse unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditResponseMutation) ResetEdge(name string) error {
	switch name {
	case auditresponse.EdgeAudit:
		m.ResetAudit()
		return nil
	case auditresponse.EdgeQuery:
		m.ResetQuery()
		return nil
	case auditresponse.EdgeAnalysis:
		m.ResetAnalysis()
		return nil
	}
	return fmt.Errorf("unknown AuditResponse edge %s", name)
}

// CompanyMutation represents an operation that mutates the Company nodes in the graph.
type CompanyMutation struct {
	config
	op                       Op
	typ                      string
	id                       *string
	name                     *string
	domain                   *string
	industry                 *string
	sub_industry             *string
	description              *string
	original_description     *string
	final_description        *string
	value_propositions       *[]string
	appendvalue_propositions []string
	target_audiences         *[]string
	appendtarget_audiences   []string
	competitors              *[]string
	appendcompetitors        []string
	products                 *[]string
	appendproducts           []string
	pain_points              *[]string
	appendpain_points        []string
	geographies              *[]string
	appendgeographies        []string
	metadata                 *map[string]interface{}
	created_at               *time.Time
	clearedFields            map[string]struct{}
	audits                   map[string]struct{}
	removedaudits            map[string]struct{}
	clearedaudits            bool
	done                     bool
	oldValue                 func(context.Context) (*Company, error)
	predicates               []predicate.Company
}

var _ ent.Mutation = (*CompanyMutation)(nil)

// companyOption allows management of the mutation configuration using functional options.
type companyOption func(*CompanyMutation)

// newCompanyMutation creates new mutation for the Company entity.
func newCompanyMutation(c config, op Op, opts ...companyOption) *CompanyMutation {
	m := &CompanyMutation{
		config:        c,
		op:            op,
		typ:           TypeCompany,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompanyID sets the ID field of the mutation.
func withCompanyID(id string) companyOption {
	return func(m *CompanyMutation) {
		var (
			err   error
			once  sync.Once
			value *Company
		)
		m.oldValue = func(ctx context.Context) (*Company, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Company.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompany sets the old Company of the mutation.
func withCompany(node *Company) companyOption {
	return func(m *CompanyMutation) {
		m.oldValue = func(context.Context) (*Company, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompanyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompanyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Company entities.
func (m *CompanyMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompanyMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompanyMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Company.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *CompanyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CompanyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CompanyMutation) ResetName() {
	m.name = nil
}

// SetDomain sets the "domain" field.
func (m *CompanyMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *CompanyMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ClearDomain clears the value of the "domain" field.
func (m *CompanyMutation) ClearDomain() {
	m.domain = nil
	m.clearedFields[company.FieldDomain] = struct{}{}
}

// DomainCleared returns if the "domain" field was cleared in this mutation.
func (m *CompanyMutation) DomainCleared() bool {
	_, ok := m.clearedFields[company.FieldDomain]
	return ok
}

// ResetDomain resets all changes to the "domain" field.
func (m *CompanyMutation) ResetDomain() {
	m.domain = nil
	delete(m.clearedFields, company.FieldDomain)
}

// SetIndustry sets the "industry" field.
func (m *CompanyMutation) SetIndustry(s string) {
	m.industry = &s
}

// Industry returns the value of the "industry" field in the mutation.
func (m *CompanyMutation) Industry() (r string, exists bool) {
	v := m.industry
	if v == nil {
		return
	}
	return *v, true
}

// OldIndustry returns the old "industry" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldIndustry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndustry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndustry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndustry: %w", err)
	}
	return oldValue.Industry, nil
}

// ClearIndustry clears the value of the "industry" field.
func (m *CompanyMutation) ClearIndustry() {
	m.industry = nil
	m.clearedFields[company.FieldIndustry] = struct{}{}
}

// IndustryCleared returns if the "industry" field was cleared in this mutation.
func (m *CompanyMutation) IndustryCleared() bool {
	_, ok := m.clearedFields[company.FieldIndustry]
	return ok
}

// ResetIndustry resets all changes to the "industry" field.
func (m *CompanyMutation) ResetIndustry() {
	m.industry = nil
	delete(m.clearedFields, company.FieldIndustry)
}

// SetSubIndustry sets the "sub_industry" field.
func (m *CompanyMutation) SetSubIndustry(s string) {
	m.sub_industry = &s
}

// SubIndustry returns the value of the "sub_industry" field in the mutation.
func (m *CompanyMutation) SubIndustry() (r string, exists bool) {
	v := m.sub_industry
	if v == nil {
		return
	}
	return *v, true
}

// OldSubIndustry returns the old "sub_industry" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldSubIndustry(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubIndustry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubIndustry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubIndustry: %w", err)
	}
	return oldValue.SubIndustry, nil
}

// ClearSubIndustry clears the value of the "sub_industry" field.
func (m *CompanyMutation) ClearSubIndustry() {
	m.sub_industry = nil
	m.clearedFields[company.FieldSubIndustry] = struct{}{}
}

// SubIndustryCleared returns if the "sub_industry" field was cleared in this mutation.
func (m *CompanyMutation) SubIndustryCleared() bool {
	_, ok := m.clearedFields[company.FieldSubIndustry]
	return ok
}

// ResetSubIndustry resets all changes to the "sub_industry" field.
func (m *CompanyMutation) ResetSubIndustry() {
	m.sub_industry = nil
	delete(m.clearedFields, company.FieldSubIndustry)
}

// SetDescription sets the "description" field.
func (m *CompanyMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CompanyMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *CompanyMutation) ResetDescription() {
	m.description = nil
}

// SetOriginalDescription sets the "original_description" field.
func (m *CompanyMutation) SetOriginalDescription(s string) {
	m.original_description = &s
}

// OriginalDescription returns the value of the "original_description" field in the mutation.
func (m *CompanyMutation) OriginalDescription() (r string, exists bool) {
	v := m.original_description
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalDescription returns the old "original_description" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldOriginalDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalDescription: %w", err)
	}
	return oldValue.OriginalDescription, nil
}

// ClearOriginalDescription clears the value of the "original_description" field.
func (m *CompanyMutation) ClearOriginalDescription() {
	m.original_description = nil
	m.clearedFields[company.FieldOriginalDescription] = struct{}{}
}

// OriginalDescriptionCleared returns if the "original_description" field was cleared in this mutation.
func (m *CompanyMutation) OriginalDescriptionCleared() bool {
	_, ok := m.clearedFields[company.FieldOriginalDescription]
	return ok
}

// ResetOriginalDescription resets all changes to the "original_description" field.
func (m *CompanyMutation) ResetOriginalDescription() {
	m.original_description = nil
	delete(m.clearedFields, company.FieldOriginalDescription)
}

// SetFinalDescription sets the "final_description" field.
func (m *CompanyMutation) SetFinalDescription(s string) {
	m.final_description = &s
}

// FinalDescription returns the value of the "final_description" field in the mutation.
func (m *CompanyMutation) FinalDescription() (r string, exists bool) {
	v := m.final_description
	if v == nil {
		return
	}
	return *v, true
}

// OldFinalDescription returns the old "final_description" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldFinalDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinalDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinalDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinalDescription: %w", err)
	}
	return oldValue.FinalDescription, nil
}

// ClearFinalDescription clears the value of the "final_description" field.
func (m *CompanyMutation) ClearFinalDescription() {
	m.final_description = nil
	m.clearedFields[company.FieldFinalDescription] = struct{}{}
}

// FinalDescriptionCleared returns if the "final_description" field was cleared in this mutation.
func (m *CompanyMutation) FinalDescriptionCleared() bool {
	_, ok := m.clearedFields[company.FieldFinalDescription]
	return ok
}

// ResetFinalDescription resets all changes to the "final_description" field.
func (m *CompanyMutation) ResetFinalDescription() {
	m.final_description = nil
	delete(m.clearedFields, company.FieldFinalDescription)
}

// SetValuePropositions sets the "value_propositions" field.
func (m *CompanyMutation) SetValuePropositions(s []string) {
	m.value_propositions = &s
	m.appendvalue_propositions = nil
}

// ValuePropositions returns the value of the "value_propositions" field in the mutation.
func (m *CompanyMutation) ValuePropositions() (r []string, exists bool) {
	v := m.value_propositions
	if v == nil {
		return
	}
	return *v, true
}

// OldValuePropositions returns the old "value_propositions" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldValuePropositions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValuePropositions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValuePropositions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValuePropositions: %w", err)
	}
	return oldValue.ValuePropositions, nil
}

// AppendValuePropositions adds s to the "value_propositions" field.
func (m *CompanyMutation) AppendValuePropositions(s []string) {
	m.appendvalue_propositions = append(m.appendvalue_propositions, s...)
}

// AppendedValuePropositions returns the list of values that were appended to the "value_propositions" field in this mutation.
func (m *CompanyMutation) AppendedValuePropositions() ([]string, bool) {
	if len(m.appendvalue_propositions) == 0 {
		return nil, false
	}
	return m.appendvalue_propositions, true
}

// ClearValuePropositions clears the value of the "value_propositions" field.
func (m *CompanyMutation) ClearValuePropositions() {
	m.value_propositions = nil
	m.appendvalue_propositions = nil
	m.clearedFields[company.FieldValuePropositions] = struct{}{}
}

// ValuePropositionsCleared returns if the "value_propositions" field was cleared in this mutation.
func (m *CompanyMutation) ValuePropositionsCleared() bool {
	_, ok := m.clearedFields[company.FieldValuePropositions]
	return ok
}

// ResetValuePropositions resets all changes to the "value_propositions" field.
func (m *CompanyMutation) ResetValuePropositions() {
	m.value_propositions = nil
	m.appendvalue_propositions = nil
	delete(m.clearedFields, company.FieldValuePropositions)
}

// SetTargetAudiences sets the "target_audiences" field.
func (m *CompanyMutation) SetTargetAudiences(s []string) {
	m.target_audiences = &s
	m.appendtarget_audiences = nil
}

// TargetAudiences returns the value of the "target_audiences" field in the mutation.
func (m *CompanyMutation) TargetAudiences() (r []string, exists bool) {
	v := m.target_audiences
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAudiences returns the old "target_audiences" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldTargetAudiences(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAudiences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAudiences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAudiences: %w", err)
	}
	return oldValue.TargetAudiences, nil
}

// AppendTargetAudiences adds s to the "target_audiences" field.
func (m *CompanyMutation) AppendTargetAudiences(s []string) {
	m.appendtarget_audiences = append(m.appendtarget_audiences, s...)
}

// AppendedTargetAudiences returns the list of values that were appended to the "target_audiences" field in this mutation.
func (m *CompanyMutation) AppendedTargetAudiences() ([]string, bool) {
	if len(m.appendtarget_audiences) == 0 {
		return nil, false
	}
	return m.appendtarget_audiences, true
}

// ClearTargetAudiences clears the value of the "target_audiences" field.
func (m *CompanyMutation) ClearTargetAudiences() {
	m.target_audiences = nil
	m.appendtarget_audiences = nil
	m.clearedFields[company.FieldTargetAudiences] = struct{}{}
}

// TargetAudiencesCleared returns if the "target_audiences" field was cleared in this mutation.
func (m *CompanyMutation) TargetAudiencesCleared() bool {
	_, ok := m.clearedFields[company.FieldTargetAudiences]
	return ok
}

// ResetTargetAudiences resets all changes to the "target_audiences" field.
func (m *CompanyMutation) ResetTargetAudiences() {
	m.target_audiences = nil
	m.appendtarget_audiences = nil
	delete(m.clearedFields, company.FieldTargetAudiences)
}

// SetCompetitors sets the "competitors" field.
func (m *CompanyMutation) SetCompetitors(s []string) {
	m.competitors = &s
	m.appendcompetitors = nil
}

// Competitors returns the value of the "competitors" field in the mutation.
func (m *CompanyMutation) Competitors() (r []string, exists bool) {
	v := m.competitors
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitors returns the old "competitors" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCompetitors(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitors: %w", err)
	}
	return oldValue.Competitors, nil
}

// AppendCompetitors adds s to the "competitors" field.
func (m *CompanyMutation) AppendCompetitors(s []string) {
	m.appendcompetitors = append(m.appendcompetitors, s...)
}

// AppendedCompetitors returns the list of values that were appended to the "competitors" field in this mutation.
func (m *CompanyMutation) AppendedCompetitors() ([]string, bool) {
	if len(m.appendcompetitors) == 0 {
		return nil, false
	}
	return m.appendcompetitors, true
}

// ClearCompetitors clears the value of the "competitors" field.
func (m *CompanyMutation) ClearCompetitors() {
	m.competitors = nil
	m.appendcompetitors = nil
	m.clearedFields[company.FieldCompetitors] = struct{}{}
}

// CompetitorsCleared returns if the "competitors" field was cleared in this mutation.
func (m *CompanyMutation) CompetitorsCleared() bool {
	_, ok := m.clearedFields[company.FieldCompetitors]
	return ok
}

// ResetCompetitors resets all changes to the "competitors" field.
func (m *CompanyMutation) ResetCompetitors() {
	m.competitors = nil
	m.appendcompetitors = nil
	delete(m.clearedFields, company.FieldCompetitors)
}

// SetProducts sets the "products" field.
func (m *CompanyMutation) SetProducts(s []string) {
	m.products = &s
	m.appendproducts = nil
}

// Products returns the value of the "products" field in the mutation.
func (m *CompanyMutation) Products() (r []string, exists bool) {
	v := m.products
	if v == nil {
		return
	}
	return *v, true
}

// OldProducts returns the old "products" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldProducts(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProducts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProducts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProducts: %w", err)
	}
	return oldValue.Products, nil
}

// AppendProducts adds s to the "products" field.
func (m *CompanyMutation) AppendProducts(s []string) {
	m.appendproducts = append(m.appendproducts, s...)
}

// AppendedProducts returns the list of values that were appended to the "products" field in this mutation.
func (m *CompanyMutation) AppendedProducts() ([]string, bool) {
	if len(m.appendproducts) == 0 {
		return nil, false
	}
	return m.appendproducts, true
}

// ClearProducts clears the value of the "products" field.
func (m *CompanyMutation) ClearProducts() {
	m.products = nil
	m.appendproducts = nil
	m.clearedFields[company.FieldProducts] = struct{}{}
}

// ProductsCleared returns if the "products" field was cleared in this mutation.
func (m *CompanyMutation) ProductsCleared() bool {
	_, ok := m.clearedFields[company.FieldProducts]
	return ok
}

// ResetProducts resets all changes to the "products" field.
func (m *CompanyMutation) ResetProducts() {
	m.products = nil
	m.appendproducts = nil
	delete(m.clearedFields, company.FieldProducts)
}

// SetPainPoints sets the "pain_points" field.
func (m *CompanyMutation) SetPainPoints(s []string) {
	m.pain_points = &s
	m.appendpain_points = nil
}

// PainPoints returns the value of the "pain_points" field in the mutation.
func (m *CompanyMutation) PainPoints() (r []string, exists bool) {
	v := m.pain_points
	if v == nil {
		return
	}
	return *v, true
}

// OldPainPoints returns the old "pain_points" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldPainPoints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPainPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPainPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPainPoints: %w", err)
	}
	return oldValue.PainPoints, nil
}

// AppendPainPoints adds s to the "pain_points" field.
func (m *CompanyMutation) AppendPainPoints(s []string) {
	m.appendpain_points = append(m.appendpain_points, s...)
}

// AppendedPainPoints returns the list of values that were appended to the "pain_points" field in this mutation.
func (m *CompanyMutation) AppendedPainPoints() ([]string, bool) {
	if len(m.appendpain_points) == 0 {
		return nil, false
	}
	return m.appendpain_points, true
}

// ClearPainPoints clears the value of the "pain_points" field.
func (m *CompanyMutation) ClearPainPoints() {
	m.pain_points = nil
	m.appendpain_points = nil
	m.clearedFields[company.FieldPainPoints] = struct{}{}
}

// PainPointsCleared returns if the "pain_points" field was cleared in this mutation.
func (m *CompanyMutation) PainPointsCleared() bool {
	_, ok := m.clearedFields[company.FieldPainPoints]
	return ok
}

// ResetPainPoints resets all changes to the "pain_points" field.
func (m *CompanyMutation) ResetPainPoints() {
	m.pain_points = nil
	m.appendpain_points = nil
	delete(m.clearedFields, company.FieldPainPoints)
}

// SetGeographies sets the "geographies" field.
func (m *CompanyMutation) SetGeographies(s []string) {
	m.geographies = &s
	m.appendgeographies = nil
}

// Geographies returns the value of the "geographies" field in the mutation.
func (m *CompanyMutation) Geographies() (r []string, exists bool) {
	v := m.geographies
	if v == nil {
		return
	}
	return *v, true
}

// OldGeographies returns the old "geographies" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldGeographies(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeographies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeographies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeographies: %w", err)
	}
	return oldValue.Geographies, nil
}

// AppendGeographies adds s to the "geographies" field.
func (m *CompanyMutation) AppendGeographies(s []string) {
	m.appendgeographies = append(m.appendgeographies, s...)
}

// AppendedGeographies returns the list of values that were appended to the "geographies" field in this mutation.
func (m *CompanyMutation) AppendedGeographies() ([]string, bool) {
	if len(m.appendgeographies) == 0 {
		return nil, false
	}
	return m.appendgeographies, true
}

// ClearGeographies clears the value of the "geographies" field.
func (m *CompanyMutation) ClearGeographies() {
	m.geographies = nil
	m.appendgeographies = nil
	m.clearedFields[company.FieldGeographies] = struct{}{}
}

// GeographiesCleared returns if the "geographies" field was cleared in this mutation.
func (m *CompanyMutation) GeographiesCleared() bool {
	_, ok := m.clearedFields[company.FieldGeographies]
	return ok
}

// ResetGeographies resets all changes to the "geographies" field.
func (m *CompanyMutation) ResetGeographies() {
	m.geographies = nil
	m.appendgeographies = nil
	delete(m.clearedFields, company.FieldGeographies)
}

// SetMetadata sets the "metadata" field.
func (m *CompanyMutation) SetMetadata(value map[string]interface{}) {
	m.metadata = &value
}

// Metadata returns the value of the "metadata" field in the mutation.
func (m *CompanyMutation) Metadata() (r map[string]interface{}, exists bool) {
	v := m.metadata
	if v == nil {
		return
	}
	return *v, true
}

// OldMetadata returns the old "metadata" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldMetadata(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetadata is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetadata requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetadata: %w", err)
	}
	return oldValue.Metadata, nil
}

// ClearMetadata clears the value of the "metadata" field.
func (m *CompanyMutation) ClearMetadata() {
	m.metadata = nil
	m.clearedFields[company.FieldMetadata] = struct{}{}
}

// MetadataCleared returns if the "metadata" field was cleared in this mutation.
func (m *CompanyMutation) MetadataCleared() bool {
	_, ok := m.clearedFields[company.FieldMetadata]
	return ok
}

// ResetMetadata resets all changes to the "metadata" field.
func (m *CompanyMutation) ResetMetadata() {
	m.metadata = nil
	delete(m.clearedFields, company.FieldMetadata)
}

// SetCreatedAt sets the "created_at" field.
func (m *CompanyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompanyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Company entity.
// If the Company object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompanyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompanyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddAuditIDs adds the "audits" edge to the Audit entity by ids.
func (m *CompanyMutation) AddAuditIDs(ids ...string) {
	if m.audits == nil {
		m.audits = make(map[string]struct{})
	}
	for i := range ids {
		m.audits[ids[i]] = struct{}{}
	}
}

// ClearAudits clears the "audits" edge to the Audit entity.
func (m *CompanyMutation) ClearAudits() {
	m.clearedaudits = true
}

// AuditsCleared reports if the "audits" edge to the Audit entity was cleared.
func (m *CompanyMutation) AuditsCleared() bool {
	return m.clearedaudits
}

// RemoveAuditIDs removes the "audits" edge to the Audit entity by IDs.
func (m *CompanyMutation) RemoveAuditIDs(ids ...string) {
	if m.removedaudits == nil {
		m.removedaudits = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.audits, ids[i])
		m.removedaudits[ids[i]] = struct{}{}
	}
}

// RemovedAudits returns the removed IDs of the "audits" edge to the Audit entity.
func (m *CompanyMutation) RemovedAuditsIDs() (ids []string) {
	for id := range m.removedaudits {
		ids = append(ids, id)
	}
	return
}

// AuditsIDs returns the "audits" edge IDs in the mutation.
func (m *CompanyMutation) AuditsIDs() (ids []string) {
	for id := range m.audits {
		ids = append(ids, id)
	}
	return
}

// ResetAudits resets all changes to the "audits" edge.
func (m *CompanyMutation) ResetAudits() {
	m.audits = nil
	m.clearedaudits = false
	m.removedaudits = nil
}

// Where appends a list predicates to the CompanyMutation builder.
func (m *CompanyMutation) Where(ps ...predicate.Company) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompanyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompanyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Company, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompanyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompanyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Company).
func (m *CompanyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompanyMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.name != nil {
		fields = append(fields, company.FieldName)
	}
	if m.domain != nil {
		fields = append(fields, company.FieldDomain)
	}
	if m.industry != nil {
		fields = append(fields, company.FieldIndustry)
	}
	if m.sub_industry != nil {
		fields = append(fields, company.FieldSubIndustry)
	}
	if m.description != nil {
		fields = append(fields, company.FieldDescription)
	}
	if m.original_description != nil {
		fields = append(fields, company.FieldOriginalDescription)
	}
	if m.final_description != nil {
		fields = append(fields, company.FieldFinalDescription)
	}
	if m.value_propositions != nil {
		fields = append(fields, company.FieldValuePropositions)
	}
	if m.target_audiences != nil {
		fields = append(fields, company.FieldTargetAudiences)
	}
	if m.competitors != nil {
		fields = append(fields, company.FieldCompetitors)
	}
	if m.products != nil {
		fields = append(fields, company.FieldProducts)
	}
	if m.pain_points != nil {
		fields = append(fields, company.FieldPainPoints)
	}
	if m.geographies != nil {
		fields = append(fields, company.FieldGeographies)
	}
	if m.metadata != nil {
		fields = append(fields, company.FieldMetadata)
	}
	if m.created_at != nil {
		fields = append(fields, company.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompanyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case company.FieldName:
		return m.Name()
	case company.FieldDomain:
		return m.Domain()
	case company.FieldIndustry:
		return m.Industry()
	case company.FieldSubIndustry:
		return m.SubIndustry()
	case company.FieldDescription:
		return m.Description()
	case company.FieldOriginalDescription:
		return m.OriginalDescription()
	case company.FieldFinalDescription:
		return m.FinalDescription()
	case company.FieldValuePropositions:
		return m.ValuePropositions()
	case company.FieldTargetAudiences:
		return m.TargetAudiences()
	case company.FieldCompetitors:
		return m.Competitors()
	case company.FieldProducts:
		return m.Products()
	case company.FieldPainPoints:
		return m.PainPoints()
	case company.FieldGeographies:
		return m.Geographies()
	case company.FieldMetadata:
		return m.Metadata()
	case company.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompanyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case company.FieldName:
		return m.OldName(ctx)
	case company.FieldDomain:
		return m.OldDomain(ctx)
	case company.FieldIndustry:
		return m.OldIndustry(ctx)
	case company.FieldSubIndustry:
		return m.OldSubIndustry(ctx)
	case company.FieldDescription:
		return m.OldDescription(ctx)
	case company.FieldOriginalDescription:
		return m.OldOriginalDescription(ctx)
	case company.FieldFinalDescription:
		return m.OldFinalDescription(ctx)
	case company.FieldValuePropositions:
		return m.OldValuePropositions(ctx)
	case company.FieldTargetAudiences:
		return m.OldTargetAudiences(ctx)
	case company.FieldCompetitors:
		return m.OldCompetitors(ctx)
	case company.FieldProducts:
		return m.OldProducts(ctx)
	case company.FieldPainPoints:
		return m.OldPainPoints(ctx)
	case company.FieldGeographies:
		return m.OldGeographies(ctx)
	case company.FieldMetadata:
		return m.OldMetadata(ctx)
	case company.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Company field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case company.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case company.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case company.FieldIndustry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndustry(v)
		return nil
	case company.FieldSubIndustry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubIndustry(v)
		return nil
	case company.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case company.FieldOriginalDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalDescription(v)
		return nil
	case company.FieldFinalDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinalDescription(v)
		return nil
	case company.FieldValuePropositions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValuePropositions(v)
		return nil
	case company.FieldTargetAudiences:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAudiences(v)
		return nil
	case company.FieldCompetitors:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitors(v)
		return nil
	case company.FieldProducts:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProducts(v)
		return nil
	case company.FieldPainPoints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPainPoints(v)
		return nil
	case company.FieldGeographies:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeographies(v)
		return nil
	case company.FieldMetadata:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetadata(v)
		return nil
	case company.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompanyMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompanyMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompanyMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Company numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompanyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(company.FieldDomain) {
		fields = append(fields, company.FieldDomain)
	}
	if m.FieldCleared(company.FieldIndustry) {
		fields = append(fields, company.FieldIndustry)
	}
	if m.FieldCleared(company.FieldSubIndustry) {
		fields = append(fields, company.FieldSubIndustry)
	}
	if m.FieldCleared(company.FieldOriginalDescription) {
		fields = append(fields, company.FieldOriginalDescription)
	}
	if m.FieldCleared(company.FieldFinalDescription) {
		fields = append(fields, company.FieldFinalDescription)
	}
	if m.FieldCleared(company.FieldValuePropositions) {
		fields = append(fields, company.FieldValuePropositions)
	}
	if m.FieldCleared(company.FieldTargetAudiences) {
		fields = append(fields, company.FieldTargetAudiences)
	}
	if m.FieldCleared(company.FieldCompetitors) {
		fields = append(fields, company.FieldCompetitors)
	}
	if m.FieldCleared(company.FieldProducts) {
		fields = append(fields, company.FieldProducts)
	}
	if m.FieldCleared(company.FieldPainPoints) {
		fields = append(fields, company.FieldPainPoints)
	}
	if m.FieldCleared(company.FieldGeographies) {
		fields = append(fields, company.FieldGeographies)
	}
	if m.FieldCleared(company.FieldMetadata) {
		fields = append(fields, company.FieldMetadata)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompanyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompanyMutation) ClearField(name string) error {
	switch name {
	case company.FieldDomain:
		m.ClearDomain()
		return nil
	case company.FieldIndustry:
		m.ClearIndustry()
		return nil
	case company.FieldSubIndustry:
		m.ClearSubIndustry()
		return nil
	case company.FieldOriginalDescription:
		m.ClearOriginalDescription()
		return nil
	case company.FieldFinalDescription:
		m.ClearFinalDescription()
		return nil
	case company.FieldValuePropositions:
		m.ClearValuePropositions()
		return nil
	case company.FieldTargetAudiences:
		m.ClearTargetAudiences()
		return nil
	case company.FieldCompetitors:
		m.ClearCompetitors()
		return nil
	case company.FieldProducts:
		m.ClearProducts()
		return nil
	case company.FieldPainPoints:
		m.ClearPainPoints()
		return nil
	case company.FieldGeographies:
		m.ClearGeographies()
		return nil
	case company.FieldMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Company nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompanyMutation) ResetField(name string) error {
	switch name {
	case company.FieldName:
		m.ResetName()
		return nil
	case company.FieldDomain:
		m.ResetDomain()
		return nil
	case company.FieldIndustry:
		m.ResetIndustry()
		return nil
	case company.FieldSubIndustry:
		m.ResetSubIndustry()
		return nil
	case company.FieldDescription:
		m.ResetDescription()
		return nil
	case company.FieldOriginalDescription:
		m.ResetOriginalDescription()
		return nil
	case company.FieldFinalDescription:
		m.ResetFinalDescription()
		return nil
	case company.FieldValuePropositions:
		m.ResetValuePropositions()
		return nil
	case company.FieldTargetAudiences:
		m.ResetTargetAudiences()
		return nil
	case company.FieldCompetitors:
		m.ResetCompetitors()
		return nil
	case company.FieldProducts:
		m.ResetProducts()
		return nil
	case company.FieldPainPoints:
		m.ResetPainPoints()
		return nil
	case company.FieldGeographies:
		m.ResetGeographies()
		return nil
	case company.FieldMetadata:
		m.ResetMetadata()
		return nil
	case company.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Company field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompanyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.audits != nil {
		edges = append(edges, company.EdgeAudits)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompanyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeAudits:
		ids := make([]ent.Value, 0, len(m.audits))
		for id := range m.audits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompanyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedaudits != nil {
		edges = append(edges, company.EdgeAudits)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompanyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case company.EdgeAudits:
		ids := make([]ent.Value, 0, len(m.removedaudits))
		for id := range m.removedaudits {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompanyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedaudits {
		edges = append(edges, company.EdgeAudits)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompanyMutation) EdgeCleared(name string) bool {
	switch name {
	case company.EdgeAudits:
		return m.clearedaudits
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompanyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Company unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompanyMutation) ResetEdge(name string) error {
	switch name {
	case company.EdgeAudits:
		m.ResetAudits()
		return nil
	}
	return fmt.Errorf("unknown Company edge %s", name)
}
