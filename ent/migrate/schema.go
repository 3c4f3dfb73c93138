// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditsColumns holds the columns for the "audits" table.
	AuditsColumns = []*schema.Column{
		{Name: "audit_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "analyzing", "scoring", "populating", "completed", "failed", "cancelled", "cancel_requested"}, Default: "pending"},
		{Name: "providers", Type: field.TypeJSON},
		{Name: "query_count", Type: field.TypeInt},
		{Name: "overall_score", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "brand_mention_rate", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "processing_time_ms", Type: field.TypeInt, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "claimed_by", Type: field.TypeString, Nullable: true},
		{Name: "company_id", Type: field.TypeString},
	}
	// AuditsTable holds the schema information for the "audits" table.
	AuditsTable = &schema.Table{
		Name:       "audits",
		Columns:    AuditsColumns,
		PrimaryKey: []*schema.Column{AuditsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audits_companies_audits",
				Columns:    []*schema.Column{AuditsColumns[14]},
				RefColumns: []*schema.Column{CompaniesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "audit_status",
				Unique:  false,
				Columns: []*schema.Column{AuditsColumns[2]},
			},
			{
				Name:    "audit_user_id",
				Unique:  false,
				Columns: []*schema.Column{AuditsColumns[1]},
			},
			{
				Name:    "audit_company_id",
				Unique:  false,
				Columns: []*schema.Column{AuditsColumns[14]},
			},
			{
				Name:    "audit_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditsColumns[2], AuditsColumns[8]},
			},
			{
				Name:    "audit_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{AuditsColumns[2], AuditsColumns[12]},
			},
		},
	}
	// AuditAggregatesColumns holds the columns for the "audit_aggregates" table.
	AuditAggregatesColumns = []*schema.Column{
		{Name: "aggregate_id", Type: field.TypeString, Unique: true},
		{Name: "overall_score", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "geo_score", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "sov_score", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "recommendation_score", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "sentiment_score", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "visibility_score", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "context_completeness", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "provider_breakdown", Type: field.TypeJSON, Nullable: true},
		{Name: "category_breakdown", Type: field.TypeJSON, Nullable: true},
		{Name: "competitor_mentions", Type: field.TypeJSON, Nullable: true},
		{Name: "total_responses", Type: field.TypeInt, Default: 0},
		{Name: "analyzed_responses", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeString, Unique: true},
	}
	// AuditAggregatesTable holds the schema information for the "audit_aggregates" table.
	AuditAggregatesTable = &schema.Table{
		Name:       "audit_aggregates",
		Columns:    AuditAggregatesColumns,
		PrimaryKey: []*schema.Column{AuditAggregatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_aggregates_audits_aggregate",
				Columns:    []*schema.Column{AuditAggregatesColumns[14]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// AuditAnalysesColumns holds the columns for the "audit_analyses" table.
	AuditAnalysesColumns = []*schema.Column{
		{Name: "analysis_id", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"problem_unaware", "problem_aware", "solution_aware", "product_aware", "most_aware", "brand_defense"}},
		{Name: "brand_mentioned", Type: field.TypeBool, Default: false},
		{Name: "first_position", Type: field.TypeInt, Nullable: true},
		{Name: "sentiment", Type: field.TypeEnum, Nullable: true, Enums: []string{"positive", "neutral", "negative"}},
		{Name: "sentiment_score", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(3,2)"}},
		{Name: "competitors_mentioned", Type: field.TypeJSON, Nullable: true},
		{Name: "geo_score", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "sov_score", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "context_completeness", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "recommendation_signal", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(5,2)"}},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "errored", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeString},
		{Name: "response_id", Type: field.TypeString, Unique: true},
	}
	// AuditAnalysesTable holds the schema information for the "audit_analyses" table.
	AuditAnalysesTable = &schema.Table{
		Name:       "audit_analyses",
		Columns:    AuditAnalysesColumns,
		PrimaryKey: []*schema.Column{AuditAnalysesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_analyses_audits_analyses",
				Columns:    []*schema.Column{AuditAnalysesColumns[16]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "audit_analyses_audit_responses_analysis",
				Columns:    []*schema.Column{AuditAnalysesColumns[17]},
				RefColumns: []*schema.Column{AuditResponsesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditanalysis_audit_id_provider",
				Unique:  false,
				Columns: []*schema.Column{AuditAnalysesColumns[16], AuditAnalysesColumns[1]},
			},
			{
				Name:    "auditanalysis_audit_id_category",
				Unique:  false,
				Columns: []*schema.Column{AuditAnalysesColumns[16], AuditAnalysesColumns[2]},
			},
			{
				Name:    "auditanalysis_audit_id_errored",
				Unique:  false,
				Columns: []*schema.Column{AuditAnalysesColumns[16], AuditAnalysesColumns[13]},
			},
		},
	}
	// AuditDashboardColumns holds the columns for the "audit_dashboard" table.
	AuditDashboardColumns = []*schema.Column{
		{Name: "dashboard_id", Type: field.TypeString, Unique: true},
		{Name: "scores", Type: field.TypeJSON},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "competitor_landscape", Type: field.TypeJSON, Nullable: true},
		{Name: "category_insights", Type: field.TypeJSON, Nullable: true},
		{Name: "executive_summary", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "generated_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeString, Unique: true},
	}
	// AuditDashboardTable holds the schema information for the "audit_dashboard" table.
	AuditDashboardTable = &schema.Table{
		Name:       "audit_dashboard",
		Columns:    AuditDashboardColumns,
		PrimaryKey: []*schema.Column{AuditDashboardColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_dashboard_audits_dashboard",
				Columns:    []*schema.Column{AuditDashboardColumns[7]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
	}
	// AuditEventsColumns holds the columns for the "audit_events" table.
	AuditEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeString},
	}
	// AuditEventsTable holds the schema information for the "audit_events" table.
	AuditEventsTable = &schema.Table{
		Name:       "audit_events",
		Columns:    AuditEventsColumns,
		PrimaryKey: []*schema.Column{AuditEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_events_audits_events",
				Columns:    []*schema.Column{AuditEventsColumns[4]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditevent_channel_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[1], AuditEventsColumns[3]},
			},
			{
				Name:    "auditevent_audit_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEventsColumns[4]},
			},
		},
	}
	// AuditQueriesColumns holds the columns for the "audit_queries" table.
	AuditQueriesColumns = []*schema.Column{
		{Name: "query_id", Type: field.TypeString, Unique: true},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "text_normalized", Type: field.TypeString},
		{Name: "category", Type: field.TypeEnum, Enums: []string{"problem_unaware", "problem_aware", "solution_aware", "product_aware", "most_aware", "brand_defense"}},
		{Name: "intent", Type: field.TypeString, Nullable: true},
		{Name: "priority", Type: field.TypeFloat64, Default: 0.5, SchemaType: map[string]string{"postgres": "numeric(3,2)"}},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeString},
	}
	// AuditQueriesTable holds the schema information for the "audit_queries" table.
	AuditQueriesTable = &schema.Table{
		Name:       "audit_queries",
		Columns:    AuditQueriesColumns,
		PrimaryKey: []*schema.Column{AuditQueriesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_queries_audits_queries",
				Columns:    []*schema.Column{AuditQueriesColumns[8]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditquery_audit_id_text_normalized",
				Unique:  true,
				Columns: []*schema.Column{AuditQueriesColumns[8], AuditQueriesColumns[2]},
			},
			{
				Name:    "auditquery_audit_id_category",
				Unique:  false,
				Columns: []*schema.Column{AuditQueriesColumns[8], AuditQueriesColumns[3]},
			},
		},
	}
	// AuditResponsesColumns holds the columns for the "audit_responses" table.
	AuditResponsesColumns = []*schema.Column{
		{Name: "response_id", Type: field.TypeString, Unique: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "text", Type: field.TypeString, Nullable: true, Size: 2147483647, Default: ""},
		{Name: "latency_ms", Type: field.TypeInt, Default: 0},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "cost_estimate", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(10,6)"}},
		{Name: "error_kind", Type: field.TypeEnum, Nullable: true, Enums: []string{"transient", "permanent", "quota", "data", "fatal"}},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "audit_id", Type: field.TypeString},
		{Name: "query_id", Type: field.TypeString},
	}
	// AuditResponsesTable holds the schema information for the "audit_responses" table.
	AuditResponsesTable = &schema.Table{
		Name:       "audit_responses",
		Columns:    AuditResponsesColumns,
		PrimaryKey: []*schema.Column{AuditResponsesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "audit_responses_audits_responses",
				Columns:    []*schema.Column{AuditResponsesColumns[11]},
				RefColumns: []*schema.Column{AuditsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "audit_responses_audit_queries_responses",
				Columns:    []*schema.Column{AuditResponsesColumns[12]},
				RefColumns: []*schema.Column{AuditQueriesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "auditresponse_audit_id_query_id_provider",
				Unique:  true,
				Columns: []*schema.Column{AuditResponsesColumns[11], AuditResponsesColumns[12], AuditResponsesColumns[1]},
			},
			{
				Name:    "auditresponse_audit_id_provider",
				Unique:  false,
				Columns: []*schema.Column{AuditResponsesColumns[11], AuditResponsesColumns[1]},
			},
		},
	}
	// CompaniesColumns holds the columns for the "companies" table.
	CompaniesColumns = []*schema.Column{
		{Name: "company_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "domain", Type: field.TypeString, Nullable: true},
		{Name: "industry", Type: field.TypeString, Nullable: true},
		{Name: "sub_industry", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Size: 2147483647},
		{Name: "original_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "final_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "value_propositions", Type: field.TypeJSON, Nullable: true},
		{Name: "target_audiences", Type: field.TypeJSON, Nullable: true},
		{Name: "competitors", Type: field.TypeJSON, Nullable: true},
		{Name: "products", Type: field.TypeJSON, Nullable: true},
		{Name: "pain_points", Type: field.TypeJSON, Nullable: true},
		{Name: "geographies", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CompaniesTable holds the schema information for the "companies" table.
	CompaniesTable = &schema.Table{
		Name:       "companies",
		Columns:    CompaniesColumns,
		PrimaryKey: []*schema.Column{CompaniesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "company_name",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[1]},
			},
			{
				Name:    "company_domain",
				Unique:  false,
				Columns: []*schema.Column{CompaniesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditsTable,
		AuditAggregatesTable,
		AuditAnalysesTable,
		AuditDashboardTable,
		AuditEventsTable,
		AuditQueriesTable,
		AuditResponsesTable,
		CompaniesTable,
	}
)

func init() {
	AuditsTable.ForeignKeys[0].RefTable = CompaniesTable
	AuditAggregatesTable.ForeignKeys[0].RefTable = AuditsTable
	AuditAnalysesTable.ForeignKeys[0].RefTable = AuditsTable
	AuditAnalysesTable.ForeignKeys[1].RefTable = AuditResponsesTable
	AuditAnalysesTable.Annotation = &entsql.Annotation{
		Table: "audit_analyses",
	}
	AuditDashboardTable.ForeignKeys[0].RefTable = AuditsTable
	AuditDashboardTable.Annotation = &entsql.Annotation{
		Table: "audit_dashboard",
	}
	AuditEventsTable.ForeignKeys[0].RefTable = AuditsTable
	AuditQueriesTable.ForeignKeys[0].RefTable = AuditsTable
	AuditResponsesTable.ForeignKeys[0].RefTable = AuditsTable
	AuditResponsesTable.ForeignKeys[1].RefTable = AuditQueriesTable
}
