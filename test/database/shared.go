package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/specularhq/specular/pkg/database"
	"github.com/specularhq/specular/test/util"
)

// SharedTestDB is a single PostgreSQL schema shared by multiple test
// replicas. Each replica gets its own connection pool via NewClient, but all
// pools point at the same tables, enabling cross-replica tests of NOTIFY
// delivery and claim contention.
type SharedTestDB struct {
	connStr     string
	baseConnStr string
	schema      string
}

// NewSharedTestDB provisions a shared schema and migrates it once. The
// schema is dropped after every client created from it has been cleaned up
// (t.Cleanup runs LIFO).
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()

	connStr, schema := util.CreateTestSchema(t)
	client, _ := util.OpenSchemaPool(t, connStr)
	require.NoError(t, client.Schema.Create(context.Background()))

	return &SharedTestDB{
		connStr:     connStr,
		baseConnStr: util.GetBaseConnectionString(t),
		schema:      schema,
	}
}

// BaseConnStr returns the connection string without a search_path, for
// dedicated LISTEN connections.
func (s *SharedTestDB) BaseConnStr() string {
	return s.baseConnStr
}

// NewClient opens an independent *database.Client backed by a fresh
// connection pool to the shared schema.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()
	entClient, db := util.OpenSchemaPool(t, s.connStr)
	return database.NewClientFromEnt(entClient, db)
}
