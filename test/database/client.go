// Package database provides database client helpers for integration tests.
package database

import (
	"testing"

	"github.com/specularhq/specular/pkg/database"
	"github.com/specularhq/specular/test/util"
)

// NewTestClient creates a test database client backed by an isolated
// per-test schema. In CI (when CI_DATABASE_URL is set) it connects to the
// external PostgreSQL service container; locally it uses a shared
// testcontainer. Cleanup is registered on the test.
func NewTestClient(t *testing.T) *database.Client {
	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
