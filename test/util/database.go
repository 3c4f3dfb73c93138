// Package util bootstraps PostgreSQL for tests: one shared server per
// process (external in CI, a testcontainer locally) carved into throwaway
// per-test schemas.
package util

import (
	"context"
	"crypto/rand"
	stdsql "database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/specularhq/specular/ent"
)

var (
	baseOnce    sync.Once
	baseConnStr string
	baseErr     error
)

// GetBaseConnectionString returns the connection string of the shared test
// server, without a search_path. Schema provisioning starts from this, and
// so do dedicated LISTEN connections: NOTIFY is database-scoped, so the
// listener must not be pinned to a schema.
func GetBaseConnectionString(t *testing.T) string {
	baseOnce.Do(func() { baseConnStr, baseErr = startSharedPostgres(t) })
	require.NoError(t, baseErr, "shared test PostgreSQL unavailable")
	return baseConnStr
}

// startSharedPostgres picks the CI service database when CI_DATABASE_URL is
// set and otherwise boots one postgres container reused by every test in the
// process.
func startSharedPostgres(t *testing.T) (string, error) {
	if url := os.Getenv("CI_DATABASE_URL"); url != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		return url, nil
	}

	ctx := context.Background()
	t.Log("Starting shared PostgreSQL testcontainer")
	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(initScriptPath()),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start postgres container: %w", err)
	}
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", fmt.Errorf("failed to get connection string: %w", err)
	}
	return connStr, nil
}

// CreateTestSchema provisions a throwaway schema on the shared server and
// registers its drop with t.Cleanup. Returns the connection string pinned to
// the schema via search_path, plus the schema name.
func CreateTestSchema(t *testing.T) (connStr, schema string) {
	t.Helper()
	base := GetBaseConnectionString(t)
	schema = GenerateSchemaName(t)

	admin, err := stdsql.Open("pgx", base)
	require.NoError(t, err)
	_, execErr := admin.ExecContext(context.Background(), "CREATE SCHEMA "+schema)
	_ = admin.Close()
	require.NoError(t, execErr)
	t.Logf("Created test schema: %s", schema)

	t.Cleanup(func() { DropTestSchema(t, schema) })
	return AddSearchPathToConnString(base, schema), schema
}

// DropTestSchema drops a schema created by CreateTestSchema. Failures are
// logged rather than fatal: the shared server is discarded with the process
// anyway.
func DropTestSchema(t *testing.T, schema string) {
	admin, err := stdsql.Open("pgx", GetBaseConnectionString(t))
	if err != nil {
		t.Logf("Warning: could not connect to drop schema %s: %v", schema, err)
		return
	}
	defer func() { _ = admin.Close() }()
	if _, err := admin.ExecContext(context.Background(), fmt.Sprintf("DROP SCHEMA IF EXISTS %s CASCADE", schema)); err != nil {
		t.Logf("Warning: failed to drop schema %s: %v", schema, err)
	}
}

// OpenSchemaPool opens a pooled connection on the given schema-pinned
// connection string with an ent client on top, both closed via t.Cleanup.
// The pool is sized for test parallelism, not production load.
func OpenSchemaPool(t *testing.T, connStr string) (*ent.Client, *stdsql.DB) {
	t.Helper()
	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))
	t.Cleanup(func() {
		_ = client.Close()
		_ = db.Close()
	})
	return client, db
}

// SetupTestDatabase provisions an isolated schema, migrates it, and returns
// an ent client plus the underlying pool. Auto-migration inside the test
// schema stands in for the embedded SQL migrations the binary applies in
// production.
func SetupTestDatabase(t *testing.T) (*ent.Client, *stdsql.DB) {
	t.Helper()
	connStr, _ := CreateTestSchema(t)
	client, db := OpenSchemaPool(t, connStr)
	require.NoError(t, client.Schema.Create(context.Background()))
	return client, db
}

// GenerateSchemaName derives a unique, PostgreSQL-safe schema name from the
// running test: test_<sanitized_test_name>_<random_hex>.
func GenerateSchemaName(t *testing.T) string {
	name := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, strings.ToLower(t.Name()))

	// Leave room for prefix and suffix under the 63-char identifier limit.
	if len(name) > 40 {
		name = name[:40]
	}

	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		t.Fatalf("failed to generate random bytes for schema name: %v", err)
	}
	return fmt.Sprintf("test_%s_%s", name, hex.EncodeToString(suffix))
}

// AddSearchPathToConnString appends a search_path parameter so every pooled
// connection lands in the given schema.
func AddSearchPathToConnString(connStr, schema string) string {
	separator := "?"
	if strings.Contains(connStr, "?") {
		separator = "&"
	}
	return connStr + separator + "search_path=" + schema
}

// initScriptPath resolves the postgres init script relative to this source
// file so it works from any package's tests.
func initScriptPath() string {
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("initScriptPath: runtime.Caller(0) failed")
	}
	projectRoot := filepath.Dir(filepath.Dir(filepath.Dir(thisFile))) // test/util/ -> test/ -> project root
	return filepath.Join(projectRoot, "deploy", "postgres-init", "01-init.sql")
}
