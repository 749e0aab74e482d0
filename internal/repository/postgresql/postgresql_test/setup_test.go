package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"

	"github.com/cmlabs-hris/attendance-dashboard-go/internal/pkg/database"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	testDBErr  error
	testDBOnce sync.Once
)

// setupTestDB connects to TEST_DATABASE_URL, applies migrations and empties
// every table. Tests are skipped when no database is configured.
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping PostgreSQL integration test")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn, database.PoolOptions{MaxConns: 4})
		if testDBErr != nil {
			return
		}
		_, testDBErr = database.Migrate(context.Background(), testDB)
	})
	require.NoError(t, testDBErr)

	_, err := testDB.Exec(context.Background(), "TRUNCATE TABLE leaves, employees, users RESTART IDENTITY CASCADE")
	require.NoError(t, err)

	return testDB
}

func strPtr(s string) *string {
	return &s
}

func createTestEmployee(t *testing.T, ctx context.Context, code, name string) int64 {
	t.Helper()

	var id int64
	err := testDB.QueryRow(ctx, `
		INSERT INTO employees (ee_id, employee_name, department, reporting_manager, position_title)
		VALUES ($1, $2, 'Engineering', 'Priya Nair', 'Engineer')
		RETURNING id
	`, code, name).Scan(&id)
	require.NoError(t, err)
	return id
}

func countLeaves(t *testing.T, ctx context.Context) int64 {
	t.Helper()

	var n int64
	require.NoError(t, testDB.QueryRow(ctx, "SELECT COUNT(*) FROM leaves").Scan(&n))
	return n
}
