package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/lib/pq"

	"github.com/gajurelkshitiz/bsrealtyllc-backend/internal/config/db"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupPostgresForIntegration provides a migrated database for
// integration tests: an external one via TEST_DB_DSN, otherwise a
// throwaway container. Skips the test under -short.
func SetupPostgresForIntegration(t *testing.T) (*gorm.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gormDB := openAndMigrate(t, dsn)
		return gormDB, func() {}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "bsrealty_test",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("cannot start postgres container: %v", err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		t.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/bsrealty_test?sslmode=disable", host, port.Port())
	waitForReady(t, dsn)

	gormDB := openAndMigrate(t, dsn)
	cleanup := func() {
		_ = pg.Terminate(ctx)
	}
	return gormDB, cleanup
}

func waitForReady(t *testing.T, dsn string) {
	t.Helper()
	var err error
	for i := 0; i < 10; i++ {
		var conn *sql.DB
		conn, err = sql.Open("postgres", dsn)
		if err == nil {
			err = conn.Ping()
			conn.Close()
			if err == nil {
				return
			}
		}
		time.Sleep(1 * time.Second)
	}
	t.Fatalf("postgres never became ready: %v", err)
}

func openAndMigrate(t *testing.T, dsn string) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Migrate(gormDB); err != nil {
		t.Fatal(err)
	}
	return gormDB
}
