package migrate

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/angelmondragon/storefront-backend/pkg/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestNewsletterMigrationContainsSchema(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("migrations", "*_create_newsletter_subscriptions.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "no newsletter migration file found")

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	content := string(data)

	for _, sub := range []string{
		"CREATE TABLE IF NOT EXISTS newsletter_subscriptions",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_newsletter_subscriptions_email",
		"DROP TABLE IF EXISTS newsletter_subscriptions",
	} {
		require.Truef(t, strings.Contains(content, sub), "missing expected statement %q", sub)
	}
}

func TestValidateAcceptsShippedMigrations(t *testing.T) {
	require.NoError(t, ValidateEmbedded())
	require.NoError(t, Validate(os.DirFS("migrations")))
}

func TestValidateReportsEveryProblem(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.sql":                      {Data: []byte("-- +goose Up\n-- +goose Down\n")},
		"20260301120000_first.sql":     {Data: []byte("-- +goose Up\n-- +goose Down\n")},
		"20260301120000_duplicate.sql": {Data: []byte("-- +goose Up\n-- +goose Down\n")},
		"20260302090000_no_down.sql":   {Data: []byte("-- +goose Up\n")},
		"README.md":                    {Data: []byte("ignored")},
	}
	err := Validate(fsys)
	require.Error(t, err)
	require.Len(t, multierr.Errors(err), 3)
	require.ErrorContains(t, err, "bad.sql")
	require.ErrorContains(t, err, "already used")
	require.ErrorContains(t, err, "no_down.sql")
}

func TestNewMigration(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC)

	path, err := NewMigration(dir, "Add Coupon Usage!", now)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "20260305093000_add_coupon_usage.sql"), path)
	require.NoError(t, Validate(os.DirFS(dir)))

	_, err = NewMigration(dir, "add coupon usage", now)
	require.ErrorContains(t, err, "already exists")

	_, err = NewMigration(dir, "!!!", now)
	require.Error(t, err)
	_, err = NewMigration("", "x", now)
	require.Error(t, err)
}

func TestDialect(t *testing.T) {
	d, err := Dialect(config.DriverSQLite)
	require.NoError(t, err)
	require.Equal(t, "sqlite3", d)

	d, err = Dialect(config.DriverPostgres)
	require.NoError(t, err)
	require.Equal(t, "postgres", d)

	_, err = Dialect("oracle")
	require.Error(t, err)
}

func TestRunAppliesEmbeddedMigrationsOnSQLite(t *testing.T) {
	conn, err := gorm.Open(sqlite.Open("file:migrate_run?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx := context.Background()
	require.NoError(t, Run(ctx, sqlDB, config.DriverSQLite, EmbeddedDir, "up"))
	require.True(t, conn.Migrator().HasTable("newsletter_subscriptions"))

	require.NoError(t, MigrateToVersion(ctx, sqlDB, config.DriverSQLite, EmbeddedDir, "0"))
	require.False(t, conn.Migrator().HasTable("newsletter_subscriptions"))
}
