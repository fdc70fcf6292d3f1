// Package testutil provides an in-memory database for package tests.
package testutil

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/anonto42/inkwell/backend/internal/models"
	"github.com/anonto42/inkwell/backend/pkg/database"
)

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9_]`)

func open(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
}

// NewPool opens a private in-memory SQLite database with the blog schema
// migrated and foreign keys enforced.
func NewPool(t testing.TB, opts database.Options) *database.Pool {
	t.Helper()

	name := unsafeName.ReplaceAllString(t.Name(), "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	// A shared-cache memory database lives as long as one connection to it
	// is open. The keeper holds that connection outside the pool under test.
	keeper, err := open(dsn)
	require.NoError(t, err)
	keeperSQL, err := keeper.DB()
	require.NoError(t, err)
	keeperSQL.SetMaxIdleConns(1)
	require.NoError(t, keeperSQL.Ping())
	require.NoError(t, keeper.AutoMigrate(models.All()...))

	db, err := open(dsn)
	require.NoError(t, err)

	if opts.AcquireTimeout == 0 {
		opts.AcquireTimeout = 200 * time.Millisecond
	}
	pool, err := database.New(db, opts)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = pool.Close()
		_ = keeperSQL.Close()
	})
	return pool
}

// Acquire checks a connection out of pool and releases it when the test ends.
func Acquire(t testing.TB, pool *database.Pool) *database.Conn {
	t.Helper()
	conn, err := pool.Acquire(t.Context())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Release() })
	return conn
}
