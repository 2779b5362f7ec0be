// Package dbtest opens throwaway databases for tests.
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"marketplace/internal/db"
)

// New returns a migrated in-memory SQLite database that disappears with the test.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	gormDB, err := db.Open("sqlite", ":memory:", zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gormDB))
	t.Cleanup(func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gormDB
}
