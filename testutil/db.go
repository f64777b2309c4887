// Package testutil provides shared helpers for tests that need a real store.
// Because the store is a throwaway SQLite file in the test's temp directory,
// these tests need no environment setup and run everywhere, including CI.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/hmnguyen/travel-planner/backend/internal/repo"
)

// NewKV opens a migrated SQLite-backed KV store in t.TempDir().
// The store is closed automatically when the test (and its subtests) finish,
// and the file is removed with the temp directory.
func NewKV(t *testing.T) *repo.SQLiteKV {
	t.Helper()

	path := filepath.Join(t.TempDir(), "travel-test.db")
	kv, err := repo.OpenSQLiteKV(path)
	if err != nil {
		t.Fatalf("testutil.NewKV: open: %v", err)
	}

	t.Cleanup(func() { _ = kv.Close() })
	return kv
}
