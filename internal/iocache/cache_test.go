package iocache

import (
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/huangsam/chlog/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaching(t *testing.T) {
	t.Run("single setup", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "chlog_cache.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		err := InitCaching(schema.SQLiteBackend, dbPath)
		assert.NoError(t, err, "Failed to initialize caching")

		assert.NotNil(t, Manager, "Manager should not be nil")
		assert.NotNil(t, Manager.GetChangelogStore(), "Changelog store should not be nil")

		CloseCaching()
	})

	t.Run("idempotent setup", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "chlog_cache.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Multiple initializations should be safe (sync.Once)
		err1 := InitCaching(schema.SQLiteBackend, dbPath)
		err2 := InitCaching(schema.SQLiteBackend, dbPath)

		assert.NoError(t, err1, "First init should not fail")
		assert.NoError(t, err2, "Second init should not fail")

		// Multiple closes should be safe (sync.Once)
		CloseCaching()
		CloseCaching()
	})

	t.Run("none backend operations", func(t *testing.T) {
		store, err := NewCacheStore("test_table", schema.NoneBackend, "")
		assert.NoError(t, err, "Failed to create none backend store")

		// Get returns error (no data)
		_, _, _, err = store.Get("test_key")
		assert.Error(t, err, "Expected error from Get on none backend")

		// Set is no-op
		err = store.Set("test_key", []byte("test_value"), 1, 123456789)
		assert.NoError(t, err, "Set should not error on none backend")

		_, _, _, err = store.Get("test_key")
		assert.Error(t, err, "Expected error from Get after Set on none backend")

		err = store.Close()
		assert.NoError(t, err, "Close should not error on none backend")
	})
}

func TestSQLiteCacheRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "roundtrip.db")
	store, err := NewCacheStore("changelog_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err, "Failed to create SQLite store")
	defer func() { _ = store.Close() }()

	// Miss before any writes
	_, _, _, err = store.Get("missing")
	assert.ErrorIs(t, err, sql.ErrNoRows, "Missing key should surface sql.ErrNoRows")

	payload := []byte(`{"document":"## v1.0.0"}`)
	now := time.Now().Unix()
	require.NoError(t, store.Set("key1", payload, 1, now))

	value, version, ts, err := store.Get("key1")
	require.NoError(t, err)
	assert.Equal(t, payload, value)
	assert.Equal(t, 1, version)
	assert.Equal(t, now, ts)

	// Overwrite replaces the previous value
	require.NoError(t, store.Set("key1", []byte("v2"), 2, now+1))
	value, version, _, err = store.Get("key1")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), value)
	assert.Equal(t, 2, version)
}

func TestSQLiteCacheStatus(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "status.db")
	store, err := NewCacheStore("changelog_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, int64(0), status.TotalEntries)

	require.NoError(t, store.Set("key1", []byte("value"), 1, time.Now().Unix()))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(1), status.TotalEntries)
	assert.False(t, status.LastEntryTime.IsZero())
	assert.False(t, status.OldestEntryTime.IsZero())
}

func TestNewCacheStoreUnsupportedBackend(t *testing.T) {
	_, err := NewCacheStore("test_table", schema.DatabaseBackend("oracle"), "")
	assert.Error(t, err, "Unsupported backend should error")
}

func TestNewCacheStoreBadTableName(t *testing.T) {
	_, err := NewCacheStore("bad; DROP TABLE", schema.SQLiteBackend, "")
	assert.Error(t, err, "Invalid table name should be rejected")
}

// TestValidateTableName tests the validateTableName function with various inputs.
func TestValidateTableName(t *testing.T) {
	tests := []struct {
		tableName string
		wantErr   bool
	}{
		{"changelog_cache", false},
		{"_private", false},
		{"table1", false},
		{"", true},
		{"1table", true},
		{"bad-name", true},
		{"bad name", true},
		{"bad;name", true},
	}

	for _, tt := range tests {
		t.Run(tt.tableName, func(t *testing.T) {
			err := validateTableName(tt.tableName)
			if tt.wantErr {
				assert.Error(t, err, "validateTableName should error for %q", tt.tableName)
			} else {
				assert.NoError(t, err, "validateTableName should not error for %q", tt.tableName)
			}
		})
	}
}

// TestQuoteTableName tests the quoteTableName function for all backends.
func TestQuoteTableName(t *testing.T) {
	tests := []struct {
		name      string
		tableName string
		backend   schema.DatabaseBackend
		want      string
	}{
		{"sqlite", "changelog_cache", schema.SQLiteBackend, `"changelog_cache"`},
		{"postgresql", "changelog_cache", schema.PostgreSQLBackend, `"changelog_cache"`},
		{"mysql", "changelog_cache", schema.MySQLBackend, "`changelog_cache`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := quoteTableName(tt.tableName, tt.backend)
			assert.Equal(t, tt.want, got, "quoteTableName(%q, %q)", tt.tableName, tt.backend)
		})
	}
}

func TestClearCacheSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "clear.db")
	store, err := NewCacheStore("changelog_cache", schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set("key1", []byte("value"), 1, time.Now().Unix()))
	require.NoError(t, store.Close())

	assert.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))

	// Clearing an already-missing file is not an error
	assert.NoError(t, ClearCache(schema.SQLiteBackend, dbPath, ""))

	// SQLite clearing requires a file path
	assert.Error(t, ClearCache(schema.SQLiteBackend, "", ""))
}

func TestClearCacheNoneBackend(t *testing.T) {
	assert.NoError(t, ClearCache(schema.NoneBackend, "", ""))
}

func TestMigrateCacheSQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")

	// Up to latest, then down to zero
	require.NoError(t, MigrateCache(schema.SQLiteBackend, dbPath, -1))
	require.NoError(t, MigrateCache(schema.SQLiteBackend, dbPath, 0))
}

func TestMigrateCacheNoneBackend(t *testing.T) {
	err := MigrateCache(schema.NoneBackend, "", -1)
	assert.Error(t, err, "Migrations should be rejected for the none backend")
}
