package b2creds

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// b2EnvKeys lists every B2_ environment variable the resolver reads.
var b2EnvKeys = []string{EnvApplicationKey, EnvApplicationKeyID, EnvAccountInfo}

// isolateEnv saves and unsets all B2_ env vars so tests don't inherit
// credentials from the host environment (e.g. a developer's real b2 setup).
// t.Cleanup restores the original values after the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range b2EnvKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

// envMap builds a LookupEnv over a fixed map for Resolver tests that must
// not touch the process environment.
func envMap(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, ok := vars[key]
		return value, ok
	}
}

// accountRow mirrors one row of the account table in fixture stores. keyID
// is any so a fixture can store NULL.
type accountRow struct {
	id    string
	key   string
	keyID any
}

// writeAccountInfo creates a b2-style account-info database inside a fresh
// temp dir and returns its path. Rows keep their insertion order.
func writeAccountInfo(t *testing.T, rows ...accountRow) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "account_info")
	writeAccountInfoAt(t, path, rows...)
	return path
}

// writeAccountInfoAt creates a b2-style account-info database at an exact
// path, for tests that stage the file under a fake home directory.
func writeAccountInfoAt(t *testing.T, path string, rows ...accountRow) {
	t.Helper()

	db, err := sql.Open("sqlite", "file:"+path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE account (
		account_id TEXT NOT NULL,
		application_key TEXT NOT NULL,
		account_id_or_app_key_id TEXT
	)`)
	require.NoError(t, err)

	for _, row := range rows {
		_, err := db.Exec(
			`INSERT INTO account (account_id, application_key, account_id_or_app_key_id) VALUES (?, ?, ?)`,
			row.id, row.key, row.keyID,
		)
		require.NoError(t, err)
	}

	require.NoError(t, db.Close())
}

// writeBrokenStore creates a database at a fresh path and runs the given
// statements, for fixtures that deviate from the reference schema.
func writeBrokenStore(t *testing.T, stmts ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "account_info")
	db, err := sql.Open("sqlite", "file:"+path)
	require.NoError(t, err)
	defer db.Close()

	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err, "fixture statement %q", stmt)
	}

	require.NoError(t, db.Close())
	return path
}
