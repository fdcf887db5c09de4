// Package accountinfo reads the SQLite account-info database maintained by
// the b2 command-line tool.
//
// The store is consumed strictly read-only: connections are opened with
// mode=ro and closed before Lookup returns. The schema is owned by the b2
// CLI; this package relies only on the account table's three reference
// columns and tolerates any extra columns the CLI keeps alongside them.
package accountinfo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// ErrNoEntries indicates the account table was queried successfully but
// held no matching row, or only rows whose columns could not be read.
var ErrNoEntries = errors.New("no matching account entries")

// Account is the key material stored in one account row. The account_id
// column is the lookup key only and is never copied into the result.
type Account struct {
	// ApplicationKeyID is the account_id_or_app_key_id column. The b2 CLI
	// leaves it NULL on entries written before key ids existed; that is
	// surfaced as "".
	ApplicationKeyID string

	// ApplicationKey is the application_key column.
	ApplicationKey string
}

const (
	selectAccounts     = `SELECT application_key, account_id_or_app_key_id FROM account`
	selectAccountsByID = selectAccounts + ` WHERE account_id = ?`
)

// Lookup opens the store at path read-only, returns the first account row
// (or the first row whose account_id equals accountID when accountID is
// non-empty), and closes the store again before returning. Rows whose
// columns cannot be scanned are skipped. Returns ErrNoEntries when no row
// survives; any other error means the file is not a readable account-info
// store.
func Lookup(ctx context.Context, path, accountID string) (Account, error) {
	db, err := open(ctx, path)
	if err != nil {
		return Account{}, err
	}
	defer db.Close()

	return firstAccount(ctx, db, accountID)
}

// open opens a read-only single-connection handle and verifies it with a
// ping before any query runs.
func open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping store: %w", err)
	}

	return db, nil
}

// firstAccount returns the first scannable row of the (possibly filtered)
// account table.
func firstAccount(ctx context.Context, db *sql.DB, accountID string) (Account, error) {
	var rows *sql.Rows
	var err error
	if accountID != "" {
		// The account id is a caller-supplied string: bound parameter,
		// never interpolated into the query text.
		rows, err = db.QueryContext(ctx, selectAccountsByID, accountID)
	} else {
		rows, err = db.QueryContext(ctx, selectAccounts)
	}
	if err != nil {
		return Account{}, fmt.Errorf("query account table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			// A row this package cannot read holds no credentials
			// for us; try the next one.
			continue
		}
		return account, nil
	}
	if err := rows.Err(); err != nil {
		return Account{}, fmt.Errorf("iterate account table: %w", err)
	}

	return Account{}, ErrNoEntries
}

func scanAccount(rows *sql.Rows) (Account, error) {
	var key string
	var keyID sql.NullString

	if err := rows.Scan(&key, &keyID); err != nil {
		return Account{}, err
	}

	return Account{
		ApplicationKeyID: keyID.String,
		ApplicationKey:   key,
	}, nil
}
