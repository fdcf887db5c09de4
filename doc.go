// Package b2creds locates Backblaze B2 API credentials the same way the b2
// command-line tool does.
//
// The search order is fixed: the B2_APPLICATION_KEY and B2_APPLICATION_KEY_ID
// environment variables first, then the SQLite account-info database the b2
// CLI maintains, found via an explicit path, the B2_ACCOUNT_INFO environment
// variable, or ~/.b2_account_info.
//
//	creds, err := b2creds.Locate(context.Background())
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("key id:", creds.ApplicationKeyID)
//
// Locate, FromEnv and FromFile cover the individual lookup steps. Resolver
// exposes the same operations with an injectable environment, so callers can
// exercise the search logic without touching process-global state.
//
// The account-info database is only ever opened read-only; this package
// never creates, migrates or modifies it.
package b2creds
