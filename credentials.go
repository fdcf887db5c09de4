package b2creds

import "context"

// Environment variables consulted during resolution.
const (
	// EnvApplicationKey names the variable holding the application key.
	EnvApplicationKey = "B2_APPLICATION_KEY"

	// EnvApplicationKeyID names the variable holding the application key id.
	EnvApplicationKeyID = "B2_APPLICATION_KEY_ID"

	// EnvAccountInfo names the variable overriding the account-info
	// database path.
	EnvAccountInfo = "B2_ACCOUNT_INFO"
)

// accountInfoFile is the database file name the b2 CLI keeps under the
// user's home directory.
const accountInfoFile = ".b2_account_info"

// Credentials is an application key pair resolved from the environment or
// from an account-info database. Equality is structural; the value is not
// modified after it is returned.
//
// ApplicationKeyID may be empty when the store predates key ids; callers
// must be prepared for that.
type Credentials struct {
	// ApplicationKeyID identifies the application key.
	ApplicationKeyID string

	// ApplicationKey is the secret application key.
	ApplicationKey string
}

// defaultResolver backs the package-level functions. It reads the live
// process environment on every call.
var defaultResolver = NewResolver()

// Locate returns the first credentials found in the standard b2 search
// order: the B2_APPLICATION_KEY and B2_APPLICATION_KEY_ID environment
// variables, then the account-info database named by B2_ACCOUNT_INFO, then
// ~/.b2_account_info.
//
// Any environment lookup failure, malformed variables included, falls
// through to the file store; call FromEnv directly when precise environment
// diagnostics matter. Errors from the file attempt are returned as is, and
// ErrNoCredentials means no source held credentials at all.
func Locate(ctx context.Context) (Credentials, error) {
	return defaultResolver.Locate(ctx)
}

// FromEnv builds credentials from the B2_APPLICATION_KEY and
// B2_APPLICATION_KEY_ID environment variables. Both must be set; a set
// variable counts even when its value is empty, matching the b2 CLI.
//
// Returns ErrNoCredentials when either variable is unset, and an *EnvError
// when one is set but not valid UTF-8.
func FromEnv() (Credentials, error) {
	return defaultResolver.FromEnv()
}

// FromFile reads credentials from a b2 account-info database. An empty path
// falls back to B2_ACCOUNT_INFO and then to DefaultCredentialsPath. An
// empty accountID selects the first stored account; otherwise the stored
// account id must match it exactly.
//
// A missing file is ErrNoCredentials. A file that exists but cannot be read
// as an account-info store is a *StoreError.
func FromFile(ctx context.Context, path, accountID string) (Credentials, error) {
	return defaultResolver.FromFile(ctx, path, accountID)
}

// DefaultCredentialsPath returns <home>/.b2_account_info, the database the
// b2 CLI maintains. Returns ErrNoHomeDir when the home directory cannot be
// determined.
func DefaultCredentialsPath() (string, error) {
	return defaultResolver.DefaultCredentialsPath()
}
