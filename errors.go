package b2creds

import "errors"

// Sentinel errors returned by credential lookups.
var (
	// ErrNoCredentials indicates the searched sources were reachable but
	// held nothing usable: environment variables unset, account-info file
	// absent, or the account table empty.
	ErrNoCredentials = errors.New("no credentials found")

	// ErrNoHomeDir indicates the platform home directory could not be
	// determined while computing the default account-info path.
	ErrNoHomeDir = errors.New("no home directory")
)

// errNotUTF8 is the cause recorded on an EnvError when a variable's value
// cannot be decoded as UTF-8 text.
var errNotUTF8 = errors.New("value is not valid UTF-8")

// StoreError reports an account-info file that exists but could not be read
// as a credentials store: not a SQLite database, no account table, or a
// query failure partway through. The underlying database error is available
// through Unwrap.
type StoreError struct {
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return "credentials store " + e.Path + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// EnvError reports an environment variable that is set but unusable. This is
// a harder failure than the variable being absent, which is reported as
// ErrNoCredentials instead.
type EnvError struct {
	Name string
	Err  error
}

func (e *EnvError) Error() string {
	return "environment variable " + e.Name + ": " + e.Err.Error()
}

func (e *EnvError) Unwrap() error { return e.Err }
