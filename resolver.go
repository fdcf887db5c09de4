package b2creds

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/schultetwin1/b2creds/internal/accountinfo"
)

// Resolver performs credential lookups against an injectable environment and
// home directory, so the search logic can be tested without mutating
// process-global state. NewResolver with no options reads the real process
// environment; the package-level functions use such a Resolver.
type Resolver struct {
	lookupEnv func(key string) (string, bool)
	homeDir   func() (string, error)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLookupEnv replaces the environment lookup, which defaults to
// os.LookupEnv. The bool reports whether the variable is set at all.
func WithLookupEnv(fn func(key string) (string, bool)) Option {
	return func(r *Resolver) { r.lookupEnv = fn }
}

// WithHomeDir replaces the home-directory lookup, which defaults to
// os.UserHomeDir.
func WithHomeDir(fn func() (string, error)) Option {
	return func(r *Resolver) { r.homeDir = fn }
}

// NewResolver returns a Resolver reading the process environment, modified
// by the given options.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		lookupEnv: os.LookupEnv,
		homeDir:   os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Locate runs the standard search order; see the package-level Locate.
func (r *Resolver) Locate(ctx context.Context) (Credentials, error) {
	creds, err := r.FromEnv()
	if err == nil {
		return creds, nil
	}

	// Absent and malformed environments alike fall through to the store;
	// FromEnv exists for callers that need to tell the two apart.
	return r.FromFile(ctx, "", "")
}

// FromEnv reads the key pair from the environment; see the package-level
// FromEnv for the exact contract.
func (r *Resolver) FromEnv() (Credentials, error) {
	key, err := r.envValue(EnvApplicationKey)
	if err != nil {
		return Credentials{}, err
	}

	keyID, err := r.envValue(EnvApplicationKeyID)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{ApplicationKeyID: keyID, ApplicationKey: key}, nil
}

// envValue distinguishes the unset case from a value that is set but cannot
// be decoded as text.
func (r *Resolver) envValue(name string) (string, error) {
	value, ok := r.lookupEnv(name)
	if !ok {
		return "", ErrNoCredentials
	}
	if !utf8.ValidString(value) {
		return "", &EnvError{Name: name, Err: errNotUTF8}
	}
	return value, nil
}

// FromFile reads credentials from an account-info database; see the
// package-level FromFile for the path and filter semantics.
func (r *Resolver) FromFile(ctx context.Context, path, accountID string) (Credentials, error) {
	if path == "" {
		if override, ok := r.lookupEnv(EnvAccountInfo); ok {
			path = override
		} else {
			var err error
			path, err = r.DefaultCredentialsPath()
			if err != nil {
				return Credentials{}, err
			}
		}
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Credentials{}, ErrNoCredentials
		}
		return Credentials{}, fmt.Errorf("stat account info: %w", err)
	}

	account, err := accountinfo.Lookup(ctx, path, accountID)
	if errors.Is(err, accountinfo.ErrNoEntries) {
		return Credentials{}, ErrNoCredentials
	}
	if err != nil {
		return Credentials{}, &StoreError{Path: path, Err: err}
	}

	return Credentials{
		ApplicationKeyID: account.ApplicationKeyID,
		ApplicationKey:   account.ApplicationKey,
	}, nil
}

// DefaultCredentialsPath computes the per-user account-info path; see the
// package-level DefaultCredentialsPath.
func (r *Resolver) DefaultCredentialsPath() (string, error) {
	home, err := r.homeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoHomeDir, err)
	}
	return filepath.Join(home, accountInfoFile), nil
}
