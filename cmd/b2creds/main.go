package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/schultetwin1/b2creds"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	path := flag.String("path", "", "path to the account-info database (default: B2_ACCOUNT_INFO, then ~/.b2_account_info)")
	account := flag.String("account", "", "account id to select when the database holds several accounts")
	source := flag.String("source", "auto", "credential source: auto, env or file")
	envFile := flag.String("env-file", "", "load environment variables from this file before resolving")
	asJSON := flag.Bool("json", false, "print the credentials as JSON")
	showSecret := flag.Bool("show-secret", false, "print the application key instead of a masked placeholder")
	flag.Parse()

	if flag.NArg() > 0 {
		return fmt.Errorf("unexpected argument %q", flag.Arg(0))
	}

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			slog.Warn("could not load env file", "path", *envFile, "error", err)
		}
	}

	creds, err := resolve(context.Background(), *source, *path, *account)
	if err != nil {
		return err
	}

	key := creds.ApplicationKey
	if !*showSecret {
		key = maskKey(key)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output{
			ApplicationKeyID: creds.ApplicationKeyID,
			ApplicationKey:   key,
		})
	}

	fmt.Printf("applicationKeyId: %s\n", creds.ApplicationKeyID)
	fmt.Printf("applicationKey: %s\n", key)
	return nil
}

func resolve(ctx context.Context, source, path, account string) (b2creds.Credentials, error) {
	switch source {
	case "auto":
		if path == "" && account == "" {
			return b2creds.Locate(ctx)
		}
		// A path or account filter only applies to the file store, so
		// either flag narrows auto down to it.
		return b2creds.FromFile(ctx, path, account)
	case "env":
		return b2creds.FromEnv()
	case "file":
		return b2creds.FromFile(ctx, path, account)
	default:
		return b2creds.Credentials{}, fmt.Errorf("unknown source %q (want auto, env or file)", source)
	}
}

// output is the -json shape, field names matching the b2 CLI's account get
// command.
type output struct {
	ApplicationKeyID string `json:"applicationKeyId"`
	ApplicationKey   string `json:"applicationKey"`
}

// maskKey hides all but the last four characters of the application key so
// pasted terminal output doesn't leak the secret.
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
