// Package config persists the session token and selected network between
// runs of eeroctl.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileOverride points the credential store somewhere other than the
// per-user config directory. Used in tests.
var FileOverride = ""

// Credentials is the stored state: the session token and the ID of the
// network commands operate on by default.
type Credentials struct {
	Token     string `json:"token"`
	NetworkID string `json:"network_id"`
}

func credentialsFile() string {
	if FileOverride != "" {
		return FileOverride
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		dir, err = os.Getwd()
		if err != nil {
			panic(err)
		}
	}

	return filepath.Join(dir, "eeroctl", "credentials.json")
}

// Read returns the stored credentials. A missing or unreadable file
// reads as empty credentials, never as an error.
func Read() Credentials {
	var creds Credentials

	f, err := os.Open(credentialsFile())
	if err != nil {
		return creds
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&creds); err != nil {
		return Credentials{}
	}

	return creds
}

// Write persists credentials. The token authenticates the account, so
// the file is owner-only.
func Write(creds Credentials) error {
	path := credentialsFile()

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return errors.Wrap(err, "create config directory")
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return errors.Wrap(err, "open credentials file")
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(&creds); err != nil {
		return errors.Wrap(err, "encode credentials")
	}

	return nil
}

// Logout writes back empty values for both fields.
func Logout() error {
	return Write(Credentials{})
}
