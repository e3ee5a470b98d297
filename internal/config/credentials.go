package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	keyringService = "planner-tui"
	keyringUser    = "session-token"
	credFileName   = ".credentials"

	// TokenEnv overrides every stored token.
	TokenEnv = "PLANNER_TOKEN"
)

// keyring access, swapped out in tests.
var (
	keyringGet    = keyring.Get
	keyringSet    = keyring.Set
	keyringDelete = keyring.Delete
)

// DataDir returns the directory used for credential storage.
// Uses XDG_DATA_HOME or defaults to ~/.local/share/planner-tui/
func DataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dataHome = filepath.Join(homeDir, ".local", "share")
	}

	dataDir := filepath.Join(dataHome, "planner-tui")
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create data directory: %w", err)
	}

	return dataDir, nil
}

// GetToken retrieves the API session token.
// Priority: PLANNER_TOKEN, system keyring, credentials file. An empty token
// without error means the API is used anonymously.
func GetToken() (string, error) {
	if token := os.Getenv(TokenEnv); token != "" {
		return strings.TrimSpace(token), nil
	}

	if token, err := keyringGet(keyringService, keyringUser); err == nil && token != "" {
		return strings.TrimSpace(token), nil
	}

	credPath, err := credentialsPath()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(credPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read credentials file: %w", err)
	}

	return strings.TrimSpace(string(data)), nil
}

// SaveToken stores the token in the keyring, or in the credentials file when
// no keyring is available.
func SaveToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := keyringSet(keyringService, keyringUser, token); err == nil {
		return nil
	}

	credPath, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.WriteFile(credPath, []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	return nil
}

// ClearToken removes the stored token from all locations.
func ClearToken() error {
	_ = keyringDelete(keyringService, keyringUser)

	credPath, err := credentialsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(credPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}

	return nil
}

func credentialsPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credFileName), nil
}
