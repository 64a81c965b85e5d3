package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnvAPIKey is the environment variable consulted before the stored
// credential file.
const EnvAPIKey = "GEMINI_API_KEY"

type credential struct {
	APIKey string `json:"api_key"`
}

// CredentialPath returns the location of the stored credential file,
// under the platform user config directory.
func CredentialPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, "seoimg", "config.json"), nil
}

// LoadAPIKey resolves the API key: the environment variable wins, then
// the stored credential file. A missing file is not an error; the key is
// simply empty and the caller decides whether that is fatal.
func LoadAPIKey() (string, error) {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}
	path, err := CredentialPath()
	if err != nil {
		return "", err
	}
	key, err := readCredential(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	return key, err
}

func readCredential(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	var cred credential
	if err := json.Unmarshal(data, &cred); err != nil {
		return "", fmt.Errorf("parsing %s: %w", path, err)
	}
	return cred.APIKey, nil
}

// SaveAPIKey persists the key to the credential file, creating the
// directory if needed. The file is written 0600 since it holds a secret.
func SaveAPIKey(key string) (string, error) {
	if key == "" {
		return "", errors.New("API key must not be empty")
	}
	path, err := CredentialPath()
	if err != nil {
		return "", err
	}
	if err := writeCredential(path, key); err != nil {
		return "", err
	}
	return path, nil
}

func writeCredential(path, key string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := json.MarshalIndent(credential{APIKey: key}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing credential: %w", err)
	}
	return nil
}
