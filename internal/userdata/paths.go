package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentx-labs/seltrack/internal/branding"
)

// Directory and file name constants for the state directory.
const (
	StateDir  = "state"
	StateFile = "state.yaml"
)

// Permission constants.
const (
	DirPermSecure  os.FileMode = 0700
	FilePermSecure os.FileMode = 0600
	DirPermNormal  os.FileMode = 0755
)

// GetStateRoot returns the path to the state directory.
// It checks the SELTRACK_STATE environment variable first,
// then falls back to ~/.seltrack/state.
func GetStateRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("STATE")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), StateDir), nil
}

// GetStatePath returns the path to the default state file.
func GetStatePath() (string, error) {
	root, err := GetStateRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, StateFile), nil
}
