package ux

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// HomeEnv overrides the questionnaire home directory
const HomeEnv = "QUESTIONNAIRE_HOME"

// Paths resolves the files the CLI keeps under its home directory
type Paths struct {
	Home string
}

// DefaultPaths returns paths under $QUESTIONNAIRE_HOME, or ~/.questionnaire
func DefaultPaths() (*Paths, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return &Paths{Home: dir}, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	return &Paths{Home: filepath.Join(home, ".questionnaire")}, nil
}

// ConfigFile returns the global configuration file
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.Home, "config.yaml")
}

// ArchiveFile returns the default response archive database
func (p *Paths) ArchiveFile() string {
	return filepath.Join(p.Home, "responses.db")
}

// LogFile returns the default log file
func (p *Paths) LogFile() string {
	return filepath.Join(p.Home, "logs", "questionnaire.log")
}

// Ensure creates the home directory
func (p *Paths) Ensure() error {
	if err := os.MkdirAll(p.Home, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", p.Home, err)
	}
	return nil
}

// Expand resolves a leading ~ and a relative path against the home
// directory. Absolute paths are returned unchanged.
func (p *Paths) Expand(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.Home, path)
}
