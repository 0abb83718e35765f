// Package util provides common utilities including logging helpers and
// file system locations.
package util

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}

// SetupLogging routes the standard logger to path when envVar is set and
// discards it otherwise, since the terminal belongs to the UI. The returned
// closer is never nil.
func SetupLogging(envVar, path string) (io.Closer, error) {
	if strings.TrimSpace(os.Getenv(envVar)) == "" {
		log.SetOutput(io.Discard)
		return nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nopCloser{}, err
	}
	f, err := tea.LogToFile(path, "")
	if err != nil {
		return nopCloser{}, err
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
