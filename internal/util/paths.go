package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/splitpace/internal/config"
)

// Paths locates the files the app reads and writes.
type Paths struct {
	// Data holds the settings database and the debug log.
	Data string
	// Reports receives exported split reports.
	Reports string
}

// DefaultPaths follows the XDG layout: data under $XDG_DATA_HOME/splitpace
// and reports under <documents>/splitpace/splits.
func DefaultPaths() Paths {
	return Paths{
		Data:    filepath.Join(dataHome(), config.AppName),
		Reports: filepath.Join(documentsDir(), config.AppName, config.ReportDirName),
	}
}

func (p Paths) Database() string {
	return filepath.Join(p.Data, config.DBFileName)
}

func (p Paths) DebugLog() string {
	return filepath.Join(p.Data, config.DebugLogFile)
}

// EnsureData creates the data directory. Reports are created on export.
func (p Paths) EnsureData() error {
	return os.MkdirAll(p.Data, 0o755)
}

func dataHome() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return base
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// documentsDir resolves XDG_DOCUMENTS_DIR from the environment, then from
// user-dirs.dirs, then falls back to ~/Documents.
func documentsDir() string {
	if dir := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); dir != "" {
		return os.ExpandEnv(dir)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	configHome := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME"))
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}
	if data, err := os.ReadFile(filepath.Join(configHome, "user-dirs.dirs")); err == nil {
		if dir := userDirsEntry(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return os.ExpandEnv(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

// userDirsEntry reads key from the shell-style user-dirs.dirs format.
func userDirsEntry(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		name, value, ok := strings.Cut(strings.TrimSpace(line), "=")
		if !ok || name != key {
			continue
		}
		return strings.Trim(value, `"`)
	}
	return ""
}
