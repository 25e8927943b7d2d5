package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/isnick/isnick-downloader/internal/model"
	"github.com/isnick/isnick-downloader/internal/platform"
)

// File names and permissions
const (
	ConfigFileName = "config.json"
	LogFileName    = "is.log"

	AppDirName = "isnick-downloader"

	configFilePermissions = 0o600
	configDirPermissions  = 0o700
)

// Config is the persisted application record. Unknown keys in the file
// are ignored on load; missing keys fall back to defaults.
type Config struct {
	Binary       string     `json:"binary,omitempty"`
	SandboxDir   string     `json:"sandbox_dir"`
	SelectedSite model.Site `json:"selected_site"`
}

// Default returns the configuration used when nothing is persisted yet
func Default() Config {
	return Config{
		SandboxDir:   platform.DefaultSandboxDir(),
		SelectedSite: model.DefaultSite,
	}
}

// Store owns the configuration file lifecycle. It is created once at
// startup and passed explicitly to the components that need it.
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the per-user path of the configuration file
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(base, AppDirName, ConfigFileName), nil
}

// DefaultLogPath returns the per-user path of the application log file
func DefaultLogPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config dir: %w", err)
	}
	return filepath.Join(base, AppDirName, LogFileName), nil
}

// Path returns the file the store reads and writes
func (s *Store) Path() string {
	return s.path
}

// Load reads the configuration file. A missing file yields the defaults
// without error; a corrupt file yields the defaults and the parse error.
func (s *Store) Load() (Config, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read config %s: %w", s.path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", s.path, err)
	}
	return normalize(cfg), nil
}

// Save writes the configuration atomically: marshal, write a temp file in
// the same directory, then rename over the target. A crash mid-save never
// leaves a partial config behind.
func (s *Store) Save(cfg Config) error {
	cfg = normalize(cfg)

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, configDirPermissions); err != nil {
		return fmt.Errorf("create config dir %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ConfigFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp config: %w", err)
	}
	if err := os.Chmod(tmpName, configFilePermissions); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp config: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace config %s: %w", s.path, err)
	}
	return nil
}

// normalize fills missing fields with defaults and maps unknown site
// names back to the default site.
func normalize(cfg Config) Config {
	if cfg.SandboxDir == "" {
		cfg.SandboxDir = platform.DefaultSandboxDir()
	}
	cfg.SelectedSite = model.ParseSite(string(cfg.SelectedSite))
	return cfg
}
