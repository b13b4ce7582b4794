package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the persisted user configuration. ProjectsDirectory and
// EditorCmd are required; blank values trigger the initial setup flow.
type Config struct {
	ProjectsDirectory string `yaml:"projects_directory"`
	EditorCmd         string `yaml:"editor_cmd"`
	Theme             string `yaml:"theme"`
	LogLevel          string `yaml:"log_level"`
}

// SetupReason says why initial setup must run.
type SetupReason int

const (
	// SetupNotNeeded: configuration loaded and validated.
	SetupNotNeeded SetupReason = iota
	// SetupMissingFile: no configuration file exists yet.
	SetupMissingFile
	// SetupIncompleteData: the file exists but a required field is blank
	// or the projects directory fails validation.
	SetupIncompleteData
)

// CorruptError means the configuration file exists but is not parseable.
// Unlike incomplete data this is fatal: the user must fix or delete the
// file.
type CorruptError struct {
	Path string
	Err  error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("corrupt config file %s: %v", e.Path, e.Err)
}

func (e *CorruptError) Unwrap() error {
	return e.Err
}

const defaultTheme = "mocha"

func defaults() Config {
	return Config{Theme: defaultTheme}
}

// Load reads the configuration from the default path.
func Load() (Config, SetupReason, error) {
	return LoadFrom(Path(""))
}

// LoadFrom reads the configuration from an explicit path.
//
// Returns SetupMissingFile when no file exists, SetupIncompleteData when a
// required field is blank or the projects directory does not validate, and
// a *CorruptError when the YAML itself is malformed.
func LoadFrom(path string) (Config, SetupReason, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, SetupMissingFile, nil
		}
		return cfg, SetupNotNeeded, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaults(), SetupNotNeeded, &CorruptError{Path: path, Err: err}
	}
	if cfg.Theme == "" {
		cfg.Theme = defaultTheme
	}

	if cfg.ProjectsDirectory == "" || cfg.EditorCmd == "" {
		return cfg, SetupIncompleteData, nil
	}
	if err := ValidateProjectsDir(cfg.ProjectsDirectory); err != nil {
		// The stored directory went away or lost permissions; the user
		// can correct it through the setup screen.
		return cfg, SetupIncompleteData, nil
	}

	return cfg, SetupNotNeeded, nil
}

// Save validates and atomically persists the configuration to the default
// path.
func (c Config) Save() error {
	return c.SaveTo(Path(""))
}

// SaveTo validates and atomically persists the configuration: write to a
// temp file, then rename over the target.
func (c Config) SaveTo(path string) error {
	if c.EditorCmd == "" {
		return errors.New("editor_cmd cannot be empty")
	}
	if err := ValidateProjectsDir(c.ProjectsDirectory); err != nil {
		return err
	}
	if c.Theme == "" {
		c.Theme = defaultTheme
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// ValidateProjectsDir checks that path exists, is a directory, is
// readable, and is writable (probed by creating and removing a file).
func ValidateProjectsDir(path string) error {
	if path == "" {
		return errors.New("projects directory cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("projects directory does not exist: %s", path)
		}
		return fmt.Errorf("projects directory not accessible: %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("projects directory is not a directory: %s", path)
	}

	if _, err := os.ReadDir(path); err != nil {
		return fmt.Errorf("projects directory not readable: %s", path)
	}

	probe := filepath.Join(path, ".rustm-write-probe")
	f, err := os.Create(probe)
	if err != nil {
		return fmt.Errorf("projects directory not writable: %s", path)
	}
	_ = f.Close()
	_ = os.Remove(probe)

	return nil
}

// Path returns the configuration file path. A non-empty configDir
// overrides the default location.
func Path(configDir string) string {
	return filepath.Join(Dir(configDir), "config.yaml")
}

// Dir returns the configuration directory: the override when given,
// otherwise $XDG_CONFIG_HOME/rustm or ~/.config/rustm.
func Dir(configDir string) string {
	if configDir != "" {
		return configDir
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "rustm")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "rustm")
	}
	return filepath.Join(home, ".config", "rustm")
}

// DataDir returns the directory for the log file and instance lock.
func DataDir(configDir string) string {
	if configDir != "" {
		return configDir
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "rustm")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".local", "state", "rustm")
	}
	return filepath.Join(home, ".local", "state", "rustm")
}
