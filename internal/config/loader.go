package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
)

const (
	// ConfigDir is the directory name under ~/.config
	ConfigDir = "edmv"
	// ConfigFile is the config file name
	ConfigFile = "config.json"
	// EnvPrefix prefixes every environment override, e.g. EDMV_WALK_WORKERS=4.
	// List values are comma separated, one element per item:
	// EDMV_EDITOR_COMMAND=code,--wait runs "code" "--wait" <file>.
	EnvPrefix = "EDMV_"
)

// FileSystem abstracts file operations for testability
type FileSystem interface {
	UserHomeDir() (string, error)
	ReadFile(path string) ([]byte, error)
}

// ConfigFileReader implements FileSystem using the real OS for config loading
type ConfigFileReader struct{}

func (ConfigFileReader) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

func (ConfigFileReader) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Loader handles configuration loading with injected dependencies
type Loader struct {
	fs      FileSystem
	environ []string
}

// NewLoader creates a production Loader using the real filesystem and process environment
func NewLoader() *Loader {
	return &Loader{fs: ConfigFileReader{}, environ: os.Environ()}
}

// NewLoaderWithFS creates a Loader with a custom filesystem and no environment (for testing)
func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// WithEnviron replaces the environment consulted for EDMV_* overrides.
func (l *Loader) WithEnviron(environ []string) *Loader {
	l.environ = environ
	return l
}

// Load reads configuration from ~/.config/edmv/config.json, merges it with
// defaults, then applies EDMV_<SECTION>_<KEY> environment overrides.
// Returns default config if the dotfile doesn't exist.
// Returns error only for parse errors, permission issues, or validation failures.
//
// NOTE: JSON keys are unmarshalled directly over the default configuration,
// so explicit zero values (0, false, "") in the file override defaults.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if err := l.loadFile(cfg); err != nil {
		return nil, err
	}

	if err := applyEnv(cfg, l.environ); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (l *Loader) loadFile(cfg *Config) error {
	homeDir, err := l.fs.UserHomeDir()
	if err != nil {
		return nil // Use defaults if can't get home dir
	}

	configPath := filepath.Join(homeDir, ".config", ConfigDir, ConfigFile)

	data, err := l.fs.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", configPath, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", configPath, err)
	}
	return nil
}

// applyEnv folds EDMV_SECTION_KEY=value pairs into a nested map and decodes it
// over cfg. Values are weakly typed; list fields take comma-separated values.
func applyEnv(cfg *Config, environ []string) error {
	overrides := make(map[string]any)
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		section, key, ok := strings.Cut(strings.ToLower(strings.TrimPrefix(name, EnvPrefix)), "_")
		if !ok || section == "" || key == "" {
			continue
		}
		sub, _ := overrides[section].(map[string]any)
		if sub == nil {
			sub = make(map[string]any)
			overrides[section] = sub
		}
		sub[key] = value
	}
	if len(overrides) == 0 {
		return nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		TagName:          "json",
		Result:           cfg,
	})
	if err != nil {
		return fmt.Errorf("failed to build env decoder: %w", err)
	}
	if err := decoder.Decode(overrides); err != nil {
		return fmt.Errorf("invalid %s environment override: %w", EnvPrefix+"*", err)
	}
	return nil
}

// Load is a convenience function using the default loader
func Load() (*Config, error) {
	return NewLoader().Load()
}
