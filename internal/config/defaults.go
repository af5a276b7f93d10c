package config

import "runtime"

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile
// or EDMV_* environment variables.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Walk   WalkConfig   `json:"walk"`
	Apply  ApplyConfig  `json:"apply"`
	Editor EditorConfig `json:"editor"`
	Log    LogConfig    `json:"log"`
	UI     UIConfig     `json:"ui"`
}

type WalkConfig struct {
	Workers       int      `json:"workers"`        // Default: runtime.NumCPU()
	ChannelBuffer int      `json:"channel_buffer"` // Default: 256
	Hidden        bool     `json:"hidden"`         // Default: false (dot entries are skipped)
	IgnoreFiles   []string `json:"ignore_files"`   // Default: [".gitignore", ".ignore"]
	Parents       bool     `json:"parents"`        // Default: true
	GitExclude    bool     `json:"git_exclude"`    // Default: true
	GitGlobal     bool     `json:"git_global"`     // Default: true
}

type ApplyConfig struct {
	Workers    int  `json:"workers"`     // Default: runtime.NumCPU()
	CreateDirs bool `json:"create_dirs"` // Default: false
}

type EditorConfig struct {
	// Command replaces the platform opener. The scratch file path is appended
	// as the last argument. Empty means xdg-open / open / cmd start.
	Command []string `json:"command"`
	// Attach runs Command on the current terminal and treats its exit as the
	// end of editing, for terminal editors such as vim.
	Attach bool `json:"attach"` // Default: false
}

type LogConfig struct {
	Level string `json:"level"` // Default: "warn"
}

type UIConfig struct {
	MarkdownReport bool `json:"markdown_report"` // Default: false
	WordWrap       int  `json:"word_wrap"`       // Default: 100
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	workers := max(runtime.NumCPU(), 1)
	return &Config{
		Walk: WalkConfig{
			Workers:       workers,
			ChannelBuffer: 256,
			Hidden:        false,
			IgnoreFiles:   []string{".gitignore", ".ignore"},
			Parents:       true,
			GitExclude:    true,
			GitGlobal:     true,
		},
		Apply: ApplyConfig{
			Workers:    workers,
			CreateDirs: false,
		},
		Editor: EditorConfig{},
		Log: LogConfig{
			Level: "warn",
		},
		UI: UIConfig{
			MarkdownReport: false,
			WordWrap:       100,
		},
	}
}
