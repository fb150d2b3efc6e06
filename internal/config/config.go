package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/nao1215/stepwait/internal/log"
)

// AppName is the application name used for XDG directory paths.
const AppName = "stepwait"

// Mode selects the toolkit provider.
type Mode string

const (
	// ModeAuto picks ModeActions inside GitHub Actions and ModeConsole elsewhere.
	ModeAuto Mode = "auto"
	// ModeActions speaks the GitHub Actions runner protocol.
	ModeActions Mode = "actions"
	// ModeConsole prints to the terminal.
	ModeConsole Mode = "console"
)

// Config holds all settings for one invocation.
type Config struct {
	// Mode selects the provider. See Resolve.
	Mode Mode

	// Verbose enables debug logging. RUNNER_DEBUG=1 has the same effect.
	Verbose bool

	// LogFormat is the encoding of internal log lines.
	LogFormat log.Format

	// EnvFilePath is an explicit .env file. When empty, FindEnvFile searches
	// the default locations and a missing file is not an error.
	EnvFilePath string

	// MetadataPath is an explicit action metadata file. When empty,
	// FindMetadataFile searches the current directory.
	MetadataPath string

	// SummaryFile receives the job summary in console mode.
	// Empty means the summary is printed to stdout.
	SummaryFile string

	// Milliseconds overrides the "milliseconds" input when MillisecondsSet
	// is true. An empty override is kept and fails validation.
	Milliseconds    string
	MillisecondsSet bool

	// Env is the parsed runner environment.
	Env Environment

	// Metadata is the loaded action metadata, or nil when none was found.
	Metadata *Metadata
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Mode:      ModeAuto,
		LogFormat: log.FormatText,
		Env:       DefaultEnvironment(),
	}
}

// Resolve returns the mode to run in, replacing ModeAuto with ModeActions
// when GITHUB_ACTIONS is true and ModeConsole otherwise.
func (c *Config) Resolve() Mode {
	if c.Mode != ModeAuto {
		return c.Mode
	}
	if c.Env.GitHubActions {
		return ModeActions
	}
	return ModeConsole
}

// DebugEnabled reports whether debug logging is on.
func (c *Config) DebugEnabled() bool {
	return c.Verbose || c.Env.RunnerDebug
}

// InputDefaults returns the input defaults from the metadata, if any.
func (c *Config) InputDefaults() map[string]string {
	if c.Metadata == nil {
		return nil
	}
	return c.Metadata.InputDefaults()
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeAuto, ModeActions, ModeConsole:
	default:
		return ErrInvalidMode
	}

	switch c.LogFormat {
	case log.FormatText, log.FormatJSON:
	default:
		return ErrInvalidLogFormat
	}

	if c.SummaryFile != "" && c.Resolve() == ModeActions {
		return ErrSummaryFileInActions
	}
	return nil
}

// XDGConfigDir returns the XDG config directory for stepwait.
// On Linux: ~/.config/stepwait
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
