package config

import (
	"errors"
	"testing"

	"github.com/nao1215/stepwait/internal/log"
)

// TestNewConfig verifies the defaults returned by NewConfig.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default mode is auto", func(t *testing.T) {
		t.Parallel()
		if cfg.Mode != ModeAuto {
			t.Errorf("expected mode auto, got %q", cfg.Mode)
		}
	})

	t.Run("default log format is text", func(t *testing.T) {
		t.Parallel()
		if cfg.LogFormat != log.FormatText {
			t.Errorf("expected text, got %q", cfg.LogFormat)
		}
	})

	t.Run("debug is off", func(t *testing.T) {
		t.Parallel()
		if cfg.DebugEnabled() {
			t.Error("expected debug to be disabled")
		}
	})

	t.Run("no metadata means no input defaults", func(t *testing.T) {
		t.Parallel()
		if cfg.InputDefaults() != nil {
			t.Error("expected nil input defaults")
		}
	})
}

// TestConfigResolve tests mode resolution.
func TestConfigResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		mode          Mode
		githubActions bool
		want          Mode
	}{
		{name: "auto outside actions", mode: ModeAuto, githubActions: false, want: ModeConsole},
		{name: "auto inside actions", mode: ModeAuto, githubActions: true, want: ModeActions},
		{name: "explicit console inside actions", mode: ModeConsole, githubActions: true, want: ModeConsole},
		{name: "explicit actions outside actions", mode: ModeActions, githubActions: false, want: ModeActions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			cfg.Mode = tt.mode
			cfg.Env.GitHubActions = tt.githubActions

			if got := cfg.Resolve(); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestConfigDebugEnabled tests that RUNNER_DEBUG enables debug logging.
func TestConfigDebugEnabled(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.Env.RunnerDebug = true
	if !cfg.DebugEnabled() {
		t.Error("expected RUNNER_DEBUG to enable debug")
	}

	cfg = NewConfig()
	cfg.Verbose = true
	if !cfg.DebugEnabled() {
		t.Error("expected --verbose to enable debug")
	}
}

// TestConfigValidate tests each validation rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{name: "defaults are valid", modify: func(*Config) {}},
		{name: "unknown mode", modify: func(c *Config) { c.Mode = "remote" }, wantErr: ErrInvalidMode},
		{name: "unknown log format", modify: func(c *Config) { c.LogFormat = "xml" }, wantErr: ErrInvalidLogFormat},
		{
			name: "summary file in console mode",
			modify: func(c *Config) {
				c.Mode = ModeConsole
				c.SummaryFile = "summary.md"
			},
		},
		{
			name: "summary file in actions mode",
			modify: func(c *Config) {
				c.Mode = ModeActions
				c.SummaryFile = "summary.md"
			},
			wantErr: ErrSummaryFileInActions,
		},
		{
			name: "summary file with auto mode inside actions",
			modify: func(c *Config) {
				c.Env.GitHubActions = true
				c.SummaryFile = "summary.md"
			},
			wantErr: ErrSummaryFileInActions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

// TestXDGConfigDir tests the XDG config path.
func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	if got := XDGConfigDir(); got == "" {
		t.Error("expected non-empty XDG config dir")
	}
}
