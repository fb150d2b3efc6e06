package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is the name of the .env file searched for local runs.
const DefaultEnvFile = ".env"

// Environment holds the runner variables stepwait reads.
type Environment struct {
	// GitHubActions is "true" on GitHub-hosted and self-hosted runners.
	GitHubActions bool `env:"GITHUB_ACTIONS" envDefault:"false"`

	// RunnerDebug is "1" when step debug logging is enabled for the job.
	RunnerDebug bool `env:"RUNNER_DEBUG" envDefault:"false"`

	// Mode overrides the mode when the --mode flag is not given.
	Mode string `env:"STEPWAIT_MODE" envDefault:"auto"`

	// LogFormat overrides the log format when the --log-format flag is not given.
	LogFormat string `env:"STEPWAIT_LOG_FORMAT" envDefault:"text"`
}

// DefaultEnvironment returns the Environment of an empty process environment.
func DefaultEnvironment() Environment {
	return Environment{
		Mode:      string(ModeAuto),
		LogFormat: "text",
	}
}

// LoadEnvironment parses vars into an Environment. A nil map reads the
// process environment.
func LoadEnvironment(vars map[string]string) (Environment, error) {
	var e Environment
	var err error
	if vars == nil {
		err = env.Parse(&e)
	} else {
		err = env.Parse(&e, env.Options{Environment: vars})
	}
	if err != nil {
		return Environment{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return e, nil
}

// ProcessEnv returns the process environment as a map.
func ProcessEnv() map[string]string {
	vars := make(map[string]string)
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok {
			vars[k] = v
		}
	}
	return vars
}

// FindEnvFile returns the .env file to load:
//  1. explicitPath when given; it must exist
//  2. .env in the current directory
//  3. env in the XDG config directory
//
// It returns "" when no default file exists.
func FindEnvFile(explicitPath string) (string, error) {
	if explicitPath != "" {
		if _, err := os.Stat(explicitPath); err != nil {
			return "", fmt.Errorf("%w: %s", ErrEnvFileNotFound, explicitPath)
		}
		return explicitPath, nil
	}

	if cwd, err := os.Getwd(); err == nil {
		p := filepath.Join(cwd, DefaultEnvFile)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	p := filepath.Join(XDGConfigDir(), "env")
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}
	return "", nil
}

// LoadEnvFile reads a .env file into a map without touching the process
// environment.
func LoadEnvFile(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
	}
	return vars, nil
}

// MergeEnv overlays base on top of file values, so variables already set in
// the process win over the .env file.
func MergeEnv(fromFile, base map[string]string) map[string]string {
	merged := make(map[string]string, len(fromFile)+len(base))
	for k, v := range fromFile {
		merged[k] = v
	}
	for k, v := range base {
		merged[k] = v
	}
	return merged
}
