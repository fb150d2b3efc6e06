package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/stepwait/internal/config"
	"github.com/nao1215/stepwait/internal/log"
	"github.com/nao1215/stepwait/internal/pipeline"
	"github.com/nao1215/stepwait/internal/report"
	"github.com/nao1215/stepwait/internal/runner"
	"github.com/nao1215/stepwait/internal/toolkit"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Wait the designated number of milliseconds",
		Long: `Run reads the "milliseconds" input, waits that long, sets the "time"
output to the time the wait finished, and writes the job summary.

A value that is not a number fails the step with "milliseconds not a number".

Inside GitHub Actions (GITHUB_ACTIONS=true) inputs come from the runner and
outputs and the job summary are written to the runner's files. Elsewhere
inputs come from INPUT_* variables, a .env file, or --milliseconds.

Examples:
  # Run as the action entrypoint
  stepwait run

  # Run locally with an explicit delay
  stepwait run --milliseconds 1500

  # Write the job summary to a file instead of stdout
  stepwait run --milliseconds 200 --summary-file summary.md

  # Use input defaults from an action metadata file
  stepwait run --metadata action.yml

Environment:
  STEPWAIT_MODE        auto, actions or console (overridden by --mode)
  STEPWAIT_LOG_FORMAT  text or json (overridden by --log-format)
  RUNNER_DEBUG         1 enables debug logging`,
		Args: cobra.NoArgs,
		RunE: runRunCmd,
	}

	cmd.Flags().StringP("mode", "m", string(config.ModeAuto),
		"Provider mode: auto, actions or console")
	cmd.Flags().String("log-format", string(log.FormatText),
		"Log format: text or json")
	cmd.Flags().StringP("env-file", "e", "",
		"Load variables from a .env file (default: .env in current or XDG config directory)")
	cmd.Flags().String("metadata", "",
		"Action metadata file for input defaults (default: action.yml in current directory)")
	cmd.Flags().StringP("summary-file", "s", "",
		"Write the job summary to a file (console mode only)")
	cmd.Flags().String("milliseconds", "",
		"Override the milliseconds input")

	return cmd
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, _ []string) error {
	cfg, vars, err := buildConfig(cmd, config.ProcessEnv())
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), log.Options{
		Verbose: cfg.DebugEnabled(),
		Format:  cfg.LogFormat,
	})
	slog.SetDefault(logger)

	// Set up context with signal handling so the wait can be interrupted
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	provider := newProvider(cfg, vars, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
	return execute(ctx, provider, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags and the given
// process environment. It also returns the variables providers read inputs
// from: the .env file overlaid by the process environment. The
// --milliseconds override is applied later by newProvider.
func buildConfig(cmd *cobra.Command, processEnv map[string]string) (*config.Config, map[string]string, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.EnvFilePath, err = cmd.Flags().GetString("env-file")
	if err != nil {
		return nil, nil, err
	}

	vars := processEnv
	envPath, err := config.FindEnvFile(cfg.EnvFilePath)
	if err != nil {
		return nil, nil, err
	}
	if envPath != "" {
		fromFile, err := config.LoadEnvFile(envPath)
		if err != nil {
			return nil, nil, err
		}
		vars = config.MergeEnv(fromFile, processEnv)
	}

	cfg.Env, err = config.LoadEnvironment(vars)
	if err != nil {
		return nil, nil, err
	}
	cfg.Mode = config.Mode(cfg.Env.Mode)
	cfg.LogFormat = log.Format(cfg.Env.LogFormat)

	// Flags win over STEPWAIT_* variables
	if cmd.Flags().Changed("mode") {
		mode, err := cmd.Flags().GetString("mode")
		if err != nil {
			return nil, nil, err
		}
		cfg.Mode = config.Mode(mode)
	}
	if cmd.Flags().Changed("log-format") {
		format, err := cmd.Flags().GetString("log-format")
		if err != nil {
			return nil, nil, err
		}
		cfg.LogFormat = log.Format(format)
	}

	cfg.MetadataPath, err = cmd.Flags().GetString("metadata")
	if err != nil {
		return nil, nil, err
	}
	// An explicit metadata path must exist; a missing default is fine.
	if metadataPath := config.FindMetadataFile(cfg.MetadataPath, "."); metadataPath != "" {
		cfg.Metadata, err = config.LoadMetadata(metadataPath)
		if err != nil {
			return nil, nil, err
		}
	} else if cfg.MetadataPath != "" {
		return nil, nil, fmt.Errorf("%w: %s", config.ErrMetadataNotFound, cfg.MetadataPath)
	}

	cfg.SummaryFile, err = cmd.Flags().GetString("summary-file")
	if err != nil {
		return nil, nil, err
	}

	if cmd.Flags().Changed("milliseconds") {
		cfg.Milliseconds, err = cmd.Flags().GetString("milliseconds")
		if err != nil {
			return nil, nil, err
		}
		cfg.MillisecondsSet = true
	}

	return cfg, vars, nil
}

// newProvider returns the provider for the resolved mode. An explicit
// --milliseconds replaces INPUT_MILLISECONDS, even when it is empty.
func newProvider(cfg *config.Config, vars map[string]string, logger *slog.Logger, out, errOut io.Writer) toolkit.SummaryProvider {
	inputName := toolkit.InputEnvName(pipeline.InputMilliseconds)
	lookupEnv := func(key string) (string, bool) {
		if key == inputName && cfg.MillisecondsSet {
			return cfg.Milliseconds, true
		}
		v, ok := vars[key]
		return v, ok
	}
	getenv := func(key string) string {
		v, _ := lookupEnv(key)
		return v
	}

	if cfg.Resolve() == config.ModeActions {
		return toolkit.NewActions(
			toolkit.WithActionsWriter(out),
			toolkit.WithActionsGetenv(getenv),
		)
	}

	opts := []toolkit.ConsoleOption{
		toolkit.WithConsoleLookupEnv(lookupEnv),
		toolkit.WithInputDefaults(cfg.InputDefaults()),
		toolkit.WithConsoleLogger(logger),
		toolkit.WithConsoleOutput(out, errOut),
	}
	if cfg.SummaryFile != "" {
		opts = append(opts, toolkit.WithSummarySink(report.NewFileSink(cfg.SummaryFile)))
	}
	return toolkit.NewConsole(opts...)
}

// execute performs one run and maps a failed run to runner.ErrRunFailed.
func execute(ctx context.Context, provider toolkit.SummaryProvider, logger *slog.Logger) error {
	run := runner.New(provider, runner.WithLogger(logger)).Run(ctx)
	if !run.Succeeded() {
		return runner.ErrRunFailed
	}
	return nil
}
