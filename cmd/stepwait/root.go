package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/stepwait/internal/runner"
)

// NewRootCmd creates the root command for stepwait.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stepwait",
		Short: "Wait a designated number of milliseconds as a workflow step",
		Long: `stepwait is a GitHub Actions step that waits a designated number of
milliseconds, sets the "time" output to the time the wait finished, and
writes a job summary.

Inside GitHub Actions it speaks the runner protocol (workflow commands and
file commands). Elsewhere it reads INPUT_* variables, prints outputs to
stdout, and prints the job summary as Markdown.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		// A failed run has already been reported through its provider.
		if !errors.Is(err, runner.ErrRunFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
