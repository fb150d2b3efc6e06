package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

//go:embed templates/action.yml
var metadataTemplate embed.FS

// metadataFileName is the default action metadata file name.
const metadataFileName = "action.yml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an action.yml for stepwait",
		Long: `Init writes an action metadata file that runs stepwait as a Docker
container action.

The generated file declares:
- The "milliseconds" input with a default of 1000
- The "time" output
- A docker runtime that invokes "stepwait run"

Examples:
  # Create action.yml in current directory
  stepwait init

  # Create the metadata file at a specific path
  stepwait init -o .github/actions/wait/action.yml

  # Force overwrite existing file
  stepwait init -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", metadataFileName,
		"Output file path for the action metadata")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing metadata file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("metadata file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := metadataTemplate.ReadFile("templates/action.yml")
	if err != nil {
		return fmt.Errorf("failed to read metadata template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created action metadata: %s\n", outputPath)
	fmt.Fprintln(out, "\nThe milliseconds default applies to local runs as well:")
	fmt.Fprintln(out, "  stepwait run --metadata", outputPath)

	return nil
}
