// Package toolkit connects a run to the platform that invoked it.
//
// The Provider interface is the whole surface the runner needs: read a named
// input, emit a debug message, set a named output, and signal failure. Two
// implementations are provided:
//   - Actions speaks the GitHub Actions workflow command and file command
//     protocol through sethvargo/go-githubactions.
//   - Console serves local runs: inputs come from the environment, debug
//     messages go to a slog logger, outputs and failures go to the terminal.
//
// Providers are injected into the runner; nothing in this package keeps
// process-global state.
package toolkit
