// Package config gathers the settings of a stepwait invocation.
//
// Settings come from three places, applied in this order:
//   - the runner environment (GITHUB_ACTIONS, RUNNER_DEBUG, GITHUB_OUTPUT,
//     GITHUB_STEP_SUMMARY and STEPWAIT_* variables), parsed with
//     caarlos0/env and optionally seeded from a .env file for local runs
//   - the action metadata file (action.yml), whose input defaults apply
//     when running outside GitHub Actions
//   - command line flags, which override both
package config
