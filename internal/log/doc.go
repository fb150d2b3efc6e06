// Package log provides slog loggers that mask secrets before they are
// written.
//
// CI logs are often public, and a step may run with tokens in its
// environment. SecureHandler wraps any slog.Handler and replaces
// attribute values that look like credentials:
//   - attributes whose key names a secret (token, password, secret, ...)
//   - GitHub token shapes (ghp_, gho_, ghs_, ghu_, ghr_, github_pat_)
//   - JWTs, bearer and basic authorization values, PEM private keys
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, log.Options{Verbose: true})
//	logger.Debug("step completed", "step", "wait", "token", tok) // token is masked
package log
