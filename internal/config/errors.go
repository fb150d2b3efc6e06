package config

import "errors"

// Configuration errors. Validate and the loaders return these so callers
// can use errors.Is.
var (
	// ErrInvalidMode is returned when the mode is not auto, actions or console.
	ErrInvalidMode = errors.New("invalid mode: must be auto, actions or console")

	// ErrInvalidLogFormat is returned when the log format is not text or json.
	ErrInvalidLogFormat = errors.New("invalid log format: must be text or json")

	// ErrSummaryFileInActions is returned when a summary file is requested in
	// actions mode, where the runner decides the summary location.
	ErrSummaryFileInActions = errors.New("--summary-file cannot be used in actions mode")

	// ErrEnvFileNotFound is returned when an explicitly named .env file does not exist.
	ErrEnvFileNotFound = errors.New("env file not found")

	// ErrMetadataNotFound is returned when an explicitly named action metadata
	// file does not exist.
	ErrMetadataNotFound = errors.New("action metadata file not found")
)
