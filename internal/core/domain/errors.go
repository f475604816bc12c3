package domain

import "go.trai.ch/zerr"

var (
	// ErrIndexNotFound is returned when the index file does not exist in the mirror directory.
	ErrIndexNotFound = zerr.New("index file not found")

	// ErrIndexReadFailed is returned when the index file cannot be opened or read.
	ErrIndexReadFailed = zerr.New("failed to read index file")

	// ErrMalformedLine names the problem reported for an index line without the required field count.
	ErrMalformedLine = zerr.New("malformed line in index")

	// ErrIndexHasProblems is returned by check when at least one index line was skipped.
	ErrIndexHasProblems = zerr.New("index contains malformed lines")

	// ErrPackageNotFound is returned when a requested package is not listed in the index.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidLogFormat is returned when the configured log format is unknown.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'pretty' or 'json'")

	// ErrInvalidOutputFormat is returned when an unknown output format is requested.
	ErrInvalidOutputFormat = zerr.New("invalid output format, expected 'text' or 'yaml'")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)
