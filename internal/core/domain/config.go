package domain

// LogFormat selects how log records are rendered.
type LogFormat string

const (
	// LogFormatPretty renders human-readable, colored logs.
	LogFormatPretty LogFormat = "pretty"
	// LogFormatJSON renders one JSON object per log record.
	LogFormatJSON LogFormat = "json"
)

// Config is the resolved dpms configuration.
type Config struct {
	// MirrorPath is the local mirror directory holding the index file.
	MirrorPath string

	// LogFormat is the log rendering mode.
	LogFormat LogFormat
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		MirrorPath: ".",
		LogFormat:  LogFormatPretty,
	}
}
