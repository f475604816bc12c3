// Package ports defines the core interfaces for the application.
package ports

// ErrorReporter receives problems found while reading the package index.
// It is called for a missing index, I/O failures and malformed lines.
//
//go:generate mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type ErrorReporter interface {
	ReportError(message string)
}
