package ports

import (
	"context"

	"go.trai.ch/dpms/internal/core/domain"
)

// IndexReader reads the package index of a single mirror directory.
//
//go:generate mockgen -source=index_reader.go -destination=mocks/mock_index_reader.go -package=mocks
type IndexReader interface {
	// ParseAll reads the index and returns its well-formed records in file order.
	// A nil slice and a non-nil error mean the index could not be read at all.
	ParseAll(ctx context.Context) ([]domain.PackageRecord, error)
}

// IndexReaderFactory creates an IndexReader bound to a mirror directory.
type IndexReaderFactory interface {
	// ForMirror returns a reader for the index inside mirrorPath that reports problems to reporter.
	ForMirror(mirrorPath string, reporter ErrorReporter) IndexReader
}
