package ports

import "go.trai.ch/dpms/internal/core/domain"

// Hasher computes fingerprints of index contents.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeRecordHash returns a stable fingerprint of a package record.
	ComputeRecordHash(record domain.PackageRecord) string

	// ComputeFileHash computes the hash of a file's content.
	ComputeFileHash(path string) (uint64, error)
}
