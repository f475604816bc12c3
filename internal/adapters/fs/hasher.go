// Package fs computes content fingerprints of the package index.
package fs

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/dpms/internal/core/domain"
	"go.trai.ch/dpms/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides hashing functionality for records and files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, errors.Join(domain.ErrFileOpenFailed, zerr.With(err, "path", path))
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, errors.Join(domain.ErrFileHashFailed, zerr.With(err, "path", path))
	}

	return hasher.Sum64(), nil
}

// ComputeRecordHash computes a fingerprint of the record's fields.
// Dependencies are hashed in sorted order, build steps in their given order.
func (h *Hasher) ComputeRecordHash(record domain.PackageRecord) string {
	hasher := xxhash.New()

	_, _ = hasher.WriteString(record.Name())
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(record.Version())
	_, _ = hasher.Write([]byte{0})
	_, _ = hasher.WriteString(record.SourceURL())
	_, _ = hasher.Write([]byte{0})

	deps := record.Dependencies()
	for _, name := range record.DependencyNames() {
		_, _ = hasher.WriteString(name)
		_, _ = hasher.Write([]byte{'='})
		_, _ = hasher.WriteString(deps[name])
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	// Steps are length-prefixed so empty steps still change the hash.
	for _, step := range record.BuildSteps() {
		_, _ = fmt.Fprintf(hasher, "%d:", len(step))
		_, _ = hasher.WriteString(step)
	}
	_, _ = hasher.Write([]byte{0})

	return fmt.Sprintf("%016x", hasher.Sum64())
}
