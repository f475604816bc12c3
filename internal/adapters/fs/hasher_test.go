package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dpms/internal/adapters/fs"
	"go.trai.ch/dpms/internal/core/domain"
)

func TestHasher_ComputeFileHash(t *testing.T) {
	content := []byte("my-app,1.0.0,https://github.com/user/my-app.git,zlib,make\n")
	path := filepath.Join(t.TempDir(), domain.IndexFileName)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	got, err := fs.NewHasher().ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64(content), got)
}

func TestHasher_ComputeFileHash_Missing(t *testing.T) {
	_, err := fs.NewHasher().ComputeFileHash(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, domain.ErrFileOpenFailed)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestHasher_ComputeRecordHash(t *testing.T) {
	h := fs.NewHasher()
	base := domain.NewPackageRecord("my-app", "1.0.0", "src", []string{"zlib", "openssl"}, []string{"cmake", "make"})

	t.Run("stable across dependency order", func(t *testing.T) {
		reordered := domain.NewPackageRecord("my-app", "1.0.0", "src", []string{"openssl", "zlib"}, []string{"cmake", "make"})
		assert.Equal(t, h.ComputeRecordHash(base), h.ComputeRecordHash(reordered))
	})

	t.Run("formatted as 16 hex chars", func(t *testing.T) {
		assert.Regexp(t, "^[0-9a-f]{16}$", h.ComputeRecordHash(base))
	})

	variants := map[string]domain.PackageRecord{
		"version":     domain.NewPackageRecord("my-app", "1.0.1", "src", []string{"zlib", "openssl"}, []string{"cmake", "make"}),
		"source":      domain.NewPackageRecord("my-app", "1.0.0", "other", []string{"zlib", "openssl"}, []string{"cmake", "make"}),
		"dependency":  domain.NewPackageRecord("my-app", "1.0.0", "src", []string{"zlib"}, []string{"cmake", "make"}),
		"step order":  domain.NewPackageRecord("my-app", "1.0.0", "src", []string{"zlib", "openssl"}, []string{"make", "cmake"}),
		"empty step":  domain.NewPackageRecord("my-app", "1.0.0", "src", []string{"zlib", "openssl"}, []string{"cmake", "make", ""}),
		"joined step": domain.NewPackageRecord("my-app", "1.0.0", "src", []string{"zlib", "openssl"}, []string{"cmakemake"}),
	}
	for name, rec := range variants {
		t.Run("differs on "+name, func(t *testing.T) {
			assert.NotEqual(t, h.ComputeRecordHash(base), h.ComputeRecordHash(rec))
		})
	}
}
