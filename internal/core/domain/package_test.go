package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/dpms/internal/core/domain"
)

func TestNewPackageRecord(t *testing.T) {
	tests := []struct {
		name      string
		deps      []string
		steps     []string
		wantDeps  map[string]string
		wantSteps []string
	}{
		{
			name:      "dependencies map to latest",
			deps:      []string{"zlib", "openssl"},
			steps:     []string{"cmake", "make", "make install"},
			wantDeps:  map[string]string{"zlib": "latest", "openssl": "latest"},
			wantSteps: []string{"cmake", "make", "make install"},
		},
		{
			name:      "duplicate dependency keeps one entry",
			deps:      []string{"libc", "libc"},
			steps:     []string{"gcc"},
			wantDeps:  map[string]string{"libc": "latest"},
			wantSteps: []string{"gcc"},
		},
		{
			name:      "no dependencies",
			deps:      nil,
			steps:     []string{""},
			wantDeps:  map[string]string{},
			wantSteps: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := domain.NewPackageRecord("pkg", "1.0", "https://example.com/pkg.git", tt.deps, tt.steps)

			assert.Equal(t, "pkg", rec.Name())
			assert.Equal(t, "1.0", rec.Version())
			assert.Equal(t, "https://example.com/pkg.git", rec.SourceURL())
			assert.Equal(t, tt.wantDeps, rec.Dependencies())
			assert.Equal(t, tt.wantSteps, rec.BuildSteps())
		})
	}
}

func TestPackageRecord_Immutable(t *testing.T) {
	deps := []string{"zlib"}
	steps := []string{"make"}
	rec := domain.NewPackageRecord("pkg", "1.0", "src", deps, steps)

	// Mutating the inputs must not leak into the record.
	steps[0] = "rm -rf /"
	deps[0] = "openssl"

	// Mutating the returned copies must not leak either.
	rec.Dependencies()["injected"] = "1.0"
	rec.BuildSteps()[0] = "changed"

	assert.Equal(t, map[string]string{"zlib": "latest"}, rec.Dependencies())
	assert.Equal(t, []string{"make"}, rec.BuildSteps())
}

func TestPackageRecord_DependencyNames(t *testing.T) {
	rec := domain.NewPackageRecord("pkg", "1.0", "src", []string{"openssl", "zlib", "libc"}, nil)

	assert.Equal(t, []string{"libc", "openssl", "zlib"}, rec.DependencyNames())
	assert.Empty(t, rec.BuildSteps())
}
