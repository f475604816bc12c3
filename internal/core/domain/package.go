package domain

import (
	"maps"
	"slices"
)

// PackageRecord describes one package listed in the mirror index.
// Records are immutable: accessors return copies of the underlying collections.
type PackageRecord struct {
	name         InternedString
	version      InternedString
	sourceURL    string
	dependencies map[string]string
	buildSteps   []string
}

// NewPackageRecord creates a record from already validated index fields.
// Every dependency name is mapped to LatestConstraint; a repeated name keeps a single entry.
// Build steps are kept in the given order.
func NewPackageRecord(name, version, sourceURL string, dependencies, buildSteps []string) PackageRecord {
	deps := make(map[string]string, len(dependencies))
	for _, dep := range dependencies {
		deps[dep] = LatestConstraint
	}

	steps := make([]string, len(buildSteps))
	copy(steps, buildSteps)

	return PackageRecord{
		name:         NewInternedString(name),
		version:      NewInternedString(version),
		sourceURL:    sourceURL,
		dependencies: deps,
		buildSteps:   steps,
	}
}

// Name returns the package identifier.
func (r PackageRecord) Name() string {
	return r.name.String()
}

// Version returns the free-form version string.
func (r PackageRecord) Version() string {
	return r.version.String()
}

// SourceURL returns the location the package source is obtained from.
func (r PackageRecord) SourceURL() string {
	return r.sourceURL
}

// Dependencies returns a copy of the dependency name to version constraint mapping.
func (r PackageRecord) Dependencies() map[string]string {
	return maps.Clone(r.dependencies)
}

// DependencyNames returns the dependency names in sorted order.
func (r PackageRecord) DependencyNames() []string {
	return slices.Sorted(maps.Keys(r.dependencies))
}

// BuildSteps returns a copy of the ordered build steps.
func (r PackageRecord) BuildSteps() []string {
	return slices.Clone(r.buildSteps)
}
