package domain

const (
	// IndexFileName is the name of the package index inside a mirror directory.
	IndexFileName = "packages.txt"

	// ConfigFileName is the name of the optional dpms configuration file.
	ConfigFileName = "dpms.yaml"

	// LatestConstraint is the version constraint assigned to every dependency
	// listed in the index.
	LatestConstraint = "latest"

	// CommentPrefix marks a comment line in the index.
	CommentPrefix = "#"

	// FieldSeparator separates the fields of an index line.
	FieldSeparator = ","

	// ListSeparator separates the items of the dependencies and build steps fields.
	ListSeparator = "|"
)

// RequiredFields lists the fields of an index line in order.
var RequiredFields = []string{"name", "version", "source_url", "dependencies", "build_steps"}

// RequiredFieldCount is the exact number of fields a well-formed index line has.
var RequiredFieldCount = len(RequiredFields)
