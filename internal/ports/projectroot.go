package ports

// ProjectRootPort resolves the project root directory.
type ProjectRootPort interface {
	// Locate returns the default root when none was supplied: the
	// enclosing git repository root, or the working directory when the
	// process is not inside a repository.
	Locate() (string, error)

	// Canonicalize makes the path absolute, resolves symlinks and
	// verifies it is an existing directory.
	Canonicalize(path string) (string, error)
}
