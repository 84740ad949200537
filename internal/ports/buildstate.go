package ports

import "solbuild/internal/types"

// BuildStatePort discards previously cached build outputs.
type BuildStatePort interface {
	// Clean removes the cache and artifacts directories of the given
	// layout. Directories that do not exist are not an error; a failed
	// removal is. It returns the paths it removed.
	Clean(paths types.ProjectPaths) ([]string, error)
}
