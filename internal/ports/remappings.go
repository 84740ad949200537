package ports

import "solbuild/internal/types"

// RemappingSourcePort supplies remappings discovered outside the request
// itself.
type RemappingSourcePort interface {
	// Discover scans the given library directories and returns the
	// remappings implied by the packages installed there.
	Discover(libDirs []string) ([]types.Remapping, error)

	// LoadRootFile reads the remappings.txt at the project root. A
	// missing file is reported as found=false with no error.
	LoadRootFile(root string) (content string, found bool, err error)
}
