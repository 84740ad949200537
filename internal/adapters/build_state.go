package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"solbuild/internal/ports"
	"solbuild/internal/types"
)

// BuildStateAdapter discards cached build outputs on the local filesystem.
type BuildStateAdapter struct{}

func NewBuildStateAdapter() BuildStateAdapter {
	return BuildStateAdapter{}
}

// Clean removes the cache and artifacts directories. Directories that do
// not exist are skipped; a failed removal aborts with the paths removed so
// far.
func (a BuildStateAdapter) Clean(paths types.ProjectPaths) ([]string, error) {
	var removed []string
	for _, dir := range []string{paths.Cache, paths.Artifacts} {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(dir); err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return removed, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to inspect cached build state").
				WithCause(err)
		}
		if err := os.RemoveAll(dir); err != nil {
			return removed, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to remove cached build state").
				WithCause(err)
		}
		removed = append(removed, dir)
	}
	return removed, nil
}

var _ ports.BuildStatePort = BuildStateAdapter{}
