package app

import (
	"context"

	"solbuild/internal/core"
)

// Remappings resolves only the import remappings for a project, the same
// way Build would see them.
func (s Service) Remappings(ctx context.Context, req RemappingsRequest) (RemappingsResult, error) {
	paths, err := s.resolvePaths(ctx, req.Root, "", "", req.LibraryPaths, req.Hardhat)
	if err != nil {
		return RemappingsResult{}, err
	}

	builder := core.NewRemappingBuilder(s.RemappingSource)
	remappings, err := builder.Build(ctx, core.RemappingInputs{
		Root:        paths.Root,
		LibraryDirs: paths.Libraries,
	})
	if err != nil {
		return RemappingsResult{}, err
	}
	return RemappingsResult{Remappings: remappings}, nil
}
