package app

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Clean discards the cached build state: the artifacts directory and the
// cache directory, resolved the same way Build resolves them.
func (s Service) Clean(ctx context.Context, req CleanRequest) (CleanResult, error) {
	paths, err := s.resolvePaths(ctx, req.Root, "", req.Artifacts, nil, req.Hardhat)
	if err != nil {
		return CleanResult{}, err
	}

	removed, err := s.BuildState.Clean(paths)
	if err != nil {
		return CleanResult{}, err
	}
	log.Ctx(ctx).Info().Strs("removed", removed).Msg("cached build state discarded")
	return CleanResult{Removed: removed}, nil
}
