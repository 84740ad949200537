package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"solbuild/internal/core"
	"solbuild/internal/policies"
	"solbuild/internal/types"
)

// Build resolves the full project configuration: directory layout,
// remappings, library links and compiler settings. When the request asks
// for a forced rebuild the cached build state is discarded after the
// configuration is validated; a configuration only counts as resolved once
// that cleanup has succeeded.
func (s Service) Build(ctx context.Context, req BuildRequest) (BuildResult, error) {
	paths, err := s.resolvePaths(ctx, req.Root, req.Sources, req.Artifacts, req.LibraryPaths, req.Hardhat)
	if err != nil {
		return BuildResult{}, err
	}

	builder := core.NewRemappingBuilder(s.RemappingSource)
	remappings, err := builder.Build(ctx, core.RemappingInputs{
		Root:        paths.Root,
		LibraryDirs: paths.Libraries,
		Explicit:    req.Remappings,
		EnvOverride: req.RemappingsEnv,
	})
	if err != nil {
		return BuildResult{}, err
	}
	paths.Remappings = remappings

	libraries, err := core.ParseLibraryLinks(req.LibraryLinks)
	if err != nil {
		return BuildResult{}, err
	}

	composer := core.NewProjectComposer()
	settings, err := composer.ComposeSettings(ctx, core.SettingsInputs{
		Optimize:          req.Optimize,
		OptimizerRuns:     req.OptimizerRuns,
		EVMVersion:        req.EVMVersion,
		Libraries:         libraries,
		IgnoredErrorCodes: req.IgnoredErrorCodes,
	})
	if err != nil {
		return BuildResult{}, err
	}

	cfg, err := composer.Compose(ctx, paths, settings, core.ProjectFlags{
		NoAutoDetect: req.NoAutoDetect,
		ForceRebuild: req.Force,
	})
	if err != nil {
		return BuildResult{}, err
	}

	result := BuildResult{Config: cfg}
	if req.Force {
		removed, err := s.BuildState.Clean(cfg.Paths)
		if err != nil {
			return BuildResult{}, err
		}
		result.Cleaned = removed
		log.Ctx(ctx).Debug().Strs("removed", removed).Msg("cached build state discarded")
	}

	if s.Compiler != nil {
		if err := s.Compiler.Compile(ctx, cfg); err != nil {
			return BuildResult{}, err
		}
		result.Compiled = true
	}

	log.Ctx(ctx).Info().
		Str("root", cfg.Paths.Root).
		Int("remappings", len(cfg.Paths.Remappings)).
		Bool("force", req.Force).
		Msg("project configuration resolved")
	return result, nil
}

// resolvePaths locates and canonicalizes the root, then derives the
// directory layout under the requested preset.
func (s Service) resolvePaths(ctx context.Context, root, sources, artifacts string, libraryPaths []string, hardhat bool) (types.ProjectPaths, error) {
	rootPath := strings.TrimSpace(root)
	if rootPath == "" {
		located, err := s.Roots.Locate()
		if err != nil {
			return types.ProjectPaths{}, err
		}
		rootPath = located
	}
	canonical, err := s.Roots.Canonicalize(rootPath)
	if err != nil {
		return types.ProjectPaths{}, err
	}

	preset := types.LayoutPresetDefault
	if hardhat {
		preset = types.LayoutPresetHardhat
	}
	resolver := core.NewPathResolver(s.Layout, policies.NewLayoutPolicy(preset))
	return resolver.Resolve(ctx, core.PathInputs{
		Root:      canonical,
		Sources:   sources,
		Artifacts: artifacts,
		Libraries: libraryPaths,
		Preset:    preset,
	})
}
