// Package core contains the pure resolution logic: directory layout
// precedence, remapping aggregation, library link parsing and the final
// assembly of a project configuration. Everything here is deterministic;
// filesystem access happens behind the ports.
package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"solbuild/internal/policies"
	"solbuild/internal/ports"
	"solbuild/internal/shared"
	"solbuild/internal/types"
)

// PathInputs are the caller-supplied layout choices for one resolution.
// Root must already be canonicalized; every other field is optional.
type PathInputs struct {
	Root      string
	Sources   string
	Artifacts string
	Libraries []string
	Preset    types.LayoutPreset
}

// PathResolver derives the project directory layout from the root. Each
// directory follows the same precedence: an explicit value wins, then the
// layout preset, then heuristic discovery.
type PathResolver struct {
	layout ports.LayoutPort
	policy policies.LayoutPolicy
}

func NewPathResolver(layout ports.LayoutPort, policy policies.LayoutPolicy) PathResolver {
	return PathResolver{layout: layout, policy: policy}
}

// Resolve computes the sources, artifacts, cache and library directories.
// Relative explicit values for sources and artifacts are anchored under the
// root; explicit library paths are used verbatim.
func (r PathResolver) Resolve(ctx context.Context, in PathInputs) (types.ProjectPaths, error) {
	if in.Root == "" {
		return types.ProjectPaths{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project root is required")
	}

	paths := types.ProjectPaths{
		Root:      in.Root,
		Sources:   r.resolveSources(in),
		Artifacts: r.resolveArtifacts(in),
		Libraries: r.resolveLibraries(in),
		Cache:     r.policy.CacheDir(in.Root),
	}

	log.Ctx(ctx).Debug().
		Str("root", paths.Root).
		Str("sources", paths.Sources).
		Str("artifacts", paths.Artifacts).
		Int("library_dirs", len(paths.Libraries)).
		Msg("project paths resolved")
	return paths, nil
}

func (r PathResolver) resolveSources(in PathInputs) string {
	if in.Sources != "" {
		return shared.JoinRoot(in.Root, in.Sources)
	}
	if dir, ok := r.policy.SourcesDir(in.Root); ok {
		return dir
	}
	return r.layout.FindSourcesDir(in.Root)
}

func (r PathResolver) resolveArtifacts(in PathInputs) string {
	if in.Artifacts != "" {
		return shared.JoinRoot(in.Root, in.Artifacts)
	}
	if dir, ok := r.policy.ArtifactsDir(in.Root); ok {
		return dir
	}
	return r.layout.FindArtifactsDir(in.Root)
}

func (r PathResolver) resolveLibraries(in PathInputs) []string {
	if len(in.Libraries) == 0 {
		if dirs, ok := r.policy.LibraryDirs(in.Root); ok {
			return dirs
		}
		return r.layout.FindLibraryDirs(in.Root)
	}
	return r.policy.AugmentLibraryDirs(in.Root, in.Libraries)
}
