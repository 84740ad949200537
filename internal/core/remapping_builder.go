package core

import (
	"context"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"solbuild/internal/ports"
	"solbuild/internal/shared"
	"solbuild/internal/types"
)

// RemappingInputs are the remapping sources for one resolution, applied in
// order: library discovery, explicit entries, the environment override,
// then the project remappings file.
type RemappingInputs struct {
	Root        string
	LibraryDirs []string
	Explicit    []types.Remapping
	EnvOverride string
}

// RemappingBuilder aggregates import remappings from every source into a
// single sorted sequence. Exact duplicate pairs collapse; conflicting
// targets for the same prefix are all kept for the consumer to arbitrate.
type RemappingBuilder struct {
	source ports.RemappingSourcePort
}

func NewRemappingBuilder(source ports.RemappingSourcePort) RemappingBuilder {
	return RemappingBuilder{source: source}
}

// Build collects, parses and normalizes the remappings. A malformed line in
// the environment override or the remappings file fails the whole build.
func (b RemappingBuilder) Build(ctx context.Context, in RemappingInputs) ([]types.Remapping, error) {
	remappings, err := b.source.Discover(in.LibraryDirs)
	if err != nil {
		return nil, err
	}
	remappings = append(remappings, in.Explicit...)

	if in.EnvOverride != "" {
		parsed, err := parseRemappingLines(in.EnvOverride)
		if err != nil {
			return nil, err
		}
		remappings = append(remappings, parsed...)
	}

	content, found, err := b.source.LoadRootFile(in.Root)
	if err != nil {
		return nil, err
	}
	if found {
		parsed, err := parseRemappingLines(content)
		if err != nil {
			return nil, err
		}
		remappings = append(remappings, parsed...)
	}

	remappings = normalizeRemappings(remappings)
	log.Ctx(ctx).Debug().
		Int("remappings", len(remappings)).
		Int("library_dirs", len(in.LibraryDirs)).
		Msg("remappings aggregated")
	return remappings, nil
}

// ParseRemapping parses the canonical "prefix=target" form. Both sides must
// be non-empty after trimming.
func ParseRemapping(line string) (types.Remapping, error) {
	prefix, target, ok := strings.Cut(line, "=")
	prefix = strings.TrimSpace(prefix)
	target = strings.TrimSpace(target)
	if !ok || prefix == "" || target == "" {
		return types.Remapping{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("malformed remapping: " + line)
	}
	return types.Remapping{Prefix: prefix, Target: target}, nil
}

func parseRemappingLines(text string) ([]types.Remapping, error) {
	var remappings []types.Remapping
	for _, line := range shared.SplitNonEmptyLines(text) {
		remapping, err := ParseRemapping(line)
		if err != nil {
			return nil, err
		}
		remappings = append(remappings, remapping)
	}
	return remappings, nil
}

// normalizeRemappings sorts by prefix then target and removes exact
// duplicate pairs only.
func normalizeRemappings(remappings []types.Remapping) []types.Remapping {
	sort.Slice(remappings, func(i, j int) bool {
		return remappings[i].Less(remappings[j])
	})
	out := make([]types.Remapping, 0, len(remappings))
	for i, remapping := range remappings {
		if i > 0 && remapping == remappings[i-1] {
			continue
		}
		out = append(out, remapping)
	}
	return out
}
