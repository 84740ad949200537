package core

import (
	"context"
	"sort"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"solbuild/internal/types"
)

// DefaultEVMVersion is selected when no version is supplied.
const DefaultEVMVersion = types.EVMVersionLondon

// DefaultOptimizerRuns matches the solc default.
const DefaultOptimizerRuns uint64 = 200

var knownEVMVersions = map[types.EVMVersion]struct{}{
	types.EVMVersionHomestead:        {},
	types.EVMVersionTangerineWhistle: {},
	types.EVMVersionSpuriousDragon:   {},
	types.EVMVersionByzantium:        {},
	types.EVMVersionConstantinople:   {},
	types.EVMVersionPetersburg:       {},
	types.EVMVersionIstanbul:         {},
	types.EVMVersionBerlin:           {},
	types.EVMVersionLondon:           {},
}

// ParseEVMVersion validates a version selector. Empty selects the default.
func ParseEVMVersion(value string) (types.EVMVersion, error) {
	if value == "" {
		return DefaultEVMVersion, nil
	}
	version := types.EVMVersion(value)
	if _, ok := knownEVMVersions[version]; !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown EVM version: " + value)
	}
	return version, nil
}

// SettingsInputs are the compiler tuning choices of one resolution.
type SettingsInputs struct {
	Optimize          bool
	OptimizerRuns     uint64
	EVMVersion        string
	Libraries         types.Libraries
	IgnoredErrorCodes []uint64
}

// ProjectFlags are the behavioral switches carried on the configuration
// for downstream consumers rather than the compiler itself.
type ProjectFlags struct {
	NoAutoDetect bool
	ForceRebuild bool
}

// ProjectComposer assembles and validates the final project configuration
// from the independently resolved pieces.
type ProjectComposer struct{}

func NewProjectComposer() ProjectComposer {
	return ProjectComposer{}
}

// ComposeSettings folds the tuning choices into compiler settings. Ignored
// error codes collapse into a sorted set.
func (c ProjectComposer) ComposeSettings(ctx context.Context, in SettingsInputs) (types.CompilerSettings, error) {
	version, err := ParseEVMVersion(in.EVMVersion)
	if err != nil {
		return types.CompilerSettings{}, err
	}
	settings := types.CompilerSettings{
		Optimizer: types.Optimizer{
			Enabled: in.Optimize,
			Runs:    in.OptimizerRuns,
		},
		EVMVersion:        version,
		Libraries:         in.Libraries,
		IgnoredErrorCodes: normalizeErrorCodes(in.IgnoredErrorCodes),
	}
	log.Ctx(ctx).Debug().
		Bool("optimizer", settings.Optimizer.Enabled).
		Uint64("runs", settings.Optimizer.Runs).
		Str("evm_version", string(settings.EVMVersion)).
		Msg("compiler settings composed")
	return settings, nil
}

// Compose validates the resolved paths and produces the configuration
// handed to consumers. Allowed paths are the root plus every library
// directory.
func (c ProjectComposer) Compose(ctx context.Context, paths types.ProjectPaths, settings types.CompilerSettings, flags ProjectFlags) (types.ProjectConfig, error) {
	assert.NotEmpty(ctx, paths.Root, "composed configuration requires a resolved root")
	if err := validatePaths(paths); err != nil {
		return types.ProjectConfig{}, err
	}

	allowed := make([]string, 0, len(paths.Libraries)+1)
	allowed = append(allowed, paths.Root)
	allowed = append(allowed, paths.Libraries...)

	cfg := types.ProjectConfig{
		Paths:        paths,
		Settings:     settings,
		AllowedPaths: allowed,
		NoAutoDetect: flags.NoAutoDetect,
		ForceRebuild: flags.ForceRebuild,
	}
	log.Ctx(ctx).Debug().
		Str("root", cfg.Paths.Root).
		Bool("force_rebuild", cfg.ForceRebuild).
		Msg("project configuration composed")
	return cfg, nil
}

// validatePaths rejects layouts where a cache reset would delete the root
// or the sources. Artifacts and cache are removed recursively on a forced
// rebuild, so they must never alias either.
func validatePaths(paths types.ProjectPaths) error {
	if paths.Sources == "" || paths.Artifacts == "" || paths.Cache == "" {
		return composeFailure("resolved directories must not be empty")
	}
	if paths.Artifacts == paths.Root || paths.Cache == paths.Root {
		return composeFailure("artifacts and cache must not equal the project root")
	}
	if paths.Artifacts == paths.Sources || paths.Cache == paths.Sources {
		return composeFailure("artifacts and cache must not overlap the sources")
	}
	return nil
}

func composeFailure(detail string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg("invalid project configuration: " + detail)
}

func normalizeErrorCodes(codes []uint64) []uint64 {
	if len(codes) == 0 {
		return nil
	}
	seen := make(map[uint64]struct{}, len(codes))
	for _, code := range codes {
		seen[code] = struct{}{}
	}
	out := make([]uint64, 0, len(seen))
	for code := range seen {
		out = append(out, code)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
