package policies

import (
	"path/filepath"

	"solbuild/internal/shared"
	"solbuild/internal/types"
)

const (
	hardhatSourcesDir   = "contracts"
	hardhatArtifactsDir = "artifacts"
	nodeModulesDir      = "node_modules"
	cacheDir            = "cache"
)

// LayoutPolicy supplies the directory conventions of a layout preset. The
// Hardhat preset fixes the source, artifact and dependency directories; the
// default preset defers every unset directory to heuristic discovery.
type LayoutPolicy struct {
	Preset types.LayoutPreset
}

func NewLayoutPolicy(preset types.LayoutPreset) LayoutPolicy {
	if preset == "" {
		preset = types.LayoutPresetDefault
	}
	return LayoutPolicy{Preset: preset}
}

// SourcesDir returns the preset's contract source directory under root, or
// ok=false when the preset defers to heuristic discovery.
func (p LayoutPolicy) SourcesDir(root string) (string, bool) {
	if p.Preset == types.LayoutPresetHardhat {
		return filepath.Join(root, hardhatSourcesDir), true
	}
	return "", false
}

// ArtifactsDir returns the preset's artifact directory under root, or
// ok=false when the preset defers to heuristic discovery.
func (p LayoutPolicy) ArtifactsDir(root string) (string, bool) {
	if p.Preset == types.LayoutPresetHardhat {
		return filepath.Join(root, hardhatArtifactsDir), true
	}
	return "", false
}

// LibraryDirs returns the preset's library search paths under root, or
// ok=false when the preset defers to heuristic discovery.
func (p LayoutPolicy) LibraryDirs(root string) ([]string, bool) {
	if p.Preset == types.LayoutPresetHardhat {
		return []string{filepath.Join(root, nodeModulesDir)}, true
	}
	return nil, false
}

// AugmentLibraryDirs appends the preset's mandatory dependency directory to
// explicitly supplied library paths unless one of them already ends in it.
// The input slice is not modified.
func (p LayoutPolicy) AugmentLibraryDirs(root string, libDirs []string) []string {
	augmented := append([]string(nil), libDirs...)
	if p.Preset != types.LayoutPresetHardhat {
		return augmented
	}
	for _, dir := range augmented {
		if shared.EndsWithDir(dir, nodeModulesDir) {
			return augmented
		}
	}
	return append(augmented, filepath.Join(root, nodeModulesDir))
}

// CacheDir returns the build cache directory under root. Both presets keep
// it in the same place.
func (p LayoutPolicy) CacheDir(root string) string {
	return filepath.Join(root, cacheDir)
}
