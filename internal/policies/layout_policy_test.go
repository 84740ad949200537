package policies

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"solbuild/internal/types"
)

func TestLayoutPolicyHardhatFixesDirs(t *testing.T) {
	policy := NewLayoutPolicy(types.LayoutPresetHardhat)

	sources, ok := policy.SourcesDir("/proj")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/proj", "contracts"), sources)

	artifacts, ok := policy.ArtifactsDir("/proj")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("/proj", "artifacts"), artifacts)

	libs, ok := policy.LibraryDirs("/proj")
	assert.True(t, ok)
	assert.Equal(t, []string{filepath.Join("/proj", "node_modules")}, libs)
}

func TestLayoutPolicyDefaultDefersToHeuristics(t *testing.T) {
	policy := NewLayoutPolicy(types.LayoutPresetDefault)

	_, ok := policy.SourcesDir("/proj")
	assert.False(t, ok)
	_, ok = policy.ArtifactsDir("/proj")
	assert.False(t, ok)
	_, ok = policy.LibraryDirs("/proj")
	assert.False(t, ok)
}

func TestLayoutPolicyEmptyPresetIsDefault(t *testing.T) {
	policy := NewLayoutPolicy("")
	assert.Equal(t, types.LayoutPresetDefault, policy.Preset)
}

func TestAugmentLibraryDirsAppendsNodeModules(t *testing.T) {
	policy := NewLayoutPolicy(types.LayoutPresetHardhat)
	explicit := []string{"/proj/vendor", "/proj/deps"}

	augmented := policy.AugmentLibraryDirs("/proj", explicit)
	assert.Equal(t, []string{"/proj/vendor", "/proj/deps", filepath.Join("/proj", "node_modules")}, augmented)
	// Caller's slice stays untouched.
	assert.Len(t, explicit, 2)
}

func TestAugmentLibraryDirsSkipsWhenPresent(t *testing.T) {
	policy := NewLayoutPolicy(types.LayoutPresetHardhat)

	augmented := policy.AugmentLibraryDirs("/proj", []string{"/elsewhere/node_modules"})
	assert.Equal(t, []string{"/elsewhere/node_modules"}, augmented)
}

func TestAugmentLibraryDirsDefaultPresetNoop(t *testing.T) {
	policy := NewLayoutPolicy(types.LayoutPresetDefault)

	augmented := policy.AugmentLibraryDirs("/proj", []string{"/proj/lib"})
	assert.Equal(t, []string{"/proj/lib"}, augmented)
}

func TestCacheDir(t *testing.T) {
	for _, preset := range []types.LayoutPreset{types.LayoutPresetDefault, types.LayoutPresetHardhat} {
		policy := NewLayoutPolicy(preset)
		assert.Equal(t, filepath.Join("/proj", "cache"), policy.CacheDir("/proj"))
	}
}
