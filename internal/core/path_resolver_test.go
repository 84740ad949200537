package core

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solbuild/internal/policies"
	"solbuild/internal/types"
)

type testLayout struct {
	sources   string
	artifacts string
	libraries []string
}

func (t testLayout) FindSourcesDir(string) string    { return t.sources }
func (t testLayout) FindArtifactsDir(string) string  { return t.artifacts }
func (t testLayout) FindLibraryDirs(string) []string { return t.libraries }

func TestPathResolverExplicitWins(t *testing.T) {
	root := filepath.Join("/work", "project")
	layout := testLayout{
		sources:   filepath.Join(root, "src"),
		artifacts: filepath.Join(root, "out"),
		libraries: []string{filepath.Join(root, "lib")},
	}
	resolver := NewPathResolver(layout, policies.NewLayoutPolicy(types.LayoutPresetDefault))

	paths, err := resolver.Resolve(t.Context(), PathInputs{
		Root:      root,
		Sources:   "sources",
		Artifacts: filepath.Join("/elsewhere", "artifacts"),
		Libraries: []string{"vendor"},
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "sources"), paths.Sources, "relative sources anchor under the root")
	assert.Equal(t, filepath.Join("/elsewhere", "artifacts"), paths.Artifacts, "absolute artifacts stay as given")
	assert.Equal(t, []string{"vendor"}, paths.Libraries, "explicit library paths are verbatim")
	assert.Equal(t, filepath.Join(root, "cache"), paths.Cache)
}

func TestPathResolverDefaultPresetUsesHeuristics(t *testing.T) {
	root := filepath.Join("/work", "project")
	layout := testLayout{
		sources:   filepath.Join(root, "contracts"),
		artifacts: filepath.Join(root, "artifacts"),
		libraries: []string{filepath.Join(root, "lib"), filepath.Join(root, "node_modules")},
	}
	resolver := NewPathResolver(layout, policies.NewLayoutPolicy(types.LayoutPresetDefault))

	paths, err := resolver.Resolve(t.Context(), PathInputs{Root: root})
	require.NoError(t, err)

	want := types.ProjectPaths{
		Root:      root,
		Sources:   filepath.Join(root, "contracts"),
		Artifacts: filepath.Join(root, "artifacts"),
		Cache:     filepath.Join(root, "cache"),
		Libraries: []string{filepath.Join(root, "lib"), filepath.Join(root, "node_modules")},
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("unexpected paths (-want +got):\n%s", diff)
	}
}

func TestPathResolverHardhatPreset(t *testing.T) {
	root := filepath.Join("/work", "hh")
	// Sentinel values prove the preset short-circuits discovery.
	layout := testLayout{
		sources:   "unused",
		artifacts: "unused",
		libraries: []string{"unused"},
	}
	resolver := NewPathResolver(layout, policies.NewLayoutPolicy(types.LayoutPresetHardhat))

	paths, err := resolver.Resolve(t.Context(), PathInputs{Root: root, Preset: types.LayoutPresetHardhat})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "contracts"), paths.Sources)
	assert.Equal(t, filepath.Join(root, "artifacts"), paths.Artifacts)
	assert.Equal(t, []string{filepath.Join(root, "node_modules")}, paths.Libraries)
}

func TestPathResolverHardhatAugmentsExplicitLibraries(t *testing.T) {
	root := filepath.Join("/work", "hh")
	resolver := NewPathResolver(testLayout{}, policies.NewLayoutPolicy(types.LayoutPresetHardhat))

	paths, err := resolver.Resolve(t.Context(), PathInputs{
		Root:      root,
		Libraries: []string{filepath.Join("/deps", "a"), filepath.Join("/deps", "b")},
	})
	require.NoError(t, err)

	want := []string{
		filepath.Join("/deps", "a"),
		filepath.Join("/deps", "b"),
		filepath.Join(root, "node_modules"),
	}
	assert.Equal(t, want, paths.Libraries)
}

func TestPathResolverHardhatAugmentationIdempotent(t *testing.T) {
	root := filepath.Join("/work", "hh")
	resolver := NewPathResolver(testLayout{}, policies.NewLayoutPolicy(types.LayoutPresetHardhat))

	explicit := []string{filepath.Join("/deps", "node_modules")}
	paths, err := resolver.Resolve(t.Context(), PathInputs{Root: root, Libraries: explicit})
	require.NoError(t, err)

	assert.Equal(t, explicit, paths.Libraries, "a node_modules entry must not be appended twice")
}

func TestPathResolverRequiresRoot(t *testing.T) {
	resolver := NewPathResolver(testLayout{}, policies.NewLayoutPolicy(types.LayoutPresetDefault))

	_, err := resolver.Resolve(t.Context(), PathInputs{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
