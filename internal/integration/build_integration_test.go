package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solbuild/internal/app"
	"solbuild/internal/types"
)

// scaffold writes the given files under root, creating parent directories
// as needed. Paths use forward slashes.
func scaffold(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func canonical(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}

const solStub = "pragma solidity ^0.8.0;\n"

// TestBuildIntegrationDappLayout resolves a DappTools-style project through
// the real adapters: heuristic directory discovery, remapping collection
// from all four sources, library link parsing and settings assembly.
func TestBuildIntegrationDappLayout(t *testing.T) {
	dir := t.TempDir()
	scaffold(t, dir, map[string]string{
		"src/Counter.sol":                           solStub,
		"lib/ds-test/src/test.sol":                  solStub,
		"lib/solmate/src/utils/SafeTransferLib.sol": solStub,
		"remappings.txt":                            "utils/=src/utils/\n\n",
	})
	root := canonical(t, dir)

	service := app.NewService()
	result, err := service.Build(t.Context(), app.BuildRequest{
		Root: root,
		Remappings: []types.Remapping{
			{Prefix: "@oz/", Target: "node_modules/@openzeppelin/"},
		},
		RemappingsEnv:     "forge-std/=lib/forge-std/src/\n",
		Optimize:          true,
		OptimizerRuns:     200,
		EVMVersion:        "istanbul",
		IgnoredErrorCodes: []uint64{5574, 5574, 1878},
		LibraryLinks: []string{
			"src/Counter.sol:Math:0x1111111111111111111111111111111111111111",
			"src/Counter.sol:Strings:0x2222222222222222222222222222222222222222",
		},
	})
	require.NoError(t, err)
	cfg := result.Config

	assert.Equal(t, root, cfg.Paths.Root)
	assert.Equal(t, filepath.Join(root, "src"), cfg.Paths.Sources)
	assert.Equal(t, filepath.Join(root, "out"), cfg.Paths.Artifacts, "artifacts fall back to out/ even before it exists")
	assert.Equal(t, filepath.Join(root, "cache"), cfg.Paths.Cache)
	assert.Equal(t, []string{filepath.Join(root, "lib")}, cfg.Paths.Libraries)

	sep := string(filepath.Separator)
	wantRemappings := []types.Remapping{
		{Prefix: "@oz/", Target: "node_modules/@openzeppelin/"},
		{Prefix: "ds-test/", Target: filepath.Join(root, "lib", "ds-test", "src") + sep},
		{Prefix: "forge-std/", Target: "lib/forge-std/src/"},
		{Prefix: "solmate/", Target: filepath.Join(root, "lib", "solmate", "src") + sep},
		{Prefix: "utils/", Target: "src/utils/"},
	}
	if diff := cmp.Diff(wantRemappings, cfg.Paths.Remappings); diff != "" {
		t.Fatalf("unexpected remappings (-want +got):\n%s", diff)
	}

	assert.True(t, cfg.Settings.Optimizer.Enabled)
	assert.Equal(t, uint64(200), cfg.Settings.Optimizer.Runs)
	assert.Equal(t, types.EVMVersionIstanbul, cfg.Settings.EVMVersion)
	assert.Equal(t, []uint64{1878, 5574}, cfg.Settings.IgnoredErrorCodes)
	assert.Equal(t, types.Libraries{
		"src/Counter.sol": {
			"Math":    "0x1111111111111111111111111111111111111111",
			"Strings": "0x2222222222222222222222222222222222222222",
		},
	}, cfg.Settings.Libraries)
	assert.Equal(t, []string{root, filepath.Join(root, "lib")}, cfg.AllowedPaths)
}

// TestBuildIntegrationHardhatLayout verifies the preset short-circuits the
// heuristics and node_modules packages still feed remapping discovery.
func TestBuildIntegrationHardhatLayout(t *testing.T) {
	dir := t.TempDir()
	scaffold(t, dir, map[string]string{
		"contracts/Token.sol":                                  solStub,
		"node_modules/@openzeppelin/contracts/token/ERC20.sol": solStub,
	})
	root := canonical(t, dir)

	service := app.NewService()
	result, err := service.Build(t.Context(), app.BuildRequest{Root: root, Hardhat: true})
	require.NoError(t, err)
	cfg := result.Config

	assert.Equal(t, filepath.Join(root, "contracts"), cfg.Paths.Sources)
	assert.Equal(t, filepath.Join(root, "artifacts"), cfg.Paths.Artifacts)
	assert.Equal(t, []string{filepath.Join(root, "node_modules")}, cfg.Paths.Libraries)

	sep := string(filepath.Separator)
	want := []types.Remapping{
		{
			Prefix: "@openzeppelin/",
			Target: filepath.Join(root, "node_modules", "@openzeppelin", "contracts") + sep,
		},
	}
	assert.Equal(t, want, cfg.Paths.Remappings)
}

// TestBuildIntegrationForceDiscardsState exercises the destructive path:
// cache and artifacts are gone once the build returns.
func TestBuildIntegrationForceDiscardsState(t *testing.T) {
	dir := t.TempDir()
	scaffold(t, dir, map[string]string{
		"src/Counter.sol":                 solStub,
		"cache/solidity-files-cache.json": "{}",
		"out/Counter.json":                "{}",
	})
	root := canonical(t, dir)

	service := app.NewService()
	result, err := service.Build(t.Context(), app.BuildRequest{Root: root, Force: true})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "cache"),
		filepath.Join(root, "out"),
	}, result.Cleaned)
	assert.NoDirExists(t, filepath.Join(root, "cache"))
	assert.NoDirExists(t, filepath.Join(root, "out"))
	assert.True(t, result.Config.ForceRebuild)
}

// TestBuildIntegrationMalformedFileKeepsState: a malformed remappings.txt
// line fails the resolution before any destructive step, even with force.
func TestBuildIntegrationMalformedFileKeepsState(t *testing.T) {
	dir := t.TempDir()
	scaffold(t, dir, map[string]string{
		"src/Counter.sol":  solStub,
		"cache/build.json": "{}",
		"remappings.txt":   "ds-test/=lib/ds-test/src/\nbroken-line\n",
	})
	root := canonical(t, dir)

	service := app.NewService()
	_, err := service.Build(t.Context(), app.BuildRequest{Root: root, Force: true})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "broken-line")
	assert.DirExists(t, filepath.Join(root, "cache"), "no destructive action on a failed resolution")
}

// TestBuildIntegrationMissingRoot maps a nonexistent root to a not-found
// failure before any directory work happens.
func TestBuildIntegrationMissingRoot(t *testing.T) {
	service := app.NewService()
	_, err := service.Build(t.Context(), app.BuildRequest{
		Root: filepath.Join(t.TempDir(), "absent"),
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
