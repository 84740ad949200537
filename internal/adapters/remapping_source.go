package adapters

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"solbuild/internal/ports"
	"solbuild/internal/types"
)

const remappingsFileName = "remappings.txt"

// Package subdirectories preferred as remapping targets, in order.
var packageSourceDirs = []string{"src", "contracts"}

// RemappingSourceAdapter discovers remappings from installed library
// packages and reads the project-root remappings.txt.
type RemappingSourceAdapter struct{}

func NewRemappingSourceAdapter() RemappingSourceAdapter {
	return RemappingSourceAdapter{}
}

// Discover scans each library directory's direct children. A child that
// contains Solidity sources anywhere beneath it yields one remapping: the
// child's name maps to its src/ or contracts/ subdirectory when one exists,
// else to the child itself. Targets carry a trailing separator so prefix
// substitution produces directory paths. Missing library directories
// contribute nothing.
func (a RemappingSourceAdapter) Discover(libDirs []string) ([]types.Remapping, error) {
	var remappings []types.Remapping
	for _, dir := range libDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to scan library directory").
				WithCause(err)
		}
		for _, entry := range entries {
			if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			pkg := filepath.Join(dir, entry.Name())
			if !containsSolSources(pkg) {
				continue
			}
			remappings = append(remappings, types.Remapping{
				Prefix: entry.Name() + "/",
				Target: remappingTarget(pkg),
			})
		}
	}
	return remappings, nil
}

// LoadRootFile reads remappings.txt at the project root. A missing file is
// found=false with no error; any other read failure is.
func (a RemappingSourceAdapter) LoadRootFile(root string) (string, bool, error) {
	data, err := os.ReadFile(filepath.Join(root, remappingsFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read " + remappingsFileName).
			WithCause(err)
	}
	return string(data), true, nil
}

func remappingTarget(pkg string) string {
	for _, name := range packageSourceDirs {
		nested := filepath.Join(pkg, name)
		if isDir(nested) {
			return nested + string(filepath.Separator)
		}
	}
	return pkg + string(filepath.Separator)
}

// containsSolSources reports whether any .sol file exists beneath root.
// Discovery is best-effort: unreadable entries count as having no sources.
func containsSolSources(root string) bool {
	found := false
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".sol") {
			found = true
			return fs.SkipAll
		}
		return nil
	})
	return found
}

var _ ports.RemappingSourcePort = RemappingSourceAdapter{}
