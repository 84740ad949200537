package adapters

import (
	"os"
	"path/filepath"

	"solbuild/internal/ports"
)

// Conventional directory names probed by the DappTools-style heuristics, in
// preference order. The first candidate doubles as the fallback when none
// exists.
var (
	sourceDirCandidates   = []string{"src", "contracts"}
	artifactDirCandidates = []string{"out", "artifacts"}
	libraryDirCandidates  = []string{"lib", "node_modules"}
)

// LayoutFSAdapter locates conventional project directories with read-only
// existence probes under the project root.
type LayoutFSAdapter struct{}

func NewLayoutFSAdapter() LayoutFSAdapter {
	return LayoutFSAdapter{}
}

func (a LayoutFSAdapter) FindSourcesDir(root string) string {
	return firstExistingDir(root, sourceDirCandidates)
}

func (a LayoutFSAdapter) FindArtifactsDir(root string) string {
	return firstExistingDir(root, artifactDirCandidates)
}

// FindLibraryDirs returns every conventional dependency directory that
// exists under root, or the conventional default when none does.
func (a LayoutFSAdapter) FindLibraryDirs(root string) []string {
	var dirs []string
	for _, name := range libraryDirCandidates {
		path := filepath.Join(root, name)
		if isDir(path) {
			dirs = append(dirs, path)
		}
	}
	if len(dirs) == 0 {
		dirs = []string{filepath.Join(root, libraryDirCandidates[0])}
	}
	return dirs
}

func firstExistingDir(root string, names []string) string {
	for _, name := range names {
		path := filepath.Join(root, name)
		if isDir(path) {
			return path
		}
	}
	return filepath.Join(root, names[0])
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

var _ ports.LayoutPort = LayoutFSAdapter{}
