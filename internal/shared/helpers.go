// Package shared provides common path helpers used across multiple
// packages in the solbuild codebase.
package shared

import (
	"path/filepath"
	"strings"
)

// JoinRoot resolves path against root: absolute paths are cleaned and used
// as-is, relative paths are joined under root.
func JoinRoot(root string, path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(root, path)
}

// EndsWithDir reports whether the final element of path equals name.
func EndsWithDir(path string, name string) bool {
	return filepath.Base(filepath.Clean(path)) == name
}

// SplitNonEmptyLines splits text on newlines and drops empty lines,
// trimming a trailing carriage return from each line.
func SplitNonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
