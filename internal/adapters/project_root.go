package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"solbuild/internal/ports"
)

// ProjectRootAdapter locates and canonicalizes project root directories.
type ProjectRootAdapter struct{}

func NewProjectRootAdapter() ProjectRootAdapter {
	return ProjectRootAdapter{}
}

// Locate walks up from the working directory until a .git entry is found
// and returns that directory; without one it returns the working directory
// itself.
func (a ProjectRootAdapter) Locate() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to determine working directory").
			WithCause(err)
	}
	dir := cwd
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// Canonicalize makes path absolute, resolves symlinks and verifies it is an
// existing directory.
func (a ProjectRootAdapter) Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("project root cannot be made absolute: " + path).
			WithCause(err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("project root not found: " + path).
			WithCause(err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("project root not found: " + path).
			WithCause(err)
	}
	if !info.IsDir() {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project root is not a directory: " + path)
	}
	return resolved, nil
}

var _ ports.ProjectRootPort = ProjectRootAdapter{}
