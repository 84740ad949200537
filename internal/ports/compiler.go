package ports

import (
	"context"

	"solbuild/internal/types"
)

// CompilerPort is the boundary to the compiler-invocation pipeline that
// consumes resolved configurations. solbuild does not implement it;
// embedding build pipelines inject their own.
type CompilerPort interface {
	Compile(ctx context.Context, cfg types.ProjectConfig) error
}
