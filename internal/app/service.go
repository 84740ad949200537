// Package app orchestrates the resolution use cases. Each operation wires
// the core logic to the injected ports and stays free of flag or terminal
// concerns.
package app

import (
	"solbuild/internal/adapters"
	"solbuild/internal/ports"
)

type Service struct {
	Roots           ports.ProjectRootPort
	Layout          ports.LayoutPort
	RemappingSource ports.RemappingSourcePort
	BuildState      ports.BuildStatePort

	// Compiler receives every successfully resolved configuration when
	// set. The CLI leaves it nil; embedding pipelines inject their own.
	Compiler ports.CompilerPort
}

func NewService() Service {
	return Service{
		Roots:           adapters.NewProjectRootAdapter(),
		Layout:          adapters.NewLayoutFSAdapter(),
		RemappingSource: adapters.NewRemappingSourceAdapter(),
		BuildState:      adapters.NewBuildStateAdapter(),
	}
}
