package app

import "solbuild/internal/types"

// BuildRequest carries every input of one resolution. Values that can come
// from the environment arrive here already read; the service never touches
// the process environment itself.
type BuildRequest struct {
	Root         string
	Sources      string
	Artifacts    string
	LibraryPaths []string
	Hardhat      bool

	Remappings    []types.Remapping
	RemappingsEnv string

	Optimize          bool
	OptimizerRuns     uint64
	EVMVersion        string
	IgnoredErrorCodes []uint64
	LibraryLinks      []string

	NoAutoDetect bool
	Force        bool
}

type BuildResult struct {
	Config types.ProjectConfig
	// Cleaned lists the directories removed by a forced rebuild.
	Cleaned []string
	// Compiled reports whether a compiler received the configuration.
	Compiled bool
}

type RemappingsRequest struct {
	Root         string
	LibraryPaths []string
	Hardhat      bool
}

type RemappingsResult struct {
	Remappings []types.Remapping
}

type CleanRequest struct {
	Root      string
	Artifacts string
	Hardhat   bool
}

type CleanResult struct {
	Removed []string
}
