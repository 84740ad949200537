package types

// ProjectPaths is the fully resolved directory layout of one project.
// Libraries keeps the caller's order; Remappings is sorted and free of
// exact-duplicate pairs.
type ProjectPaths struct {
	Root       string      `yaml:"root" json:"root"`
	Sources    string      `yaml:"sources" json:"sources"`
	Artifacts  string      `yaml:"artifacts" json:"artifacts"`
	Cache      string      `yaml:"cache" json:"cache"`
	Libraries  []string    `yaml:"libraries,omitempty" json:"libraries,omitempty"`
	Remappings []Remapping `yaml:"remappings,omitempty" json:"remappings,omitempty"`
}

type Optimizer struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Runs    uint64 `yaml:"runs" json:"runs"`
}

// Libraries maps a contract file to the deployed addresses its linked
// libraries resolve to, keyed by library name within each file.
type Libraries map[string]map[string]string

type CompilerSettings struct {
	Optimizer  Optimizer  `yaml:"optimizer" json:"optimizer"`
	EVMVersion EVMVersion `yaml:"evm_version" json:"evmVersion"`
	Libraries  Libraries  `yaml:"libraries,omitempty" json:"libraries,omitempty"`

	// IgnoredErrorCodes lists compiler warning/error codes to suppress,
	// sorted and deduplicated.
	IgnoredErrorCodes []uint64 `yaml:"ignored_error_codes,omitempty" json:"ignoredErrorCodes,omitempty"`
}

// ProjectConfig is the terminal aggregate handed to the compiler-invocation
// collaborator. It is constructed fresh per resolution and never mutated
// afterwards.
type ProjectConfig struct {
	Paths    ProjectPaths     `yaml:"paths" json:"paths"`
	Settings CompilerSettings `yaml:"settings" json:"settings"`

	// AllowedPaths is the root followed by every library path; the
	// compiler may only read sources beneath these.
	AllowedPaths []string `yaml:"allowed_paths,omitempty" json:"allowedPaths,omitempty"`

	// NoAutoDetect makes the downstream compiler-discovery step trust a
	// toolchain already on the execution path instead of probing.
	NoAutoDetect bool `yaml:"no_auto_detect" json:"noAutoDetect"`

	// ForceRebuild records that cached build state was discarded before
	// this configuration was emitted.
	ForceRebuild bool `yaml:"force_rebuild" json:"forceRebuild"`
}
