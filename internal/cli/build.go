package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"solbuild/internal/app"
	"solbuild/internal/core"
	"solbuild/internal/types"
)

type buildOptions struct {
	Root          string
	Contracts     string
	Remappings    []string
	RemappingsEnv string
	LibPaths      []string
	Out           string
	Hardhat       bool
	Optimize      bool
	OptimizerRuns uint64
	EVMVersion    string
	IgnoredCodes  []uint
	NoAutoDetect  bool
	Force         bool
	Libraries     []string
}

func newBuildCommand() *cobra.Command {
	opts := buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Resolve the project configuration and hand it to the compiler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBuild(cmd.Context(), cmd, opts)
		},
	}
	registerBuildFlags(cmd, &opts)
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Delete the cache and artifacts directories before resolving")
	_ = viper.BindPFlag("force", cmd.Flags().Lookup("force"))
	return cmd
}

// registerBuildFlags declares the resolution inputs shared by the build and
// config commands. Each flag is viper-bound; the contracts, remappings-env
// and libraries keys additionally accept the DAPP_SRC, DAPP_REMAPPINGS and
// DAPP_LIBRARIES environment variables.
func registerBuildFlags(cmd *cobra.Command, opts *buildOptions) {
	cmd.Flags().StringVar(&opts.Root, "root", "", "Project root (defaults to the enclosing git repository, else the working directory)")
	cmd.Flags().StringVar(&opts.Contracts, "contracts", "", "Directory with the smart contracts, relative to the root")
	cmd.Flags().StringSliceVar(&opts.Remappings, "remappings", nil, "Import remappings (prefix=target)")
	cmd.Flags().StringVar(&opts.RemappingsEnv, "remappings-env", "", "Newline-delimited remappings override")
	cmd.Flags().StringSliceVar(&opts.LibPaths, "lib-paths", nil, "Paths where your libraries are installed")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Directory where the contract artifacts are stored")
	cmd.Flags().BoolVar(&opts.Hardhat, "hardhat", false, "Use the Hardhat-style project layout (same as --contracts contracts --lib-paths node_modules)")
	cmd.Flags().BoolVar(&opts.Optimize, "optimize", false, "Enable the solc optimizer")
	cmd.Flags().Uint64Var(&opts.OptimizerRuns, "optimizer-runs", core.DefaultOptimizerRuns, "Number of optimizer runs")
	cmd.Flags().StringVar(&opts.EVMVersion, "evm-version", string(core.DefaultEVMVersion), "Target EVM version")
	cmd.Flags().UintSliceVar(&opts.IgnoredCodes, "ignored-error-codes", nil, "Ignore warnings with specific error codes")
	cmd.Flags().BoolVar(&opts.NoAutoDetect, "no-auto-detect", false, "Skip solc auto-detection and use the solc on $PATH")
	cmd.Flags().StringSliceVar(&opts.Libraries, "libraries", nil, "Linked libraries (file:library:address)")

	cmd.Flags().SetNormalizeFunc(normalizeBuildFlag)
	cmd.MarkFlagsMutuallyExclusive("contracts", "hardhat")

	_ = viper.BindPFlag("root", cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("contracts", cmd.Flags().Lookup("contracts"))
	_ = viper.BindPFlag("remappings", cmd.Flags().Lookup("remappings"))
	_ = viper.BindPFlag("remappings_env", cmd.Flags().Lookup("remappings-env"))
	_ = viper.BindPFlag("lib_paths", cmd.Flags().Lookup("lib-paths"))
	_ = viper.BindPFlag("out", cmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("hardhat", cmd.Flags().Lookup("hardhat"))
	_ = viper.BindPFlag("optimize", cmd.Flags().Lookup("optimize"))
	_ = viper.BindPFlag("optimizer_runs", cmd.Flags().Lookup("optimizer-runs"))
	_ = viper.BindPFlag("evm_version", cmd.Flags().Lookup("evm-version"))
	_ = viper.BindPFlag("ignored_error_codes", cmd.Flags().Lookup("ignored-error-codes"))
	_ = viper.BindPFlag("no_auto_detect", cmd.Flags().Lookup("no-auto-detect"))
	_ = viper.BindPFlag("libraries", cmd.Flags().Lookup("libraries"))
	_ = viper.BindEnv("contracts", "DAPP_SRC")
	_ = viper.BindEnv("remappings_env", "DAPP_REMAPPINGS")
	_ = viper.BindEnv("libraries", "DAPP_LIBRARIES")
}

// normalizeBuildFlag accepts --hh as a convenience spelling of --hardhat.
func normalizeBuildFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "hh" {
		name = "hardhat"
	}
	return pflag.NormalizedName(name)
}

func runBuild(ctx context.Context, cmd *cobra.Command, opts buildOptions) error {
	req, err := buildRequest(cmd, opts)
	if err != nil {
		return err
	}
	req.Force = resolveBool(cmd, opts.Force, "force", "force")

	service := newAppService()
	result, err := service.Build(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("resolved: %s (%d remappings)\n", result.Config.Paths.Root, len(result.Config.Paths.Remappings))
	return nil
}

// buildRequest folds flag, config-file and environment values into one
// resolution request. Force stays unset; only the build command carries it.
func buildRequest(cmd *cobra.Command, opts buildOptions) (app.BuildRequest, error) {
	remappings, err := parseRemappingFlags(resolveStrings(cmd, opts.Remappings, "remappings", "remappings"))
	if err != nil {
		return app.BuildRequest{}, err
	}
	return app.BuildRequest{
		Root:              resolveString(cmd, opts.Root, "root", "root"),
		Sources:           resolveString(cmd, opts.Contracts, "contracts", "contracts"),
		Artifacts:         resolveString(cmd, opts.Out, "out", "out"),
		LibraryPaths:      resolveStrings(cmd, opts.LibPaths, "lib_paths", "lib-paths"),
		Hardhat:           resolveBool(cmd, opts.Hardhat, "hardhat", "hardhat"),
		Remappings:        remappings,
		RemappingsEnv:     resolveString(cmd, opts.RemappingsEnv, "remappings_env", "remappings-env"),
		Optimize:          resolveBool(cmd, opts.Optimize, "optimize", "optimize"),
		OptimizerRuns:     resolveUint64(cmd, opts.OptimizerRuns, "optimizer_runs", "optimizer-runs"),
		EVMVersion:        resolveString(cmd, opts.EVMVersion, "evm_version", "evm-version"),
		IgnoredErrorCodes: toUint64s(resolveUints(cmd, opts.IgnoredCodes, "ignored_error_codes", "ignored-error-codes")),
		LibraryLinks:      resolveStrings(cmd, opts.Libraries, "libraries", "libraries"),
		NoAutoDetect:      resolveBool(cmd, opts.NoAutoDetect, "no_auto_detect", "no-auto-detect"),
	}, nil
}

func parseRemappingFlags(values []string) ([]types.Remapping, error) {
	var remappings []types.Remapping
	for _, value := range values {
		remapping, err := core.ParseRemapping(value)
		if err != nil {
			return nil, err
		}
		remappings = append(remappings, remapping)
	}
	return remappings, nil
}

func toUint64s(codes []uint) []uint64 {
	if len(codes) == 0 {
		return nil
	}
	out := make([]uint64, 0, len(codes))
	for _, code := range codes {
		out = append(out, uint64(code))
	}
	return out
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveStrings(cmd *cobra.Command, values []string, key string, flagName string) []string {
	if cmd == nil {
		if len(values) > 0 {
			return values
		}
		return viper.GetStringSlice(key)
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	return viper.GetStringSlice(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetBool(key)
}

func resolveUint64(cmd *cobra.Command, value uint64, key string, flagName string) uint64 {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetUint64(key)
}

func resolveUints(cmd *cobra.Command, values []uint, key string, flagName string) []uint {
	if cmd == nil {
		return values
	}
	if flagChanged(cmd, flagName) {
		return values
	}
	ints := viper.GetIntSlice(key)
	if len(ints) == 0 {
		return values
	}
	out := make([]uint, 0, len(ints))
	for _, code := range ints {
		if code < 0 {
			continue
		}
		out = append(out, uint(code))
	}
	return out
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
