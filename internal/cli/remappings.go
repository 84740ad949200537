package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"solbuild/internal/app"
)

type remappingsOptions struct {
	Root     string
	LibPaths []string
	Hardhat  bool
}

func newRemappingsCommand() *cobra.Command {
	opts := remappingsOptions{}
	cmd := &cobra.Command{
		Use:   "remappings",
		Short: "Print the resolved import remappings, one per line",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRemappings(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Root, "root", "", "Project root (defaults to the enclosing git repository, else the working directory)")
	cmd.Flags().StringSliceVar(&opts.LibPaths, "lib-paths", nil, "Paths where your libraries are installed")
	cmd.Flags().BoolVar(&opts.Hardhat, "hardhat", false, "Use the Hardhat-style project layout")
	cmd.Flags().SetNormalizeFunc(normalizeBuildFlag)
	_ = viper.BindPFlag("root", cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("lib_paths", cmd.Flags().Lookup("lib-paths"))
	_ = viper.BindPFlag("hardhat", cmd.Flags().Lookup("hardhat"))
	return cmd
}

func runRemappings(ctx context.Context, cmd *cobra.Command, opts remappingsOptions) error {
	service := newAppService()
	result, err := service.Remappings(ctx, app.RemappingsRequest{
		Root:         resolveString(cmd, opts.Root, "root", "root"),
		LibraryPaths: resolveStrings(cmd, opts.LibPaths, "lib_paths", "lib-paths"),
		Hardhat:      resolveBool(cmd, opts.Hardhat, "hardhat", "hardhat"),
	})
	if err != nil {
		return err
	}
	for _, remapping := range result.Remappings {
		fmt.Println(remapping.String())
	}
	return nil
}
