package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"solbuild/internal/app"
)

type cleanOptions struct {
	Root    string
	Out     string
	Hardhat bool
}

// newCleanCommand discards cached build state: the same destructive reset
// the build command performs under --force, available on its own.
func newCleanCommand() *cobra.Command {
	opts := cleanOptions{}
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete the cache and artifacts directories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClean(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Root, "root", "", "Project root (defaults to the enclosing git repository, else the working directory)")
	cmd.Flags().StringVar(&opts.Out, "out", "", "Directory where the contract artifacts are stored")
	cmd.Flags().BoolVar(&opts.Hardhat, "hardhat", false, "Use the Hardhat-style project layout")
	cmd.Flags().SetNormalizeFunc(normalizeBuildFlag)
	_ = viper.BindPFlag("root", cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("out", cmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("hardhat", cmd.Flags().Lookup("hardhat"))
	return cmd
}

func runClean(ctx context.Context, cmd *cobra.Command, opts cleanOptions) error {
	service := newAppService()
	result, err := service.Clean(ctx, app.CleanRequest{
		Root:      resolveString(cmd, opts.Root, "root", "root"),
		Artifacts: resolveString(cmd, opts.Out, "out", "out"),
		Hardhat:   resolveBool(cmd, opts.Hardhat, "hardhat", "hardhat"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("cleaned: %d directories\n", len(result.Removed))
	return nil
}
