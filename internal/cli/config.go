package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"solbuild/internal/types"
)

type configOptions = buildOptions

// newConfigCommand resolves exactly like build but never forces a rebuild;
// instead of compiling it prints the resolved configuration.
func newConfigCommand() *cobra.Command {
	opts := configOptions{}
	asJSON := false
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the fully resolved project configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd.Context(), cmd, opts, asJSON)
		},
	}
	registerBuildFlags(cmd, &opts)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of YAML")
	return cmd
}

func runConfig(ctx context.Context, cmd *cobra.Command, opts configOptions, asJSON bool) error {
	req, err := buildRequest(cmd, opts)
	if err != nil {
		return err
	}

	service := newAppService()
	result, err := service.Build(ctx, req)
	if err != nil {
		return err
	}

	rendered, err := renderConfig(result.Config, asJSON)
	if err != nil {
		return err
	}
	fmt.Print(rendered)
	return nil
}

func renderConfig(cfg types.ProjectConfig, asJSON bool) (string, error) {
	if asJSON {
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to render configuration").
				WithCause(err)
		}
		return string(data) + "\n", nil
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to render configuration").
			WithCause(err)
	}
	return string(data), nil
}
