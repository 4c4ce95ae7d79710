package cmd

import (
	"os"

	"github.com/comfykit/comfykit/cmd/flags"
	configloader "github.com/comfykit/comfykit/pkg/comfykit/config/loader"
	"github.com/comfykit/comfykit/pkg/util/factory"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// EnvCmd is a struct that defines a command call for "env"
type EnvCmd struct {
	*flags.GlobalFlags

	Output string
}

// NewEnvCmd creates a new comfykit env command
func NewEnvCmd(f factory.Factory, globalFlags *flags.GlobalFlags) *cobra.Command {
	cmd := &EnvCmd{GlobalFlags: globalFlags}

	envCmd := &cobra.Command{
		Use:   "env",
		Short: "Prints the configs environment as shell exports",
		Long: `
#######################################################
################### comfykit env ######################
#######################################################
Resolves the config and prints its environment
variables as sourceable export lines. Variables that
are already set in the current environment are kept
and not printed. Use this from the pod startup script:

	eval "$(comfykit env)"
#######################################################`,
		Args: cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.Run(f, cobraCmd, args)
		},
	}

	envCmd.Flags().StringVarP(&cmd.Output, "output", "o", "", "Write the export lines to the given file instead of stdout")

	return envCmd
}

// Run executes the command logic
func (cmd *EnvCmd) Run(f factory.Factory, cobraCmd *cobra.Command, args []string) error {
	ctx := cobraCmd.Context()
	log := f.GetLog()

	configLoader := f.NewConfigLoader(cmd.ConfigDir, log)
	resolved, err := configLoader.Resolved(ctx, cmd.ConfigSource())
	if err != nil {
		return err
	}

	env := configloader.Environment(resolved)
	if cmd.Output == "" {
		return configloader.WriteSourceable(os.Stdout, env)
	}

	file, err := os.Create(cmd.Output)
	if err != nil {
		return errors.Wrap(err, "create output file")
	}
	defer file.Close()

	err = configloader.WriteSourceable(file, env)
	if err != nil {
		return err
	}

	log.Donef("Wrote environment to %s", cmd.Output)
	return nil
}
