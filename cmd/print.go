package cmd

import (
	"os"

	"github.com/comfykit/comfykit/cmd/flags"
	"github.com/comfykit/comfykit/pkg/util/factory"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"
)

// PrintCmd is a struct that defines a command call for "print"
type PrintCmd struct {
	*flags.GlobalFlags

	SkipInfo bool
}

// NewPrintCmd creates a new comfykit print command
func NewPrintCmd(f factory.Factory, globalFlags *flags.GlobalFlags) *cobra.Command {
	cmd := &PrintCmd{GlobalFlags: globalFlags}

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Prints the resolved config",
		Long: `
#######################################################
################## comfykit print #####################
#######################################################
Resolves the config inheritance chain and prints the
flattened configuration that provisioning would use.
#######################################################`,
		Args: cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.Run(f, cobraCmd, args)
		},
	}

	printCmd.Flags().BoolVar(&cmd.SkipInfo, "skip-info", false, "When enabled, only prints the configuration without additional information")

	return printCmd
}

// Run executes the command logic
func (cmd *PrintCmd) Run(f factory.Factory, cobraCmd *cobra.Command, args []string) error {
	ctx := cobraCmd.Context()
	log := f.GetLog()

	configLoader := f.NewConfigLoader(cmd.ConfigDir, log)
	resolved, err := configLoader.Resolved(ctx, cmd.ConfigSource())
	if err != nil {
		return err
	}

	bs, err := yaml.Marshal(resolved)
	if err != nil {
		return err
	}

	if !cmd.SkipInfo {
		_, _ = os.Stdout.WriteString("Loaded config: " + cmd.ConfigSource() + "\n-------------------\n")
	}

	_, err = os.Stdout.Write(bs)
	return err
}
