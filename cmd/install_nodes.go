package cmd

import (
	"github.com/comfykit/comfykit/cmd/flags"
	"github.com/comfykit/comfykit/pkg/util/factory"
	"github.com/spf13/cobra"
)

// InstallNodesCmd is a struct that defines a command call for "install-nodes"
type InstallNodesCmd struct {
	*flags.GlobalFlags

	SkipRequirements bool
}

// NewInstallNodesCmd creates a new comfykit install-nodes command
func NewInstallNodesCmd(f factory.Factory, globalFlags *flags.GlobalFlags) *cobra.Command {
	cmd := &InstallNodesCmd{GlobalFlags: globalFlags}

	installNodesCmd := &cobra.Command{
		Use:   "install-nodes",
		Short: "Installs the custom nodes of the config",
		Long: `
#######################################################
############## comfykit install-nodes #################
#######################################################
Resolves the config and clones every custom node that
is not installed yet. Already installed nodes are left
untouched, failing nodes are reported but do not abort
the run.
#######################################################`,
		Args: cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.Run(f, cobraCmd, args)
		},
	}

	installNodesCmd.Flags().BoolVar(&cmd.SkipRequirements, "skip-requirements", false, "Skip installing the configs additional python requirements")

	return installNodesCmd
}

// Run executes the command logic
func (cmd *InstallNodesCmd) Run(f factory.Factory, cobraCmd *cobra.Command, args []string) error {
	ctx := cobraCmd.Context()
	log := f.GetLog()

	configLoader := f.NewConfigLoader(cmd.ConfigDir, log)
	resolved, err := configLoader.Resolved(ctx, cmd.ConfigSource())
	if err != nil {
		return err
	}

	provisioner := f.NewProvisioner(cmd.ToProvisionOptions(), log)
	report, err := provisioner.InstallNodes(ctx, resolved)
	if err != nil {
		return err
	}
	reportSummary(log, "Custom nodes", len(report.Items), report.Failed())

	if !cmd.SkipRequirements {
		report, err = provisioner.InstallRequirements(ctx, resolved)
		if err != nil {
			return err
		}
		reportSummary(log, "Requirements", len(report.Items), report.Failed())
	}

	return nil
}
