package cmd

import (
	"github.com/comfykit/comfykit/cmd/flags"
	configloader "github.com/comfykit/comfykit/pkg/comfykit/config/loader"
	"github.com/comfykit/comfykit/pkg/util/factory"
	"github.com/spf13/cobra"
)

// ProvisionCmd is a struct that defines a command call for "provision"
type ProvisionCmd struct {
	*flags.GlobalFlags

	SkipModels    bool
	SkipNodes     bool
	SkipWorkflows bool
}

// NewProvisionCmd creates a new comfykit provision command
func NewProvisionCmd(f factory.Factory, globalFlags *flags.GlobalFlags) *cobra.Command {
	cmd := &ProvisionCmd{GlobalFlags: globalFlags}

	provisionCmd := &cobra.Command{
		Use:   "provision",
		Short: "Installs custom nodes, requirements, models and workflows",
		Long: `
#######################################################
################ comfykit provision ###################
#######################################################
Resolves the config and brings the ComfyUI installation
to the state it describes: custom nodes are cloned,
python requirements installed, models downloaded and
workflows copied. Items that already exist are skipped,
items that fail are reported but never abort the run.
#######################################################`,
		Args: cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.Run(f, cobraCmd, args)
		},
	}

	provisionCmd.Flags().BoolVar(&cmd.SkipModels, "skip-models", false, "Skip downloading models")
	provisionCmd.Flags().BoolVar(&cmd.SkipNodes, "skip-nodes", false, "Skip installing custom nodes and requirements")
	provisionCmd.Flags().BoolVar(&cmd.SkipWorkflows, "skip-workflows", false, "Skip copying workflows")

	return provisionCmd
}

// Run executes the command logic
func (cmd *ProvisionCmd) Run(f factory.Factory, cobraCmd *cobra.Command, args []string) error {
	ctx := cobraCmd.Context()
	log := f.GetLog()

	configLoader := f.NewConfigLoader(cmd.ConfigDir, log)
	resolved, err := configLoader.Resolved(ctx, cmd.ConfigSource())
	if err != nil {
		return err
	}

	log.Infof("Provisioning from config %s", resolved.Name)
	err = configloader.ApplyEnvironment(resolved)
	if err != nil {
		return err
	}

	provisioner := f.NewProvisioner(cmd.ToProvisionOptions(), log)
	failed := 0

	if !cmd.SkipNodes {
		report, err := provisioner.InstallNodes(ctx, resolved)
		if err != nil {
			return err
		}
		reportSummary(log, "Custom nodes", len(report.Items), report.Failed())
		failed += report.Failed()

		report, err = provisioner.InstallRequirements(ctx, resolved)
		if err != nil {
			return err
		}
		reportSummary(log, "Requirements", len(report.Items), report.Failed())
		failed += report.Failed()
	}

	if !cmd.SkipModels {
		report, err := provisioner.DownloadModels(ctx, resolved)
		if err != nil {
			return err
		}
		reportSummary(log, "Models", len(report.Items), report.Failed())
		failed += report.Failed()
	}

	if !cmd.SkipWorkflows {
		report, err := provisioner.CopyWorkflows(ctx, resolved)
		if err != nil {
			return err
		}
		reportSummary(log, "Workflows", len(report.Items), report.Failed())
		failed += report.Failed()
	}

	if failed > 0 {
		log.Warnf("Provisioning finished with %d failed items", failed)
	} else {
		log.Done("Provisioning finished")
	}

	return nil
}
