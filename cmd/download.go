package cmd

import (
	"github.com/comfykit/comfykit/cmd/flags"
	"github.com/comfykit/comfykit/pkg/util/factory"
	"github.com/spf13/cobra"
)

// DownloadCmd is a struct that defines a command call for "download"
type DownloadCmd struct {
	*flags.GlobalFlags
}

// NewDownloadCmd creates a new comfykit download command
func NewDownloadCmd(f factory.Factory, globalFlags *flags.GlobalFlags) *cobra.Command {
	cmd := &DownloadCmd{GlobalFlags: globalFlags}

	downloadCmd := &cobra.Command{
		Use:   "download",
		Short: "Downloads the models of the config",
		Long: `
#######################################################
################# comfykit download ###################
#######################################################
Resolves the config and downloads every model that does
not exist yet below the models directory. Existing
models are skipped, failing downloads are reported but
do not abort the run.
#######################################################`,
		Args: cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.Run(f, cobraCmd, args)
		},
	}

	return downloadCmd
}

// Run executes the command logic
func (cmd *DownloadCmd) Run(f factory.Factory, cobraCmd *cobra.Command, args []string) error {
	ctx := cobraCmd.Context()
	log := f.GetLog()

	configLoader := f.NewConfigLoader(cmd.ConfigDir, log)
	resolved, err := configLoader.Resolved(ctx, cmd.ConfigSource())
	if err != nil {
		return err
	}

	provisioner := f.NewProvisioner(cmd.ToProvisionOptions(), log)
	report, err := provisioner.DownloadModels(ctx, resolved)
	if err != nil {
		return err
	}

	reportSummary(log, "Models", len(report.Items), report.Failed())
	return nil
}
