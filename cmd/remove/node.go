package remove

import (
	"github.com/comfykit/comfykit/cmd/flags"
	"github.com/comfykit/comfykit/pkg/util/factory"
	"github.com/spf13/cobra"
)

type nodeCmd struct {
	*flags.GlobalFlags
}

func newNodeCmd(f factory.Factory, globalFlags *flags.GlobalFlags) *cobra.Command {
	cmd := &nodeCmd{GlobalFlags: globalFlags}

	return &cobra.Command{
		Use:   "node",
		Short: "Removes an installed custom node",
		Long: `
#######################################################
############### comfykit remove node ##################
#######################################################
Deletes the directory of an installed custom node:

	comfykit remove node ComfyUI-Manager
#######################################################`,
		Args: cobra.ExactArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.RunRemoveNode(f, cobraCmd, args)
		},
	}
}

// RunRemoveNode runs the functionality
func (cmd *nodeCmd) RunRemoveNode(f factory.Factory, cobraCmd *cobra.Command, args []string) error {
	logger := f.GetLog()

	provisioner := f.NewProvisioner(cmd.ToProvisionOptions(), logger)
	err := provisioner.RemoveNode(args[0])
	if err != nil {
		return err
	}

	logger.Donef("Removed node %s", args[0])
	return nil
}
