package list

import (
	"github.com/comfykit/comfykit/cmd/flags"
	"github.com/comfykit/comfykit/pkg/util/factory"
	"github.com/spf13/cobra"
)

// NewListCmd creates a new cobra command
func NewListCmd(f factory.Factory, globalFlags *flags.GlobalFlags) *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Lists configs, installed nodes and downloaded models",
		Long: `
#######################################################
#################### comfykit list ####################
#######################################################
	`,
		Args: cobra.NoArgs,
	}

	listCmd.AddCommand(newConfigsCmd(f, globalFlags))
	listCmd.AddCommand(newNodesCmd(f, globalFlags))
	listCmd.AddCommand(newModelsCmd(f, globalFlags))

	return listCmd
}
