package list

import (
	"strconv"

	"github.com/comfykit/comfykit/cmd/flags"
	"github.com/comfykit/comfykit/pkg/util/factory"
	"github.com/comfykit/comfykit/pkg/util/log"
	"github.com/spf13/cobra"
)

type nodesCmd struct {
	*flags.GlobalFlags
}

func newNodesCmd(f factory.Factory, globalFlags *flags.GlobalFlags) *cobra.Command {
	cmd := &nodesCmd{GlobalFlags: globalFlags}

	return &cobra.Command{
		Use:   "nodes",
		Short: "Lists the installed custom nodes",
		Long: `
#######################################################
################# comfykit list nodes #################
#######################################################
Lists the custom nodes that are installed below the
nodes directory together with their git metadata.
#######################################################`,
		Args: cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.RunListNodes(f, cobraCmd, args)
		},
	}
}

// RunListNodes runs the functionality
func (cmd *nodesCmd) RunListNodes(f factory.Factory, cobraCmd *cobra.Command, args []string) error {
	logger := f.GetLog()

	provisioner := f.NewProvisioner(cmd.ToProvisionOptions(), logger)
	nodes, err := provisioner.ListNodes()
	if err != nil {
		return err
	}
	if len(nodes) == 0 {
		logger.Info("No custom nodes installed")
		return nil
	}

	header := []string{"Name", "Url", "Branch", "Commit", "Requirements"}
	values := [][]string{}
	for _, node := range nodes {
		values = append(values, []string{
			node.Name,
			node.URL,
			node.Branch,
			node.Commit,
			strconv.FormatBool(node.HasRequirements),
		})
	}

	log.PrintTable(logger, header, values)
	return nil
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
