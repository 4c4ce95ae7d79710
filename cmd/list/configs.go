package list

import (
	"github.com/comfykit/comfykit/cmd/flags"
	"github.com/comfykit/comfykit/pkg/util/factory"
	"github.com/comfykit/comfykit/pkg/util/log"
	"github.com/spf13/cobra"
)

type configsCmd struct {
	*flags.GlobalFlags
}

func newConfigsCmd(f factory.Factory, globalFlags *flags.GlobalFlags) *cobra.Command {
	cmd := &configsCmd{GlobalFlags: globalFlags}

	return &cobra.Command{
		Use:   "configs",
		Short: "Lists the configs in the config directory",
		Long: `
#######################################################
################ comfykit list configs ################
#######################################################
Lists every config of the config directory together
with its parent and item counts.
#######################################################`,
		Args: cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.RunListConfigs(f, cobraCmd, args)
		},
	}
}

// RunListConfigs runs the functionality
func (cmd *configsCmd) RunListConfigs(f factory.Factory, cobraCmd *cobra.Command, args []string) error {
	logger := f.GetLog()

	configLoader := f.NewConfigLoader(cmd.ConfigDir, logger)
	names, err := configLoader.Names()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		logger.Infof("No configs found in %s", configLoader.ConfigDir())
		return nil
	}

	header := []string{"Name", "Parent", "Nodes", "Models"}
	values := [][]string{}
	for _, name := range names {
		doc, err := configLoader.Load(cobraCmd.Context(), name)
		if err != nil {
			values = append(values, []string{name, "(invalid)", "", ""})
			continue
		}

		values = append(values, []string{
			doc.Name,
			doc.Parent,
			itoa(len(doc.Nodes)),
			itoa(len(doc.Models)),
		})
	}

	log.PrintTable(logger, header, values)
	return nil
}
