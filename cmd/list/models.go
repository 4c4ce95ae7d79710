package list

import (
	"fmt"

	"github.com/comfykit/comfykit/cmd/flags"
	"github.com/comfykit/comfykit/pkg/util/factory"
	"github.com/comfykit/comfykit/pkg/util/log"
	"github.com/spf13/cobra"
)

type modelsCmd struct {
	*flags.GlobalFlags
}

func newModelsCmd(f factory.Factory, globalFlags *flags.GlobalFlags) *cobra.Command {
	cmd := &modelsCmd{GlobalFlags: globalFlags}

	return &cobra.Command{
		Use:   "models",
		Short: "Lists the downloaded models",
		Long: `
#######################################################
################ comfykit list models #################
#######################################################
Lists the model files that exist below the models
directory, organized by category.
#######################################################`,
		Args: cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.RunListModels(f, cobraCmd, args)
		},
	}
}

// RunListModels runs the functionality
func (cmd *modelsCmd) RunListModels(f factory.Factory, cobraCmd *cobra.Command, args []string) error {
	logger := f.GetLog()

	provisioner := f.NewProvisioner(cmd.ToProvisionOptions(), logger)
	models, err := provisioner.ListModels()
	if err != nil {
		return err
	}
	if len(models) == 0 {
		logger.Info("No models downloaded")
		return nil
	}

	header := []string{"Type", "Name", "Size"}
	values := [][]string{}
	for _, model := range models {
		values = append(values, []string{
			model.Type,
			model.Name,
			formatSize(model.Size),
		})
	}

	log.PrintTable(logger, header, values)
	return nil
}

// formatSize renders a byte count in a human readable unit
func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
