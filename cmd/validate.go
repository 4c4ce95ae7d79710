package cmd

import (
	"github.com/comfykit/comfykit/cmd/flags"
	"github.com/comfykit/comfykit/pkg/util/factory"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ValidateCmd is a struct that defines a command call for "validate"
type ValidateCmd struct {
	*flags.GlobalFlags
}

// NewValidateCmd creates a new comfykit validate command
func NewValidateCmd(f factory.Factory, globalFlags *flags.GlobalFlags) *cobra.Command {
	cmd := &ValidateCmd{GlobalFlags: globalFlags}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validates the config",
		Long: `
#######################################################
################# comfykit validate ###################
#######################################################
Resolves the config inheritance chain and checks the
result for structural problems: nodes without a url,
models without a type, url or filename.
#######################################################`,
		Args: cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.Run(f, cobraCmd, args)
		},
	}

	return validateCmd
}

// Run executes the command logic
func (cmd *ValidateCmd) Run(f factory.Factory, cobraCmd *cobra.Command, args []string) error {
	ctx := cobraCmd.Context()
	log := f.GetLog()

	configLoader := f.NewConfigLoader(cmd.ConfigDir, log)
	resolved, err := configLoader.Resolved(ctx, cmd.ConfigSource())
	if err != nil {
		return err
	}

	problems := resolved.Validate()
	if len(problems) > 0 {
		for _, problem := range problems {
			log.Fail(problem)
		}

		return errors.Errorf("config %s has %d problems", resolved.Name, len(problems))
	}

	log.Donef("Config %s is valid: %d nodes, %d models, %d requirements", resolved.Name, len(resolved.Nodes), len(resolved.Models), len(resolved.Requirements))
	return nil
}
