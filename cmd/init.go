package cmd

import (
	"os"
	"path/filepath"

	"github.com/comfykit/comfykit/cmd/flags"
	"github.com/comfykit/comfykit/pkg/comfykit/config"
	"github.com/comfykit/comfykit/pkg/util/factory"
	"github.com/comfykit/comfykit/pkg/util/survey"
	"github.com/comfykit/comfykit/pkg/util/yamlutil"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// InitCmd is a struct that defines a command call for "init"
type InitCmd struct {
	*flags.GlobalFlags

	Reconfigure bool
}

// NewInitCmd creates a new comfykit init command
func NewInitCmd(f factory.Factory, globalFlags *flags.GlobalFlags) *cobra.Command {
	cmd := &InitCmd{GlobalFlags: globalFlags}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Creates a starter config in the config directory",
		Long: `
#######################################################
################### comfykit init #####################
#######################################################
Interactively creates a new config document in the
config directory.
#######################################################`,
		Args: cobra.NoArgs,
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			return cmd.Run(f, cobraCmd, args)
		},
	}

	initCmd.Flags().BoolVarP(&cmd.Reconfigure, "reconfigure", "r", false, "Overwrite an existing config with the same name")

	return initCmd
}

// Run executes the command logic
func (cmd *InitCmd) Run(f factory.Factory, cobraCmd *cobra.Command, args []string) error {
	log := f.GetLog()

	name, err := survey.Question(&survey.QuestionOptions{
		Question:               "What should the new config be called?",
		DefaultValue:           "my-config",
		ValidationRegexPattern: "^[a-zA-Z0-9][a-zA-Z0-9._-]*$",
		ValidationMessage:      "Config names may only contain letters, numbers, dots, dashes and underscores",
	})
	if err != nil {
		return err
	}

	configPath := filepath.Join(cmd.ConfigDir, name+".yaml")
	if !cmd.Reconfigure {
		if _, err := os.Stat(configPath); err == nil {
			return errors.Errorf("config %s already exists, use --reconfigure to overwrite it", configPath)
		}
	}

	configLoader := f.NewConfigLoader(cmd.ConfigDir, log)
	parent := ""
	names, err := configLoader.Names()
	if err == nil && len(names) > 0 {
		parent, err = survey.Question(&survey.QuestionOptions{
			Question:     "Which config should the new config extend?",
			DefaultValue: "none",
			Options:      append([]string{"none"}, names...),
		})
		if err != nil {
			return err
		}
		if parent == "none" {
			parent = ""
		}
	}

	newConfig := &config.Config{
		Name:   name,
		Parent: parent,
	}

	nodeURL, err := survey.Question(&survey.QuestionOptions{
		Question:     "Add a first custom node repository url (leave empty to skip)",
		DefaultValue: "",
	})
	if err != nil {
		return err
	}
	if nodeURL != "" {
		newConfig.Nodes = append(newConfig.Nodes, &config.NodeConfig{URL: nodeURL})
	}

	err = yamlutil.WriteYamlToFile(newConfig, configPath)
	if err != nil {
		return errors.Wrap(err, "write config")
	}

	log.Donef("Created config %s", configPath)
	log.Infof("Run `comfykit provision --config %s` to provision it", name)
	return nil
}
