package cmd

import (
	"strings"

	"github.com/comfykit/comfykit/cmd/flags"
	listcmd "github.com/comfykit/comfykit/cmd/list"
	removecmd "github.com/comfykit/comfykit/cmd/remove"
	"github.com/comfykit/comfykit/pkg/comfykit/config/constants"
	"github.com/comfykit/comfykit/pkg/util/factory"
	"github.com/comfykit/comfykit/pkg/util/log"
	"github.com/mgutz/ansi"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var globalFlags *flags.GlobalFlags

// NewRootCmd returns a new root command
func NewRootCmd(f factory.Factory) *cobra.Command {
	return &cobra.Command{
		Use:           "comfykit",
		SilenceUsage:  true,
		SilenceErrors: true,
		Short:         "Welcome to comfykit!",
		Long: `comfykit provisions a ComfyUI installation from a layered yaml config:
it installs custom nodes, downloads models and prepares the environment.
Provision your pod with:

	comfykit provision`,
		PersistentPreRun: func(cobraCmd *cobra.Command, args []string) {
			log := f.GetLog()
			if globalFlags.Silent {
				log.SetLevel(logrus.FatalLevel)
			} else if globalFlags.Debug {
				log.SetLevel(logrus.DebugLevel)
			}
			if globalFlags.NoColors {
				ansi.DisableColors(true)
			}

			completeGlobalFlags(globalFlags)
		},
	}
}

// Execute adds all child commands to the root command and runs it. This is
// called by main.main() and only needs to happen once.
func Execute(version string) {
	f := factory.DefaultFactory()
	rootCmd := BuildRoot(f)
	rootCmd.Version = version

	err := rootCmd.Execute()
	if err != nil {
		if globalFlags.Debug {
			f.GetLog().Fatalf("%+v", err)
		}

		f.GetLog().Fatal(err)
	}
}

// BuildRoot creates a new root command and recursively adds all subcommands
func BuildRoot(f factory.Factory) *cobra.Command {
	rootCmd := NewRootCmd(f)
	persistentFlags := rootCmd.PersistentFlags()
	globalFlags = flags.SetGlobalFlags(persistentFlags)

	rootCmd.AddCommand(NewProvisionCmd(f, globalFlags))
	rootCmd.AddCommand(NewInstallNodesCmd(f, globalFlags))
	rootCmd.AddCommand(NewDownloadCmd(f, globalFlags))
	rootCmd.AddCommand(NewPrintCmd(f, globalFlags))
	rootCmd.AddCommand(NewEnvCmd(f, globalFlags))
	rootCmd.AddCommand(NewValidateCmd(f, globalFlags))
	rootCmd.AddCommand(NewInitCmd(f, globalFlags))
	rootCmd.AddCommand(listcmd.NewListCmd(f, globalFlags))
	rootCmd.AddCommand(removecmd.NewRemoveCmd(f, globalFlags))

	cobra.OnInitialize(initConfig)
	return rootCmd
}

// initConfig reads in ENV variables that match COMFYKIT_*
func initConfig() {
	viper.SetEnvPrefix("comfykit")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// completeGlobalFlags fills unset directory flags from the environment and
// falls back to the conventional pod layout
func completeGlobalFlags(globalFlags *flags.GlobalFlags) {
	if globalFlags.ConfigDir == "" {
		globalFlags.ConfigDir = viper.GetString("config-dir")
	}
	if globalFlags.ConfigDir == "" {
		globalFlags.ConfigDir = constants.DefaultConfigDir
	}

	if globalFlags.NodesDir == "" {
		globalFlags.NodesDir = viper.GetString("nodes-dir")
	}
	if globalFlags.ModelsDir == "" {
		globalFlags.ModelsDir = viper.GetString("models-dir")
	}
	if globalFlags.WorkflowsDir == "" {
		globalFlags.WorkflowsDir = viper.GetString("workflows-dir")
	}
	if globalFlags.CacheDir == "" {
		globalFlags.CacheDir = viper.GetString("cache-dir")
	}
}

// reportSummary logs the outcome of a provisioning step without failing the
// command, so one broken item never blocks pod startup
func reportSummary(log log.Logger, what string, items int, failed int) {
	if items == 0 {
		return
	}
	if failed > 0 {
		log.Warnf("%s: %d of %d failed", what, failed, items)
		return
	}

	log.Donef("%s: %d ok", what, items)
}
