package flags

import (
	"os"

	"github.com/comfykit/comfykit/pkg/comfykit/config/constants"
	"github.com/comfykit/comfykit/pkg/comfykit/provision"
	flag "github.com/spf13/pflag"
)

// GlobalFlags contains the global flags every command inherits
type GlobalFlags struct {
	Silent   bool
	NoColors bool
	Debug    bool

	Config       string
	ConfigDir    string
	NodesDir     string
	ModelsDir    string
	WorkflowsDir string
	CacheDir     string

	Flags *flag.FlagSet
}

// ConfigSource returns the config source to load: the --config flag if set,
// otherwise the CONFIG_NAME environment variable, otherwise the default
// config name
func (gf *GlobalFlags) ConfigSource() string {
	if gf.Config != "" {
		return gf.Config
	}
	if name := os.Getenv(constants.EnvConfigName); name != "" {
		return name
	}

	return constants.DefaultConfigName
}

// ToProvisionOptions converts the global flags into provisioner options
func (gf *GlobalFlags) ToProvisionOptions() provision.Options {
	return provision.Options{
		NodesDir:     gf.NodesDir,
		ModelsDir:    gf.ModelsDir,
		WorkflowsDir: gf.WorkflowsDir,
		CacheDir:     gf.CacheDir,
	}
}

// SetGlobalFlags applies the global flags
func SetGlobalFlags(flags *flag.FlagSet) *GlobalFlags {
	globalFlags := &GlobalFlags{
		Flags: flags,
	}

	flags.BoolVar(&globalFlags.NoColors, "no-colors", false, "Do not show color highlighting in log output. This avoids invisible output with different terminal background colors")
	flags.BoolVar(&globalFlags.Debug, "debug", false, "Prints debug output and the stack trace if an error occurs")
	flags.BoolVar(&globalFlags.Silent, "silent", false, "Run in silent mode and prevents any comfykit log output except panics & fatals")

	flags.StringVarP(&globalFlags.Config, "config", "c", "", "The config to use: a name, a file path or a http(s) url. Defaults to $CONFIG_NAME or 'default'")
	flags.StringVar(&globalFlags.ConfigDir, "config-dir", "", "The directory config names are resolved in")
	flags.StringVar(&globalFlags.NodesDir, "nodes-dir", "", "The ComfyUI custom_nodes directory")
	flags.StringVar(&globalFlags.ModelsDir, "models-dir", "", "The ComfyUI models directory")
	flags.StringVar(&globalFlags.WorkflowsDir, "workflows-dir", "", "The ComfyUI workflows directory")
	flags.StringVar(&globalFlags.CacheDir, "cache-dir", "", "The model download cache directory. Use '-' to disable caching")

	return globalFlags
}
