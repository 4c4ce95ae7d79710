package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/comfykit/comfykit/cmd/flags"
	"github.com/comfykit/comfykit/pkg/comfykit/config/loader"
	"github.com/comfykit/comfykit/pkg/comfykit/provision"
	"github.com/comfykit/comfykit/pkg/util/factory"
	"github.com/comfykit/comfykit/pkg/util/log"
	"github.com/spf13/cobra"
	"gotest.tools/assert"
)

type testFactory struct{}

func (f *testFactory) NewConfigLoader(configDir string, log log.Logger) loader.ConfigLoader {
	return loader.NewConfigLoader(configDir, log)
}

func (f *testFactory) NewProvisioner(options provision.Options, log log.Logger) *provision.Provisioner {
	return provision.New(options, log)
}

func (f *testFactory) GetLog() log.Logger {
	return log.Discard
}

var _ factory.Factory = &testFactory{}

func testCommand(t *testing.T) *cobra.Command {
	t.Helper()
	cobraCmd := &cobra.Command{}
	cobraCmd.SetContext(context.Background())
	return cobraCmd
}

func writeConfig(t *testing.T, dir string, name string, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name+".yaml"), []byte(content), 0644)
	assert.NilError(t, err)
}

func TestValidateRun(t *testing.T) {
	configDir := t.TempDir()
	writeConfig(t, configDir, "good", `
name: good
nodes:
  - url: https://github.com/org/node
models:
  - type: checkpoints
    url: https://example.com/model.safetensors
    filename: model.safetensors
`)
	writeConfig(t, configDir, "bad", `
name: bad
nodes:
  - branch: main
models:
  - type: checkpoints
    url: https://example.com/model.safetensors
`)

	cmd := &ValidateCmd{GlobalFlags: &flags.GlobalFlags{Config: "good", ConfigDir: configDir}}
	err := cmd.Run(&testFactory{}, testCommand(t), nil)
	assert.NilError(t, err)

	cmd = &ValidateCmd{GlobalFlags: &flags.GlobalFlags{Config: "bad", ConfigDir: configDir}}
	err = cmd.Run(&testFactory{}, testCommand(t), nil)
	assert.ErrorContains(t, err, "2 problems")
}

func TestEnvRun(t *testing.T) {
	configDir := t.TempDir()
	writeConfig(t, configDir, "default", `
name: default
env_vars:
  COMFY_ARGS: --fast
`)

	os.Unsetenv("CONFIG_NAME")
	os.Unsetenv("COMFY_ARGS")
	outputFile := filepath.Join(t.TempDir(), "env.sh")
	cmd := &EnvCmd{
		GlobalFlags: &flags.GlobalFlags{Config: "default", ConfigDir: configDir},
		Output:      outputFile,
	}
	err := cmd.Run(&testFactory{}, testCommand(t), nil)
	assert.NilError(t, err)

	out, err := os.ReadFile(outputFile)
	assert.NilError(t, err)
	assert.Assert(t, bytes.Contains(out, []byte("export COMFY_ARGS=--fast\n")))
	assert.Assert(t, bytes.Contains(out, []byte("export CONFIG_NAME=default\n")))
}
