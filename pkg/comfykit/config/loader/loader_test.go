package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/comfykit/comfykit/pkg/util/log"
	"gotest.tools/assert"
)

func writeConfigs(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		assert.NilError(t, err)
	}
}

func TestLoadByName(t *testing.T) {
	configDir := t.TempDir()
	writeConfigs(t, configDir, map[string]string{
		"flux.yaml": `
name: flux
env_vars:
  COMFY_ARGS: "--highvram"
nodes:
  - https://github.com/ltdrdata/ComfyUI-Manager
  - url: https://github.com/cubiq/ComfyUI_IPAdapter_plus
    branch: main
models:
  - type: checkpoints
    url: https://example.com/flux.safetensors
    filename: flux.safetensors
`,
	})

	l := NewConfigLoader(configDir, log.Discard)

	doc, err := l.Load(context.Background(), "flux")
	assert.NilError(t, err)
	assert.Equal(t, "flux", doc.Name)
	assert.Equal(t, "--highvram", doc.EnvVars["COMFY_ARGS"])
	assert.Equal(t, 2, len(doc.Nodes))
	assert.Equal(t, "https://github.com/ltdrdata/ComfyUI-Manager", doc.Nodes[0].URL)
	assert.Equal(t, "main", doc.Nodes[1].Branch)
	assert.Equal(t, 1, len(doc.Models))
	assert.Equal(t, "checkpoints", doc.Models[0].Type)

	// name with extension resolves to the same config
	doc, err = l.Load(context.Background(), "flux.yaml")
	assert.NilError(t, err)
	assert.Equal(t, "flux", doc.Name)
}

func TestLoadByPath(t *testing.T) {
	configDir := t.TempDir()
	otherDir := t.TempDir()
	writeConfigs(t, otherDir, map[string]string{
		"custom.yaml": "name: custom",
	})

	l := NewConfigLoader(configDir, log.Discard)

	doc, err := l.Load(context.Background(), filepath.Join(otherDir, "custom.yaml"))
	assert.NilError(t, err)
	assert.Equal(t, "custom", doc.Name)
}

func TestLoadNotFound(t *testing.T) {
	l := NewConfigLoader(t.TempDir(), log.Discard)

	_, err := l.Load(context.Background(), "does-not-exist")
	if err == nil {
		t.Fatal("Expected ConfigNotFoundError")
	}
	if _, ok := err.(*ConfigNotFoundError); !ok {
		t.Fatalf("Expected ConfigNotFoundError, got %T: %v", err, err)
	}
}

func TestLoadUnreadableIsNotAbsence(t *testing.T) {
	// an absolute path that exists but cannot be read as a file must not be
	// reported as a missing config
	l := NewConfigLoader(t.TempDir(), log.Discard)

	_, err := l.Load(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("Expected read error")
	}
	if _, ok := err.(*ConfigNotFoundError); ok {
		t.Fatalf("Expected a read error, got ConfigNotFoundError: %v", err)
	}
}

func TestLoadParseError(t *testing.T) {
	configDir := t.TempDir()
	writeConfigs(t, configDir, map[string]string{
		"broken.yaml": "name: [unclosed",
	})

	l := NewConfigLoader(configDir, log.Discard)

	_, err := l.Load(context.Background(), "broken")
	if err == nil {
		t.Fatal("Expected ParseError")
	}
	parseErr, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("Expected ParseError, got %T: %v", err, err)
	}
	assert.Equal(t, "broken", parseErr.Source)
}

func TestLoadIgnoresUnknownKeys(t *testing.T) {
	configDir := t.TempDir()
	writeConfigs(t, configDir, map[string]string{
		"extra.yaml": `
name: extra
unknown_key: true
another:
  nested: value
requirements:
  - insightface
`,
	})

	l := NewConfigLoader(configDir, log.Discard)

	doc, err := l.Load(context.Background(), "extra")
	assert.NilError(t, err)
	assert.Equal(t, "extra", doc.Name)
	assert.Equal(t, 1, len(doc.Requirements))
}

func TestLoadDefaultsNameFromSource(t *testing.T) {
	configDir := t.TempDir()
	writeConfigs(t, configDir, map[string]string{
		"unnamed.yaml": "env_vars:\n  A: \"1\"\n",
	})

	l := NewConfigLoader(configDir, log.Discard)

	doc, err := l.Load(context.Background(), "unnamed")
	assert.NilError(t, err)
	assert.Equal(t, "unnamed", doc.Name)
}

func TestNames(t *testing.T) {
	configDir := t.TempDir()
	writeConfigs(t, configDir, map[string]string{
		"base.yaml": "name: base",
		"flux.yaml": "name: flux",
		"notes.txt": "not a config",
	})

	l := NewConfigLoader(configDir, log.Discard)

	names, err := l.Names()
	assert.NilError(t, err)
	assert.DeepEqual(t, []string{"base", "flux"}, names)
}
