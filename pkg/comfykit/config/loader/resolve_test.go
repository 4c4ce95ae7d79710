package loader

import (
	"context"
	"testing"

	"github.com/comfykit/comfykit/pkg/util/log"
	"gotest.tools/assert"
)

func TestResolveFlatConfigIsIdentity(t *testing.T) {
	configDir := t.TempDir()
	writeConfigs(t, configDir, map[string]string{
		"base.yaml": `
name: base
env_vars:
  A: "1"
nodes:
  - https://github.com/ltdrdata/ComfyUI-Manager
`,
	})

	l := NewConfigLoader(configDir, log.Discard)

	doc, err := l.Load(context.Background(), "base")
	assert.NilError(t, err)

	resolved, err := l.Resolve(context.Background(), doc)
	assert.NilError(t, err)
	assert.DeepEqual(t, doc, resolved)

	// resolving twice yields the same result
	again, err := l.Resolve(context.Background(), resolved)
	assert.NilError(t, err)
	assert.DeepEqual(t, resolved, again)
}

func TestResolveParentChain(t *testing.T) {
	configDir := t.TempDir()
	writeConfigs(t, configDir, map[string]string{
		"base.yaml": `
name: base
env_vars:
  A: "1"
nodes:
  - https://github.com/node/one
`,
		"flux.yaml": `
name: flux
parent: base
env_vars:
  A: "2"
  B: "3"
nodes:
  - https://github.com/node/two
`,
	})

	l := NewConfigLoader(configDir, log.Discard)

	resolved, err := l.Resolved(context.Background(), "flux")
	assert.NilError(t, err)
	assert.Equal(t, "flux", resolved.Name)
	assert.Equal(t, "", resolved.Parent)
	assert.DeepEqual(t, map[string]string{"A": "2", "B": "3"}, resolved.EnvVars)
	assert.Equal(t, 2, len(resolved.Nodes))
	assert.Equal(t, "https://github.com/node/one", resolved.Nodes[0].URL)
	assert.Equal(t, "https://github.com/node/two", resolved.Nodes[1].URL)
}

func TestResolveThreeLevelPrecedence(t *testing.T) {
	configDir := t.TempDir()
	writeConfigs(t, configDir, map[string]string{
		"c.yaml": `
name: c
env_vars:
  FROM_C: "c"
  SHARED: "c"
  OVERRIDDEN_IN_B: "c"
`,
		"b.yaml": `
name: b
parent: c
env_vars:
  FROM_B: "b"
  OVERRIDDEN_IN_B: "b"
  SHARED: "b"
`,
		"a.yaml": `
name: a
parent: b
env_vars:
  SHARED: "a"
`,
	})

	l := NewConfigLoader(configDir, log.Discard)

	resolved, err := l.Resolved(context.Background(), "a")
	assert.NilError(t, err)
	assert.DeepEqual(t, map[string]string{
		"FROM_C":          "c",
		"FROM_B":          "b",
		"OVERRIDDEN_IN_B": "b",
		"SHARED":          "a",
	}, resolved.EnvVars)
}

func TestResolveCycleFails(t *testing.T) {
	configDir := t.TempDir()
	writeConfigs(t, configDir, map[string]string{
		"a.yaml": "name: a\nparent: b\n",
		"b.yaml": "name: b\nparent: a\n",
	})

	l := NewConfigLoader(configDir, log.Discard)

	_, err := l.Resolved(context.Background(), "a")
	if err == nil {
		t.Fatal("Expected CyclicInheritanceError")
	}
	cyclicErr, ok := err.(*CyclicInheritanceError)
	if !ok {
		t.Fatalf("Expected CyclicInheritanceError, got %T: %v", err, err)
	}
	assert.DeepEqual(t, []string{"a", "b", "a"}, cyclicErr.Chain)
}

func TestResolveSelfParentFails(t *testing.T) {
	configDir := t.TempDir()
	writeConfigs(t, configDir, map[string]string{
		"a.yaml": "name: a\nparent: a\n",
	})

	l := NewConfigLoader(configDir, log.Discard)

	_, err := l.Resolved(context.Background(), "a")
	if _, ok := err.(*CyclicInheritanceError); !ok {
		t.Fatalf("Expected CyclicInheritanceError, got %T: %v", err, err)
	}
}

func TestResolveMissingParentFails(t *testing.T) {
	configDir := t.TempDir()
	writeConfigs(t, configDir, map[string]string{
		"a.yaml": "name: a\nparent: gone\n",
	})

	l := NewConfigLoader(configDir, log.Discard)

	_, err := l.Resolved(context.Background(), "a")
	if err == nil {
		t.Fatal("Expected error for missing parent")
	}
}

func TestMergeNodesChildWins(t *testing.T) {
	configDir := t.TempDir()
	writeConfigs(t, configDir, map[string]string{
		"base.yaml": `
name: base
nodes:
  - https://github.com/node/one
  - url: https://github.com/node/shared
    commit: aaaa
`,
		"child.yaml": `
name: child
parent: base
nodes:
  - url: https://github.com/node/shared
    commit: bbbb
  - https://github.com/node/three
`,
	})

	l := NewConfigLoader(configDir, log.Discard)

	resolved, err := l.Resolved(context.Background(), "child")
	assert.NilError(t, err)
	assert.Equal(t, 3, len(resolved.Nodes))
	assert.Equal(t, "https://github.com/node/one", resolved.Nodes[0].URL)
	assert.Equal(t, "https://github.com/node/shared", resolved.Nodes[1].URL)
	assert.Equal(t, "bbbb", resolved.Nodes[1].Commit)
	assert.Equal(t, "https://github.com/node/three", resolved.Nodes[2].URL)
}

func TestMergeModelsDeduplicatedByDestination(t *testing.T) {
	configDir := t.TempDir()
	writeConfigs(t, configDir, map[string]string{
		"base.yaml": `
name: base
models:
  - type: checkpoints
    url: https://example.com/old.safetensors
    filename: model.safetensors
  - type: vae
    url: https://example.com/vae.safetensors
    filename: vae.safetensors
`,
		"child.yaml": `
name: child
parent: base
models:
  - type: checkpoints
    url: https://example.com/new.safetensors
    filename: model.safetensors
`,
	})

	l := NewConfigLoader(configDir, log.Discard)

	resolved, err := l.Resolved(context.Background(), "child")
	assert.NilError(t, err)
	assert.Equal(t, 2, len(resolved.Models))
	assert.Equal(t, "vae.safetensors", resolved.Models[0].Filename)
	assert.Equal(t, "https://example.com/new.safetensors", resolved.Models[1].URL)
}

func TestMergeRequirementsKeepsLastOccurrence(t *testing.T) {
	configDir := t.TempDir()
	writeConfigs(t, configDir, map[string]string{
		"base.yaml": `
name: base
requirements:
  - insightface==0.7.2
  - onnxruntime
`,
		"child.yaml": `
name: child
parent: base
requirements:
  - insightface==0.7.3
  - segment-anything
`,
	})

	l := NewConfigLoader(configDir, log.Discard)

	resolved, err := l.Resolved(context.Background(), "child")
	assert.NilError(t, err)
	assert.DeepEqual(t, []string{"onnxruntime", "insightface==0.7.3", "segment-anything"}, resolved.Requirements)
}
