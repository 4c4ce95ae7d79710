package config

import (
	"testing"

	"gopkg.in/yaml.v3"
	"gotest.tools/assert"
)

func TestNodeConfigUnmarshalScalar(t *testing.T) {
	in := `
nodes:
  - https://github.com/org/plain
  - url: https://github.com/org/pinned
    branch: main
    commit: abcdef12
`
	doc := &Config{}
	err := yaml.Unmarshal([]byte(in), doc)
	assert.NilError(t, err)
	assert.Equal(t, 2, len(doc.Nodes))
	assert.Equal(t, "https://github.com/org/plain", doc.Nodes[0].URL)
	assert.Equal(t, "https://github.com/org/pinned", doc.Nodes[1].URL)
	assert.Equal(t, "main", doc.Nodes[1].Branch)
	assert.Equal(t, "abcdef12", doc.Nodes[1].Commit)
}

func TestCloneIsDeep(t *testing.T) {
	original := &Config{
		Name:         "original",
		EnvVars:      map[string]string{"A": "1"},
		Nodes:        []*NodeConfig{{URL: "https://github.com/org/node"}},
		Models:       []*ModelConfig{{Type: "vae", URL: "u", Filename: "f"}},
		Requirements: []string{"onnxruntime"},
	}

	clone := original.Clone()
	clone.EnvVars["A"] = "2"
	clone.Nodes[0].URL = "changed"
	clone.Models[0].Filename = "changed"
	clone.Requirements[0] = "changed"

	assert.Equal(t, "1", original.EnvVars["A"])
	assert.Equal(t, "https://github.com/org/node", original.Nodes[0].URL)
	assert.Equal(t, "f", original.Models[0].Filename)
	assert.Equal(t, "onnxruntime", original.Requirements[0])
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name     string
		config   *Config
		problems int
	}{
		{
			name: "valid",
			config: &Config{
				Nodes:  []*NodeConfig{{URL: "https://github.com/org/node"}},
				Models: []*ModelConfig{{Type: "checkpoints", URL: "u", Filename: "f"}},
			},
			problems: 0,
		},
		{
			name: "node without url",
			config: &Config{
				Nodes: []*NodeConfig{{Branch: "main"}},
			},
			problems: 1,
		},
		{
			name: "model missing fields",
			config: &Config{
				Models: []*ModelConfig{{Type: "checkpoints"}},
			},
			problems: 2,
		},
		{
			name: "unknown model type",
			config: &Config{
				Models: []*ModelConfig{{Type: "weights", URL: "u", Filename: "f"}},
			},
			problems: 1,
		},
		{
			name: "empty requirement",
			config: &Config{
				Requirements: []string{"  "},
			},
			problems: 1,
		},
	}

	for _, testCase := range testCases {
		problems := testCase.config.Validate()
		assert.Equal(t, testCase.problems, len(problems), "in testCase %s", testCase.name)
	}
}
