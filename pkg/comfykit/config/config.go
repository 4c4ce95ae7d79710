package config

import (
	"gopkg.in/yaml.v3"
)

// Config is a single comfykit configuration document. A config may extend
// another config through Parent, in which case the documents are merged
// field by field during resolution.
type Config struct {
	// Name is the identifier of this config
	Name string `yaml:"name"`

	// Parent is the name (or path or url) of the config this one extends
	Parent string `yaml:"parent,omitempty"`

	// EnvVars are environment variable defaults this config declares
	EnvVars map[string]string `yaml:"env_vars,omitempty"`

	// Nodes are the custom nodes that should be installed
	Nodes []*NodeConfig `yaml:"nodes,omitempty"`

	// Models are the model files that should be downloaded
	Models []*ModelConfig `yaml:"models,omitempty"`

	// Requirements are additional python package specifiers
	Requirements []string `yaml:"requirements,omitempty"`

	// Workflows are glob patterns of workflow files to copy in place
	Workflows []string `yaml:"workflows,omitempty"`
}

// NodeConfig describes a custom node sourced from a git repository
type NodeConfig struct {
	URL    string `yaml:"url"`
	Branch string `yaml:"branch,omitempty"`
	Commit string `yaml:"commit,omitempty"`
}

// UnmarshalYAML accepts either a plain repository url or a mapping
func (n *NodeConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		n.URL = value.Value
		return nil
	}

	type plain NodeConfig
	return value.Decode((*plain)(n))
}

// ModelConfig describes a model file and its typed destination
type ModelConfig struct {
	Type      string `yaml:"type"`
	URL       string `yaml:"url"`
	Filename  string `yaml:"filename"`
	Subfolder string `yaml:"subfolder,omitempty"`
	Hash      string `yaml:"hash,omitempty"`
}

// IsResolved returns true if the config has no remaining parent reference
func (c *Config) IsResolved() bool {
	return c.Parent == ""
}

// Clone returns a deep copy of the config
func (c *Config) Clone() *Config {
	clone := &Config{
		Name:   c.Name,
		Parent: c.Parent,
	}

	if c.EnvVars != nil {
		clone.EnvVars = map[string]string{}
		for k, v := range c.EnvVars {
			clone.EnvVars[k] = v
		}
	}
	for _, node := range c.Nodes {
		nodeCopy := *node
		clone.Nodes = append(clone.Nodes, &nodeCopy)
	}
	for _, model := range c.Models {
		modelCopy := *model
		clone.Models = append(clone.Models, &modelCopy)
	}
	clone.Requirements = append([]string(nil), c.Requirements...)
	clone.Workflows = append([]string(nil), c.Workflows...)

	return clone
}
