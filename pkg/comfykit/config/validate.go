package config

import (
	"strings"

	"github.com/comfykit/comfykit/pkg/comfykit/config/constants"
	"github.com/pkg/errors"
)

// Validate checks the config for structural problems and returns one error
// per problem found
func (c *Config) Validate() []error {
	problems := []error{}

	for i, node := range c.Nodes {
		if node == nil || strings.TrimSpace(node.URL) == "" {
			problems = append(problems, errors.Errorf("nodes[%d]: no url specified", i))
		}
	}

	for i, model := range c.Models {
		if model == nil {
			problems = append(problems, errors.Errorf("models[%d]: empty entry", i))
			continue
		}
		if strings.TrimSpace(model.Type) == "" {
			problems = append(problems, errors.Errorf("models[%d]: no type specified", i))
		} else if !knownModelCategory(model.Type) {
			problems = append(problems, errors.Errorf("models[%d]: unknown type %s", i, model.Type))
		}
		if strings.TrimSpace(model.URL) == "" {
			problems = append(problems, errors.Errorf("models[%d]: no url specified", i))
		}
		if strings.TrimSpace(model.Filename) == "" {
			problems = append(problems, errors.Errorf("models[%d]: no filename specified", i))
		}
	}

	for i, specifier := range c.Requirements {
		if strings.TrimSpace(specifier) == "" {
			problems = append(problems, errors.Errorf("requirements[%d]: empty specifier", i))
		}
	}

	return problems
}

func knownModelCategory(category string) bool {
	for _, known := range constants.ModelCategories {
		if known == category {
			return true
		}
	}

	return false
}
