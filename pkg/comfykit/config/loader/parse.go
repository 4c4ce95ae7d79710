package loader

import (
	"github.com/comfykit/comfykit/pkg/comfykit/config"
	yaml "gopkg.in/yaml.v3"
)

// parseConfig parses a config document. Unknown top-level keys are ignored,
// missing list or mapping fields stay empty.
func parseConfig(data []byte, source string) (*config.Config, error) {
	doc := &config.Config{}
	err := yaml.Unmarshal(data, doc)
	if err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}

	if doc.Name == "" {
		doc.Name = configName(source)
	}

	return doc, nil
}
