package yamlutil

import (
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// WriteYamlToFile formats yamlData and writes it to a file
func WriteYamlToFile(yamlData interface{}, filePath string) error {
	yamlString, err := yaml.Marshal(yamlData)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(filePath), 0755)
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, yamlString, 0644)
}

// ReadYamlFromFile reads a yaml file into the given target
func ReadYamlFromFile(filePath string, yamlTarget interface{}) error {
	yamlFile, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(yamlFile, yamlTarget)
}
