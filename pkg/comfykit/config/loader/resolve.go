package loader

import (
	"context"
	"strings"

	"github.com/comfykit/comfykit/pkg/comfykit/config"
	"github.com/pkg/errors"
)

// Resolve walks the parent chain of doc from leaf to root and merges the
// documents back down into one flattened config. Resolving an already flat
// config returns it unchanged.
func (l *configLoader) Resolve(ctx context.Context, doc *config.Config) (*config.Config, error) {
	return l.resolve(ctx, doc, []string{doc.Name})
}

func (l *configLoader) resolve(ctx context.Context, doc *config.Config, chain []string) (*config.Config, error) {
	if doc.IsResolved() {
		return doc, nil
	}

	for _, visited := range chain {
		if visited == doc.Parent {
			return nil, &CyclicInheritanceError{Chain: append(chain, doc.Parent)}
		}
	}

	parent, err := l.Load(ctx, doc.Parent)
	if err != nil {
		return nil, errors.Wrapf(err, "load parent config '%s'", doc.Parent)
	}

	resolvedParent, err := l.resolve(ctx, parent, append(chain, doc.Parent))
	if err != nil {
		return nil, err
	}

	return mergeConfigs(resolvedParent, doc), nil
}

// mergeConfigs merges child on top of the resolved parent: env vars are
// overridden per key, lists are concatenated parent first with duplicates
// removed in favor of the child entry.
func mergeConfigs(parent *config.Config, child *config.Config) *config.Config {
	merged := &config.Config{
		Name:         child.Name,
		EnvVars:      mergeEnvVars(parent.EnvVars, child.EnvVars),
		Nodes:        mergeNodes(parent.Nodes, child.Nodes),
		Models:       mergeModels(parent.Models, child.Models),
		Requirements: mergeRequirements(parent.Requirements, child.Requirements),
		Workflows:    mergeStrings(parent.Workflows, child.Workflows),
	}

	return merged
}

func mergeEnvVars(parent map[string]string, child map[string]string) map[string]string {
	if parent == nil && child == nil {
		return nil
	}

	merged := map[string]string{}
	for k, v := range parent {
		merged[k] = v
	}
	for k, v := range child {
		merged[k] = v
	}

	return merged
}

func mergeNodes(parent []*config.NodeConfig, child []*config.NodeConfig) []*config.NodeConfig {
	childURLs := map[string]bool{}
	for _, node := range child {
		childURLs[node.URL] = true
	}

	var merged []*config.NodeConfig
	seen := map[string]bool{}
	for _, node := range parent {
		if childURLs[node.URL] || seen[node.URL] {
			continue
		}

		seen[node.URL] = true
		merged = append(merged, node)
	}
	for _, node := range child {
		if seen[node.URL] {
			continue
		}

		seen[node.URL] = true
		merged = append(merged, node)
	}

	return merged
}

func mergeModels(parent []*config.ModelConfig, child []*config.ModelConfig) []*config.ModelConfig {
	destination := func(model *config.ModelConfig) string {
		return model.Type + "/" + model.Subfolder + "/" + model.Filename
	}

	childDests := map[string]bool{}
	for _, model := range child {
		childDests[destination(model)] = true
	}

	var merged []*config.ModelConfig
	seen := map[string]bool{}
	for _, model := range parent {
		dest := destination(model)
		if childDests[dest] || seen[dest] {
			continue
		}

		seen[dest] = true
		merged = append(merged, model)
	}
	for _, model := range child {
		dest := destination(model)
		if seen[dest] {
			continue
		}

		seen[dest] = true
		merged = append(merged, model)
	}

	return merged
}

// mergeRequirements concatenates the requirement specifiers and keeps the
// last occurrence per package name
func mergeRequirements(parent []string, child []string) []string {
	combined := append(append([]string(nil), parent...), child...)

	lastIndex := map[string]int{}
	for i, specifier := range combined {
		lastIndex[requirementName(specifier)] = i
	}

	var merged []string
	for i, specifier := range combined {
		if lastIndex[requirementName(specifier)] != i {
			continue
		}

		merged = append(merged, specifier)
	}

	return merged
}

// requirementName extracts the normalized package name from a pip
// requirement specifier
func requirementName(specifier string) string {
	name := strings.TrimSpace(specifier)
	if i := strings.IndexAny(name, "=<>~![; "); i != -1 {
		name = name[:i]
	}

	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, ".", "-")
	return name
}

func mergeStrings(parent []string, child []string) []string {
	var merged []string
	seen := map[string]bool{}
	for _, s := range append(append([]string(nil), parent...), child...) {
		if seen[s] {
			continue
		}

		seen[s] = true
		merged = append(merged, s)
	}

	return merged
}
