package provision

import (
	"os"
	"path/filepath"

	"github.com/comfykit/comfykit/pkg/comfykit/config/constants"
	"github.com/comfykit/comfykit/pkg/util/fsutil"
	gitpkg "github.com/comfykit/comfykit/pkg/util/git"
	"github.com/pkg/errors"
)

// NodeInfo describes an installed custom node
type NodeInfo struct {
	Name            string
	URL             string
	Branch          string
	Commit          string
	HasRequirements bool
}

// ListNodes returns the custom nodes that exist below the nodes root
func (p *Provisioner) ListNodes() ([]NodeInfo, error) {
	entries, err := os.ReadDir(p.nodesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "read nodes directory")
	}

	var nodes []NodeInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		localPath := filepath.Join(p.nodesDir, entry.Name())
		info := NodeInfo{
			Name:            entry.Name(),
			HasRequirements: fsutil.FileExistsNonEmpty(filepath.Join(localPath, "requirements.txt")),
		}

		// git metadata is best effort, a node dir is not necessarily a repo
		if url, err := gitpkg.GetRemote(localPath); err == nil {
			info.URL = url
		}
		if branch, err := gitpkg.GetBranch(localPath); err == nil {
			info.Branch = branch
		}
		if commit, err := gitpkg.GetHash(localPath); err == nil {
			if len(commit) > 8 {
				commit = commit[:8]
			}
			info.Commit = commit
		}

		nodes = append(nodes, info)
	}

	return nodes, nil
}

// ModelInfo describes a downloaded model file
type ModelInfo struct {
	Type string
	Name string
	Size int64
}

// ListModels returns the model files that exist below the models root,
// organized by category
func (p *Provisioner) ListModels() ([]ModelInfo, error) {
	var models []ModelInfo
	for _, category := range constants.ModelCategories {
		categoryDir := filepath.Join(p.modelsDir, category)
		err := filepath.Walk(categoryDir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				// missing category dirs are fine
				return nil
			}
			if info.Mode().IsRegular() {
				name, _ := filepath.Rel(categoryDir, path)
				models = append(models, ModelInfo{
					Type: category,
					Name: filepath.ToSlash(name),
					Size: info.Size(),
				})
			}

			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "walk %s", categoryDir)
		}
	}

	return models, nil
}

// RemoveNode deletes an installed custom node
func (p *Provisioner) RemoveNode(name string) error {
	localPath := filepath.Join(p.nodesDir, name)
	if !fsutil.DirExists(localPath) {
		return errors.Errorf("node %s is not installed", name)
	}

	return os.RemoveAll(localPath)
}
