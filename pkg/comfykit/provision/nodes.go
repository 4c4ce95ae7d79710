package provision

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/comfykit/comfykit/pkg/comfykit/config"
	"github.com/comfykit/comfykit/pkg/util/fsutil"
	gitpkg "github.com/comfykit/comfykit/pkg/util/git"
)

// InstallNodes ensures every custom node of the resolved config exists below
// the nodes root. Nodes whose directory already exists are never cloned
// again. A failing node does not prevent the remaining nodes from being
// attempted.
func (p *Provisioner) InstallNodes(ctx context.Context, resolved *config.Config) (*InstallReport, error) {
	report := &InstallReport{}
	if len(resolved.Nodes) == 0 {
		p.log.Debug("No custom nodes to install")
		return report, nil
	}

	err := p.ensureWritableRoot(p.nodesDir)
	if err != nil {
		return nil, err
	}

	for _, node := range resolved.Nodes {
		name := gitpkg.GetRepoName(node.URL)
		localPath := filepath.Join(p.nodesDir, name)

		if fsutil.DirExists(localPath) {
			p.log.Debugf("Node %s already installed", name)
			report.add(name, StatusPresent, "")
			continue
		}

		p.log.StartWait("Installing node " + name)
		err := p.clone(ctx, localPath, gitpkg.CloneOptions{
			URL:    normalizeRepoURL(node.URL),
			Branch: node.Branch,
			Commit: node.Commit,
		})
		p.log.StopWait()
		if err != nil {
			// remove a partial clone so a retry is not blocked
			_ = os.RemoveAll(localPath)
			report.add(name, StatusFailed, err.Error())
			p.log.Failf("Couldn't install node %s: %v", name, err)
			continue
		}

		p.installNodeRequirements(ctx, name, localPath)

		report.add(name, StatusInstalled, "")
		p.log.Donef("Installed node %s", name)
	}

	return report, nil
}

// installNodeRequirements installs the requirements.txt a cloned node ships
func (p *Provisioner) installNodeRequirements(ctx context.Context, name string, localPath string) {
	requirementsFile := filepath.Join(localPath, "requirements.txt")
	if !fsutil.FileExistsNonEmpty(requirementsFile) {
		return
	}

	p.log.Debugf("Installing requirements of node %s", name)
	err := p.runPip(ctx, "install", "-r", requirementsFile, "--quiet")
	if err != nil {
		p.log.Warnf("Couldn't install requirements of node %s: %v", name, err)
	}
}

// normalizeRepoURL appends .git to github https urls so public clones do not
// get redirected
func normalizeRepoURL(url string) string {
	if strings.HasPrefix(url, "https://github.com/") && !strings.HasSuffix(url, ".git") {
		return strings.TrimSuffix(url, "/") + ".git"
	}

	return url
}
