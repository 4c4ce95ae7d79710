package provision

import (
	"context"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/comfykit/comfykit/pkg/comfykit/config"
	"github.com/comfykit/comfykit/pkg/util/fsutil"
)

// CopyWorkflows copies the workflow files matched by the config's glob
// patterns into the workflow directory. Patterns without matches are
// recorded as skipped.
func (p *Provisioner) CopyWorkflows(ctx context.Context, resolved *config.Config) (*InstallReport, error) {
	report := &InstallReport{}
	if len(resolved.Workflows) == 0 {
		p.log.Debug("No workflows to copy")
		return report, nil
	}

	err := p.ensureWritableRoot(p.workflowsDir)
	if err != nil {
		return nil, err
	}

	for _, pattern := range resolved.Workflows {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			report.add(pattern, StatusFailed, err.Error())
			p.log.Failf("Invalid workflow pattern %s: %v", pattern, err)
			continue
		}
		if len(matches) == 0 {
			report.add(pattern, StatusSkipped, "no matching files")
			p.log.Warnf("Workflow pattern %s matched no files", pattern)
			continue
		}

		for _, match := range matches {
			name := filepath.Base(match)
			destPath := filepath.Join(p.workflowsDir, name)
			if fsutil.FileExistsNonEmpty(destPath) {
				report.add(name, StatusPresent, "")
				continue
			}

			err := fsutil.Copy(match, destPath)
			if err != nil {
				report.add(name, StatusFailed, err.Error())
				p.log.Failf("Couldn't copy workflow %s: %v", name, err)
				continue
			}

			report.add(name, StatusInstalled, "")
		}
	}

	return report, nil
}
