package provision

import (
	"context"

	"github.com/comfykit/comfykit/pkg/comfykit/config"
)

// InstallRequirements installs the additional python package specifiers of
// the resolved config one by one, so a broken specifier does not prevent the
// remaining packages from being installed.
func (p *Provisioner) InstallRequirements(ctx context.Context, resolved *config.Config) (*InstallReport, error) {
	report := &InstallReport{}
	if len(resolved.Requirements) == 0 {
		p.log.Debug("No additional requirements to install")
		return report, nil
	}

	for _, specifier := range resolved.Requirements {
		p.log.StartWait("Installing " + specifier)
		err := p.runPip(ctx, "install", specifier, "--quiet")
		p.log.StopWait()
		if err != nil {
			report.add(specifier, StatusFailed, err.Error())
			p.log.Failf("Couldn't install %s: %v", specifier, err)
			continue
		}

		report.add(specifier, StatusInstalled, "")
		p.log.Donef("Installed %s", specifier)
	}

	return report, nil
}
