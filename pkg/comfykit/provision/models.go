package provision

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/comfykit/comfykit/pkg/comfykit/config"
	"github.com/comfykit/comfykit/pkg/util/fsutil"
	"github.com/comfykit/comfykit/pkg/util/hash"
	"github.com/pkg/errors"
)

// DownloadModels ensures every model of the resolved config exists at its
// typed destination path below the models root. Existing non-empty files are
// never downloaded again and a failing model does not prevent the remaining
// models from being attempted.
func (p *Provisioner) DownloadModels(ctx context.Context, resolved *config.Config) (*InstallReport, error) {
	report := &InstallReport{}
	if len(resolved.Models) == 0 {
		p.log.Debug("No models to download")
		return report, nil
	}

	err := p.ensureWritableRoot(p.modelsDir)
	if err != nil {
		return nil, err
	}

	for _, model := range resolved.Models {
		name := modelName(model)
		destPath := filepath.Join(p.modelsDir, model.Type, model.Subfolder, model.Filename)

		if fsutil.FileExistsNonEmpty(destPath) {
			p.log.Debugf("Model %s already exists", name)
			report.add(name, StatusPresent, "")
			continue
		}

		err := p.downloadModel(ctx, model, destPath)
		if err != nil {
			// remove a partial artifact so a retry is not blocked
			_ = os.Remove(destPath)
			report.add(name, StatusFailed, err.Error())
			p.log.Failf("Couldn't download model %s: %v", name, err)
			continue
		}

		report.add(name, StatusInstalled, "")
		p.log.Donef("Downloaded model %s", name)
	}

	return report, nil
}

func (p *Provisioner) downloadModel(ctx context.Context, model *config.ModelConfig, destPath string) error {
	url, err := p.resolveModelURL(ctx, model)
	if err != nil {
		return err
	}

	// reuse a cached copy when available
	cachePath := p.modelCachePath(url, model.Filename)
	if cachePath != "" && fsutil.FileExistsNonEmpty(cachePath) {
		p.log.Debugf("Copying model from cache %s", cachePath)
		err = fsutil.Copy(cachePath, destPath)
		if err == nil {
			return nil
		}

		p.log.Warnf("Couldn't copy model from cache, downloading instead: %v", err)
	}

	p.log.StartWait("Downloading " + model.Filename)
	err = p.downloader.DownloadFile(ctx, url, destPath)
	p.log.StopWait()
	if err != nil {
		return err
	}

	if model.Hash != "" {
		computed, err := hash.File(destPath)
		if err != nil {
			_ = os.Remove(destPath)
			return errors.Wrap(err, "verify model hash")
		}
		if !strings.EqualFold(computed, model.Hash) {
			_ = os.Remove(destPath)
			return errors.Errorf("hash mismatch: expected %s, got %s", model.Hash, computed)
		}
	}

	// populate the cache, best effort
	if cachePath != "" {
		err = fsutil.Copy(destPath, cachePath)
		if err != nil {
			p.log.Debugf("Couldn't populate model cache: %v", err)
		}
	}

	return nil
}

// resolveModelURL turns the configured source into a direct download url
func (p *Provisioner) resolveModelURL(ctx context.Context, model *config.ModelConfig) (string, error) {
	url := strings.TrimSpace(model.URL)
	switch {
	case url == "":
		return "", errors.New("no url specified")
	case strings.HasPrefix(url, civitaiPrefix):
		return p.resolveCivitaiURL(ctx, strings.TrimPrefix(url, civitaiPrefix))
	case strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://"):
		return url, nil
	case strings.Contains(url, "/"):
		// hugging face repository shorthand: <owner>/<repo>/<file path>
		parts := strings.SplitN(url, "/", 3)
		if len(parts) < 3 {
			return "", errors.Errorf("hugging face source %s is missing a file path", url)
		}

		return "https://huggingface.co/" + parts[0] + "/" + parts[1] + "/resolve/main/" + parts[2], nil
	}

	return "", errors.Errorf("unknown url format: %s", url)
}

// modelCachePath keys cached models by source url so renamed destinations
// still hit the cache
func (p *Provisioner) modelCachePath(url string, filename string) string {
	if p.cacheDir == "" {
		return ""
	}

	return filepath.Join(p.cacheDir, hash.String(url)[:16]+"_"+filename)
}

func modelName(model *config.ModelConfig) string {
	if model.Subfolder != "" {
		return model.Type + "/" + model.Subfolder + "/" + model.Filename
	}

	return model.Type + "/" + model.Filename
}
