package provision

import (
	"context"
	"encoding/json"
	"os"

	"github.com/comfykit/comfykit/pkg/util/downloader"
	"github.com/pkg/errors"
)

// civitaiPrefix marks model sources that reference a civitai model id
// instead of a direct download url
const civitaiPrefix = "civitai:"

const civitaiAPIURL = "https://civitai.com/api/v1/models/"

type civitaiModel struct {
	ModelVersions []struct {
		Files []struct {
			Name        string `json:"name"`
			Primary     bool   `json:"primary"`
			DownloadURL string `json:"downloadUrl"`
		} `json:"files"`
	} `json:"modelVersions"`
}

// resolveCivitaiURL asks the civitai api for the download url of the primary
// file of the latest model version
func (p *Provisioner) resolveCivitaiURL(ctx context.Context, modelID string) (string, error) {
	body, err := p.downloader.Get(ctx, civitaiAPIURL+modelID)
	if err != nil {
		return "", errors.Wrapf(err, "query civitai model %s", modelID)
	}

	parsed := &civitaiModel{}
	err = json.Unmarshal(body, parsed)
	if err != nil {
		return "", errors.Wrapf(err, "parse civitai response for model %s", modelID)
	}

	if len(parsed.ModelVersions) == 0 || len(parsed.ModelVersions[0].Files) == 0 {
		return "", errors.Errorf("no files found for civitai model %s", modelID)
	}

	files := parsed.ModelVersions[0].Files
	file := files[0]
	for _, f := range files {
		if f.Primary {
			file = f
			break
		}
	}

	if file.DownloadURL == "" {
		return "", errors.Errorf("no download url for civitai model %s", modelID)
	}

	downloadURL := file.DownloadURL
	if token := os.Getenv(downloader.EnvCivitaiToken); token != "" {
		downloadURL += "?token=" + token
	}

	return downloadURL, nil
}
