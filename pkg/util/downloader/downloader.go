package downloader

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/comfykit/comfykit/pkg/util/randutil"

	logpkg "github.com/comfykit/comfykit/pkg/util/log"
	"github.com/pkg/errors"
)

// EnvHuggingFaceToken is the environment variable holding the hugging face api token
const EnvHuggingFaceToken = "HF_TOKEN"

// EnvCivitaiToken is the environment variable holding the civitai api key
const EnvCivitaiToken = "CIVITAI_API_KEY"

// Downloader downloads files and documents over http
type Downloader interface {
	DownloadFile(ctx context.Context, url string, destPath string) error
	Get(ctx context.Context, url string) ([]byte, error)
}

type getRequest func(req *http.Request) (*http.Response, error)

type downloader struct {
	httpDo getRequest
	log    logpkg.Logger
}

// NewDownloader creates a new downloader with a bounded response header timeout
func NewDownloader(log logpkg.Logger) Downloader {
	client := &http.Client{
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			ResponseHeaderTimeout: 30 * time.Second,
		},
	}

	return &downloader{
		httpDo: client.Do,
		log:    log,
	}
}

// applyAuthHeaders sets source specific authorization headers from the
// process environment
func applyAuthHeaders(req *http.Request) {
	host := req.URL.Host
	if strings.HasSuffix(host, "huggingface.co") {
		if token := os.Getenv(EnvHuggingFaceToken); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	} else if strings.HasSuffix(host, "civitai.com") {
		if token := os.Getenv(EnvCivitaiToken); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
}

// DownloadFile streams the url into destPath. The transfer goes through a
// temporary file that is removed on failure, so an aborted download never
// leaves a partial artifact at the destination. A failed transfer is retried
// once before giving up.
func (d *downloader) DownloadFile(ctx context.Context, url string, destPath string) error {
	err := os.MkdirAll(filepath.Dir(destPath), 0755)
	if err != nil {
		return errors.Wrap(err, "create destination directory")
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			d.log.Warnf("Retrying download of %s: %v", url, lastErr)
		}

		lastErr = d.downloadFile(ctx, url, destPath)
		if lastErr == nil {
			return nil
		}

		// do not retry cancelled downloads
		if ctx.Err() != nil {
			return lastErr
		}
	}

	return lastErr
}

func (d *downloader) downloadFile(ctx context.Context, url string, destPath string) error {
	tempPath := destPath + ".partial-" + randutil.GenerateRandomString(8)
	out, err := os.Create(tempPath)
	if err != nil {
		return errors.Wrap(err, "create temporary file")
	}

	defer func() {
		_ = out.Close()
		_ = os.Remove(tempPath)
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	applyAuthHeaders(req)

	resp, err := d.httpDo(req)
	if err != nil {
		return errors.Wrapf(err, "request %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return errors.Errorf("request %s: unexpected status %s", url, resp.Status)
	}

	_, err = io.Copy(out, resp.Body)
	if err != nil {
		return errors.Wrapf(err, "download %s", url)
	}

	err = out.Close()
	if err != nil {
		return err
	}

	return os.Rename(tempPath, destPath)
}

// Get retrieves the url and returns the response body
func (d *downloader) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	applyAuthHeaders(req)

	resp, err := d.httpDo(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, errors.Errorf("request %s: unexpected status %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
