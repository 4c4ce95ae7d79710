package downloader

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/comfykit/comfykit/pkg/util/log"
	"github.com/pkg/errors"
	"gotest.tools/assert"
)

func fakeResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     http.StatusText(status),
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestDownloadFile(t *testing.T) {
	dir := t.TempDir()
	destPath := filepath.Join(dir, "checkpoints", "model.safetensors")

	d := &downloader{
		httpDo: func(req *http.Request) (*http.Response, error) {
			return fakeResponse(http.StatusOK, "weights"), nil
		},
		log: log.Discard,
	}

	err := d.DownloadFile(context.Background(), "https://example.com/model.safetensors", destPath)
	assert.NilError(t, err)

	data, err := os.ReadFile(destPath)
	assert.NilError(t, err)
	assert.Equal(t, "weights", string(data))
}

func TestDownloadFileRetriesOnce(t *testing.T) {
	dir := t.TempDir()
	destPath := filepath.Join(dir, "model.safetensors")

	calls := 0
	d := &downloader{
		httpDo: func(req *http.Request) (*http.Response, error) {
			calls++
			if calls == 1 {
				return nil, errors.New("connection reset")
			}
			return fakeResponse(http.StatusOK, "weights"), nil
		},
		log: log.Discard,
	}

	err := d.DownloadFile(context.Background(), "https://example.com/model.safetensors", destPath)
	assert.NilError(t, err)
	assert.Equal(t, 2, calls)
}

func TestDownloadFileCleansUpPartialFile(t *testing.T) {
	dir := t.TempDir()
	destPath := filepath.Join(dir, "model.safetensors")

	d := &downloader{
		httpDo: func(req *http.Request) (*http.Response, error) {
			return fakeResponse(http.StatusNotFound, "not found"), nil
		},
		log: log.Discard,
	}

	err := d.DownloadFile(context.Background(), "https://example.com/model.safetensors", destPath)
	if err == nil {
		t.Fatal("Expected download error")
	}

	entries, readErr := os.ReadDir(dir)
	assert.NilError(t, readErr)
	for _, entry := range entries {
		if strings.Contains(entry.Name(), ".partial-") {
			t.Fatalf("Partial file was not cleaned up: %s", entry.Name())
		}
	}
}

func TestGetAppliesAuthHeaders(t *testing.T) {
	t.Setenv(EnvHuggingFaceToken, "hf-secret")

	var authHeader string
	d := &downloader{
		httpDo: func(req *http.Request) (*http.Response, error) {
			authHeader = req.Header.Get("Authorization")
			return fakeResponse(http.StatusOK, "{}"), nil
		},
		log: log.Discard,
	}

	_, err := d.Get(context.Background(), "https://huggingface.co/api/models")
	assert.NilError(t, err)
	assert.Equal(t, "Bearer hf-secret", authHeader)
}
