package provision

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/comfykit/comfykit/pkg/comfykit/config/constants"
	"github.com/comfykit/comfykit/pkg/util/command"
	"github.com/comfykit/comfykit/pkg/util/downloader"
	"github.com/comfykit/comfykit/pkg/util/fsutil"
	gitpkg "github.com/comfykit/comfykit/pkg/util/git"
	"github.com/comfykit/comfykit/pkg/util/log"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"mvdan.cc/sh/v3/expand"
)

// DestinationUnwritableError is returned when a provisioning root cannot be
// created or written to. It aborts the whole operation, in contrast to item
// failures which are recorded in the report.
type DestinationUnwritableError struct {
	Path string
	Err  error
}

func (e *DestinationUnwritableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("destination %s is not writable: %v", e.Path, e.Err)
	}

	return fmt.Sprintf("destination %s is not writable", e.Path)
}

// Options configures a provisioner
type Options struct {
	NodesDir     string
	ModelsDir    string
	WorkflowsDir string

	// CacheDir caches downloaded models across container restarts. Resolved
	// automatically when empty, set to "-" to disable caching.
	CacheDir string
}

// Provisioner brings the local filesystem to the state a resolved config
// describes. It owns no state across runs, the filesystem is the only record
// of what is installed.
type Provisioner struct {
	nodesDir     string
	modelsDir    string
	workflowsDir string
	cacheDir     string

	downloader downloader.Downloader
	log        log.Logger

	// injected for testing
	clone  func(ctx context.Context, localPath string, options gitpkg.CloneOptions) error
	runPip func(ctx context.Context, args ...string) error
}

// New creates a new provisioner for the given destination roots
func New(options Options, log log.Logger) *Provisioner {
	nodesDir := options.NodesDir
	if nodesDir == "" {
		nodesDir = constants.DefaultNodesDir
	}
	modelsDir := options.ModelsDir
	if modelsDir == "" {
		modelsDir = constants.DefaultModelsDir
	}
	workflowsDir := options.WorkflowsDir
	if workflowsDir == "" {
		workflowsDir = constants.DefaultWorkflowsDir
	}
	cacheDir := options.CacheDir
	if cacheDir == "" {
		cacheDir = resolveCacheDir()
	} else if cacheDir == "-" {
		cacheDir = ""
	}

	p := &Provisioner{
		nodesDir:     nodesDir,
		modelsDir:    modelsDir,
		workflowsDir: workflowsDir,
		cacheDir:     cacheDir,
		downloader:   downloader.NewDownloader(log),
		log:          log,
	}

	p.clone = p.cloneRepository
	p.runPip = p.pip
	return p
}

// resolveCacheDir prefers the persistent network volume so downloaded models
// survive pod restarts
func resolveCacheDir() string {
	if fsutil.DirExists(constants.NetworkVolumePath) {
		return filepath.Join(constants.NetworkVolumePath, "cache", "models")
	}

	home, err := homedir.Dir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".comfykit", "cache", "models")
}

// ensureWritableRoot creates the root directory and verifies it is writable
func (p *Provisioner) ensureWritableRoot(dir string) error {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return &DestinationUnwritableError{Path: dir, Err: err}
	}

	if !fsutil.IsWritable(dir) {
		return &DestinationUnwritableError{Path: dir}
	}

	return nil
}

// cloneRepository clones with the git cli and falls back to an in-process
// clone when the git binary is not available
func (p *Provisioner) cloneRepository(ctx context.Context, localPath string, options gitpkg.CloneOptions) error {
	repo, err := gitpkg.NewGitCLIRepository(ctx, localPath)
	if err != nil {
		p.log.Debugf("Git cli unavailable, cloning in-process: %v", err)
		return gitpkg.NewGoGitRepository(localPath).Clone(options)
	}

	return repo.Clone(ctx, options)
}

// pip runs the pip binary with the given arguments
func (p *Provisioner) pip(ctx context.Context, args ...string) error {
	out, err := command.CombinedOutput(ctx, "", expand.ListEnviron(os.Environ()...), "pip", args...)
	if err != nil {
		return errors.Errorf("pip %v: %v -> %s", args, err, string(out))
	}

	return nil
}
