package git

import (
	"context"
	"os"
	"strings"

	"github.com/comfykit/comfykit/pkg/util/command"
	"github.com/pkg/errors"
	"mvdan.cc/sh/v3/expand"
)

// GitCLIRepository holds the information about a repository
type GitCLIRepository struct {
	LocalPath string
}

// NewGitCLIRepository creates a new git repository struct with the given parameters
func NewGitCLIRepository(ctx context.Context, localPath string) (*GitCLIRepository, error) {
	if !isGitCommandAvailable(ctx) {
		return nil, errors.New("git not found in path. Please make sure you have git installed to clone custom nodes")
	}

	return &GitCLIRepository{
		LocalPath: localPath,
	}, nil
}

func isGitCommandAvailable(ctx context.Context) bool {
	return command.Exists(ctx, expand.ListEnviron(os.Environ()...), "git", "version")
}

// CloneOptions defines the options for cloning a repository
type CloneOptions struct {
	URL            string
	Branch         string
	Commit         string
	Args           []string
	DisableShallow bool
}

// cloneEnviron disables git credential prompts so clones of missing or
// private repositories fail instead of blocking on stdin.
func cloneEnviron() expand.Environ {
	return expand.ListEnviron(append(os.Environ(), "GIT_TERMINAL_PROMPT=0")...)
}

// Clone clones the repository into the local path if it does not exist yet
func (gr *GitCLIRepository) Clone(ctx context.Context, options CloneOptions) error {
	_, err := os.Stat(gr.LocalPath + "/.git")
	if err == nil {
		return nil
	}

	err = os.MkdirAll(gr.LocalPath, 0755)
	if err != nil {
		return err
	}

	args := []string{"clone", options.URL, gr.LocalPath}
	if options.Branch != "" {
		args = append(args, "--branch", options.Branch)
	}

	// do a shallow clone by default
	if options.Commit == "" && !options.DisableShallow {
		args = append(args, "--depth", "1")
	}

	args = append(args, options.Args...)
	out, err := command.CombinedOutput(ctx, "", cloneEnviron(), "git", args...)
	if err != nil {
		return errors.Errorf("error running 'git %s': %v -> %s", strings.Join(args, " "), err, string(out))
	}

	// checkout the commit if necessary
	if options.Commit != "" {
		out, err := command.CombinedOutput(ctx, gr.LocalPath, cloneEnviron(), "git", "-C", gr.LocalPath, "checkout", options.Commit)
		if err != nil {
			return errors.Errorf("error running 'git checkout %s': %v -> %s", options.Commit, err, string(out))
		}
	}

	return nil
}

// Pull makes sure the repository is up-to-date
func (gr *GitCLIRepository) Pull(ctx context.Context) error {
	out, err := command.CombinedOutput(ctx, gr.LocalPath, cloneEnviron(), "git", "-C", gr.LocalPath, "pull")
	if err != nil {
		return errors.Errorf("error running 'git pull': %v -> %s", err, string(out))
	}

	return nil
}
