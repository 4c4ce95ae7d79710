package git

import (
	"os"

	"github.com/pkg/errors"
	git "gopkg.in/src-d/go-git.v4"
	"gopkg.in/src-d/go-git.v4/plumbing"
)

// GoGitRepository clones repositories in-process and is used as fallback
// when the git binary is not available
type GoGitRepository struct {
	LocalPath string
}

// NewGoGitRepository creates a new go git repository struct with the given parameters
func NewGoGitRepository(localPath string) *GoGitRepository {
	return &GoGitRepository{
		LocalPath: localPath,
	}
}

// Clone clones the repository into the local path if it does not exist yet
func (gr *GoGitRepository) Clone(options CloneOptions) error {
	_, err := os.Stat(gr.LocalPath + "/.git")
	if err == nil {
		return nil
	}

	err = os.MkdirAll(gr.LocalPath, 0755)
	if err != nil {
		return err
	}

	cloneOptions := &git.CloneOptions{
		URL: options.URL,
	}
	if options.Branch != "" {
		cloneOptions.ReferenceName = plumbing.NewBranchReferenceName(options.Branch)
		cloneOptions.SingleBranch = true
	}
	if options.Commit == "" && !options.DisableShallow {
		cloneOptions.Depth = 1
	}

	repo, err := git.PlainClone(gr.LocalPath, false, cloneOptions)
	if err != nil {
		return errors.Wrap(err, "clone repository")
	}

	if options.Commit != "" {
		worktree, err := repo.Worktree()
		if err != nil {
			return errors.Wrap(err, "get worktree")
		}

		err = worktree.Checkout(&git.CheckoutOptions{
			Hash: plumbing.NewHash(options.Commit),
		})
		if err != nil {
			return errors.Wrapf(err, "checkout %s", options.Commit)
		}
	}

	return nil
}
