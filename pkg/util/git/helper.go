package git

import (
	"strings"

	"github.com/pkg/errors"
	git "gopkg.in/src-d/go-git.v4"
)

// GetBranch retrieves the current HEADs name
func GetBranch(localPath string) (string, error) {
	repo, err := git.PlainOpen(localPath)
	if err != nil {
		return "", errors.Wrap(err, "git open")
	}

	head, err := repo.Head()
	if err != nil {
		return "", errors.Wrap(err, "get head")
	}

	return head.Name().Short(), nil
}

// GetHash retrieves the current HEADs hash
func GetHash(localPath string) (string, error) {
	repo, err := git.PlainOpen(localPath)
	if err != nil {
		return "", errors.Wrap(err, "git open")
	}

	head, err := repo.Head()
	if err != nil {
		return "", errors.Wrap(err, "get head")
	}

	return head.Hash().String(), nil
}

// GetRemote retrieves the remote origin url
func GetRemote(localPath string) (string, error) {
	repo, err := git.PlainOpen(localPath)
	if err != nil {
		return "", errors.Wrap(err, "git open")
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return "", errors.Wrap(err, "get remotes")
	}

	if len(remotes) == 0 {
		return "", errors.Errorf("couldn't determine git remote in %s", localPath)
	}

	urls := remotes[0].Config().URLs
	if len(urls) == 0 {
		return "", errors.Errorf("no url configured for git remote in %s", localPath)
	}

	return urls[0], nil
}

// GetRepoName returns the repository name that a clone of the given url
// would create on disk
func GetRepoName(url string) string {
	name := strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git")
	index := strings.LastIndex(name, "/")
	if index != -1 {
		name = name[index+1:]
	}

	return name
}
