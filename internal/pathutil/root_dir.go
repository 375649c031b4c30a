// Package pathutil locates a repository and its working tree from the
// current process's filesystem, the way the git CLI walks up from the
// current directory looking for a .git.
package pathutil

import (
	"os"
	"path/filepath"

	"github.com/colinmarc/gitcore/internal/gitpath"
	"golang.org/x/xerrors"
)

// ErrNoRepo is returned when no repository can be found in p or any of
// its parent directories.
var ErrNoRepo = xerrors.New("not a git repository (or any of the parent directories)")

// RepoRoot returns the absolute path to the root of the repo containing
// the current working directory.
func RepoRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", xerrors.Errorf("could not get current working directory: %w", err)
	}
	return RepoRootFromPath(wd)
}

// RepoRootFromPath returns the absolute path to the root of the repo
// containing p. Both regular repositories (a ".git" directory) and bare
// repositories (a "HEAD" file at the root) are recognized.
func RepoRootFromPath(p string) (string, error) {
	prev := ""
	for p != prev {
		info, err := os.Stat(filepath.Join(p, gitpath.DotGitPath))
		if err == nil && info.IsDir() {
			return p, nil
		}

		info, err = os.Stat(filepath.Join(p, gitpath.HEADPath))
		if err == nil && !info.IsDir() && info.Size() > 0 {
			return p, nil
		}

		prev = p
		p = filepath.Dir(p)
	}
	return "", ErrNoRepo
}

// WorkingTree returns the absolute path to the working tree containing
// the current working directory.
func WorkingTree() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", xerrors.Errorf("could not get current working directory: %w", err)
	}
	return WorkingTreeFromPath(wd)
}

// WorkingTreeFromPath returns the absolute path to the root of the
// working tree containing p. Bare repositories have no working tree and
// are never matched.
func WorkingTreeFromPath(p string) (string, error) {
	prev := ""
	for p != prev {
		info, err := os.Stat(filepath.Join(p, gitpath.DotGitPath))
		if err == nil && info.IsDir() {
			return p, nil
		}

		prev = p
		p = filepath.Dir(p)
	}
	return "", ErrNoRepo
}
