// Package gitcore implements a minimal, on-disk Git-compatible object
// store: repository discovery and layout, the object and KVLM codecs,
// a content-addressed object store with partial-hash resolution, and a
// working-tree bridge (checkout, tree building, commit, tag).
package gitcore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/colinmarc/gitcore/backend"
	"github.com/colinmarc/gitcore/backend/fsbackend"
	"github.com/colinmarc/gitcore/ginternals"
	"github.com/colinmarc/gitcore/ginternals/config"
	"github.com/colinmarc/gitcore/ginternals/object"
	"github.com/colinmarc/gitcore/internal/gitpath"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Repository is a handle on a Git repository: its object store, its
// references, and (unless bare) its working tree.
type Repository struct {
	fs  afero.Fs
	cfg *config.Config
	be  backend.Backend
}

// Open loads an existing repository by ascending from path looking for
// a ".git" directory, exactly as the git CLI does, then validates its
// config. ErrNotARepository is returned if no ancestor of path contains
// a ".git" directory; ErrUnsupportedFormat is returned if
// core.repositoryformatversion isn't 0.
func Open(fs afero.Fs, path string) (*Repository, error) {
	root, err := findRepoRoot(fs, path)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfigSkipEnv(config.LoadConfigOptions{
		FS:               fs,
		WorkingDirectory: root,
		GitDirPath:       filepath.Join(root, gitpath.DotGitPath),
		SkipGitDirLookUp: true,
	})
	if err != nil {
		return nil, xerrors.Errorf("could not load config: %w", err)
	}

	if version, ok := cfg.Files().RepoFormatVersion(); ok && version != 0 {
		return nil, ginternals.ErrUnsupportedFormat
	}

	be, err := fsbackend.New(cfg)
	if err != nil {
		return nil, xerrors.Errorf("could not open object store: %w", err)
	}

	return &Repository{fs: fs, cfg: cfg, be: be}, nil
}

// findRepoRoot ascends from start looking for a directory containing
// ".git", stopping at the filesystem root.
func findRepoRoot(fs afero.Fs, start string) (string, error) {
	dir := start
	for {
		isDir, err := afero.DirExists(fs, filepath.Join(dir, gitpath.DotGitPath))
		if err != nil {
			return "", xerrors.Errorf("could not check %s: %w", dir, err)
		}
		if isDir {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ginternals.ErrNotARepository
		}
		dir = parent
	}
}

// Init creates a new repository at path: the ".git" directory and its
// skeleton subdirectories, a symbolic HEAD pointing at refs/heads/master,
// a default config, and a default description.
//
// path may already exist as long as it's an empty directory (mirroring
// the behavior of git's own create_repo, which tolerates a pre-existing
// empty target); a directory with any entry in it, ".git" included, is
// ErrNotEmpty, and an existing non-directory is ErrNotADirectory.
func Init(fs afero.Fs, path string) (*Repository, error) {
	info, err := fs.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return nil, ginternals.ErrNotADirectory
		}
		entries, err := afero.ReadDir(fs, path)
		if err != nil {
			return nil, xerrors.Errorf("could not list %s: %w", path, err)
		}
		if len(entries) > 0 {
			return nil, ginternals.ErrNotEmpty
		}
	case !os.IsNotExist(err):
		return nil, xerrors.Errorf("could not check %s: %w", path, err)
	}

	cfg, err := config.LoadConfigSkipEnv(config.LoadConfigOptions{
		FS:               fs,
		WorkingDirectory: path,
		GitDirPath:       filepath.Join(path, gitpath.DotGitPath),
		SkipGitDirLookUp: true,
	})
	if err != nil {
		return nil, xerrors.Errorf("could not build config: %w", err)
	}

	be, err := fsbackend.New(cfg)
	if err != nil {
		return nil, xerrors.Errorf("could not create object store: %w", err)
	}
	if err := be.Init(); err != nil {
		return nil, xerrors.Errorf("could not initialize repository: %w", err)
	}

	head := ginternals.NewSymbolicReference(ginternals.Head, ginternals.LocalBranchFullName(ginternals.Master))
	if err := be.WriteReference(head); err != nil {
		return nil, xerrors.Errorf("could not write HEAD: %w", err)
	}

	return &Repository{fs: fs, cfg: cfg, be: be}, nil
}

// InternalPath computes the path of subparts joined under ".git". If
// create is true, the parent directory chain is created if missing; a
// non-directory found where a directory is expected is ErrNotADirectory.
func (r *Repository) InternalPath(subparts []string, create bool) (string, error) {
	p := filepath.Join(append([]string{r.cfg.GitDirPath}, subparts...)...)
	if !create {
		return p, nil
	}

	dir := filepath.Dir(p)
	info, err := r.fs.Stat(dir)
	switch {
	case err == nil:
		if !info.IsDir() {
			return "", ginternals.ErrNotADirectory
		}
	case os.IsNotExist(err):
		if mkErr := r.fs.MkdirAll(dir, 0o750); mkErr != nil {
			return "", xerrors.Errorf("could not create directory %s: %w", dir, mkErr)
		}
	default:
		return "", xerrors.Errorf("could not check directory %s: %w", dir, err)
	}
	return p, nil
}

// IsBare reports whether the repository has no working tree.
func (r *Repository) IsBare() bool {
	return r.cfg.WorkTreePath == ""
}

// WorkTreePath returns the absolute path of the repository's working
// tree, or "" for a bare repository.
func (r *Repository) WorkTreePath() string {
	return r.cfg.WorkTreePath
}

// Object returns the object identified by id.
func (r *Repository) Object(id ginternals.Oid) (*object.Object, error) {
	return r.be.Object(id)
}

// WriteObject persists o to the object store and returns its id.
func (r *Repository) WriteObject(o *object.Object) (ginternals.Oid, error) {
	return r.be.WriteObject(o)
}

// HasObject reports whether id exists in the object store.
func (r *Repository) HasObject(id ginternals.Oid) (bool, error) {
	return r.be.HasObject(id)
}

// Resolve resolves name to an object id. HEAD and names starting with
// "refs/" are resolved as references, following symbolic references to
// their target; anything else is treated as a (possibly partial) hex
// object name, per ginternals.ResolveName.
func (r *Repository) Resolve(name string) (ginternals.Oid, error) {
	if name == ginternals.Head || strings.HasPrefix(name, "refs/") {
		ref, err := r.be.Reference(name)
		if err == nil {
			return ref.Target(), nil
		}
		if !xerrors.Is(err, ginternals.ErrRefNotFound) {
			return ginternals.NullOid, err
		}
	}
	return ginternals.ResolveName(r.be, name)
}
