// Package config contains structs to interact with git configuration
// as well as to configure the library
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/colinmarc/gitcore/internal/gitpath"
	"github.com/colinmarc/gitcore/internal/pathutil"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// ErrNoWorkTreeAlone is thrown when a work tree path is given without
// a git path
var ErrNoWorkTreeAlone = xerrors.New("cannot specify a work tree without also specifying a git dir")

// Config represents the layout of a repository, plus the local
// config file (.git/config) backing core.repositoryformatversion,
// core.filemode and core.bare.
//
// If you decide to create a Config by yourself, make sure to set correct
// values everywhere
type Config struct {
	// FS represents the file system implementation to use to look for
	// files and directories.
	// Defaults to the regular filesystem.
	FS afero.Fs

	// fromFiles contains a reference to the config values held in
	// files
	fromFiles *FileAggregate

	// GitDirPath represents the path to the .git directory
	// Defaults to finding a ".git" folder in the current directory,
	// going up in the tree until reaching /
	GitDirPath string
	// WorkTreePath represents the path to the working tree
	// Defaults to the working directory if GitDirPath was set, or to the
	// directory containing the looked-up .git (i.e. $(GitDirPath)/..)
	// if it wasn't.
	WorkTreePath string
	// ObjectDirPath represents the path to the .git/objects directory
	// Defaults to $(GitDirPath)/objects
	ObjectDirPath string
	// LocalConfig represents the config file to load
	// Defaults to $(GitDirPath)/config if not set
	LocalConfig string
}

// Files returns the aggregate of the local config file that backs this
// Config. It's populated by LoadConfig and is nil on a zero-value
// Config.
func (p *Config) Files() *FileAggregate {
	return p.fromFiles
}

// LoadConfigOptions represents all the params used to set the default
// values of a Config object
type LoadConfigOptions struct {
	// FS represents the file system implementation to use to look for
	// files and directories.
	// Defaults to the regular filesystem.
	FS afero.Fs
	// WorkingDirectory represents the current working directory
	// Defaults to the current working directory
	WorkingDirectory string
	// WorkTreePath corresponds to the directory that should contain the .git.
	// Set this value to change the default behavior.
	WorkTreePath string
	// GitDirPath corresponds to the .git directory
	// Set this value to change the default behavior.
	GitDirPath string
	// IsBare defines if the repo is bare. It means that the repo has no
	// work tree
	IsBare bool
	// SkipGitDirLookUp will disable automatic lookup of the .git directory.
	// Defaults to false which means that if no path is provided
	// to $GitDirPath, the method will look for a .git dir in
	// $WorkingDirectory and will go up the tree until it finds one.
	//
	// You should only set this value to true if you want to initialize a
	// new repository.
	SkipGitDirLookUp bool
}

// LoadConfig resolves the repository layout (GitDirPath, WorkTreePath,
// ObjectDirPath, LocalConfig) from opts and loads the local config
// file it points at.
func LoadConfig(opts LoadConfigOptions) (*Config, error) {
	p := &Config{}
	if err := setConfig(p, opts); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadConfigSkipEnv is an alias of LoadConfig: this module never reads
// repository layout from the process environment, so there's nothing
// left for it to skip.
func LoadConfigSkipEnv(opts LoadConfigOptions) (*Config, error) {
	return LoadConfig(opts)
}

func setConfig(p *Config, opts LoadConfigOptions) (err error) {
	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}
	p.FS = opts.FS

	// FIXME(melvin): Ultimately we should get this from afero, but
	// there are no methods for that
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("could not get the current directory: %w", err)
	}
	if opts.WorkingDirectory == "" {
		opts.WorkingDirectory = wd
	}
	if !filepath.IsAbs(opts.WorkingDirectory) {
		opts.WorkingDirectory = filepath.Join(wd, opts.WorkingDirectory)
	}

	// --work-tree cannot be set without --git-dir
	if opts.GitDirPath == "" && opts.WorkTreePath != "" {
		return ErrNoWorkTreeAlone
	}

	// GitDir rules:
	// - opts.GitDirPath contains either nothing or a value to use
	//   directly.
	// - If nothing set, a .git directory will be looked for by walking up
	//   the current directory.
	// - If relative, the path will be appended to the current working
	//   directory.
	guessedWorkingTree := opts.WorkingDirectory
	switch opts.GitDirPath {
	default:
		p.GitDirPath = opts.GitDirPath
		if !filepath.IsAbs(p.GitDirPath) {
			p.GitDirPath = filepath.Join(opts.WorkingDirectory, p.GitDirPath)
		}
	case "":
		if !opts.SkipGitDirLookUp {
			guessedWorkingTree, err = pathutil.WorkingTreeFromPath(opts.WorkingDirectory)
			if err != nil {
				return fmt.Errorf("could not find working tree: %w", err)
			}
		}
		p.GitDirPath = filepath.Join(guessedWorkingTree, gitpath.DotGitPath)
	}

	// LocalConfig defaults to $(GitDirPath)/config.
	p.LocalConfig = filepath.Join(p.GitDirPath, gitpath.ConfigPath)

	// ObjectDirPath defaults to $(GitDirPath)/objects.
	p.ObjectDirPath = filepath.Join(p.GitDirPath, gitpath.ObjectsPath)

	p.fromFiles, err = NewFileAggregate(p)
	if err != nil {
		return fmt.Errorf("could not load config file: %w", err)
	}

	// Worktree rules:
	//
	// - core.worktree contains either nothing or the default path to
	//   the working tree.
	// - opts.WorkTreePath contains either nothing or a path to the
	//   working tree. It overrides core.worktree
	// - guessedWorkingTree contains either nothing or the path containing
	//   the .git directory. It's used as a fallback for opts.WorkTreePath
	// - Fallback on the current working directory
	//
	// If any path is relative, it will be relative to the current
	// working directory
	if path, ok := p.fromFiles.WorkTree(); ok {
		p.WorkTreePath = path
	}
	if opts.WorkTreePath != "" {
		p.WorkTreePath = opts.WorkTreePath
	}
	// if the repo is bare then we don't automatically set a working tree
	// if none are provided
	if p.WorkTreePath == "" && !opts.IsBare {
		p.WorkTreePath = guessedWorkingTree
	}
	if p.WorkTreePath != "" && !filepath.IsAbs(p.WorkTreePath) {
		p.WorkTreePath = filepath.Join(opts.WorkingDirectory, p.WorkTreePath)
	}

	return nil
}
