package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// defaultLoadOption contains the params used to load the config file
//nolint:gochecknoglobals // It's a global because we
// don't want to have to redefine it all the time.
// Treat this as a const, don't ever change it from a method, even for
// testing.
var defaultLoadOption = ini.LoadOptions{
	SkipUnrecognizableLines: true,
}

// defaultConfig generates a basic default git config using the
// most common options
func defaultConfig() (*ini.File, error) {
	cfg := ini.Empty(defaultLoadOption)

	core := cfg.Section("core")
	coreCfg := map[string]string{
		"repositoryformatversion": "0",
		"filemode":                "true",
		"logallrefupdates":        "true",
		"ignorecase":              "true",
		"precomposeunicode":       "true",
	}
	for k, v := range coreCfg {
		if _, err := core.NewKey(k, v); err != nil {
			return nil, fmt.Errorf("could not set core.%s: %w", k, err)
		}
	}

	return cfg, nil
}

// FileAggregate represents the local config file (.git/config) backing
// a repository's core.repositoryformatversion, core.filemode and
// core.bare settings.
type FileAggregate struct {
	cfg   *Config
	local *ini.File
}

// Save persists the changes made to the config file.
// ini.File doesn't know about afero, so we serialize to a buffer and
// write it out through the configured filesystem ourselves.
func (cfg *FileAggregate) Save() error {
	buf := new(bytes.Buffer)
	if _, err := cfg.local.WriteTo(buf); err != nil {
		return fmt.Errorf("could not serialize config: %w", err)
	}

	fs := cfg.cfg.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if err := fs.MkdirAll(filepath.Dir(cfg.cfg.LocalConfig), 0o750); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}
	return afero.WriteFile(fs, cfg.cfg.LocalConfig, buf.Bytes(), 0o644)
}

// RepoFormatVersion returns the version of the format of the repo
func (cfg *FileAggregate) RepoFormatVersion() (version int, ok bool) {
	if !cfg.local.Section("core").HasKey("repositoryformatversion") {
		return 0, false
	}

	v, err := cfg.local.Section("core").Key("repositoryformatversion").Int()
	if err != nil {
		return 0, false
	}
	return v, true
}

// WorkTree returns the path of the work-tree.
func (cfg *FileAggregate) WorkTree() (workTree string, ok bool) {
	v := cfg.local.Section("core").Key("worktree").String()
	return v, v != ""
}

// IsBare returns whether the repository is bare or not.
func (cfg *FileAggregate) IsBare() (isBare, ok bool) {
	if !cfg.local.Section("core").HasKey("bare") {
		return false, false
	}

	v, err := cfg.local.Section("core").Key("bare").Bool()
	if err != nil {
		return false, false
	}
	return v, true
}

// FileMode returns whether the filesystem's executable bit should be
// trusted when comparing the working tree to the index.
func (cfg *FileAggregate) FileMode() (fileMode, ok bool) {
	if !cfg.local.Section("core").HasKey("filemode") {
		return false, false
	}

	v, err := cfg.local.Section("core").Key("filemode").Bool()
	if err != nil {
		return false, false
	}
	return v, true
}

// NewFileAggregate loads the local config file (cfg.LocalConfig), if
// it exists, and returns an object with accessors for it. If the file
// doesn't exist yet, a default in-memory config is used instead.
func NewFileAggregate(cfg *Config) (confFile *FileAggregate, err error) {
	confFile = &FileAggregate{cfg: cfg}

	_, statErr := cfg.FS.Stat(cfg.LocalConfig)
	switch {
	case statErr == nil:
		f, openErr := cfg.FS.Open(cfg.LocalConfig)
		if openErr != nil {
			return nil, fmt.Errorf("could not open file %s: %w", cfg.LocalConfig, openErr)
		}
		defer func() {
			//nolint:errcheck // it's expected to fail as the file is
			// already closed. go-ini closes it for us. This code is
			// only here to prevent a FD leak in case go-ini updates
			// its behavior and we don't see it / remember about it
			f.Close()
		}()

		confFile.local, err = ini.LoadSources(defaultLoadOption, f)
		if err != nil {
			return nil, fmt.Errorf("could not load config file %s: %w", cfg.LocalConfig, err)
		}
	case errors.Is(statErr, os.ErrNotExist):
		if confFile.local, err = defaultConfig(); err != nil {
			return nil, fmt.Errorf("could not create default local config: %w", err)
		}
	default:
		return nil, fmt.Errorf("could not check file %s: %w", cfg.LocalConfig, statErr)
	}

	return confFile, nil
}
