// Package fsbackend implements backend.Backend on top of a filesystem,
// real or in-memory, through afero.
package fsbackend

import (
	"github.com/colinmarc/gitcore/backend"
	"github.com/colinmarc/gitcore/ginternals/config"
	"github.com/colinmarc/gitcore/internal/cache"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

var _ backend.Backend = (*Backend)(nil)

// defaultCacheSize is the number of decoded objects kept in memory
// between lookups.
const defaultCacheSize = 256

// Backend is a backend.Backend implementation backed by a .git
// directory.
type Backend struct {
	fs  afero.Fs
	cfg *config.Config

	// gitDirPath is the path to the .git directory (or the bare
	// repository root).
	gitDirPath string
	// objectDirPath is the path to the object database, usually
	// gitDirPath/objects.
	objectDirPath string

	cache *cache.LRU
}

// New returns a new filesystem-backed Backend rooted at cfg.
func New(cfg *config.Config) (*Backend, error) {
	c, err := cache.NewLRU(defaultCacheSize)
	if err != nil {
		return nil, xerrors.Errorf("could not create object cache: %w", err)
	}
	return &Backend{
		fs:            cfg.FS,
		cfg:           cfg,
		gitDirPath:    cfg.GitDirPath,
		objectDirPath: cfg.ObjectDirPath,
		cache:         c,
	}, nil
}
