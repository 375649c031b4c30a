package fsbackend

import (
	"github.com/colinmarc/gitcore/ginternals"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// defaultDescription is the content git itself writes into a freshly
// initialized repository's description file.
const defaultDescription = "Unnamed repository; edit this file 'description' to name the repository.\n"

// Init creates the directory layout and default config of a fresh
// repository.
func (b *Backend) Init() error {
	dirs := []string{
		ginternals.ObjectsPath(b.cfg),
		ginternals.TagsPath(b.cfg),
		ginternals.LocalBranchesPath(b.cfg),
		ginternals.BranchesPath(b.cfg),
	}
	for _, d := range dirs {
		if err := b.fs.MkdirAll(d, 0o750); err != nil {
			return xerrors.Errorf("could not create directory %s: %w", d, err)
		}
	}

	descPath := ginternals.DescriptionFilePath(b.cfg)
	if err := afero.WriteFile(b.fs, descPath, []byte(defaultDescription), 0o644); err != nil {
		return xerrors.Errorf("could not create description file: %w", err)
	}

	if err := b.cfg.Files().Save(); err != nil {
		return xerrors.Errorf("could not persist default config: %w", err)
	}
	return nil
}
