package main

import (
	gitcore "github.com/colinmarc/gitcore"
	"github.com/colinmarc/gitcore/ginternals/object"
	"github.com/pkg/errors"
)

// loadRepository opens the repository containing cfg.path.
func loadRepository(cfg *rootFlags) (*gitcore.Repository, error) {
	r, err := gitcore.Open(cfg.fs, cfg.path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open repository")
	}
	return r, nil
}

// authorFromEnv builds a commit/tag signature from GIT_AUTHOR_NAME and
// GIT_AUTHOR_EMAIL, the same override variables the real git CLI reads.
func authorFromEnv(cfg *rootFlags) (object.Signature, error) {
	name := cfg.env.Get("GIT_AUTHOR_NAME")
	email := cfg.env.Get("GIT_AUTHOR_EMAIL")
	if name == "" || email == "" {
		return object.Signature{}, errors.New("GIT_AUTHOR_NAME and GIT_AUTHOR_EMAIL must be set")
	}
	return object.NewSignature(name, email), nil
}
