package ginternals

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/colinmarc/gitcore/ginternals/config"
)

// .git/ file and directory layout.
// Ref paths are kept in unix format since that's how they're stored on
// disk; backends convert to the host's separator when needed.
const (
	refsDirName      = "refs"
	refsTagsRelPath  = refsDirName + "/tags"
	refsHeadsRelPath = refsDirName + "/heads"
)

// LocalTagFullName returns the full name of a tag.
// ex. for `my-tag` returns `refs/tags/my-tag`
func LocalTagFullName(shortName string) string {
	return path.Join(refsTagsRelPath, shortName)
}

// LocalTagShortName returns the short name of a tag.
// ex. for refs/tags/my-tag returns my-tag
func LocalTagShortName(fullName string) string {
	return strings.TrimPrefix(fullName, refsTagsRelPath+"/")
}

// LocalBranchFullName returns the full name of a branch.
// ex. for `main` returns `refs/heads/main`
func LocalBranchFullName(shortName string) string {
	return path.Join(refsHeadsRelPath, shortName)
}

// LocalBranchShortName returns the short name of a branch.
// ex. for `refs/heads/main` returns `main`
func LocalBranchShortName(fullName string) string {
	return strings.TrimPrefix(fullName, refsHeadsRelPath+"/")
}

// RefFullName returns the unix path of a reference given its short name.
func RefFullName(shortName string) string {
	return path.Join(refsDirName, shortName)
}

// RefsPath returns the path to the directory that contains all the refs.
func RefsPath(cfg *config.Config) string {
	return filepath.Join(cfg.GitDirPath, refsDirName)
}

// TagsPath returns the path to the directory that contains the tags.
func TagsPath(cfg *config.Config) string {
	return filepath.Join(RefsPath(cfg), "tags")
}

// LocalBranchesPath returns the path to the directory containing the
// local branches.
func LocalBranchesPath(cfg *config.Config) string {
	return filepath.Join(RefsPath(cfg), "heads")
}

// BranchesPath returns the path to the (largely vestigial, pre-refs/heads)
// branches directory that's still part of the canonical repository layout.
func BranchesPath(cfg *config.Config) string {
	return filepath.Join(DotGitPath(cfg), "branches")
}

// DotGitPath returns the path to the .git directory.
func DotGitPath(cfg *config.Config) string {
	return cfg.GitDirPath
}

// HEADPath returns the path to the HEAD file.
func HEADPath(cfg *config.Config) string {
	return filepath.Join(cfg.GitDirPath, "HEAD")
}

// ObjectsPath returns the path to the directory that contains the
// object database.
func ObjectsPath(cfg *config.Config) string {
	return cfg.ObjectDirPath
}

// ConfigPath returns the path to the local config file.
func ConfigPath(cfg *config.Config) string {
	return cfg.LocalConfig
}

// DescriptionFilePath returns the path to the repository's description
// file.
func DescriptionFilePath(cfg *config.Config) string {
	return filepath.Join(DotGitPath(cfg), "description")
}

// LooseObjectPath returns the on-disk path of a loose object given its
// full hex id.
// Path is .git/objects/<first 2 hex chars>/<remaining 38 hex chars>
//
// ex. the path of fcfe68a0e44e04bd7fd564fc0b75f1ae457e18b3 is
// .git/objects/fc/fe68a0e44e04bd7fd564fc0b75f1ae457e18b3
func LooseObjectPath(cfg *config.Config, hexOid string) string {
	return filepath.Join(ObjectsPath(cfg), hexOid[:2], hexOid[2:])
}
