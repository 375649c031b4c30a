package ginternals_test

import (
	"path/filepath"
	"testing"

	"github.com/colinmarc/gitcore/ginternals"
	"github.com/colinmarc/gitcore/ginternals/config"
	"github.com/stretchr/testify/require"
)

func TestLocalTagFullName(t *testing.T) {
	t.Parallel()

	out := ginternals.LocalTagFullName("my-tag/nested")
	require.Equal(t, "refs/tags/my-tag/nested", out)
}

func TestLocalTagShortName(t *testing.T) {
	t.Parallel()

	out := ginternals.LocalTagShortName("refs/tags/my-tag/nested")
	require.Equal(t, "my-tag/nested", out)
}

func TestLocalBranchFullName(t *testing.T) {
	t.Parallel()

	out := ginternals.LocalBranchFullName("my-branch/nested")
	require.Equal(t, "refs/heads/my-branch/nested", out)
}

func TestLocalBranchShortName(t *testing.T) {
	t.Parallel()

	out := ginternals.LocalBranchShortName("refs/heads/my-branch/nested")
	require.Equal(t, "my-branch/nested", out)
}

func TestRefFullName(t *testing.T) {
	t.Parallel()

	out := ginternals.RefFullName("HEAD")
	require.Equal(t, "refs/HEAD", out)
}

func TestRefsPath(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{GitDirPath: "common"}
	out := ginternals.RefsPath(cfg)
	require.Equal(t, filepath.Join("common", "refs"), out)
}

func TestTagsPath(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{GitDirPath: "common"}
	out := ginternals.TagsPath(cfg)
	require.Equal(t, filepath.Join("common", "refs", "tags"), out)
}

func TestLocalBranchesPath(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{GitDirPath: "common"}
	out := ginternals.LocalBranchesPath(cfg)
	require.Equal(t, filepath.Join("common", "refs", "heads"), out)
}

func TestDotGitPath(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{GitDirPath: ".git"}
	out := ginternals.DotGitPath(cfg)
	require.Equal(t, ".git", out)
}

func TestHEADPath(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{GitDirPath: ".git"}
	out := ginternals.HEADPath(cfg)
	require.Equal(t, filepath.Join(".git", "HEAD"), out)
}

func TestObjectsPath(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{ObjectDirPath: "objects"}
	out := ginternals.ObjectsPath(cfg)
	require.Equal(t, "objects", out)
}

func TestConfigPath(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{LocalConfig: "config"}
	out := ginternals.ConfigPath(cfg)
	require.Equal(t, "config", out)
}

func TestDescriptionFilePath(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{GitDirPath: ".git"}
	out := ginternals.DescriptionFilePath(cfg)
	require.Equal(t, filepath.Join(".git", "description"), out)
}

func TestLooseObjectPath(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{ObjectDirPath: "objects"}
	out := ginternals.LooseObjectPath(cfg, "fcfe68a0e44e04bd7fd564fc0b75f1ae457e18b3")
	require.Equal(t, filepath.Join("objects", "fc", "fe68a0e44e04bd7fd564fc0b75f1ae457e18b3"), out)
}
