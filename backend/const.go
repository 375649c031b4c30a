package backend

// .git/config keys used by this backend.
const (
	CfgCore              = "core"
	CfgCoreFormatVersion = "repositoryformatversion"
	CfgCoreFileMode      = "filemode"
	CfgCoreBare          = "bare"
)
