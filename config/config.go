package config

const (
	EmptyPath = ""

	DefaultFilename = "repoctl"
	DefaultFileType = "yaml"
	EnvPrefix       = "REPOCTL"
)

// Build information, set with -ldflags at build time.
var (
	BuildVersion = "dev"
	BuildCommit  = "unknown"
	BuildDate    = ""
)
