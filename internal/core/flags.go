package core

// EnvPrefix is the prefix for all environment variables read by the CLI.
const EnvPrefix = "BREWGEN_"

// Flags are the global CLI flags shared by all commands.
type Flags struct {
	LogLevel       string
	ConfigFilePath string
}
