package config

const (
	CliConfigFileName    = "gridtable"
	DotCliConfigFileName = ".gridtable"

	// HomeConfigDir is relative to the user's home directory.
	HomeConfigDir = ".config/gridtable"

	EnvPrefix           = "GRIDTABLE"
	CliConfigPathEnvVar = "GRIDTABLE_CLI_CONFIG_PATH"
	DefaultLogsFile     = "/dev/stderr"
	DefaultLogsLevel    = "Info"

	// ColumnSpecSeparator splits `index=value` column flags.
	ColumnSpecSeparator = "="
)
