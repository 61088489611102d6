package config

// Message constants
const (
	MsgShort     = "Inspect and create the modkeeper configuration"
	MsgInitShort = "Print the default configuration, or write it with --write"
	MsgInitLong  = `Init prints every setting with its default value commented out. With --write
the result is saved as the user config file; an existing file is only
replaced with --force.`
	MsgPathShort = "Print the config file location"

	MsgFlagWrite = "Write the config file instead of printing it"
	MsgFlagForce = "Replace an existing config file"

	MsgWritten = "Wrote %s"

	MsgExample = `  modkeeper config init
  modkeeper config init --write
  modkeeper config path`
)
