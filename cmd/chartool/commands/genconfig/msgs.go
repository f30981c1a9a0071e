package genconfig

// Message constants
const (
	MsgShort   = "Print or install the default configuration file"
	MsgLong    = "Output the built-in configuration to stdout, or with -w write it to the user\nconfig file ($XDG_CONFIG_HOME/chartool/config.toml). An existing file is never\noverwritten."
	MsgExample = `  chartool gen-config                 # Output to stdout
  chartool gen-config -w              # Write to the user config file`
	MsgFlagWrite = "Write config to the user config file instead of stdout"
	MsgWritten   = "Wrote default configuration to %s"
	MsgExists    = "%s already exists, left untouched"
)
