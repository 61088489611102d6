package version

// Message constants
const (
	MsgShort = "Show build information and the local modpack version"
	MsgLong  = `Without arguments, version prints modkeeper's build information and, when a
game directory is configured, the recorded local modpack version.

"version set" records a version by hand, for instance after installing an
update outside modkeeper. Versions are dot-separated numbers such as 2.3.1.`
	MsgSetShort = "Record the local modpack version by hand"

	MsgBuildFormat = "modkeeper version %s\n  commit: %s\n  built:  %s\n"
	MsgLocalFormat = "  modpack: %s\n"
	MsgSetDone     = "Local version set to %s"

	MsgExample = `  modkeeper version
  modkeeper version set 2.3.1`
)
