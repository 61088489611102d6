package update

// Message constants
const (
	MsgShort = "Check for and apply modpack updates"
	MsgLong  = "Compare the local modpack version with the published one, download the update\nand fetch the published mod load order."

	MsgCheckShort = "Compare the remote version with the local one and show the changelog"
	MsgApplyShort = "Download the update and record the new local version"
	MsgApplyLong  = `Apply downloads the update artifact into the download directory and then
records the published version as the local version. Nothing is recorded when
the download fails. With --force the artifact is downloaded even when the
local version is current.`
	MsgOrderShort = "Download the published mod load order into the overwrite directory"

	MsgFlagForce = "Download even when already up to date"

	MsgDownloading    = "Downloading update"
	MsgOrderWritten   = "Load order written to %s"
	MsgVersionChanged = "Local version is now %s"

	MsgExample = `  modkeeper update check
  modkeeper update apply
  modkeeper update order`
)
