package preset

// Message constants
const (
	MsgShort = "List, install and switch ENB presets"
	MsgLong  = `Presets are directories in the backup root (paths.backup_root), each holding
some of the files and directories named in the manifest. Applying a preset
first removes every manifest path from the game directory and then copies the
preset's files in. Files outside the manifest are never touched.

A preset may carry a preset.toml with name, description and author fields.`

	MsgListShort    = "List the presets in the backup root"
	MsgInstallShort = "Copy a preset directory into the backup root"
	MsgApplyShort   = "Replace the managed files in the game directory with a preset"
	MsgApplyLong    = `Apply purges every manifest path from the game directory and copies the
preset's files in. Manifest paths the preset does not provide stay absent.

With --staged the preset is first copied next to the game files and only
moved into place once the copy succeeded, so a failed copy leaves the game
directory untouched.`
	MsgRemoveShort = "Remove every managed file from the game directory"

	MsgFlagName      = "Preset name (default: the source directory's name)"
	MsgFlagOverwrite = "Replace an existing preset with the same name"
	MsgFlagYes       = "Do not ask for confirmation"
	MsgFlagStaged    = "Copy into a staging directory before touching live files"

	MsgConfirmOverwrite = "Preset %q exists. Replace it?"
	MsgConfirmRemove    = "Remove all managed files from %s?"
	MsgInstalled        = "Installed preset %s"
	MsgCancelled        = "Cancelled."

	MsgExample = `  modkeeper preset list
  modkeeper preset install ~/Downloads/Rudy --name rudy
  modkeeper preset apply rudy
  modkeeper preset remove --yes`
)
