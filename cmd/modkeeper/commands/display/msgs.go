package display

// Message constants
const (
	MsgShort = "Show or change the SSE Display Tweaks render settings"
	MsgLong  = `Display edits the resolution and window mode in SSEDisplayTweaks.ini. After
saving, the file is copied into the mod manager's overwrite directory so the
change wins over other mods; an existing copy there is kept with a .bak suffix.

Fullscreen and borderless are exclusive; --windowed clears both.`

	MsgShowShort = "Show the current display settings"
	MsgSetShort  = "Change the display settings"

	MsgFlagResolution = "Resolution as WIDTHxHEIGHT, e.g. 2560x1440"
	MsgFlagFullscreen = "Use exclusive fullscreen"
	MsgFlagBorderless = "Use a borderless window"
	MsgFlagWindowed   = "Use a regular window"

	MsgErrNothingToSet = "nothing to change; pass --resolution, --fullscreen, --borderless or --windowed"

	MsgExample = `  modkeeper display show
  modkeeper display set --resolution 2560x1440 --borderless`
)
