package status

// Message constants
const (
	MsgShort = "Show local and remote versions and the active preset"
	MsgLong  = `Status reports the recorded local modpack version, the published remote
version and whether an update is available. It also lists the presets in the
backup directory and marks the ones matching the files in the game directory.

The remote version shows as unknown when it cannot be fetched; status never
fails because the network is down.`
	MsgExample = `  modkeeper status
  modkeeper status --format json`
)
