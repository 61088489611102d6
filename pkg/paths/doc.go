// Package paths provides centralized path handling for modkeeper.
//
// It resolves where modkeeper keeps its own files, following the XDG Base
// Directory specification through github.com/adrg/xdg, and maps the game
// installation layout (backup root, version record, display settings) onto
// absolute paths.
//
// # Environment Variables
//
//   - MODKEEPER_CONFIG: explicit path of the user configuration file
//   - MODKEEPER_DATA_DIR: override the XDG data directory (default: $XDG_DATA_HOME/modkeeper)
//   - MODKEEPER_STATE_DIR: override the XDG state directory (default: $XDG_STATE_HOME/modkeeper)
//
// Game-relative paths in the configuration are resolved with Resolve, which
// leaves absolute paths alone and joins relative ones onto the game directory.
package paths
