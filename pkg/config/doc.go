// Package config loads modkeeper's configuration.
//
// Values are layered, later layers overriding earlier ones:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the user file, $XDG_CONFIG_HOME/modkeeper/config.toml unless
//     MODKEEPER_CONFIG or --config points elsewhere
//  3. MODKEEPER_* environment variables (MODKEEPER_PATHS_GAME_DIR sets
//     paths.game_dir)
//  4. command-line overrides
package config
