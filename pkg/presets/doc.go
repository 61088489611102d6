// Package presets manages the backup root that holds graphics presets.
//
// Each immediate subdirectory of the root is one preset. A preset may carry
// a preset.toml with descriptive metadata; everything else in it is content
// that the deployer copies into the game directory.
package presets
