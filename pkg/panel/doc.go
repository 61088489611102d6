// Package panel is the controller behind the modkeeper commands. It wires
// configuration to the version store, the preset registry, the deployer,
// the display settings manager and the remote client, and keeps a status
// snapshot that is refreshed whenever the version record is reconciled.
package panel
