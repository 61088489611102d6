// Package deploy installs a preset's managed paths into a game directory.
//
// The game directory is shared with other tools, so the deployer only ever
// touches the paths named in its manifest. Apply first purges every managed
// path from the target and then copies in whichever managed paths the preset
// provides. Both phases stop at the first failure and report the path that
// failed together with the phase reached, so a partially changed target can
// be told apart from a clean success.
//
// With staging enabled the preset is copied into a hidden directory inside
// the target before anything live is touched. A failed copy then leaves the
// target unchanged; the purge and a per-path rename follow.
package deploy
