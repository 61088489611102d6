// Package remote talks to the modpack's published endpoints: the version
// document, the changelog, the load order and the update artifact.
//
// Metadata lookups are best effort. Any transport error, non-200 status or
// undecodable body means "unknown" and is logged, never returned, since the
// panel must keep working offline. Downloads do return errors.
package remote
