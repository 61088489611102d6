// Package versionstore keeps the locally installed modpack version in a
// small INI record ([Version] local=<value>).
//
// The record is read once and cached. A missing, unreadable or malformed
// record is repaired by writing the default version back, so callers
// always get a usable value from Load. Save replaces the record atomically
// and then notifies an optional reconciliation hook.
package versionstore
