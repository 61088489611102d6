// Package filesystem provides the filesystem primitives modkeeper builds on.
//
// Everything operates on an afero.Fs so the same code runs against the real
// disk (NewOS) and against in-memory or failure-injecting filesystems in
// tests. The package holds the metadata-preserving file copy, the merging
// directory-tree copy, single-path removal and the temp-then-rename write.
package filesystem
