package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// CopyFile copies a single file, keeping its permission bits and
// modification time. An existing destination file is truncated.
func CopyFile(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return &fs.PathError{Op: "copy", Path: src, Err: fmt.Errorf("is a directory")}
	}

	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := fsys.Chmod(dst, info.Mode().Perm()); err != nil {
		return err
	}
	return fsys.Chtimes(dst, info.ModTime(), info.ModTime())
}

// CopyTree copies the directory src into dst recursively. Directories that
// already exist under dst are merged into; files are overwritten.
func CopyTree(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "copytree", Path: src, Err: fmt.Errorf("not a directory")}
	}

	return afero.Walk(fsys, src, func(path string, fi fs.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if fi.IsDir() {
			return fsys.MkdirAll(target, fi.Mode().Perm()|0700)
		}
		return CopyFile(fsys, path, target)
	})
}

// Copy copies src to dst, dispatching on whether src is a file or directory
func Copy(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return CopyTree(fsys, src, dst)
	}
	return CopyFile(fsys, src, dst)
}
