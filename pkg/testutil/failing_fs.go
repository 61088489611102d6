package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/afero"
)

// Op names a filesystem operation FailingFs can break
type Op string

const (
	OpCreate Op = "create"
	OpRemove Op = "remove"
	OpRename Op = "rename"
	OpMkdir  Op = "mkdir"
	OpStat   Op = "stat"
)

// FailingFs wraps an afero.Fs and returns EIO for the configured operations
// on paths that end with a configured suffix. Everything else passes
// through.
type FailingFs struct {
	afero.Fs
	rules map[Op][]string
}

// NewFailingFs wraps base
func NewFailingFs(base afero.Fs) *FailingFs {
	return &FailingFs{Fs: base, rules: map[Op][]string{}}
}

// Fail makes op fail on any path ending in suffix
func (f *FailingFs) Fail(op Op, suffix string) *FailingFs {
	f.rules[op] = append(f.rules[op], filepath.FromSlash(suffix))
	return f
}

func (f *FailingFs) check(op Op, name string) error {
	for _, suffix := range f.rules[op] {
		if strings.HasSuffix(filepath.Clean(name), suffix) {
			return &os.PathError{Op: string(op), Path: name, Err: syscall.EIO}
		}
	}
	return nil
}

func (f *FailingFs) Create(name string) (afero.File, error) {
	if err := f.check(OpCreate, name); err != nil {
		return nil, err
	}
	return f.Fs.Create(name)
}

func (f *FailingFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if flag&(os.O_CREATE|os.O_WRONLY|os.O_RDWR) != 0 {
		if err := f.check(OpCreate, name); err != nil {
			return nil, err
		}
	}
	return f.Fs.OpenFile(name, flag, perm)
}

func (f *FailingFs) Remove(name string) error {
	if err := f.check(OpRemove, name); err != nil {
		return err
	}
	return f.Fs.Remove(name)
}

func (f *FailingFs) RemoveAll(path string) error {
	if err := f.check(OpRemove, path); err != nil {
		return err
	}
	return f.Fs.RemoveAll(path)
}

func (f *FailingFs) Rename(oldname, newname string) error {
	if err := f.check(OpRename, newname); err != nil {
		return err
	}
	return f.Fs.Rename(oldname, newname)
}

func (f *FailingFs) Mkdir(name string, perm os.FileMode) error {
	if err := f.check(OpMkdir, name); err != nil {
		return err
	}
	return f.Fs.Mkdir(name, perm)
}

func (f *FailingFs) MkdirAll(path string, perm os.FileMode) error {
	if err := f.check(OpMkdir, path); err != nil {
		return err
	}
	return f.Fs.MkdirAll(path, perm)
}

func (f *FailingFs) Stat(name string) (os.FileInfo, error) {
	if err := f.check(OpStat, name); err != nil {
		return nil, err
	}
	return f.Fs.Stat(name)
}
