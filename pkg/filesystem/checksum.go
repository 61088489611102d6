package filesystem

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/spf13/afero"
)

// Checksum returns the SHA256 checksum of a file as "sha256:<hex>"
func Checksum(fsys afero.Fs, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return fmt.Sprintf("sha256:%x", hash.Sum(nil)), nil
}

// SameContent reports whether two files hold identical bytes. Sizes are
// compared first so differing files are rarely read.
func SameContent(fsys afero.Fs, a, b string) (bool, error) {
	ia, err := fsys.Stat(a)
	if err != nil {
		return false, err
	}
	ib, err := fsys.Stat(b)
	if err != nil {
		return false, err
	}
	if ia.IsDir() || ib.IsDir() || ia.Size() != ib.Size() {
		return false, nil
	}

	sa, err := Checksum(fsys, a)
	if err != nil {
		return false, err
	}
	sb, err := Checksum(fsys, b)
	if err != nil {
		return false, err
	}
	return sa == sb, nil
}
