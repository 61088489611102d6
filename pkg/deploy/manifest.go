package deploy

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/modkeeper/pkg/errors"
)

// Manifest is the fixed list of paths, relative to the game directory, that
// a preset may own
type Manifest []string

// DefaultManifest is the set of files and directories an ENB preset consists of
func DefaultManifest() Manifest {
	return Manifest{
		"enbseries",
		"reshade-shaders",
		"d3d11.dll",
		"d3dcompiler_46e.dll",
		"enblocal.ini",
		"enbseries.ini",
		"dxgi.dll",
	}
}

// Validate checks that every entry is a clean relative path inside the
// game directory and that no entry repeats
func (m Manifest) Validate() error {
	if len(m) == 0 {
		return errors.New(errors.ErrInvalidInput, "manifest is empty")
	}

	seen := make(map[string]bool, len(m))
	for _, entry := range m {
		if err := validateEntry(entry); err != nil {
			return err
		}
		if seen[entry] {
			return errors.Newf(errors.ErrInvalidInput, "duplicate manifest entry %q", entry).
				WithDetail(errors.DetailPath, entry)
		}
		seen[entry] = true
	}

	for _, a := range m {
		for _, b := range m {
			if a != b && strings.HasPrefix(b, a+"/") {
				return errors.Newf(errors.ErrInvalidInput, "manifest entry %q is nested in %q", b, a).
					WithDetail(errors.DetailPath, b)
			}
		}
	}
	return nil
}

// Contains reports whether rel is one of the manifest entries
func (m Manifest) Contains(rel string) bool {
	for _, entry := range m {
		if entry == rel {
			return true
		}
	}
	return false
}

func validateEntry(entry string) error {
	invalid := func(reason string) error {
		return errors.Newf(errors.ErrInvalidInput, "manifest entry %q %s", entry, reason).
			WithDetail(errors.DetailPath, entry)
	}

	switch {
	case strings.TrimSpace(entry) == "":
		return invalid("is empty")
	case filepath.IsAbs(entry) || strings.HasPrefix(entry, "/") || strings.HasPrefix(entry, `\`):
		return invalid("is absolute")
	case strings.Contains(entry, `\`):
		return invalid("uses backslashes")
	case filepath.ToSlash(filepath.Clean(entry)) != entry:
		return invalid("is not clean")
	case entry == ".." || strings.HasPrefix(entry, "../"):
		return invalid("leaves the game directory")
	case entry == "." || strings.HasPrefix(entry, StagingDirName):
		return invalid("is reserved")
	}
	return nil
}
