package filesystem

import (
	"github.com/spf13/afero"
)

// NewOS creates a filesystem backed by the operating system
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory creates an in-memory filesystem, used by tests and dry runs
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}
