package presets

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/filesystem"
	"github.com/arthur-debert/modkeeper/pkg/logging"
	"github.com/arthur-debert/modkeeper/pkg/paths"
	"github.com/spf13/afero"
)

// Registry lists, resolves and installs presets under a backup root
type Registry struct {
	fs   afero.Fs
	root string
}

// New creates a Registry rooted at root. The root need not exist yet.
func New(fs afero.Fs, root string) *Registry {
	return &Registry{fs: fs, root: root}
}

// Root returns the backup root directory
func (r *Registry) Root() string {
	return r.root
}

// EnsureRoot creates the backup root if needed and reports whether it did
func (r *Registry) EnsureRoot() (bool, error) {
	if filesystem.IsDir(r.fs, r.root) {
		return false, nil
	}
	if err := r.fs.MkdirAll(r.root, 0755); err != nil {
		return false, errors.Wrapf(err, errors.ErrDirCreate, "failed to create backup root %s", r.root).
			WithDetail(errors.DetailPath, r.root)
	}

	logger := logging.GetLogger("presets")
	logger.Info().Str("path", r.root).Msg("created backup root")
	return true, nil
}

// List returns the preset names in lexicographic order. Plain files in the
// root and a missing root both contribute nothing.
func (r *Registry) List() ([]string, error) {
	entries, err := afero.ReadDir(r.fs, r.root)
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to read backup root %s", r.root).
			WithDetail(errors.DetailPath, r.root)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Describe is List with each preset resolved and its metadata read
func (r *Registry) Describe() ([]Preset, error) {
	names, err := r.List()
	if err != nil {
		return nil, err
	}

	out := make([]Preset, 0, len(names))
	for _, name := range names {
		out = append(out, r.preset(name))
	}
	return out, nil
}

// Get resolves a preset by name
func (r *Registry) Get(name string) (Preset, error) {
	if err := ValidateName(name); err != nil {
		return Preset{}, err
	}

	dir := filepath.Join(r.root, name)
	if !filesystem.IsDir(r.fs, dir) {
		return Preset{}, errors.Newf(errors.ErrNotFound, "preset %q not found", name).
			WithDetail(errors.DetailPreset, name).
			WithDetail(errors.DetailPath, dir)
	}
	return r.preset(name), nil
}

// Install copies sourceDir into the root as preset name. An existing preset
// with that name is left alone unless overwrite is set, in which case it is
// removed first. A failed copy leaves no partial preset behind.
func (r *Registry) Install(sourceDir, name string, overwrite bool) error {
	logger := logging.GetLogger("presets").With().
		Str("preset", name).
		Str("source", sourceDir).
		Logger()

	if err := ValidateName(name); err != nil {
		return err
	}
	if !filesystem.IsDir(r.fs, sourceDir) {
		return errors.Newf(errors.ErrNotFound, "source directory %s not found", sourceDir).
			WithDetail(errors.DetailPath, sourceDir)
	}

	dest := filepath.Join(r.root, name)
	if paths.IsWithin(sourceDir, dest) || paths.IsWithin(dest, sourceDir) {
		return errors.Newf(errors.ErrInvalidInput, "source %s overlaps preset %s", sourceDir, dest).
			WithDetail(errors.DetailPath, sourceDir)
	}

	exists, err := filesystem.Exists(r.fs, dest)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "failed to check %s", dest)
	}
	if exists {
		if !overwrite {
			return errors.Newf(errors.ErrAlreadyExists, "preset %q already exists", name).
				WithDetail(errors.DetailPreset, name).
				WithDetail(errors.DetailPath, dest)
		}
		if _, err := filesystem.RemovePath(r.fs, dest); err != nil {
			return errors.DeleteFailed(err, dest).WithDetail(errors.DetailPreset, name)
		}
		logger.Info().Str("path", dest).Msg("removed existing preset")
	}

	if _, err := r.EnsureRoot(); err != nil {
		return err
	}

	if err := filesystem.CopyTree(r.fs, sourceDir, dest); err != nil {
		if _, cleanupErr := filesystem.RemovePath(r.fs, dest); cleanupErr != nil {
			logger.Error().Err(cleanupErr).Str("path", dest).Msg("failed to clean up partial preset")
		}
		return errors.CopyFailed(err, dest).WithDetail(errors.DetailPreset, name)
	}

	logger.Info().Str("path", dest).Msg("preset installed")
	return nil
}

// ValidateName rejects names that are not a single path element
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errors.New(errors.ErrInvalidInput, "preset name is empty")
	case name == "." || name == "..":
		return errors.Newf(errors.ErrInvalidInput, "invalid preset name %q", name)
	case strings.ContainsAny(name, `/\`):
		return errors.Newf(errors.ErrInvalidInput, "preset name %q contains a path separator", name)
	}
	return nil
}

func (r *Registry) preset(name string) Preset {
	p := Preset{Name: name, Path: filepath.Join(r.root, name)}

	meta, err := readMetadata(r.fs, p.Path)
	switch {
	case err == nil:
		p.Metadata = meta
	case !os.IsNotExist(err):
		logger := logging.GetLogger("presets")
		logger.Warn().
			Err(err).
			Str("preset", name).
			Msg("ignoring unreadable preset metadata")
	}
	return p
}
