package versionstore

import (
	"fmt"

	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/inifile"
	"github.com/arthur-debert/modkeeper/pkg/logging"
	"github.com/arthur-debert/modkeeper/pkg/version"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const (
	// DefaultVersion is written when no usable record exists
	DefaultVersion = "1.0.0"
	// FileName is the conventional name of the record file
	FileName = "version.ini"

	section = "Version"
	key     = "local"
)

// ReconcileHook is called after a successful Save with the previous and
// the new version. It runs on the caller's goroutine.
type ReconcileHook func(oldVersion, newVersion string) error

// Option configures a Store
type Option func(*Store)

// WithDefault sets the version written when the record needs repair.
// Values that are not valid records are ignored.
func WithDefault(v string) Option {
	return func(s *Store) {
		if version.IsValid(v) {
			s.defaultVersion = v
		} else {
			s.logger.Warn().Str("version", v).Msg("ignoring invalid default version")
		}
	}
}

// WithHook registers the reconciliation hook
func WithHook(hook ReconcileHook) Option {
	return func(s *Store) {
		s.hook = hook
	}
}

// Store reads and writes the local version record
type Store struct {
	fs             afero.Fs
	path           string
	defaultVersion string
	hook           ReconcileHook
	logger         zerolog.Logger

	loaded bool
	cached string
}

// New creates a Store for the record at path
func New(fs afero.Fs, path string, opts ...Option) *Store {
	s := &Store{
		fs:             fs,
		path:           path,
		defaultVersion: DefaultVersion,
		logger:         logging.GetLogger("versionstore").With().Str("path", path).Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the record file location
func (s *Store) Path() string {
	return s.path
}

// OnReconcile replaces the reconciliation hook
func (s *Store) OnReconcile(hook ReconcileHook) {
	s.hook = hook
}

// Load returns the recorded version, reading the record on first use
func (s *Store) Load() string {
	if s.loaded {
		return s.cached
	}

	v, err := s.read()
	if err != nil {
		s.logger.Warn().Err(err).Str("version", s.defaultVersion).Msg("repairing version record")
		v = s.defaultVersion
		if werr := s.write(v); werr != nil {
			s.logger.Error().Err(werr).Msg("failed to repair version record")
		}
	} else {
		s.logger.Debug().Str("version", v).Msg("loaded version record")
	}

	s.cached = v
	s.loaded = true
	return v
}

// Reload drops the cached value and reads the record again
func (s *Store) Reload() string {
	s.loaded = false
	s.cached = ""
	return s.Load()
}

// Save replaces the record with newVersion and runs the hook. The record
// and the cache are both updated before the hook is called; a failing hook
// does not undo the save.
func (s *Store) Save(newVersion string) error {
	if !version.IsValid(newVersion) {
		return errors.Newf(errors.ErrInvalidFormat, "invalid version %q", newVersion).
			WithDetail("version", newVersion)
	}

	old := s.Load()
	if err := s.write(newVersion); err != nil {
		return err
	}
	s.cached = newVersion
	s.loaded = true

	s.logger.Info().
		Str("old", old).
		Str("version", newVersion).
		Msg("version record updated")

	s.runHook(old, newVersion)
	return nil
}

func (s *Store) read() (string, error) {
	doc, err := inifile.Open(s.fs, s.path, section)
	if err != nil {
		return "", err
	}

	v, ok := doc.Get(section, key)
	if !ok {
		return "", errors.Newf(errors.ErrNotFound, "no %s.%s in %s", section, key, s.path)
	}
	if !version.IsValid(v) {
		return "", errors.Newf(errors.ErrInvalidFormat, "malformed version %q", v)
	}
	return v, nil
}

func (s *Store) write(v string) error {
	doc, err := inifile.Open(s.fs, s.path, section)
	if err != nil {
		// An unparseable record is replaced wholesale
		doc, err = inifile.Parse("", section)
		if err != nil {
			return err
		}
		doc.WithFs(s.fs, s.path)
	}

	doc.Set(section, key, v)
	return doc.Save()
}

func (s *Store) runHook(oldVersion, newVersion string) {
	if s.hook == nil {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().
				Str("panic", fmt.Sprint(r)).
				Msg("reconciliation hook panicked")
		}
	}()

	if err := s.hook(oldVersion, newVersion); err != nil {
		s.logger.Error().Err(err).Msg("reconciliation hook failed")
	}
}
