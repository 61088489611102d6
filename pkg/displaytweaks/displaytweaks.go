// Package displaytweaks edits the render settings of the SSE Display Tweaks
// plugin and mirrors the result into the mod manager's overwrite directory,
// where the game actually picks it up.
package displaytweaks

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/filesystem"
	"github.com/arthur-debert/modkeeper/pkg/inifile"
	"github.com/arthur-debert/modkeeper/pkg/logging"
	"github.com/spf13/afero"
)

const (
	// FileName is the plugin's settings file
	FileName = "SSEDisplayTweaks.ini"

	DefaultSection      = "Render"
	DefaultBackupSuffix = ".bak"

	keyResolution = "Resolution"
	keyFullscreen = "Fullscreen"
	keyBorderless = "Borderless"
)

var resolutionPattern = regexp.MustCompile(`^[0-9]+x[0-9]+$`)

// Settings are the render options modkeeper manages
type Settings struct {
	Resolution string `json:"resolution"` // empty when unset
	Fullscreen bool   `json:"fullscreen"`
	Borderless bool   `json:"borderless"`
}

// Update carries the fields to change; nil fields are left alone
type Update struct {
	Resolution *string
	Fullscreen *bool
	Borderless *bool
}

// Option configures a Manager
type Option func(*Manager)

// WithSection changes the INI section holding the settings
func WithSection(section string) Option {
	return func(m *Manager) {
		if section != "" {
			m.section = section
		}
	}
}

// WithBackupSuffix changes the suffix of the overwrite backup copy
func WithBackupSuffix(suffix string) Option {
	return func(m *Manager) {
		if suffix != "" {
			m.backupSuffix = suffix
		}
	}
}

// Manager reads and writes one settings file
type Manager struct {
	fs           afero.Fs
	path         string
	overwriteDir string
	section      string
	backupSuffix string
}

// New creates a Manager for the settings file at path. With an empty
// overwriteDir saved settings are not mirrored.
func New(fs afero.Fs, path, overwriteDir string, opts ...Option) *Manager {
	m := &Manager{
		fs:           fs,
		path:         path,
		overwriteDir: overwriteDir,
		section:      DefaultSection,
		backupSuffix: DefaultBackupSuffix,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Path returns the settings file location
func (m *Manager) Path() string {
	return m.path
}

// MirrorPath returns where saved settings are copied to, or "" if disabled
func (m *Manager) MirrorPath() string {
	if m.overwriteDir == "" {
		return ""
	}
	return filepath.Join(m.overwriteDir, "SKSE", "Plugins", FileName)
}

// ValidateResolution checks the WIDTHxHEIGHT form
func ValidateResolution(res string) error {
	if !resolutionPattern.MatchString(res) {
		return errors.Newf(errors.ErrInvalidInput, "resolution %q is not in WIDTHxHEIGHT form, e.g. 1920x1080", res).
			WithDetail("resolution", res)
	}
	return nil
}

// Read returns the current settings. A missing file means the plugin is
// not installed and is reported as NotFound.
func (m *Manager) Read() (Settings, error) {
	doc, err := m.open()
	if err != nil {
		return Settings{}, err
	}
	return m.settings(doc), nil
}

// Apply validates u, writes it to the settings file and mirrors the file
// into the overwrite directory, keeping a backup of the previous mirror.
func (m *Manager) Apply(u Update) (Settings, error) {
	logger := logging.GetLogger("displaytweaks").With().Str("path", m.path).Logger()

	if u.Resolution != nil && *u.Resolution != "" {
		if err := ValidateResolution(*u.Resolution); err != nil {
			return Settings{}, err
		}
	}

	doc, err := m.open()
	if err != nil {
		return Settings{}, err
	}

	next := m.settings(doc)
	if u.Resolution != nil && *u.Resolution != "" {
		next.Resolution = *u.Resolution
	}
	if u.Fullscreen != nil {
		next.Fullscreen = *u.Fullscreen
	}
	if u.Borderless != nil {
		next.Borderless = *u.Borderless
	}
	if next.Fullscreen && next.Borderless {
		return Settings{}, errors.New(errors.ErrInvalidInput, "fullscreen and borderless cannot both be enabled")
	}

	if next.Resolution != "" {
		doc.Set(m.section, keyResolution, next.Resolution)
	}
	doc.Set(m.section, keyFullscreen, strconv.FormatBool(next.Fullscreen))
	doc.Set(m.section, keyBorderless, strconv.FormatBool(next.Borderless))

	if err := doc.Save(); err != nil {
		return Settings{}, err
	}
	logger.Info().
		Str("resolution", next.Resolution).
		Bool("fullscreen", next.Fullscreen).
		Bool("borderless", next.Borderless).
		Msg("display settings saved")

	if err := m.mirror(); err != nil {
		return next, err
	}
	return next, nil
}

func (m *Manager) open() (*inifile.Document, error) {
	if _, err := m.fs.Stat(m.path); os.IsNotExist(err) {
		return nil, errors.Newf(errors.ErrNotFound, "%s not found, is SSE Display Tweaks installed?", m.path).
			WithDetail(errors.DetailPath, m.path)
	}
	return inifile.Open(m.fs, m.path, m.section)
}

func (m *Manager) settings(doc *inifile.Document) Settings {
	res, _ := doc.Get(m.section, keyResolution)
	return Settings{
		Resolution: res,
		Fullscreen: doc.GetBool(m.section, keyFullscreen, false),
		Borderless: doc.GetBool(m.section, keyBorderless, false),
	}
}

func (m *Manager) mirror() error {
	dst := m.MirrorPath()
	if dst == "" {
		return nil
	}
	logger := logging.GetLogger("displaytweaks").With().Str("path", dst).Logger()

	if err := m.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", filepath.Dir(dst)).
			WithDetail(errors.DetailPath, filepath.Dir(dst))
	}

	exists, err := filesystem.Exists(m.fs, dst)
	if err != nil {
		return errors.CopyFailed(err, dst)
	}
	if exists {
		backup := dst + m.backupSuffix
		if err := filesystem.CopyFile(m.fs, dst, backup); err != nil {
			return errors.CopyFailed(err, backup)
		}
		logger.Debug().Str("backup", backup).Msg("backed up previous overwrite copy")
	}

	if err := filesystem.CopyFile(m.fs, m.path, dst); err != nil {
		return errors.CopyFailed(err, dst)
	}
	logger.Info().Msg("mirrored display settings into overwrite directory")
	return nil
}
