package inifile

import (
	"bytes"
	"os"
	"strings"

	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/filesystem"
	"github.com/arthur-debert/modkeeper/pkg/logging"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

func init() {
	// key=value, which is what the game plugins read back
	ini.PrettyFormat = false
}

var loadOptions = ini.LoadOptions{
	AllowBooleanKeys:         true,
	SpaceBeforeInlineComment: true,
}

// Document is a normalized INI file opened for editing
type Document struct {
	fs             afero.Fs
	path           string
	defaultSection string
	file           *ini.File
}

// Open reads, normalizes and parses the INI file at path. When normalization
// changed the file it is rewritten in place before parsing. A missing file
// yields an empty document holding only defaultSection.
func Open(fsys afero.Fs, path, defaultSection string) (*Document, error) {
	logger := logging.GetLogger("inifile").With().Str("path", path).Logger()

	raw, err := afero.ReadFile(fsys, path)
	if os.IsNotExist(err) {
		logger.Debug().Msg("file missing, starting empty document")
		doc := &Document{fs: fsys, path: path, defaultSection: defaultSection, file: ini.Empty(loadOptions)}
		doc.file.Section(defaultSection)
		return doc, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path).
			WithDetail(errors.DetailPath, path)
	}

	text := Normalize(raw, defaultSection)
	if text != string(raw) {
		if err := filesystem.WriteFileAtomic(fsys, path, []byte(text), 0644); err != nil {
			logger.Warn().Err(err).Msg("could not write normalized file back")
		} else {
			logger.Info().Msg("normalized file in place")
		}
	}

	doc, err := Parse(text, defaultSection)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path).
			WithDetail(errors.DetailPath, path)
	}
	doc.fs = fsys
	doc.path = path
	return doc, nil
}

// Parse builds a detached document from text. The text is normalized first.
func Parse(text, defaultSection string) (*Document, error) {
	f, err := ini.LoadSources(loadOptions, []byte(Normalize([]byte(text), defaultSection)))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "invalid ini content")
	}
	return &Document{defaultSection: defaultSection, file: f}, nil
}

// Path is the file the document was opened from
func (d *Document) Path() string {
	return d.path
}

// Get returns the value of key in section. Key names match case-insensitively
// since the files are shared with tools that lowercase them.
func (d *Document) Get(section, key string) (string, bool) {
	k := d.lookup(section, key)
	if k == nil {
		return "", false
	}
	return k.String(), true
}

// GetBool returns key as a boolean, or fallback when it is missing or
// not a recognised boolean word.
func (d *Document) GetBool(section, key string, fallback bool) bool {
	k := d.lookup(section, key)
	if k == nil {
		return fallback
	}
	v, err := k.Bool()
	if err != nil {
		return fallback
	}
	return v
}

// Set stores value under key, creating the section if needed. An existing
// key with different case is updated in place.
func (d *Document) Set(section, key, value string) {
	if k := d.lookup(section, key); k != nil {
		k.SetValue(value)
		return
	}
	d.file.Section(section).Key(key).SetValue(value)
}

// Sections lists the named sections in file order
func (d *Document) Sections() []string {
	var names []string
	for _, s := range d.file.Sections() {
		if s.Name() == ini.DefaultSection {
			continue
		}
		names = append(names, s.Name())
	}
	return names
}

// Bytes renders the document as UTF-8 without a byte order mark
func (d *Document) Bytes() ([]byte, error) {
	if len(d.Sections()) == 0 {
		d.file.Section(d.defaultSection)
	}

	var buf bytes.Buffer
	if _, err := d.file.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render ini document")
	}
	out := bytes.TrimRight(buf.Bytes(), "\n")
	return append(out, '\n'), nil
}

// Save writes the document back to the file it was opened from
func (d *Document) Save() error {
	if d.path == "" {
		return errors.New(errors.ErrInvalidInput, "document has no path")
	}
	return d.SaveTo(d.path)
}

// SaveTo writes the document to path through a temp file and rename
func (d *Document) SaveTo(path string) error {
	if d.fs == nil {
		return errors.New(errors.ErrInvalidInput, "document has no filesystem")
	}
	data, err := d.Bytes()
	if err != nil {
		return err
	}
	if err := filesystem.WriteFileAtomic(d.fs, path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail(errors.DetailPath, path)
	}
	logger := logging.GetLogger("inifile")
	logger.Debug().Str("path", path).Msg("saved ini document")
	return nil
}

// WithFs attaches a filesystem and path to a detached document
func (d *Document) WithFs(fsys afero.Fs, path string) *Document {
	d.fs = fsys
	d.path = path
	return d
}

func (d *Document) lookup(section, key string) *ini.Key {
	sec, err := d.file.GetSection(section)
	if err != nil {
		return nil
	}
	if sec.HasKey(key) {
		return sec.Key(key)
	}
	for _, k := range sec.Keys() {
		if strings.EqualFold(k.Name(), key) {
			return k
		}
	}
	return nil
}
