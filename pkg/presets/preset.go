package presets

import (
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// MetadataFile is the optional descriptor inside a preset directory
const MetadataFile = "preset.toml"

// Metadata describes a preset for listings. All fields are optional.
type Metadata struct {
	Name        string `toml:"name" json:"name,omitempty"`
	Description string `toml:"description" json:"description,omitempty"`
	Author      string `toml:"author" json:"author,omitempty"`
}

// Preset is a named directory under the backup root
type Preset struct {
	Name     string   `json:"name"`
	Path     string   `json:"path"`
	Metadata Metadata `json:"metadata"`
}

// DisplayName prefers the metadata name over the directory name
func (p Preset) DisplayName() string {
	if p.Metadata.Name != "" {
		return p.Metadata.Name
	}
	return p.Name
}

// Entry returns the location of a managed path inside the preset
func (p Preset) Entry(rel string) string {
	return filepath.Join(p.Path, rel)
}

func readMetadata(fs afero.Fs, dir string) (Metadata, error) {
	var meta Metadata

	data, err := afero.ReadFile(fs, filepath.Join(dir, MetadataFile))
	if err != nil {
		return meta, err
	}
	if err := toml.Unmarshal(data, &meta); err != nil {
		return meta, err
	}
	return meta, nil
}
