package panel

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/modkeeper/pkg/filesystem"
	"github.com/arthur-debert/modkeeper/pkg/presets"
)

// Status is a snapshot of the local installation
type Status struct {
	GameDir         string   `json:"game_dir"`
	LocalVersion    string   `json:"local_version"`
	RemoteVersion   string   `json:"remote_version,omitempty"`
	RemoteKnown     bool     `json:"remote_known"`
	UpdateAvailable bool     `json:"update_available"`
	ActivePaths     []string `json:"active_paths"`
	ActivePresets   []string `json:"active_presets"`
	Presets         []string `json:"presets"`
}

// Status refreshes and returns the full status, querying the remote version
func (p *Panel) Status(ctx context.Context) Status {
	p.RemoteVersion(ctx)
	p.refresh(p.store.Load())

	p.status.GameDir = p.cfg.GameDir()
	p.status.ActivePaths = p.deployer.Present(p.cfg.GameDir())
	p.status.Presets = []string{}
	p.status.ActivePresets = []string{}

	described, err := p.registry.Describe()
	if err != nil {
		p.logger.Warn().Err(err).Msg("could not list presets")
		return p.status
	}
	for _, preset := range described {
		p.status.Presets = append(p.status.Presets, preset.Name)
		if p.matches(preset, p.status.ActivePaths) {
			p.status.ActivePresets = append(p.status.ActivePresets, preset.Name)
		}
	}
	return p.status
}

// matches reports whether the game directory holds exactly the managed
// paths preset provides, with identical content for the files among them
func (p *Panel) matches(preset presets.Preset, active []string) bool {
	if len(active) == 0 {
		return false
	}

	provided := map[string]bool{}
	for _, entry := range p.deployer.Manifest() {
		if ok, _ := filesystem.Exists(p.fs, preset.Entry(entry)); ok {
			provided[entry] = true
		}
	}
	if len(provided) != len(active) {
		return false
	}

	for _, entry := range active {
		if !provided[entry] {
			return false
		}
		if filesystem.IsDir(p.fs, preset.Entry(entry)) {
			continue
		}
		same, err := filesystem.SameContent(p.fs, preset.Entry(entry), filepath.Join(p.cfg.GameDir(), entry))
		if err != nil || !same {
			return false
		}
	}
	return true
}
