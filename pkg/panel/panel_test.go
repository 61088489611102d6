// pkg/panel/panel_test.go
// TEST TYPE: Integration Tests
// DEPENDENCIES: In-memory filesystem, httptest server, temp dir for downloads
// PURPOSE: Test the controller wiring: status, updates, reconciliation, presets, order

package panel_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/modkeeper/pkg/config"
	"github.com/arthur-debert/modkeeper/pkg/deploy"
	"github.com/arthur-debert/modkeeper/pkg/displaytweaks"
	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/panel"
	"github.com/arthur-debert/modkeeper/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const game = "/game"

type server struct {
	version   string
	changelog string
	order     string
	downloads int
}

func (s *server) start(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		if s.version == "" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"version": "` + s.version + `"}`))
	})
	mux.HandleFunc("/changelog", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(s.changelog))
	})
	mux.HandleFunc("/order", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(s.order))
	})
	mux.HandleFunc("/pack.7z", func(w http.ResponseWriter, r *http.Request) {
		s.downloads++
		_, _ = w.Write([]byte("archive"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newPanel(t *testing.T, s *server, opts ...panel.Option) (*panel.Panel, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	testutil.WriteTree(t, fs, game, testutil.Tree{
		"SkyrimSE.exe": "game",
		"version.ini":  "[Version]\nlocal=1.2.0\n",
	})

	srv := s.start(t)
	cfg := config.Default()
	cfg.Paths.GameDir = game
	cfg.Paths.Downloads = t.TempDir()
	cfg.Remote.VersionURL = srv.URL + "/version"
	cfg.Remote.ChangelogURL = srv.URL + "/changelog"
	cfg.Remote.DownloadURL = srv.URL + "/pack.7z"
	cfg.Remote.OrderURL = srv.URL + "/order"

	p, err := panel.New(cfg, fs, opts...)
	require.NoError(t, err)
	return p, fs
}

func TestNew_Errors(t *testing.T) {
	cfg := config.Default()
	_, err := panel.New(cfg, afero.NewMemMapFs())
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))

	cfg.Paths.GameDir = "/missing"
	_, err = panel.New(cfg, afero.NewMemMapFs())
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Equal(t, "/missing", errors.GetErrorPath(err))
}

func TestCheckUpdate(t *testing.T) {
	tests := []struct {
		name      string
		remote    string
		known     bool
		available bool
		changelog string
	}{
		{"newer", "1.3", true, true, "fixes"},
		{"same", "1.2", true, false, ""},
		{"older", "1.1.9", true, false, ""},
		{"unknown", "", false, false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newPanel(t, &server{version: tt.remote, changelog: "fixes"})

			check := p.CheckUpdate(context.Background())
			assert.Equal(t, "1.2.0", check.Local)
			assert.Equal(t, tt.known, check.Known)
			assert.Equal(t, tt.available, check.Available)
			assert.Equal(t, tt.changelog, check.Changelog)
		})
	}
}

func TestApplyUpdate(t *testing.T) {
	s := &server{version: "1.3.0"}
	var refreshed []panel.Status
	p, fs := newPanel(t, s, panel.WithStatusListener(func(st panel.Status) {
		refreshed = append(refreshed, st)
	}))

	res, err := p.ApplyUpdate(context.Background(), false, nil)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", res.From)
	assert.Equal(t, "1.3.0", res.To)
	assert.Equal(t, 1, s.downloads)

	data, err := os.ReadFile(res.Artifact)
	require.NoError(t, err)
	assert.Equal(t, "archive", string(data))

	raw, err := afero.ReadFile(fs, filepath.Join(game, "version.ini"))
	require.NoError(t, err)
	assert.Equal(t, "[Version]\nlocal=1.3.0\n", string(raw))

	require.Len(t, refreshed, 1)
	assert.Equal(t, "1.3.0", refreshed[0].LocalVersion)
	assert.False(t, refreshed[0].UpdateAvailable)
}

func TestApplyUpdate_UpToDate(t *testing.T) {
	s := &server{version: "1.2"}
	p, _ := newPanel(t, s)

	res, err := p.ApplyUpdate(context.Background(), false, nil)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", res.To)
	assert.Empty(t, res.Artifact)
	assert.Zero(t, s.downloads)

	res, err = p.ApplyUpdate(context.Background(), true, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, s.downloads)
	assert.Equal(t, "1.2", res.To)
	assert.Equal(t, "1.2", p.LocalVersion())
}

func TestApplyUpdate_UnknownRemote(t *testing.T) {
	s := &server{}
	p, _ := newPanel(t, s)

	_, err := p.ApplyUpdate(context.Background(), true, nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	assert.Zero(t, s.downloads)
	assert.Equal(t, "1.2.0", p.LocalVersion())
}

func TestSetVersion_RefreshesStatus(t *testing.T) {
	var got panel.Status
	p, _ := newPanel(t, &server{version: "2.0"}, panel.WithStatusListener(func(st panel.Status) {
		got = st
	}))

	p.CheckUpdate(context.Background())
	require.NoError(t, p.SetVersion("2.0.0"))
	assert.Equal(t, "2.0.0", got.LocalVersion)
	assert.Equal(t, "2.0", got.RemoteVersion)
	assert.False(t, got.UpdateAvailable)

	require.NoError(t, p.SetVersion("1.9"))
	assert.True(t, got.UpdateAvailable)

	err := p.SetVersion("v2")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidFormat))
	assert.Equal(t, "1.9", p.LocalVersion())
}

func TestPresetLifecycle(t *testing.T) {
	p, fs := newPanel(t, &server{version: "1.2.0"})
	testutil.WriteTree(t, fs, "/downloads/Silent Horizons", testutil.Tree{
		"enbseries/effect.fx": "fx",
		"enblocal.ini":        "local",
		"d3d11.dll":           "dll",
		"preset.toml":         "name = \"Silent Horizons\"\nauthor = \"someone\"\n",
	})

	name, err := p.InstallPreset("/downloads/Silent Horizons", "", false)
	require.NoError(t, err)
	assert.Equal(t, "Silent Horizons", name)

	list, err := p.Presets()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "someone", list[0].Metadata.Author)

	res, err := p.ApplyPreset(name)
	require.NoError(t, err)
	assert.Equal(t, deploy.PhaseDone, res.Phase)
	assert.ElementsMatch(t, []string{"enbseries", "enblocal.ini", "d3d11.dll"}, res.Installed)

	st := p.Status(context.Background())
	assert.Equal(t, []string{"Silent Horizons"}, st.Presets)
	assert.Equal(t, []string{"Silent Horizons"}, st.ActivePresets)
	assert.ElementsMatch(t, []string{"enbseries", "enblocal.ini", "d3d11.dll"}, st.ActivePaths)

	// a hand-edited file of the same size no longer matches the preset
	require.NoError(t, afero.WriteFile(fs, filepath.Join(game, "enblocal.ini"), []byte("LOCAL"), 0644))
	assert.Empty(t, p.Status(context.Background()).ActivePresets)

	res, err = p.RemovePreset()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"enbseries", "enblocal.ini", "d3d11.dll"}, res.Removed)

	st = p.Status(context.Background())
	assert.Empty(t, st.ActivePaths)
	assert.Empty(t, st.ActivePresets)
	exists, _ := afero.Exists(fs, filepath.Join(game, "SkyrimSE.exe"))
	assert.True(t, exists)
}

func TestApplyPreset_Unknown(t *testing.T) {
	p, _ := newPanel(t, &server{})
	_, err := p.ApplyPreset("nope")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestDisplay(t *testing.T) {
	p, fs := newPanel(t, &server{})
	_, err := p.DisplaySettings()
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))

	settings := filepath.Join(game, "mods/SSE Display Tweaks/SKSE/Plugins/SSEDisplayTweaks.ini")
	require.NoError(t, afero.WriteFile(fs, settings, []byte("[Render]\nResolution=1280x720\n"), 0644))

	res := "2560x1440"
	s, err := p.SetDisplay(displaytweaks.Update{Resolution: &res})
	require.NoError(t, err)
	assert.Equal(t, "2560x1440", s.Resolution)

	mirrored, err := afero.ReadFile(fs, p.DisplayMirrorPath())
	require.NoError(t, err)
	assert.Contains(t, string(mirrored), "Resolution=2560x1440")
}

func TestUpdateOrder(t *testing.T) {
	p, fs := newPanel(t, &server{order: "# order\n+Ultimate\n+Skyrim\n"})

	dst, err := p.UpdateOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(game, "overwrite", panel.OrderFileName), dst)

	raw, err := afero.ReadFile(fs, dst)
	require.NoError(t, err)
	assert.Equal(t, "# order\n+Ultimate\n+Skyrim\n", string(raw))
}

func TestUpdateOrder_NotConfigured(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(game, 0755))
	cfg := config.Default()
	cfg.Paths.GameDir = game

	p, err := panel.New(cfg, fs)
	require.NoError(t, err)
	_, err = p.UpdateOrder(context.Background())
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}
