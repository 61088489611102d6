package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the default config location at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("MODKEEPER_CONFIG", "")
	return dir
}

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []string{
		"enbseries", "reshade-shaders", "d3d11.dll", "d3dcompiler_46e.dll",
		"enblocal.ini", "enbseries.ini", "dxgi.dll",
	}, cfg.Manifest)
	assert.Equal(t, "", cfg.Paths.GameDir)
	assert.Equal(t, "version.ini", cfg.Paths.VersionFile)
	assert.Equal(t, 5*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, "1.0.0", cfg.Version.Default)
	assert.Equal(t, "Render", cfg.Display.Section)
	assert.Equal(t, ".bak", cfg.Display.BackupSuffix)
	assert.False(t, cfg.Deploy.Staged)
}

func TestLoad_DefaultsOnly(t *testing.T) {
	isolate(t)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_UserFileAtDefaultLocation(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "modkeeper"), 0755))
	writeConfig(t, filepath.Join(dir, "modkeeper"), `
[paths]
game_dir = "/games/Skyrim"

[remote]
timeout = "2s"
`)

	cfg, err := Load(LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "/games/Skyrim", cfg.Paths.GameDir)
	assert.Equal(t, 2*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, "version.ini", cfg.Paths.VersionFile, "unset keys keep their defaults")
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), `
manifest = ["d3d11.dll", "enbseries"]

[deploy]
staged = true
`)

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"d3d11.dll", "enbseries"}, cfg.Manifest)
	assert.True(t, cfg.Deploy.Staged)
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	isolate(t)

	_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_BadToml(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "[paths\ngame_dir = ")

	_, err := Load(LoadOptions{ConfigFile: path})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "[paths]\ngame_dir = \"/from/file\"\n")
	t.Setenv("MODKEEPER_PATHS_GAME_DIR", "/from/env")
	t.Setenv("MODKEEPER_REMOTE_VERSION_URL", "http://localhost/version")
	t.Setenv("MODKEEPER_DEPLOY_STAGED", "true")
	t.Setenv("MODKEEPER_MANIFEST", "d3d11.dll,dxgi.dll")

	cfg, err := Load(LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.Paths.GameDir)
	assert.Equal(t, "http://localhost/version", cfg.Remote.VersionURL)
	assert.True(t, cfg.Deploy.Staged)
	assert.Equal(t, []string{"d3d11.dll", "dxgi.dll"}, cfg.Manifest)
}

func TestLoad_OverridesWin(t *testing.T) {
	isolate(t)
	t.Setenv("MODKEEPER_PATHS_GAME_DIR", "/from/env")

	cfg, err := Load(LoadOptions{Overrides: map[string]interface{}{"paths.game_dir": "/from/flag"}})
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.Paths.GameDir)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "paths.game_dir", envKey("MODKEEPER_PATHS_GAME_DIR"))
	assert.Equal(t, "remote.user_agent", envKey("MODKEEPER_REMOTE_USER_AGENT"))
	assert.Equal(t, "manifest", envKey("MODKEEPER_MANIFEST"))
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Paths.GameDir = "/games/Skyrim"
		return cfg
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"no game dir", func(c *Config) { c.Paths.GameDir = "" }, "paths.game_dir"},
		{"empty manifest", func(c *Config) { c.Manifest = nil }, "manifest"},
		{"escaping manifest", func(c *Config) { c.Manifest = []string{"../x"} }, "manifest"},
		{"bad default version", func(c *Config) { c.Version.Default = "one" }, "version.default"},
		{"zero timeout", func(c *Config) { c.Remote.Timeout = 0 }, "remote.timeout"},
		{"no display section", func(c *Config) { c.Display.Section = "" }, "display.section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
			assert.Equal(t, tt.key, errors.GetErrorDetails(err)["key"])
		})
	}
}

func TestResolvedPaths(t *testing.T) {
	t.Setenv("MODKEEPER_DATA_DIR", "/data/modkeeper")
	cfg := Default()
	cfg.Paths.GameDir = "/games/Skyrim"
	cfg.Paths.OverwriteDir = "/mo2/overwrite"

	assert.Equal(t, "/games/Skyrim", cfg.GameDir())
	assert.Equal(t, "/games/Skyrim/ENB Backups", cfg.BackupRoot())
	assert.Equal(t, "/games/Skyrim/version.ini", cfg.VersionFile())
	assert.Equal(t, "/games/Skyrim/mods/SSE Display Tweaks/SKSE/Plugins/SSEDisplayTweaks.ini", cfg.DisplayTweaksFile())
	assert.Equal(t, "/mo2/overwrite", cfg.OverwriteDir())
	assert.Equal(t, "/data/modkeeper/downloads", cfg.DownloadDir())

	cfg.Paths.Downloads = "dl"
	assert.Equal(t, "/games/Skyrim/dl", cfg.DownloadDir())
}
