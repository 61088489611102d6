package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFile(t *testing.T) {
	t.Run("env_override", func(t *testing.T) {
		t.Setenv(EnvConfigFile, "/custom/modkeeper.toml")
		assert.Equal(t, "/custom/modkeeper.toml", ConfigFile())
	})

	t.Run("xdg_config_home", func(t *testing.T) {
		tmp := t.TempDir()
		t.Setenv(EnvConfigFile, "")
		t.Setenv("XDG_CONFIG_HOME", tmp)
		assert.Equal(t, filepath.Join(tmp, "modkeeper", "config.toml"), ConfigFile())
	})
}

func TestStateAndDataDirs(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvStateDir, "")
	t.Setenv(EnvDataDir, "")
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmp, "data"))

	assert.Equal(t, filepath.Join(tmp, "state", "modkeeper", "modkeeper.log"), LogFilePath())
	assert.Equal(t, filepath.Join(tmp, "data", "modkeeper", "downloads"), DownloadDir())

	t.Setenv(EnvDataDir, filepath.Join(tmp, "elsewhere"))
	assert.Equal(t, filepath.Join(tmp, "elsewhere"), DataDir())
}

func TestResolve(t *testing.T) {
	game := filepath.Join(string(filepath.Separator), "games", "skyrim")
	abs := filepath.Join(string(filepath.Separator), "srv", "backups")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty stays empty", "", ""},
		{"relative joins game dir", "ENB Backups", filepath.Join(game, "ENB Backups")},
		{"nested relative", filepath.Join("Data", "SKSE"), filepath.Join(game, "Data", "SKSE")},
		{"absolute kept", abs, abs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(game, tt.in))
		})
	}
}

func TestIsWithin(t *testing.T) {
	base := filepath.Join(string(filepath.Separator), "games", "skyrim")

	assert.True(t, IsWithin(base, base))
	assert.True(t, IsWithin(base, filepath.Join(base, "enbseries")))
	assert.False(t, IsWithin(base, filepath.Dir(base)))
	assert.False(t, IsWithin(base, filepath.Join(base, "..", "other")))
	assert.True(t, IsWithin(base, filepath.Join(base, "..data")))
}

func TestIsWithin_RelativePaths(t *testing.T) {
	game := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(game))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	backups := filepath.Join(game, "ENB Backups", "mine")
	assert.True(t, IsWithin(".", backups))
	assert.True(t, IsWithin(backups, filepath.Join("ENB Backups", "mine", "enbseries")))
	assert.False(t, IsWithin(backups, "."))
	assert.False(t, IsWithin(filepath.Join("ENB Backups", "mine"), filepath.Join(game, "enbseries")))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "games"), ExpandHome("~/games"))
	assert.Equal(t, "~other/games", ExpandHome("~other/games"))
	assert.Equal(t, "/abs", ExpandHome("/abs"))
}
