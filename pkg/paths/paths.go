package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	EnvConfigFile = "MODKEEPER_CONFIG"
	EnvDataDir    = "MODKEEPER_DATA_DIR"
	EnvStateDir   = "MODKEEPER_STATE_DIR"
	EnvHome       = "HOME"
)

// Fixed names inside modkeeper's own directories. These are not configurable.
const (
	AppDirName     = "modkeeper"
	ConfigFileName = "config.toml"
	LogFileName    = "modkeeper.log"
	DownloadsDir   = "downloads"
)

// ConfigFile returns the user configuration file path
func ConfigFile() string {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return ExpandHome(p)
	}
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// DataDir returns the XDG data directory for modkeeper
func DataDir() string {
	if p := os.Getenv(EnvDataDir); p != "" {
		return ExpandHome(p)
	}
	xdg.Reload()
	return filepath.Join(xdg.DataHome, AppDirName)
}

// StateDir returns the XDG state directory for modkeeper
func StateDir() string {
	if p := os.Getenv(EnvStateDir); p != "" {
		return ExpandHome(p)
	}
	xdg.Reload()
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path of the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// DownloadDir returns where update artifacts are downloaded to
func DownloadDir() string {
	return filepath.Join(DataDir(), DownloadsDir)
}

// Resolve maps a configured path onto the game directory. Absolute paths and
// paths starting with ~ are returned expanded but otherwise unchanged.
func Resolve(gameDir, p string) string {
	if p == "" {
		return ""
	}
	p = ExpandHome(p)
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(gameDir, p)
}

// IsWithin reports whether path lies inside (or is) base. Relative
// arguments are resolved against the working directory first.
func IsWithin(base, path string) bool {
	base, path = absolute(base), absolute(path)
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func absolute(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// ExpandHome expands ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
