package config

import (
	"time"

	"github.com/arthur-debert/modkeeper/pkg/deploy"
	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/paths"
	"github.com/arthur-debert/modkeeper/pkg/version"
)

// Paths holds the locations modkeeper works with
type Paths struct {
	GameDir       string `koanf:"game_dir"`
	BackupRoot    string `koanf:"backup_root"`
	VersionFile   string `koanf:"version_file"`
	DisplayTweaks string `koanf:"display_tweaks"`
	OverwriteDir  string `koanf:"overwrite_dir"`
	Downloads     string `koanf:"downloads"`
}

// Remote holds the modpack's published endpoints
type Remote struct {
	VersionURL   string        `koanf:"version_url"`
	ChangelogURL string        `koanf:"changelog_url"`
	DownloadURL  string        `koanf:"download_url"`
	OrderURL     string        `koanf:"order_url"`
	Timeout      time.Duration `koanf:"timeout"`
	UserAgent    string        `koanf:"user_agent"`
}

// Version holds version record settings
type Version struct {
	Default string `koanf:"default"`
}

// Display holds display settings file options
type Display struct {
	Section      string `koanf:"section"`
	BackupSuffix string `koanf:"backup_suffix"`
}

// Deploy holds preset deployment options
type Deploy struct {
	Staged bool `koanf:"staged"`
}

// Config is the main configuration structure
type Config struct {
	Manifest []string `koanf:"manifest"`
	Paths    Paths    `koanf:"paths"`
	Remote   Remote   `koanf:"remote"`
	Version  Version  `koanf:"version"`
	Display  Display  `koanf:"display"`
	Deploy   Deploy   `koanf:"deploy"`
}

// Validate reports the first setting that cannot work
func (c *Config) Validate() error {
	if c.Paths.GameDir == "" {
		return errors.New(errors.ErrConfigValid, "paths.game_dir is not set").
			WithDetail("key", "paths.game_dir")
	}
	if err := deploy.Manifest(c.Manifest).Validate(); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid manifest").
			WithDetail("key", "manifest")
	}
	if !version.IsValid(c.Version.Default) {
		return errors.Newf(errors.ErrConfigValid, "version.default %q is not a valid version", c.Version.Default).
			WithDetail("key", "version.default")
	}
	if c.Remote.Timeout <= 0 {
		return errors.New(errors.ErrConfigValid, "remote.timeout must be positive").
			WithDetail("key", "remote.timeout")
	}
	if c.Display.Section == "" {
		return errors.New(errors.ErrConfigValid, "display.section is empty").
			WithDetail("key", "display.section")
	}
	return nil
}

// GameDir returns the game directory with ~ expanded
func (c *Config) GameDir() string {
	return paths.ExpandHome(c.Paths.GameDir)
}

// BackupRoot returns the resolved preset backup root
func (c *Config) BackupRoot() string {
	return paths.Resolve(c.GameDir(), c.Paths.BackupRoot)
}

// VersionFile returns the resolved version record path
func (c *Config) VersionFile() string {
	return paths.Resolve(c.GameDir(), c.Paths.VersionFile)
}

// DisplayTweaksFile returns the resolved display settings file
func (c *Config) DisplayTweaksFile() string {
	return paths.Resolve(c.GameDir(), c.Paths.DisplayTweaks)
}

// OverwriteDir returns the resolved mod manager overwrite directory
func (c *Config) OverwriteDir() string {
	return paths.Resolve(c.GameDir(), c.Paths.OverwriteDir)
}

// DownloadDir returns where update artifacts go
func (c *Config) DownloadDir() string {
	if c.Paths.Downloads == "" {
		return paths.DownloadDir()
	}
	return paths.Resolve(c.GameDir(), c.Paths.Downloads)
}
