package panel

import (
	"context"
	"path/filepath"

	"github.com/arthur-debert/modkeeper/pkg/config"
	"github.com/arthur-debert/modkeeper/pkg/deploy"
	"github.com/arthur-debert/modkeeper/pkg/displaytweaks"
	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/filesystem"
	"github.com/arthur-debert/modkeeper/pkg/logging"
	"github.com/arthur-debert/modkeeper/pkg/presets"
	"github.com/arthur-debert/modkeeper/pkg/remote"
	"github.com/arthur-debert/modkeeper/pkg/version"
	"github.com/arthur-debert/modkeeper/pkg/versionstore"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// OrderFileName is the load order file written into the overwrite directory
const OrderFileName = "mod_order.txt"

// StatusListener receives the refreshed status after a reconciliation
type StatusListener func(Status)

// Option configures a Panel
type Option func(*Panel)

// WithRemote replaces the remote client
func WithRemote(c *remote.Client) Option {
	return func(p *Panel) {
		p.remote = c
	}
}

// WithStatusListener registers a listener for status refreshes
func WithStatusListener(l StatusListener) Option {
	return func(p *Panel) {
		p.listeners = append(p.listeners, l)
	}
}

// WithStaging overrides the configured deploy staging mode
func WithStaging(enabled bool) Option {
	return func(p *Panel) {
		p.staged = &enabled
	}
}

// Panel coordinates all modkeeper operations for one game directory
type Panel struct {
	cfg      *config.Config
	fs       afero.Fs
	store    *versionstore.Store
	registry *presets.Registry
	deployer *deploy.Deployer
	display  *displaytweaks.Manager
	remote   *remote.Client
	logger   zerolog.Logger

	staged    *bool
	listeners []StatusListener

	remoteVersion string
	remoteKnown   bool
	status        Status
}

// New validates cfg and builds a Panel on fs
func New(cfg *config.Config, fs afero.Fs, opts ...Option) (*Panel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	p := &Panel{
		cfg:    cfg,
		fs:     fs,
		logger: logging.GetLogger("panel"),
	}
	for _, opt := range opts {
		opt(p)
	}

	if !filesystem.IsDir(fs, cfg.GameDir()) {
		return nil, errors.Newf(errors.ErrNotFound, "game directory %s not found", cfg.GameDir()).
			WithDetail(errors.DetailPath, cfg.GameDir())
	}

	staged := cfg.Deploy.Staged
	if p.staged != nil {
		staged = *p.staged
	}
	deployer, err := deploy.New(fs, deploy.Manifest(cfg.Manifest), deploy.WithStaging(staged))
	if err != nil {
		return nil, err
	}
	p.deployer = deployer

	if p.remote == nil {
		p.remote = remote.NewClient(
			remote.WithTimeout(cfg.Remote.Timeout),
			remote.WithUserAgent(cfg.Remote.UserAgent),
		)
	}

	p.registry = presets.New(fs, cfg.BackupRoot())
	p.display = displaytweaks.New(fs, cfg.DisplayTweaksFile(), cfg.OverwriteDir(),
		displaytweaks.WithSection(cfg.Display.Section),
		displaytweaks.WithBackupSuffix(cfg.Display.BackupSuffix),
	)
	p.store = versionstore.New(fs, cfg.VersionFile(),
		versionstore.WithDefault(cfg.Version.Default),
		versionstore.WithHook(p.onReconcile),
	)

	return p, nil
}

// Config returns the configuration the panel was built from
func (p *Panel) Config() *config.Config {
	return p.cfg
}

// Registry exposes the preset registry
func (p *Panel) Registry() *presets.Registry {
	return p.registry
}

// LocalVersion returns the recorded local modpack version
func (p *Panel) LocalVersion() string {
	return p.store.Load()
}

// SetVersion reconciles the local record to v by hand
func (p *Panel) SetVersion(v string) error {
	return p.store.Save(v)
}

// RemoteVersion fetches the published version and remembers it for
// status refreshes
func (p *Panel) RemoteVersion(ctx context.Context) (string, bool) {
	v, ok := p.remote.FetchVersion(ctx, p.cfg.Remote.VersionURL)
	p.remoteVersion, p.remoteKnown = v, ok
	return v, ok
}

// Presets lists the presets in the backup root with their metadata
func (p *Panel) Presets() ([]presets.Preset, error) {
	if _, err := p.registry.EnsureRoot(); err != nil {
		return nil, err
	}
	return p.registry.Describe()
}

// InstallPreset copies sourceDir into the backup root. An empty name uses
// the source directory's base name.
func (p *Panel) InstallPreset(sourceDir, name string, overwrite bool) (string, error) {
	if name == "" {
		name = filepath.Base(filepath.Clean(sourceDir))
	}
	return name, p.registry.Install(sourceDir, name, overwrite)
}

// ApplyPreset deploys the named preset into the game directory
func (p *Panel) ApplyPreset(name string) (*deploy.Result, error) {
	if _, err := p.registry.EnsureRoot(); err != nil {
		return nil, err
	}
	preset, err := p.registry.Get(name)
	if err != nil {
		return nil, err
	}
	return p.deployer.Apply(preset, p.cfg.GameDir())
}

// RemovePreset removes every managed path from the game directory
func (p *Panel) RemovePreset() (*deploy.Result, error) {
	return p.deployer.Remove(p.cfg.GameDir())
}

// DisplaySettings reads the current display settings
func (p *Panel) DisplaySettings() (displaytweaks.Settings, error) {
	return p.display.Read()
}

// SetDisplay applies a display settings update
func (p *Panel) SetDisplay(u displaytweaks.Update) (displaytweaks.Settings, error) {
	return p.display.Apply(u)
}

// DisplayMirrorPath is where saved display settings are copied to
func (p *Panel) DisplayMirrorPath() string {
	return p.display.MirrorPath()
}

// UpdateOrder downloads the published load order into the overwrite
// directory and returns the written path
func (p *Panel) UpdateOrder(ctx context.Context) (string, error) {
	if p.cfg.Remote.OrderURL == "" {
		return "", errors.New(errors.ErrConfigValid, "remote.order_url is not set").
			WithDetail("key", "remote.order_url")
	}

	text, err := p.remote.FetchText(ctx, p.cfg.Remote.OrderURL)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(p.cfg.OverwriteDir(), OrderFileName)
	if err := filesystem.WriteFileAtomic(p.fs, dst, []byte(text), 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dst).
			WithDetail(errors.DetailPath, dst)
	}
	p.logger.Info().Str("path", dst).Msg("load order updated")
	return dst, nil
}

func (p *Panel) onReconcile(oldVersion, newVersion string) error {
	p.logger.Info().
		Str("old", oldVersion).
		Str("version", newVersion).
		Msg("local version reconciled")

	p.refresh(newVersion)
	for _, l := range p.listeners {
		l(p.status)
	}
	return nil
}

func (p *Panel) refresh(local string) {
	p.status.LocalVersion = local
	p.status.RemoteVersion = p.remoteVersion
	p.status.RemoteKnown = p.remoteKnown
	p.status.UpdateAvailable = p.remoteKnown && version.IsNewer(p.remoteVersion, local)
}
