package deploy

import (
	"path/filepath"

	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/filesystem"
	"github.com/arthur-debert/modkeeper/pkg/logging"
	"github.com/arthur-debert/modkeeper/pkg/presets"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// StagingDirName is the hidden directory staged deployments copy into
const StagingDirName = ".modkeeper-staging"

// Option configures a Deployer
type Option func(*Deployer)

// WithStaging enables copying the preset into the target before purging
func WithStaging(enabled bool) Option {
	return func(d *Deployer) {
		d.staging = enabled
	}
}

// Deployer applies presets to game directories
type Deployer struct {
	fs       afero.Fs
	manifest Manifest
	staging  bool
}

// New validates manifest and returns a Deployer for it
func New(fs afero.Fs, manifest Manifest, opts ...Option) (*Deployer, error) {
	if err := manifest.Validate(); err != nil {
		return nil, err
	}

	d := &Deployer{
		fs:       fs,
		manifest: append(Manifest(nil), manifest...),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Manifest returns a copy of the managed path list
func (d *Deployer) Manifest() Manifest {
	return append(Manifest(nil), d.manifest...)
}

// Present lists the manifest entries that currently exist in target. An
// entry that cannot be checked is logged and counted as absent.
func (d *Deployer) Present(target string) []string {
	logger := logging.GetLogger("deploy")
	present := []string{}
	for _, entry := range d.manifest {
		p := filepath.Join(target, entry)
		ok, err := filesystem.Exists(d.fs, p)
		if err != nil {
			logger.Debug().Err(err).Str("path", p).Msg("cannot check managed path")
			continue
		}
		if ok {
			present = append(present, entry)
		}
	}
	return present
}

// Apply replaces the managed paths in target with the ones preset provides.
// Entries missing from both are ignored.
func (d *Deployer) Apply(preset presets.Preset, target string) (*Result, error) {
	logger := logging.GetLogger("deploy").With().
		Str("preset", preset.Name).
		Str("target", target).
		Bool("staged", d.staging).
		Logger()
	done := logging.LogOperationStart(logger, "apply preset")

	res := newResult(preset.Name, target)
	if err := d.checkDir(target); err != nil {
		return res, err
	}
	if err := d.checkDir(preset.Path); err != nil {
		return res, errors.Newf(errors.ErrNotFound, "preset %q not found", preset.Name).
			WithDetail(errors.DetailPreset, preset.Name).
			WithDetail(errors.DetailPath, preset.Path)
	}

	var err error
	if d.staging {
		err = d.applyStaged(preset, target, res, logger)
	} else {
		err = d.applyDirect(preset, target, res, logger)
	}
	if err != nil {
		logger.Error().
			Err(err).
			Str("phase", string(res.Phase)).
			Bool("partial", res.Partial).
			Msg("apply failed")
		return res, annotate(err, res, preset.Name)
	}

	res.Phase = PhaseDone
	done()
	logger.Info().
		Strs("removed", res.Removed).
		Strs("installed", res.Installed).
		Strs("skipped", res.Skipped).
		Msg("preset applied")
	return res, nil
}

// Remove deletes every managed path from target
func (d *Deployer) Remove(target string) (*Result, error) {
	logger := logging.GetLogger("deploy").With().Str("target", target).Logger()

	res := newResult("", target)
	if err := d.checkDir(target); err != nil {
		return res, err
	}
	if err := d.purge(target, res, logger); err != nil {
		logger.Error().Err(err).Bool("partial", res.Partial).Msg("remove failed")
		return res, annotate(err, res, "")
	}

	res.Phase = PhaseDone
	logger.Info().Strs("removed", res.Removed).Msg("managed paths removed")
	return res, nil
}

func (d *Deployer) applyDirect(preset presets.Preset, target string, res *Result, logger zerolog.Logger) error {
	if err := d.purge(target, res, logger); err != nil {
		return err
	}

	res.Phase = PhaseInstall
	for _, entry := range d.manifest {
		src := preset.Entry(entry)
		dst := filepath.Join(target, entry)

		ok, err := filesystem.Exists(d.fs, src)
		if err != nil {
			res.Partial = res.Changed()
			return errors.CopyFailed(err, src)
		}
		if !ok {
			res.Skipped = append(res.Skipped, entry)
			continue
		}

		if err := d.copyEntry(src, dst); err != nil {
			written, _ := filesystem.Exists(d.fs, dst)
			res.Partial = res.Changed() || written
			return errors.CopyFailed(err, dst)
		}
		res.Installed = append(res.Installed, entry)
		logger.Debug().Str("path", entry).Msg("installed")
	}
	return nil
}

func (d *Deployer) applyStaged(preset presets.Preset, target string, res *Result, logger zerolog.Logger) error {
	stage := filepath.Join(target, StagingDirName)
	if _, err := filesystem.RemovePath(d.fs, stage); err != nil {
		res.Phase = PhaseStage
		return errors.DeleteFailed(err, stage)
	}
	defer func() {
		if _, err := filesystem.RemovePath(d.fs, stage); err != nil {
			logger.Warn().Err(err).Str("path", stage).Msg("failed to remove staging directory")
		}
	}()

	res.Phase = PhaseStage
	var staged []string
	for _, entry := range d.manifest {
		src := preset.Entry(entry)
		ok, err := filesystem.Exists(d.fs, src)
		if err != nil {
			return errors.CopyFailed(err, src)
		}
		if !ok {
			res.Skipped = append(res.Skipped, entry)
			continue
		}
		if err := d.copyEntry(src, filepath.Join(stage, entry)); err != nil {
			return errors.CopyFailed(err, filepath.Join(target, entry))
		}
		staged = append(staged, entry)
	}
	logger.Debug().Strs("staged", staged).Msg("preset staged")

	if err := d.purge(target, res, logger); err != nil {
		return err
	}

	res.Phase = PhaseInstall
	for _, entry := range staged {
		dst := filepath.Join(target, entry)
		if err := d.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			res.Partial = res.Changed()
			return errors.CopyFailed(err, dst)
		}
		if err := d.fs.Rename(filepath.Join(stage, entry), dst); err != nil {
			res.Partial = res.Changed()
			return errors.CopyFailed(err, dst)
		}
		res.Installed = append(res.Installed, entry)
		logger.Debug().Str("path", entry).Msg("installed")
	}
	return nil
}

func (d *Deployer) purge(target string, res *Result, logger zerolog.Logger) error {
	res.Phase = PhasePurge
	for _, entry := range d.manifest {
		p := filepath.Join(target, entry)
		// a directory whose removal fails may already have lost part of its tree
		wasDir := filesystem.IsDir(d.fs, p)

		removed, err := filesystem.RemovePath(d.fs, p)
		if err != nil {
			res.Partial = res.Changed() || wasDir
			return errors.DeleteFailed(err, p)
		}
		if removed {
			res.Removed = append(res.Removed, entry)
			logger.Debug().Str("path", entry).Msg("removed")
		}
	}
	return nil
}

func (d *Deployer) copyEntry(src, dst string) error {
	if err := d.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	return filesystem.Copy(d.fs, src, dst)
}

func (d *Deployer) checkDir(dir string) error {
	if !filesystem.IsDir(d.fs, dir) {
		return errors.Newf(errors.ErrNotFound, "directory %s not found", dir).
			WithDetail(errors.DetailPath, dir)
	}
	return nil
}

func annotate(err error, res *Result, preset string) error {
	keeperErr, ok := err.(*errors.KeeperError)
	if !ok {
		return err
	}
	keeperErr.WithDetail(errors.DetailPhase, string(res.Phase)).WithDetail("partial", res.Partial)
	if preset != "" {
		keeperErr.WithDetail(errors.DetailPreset, preset)
	}
	return keeperErr
}
