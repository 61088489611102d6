package panel

import (
	"context"

	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/remote"
	"github.com/arthur-debert/modkeeper/pkg/version"
)

// UpdateCheck is the outcome of comparing the local and remote versions
type UpdateCheck struct {
	Local     string `json:"local"`
	Remote    string `json:"remote,omitempty"`
	Known     bool   `json:"known"`
	Available bool   `json:"available"`
	Changelog string `json:"changelog,omitempty"`
}

// UpdateResult describes an applied update
type UpdateResult struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Artifact string `json:"artifact"`
}

// CheckUpdate compares the published version with the local record and
// fetches the changelog when an update is available
func (p *Panel) CheckUpdate(ctx context.Context) UpdateCheck {
	check := UpdateCheck{Local: p.store.Load()}
	check.Remote, check.Known = p.RemoteVersion(ctx)
	check.Available = check.Known && version.IsNewer(check.Remote, check.Local)

	if check.Available && p.cfg.Remote.ChangelogURL != "" {
		check.Changelog, _ = p.remote.FetchChangelog(ctx, p.cfg.Remote.ChangelogURL)
	}
	p.refresh(check.Local)
	return check
}

// ApplyUpdate downloads the update artifact and reconciles the local
// record to the published version. With force the download happens even
// when the local version is current.
func (p *Panel) ApplyUpdate(ctx context.Context, force bool, progress remote.ProgressCallback) (*UpdateResult, error) {
	check := p.CheckUpdate(ctx)
	if !check.Known {
		return nil, errors.New(errors.ErrNotFound, "remote version is unknown")
	}
	if !version.IsValid(check.Remote) {
		return nil, errors.Newf(errors.ErrInvalidFormat, "remote version %q cannot be recorded", check.Remote).
			WithDetail("version", check.Remote)
	}
	if !check.Available && !force {
		return &UpdateResult{From: check.Local, To: check.Local}, nil
	}

	artifact, err := p.remote.Download(ctx, p.cfg.Remote.DownloadURL, p.cfg.DownloadDir(), progress)
	if err != nil {
		return nil, err
	}

	if err := p.store.Save(check.Remote); err != nil {
		return nil, err
	}
	return &UpdateResult{From: check.Local, To: check.Remote, Artifact: artifact}, nil
}
