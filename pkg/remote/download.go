package remote

import (
	"context"
	"os"
	"time"

	"github.com/arthur-debert/modkeeper/pkg/errors"
	"github.com/arthur-debert/modkeeper/pkg/logging"
	"github.com/cavaliergopher/grab/v3"
)

// ProgressCallback is called during download with progress info
type ProgressCallback func(bytesComplete, totalBytes int64, percentage int)

// Download fetches url into dir and returns the downloaded file path. The
// file name comes from the response or the URL. An existing file is always
// overwritten, never resumed. Only ctx bounds the transfer.
func (c *Client) Download(ctx context.Context, url, dir string, callback ProgressCallback) (string, error) {
	logger := logging.GetLogger("remote").With().Str("url", url).Str("dir", dir).Logger()

	if url == "" {
		return "", errors.New(errors.ErrInvalidInput, "no download URL configured")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dir).
			WithDetail(errors.DetailPath, dir)
	}

	req, err := grab.NewRequest(dir, url)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to create request for %s", url)
	}
	req = req.WithContext(ctx)
	req.NoResume = true
	req.HTTPRequest.Header.Set("User-Agent", c.userAgent)

	client := grab.NewClient()
	client.UserAgent = c.userAgent

	done := logging.LogOperationStart(logger, "download")
	resp := client.Do(req)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	lastPercentage := -1
loop:
	for {
		select {
		case <-ticker.C:
			if callback != nil {
				var percentage int
				if resp.Size() > 0 {
					percentage = int(resp.Progress() * 100)
				}
				if percentage != lastPercentage {
					callback(resp.BytesComplete(), resp.Size(), percentage)
					lastPercentage = percentage
				}
			}
		case <-resp.Done:
			if callback != nil && resp.Size() > 0 {
				callback(resp.BytesComplete(), resp.Size(), 100)
			}
			break loop
		}
	}

	if err := resp.Err(); err != nil {
		if resp.Filename != "" {
			_ = os.Remove(resp.Filename)
		}
		return "", errors.Wrapf(err, errors.ErrDownloadFailed, "download of %s failed", url)
	}

	done()
	logger.Info().Str("path", resp.Filename).Int64("bytes", resp.BytesComplete()).Msg("download complete")
	return resp.Filename, nil
}
