package update

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
	"github.com/mirrorbytes/launcher/internal/github"
)

// maxRedirectHops bounds redirect following. Release asset endpoints
// answer with a single 302 to the CDN; anything longer is treated as a
// loop.
const maxRedirectHops = 1

// ProgressFunc receives the integer download percentage. It is invoked
// only when the value strictly increases, so implementations never see
// duplicates or out-of-order values.
type ProgressFunc func(percent int)

// DownloadOptions control a single download.
type DownloadOptions struct {
	// ExpectedSize is the asset size from the release metadata. Zero means
	// unknown; the Content-Length of the response is used instead, and if
	// that is also unknown no progress is reported.
	ExpectedSize int64

	// AcceptOctetStream sends "Accept: application/octet-stream". Set for
	// direct asset URLs only; the zipball/tarball endpoints return an error
	// status instead of their redirect when given this header.
	AcceptOctetStream bool

	// OnProgress, when set, receives percentage updates.
	OnProgress ProgressFunc
}

// Downloader streams release assets to local files.
type Downloader struct {
	httpClient *http.Client
}

// NewDownloader creates a Downloader. Redirects are handled by an explicit
// bounded loop rather than the client's automatic following, so the hop
// count and headers stay under our control. No client timeout is set;
// long downloads are bounded by the caller's context.
func NewDownloader() *Downloader {
	return &Downloader{
		httpClient: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// SetHTTPClient sets the HTTP client (useful for testing).
func (d *Downloader) SetHTTPClient(client *http.Client) {
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}
	d.httpClient = client
}

// Download streams url to destPath. On any failure the partially written
// destination file is removed; a file at destPath exists only after a
// fully flushed, closed write.
func (d *Downloader) Download(ctx context.Context, url, destPath string, opts DownloadOptions) error {
	resp, err := d.fetch(ctx, url, opts)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrIO, err)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrIO, err)
	}

	if err := d.stream(resp, f, opts); err != nil {
		_ = f.Close()
		_ = os.Remove(destPath)
		return err
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(destPath)
		return fmt.Errorf("%w: %v", apperrors.ErrIO, err)
	}
	return nil
}

// fetch issues the GET, following at most maxRedirectHops redirects by
// re-issuing the request at the Location target.
func (d *Downloader) fetch(ctx context.Context, url string, opts DownloadOptions) (*http.Response, error) {
	for hop := 0; ; hop++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", github.UserAgent)
		if opts.AcceptOctetStream {
			req.Header.Set("Accept", "application/octet-stream")
		}

		resp, err := d.httpClient.Do(req)
		if err != nil {
			return nil, err
		}

		switch resp.StatusCode {
		case http.StatusOK:
			return resp, nil
		case http.StatusMovedPermanently, http.StatusFound:
			location := resp.Header.Get("Location")
			_ = resp.Body.Close()
			if hop >= maxRedirectHops {
				return nil, apperrors.ErrRedirectLoop
			}
			if location == "" {
				return nil, fmt.Errorf("redirect without Location header")
			}
			next, err := resp.Request.URL.Parse(location)
			if err != nil {
				return nil, fmt.Errorf("invalid redirect target %q: %w", location, err)
			}
			url = next.String()
		default:
			code := resp.StatusCode
			_ = resp.Body.Close()
			return nil, &github.StatusError{Code: code}
		}
	}
}

// stream copies the response body to f, reporting whole-percent progress.
func (d *Downloader) stream(resp *http.Response, f *os.File, opts DownloadOptions) error {
	total := opts.ExpectedSize
	if total <= 0 {
		total = resp.ContentLength
	}

	var transferred int64
	lastPercent := -1

	buf := make([]byte, 32*1024)
	for {
		n, readErr := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := f.Write(buf[:n]); writeErr != nil {
				return fmt.Errorf("%w: %v", apperrors.ErrIO, writeErr)
			}
			transferred += int64(n)

			if opts.OnProgress != nil && total > 0 {
				percent := int(transferred * 100 / total)
				if percent > 100 {
					percent = 100
				}
				if percent > lastPercent {
					lastPercent = percent
					opts.OnProgress(percent)
				}
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("%w: %v", apperrors.ErrIO, readErr)
		}
	}
}
