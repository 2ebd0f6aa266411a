package update

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
	"github.com/mirrorbytes/launcher/internal/github"
)

func TestDownload(t *testing.T) {
	payload := strings.Repeat("x", 4096)
	var gotAccept, gotAgent string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		gotAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "asset.zip")
	var percents []int

	d := NewDownloader()
	err := d.Download(context.Background(), srv.URL, dest, DownloadOptions{
		ExpectedSize:      int64(len(payload)),
		AcceptOctetStream: true,
		OnProgress:        func(p int) { percents = append(percents, p) },
	})
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))

	assert.Equal(t, "application/octet-stream", gotAccept)
	assert.Equal(t, github.UserAgent, gotAgent)

	// Progress values are strictly increasing, within [0,100], and end at 100.
	require.NotEmpty(t, percents)
	for i, p := range percents {
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 100)
		if i > 0 {
			assert.Greater(t, p, percents[i-1], "progress must strictly increase")
		}
	}
	assert.Equal(t, 100, percents[len(percents)-1])
}

func TestDownload_OmitsAcceptForSourceFallback(t *testing.T) {
	var gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAccept = r.Header.Get("Accept")
		fmt.Fprint(w, "data")
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "source.zip")
	d := NewDownloader()
	err := d.Download(context.Background(), srv.URL, dest, DownloadOptions{})
	require.NoError(t, err)
	assert.Empty(t, gotAccept)
}

func TestDownload_FollowsOneRedirect(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "redirected payload")
	}))
	defer target.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusFound)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "asset.zip")
	d := NewDownloader()
	err := d.Download(context.Background(), srv.URL, dest, DownloadOptions{})
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "redirected payload", string(data))
}

func TestDownload_SecondRedirectIsLoop(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, srv.URL, http.StatusMovedPermanently)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "asset.zip")
	d := NewDownloader()
	err := d.Download(context.Background(), srv.URL, dest, DownloadOptions{})
	require.Error(t, err)
	assert.True(t, apperrors.IsRedirectLoop(err))

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "no file may exist after a failed download")
}

func TestDownload_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "asset.zip")
	d := NewDownloader()
	err := d.Download(context.Background(), srv.URL, dest, DownloadOptions{})
	require.Error(t, err)

	var se *github.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDownload_TruncatedStreamRemovesPartialFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Promise more bytes than are sent, then drop the connection.
		w.Header().Set("Content-Length", "4096")
		_, _ = w.Write([]byte("short"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "asset.zip")
	d := NewDownloader()
	err := d.Download(context.Background(), srv.URL, dest, DownloadOptions{ExpectedSize: 4096})
	require.Error(t, err)
	assert.True(t, apperrors.IsIO(err))

	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "truncated file must not remain at the destination")
}

func TestDownload_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "data")
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "asset.zip")
	d := NewDownloader()
	err := d.Download(ctx, srv.URL, dest, DownloadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
