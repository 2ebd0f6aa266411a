package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	apperrors "github.com/mirrorbytes/launcher/internal/errors"
)

// UserAgent is sent on every API request. GitHub rejects requests
// without one.
const UserAgent = "mirrorbytes-launcher"

// defaultTimeout bounds API requests. Asset downloads use their own
// client and are bounded by the caller's context instead.
const defaultTimeout = 30 * time.Second

// Client queries the releases API for one repository.
type Client struct {
	BaseURL string
	Owner   string
	Repo    string

	token      string
	httpClient *http.Client
}

// NewClient creates a release client for owner/repo. The token is optional;
// when set it is sent as a bearer token for higher rate limits.
func NewClient(owner, repo, token string) *Client {
	return &Client{
		BaseURL:    "https://api.github.com",
		Owner:      owner,
		Repo:       repo,
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetHTTPClient sets the HTTP client (useful for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Slug returns the owner/repo pair for error context.
func (c *Client) Slug() string {
	return c.Owner + "/" + c.Repo
}

// RateLimitedError is returned on HTTP 403 responses that carry rate-limit
// headers. Reset is when the limit window opens again.
type RateLimitedError struct {
	Reset time.Time
}

func (e *RateLimitedError) Error() string {
	if e.Reset.IsZero() {
		return "rate limit exceeded; set a GitHub token (MBL_GITHUB_TOKEN) to raise the limit"
	}
	return fmt.Sprintf("rate limit exceeded, resets at %s; set a GitHub token (MBL_GITHUB_TOKEN) to raise the limit",
		e.Reset.Local().Format(time.RFC1123))
}

// StatusError is returned for unexpected non-2xx API responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// LatestRelease fetches the latest published release.
func (c *Client) LatestRelease(ctx context.Context) (*Release, error) {
	var release Release
	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases/latest", c.BaseURL, c.Owner, c.Repo)
	if err := c.get(ctx, endpoint, &release); err != nil {
		return nil, &apperrors.ReleaseError{Op: "latest", Repo: c.Slug(), Err: err}
	}
	return &release, nil
}

// Releases fetches one page of releases, newest first. Used for the
// changelog view; the same client serves the update pipeline.
func (c *Client) Releases(ctx context.Context, perPage int) ([]Release, error) {
	var releases []Release
	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases?per_page=%d", c.BaseURL, c.Owner, c.Repo, perPage)
	if err := c.get(ctx, endpoint, &releases); err != nil {
		return nil, &apperrors.ReleaseError{Op: "list", Repo: c.Slug(), Err: err}
	}
	return releases, nil
}

// ReleaseByTag fetches the release published under a specific tag.
func (c *Client) ReleaseByTag(ctx context.Context, tag string) (*Release, error) {
	var release Release
	endpoint := fmt.Sprintf("%s/repos/%s/%s/releases/tags/%s", c.BaseURL, c.Owner, c.Repo, tag)
	if err := c.get(ctx, endpoint, &release); err != nil {
		return nil, &apperrors.ReleaseError{Op: "byTag", Repo: c.Slug(), Err: err}
	}
	return &release, nil
}

func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", UserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.ErrNotFound
	case resp.StatusCode == http.StatusForbidden && isRateLimited(resp):
		return &RateLimitedError{Reset: rateLimitReset(resp)}
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// isRateLimited reports whether a 403 response is an exhausted rate limit
// rather than an authorization failure.
func isRateLimited(resp *http.Response) bool {
	return resp.Header.Get("X-Ratelimit-Remaining") == "0"
}

// rateLimitReset parses the X-Ratelimit-Reset header (unix seconds).
func rateLimitReset(resp *http.Response) time.Time {
	raw := resp.Header.Get("X-Ratelimit-Reset")
	if raw == "" {
		return time.Time{}
	}
	secs, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(secs, 0)
}
