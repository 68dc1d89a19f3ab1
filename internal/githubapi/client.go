// Package githubapi reads an account's public repositories from the GitHub REST API.
package githubapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

type Options struct {
	BaseURL   string
	Account   string
	Token     string
	Timeout   time.Duration
	PerPage   int
	UserAgent string
}

// Client lists the most recently updated repositories of one account.
type Client struct {
	baseURL   string
	account   string
	perPage   int
	userAgent string
	http      *http.Client
	metrics   *Metrics
}

func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.PerPage <= 0 {
		opts.PerPage = DefaultPerPage
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "portfolio"
	}

	httpClient := &http.Client{}
	if opts.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	httpClient.Timeout = opts.Timeout

	return &Client{
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		account:   opts.Account,
		perPage:   opts.PerPage,
		userAgent: opts.UserAgent,
		http:      httpClient,
		metrics:   &Metrics{},
	}
}

func (c *Client) Metrics() MetricsSnapshot {
	return c.metrics.Snapshot()
}

// ListRecentRepos fetches up to PerPage repositories sorted by last update.
// Any failure is returned as a *FetchError.
func (c *Client) ListRecentRepos(ctx context.Context) ([]Repository, error) {
	logger := zerolog.Ctx(ctx)
	start := time.Now()

	repos, err := c.listRecentRepos(ctx)
	c.metrics.record(time.Since(start), err)
	if err != nil {
		logger.Warn().Err(err).Str("operation", "list_recent_repos").Msg("github request failed")
		return nil, err
	}

	logger.Debug().
		Str("operation", "list_recent_repos").
		Int("count", len(repos)).
		Dur("latency", time.Since(start)).
		Msg("github repositories fetched")
	return repos, nil
}

func (c *Client) listRecentRepos(ctx context.Context) ([]Repository, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.reposURL(), nil)
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return nil, &FetchError{Kind: KindStatus, StatusCode: resp.StatusCode}
	}

	var repos []Repository
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, &FetchError{Kind: KindDecode, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode JSON: %w", err)}
	}
	if repos == nil {
		repos = []Repository{}
	}
	return repos, nil
}

func (c *Client) reposURL() string {
	q := url.Values{}
	q.Set("sort", "updated")
	q.Set("per_page", strconv.Itoa(c.perPage))
	return c.baseURL + "/users/" + url.PathEscape(c.account) + "/repos?" + q.Encode()
}
