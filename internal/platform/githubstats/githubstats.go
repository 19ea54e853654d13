// Package githubstats looks up public repository counters for project cards.
package githubstats

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v56/github"
	"golang.org/x/oauth2"

	"github.com/yungbote/portfolio-assistant/internal/pkg/httpx"
	"github.com/yungbote/portfolio-assistant/internal/pkg/logger"
)

const (
	defaultAttempts = 3
	defaultBackoff  = 250 * time.Millisecond
)

type Stats struct {
	Stars    int
	Forks    int
	Language string
}

type Client struct {
	gh       *github.Client
	log      *logger.Logger
	attempts int
	backoff  time.Duration
}

// New uses token for authenticated rate limits when it is set.
func New(token string, log *logger.Logger) *Client {
	var hc *http.Client
	if strings.TrimSpace(token) != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(context.Background(), ts)
	}
	return newClient(github.NewClient(hc), log)
}

// NewWithBaseURL points the client at another API root, such as a test server.
func NewWithBaseURL(hc *http.Client, baseURL string, log *logger.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("github base url: %w", err)
	}
	gh := github.NewClient(hc)
	gh.BaseURL = u
	c := newClient(gh, log)
	c.backoff = time.Millisecond
	return c, nil
}

func newClient(gh *github.Client, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	return &Client{gh: gh, log: log.With("client", "GitHubStats"), attempts: defaultAttempts, backoff: defaultBackoff}
}

// RepoStats fetches counters for a github.com repository URL. Transient
// failures are retried with backoff.
func (c *Client) RepoStats(ctx context.Context, repoURL string) (Stats, error) {
	owner, repo, ok := ParseRepoURL(repoURL)
	if !ok {
		return Stats{}, fmt.Errorf("not a github repository url: %q", repoURL)
	}
	var out Stats
	err := httpx.Retry(ctx, c.attempts, c.backoff, func(ctx context.Context) error {
		r, resp, err := c.gh.Repositories.Get(ctx, owner, repo)
		if err != nil {
			var rl *github.RateLimitError
			if errors.As(err, &rl) {
				return err
			}
			if resp != nil {
				return &httpx.StatusError{Status: resp.StatusCode, Err: err}
			}
			return err
		}
		out = Stats{Stars: r.GetStargazersCount(), Forks: r.GetForksCount(), Language: r.GetLanguage()}
		return nil
	})
	if err != nil {
		c.log.Debug("github repo lookup failed", "owner", owner, "repo", repo, "error", err)
		return Stats{}, err
	}
	return out, nil
}

// ParseRepoURL extracts owner and name from https://github.com/owner/name
// style URLs, tolerating a .git suffix and trailing path segments.
func ParseRepoURL(raw string) (owner, repo string, ok bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", "", false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Host), "www.")
	if host != "github.com" {
		return "", "", false
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], strings.TrimSuffix(parts[1], ".git"), true
}
