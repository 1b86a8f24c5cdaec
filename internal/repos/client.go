package repos

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"
)

// DefaultAPIBase is the public GitHub REST endpoint.
const DefaultAPIBase = "https://api.github.com"

// perPage is the single page of results requested; there is no pagination.
const perPage = 100

// ClientConfig configures a Client.
type ClientConfig struct {
	BaseURL    string
	Token      string        // optional, raises the anonymous rate limit
	Revalidate time.Duration // how long a successful response is reused; 0 disables caching
	Timeout    time.Duration
}

// Client lists a user's public repositories from the GitHub REST API.
type Client struct {
	base   string
	token  string
	http   *http.Client
	cache  *expirable.LRU[string, []RawRepo]
	logger *zap.Logger
}

// NewClient returns a Client. A nil logger is replaced with a no-op logger.
func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultAPIBase
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		base:   base,
		token:  cfg.Token,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
	if cfg.Revalidate > 0 {
		c.cache = expirable.NewLRU[string, []RawRepo](32, nil, cfg.Revalidate)
	}
	return c
}

// ListRepos fetches up to 100 public repositories of user, most recently
// updated first.
func (c *Client) ListRepos(ctx context.Context, user string) ([]RawRepo, error) {
	if user == "" {
		return nil, fmt.Errorf("github user is required")
	}
	endpoint := fmt.Sprintf("%s/users/%s/repos?sort=updated&per_page=%d", c.base, url.PathEscape(user), perPage)

	if c.cache != nil {
		if repos, ok := c.cache.Get(endpoint); ok {
			c.logger.Debug("repository list served from cache", zap.String("user", user))
			return repos, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching repositories: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("github returned status %d", resp.StatusCode)
	}

	var repos []RawRepo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("decoding repositories: %w", err)
	}

	if c.cache != nil {
		c.cache.Add(endpoint, repos)
	}
	c.logger.Debug("repository list fetched", zap.String("user", user), zap.Int("count", len(repos)))
	return repos, nil
}
