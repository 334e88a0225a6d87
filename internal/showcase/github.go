package showcase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"
)

const defaultGitHubBaseURL = "https://api.github.com"

// GitHubClient lists public repositories for a user.
type GitHubClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// NewGitHubClient returns a client with defaults applied.
func NewGitHubClient(baseURL, token string) *GitHubClient {
	u := strings.TrimSpace(baseURL)
	if u == "" {
		u = defaultGitHubBaseURL
	}
	return &GitHubClient{
		BaseURL: u,
		Token:   strings.TrimSpace(token),
	}
}

// Repos fetches the user's repositories, drops forks and sorts the rest by
// stars descending.
func (c *GitHubClient) Repos(ctx context.Context, user string) ([]Project, error) {
	if c == nil {
		return nil, fmt.Errorf("github client not configured")
	}
	user = strings.TrimSpace(user)
	if user == "" {
		return nil, fmt.Errorf("github user is required")
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	reqURL := strings.TrimRight(c.BaseURL, "/") +
		"/users/" + url.PathEscape(user) + "/repos?sort=updated&per_page=100"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.Token != "" {
		req.Header.Set("Authorization", "token "+c.Token)
	}

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github request failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var repos []Project
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	filtered := repos[:0]
	for _, repo := range repos {
		if !repo.Fork {
			filtered = append(filtered, repo)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Stars > filtered[j].Stars
	})

	return filtered, nil
}
