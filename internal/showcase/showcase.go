// Package showcase serves the project listing for the portfolio: a curated
// set of entries shipped with the binary, followed by the owner's live
// GitHub repositories. Live results are cached in memory for a TTL; a
// GitHub outage degrades to the curated entries alone.
package showcase

import (
	"context"
	_ "embed"
	"fmt"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed projects.yaml
var curatedDefinition []byte

// DefaultCacheTTL matches the original site's one-hour revalidation.
const DefaultCacheTTL = time.Hour

// Project is one showcase entry. JSON field names follow the GitHub repo
// shape the frontend already consumes.
type Project struct {
	ID          int64    `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	FullName    string   `json:"full_name" yaml:"full_name"`
	Description string   `json:"description" yaml:"description"`
	HTMLURL     string   `json:"html_url" yaml:"html_url"`
	Homepage    string   `json:"homepage,omitempty" yaml:"homepage"`
	Stars       int      `json:"stargazers_count" yaml:"stars"`
	Forks       int      `json:"forks_count" yaml:"forks"`
	Fork        bool     `json:"fork" yaml:"-"`
	Language    string   `json:"language" yaml:"language"`
	Topics      []string `json:"topics" yaml:"topics"`
	Curated     bool     `json:"curated" yaml:"-"`
}

type curatedFile struct {
	Projects []Project `yaml:"projects"`
}

// LoadCurated parses the embedded curated project list.
func LoadCurated() ([]Project, error) {
	var parsed curatedFile
	if err := yaml.Unmarshal(curatedDefinition, &parsed); err != nil {
		return nil, fmt.Errorf("parse curated projects: %w", err)
	}
	for i := range parsed.Projects {
		parsed.Projects[i].Curated = true
	}
	return parsed.Projects, nil
}

// RepoLister is the live-repository capability; *GitHubClient satisfies it.
type RepoLister interface {
	Repos(ctx context.Context, user string) ([]Project, error)
}

// Service merges curated entries with cached live repositories.
type Service struct {
	Lister   RepoLister
	Username string
	CacheTTL time.Duration
	Clock    func() time.Time

	curated []Project

	mu        sync.Mutex
	cached    []Project
	fetchedAt time.Time
}

// NewService returns a Service over the embedded curated list.
func NewService(lister RepoLister, username string) (*Service, error) {
	curated, err := LoadCurated()
	if err != nil {
		return nil, err
	}
	return &Service{
		Lister:   lister,
		Username: username,
		CacheTTL: DefaultCacheTTL,
		curated:  curated,
	}, nil
}

// Projects returns curated entries followed by live repositories. Live
// fetch failures are swallowed: the curated list is always served.
func (s *Service) Projects(ctx context.Context) ([]Project, error) {
	live := s.liveRepos(ctx)

	out := make([]Project, 0, len(s.curated)+len(live))
	out = append(out, s.curated...)
	out = append(out, live...)
	return out, nil
}

func (s *Service) liveRepos(ctx context.Context) []Project {
	if s.Lister == nil || s.Username == "" {
		return nil
	}

	now := s.now()
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	s.mu.Lock()
	if s.cached != nil && now.Sub(s.fetchedAt) < ttl {
		cached := s.cached
		s.mu.Unlock()
		return cached
	}
	s.mu.Unlock()

	repos, err := s.Lister.Repos(ctx, s.Username)
	if err != nil {
		// Degrade to curated entries; stale cache is better than none.
		s.mu.Lock()
		cached := s.cached
		s.mu.Unlock()
		return cached
	}

	s.mu.Lock()
	s.cached = repos
	s.fetchedAt = now
	s.mu.Unlock()
	return repos
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}
