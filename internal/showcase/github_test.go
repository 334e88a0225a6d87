package showcase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGitHubClientFiltersForksAndSortsByStars(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/users/d4vid4nderson/repos", r.URL.Path)
		require.Equal(t, "updated", r.URL.Query().Get("sort"))
		require.Equal(t, "100", r.URL.Query().Get("per_page"))
		require.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		require.Equal(t, "token gh-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":1,"name":"small","stargazers_count":1,"fork":false},
			{"id":2,"name":"forked","stargazers_count":50,"fork":true},
			{"id":3,"name":"big","stargazers_count":10,"fork":false}
		]`))
	}))
	defer server.Close()

	client := NewGitHubClient(server.URL, "gh-token")
	client.HTTPClient = server.Client()

	repos, err := client.Repos(context.Background(), "d4vid4nderson")
	require.NoError(t, err)
	require.Len(t, repos, 2)
	require.Equal(t, "big", repos[0].Name)
	require.Equal(t, "small", repos[1].Name)
}

func TestGitHubClientErrorsOnNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer server.Close()

	client := NewGitHubClient(server.URL, "")
	client.HTTPClient = server.Client()

	_, err := client.Repos(context.Background(), "user")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 403")
}

func TestGitHubClientRequiresUser(t *testing.T) {
	client := NewGitHubClient("", "")
	_, err := client.Repos(context.Background(), "  ")
	require.Error(t, err)
}
