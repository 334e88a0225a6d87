package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fullstackvibes/folio/internal/showcase"
)

type fakeRepoLister struct {
	repos []showcase.Project
	err   error
}

func (f *fakeRepoLister) Repos(ctx context.Context, user string) ([]showcase.Project, error) {
	return f.repos, f.err
}

func TestProjectsHandler(t *testing.T) {
	svc, err := showcase.NewService(&fakeRepoLister{repos: []showcase.Project{{Name: "live"}}}, "user")
	require.NoError(t, err)
	h := &ProjectsHandler{Service: svc}

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Projects []showcase.Project `json:"projects"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Projects, 7)
	require.Equal(t, "live", resp.Projects[6].Name)
}
