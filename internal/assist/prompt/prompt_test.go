package prompt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultPromptRenders(t *testing.T) {
	p, err := Default()
	require.NoError(t, err)
	require.Equal(t, "David Anderson", p.Profile.Name)
	require.NotEmpty(t, p.Profile.Projects)

	system := p.System()
	require.Contains(t, system, "David Anderson's portfolio website")
	require.Contains(t, system, "PlanVUE")
	require.Contains(t, system, p.Profile.Email)
}

func TestLoadRendersProfileFields(t *testing.T) {
	definition := []byte(`---
name: Jane Doe
email: jane@example.com
strengths:
  - shipping
---
Assistant for {{.Name}} ({{.Email}}).{{range .Strengths}} Good at {{.}}.{{end}}`)

	p, err := Load("test", definition)
	require.NoError(t, err)
	require.Equal(t, "Assistant for Jane Doe (jane@example.com). Good at shipping.", p.System())
}

func TestLoadRejectsMissingFrontmatter(t *testing.T) {
	_, err := Load("test", []byte("just a body"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "frontmatter")
}

func TestLoadRejectsMissingName(t *testing.T) {
	_, err := Load("test", []byte("---\nemail: a@b.c\n---\nbody"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "name")
}

func TestLoadRejectsEmptyBody(t *testing.T) {
	_, err := Load("test", []byte("---\nname: Jane\n---\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "body")
}
