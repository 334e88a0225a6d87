// Package prompt builds the assistant's system prompt from a profile
// definition: a markdown file with YAML frontmatter describing the site
// owner, rendered through text/template.
package prompt

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed assistant.md
var defaultDefinition []byte

// Profile describes the site owner. Fields are available to the prompt
// body template.
type Profile struct {
	Name      string    `yaml:"name"`
	Role      string    `yaml:"role"`
	Location  string    `yaml:"location"`
	Email     string    `yaml:"email"`
	Site      string    `yaml:"site"`
	GitHub    string    `yaml:"github"`
	LinkedIn  string    `yaml:"linkedin"`
	Summary   string    `yaml:"summary"`
	Strengths []string  `yaml:"strengths"`
	Projects  []Project `yaml:"projects"`
}

// Project is one portfolio entry surfaced to the assistant.
type Project struct {
	Name   string   `yaml:"name"`
	Stack  []string `yaml:"stack"`
	Impact string   `yaml:"impact"`
	About  string   `yaml:"about"`
}

// Prompt is a parsed profile plus its rendered system prompt.
type Prompt struct {
	Profile Profile
	Source  string
	system  string
}

// System returns the rendered system prompt.
func (p *Prompt) System() string {
	if p == nil {
		return ""
	}
	return p.system
}

// Load parses a prompt definition from bytes: YAML frontmatter (the
// profile) followed by a template body.
func Load(source string, data []byte) (*Prompt, error) {
	profile, body, err := parseFrontmatter(data)
	if err != nil {
		return nil, fmt.Errorf("parse prompt %s: %w", source, err)
	}

	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("prompt %s missing body", source)
	}
	if strings.TrimSpace(profile.Name) == "" {
		return nil, fmt.Errorf("prompt %s missing profile name", source)
	}

	tmpl, err := template.New(source).Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template %s: %w", source, err)
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, profile); err != nil {
		return nil, fmt.Errorf("render prompt %s: %w", source, err)
	}

	return &Prompt{
		Profile: profile,
		Source:  source,
		system:  strings.TrimSpace(rendered.String()),
	}, nil
}

// Default returns the embedded prompt definition.
func Default() (*Prompt, error) {
	return Load("embedded:assistant.md", defaultDefinition)
}

func parseFrontmatter(data []byte) (Profile, string, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Profile{}, "", fmt.Errorf("empty prompt")
	}

	lines := bufio.NewScanner(bytes.NewReader(trimmed))
	lines.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		frontmatter []string
		body        []string
		inFront     bool
		headerSeen  bool
	)

	for lines.Scan() {
		line := lines.Text()
		switch {
		case !headerSeen && strings.TrimSpace(line) == "---":
			headerSeen = true
			inFront = true
		case headerSeen && inFront && strings.TrimSpace(line) == "---":
			inFront = false
		default:
			if inFront {
				frontmatter = append(frontmatter, line)
			} else {
				body = append(body, line)
			}
		}
	}
	if err := lines.Err(); err != nil {
		return Profile{}, "", err
	}

	var profile Profile
	if !headerSeen {
		return Profile{}, "", fmt.Errorf("missing frontmatter")
	}
	if err := yaml.Unmarshal([]byte(strings.Join(frontmatter, "\n")), &profile); err != nil {
		return Profile{}, "", fmt.Errorf("invalid frontmatter: %w", err)
	}

	return profile, strings.Join(body, "\n"), nil
}
