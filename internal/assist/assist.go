// Package assist implements the chat assistant: a stateless proxy that
// forwards a visitor conversation to an AI completion provider with the
// site's fixed system prompt attached. The full turn history arrives on
// every request; nothing is stored between calls.
package assist

import (
	"context"
	"errors"

	"github.com/fullstackvibes/folio/internal/assist/driver"
)

// DefaultMaxTokens bounds the completion length per request.
const DefaultMaxTokens = 1024

// ErrNotConfigured is returned when the provider API key is absent. The
// check happens before any provider call.
var ErrNotConfigured = errors.New("assistant provider not configured")

// Turn is one conversation turn supplied by the caller.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Assistant proxies conversations to a completion driver.
type Assistant struct {
	driver     driver.Driver
	model      string
	system     string
	maxTokens  int
	configured bool
}

// Options configures an Assistant.
type Options struct {
	Model     string
	System    string
	MaxTokens int
	// Configured reports whether provider credentials are present.
	Configured bool
}

// New returns an Assistant backed by d.
func New(d driver.Driver, opts Options) *Assistant {
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	return &Assistant{
		driver:     d,
		model:      opts.Model,
		system:     opts.System,
		maxTokens:  maxTokens,
		configured: opts.Configured,
	}
}

// Reply forwards the conversation and returns the assistant's plain-text
// reply: the first text content block of the provider response, or "" when
// the response carries none.
func (a *Assistant) Reply(ctx context.Context, turns []Turn) (string, error) {
	if a == nil || a.driver == nil || !a.configured {
		return "", ErrNotConfigured
	}

	messages := make([]driver.Message, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, driver.Message{Role: turn.Role, Content: turn.Content})
	}

	resp, err := a.driver.Complete(ctx, &driver.Request{
		Model:     a.model,
		System:    a.system,
		Messages:  messages,
		MaxTokens: a.maxTokens,
	})
	if err != nil {
		return "", err
	}

	return resp.Text(), nil
}
