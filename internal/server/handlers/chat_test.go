package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fullstackvibes/folio/internal/assist"
	"github.com/fullstackvibes/folio/internal/assist/driver"
)

type fakeCompletionDriver struct {
	calls    int
	lastReq  *driver.Request
	response *driver.Response
	err      error
}

func (f *fakeCompletionDriver) Complete(ctx context.Context, req *driver.Request) (*driver.Response, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func (f *fakeCompletionDriver) Name() string { return "fake" }

func newChatHandler(fake *fakeCompletionDriver, configured bool) *ChatHandler {
	return &ChatHandler{
		Assistant: assist.New(fake, assist.Options{
			Model:      "test-model",
			System:     "you are a portfolio assistant",
			Configured: configured,
		}),
	}
}

func postChat(t *testing.T, h *ChatHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestChatSuccess(t *testing.T) {
	fake := &fakeCompletionDriver{response: &driver.Response{
		Content: []driver.ContentBlock{{Type: "text", Text: "hello"}},
	}}
	h := newChatHandler(fake, true)

	rec := postChat(t, h, `{"messages":[{"role":"user","content":"hi"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "hello", resp["message"])

	require.Equal(t, "you are a portfolio assistant", fake.lastReq.System)
	require.Equal(t, 1024, fake.lastReq.MaxTokens)
}

func TestChatNoTextBlockReturnsEmptyMessage(t *testing.T) {
	fake := &fakeCompletionDriver{response: &driver.Response{
		Content: []driver.ContentBlock{{Type: "tool_use"}},
	}}
	h := newChatHandler(fake, true)

	rec := postChat(t, h, `{"messages":[{"role":"user","content":"hi"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "", resp["message"])
}

func TestChatMissingAPIKeySkipsProvider(t *testing.T) {
	fake := &fakeCompletionDriver{}
	h := newChatHandler(fake, false)

	rec := postChat(t, h, `{"messages":[{"role":"user","content":"hi"}]}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "API key not configured")
	require.Equal(t, 0, fake.calls)
}

func TestChatProviderFailure(t *testing.T) {
	fake := &fakeCompletionDriver{err: errors.New("upstream exploded")}
	h := newChatHandler(fake, true)

	rec := postChat(t, h, `{"messages":[{"role":"user","content":"hi"}]}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "Failed to get response")
	require.NotContains(t, rec.Body.String(), "upstream exploded")
}

func TestChatReplayProducesIndependentCalls(t *testing.T) {
	fake := &fakeCompletionDriver{response: &driver.Response{
		Content: []driver.ContentBlock{{Type: "text", Text: "x"}},
	}}
	h := newChatHandler(fake, true)

	body := `{"messages":[{"role":"user","content":"same question"}]}`
	require.Equal(t, http.StatusOK, postChat(t, h, body).Code)
	require.Equal(t, http.StatusOK, postChat(t, h, body).Code)
	require.Equal(t, 2, fake.calls)
}

func TestChatInvalidJSON(t *testing.T) {
	h := newChatHandler(&fakeCompletionDriver{}, true)
	rec := postChat(t, h, `{"messages":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
