package anthropic

import (
	"github.com/fullstackvibes/folio/internal/assist/driver"
)

type messagesResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
	Usage      *usage         `json:"usage,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

func toDriverResponse(resp *messagesResponse) *driver.Response {
	if resp == nil {
		return &driver.Response{}
	}

	blocks := make([]driver.ContentBlock, 0, len(resp.Content))
	for _, block := range resp.Content {
		blocks = append(blocks, driver.ContentBlock{Type: block.Type, Text: block.Text})
	}

	response := &driver.Response{
		Content:    blocks,
		StopReason: resp.StopReason,
	}

	if resp.Usage != nil {
		response.Usage = &driver.Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
		}
	}

	return response
}
