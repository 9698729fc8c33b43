package openai

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// ChatCompletion sends a conversation and returns the model reply
func (c *Client) ChatCompletion(ctx context.Context, req schema.ChatCompletionRequest) (*schema.ChatCompletionResponse, error) {
	r, err := encodeChatCompletion(req)
	if err != nil {
		return nil, err
	}

	var response jsonResponse[schema.ChatCompletionResponse]
	if err := c.do(ctx, r, &response); err != nil {
		return nil, err
	}
	c.metrics.tokens(r.operation, response.v.Usage.PromptTokens, response.v.Usage.CompletionTokens)

	// Return success
	return &response.v, nil
}
