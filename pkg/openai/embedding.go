package openai

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Embedding returns an embedding vector for each input
func (c *Client) Embedding(ctx context.Context, req schema.EmbeddingRequest) (*schema.EmbeddingResponse, error) {
	r, err := encodeEmbedding(req)
	if err != nil {
		return nil, err
	}

	var response jsonResponse[schema.EmbeddingResponse]
	if err := c.do(ctx, r, &response); err != nil {
		return nil, err
	}
	c.metrics.tokens(r.operation, response.v.Usage.PromptTokens, 0)

	return &response.v, nil
}
