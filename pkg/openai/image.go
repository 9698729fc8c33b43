package openai

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// CreateImage generates images from a prompt
func (c *Client) CreateImage(ctx context.Context, req schema.CreateImageRequest) (*schema.CreateImageResponse, error) {
	r, err := encodeCreateImage(req)
	if err != nil {
		return nil, err
	}

	var response jsonResponse[schema.CreateImageResponse]
	if err := c.do(ctx, r, &response); err != nil {
		return nil, err
	}

	return &response.v, nil
}
