package openai

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Speech returns audio for the input text, encoded in the requested
// response format
func (c *Client) Speech(ctx context.Context, req schema.SpeechRequest) ([]byte, error) {
	r, err := encodeSpeech(req)
	if err != nil {
		return nil, err
	}

	var response binaryResponse
	if err := c.do(ctx, r, &response); err != nil {
		return nil, err
	}

	return response.data, nil
}
