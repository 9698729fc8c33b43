package openai

import (
	"context"

	// Packages
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Whisper transcribes or translates audio, depending on the request type.
// For text response formats the body is returned as the response text.
func (c *Client) Whisper(ctx context.Context, req schema.WhisperRequest) (*schema.WhisperResponse, error) {
	r, err := encodeWhisper(req)
	if err != nil {
		return nil, err
	}

	response := whisperResponse{format: req.ResponseFormat}
	if err := c.do(ctx, r, &response); err != nil {
		return nil, err
	}

	return &response.v, nil
}

// Transcription returns the text of the audio file, in its spoken language
func (c *Client) Transcription(ctx context.Context, file []byte, opts ...schema.WhisperOpt) (*schema.WhisperResponse, error) {
	req, err := schema.NewTranscriptionRequest(file, opts...)
	if err != nil {
		return nil, err
	}
	return c.Whisper(ctx, req)
}

// Translation returns the text of the audio file, translated into English
func (c *Client) Translation(ctx context.Context, file []byte, opts ...schema.WhisperOpt) (*schema.WhisperResponse, error) {
	req, err := schema.NewTranslationRequest(file, opts...)
	if err != nil {
		return nil, err
	}
	return c.Whisper(ctx, req)
}
