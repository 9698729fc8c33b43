package openai

import (
	"fmt"
	"net/http"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// request is an encoded request: a payload to POST to a path relative to
// the endpoint
type request struct {
	operation string
	model     string
	path      []any
	payload   client.Payload
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Operation names, used for spans and metrics
const (
	OpChatCompletion = "ChatCompletion"
	OpCreateImage    = "CreateImage"
	OpSpeech         = "Speech"
	OpTranscription  = "Transcription"
	OpTranslation    = "Translation"
	OpEmbedding      = "Embedding"
)

///////////////////////////////////////////////////////////////////////////////
// ENCODERS

func encodeChatCompletion(req schema.ChatCompletionRequest) (*request, error) {
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}
	return &request{OpChatCompletion, req.Model.String(), []any{"chat", "completions"}, payload}, nil
}

func encodeCreateImage(req schema.CreateImageRequest) (*request, error) {
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}
	return &request{OpCreateImage, req.Model.String(), []any{"images", "generations"}, payload}, nil
}

// encodeSpeech accepts any content type, as the response is audio
func encodeSpeech(req schema.SpeechRequest) (*request, error) {
	payload, err := client.NewJSONRequestEx(http.MethodPost, req, client.ContentTypeAny)
	if err != nil {
		return nil, err
	}
	return &request{OpSpeech, req.Model.String(), []any{"audio", "speech"}, payload}, nil
}

// encodeWhisper returns a multipart request to either the transcriptions
// or translations path, depending on the request type
func encodeWhisper(req schema.WhisperRequest) (*request, error) {
	payload, err := newWhisperPayload(req)
	if err != nil {
		return nil, err
	}
	if req.Type == schema.WhisperTranslation {
		return &request{OpTranslation, req.Model.String(), []any{"audio", "translations"}, payload}, nil
	}
	return &request{OpTranscription, req.Model.String(), []any{"audio", "transcriptions"}, payload}, nil
}

func encodeEmbedding(req schema.EmbeddingRequest) (*request, error) {
	payload, err := client.NewJSONRequest(req)
	if err != nil {
		return nil, err
	}
	return &request{OpEmbedding, req.Model.String(), []any{"embeddings"}, payload}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Path returns the path relative to the endpoint
func (r *request) Path() string {
	segments := make([]string, 0, len(r.path))
	for _, segment := range r.path {
		segments = append(segments, fmt.Sprint(segment))
	}
	return strings.Join(segments, "/")
}
