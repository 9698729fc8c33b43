package openai

import (
	"encoding/json"
	"io"
	"net/http"

	// Packages
	client "github.com/mutablelogic/go-client"
	llm "github.com/mutablelogic/go-llm-sdk"
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// jsonResponse decodes a JSON body into T
type jsonResponse[T any] struct {
	v T
}

// binaryResponse holds the body as received
type binaryResponse struct {
	data []byte
}

// whisperResponse decodes JSON for the json and verbose_json formats, and
// otherwise holds the body as text
type whisperResponse struct {
	format schema.WhisperResponseFormat
	v      schema.WhisperResponse
}

var _ client.Unmarshaler = (*jsonResponse[any])(nil)
var _ client.Unmarshaler = (*binaryResponse)(nil)
var _ client.Unmarshaler = (*whisperResponse)(nil)

///////////////////////////////////////////////////////////////////////////////
// UNMARSHALER

func (r *jsonResponse[T]) Unmarshal(_ http.Header, body io.Reader) error {
	if err := json.NewDecoder(body).Decode(&r.v); err != nil {
		return llm.ErrDecode.Wrap(err)
	}
	return nil
}

func (r *binaryResponse) Unmarshal(_ http.Header, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	r.data = data
	return nil
}

func (r *whisperResponse) Unmarshal(_ http.Header, body io.Reader) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	if !r.format.IsJSON() {
		r.v = schema.WhisperResponse{Text: string(data)}
		return nil
	}
	if err := json.Unmarshal(data, &r.v); err != nil {
		return llm.ErrDecode.Wrap(err)
	}
	return nil
}
