package schema

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"math"

	// Packages
	llm "github.com/mutablelogic/go-llm-sdk"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type EmbeddingModel string
type EmbeddingEncodingFormat string

// EmbeddingInput is the text to embed, either a single EmbeddingText or a
// list of EmbeddingTexts
type EmbeddingInput interface {
	embeddingInput()
}

// EmbeddingText is a single input, encoded as a JSON string
type EmbeddingText string

// EmbeddingTexts is a list of inputs, encoded as a JSON array
type EmbeddingTexts []string

// EmbeddingRequest is the body of an embedding request. Create one with
// NewEmbeddingRequest.
type EmbeddingRequest struct {
	Input          EmbeddingInput          `json:"input"`
	Model          EmbeddingModel          `json:"model"`
	EncodingFormat EmbeddingEncodingFormat `json:"encoding_format,omitempty"`
	User           string                  `json:"user,omitempty"`
}

// EmbeddingOpt sets an optional field of an embedding request
type EmbeddingOpt func(*EmbeddingRequest)

type EmbeddingResponse struct {
	Object string          `json:"object"`
	Data   []EmbeddingData `json:"data"`
	Model  string          `json:"model"`
	Usage  EmbeddingUsage  `json:"usage"`
}

type EmbeddingData struct {
	Index     int    `json:"index"`
	Embedding Vector `json:"embedding"`
	Object    string `json:"object"`
}

type EmbeddingUsage struct {
	PromptTokens uint `json:"prompt_tokens"`
	TotalTokens  uint `json:"total_tokens"`
}

// Vector is an embedding. It decodes from either an array of numbers or
// a base64 string of little-endian float32 values.
type Vector []float64

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	EmbeddingModelAda002  EmbeddingModel = "text-embedding-ada-002"
	DefaultEmbeddingModel                = EmbeddingModelAda002
)

const (
	EmbeddingEncodingFloat         EmbeddingEncodingFormat = "float"
	EmbeddingEncodingBase64        EmbeddingEncodingFormat = "base64"
	DefaultEmbeddingEncodingFormat                         = EmbeddingEncodingFloat
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewEmbeddingRequest returns a request to embed the input
func NewEmbeddingRequest(input EmbeddingInput, opts ...EmbeddingOpt) (EmbeddingRequest, error) {
	switch v := input.(type) {
	case nil:
		return EmbeddingRequest{}, llm.ErrMissingField.With("input")
	case EmbeddingText:
		if v == "" {
			return EmbeddingRequest{}, llm.ErrMissingField.With("input")
		}
	case EmbeddingTexts:
		if len(v) == 0 {
			return EmbeddingRequest{}, llm.ErrMissingField.With("input")
		}
	}
	req := EmbeddingRequest{
		Input: input,
		Model: DefaultEmbeddingModel,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req, nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

func WithEmbeddingModel(v EmbeddingModel) EmbeddingOpt {
	return func(r *EmbeddingRequest) {
		r.Model = v
	}
}

func WithEncodingFormat(v EmbeddingEncodingFormat) EmbeddingOpt {
	return func(r *EmbeddingRequest) {
		r.EncodingFormat = v
	}
}

func WithEmbeddingUser(v string) EmbeddingOpt {
	return func(r *EmbeddingRequest) {
		r.User = v
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r EmbeddingRequest) String() string {
	return types.Stringify(r)
}

func (r EmbeddingResponse) String() string {
	return types.Stringify(r)
}

func (v EmbeddingModel) String() string          { return string(v) }
func (v EmbeddingEncodingFormat) String() string { return string(v) }

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Vectors returns the embeddings ordered by their index. When the indexes
// are not a permutation of 0..n-1 the embeddings are returned in response
// order.
func (r EmbeddingResponse) Vectors() []Vector {
	result := make([]Vector, len(r.Data))
	seen := make([]bool, len(r.Data))
	for _, data := range r.Data {
		if data.Index < 0 || data.Index >= len(result) || seen[data.Index] {
			return r.ordered()
		}
		seen[data.Index] = true
		result[data.Index] = data.Embedding
	}
	return result
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (r EmbeddingResponse) ordered() []Vector {
	result := make([]Vector, 0, len(r.Data))
	for _, data := range r.Data {
		result = append(result, data.Embedding)
	}
	return result
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHALLING

// UnmarshalJSON decodes a request, with the input as either a string or
// an array of strings
func (r *EmbeddingRequest) UnmarshalJSON(data []byte) error {
	type alias EmbeddingRequest
	var v struct {
		alias
		Input json.RawMessage `json:"input"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return llm.ErrDecode.Wrap(err)
	}
	*r = EmbeddingRequest(v.alias)
	input := bytes.TrimSpace(v.Input)
	switch {
	case len(input) == 0 || string(input) == "null":
		r.Input = nil
	case input[0] == '[':
		var texts EmbeddingTexts
		if err := json.Unmarshal(input, &texts); err != nil {
			return llm.ErrDecode.Wrap(err)
		}
		r.Input = texts
	default:
		var text EmbeddingText
		if err := json.Unmarshal(input, &text); err != nil {
			return llm.ErrDecode.Wrap(err)
		}
		r.Input = text
	}
	return nil
}

func (v *Vector) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		var values []float64
		if err := json.Unmarshal(data, &values); err != nil {
			return llm.ErrDecode.Wrap(err)
		}
		*v = values
		return nil
	}

	// Base64-encoded little-endian float32 values
	var encoded string
	if err := json.Unmarshal(data, &encoded); err != nil {
		return llm.ErrDecode.Wrap(err)
	}
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return llm.ErrDecode.Wrap(err)
	}
	if len(raw)%4 != 0 {
		return llm.ErrDecode.Withf("embedding has %d bytes, not a multiple of 4", len(raw))
	}
	values := make(Vector, len(raw)/4)
	for i := range values {
		values[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:])))
	}
	*v = values
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (EmbeddingText) embeddingInput()  {}
func (EmbeddingTexts) embeddingInput() {}
