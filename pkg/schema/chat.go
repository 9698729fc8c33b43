package schema

import (
	"encoding/json"

	// Packages
	llm "github.com/mutablelogic/go-llm-sdk"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatModel string

type FinishReason string

// ResponseFormat selects plain text or a JSON object as the reply format,
// and is encoded as {"type":<format>}
type ResponseFormat string

// ChatCompletionRequest is the body of a chat completion. Create one with
// NewChatCompletionRequest.
type ChatCompletionRequest struct {
	Model            ChatModel       `json:"model"`
	Messages         Messages        `json:"messages"`
	FrequencyPenalty *float64        `json:"frequency_penalty,omitempty"`
	MaxTokens        *uint           `json:"max_tokens,omitempty"`
	N                *uint           `json:"n,omitempty"`
	PresencePenalty  *float64        `json:"presence_penalty,omitempty"`
	ResponseFormat   *ResponseFormat `json:"response_format,omitempty"`
	Seed             *int64          `json:"seed,omitempty"`
	Stop             []string        `json:"stop,omitempty"`
	Temperature      *float64        `json:"temperature,omitempty"`
	TopP             *float64        `json:"top_p,omitempty"`
	Tools            []Tool          `json:"tools,omitempty"`
	ToolChoice       ToolChoice      `json:"tool_choice,omitempty"`
	User             string          `json:"user,omitempty"`
}

// ChatOpt sets an optional field of a chat completion request
type ChatOpt func(*ChatCompletionRequest)

// ChatCompletionResponse is the reply to a chat completion
type ChatCompletionResponse struct {
	ID                string                 `json:"id"`
	Choices           []ChatCompletionChoice `json:"choices"`
	Created           int64                  `json:"created"`
	Model             string                 `json:"model"`
	SystemFingerprint string                 `json:"system_fingerprint,omitempty"`
	Object            string                 `json:"object"`
	Usage             ChatCompletionUsage    `json:"usage"`
}

type ChatCompletionChoice struct {
	FinishReason FinishReason     `json:"finish_reason"`
	Index        int              `json:"index"`
	Message      AssistantMessage `json:"message"`
}

type ChatCompletionUsage struct {
	CompletionTokens uint `json:"completion_tokens"`
	PromptTokens     uint `json:"prompt_tokens"`
	TotalTokens      uint `json:"total_tokens"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ChatModelGPT4Turbo          ChatModel = "gpt-4-1106-preview"
	ChatModelGPT4Vision         ChatModel = "gpt-4-vision-preview"
	ChatModelGPT35Turbo         ChatModel = "gpt-3.5-turbo-1106"
	ChatModelGPT35TurboInstruct ChatModel = "gpt-3.5-turbo-instruct"
	DefaultChatModel                      = ChatModelGPT35Turbo
)

const (
	ResponseFormatText    ResponseFormat = "text"
	ResponseFormatJSON    ResponseFormat = "json_object"
	DefaultResponseFormat                = ResponseFormatJSON
)

const (
	FinishReasonStop          FinishReason = "stop"
	FinishReasonLength        FinishReason = "length"
	FinishReasonContentFilter FinishReason = "content_filter"
	FinishReasonToolCalls     FinishReason = "tool_calls"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewChatCompletionRequest returns a request for the given conversation,
// using the default model unless overridden
func NewChatCompletionRequest(messages []Message, opts ...ChatOpt) (ChatCompletionRequest, error) {
	if len(messages) == 0 {
		return ChatCompletionRequest{}, llm.ErrMissingField.With("messages")
	}
	req := ChatCompletionRequest{
		Model:    DefaultChatModel,
		Messages: Messages(messages),
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req, nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

func WithChatModel(model ChatModel) ChatOpt {
	return func(r *ChatCompletionRequest) {
		r.Model = model
	}
}

func WithFrequencyPenalty(v float64) ChatOpt {
	return func(r *ChatCompletionRequest) {
		r.FrequencyPenalty = types.Ptr(v)
	}
}

func WithMaxTokens(v uint) ChatOpt {
	return func(r *ChatCompletionRequest) {
		r.MaxTokens = types.Ptr(v)
	}
}

// WithN sets the number of choices to generate
func WithN(v uint) ChatOpt {
	return func(r *ChatCompletionRequest) {
		r.N = types.Ptr(v)
	}
}

func WithPresencePenalty(v float64) ChatOpt {
	return func(r *ChatCompletionRequest) {
		r.PresencePenalty = types.Ptr(v)
	}
}

func WithResponseFormat(v ResponseFormat) ChatOpt {
	return func(r *ChatCompletionRequest) {
		r.ResponseFormat = types.Ptr(v)
	}
}

func WithSeed(v int64) ChatOpt {
	return func(r *ChatCompletionRequest) {
		r.Seed = types.Ptr(v)
	}
}

// WithStop appends stop sequences
func WithStop(v ...string) ChatOpt {
	return func(r *ChatCompletionRequest) {
		r.Stop = append(r.Stop, v...)
	}
}

func WithTemperature(v float64) ChatOpt {
	return func(r *ChatCompletionRequest) {
		r.Temperature = types.Ptr(v)
	}
}

func WithTopP(v float64) ChatOpt {
	return func(r *ChatCompletionRequest) {
		r.TopP = types.Ptr(v)
	}
}

// WithTools appends tools the model may call
func WithTools(v ...Tool) ChatOpt {
	return func(r *ChatCompletionRequest) {
		r.Tools = append(r.Tools, v...)
	}
}

func WithToolChoice(v ToolChoice) ChatOpt {
	return func(r *ChatCompletionRequest) {
		r.ToolChoice = v
	}
}

// WithUser sets the end-user identifier
func WithUser(v string) ChatOpt {
	return func(r *ChatCompletionRequest) {
		r.User = v
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r ChatCompletionRequest) String() string {
	return types.Stringify(r)
}

func (r ChatCompletionResponse) String() string {
	return types.Stringify(r)
}

func (m ChatModel) String() string {
	return string(m)
}

func (f ResponseFormat) String() string {
	return string(f)
}

func (f FinishReason) String() string {
	return string(f)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Text returns the content of the first choice, or an empty string
func (r ChatCompletionResponse) Text() string {
	if len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Text()
}

// ToolCalls returns the tool calls of the first choice
func (r ChatCompletionResponse) ToolCalls() []ToolCall {
	if len(r.Choices) == 0 {
		return nil
	}
	return r.Choices[0].Message.ToolCalls
}

////////////////////////////////////////////////////////////////////////////////
// JSON MARSHALLING

func (f ResponseFormat) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{string(f)})
}

func (f *ResponseFormat) UnmarshalJSON(data []byte) error {
	var v struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return llm.ErrDecode.Wrap(err)
	}
	switch ResponseFormat(v.Type) {
	case ResponseFormatText, ResponseFormatJSON:
		*f = ResponseFormat(v.Type)
		return nil
	default:
		return llm.ErrDecode.Withf("unknown response format %q", v.Type)
	}
}

// UnmarshalJSON decodes a request, including the tool choice union
func (r *ChatCompletionRequest) UnmarshalJSON(data []byte) error {
	type alias ChatCompletionRequest
	var v struct {
		alias
		ToolChoice json.RawMessage `json:"tool_choice,omitempty"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return llm.ErrDecode.Wrap(err)
	}
	*r = ChatCompletionRequest(v.alias)
	if len(v.ToolChoice) > 0 && string(v.ToolChoice) != "null" {
		choice, err := DecodeToolChoice(v.ToolChoice)
		if err != nil {
			return err
		}
		r.ToolChoice = choice
	}
	return nil
}
