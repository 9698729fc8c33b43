package schema

import (
	// Packages
	llm "github.com/mutablelogic/go-llm-sdk"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type WhisperModel string
type WhisperResponseFormat string

// WhisperRequestType selects transcription into the spoken language, or
// translation into English
type WhisperRequestType string

// WhisperRequest is an audio transcription or translation request. It is
// sent as a multipart form, not as JSON.
type WhisperRequest struct {
	File           []byte                `json:"-"`
	Model          WhisperModel          `json:"model"`
	Language       *string               `json:"language,omitempty"`
	Prompt         *string               `json:"prompt,omitempty"`
	ResponseFormat WhisperResponseFormat `json:"response_format"`
	Temperature    *float64              `json:"temperature,omitempty"`
	Type           WhisperRequestType    `json:"type"`
}

// WhisperOpt sets an optional field of a whisper request
type WhisperOpt func(*WhisperRequest)

// WhisperResponse holds the text. The other fields are only set for the
// verbose_json response format.
type WhisperResponse struct {
	Task     string           `json:"task,omitempty"`
	Language string           `json:"language,omitempty"`
	Duration float64          `json:"duration,omitempty"`
	Text     string           `json:"text"`
	Segments []WhisperSegment `json:"segments,omitempty"`
}

type WhisperSegment struct {
	ID               int     `json:"id"`
	Seek             int     `json:"seek"`
	Start            float64 `json:"start"`
	End              float64 `json:"end"`
	Text             string  `json:"text"`
	Tokens           []int   `json:"tokens,omitempty"`
	Temperature      float64 `json:"temperature"`
	AvgLogprob       float64 `json:"avg_logprob"`
	CompressionRatio float64 `json:"compression_ratio"`
	NoSpeechProb     float64 `json:"no_speech_prob"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	WhisperModelWhisper1 WhisperModel = "whisper-1"
	DefaultWhisperModel               = WhisperModelWhisper1
)

const (
	WhisperResponseFormatJSON        WhisperResponseFormat = "json"
	WhisperResponseFormatText        WhisperResponseFormat = "text"
	WhisperResponseFormatSRT         WhisperResponseFormat = "srt"
	WhisperResponseFormatVerboseJSON WhisperResponseFormat = "verbose_json"
	WhisperResponseFormatVTT         WhisperResponseFormat = "vtt"
	DefaultWhisperResponseFormat                           = WhisperResponseFormatJSON
)

const (
	WhisperTranscription      WhisperRequestType = "transcription"
	WhisperTranslation        WhisperRequestType = "translation"
	DefaultWhisperRequestType                    = WhisperTranscription
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewWhisperRequest returns a request of the given type for the audio file
func NewWhisperRequest(file []byte, t WhisperRequestType, opts ...WhisperOpt) (WhisperRequest, error) {
	if len(file) == 0 {
		return WhisperRequest{}, llm.ErrMissingField.With("file")
	}
	if t == "" {
		t = DefaultWhisperRequestType
	}
	req := WhisperRequest{
		File:           file,
		Model:          DefaultWhisperModel,
		ResponseFormat: DefaultWhisperResponseFormat,
		Type:           t,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req, nil
}

// NewTranscriptionRequest returns a request to transcribe the audio file
func NewTranscriptionRequest(file []byte, opts ...WhisperOpt) (WhisperRequest, error) {
	return NewWhisperRequest(file, WhisperTranscription, opts...)
}

// NewTranslationRequest returns a request to translate the audio file
// into English. Any language option is not sent.
func NewTranslationRequest(file []byte, opts ...WhisperOpt) (WhisperRequest, error) {
	return NewWhisperRequest(file, WhisperTranslation, opts...)
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

func WithWhisperModel(v WhisperModel) WhisperOpt {
	return func(r *WhisperRequest) {
		r.Model = v
	}
}

// WithLanguage sets the ISO-639-1 language of the input audio
func WithLanguage(v string) WhisperOpt {
	return func(r *WhisperRequest) {
		r.Language = types.Ptr(v)
	}
}

func WithPrompt(v string) WhisperOpt {
	return func(r *WhisperRequest) {
		r.Prompt = types.Ptr(v)
	}
}

func WithWhisperResponseFormat(v WhisperResponseFormat) WhisperOpt {
	return func(r *WhisperRequest) {
		r.ResponseFormat = v
	}
}

func WithWhisperTemperature(v float64) WhisperOpt {
	return func(r *WhisperRequest) {
		r.Temperature = types.Ptr(v)
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r WhisperRequest) String() string {
	return types.Stringify(r)
}

func (r WhisperResponse) String() string {
	return types.Stringify(r)
}

func (v WhisperModel) String() string          { return string(v) }
func (v WhisperResponseFormat) String() string { return string(v) }
func (v WhisperRequestType) String() string    { return string(v) }

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsJSON returns true if the response to this format is a JSON object,
// rather than plain text
func (v WhisperResponseFormat) IsJSON() bool {
	return v == WhisperResponseFormatJSON || v == WhisperResponseFormatVerboseJSON
}
