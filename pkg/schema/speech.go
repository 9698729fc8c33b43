package schema

import (
	// Packages
	llm "github.com/mutablelogic/go-llm-sdk"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type SpeechModel string
type SpeechVoice string
type SpeechResponseFormat string

// SpeechRequest is the body of a text-to-speech request. Create one with
// NewSpeechRequest. The response is the encoded audio.
type SpeechRequest struct {
	Model          SpeechModel          `json:"model"`
	Input          string               `json:"input"`
	Voice          SpeechVoice          `json:"voice"`
	ResponseFormat SpeechResponseFormat `json:"response_format"`
	Speed          *float64             `json:"speed,omitempty"`
}

// SpeechOpt sets an optional field of a speech request
type SpeechOpt func(*SpeechRequest)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	SpeechModelTTS1    SpeechModel = "tts-1"
	SpeechModelTTS1HD  SpeechModel = "tts-1-hd"
	DefaultSpeechModel             = SpeechModelTTS1
)

const (
	SpeechVoiceAlloy   SpeechVoice = "alloy"
	SpeechVoiceEcho    SpeechVoice = "echo"
	SpeechVoiceFable   SpeechVoice = "fable"
	SpeechVoiceOnyx    SpeechVoice = "onyx"
	SpeechVoiceNova    SpeechVoice = "nova"
	SpeechVoiceShimmer SpeechVoice = "shimmer"
	DefaultSpeechVoice             = SpeechVoiceEcho
)

const (
	SpeechResponseFormatMP3     SpeechResponseFormat = "mp3"
	SpeechResponseFormatOpus    SpeechResponseFormat = "opus"
	SpeechResponseFormatAAC     SpeechResponseFormat = "aac"
	SpeechResponseFormatFLAC    SpeechResponseFormat = "flac"
	DefaultSpeechResponseFormat                      = SpeechResponseFormatMP3
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewSpeechRequest returns a request to speak the input text
func NewSpeechRequest(input string, opts ...SpeechOpt) (SpeechRequest, error) {
	if input == "" {
		return SpeechRequest{}, llm.ErrMissingField.With("input")
	}
	req := SpeechRequest{
		Model:          DefaultSpeechModel,
		Input:          input,
		Voice:          DefaultSpeechVoice,
		ResponseFormat: DefaultSpeechResponseFormat,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req, nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

func WithSpeechModel(v SpeechModel) SpeechOpt {
	return func(r *SpeechRequest) {
		r.Model = v
	}
}

func WithVoice(v SpeechVoice) SpeechOpt {
	return func(r *SpeechRequest) {
		r.Voice = v
	}
}

func WithSpeechResponseFormat(v SpeechResponseFormat) SpeechOpt {
	return func(r *SpeechRequest) {
		r.ResponseFormat = v
	}
}

// WithSpeed sets the speed of the generated audio, where 1.0 is normal
func WithSpeed(v float64) SpeechOpt {
	return func(r *SpeechRequest) {
		r.Speed = types.Ptr(v)
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r SpeechRequest) String() string {
	return types.Stringify(r)
}

func (v SpeechModel) String() string          { return string(v) }
func (v SpeechVoice) String() string          { return string(v) }
func (v SpeechResponseFormat) String() string { return string(v) }
