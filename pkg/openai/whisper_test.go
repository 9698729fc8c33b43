package openai_test

import (
	"bytes"
	"context"
	"mime"
	"mime/multipart"
	"net/http"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

// part is one decoded part of a multipart form
type part struct {
	Name        string
	FileName    string
	ContentType string
	Value       string
}

// decodeForm returns the parts of a recorded multipart request, in order
func decodeForm(t *testing.T, r recorded) []part {
	t.Helper()
	mediatype, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediatype)

	var result []part
	reader := multipart.NewReader(bytes.NewReader(r.Body), params["boundary"])
	for {
		p, err := reader.NextPart()
		if err != nil {
			break
		}
		var buf bytes.Buffer
		_, err = buf.ReadFrom(p)
		require.NoError(t, err)
		result = append(result, part{
			Name:        p.FormName(),
			FileName:    p.FileName(),
			ContentType: p.Header.Get("Content-Type"),
			Value:       buf.String(),
		})
	}
	return result
}

func names(parts []part) []string {
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		result = append(result, p.Name)
	}
	return result
}

func TestTranscription(t *testing.T) {
	assert := assert.New(t)
	s := newJSONServer(t, `{"text":"Hello world"}`)

	response, err := newClient(t, s, "").Transcription(context.Background(), []byte("ID3audio"), schema.WithLanguage("en"))
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("Hello world", response.Text)

	if requests := s.Requests(); assert.Len(requests, 1) {
		assert.Equal("/audio/transcriptions", requests[0].Path)
		parts := decodeForm(t, requests[0])
		assert.Equal([]string{"file", "model", "response_format", "prompt", "temperature", "language"}, names(parts))

		// The file part
		assert.Equal("file", parts[0].FileName)
		assert.Equal("audio/mp3", parts[0].ContentType)
		assert.Equal("ID3audio", parts[0].Value)

		// Defaults, and unset fields as empty strings
		assert.Equal("whisper-1", parts[1].Value)
		assert.Equal("json", parts[2].Value)
		assert.Equal("", parts[3].Value)
		assert.Equal("", parts[4].Value)
		assert.Equal("en", parts[5].Value)
	}
}

func TestTranslationOmitsLanguage(t *testing.T) {
	assert := assert.New(t)
	s := newJSONServer(t, `{"text":"Good morning"}`)

	// Language is set, but not sent for a translation
	req, err := schema.NewTranslationRequest([]byte("audio"),
		schema.WithLanguage("de"),
		schema.WithPrompt("greeting"),
		schema.WithWhisperTemperature(0.5),
	)
	require.NoError(t, err)
	response, err := newClient(t, s, "").Whisper(context.Background(), req)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("Good morning", response.Text)

	if requests := s.Requests(); assert.Len(requests, 1) {
		assert.Equal("/audio/translations", requests[0].Path)
		parts := decodeForm(t, requests[0])
		assert.Equal([]string{"file", "model", "response_format", "prompt", "temperature"}, names(parts))
		assert.Equal("greeting", parts[3].Value)
		assert.Equal("0.5", parts[4].Value)
	}
}

func TestTranscriptionLanguageUnset(t *testing.T) {
	assert := assert.New(t)
	s := newJSONServer(t, `{"text":""}`)

	_, err := newClient(t, s, "").Transcription(context.Background(), []byte("audio"))
	assert.NoError(err)
	if requests := s.Requests(); assert.Len(requests, 1) {
		parts := decodeForm(t, requests[0])
		if assert.Len(parts, 6) {
			assert.Equal("language", parts[5].Name)
			assert.Equal("", parts[5].Value)
		}
	}
}

func TestWhisperText(t *testing.T) {
	assert := assert.New(t)
	srt := "1\n00:00:00,000 --> 00:00:01,000\nHello\n"
	s := newServer(t, http.StatusOK, "text/plain; charset=utf-8", []byte(srt))

	response, err := newClient(t, s, "").Transcription(context.Background(), []byte("audio"),
		schema.WithWhisperResponseFormat(schema.WhisperResponseFormatSRT),
	)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal(srt, response.Text)
}

func TestWhisperVerboseJSON(t *testing.T) {
	assert := assert.New(t)
	s := newJSONServer(t, `{
		"task": "transcribe",
		"language": "english",
		"duration": 1.5,
		"text": "Hello",
		"segments": [{"id": 0, "seek": 0, "start": 0.0, "end": 1.5, "text": "Hello", "tokens": [1, 2], "temperature": 0.0, "avg_logprob": -0.2, "compression_ratio": 0.8, "no_speech_prob": 0.01}]
	}`)

	response, err := newClient(t, s, "").Transcription(context.Background(), []byte("audio"),
		schema.WithWhisperResponseFormat(schema.WhisperResponseFormatVerboseJSON),
	)
	if !assert.NoError(err) {
		t.FailNow()
	}
	assert.Equal("Hello", response.Text)
	assert.Equal("english", response.Language)
	assert.Equal(1.5, response.Duration)
	if assert.Len(response.Segments, 1) {
		assert.Equal(1.5, response.Segments[0].End)
	}
}
