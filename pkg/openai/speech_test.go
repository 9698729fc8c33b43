package openai_test

import (
	"context"
	"net/http"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestSpeech(t *testing.T) {
	assert := assert.New(t)
	audio := []byte{0xFF, 0xFB, 0x90, 0x00, 0x01, 0x02}
	s := newServer(t, http.StatusOK, "audio/mpeg", audio)

	req, err := schema.NewSpeechRequest("Hello there", schema.WithVoice(schema.SpeechVoiceAlloy))
	require.NoError(t, err)
	data, err := newClient(t, s, "sk-test").Speech(context.Background(), req)
	assert.NoError(err)
	assert.Equal(audio, data)

	if requests := s.Requests(); assert.Len(requests, 1) {
		assert.Equal("/audio/speech", requests[0].Path)
		body := decodeBody(t, requests[0])
		assert.Len(body, 4)
		assert.JSONEq(`"tts-1"`, string(body["model"]))
		assert.JSONEq(`"Hello there"`, string(body["input"]))
		assert.JSONEq(`"alloy"`, string(body["voice"]))
		assert.JSONEq(`"mp3"`, string(body["response_format"]))
	}
}
