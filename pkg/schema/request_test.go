package schema_test

import (
	"encoding/base64"
	"encoding/binary"
	"encoding/json"
	"errors"
	"math"
	"testing"

	// Packages
	llm "github.com/mutablelogic/go-llm-sdk"
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

func TestCreateImageRequest(t *testing.T) {
	assert := assert.New(t)

	// Only prompt and model are sent by default
	req, err := schema.NewCreateImageRequest("A red fox")
	assert.NoError(err)
	assert.Equal([]string{"model", "prompt"}, keys(t, req))
	data, err := json.Marshal(req)
	assert.NoError(err)
	assert.JSONEq(`{"prompt":"A red fox","model":"dall-e-3"}`, string(data))

	// All options
	req, err = schema.NewCreateImageRequest("A red fox",
		schema.WithImageCount(1),
		schema.WithImageQuality(schema.ImageQualityHD),
		schema.WithImageResponseFormat(schema.ImageResponseFormatB64JSON),
		schema.WithImageSize(schema.ImageSize1792x1024),
		schema.WithImageStyle(schema.ImageStyleNatural),
		schema.WithImageUser("u"),
	)
	assert.NoError(err)
	data, err = json.Marshal(req)
	assert.NoError(err)
	assert.JSONEq(`{"prompt":"A red fox","model":"dall-e-3","n":1,"quality":"hd","response_format":"b64_json","size":"1792x1024","style":"natural","user":"u"}`, string(data))

	// Prompt is required
	_, err = schema.NewCreateImageRequest("")
	assert.True(errors.Is(err, llm.ErrMissingField))
}

func TestImageObjectDecode(t *testing.T) {
	assert := assert.New(t)

	var response schema.CreateImageResponse
	assert.NoError(json.Unmarshal([]byte(`{"created":1,"data":[{"b64_json":"aGVsbG8=","revised_prompt":"a fox"}]}`), &response))
	if assert.Len(response.Data, 1) {
		data, err := response.Data[0].Decode()
		assert.NoError(err)
		assert.Equal([]byte("hello"), data)
		assert.Equal("a fox", response.Data[0].RevisedPrompt)
	}

	_, err := schema.ImageObject{URL: "https://example.com/a.png"}.Decode()
	assert.Error(err)
}

func TestSpeechRequest(t *testing.T) {
	assert := assert.New(t)

	req, err := schema.NewSpeechRequest("Hello there")
	assert.NoError(err)
	data, err := json.Marshal(req)
	assert.NoError(err)
	assert.JSONEq(`{"model":"tts-1","input":"Hello there","voice":"echo","response_format":"mp3"}`, string(data))

	req, err = schema.NewSpeechRequest("Hello there",
		schema.WithSpeechModel(schema.SpeechModelTTS1HD),
		schema.WithVoice(schema.SpeechVoiceNova),
		schema.WithSpeechResponseFormat(schema.SpeechResponseFormatFLAC),
		schema.WithSpeed(1.5),
	)
	assert.NoError(err)
	data, err = json.Marshal(req)
	assert.NoError(err)
	assert.JSONEq(`{"model":"tts-1-hd","input":"Hello there","voice":"nova","response_format":"flac","speed":1.5}`, string(data))

	_, err = schema.NewSpeechRequest("")
	assert.True(errors.Is(err, llm.ErrMissingField))
}

func TestWhisperRequest(t *testing.T) {
	assert := assert.New(t)

	req, err := schema.NewTranscriptionRequest([]byte("audio"))
	assert.NoError(err)
	assert.Equal(schema.WhisperTranscription, req.Type)
	assert.Equal(schema.DefaultWhisperModel, req.Model)
	assert.Equal(schema.WhisperResponseFormatJSON, req.ResponseFormat)
	assert.Nil(req.Language)
	assert.Nil(req.Prompt)
	assert.Nil(req.Temperature)

	req, err = schema.NewTranslationRequest([]byte("audio"),
		schema.WithLanguage("de"),
		schema.WithPrompt("context"),
		schema.WithWhisperTemperature(0.3),
		schema.WithWhisperResponseFormat(schema.WhisperResponseFormatVTT),
	)
	assert.NoError(err)
	assert.Equal(schema.WhisperTranslation, req.Type)
	assert.Equal("de", *req.Language)
	assert.Equal("context", *req.Prompt)
	assert.Equal(0.3, *req.Temperature)
	assert.False(req.ResponseFormat.IsJSON())
	assert.True(schema.WhisperResponseFormatVerboseJSON.IsJSON())

	// Request type defaults to transcription
	req, err = schema.NewWhisperRequest([]byte("audio"), "")
	assert.NoError(err)
	assert.Equal(schema.DefaultWhisperRequestType, req.Type)

	_, err = schema.NewTranscriptionRequest(nil)
	assert.True(errors.Is(err, llm.ErrMissingField))
}

func TestEmbeddingRequest(t *testing.T) {
	assert := assert.New(t)

	// Single input is a string
	req, err := schema.NewEmbeddingRequest(schema.EmbeddingText("hello"))
	assert.NoError(err)
	data, err := json.Marshal(req)
	assert.NoError(err)
	assert.JSONEq(`{"input":"hello","model":"text-embedding-ada-002"}`, string(data))

	var decoded schema.EmbeddingRequest
	assert.NoError(json.Unmarshal(data, &decoded))
	assert.Equal(req, decoded)

	// Multiple inputs are an array
	req, err = schema.NewEmbeddingRequest(schema.EmbeddingTexts{"a", "b"},
		schema.WithEncodingFormat(schema.EmbeddingEncodingBase64),
		schema.WithEmbeddingUser("u"),
	)
	assert.NoError(err)
	data, err = json.Marshal(req)
	assert.NoError(err)
	assert.JSONEq(`{"input":["a","b"],"model":"text-embedding-ada-002","encoding_format":"base64","user":"u"}`, string(data))
	assert.NoError(json.Unmarshal(data, &decoded))
	assert.Equal(req, decoded)

	// Input is required
	for _, input := range []schema.EmbeddingInput{nil, schema.EmbeddingText(""), schema.EmbeddingTexts{}} {
		_, err = schema.NewEmbeddingRequest(input)
		assert.True(errors.Is(err, llm.ErrMissingField))
	}
}

func TestEmbeddingResponse(t *testing.T) {
	assert := assert.New(t)

	// Float encoding
	var response schema.EmbeddingResponse
	assert.NoError(json.Unmarshal([]byte(`{
		"object":"list",
		"data":[{"object":"embedding","index":0,"embedding":[0.5,-1.25]}],
		"model":"text-embedding-ada-002",
		"usage":{"prompt_tokens":2,"total_tokens":2}
	}`), &response))
	if assert.Len(response.Data, 1) {
		assert.Equal(schema.Vector{0.5, -1.25}, response.Data[0].Embedding)
	}
	assert.Equal(uint(2), response.Usage.PromptTokens)

	// Base64 encoding of little-endian float32 values
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint32(raw[0:], math.Float32bits(0.5))
	binary.LittleEndian.PutUint32(raw[4:], math.Float32bits(-1.25))
	body, err := json.Marshal(map[string]any{
		"object": "list",
		"data": []map[string]any{
			{"object": "embedding", "index": 1, "embedding": base64.StdEncoding.EncodeToString(raw)},
			{"object": "embedding", "index": 0, "embedding": []float64{1}},
		},
	})
	assert.NoError(err)
	assert.NoError(json.Unmarshal(body, &response))
	vectors := response.Vectors()
	if assert.Len(vectors, 2) {
		assert.Equal(schema.Vector{1}, vectors[0])
		assert.Equal(schema.Vector{0.5, -1.25}, vectors[1])
	}

	// Not a multiple of four bytes
	var v schema.Vector
	err = json.Unmarshal([]byte(`"AAA="`), &v)
	assert.True(errors.Is(err, llm.ErrDecode))
}

func TestEmbeddingVectorsOrder(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		name string
		data []schema.EmbeddingData
		want []schema.Vector
	}{
		{"ByIndex", []schema.EmbeddingData{
			{Index: 2, Embedding: schema.Vector{3}},
			{Index: 0, Embedding: schema.Vector{1}},
			{Index: 1, Embedding: schema.Vector{2}},
		}, []schema.Vector{{1}, {2}, {3}}},
		{"DuplicateIndex", []schema.EmbeddingData{
			{Index: 0, Embedding: schema.Vector{1}},
			{Index: 0, Embedding: schema.Vector{2}},
		}, []schema.Vector{{1}, {2}}},
		{"IndexOutOfRange", []schema.EmbeddingData{
			{Index: 5, Embedding: schema.Vector{1}},
			{Index: 0, Embedding: schema.Vector{2}},
		}, []schema.Vector{{1}, {2}}},
		{"Empty", nil, []schema.Vector{}},
	}

	for _, test := range tests {
		vectors := schema.EmbeddingResponse{Data: test.data}.Vectors()
		assert.Equal(test.want, vectors, test.name)
		for _, v := range vectors {
			assert.NotNil(v, test.name)
		}
	}
}
