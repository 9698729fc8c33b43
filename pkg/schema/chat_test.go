package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	// Packages
	llm "github.com/mutablelogic/go-llm-sdk"
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func TestChatCompletionRequestMinimal(t *testing.T) {
	assert := assert.New(t)

	req, err := schema.NewChatCompletionRequest([]schema.Message{
		schema.NewUserMessage("Hello", ""),
	})
	assert.NoError(err)
	assert.Equal(schema.DefaultChatModel, req.Model)
	assert.Equal([]string{"messages", "model"}, keys(t, req))

	data, err := json.Marshal(req)
	assert.NoError(err)
	assert.JSONEq(`{"model":"gpt-3.5-turbo-1106","messages":[{"role":"user","content":"Hello"}]}`, string(data))
}

func TestChatCompletionRequestMissingMessages(t *testing.T) {
	assert := assert.New(t)

	_, err := schema.NewChatCompletionRequest(nil)
	assert.True(errors.Is(err, llm.ErrMissingField))
	assert.ErrorContains(err, "messages")
}

func TestChatCompletionRequestOptions(t *testing.T) {
	assert := assert.New(t)

	tool, err := schema.NewFunctionTool[weatherArgs]("get_weather", "")
	require.NoError(t, err)

	req, err := schema.NewChatCompletionRequest([]schema.Message{
		schema.NewSystemMessage("Be brief", ""),
		schema.NewUserMessage("Weather in Rome?", "carol"),
	},
		schema.WithChatModel(schema.ChatModelGPT4Turbo),
		schema.WithFrequencyPenalty(0.5),
		schema.WithMaxTokens(100),
		schema.WithN(2),
		schema.WithPresencePenalty(-0.5),
		schema.WithResponseFormat(schema.ResponseFormatText),
		schema.WithSeed(42),
		schema.WithStop("END"),
		schema.WithTemperature(0.7),
		schema.WithTopP(0.9),
		schema.WithTools(tool),
		schema.WithToolChoice(schema.ToolChoiceFunction{Name: "get_weather"}),
		schema.WithUser("user-1"),
	)
	assert.NoError(err)
	assert.Equal([]string{
		"frequency_penalty", "max_tokens", "messages", "model", "n", "presence_penalty",
		"response_format", "seed", "stop", "temperature", "tool_choice", "tools", "top_p", "user",
	}, keys(t, req))

	data, err := json.Marshal(req)
	assert.NoError(err)

	var v map[string]json.RawMessage
	assert.NoError(json.Unmarshal(data, &v))
	assert.JSONEq(`"gpt-4-1106-preview"`, string(v["model"]))
	assert.JSONEq(`{"type":"text"}`, string(v["response_format"]))
	assert.JSONEq(`{"function":{"type":"function","name":"get_weather"}}`, string(v["tool_choice"]))
	assert.JSONEq(`["END"]`, string(v["stop"]))
	assert.JSONEq(`0.7`, string(v["temperature"]))
}

func TestChatCompletionRequestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	tool, err := schema.NewFunctionTool[weatherArgs]("get_weather", "Return the weather")
	require.NoError(t, err)

	for _, choice := range []schema.ToolChoice{
		nil,
		schema.ToolChoiceNone,
		schema.ToolChoiceAuto,
		schema.ToolChoiceFunction{Name: "get_weather"},
	} {
		opts := []schema.ChatOpt{
			schema.WithTemperature(0.2),
			schema.WithResponseFormat(schema.DefaultResponseFormat),
			schema.WithTools(tool),
		}
		if choice != nil {
			opts = append(opts, schema.WithToolChoice(choice))
		}
		req, err := schema.NewChatCompletionRequest([]schema.Message{
			schema.NewSystemMessage("Be brief", "sys"),
			schema.NewUserMessage("Hi", ""),
			schema.NewAssistantMessage("Hello"),
			schema.NewToolMessage("ok", "call_1"),
		}, opts...)
		require.NoError(t, err)

		data, err := json.Marshal(req)
		assert.NoError(err)

		var decoded schema.ChatCompletionRequest
		assert.NoError(json.Unmarshal(data, &decoded))
		assert.Equal(req, decoded)
	}
}

func TestChatCompletionResponseToolCalls(t *testing.T) {
	assert := assert.New(t)

	var response schema.ChatCompletionResponse
	err := json.Unmarshal([]byte(`{
		"id": "chatcmpl-123",
		"object": "chat.completion",
		"created": 1699896916,
		"model": "gpt-3.5-turbo-1106",
		"system_fingerprint": "fp_1",
		"choices": [{
			"index": 0,
			"message": {
				"role": "assistant",
				"content": null,
				"tool_calls": [{
					"id": "call_abc123",
					"type": "function",
					"function": {"name": "get_weather", "arguments": "{\n\"city\": \"Boston\"\n}"}
				}]
			},
			"logprobs": null,
			"finish_reason": "tool_calls"
		}],
		"usage": {"prompt_tokens": 82, "completion_tokens": 17, "total_tokens": 99}
	}`), &response)
	assert.NoError(err)
	if assert.Len(response.Choices, 1) {
		choice := response.Choices[0]
		assert.Equal(schema.FinishReasonToolCalls, choice.FinishReason)
		assert.Nil(choice.Message.Content)
		if assert.Len(choice.Message.ToolCalls, 1) {
			call := choice.Message.ToolCalls[0]
			assert.Equal("call_abc123", call.ID)
			assert.Equal(schema.ToolTypeFunction, call.Type)
			assert.Equal("get_weather", call.Function.Name)
			assert.Equal("{\n\"city\": \"Boston\"\n}", call.Function.Arguments)
		}
	}
	assert.Equal(uint(99), response.Usage.TotalTokens)
	assert.Equal("fp_1", response.SystemFingerprint)
	assert.Equal("", response.Text())
	assert.Len(response.ToolCalls(), 1)
}

func TestResponseFormat(t *testing.T) {
	assert := assert.New(t)

	data, err := json.Marshal(schema.ResponseFormatJSON)
	assert.NoError(err)
	assert.JSONEq(`{"type":"json_object"}`, string(data))
	assert.Equal(schema.ResponseFormatJSON, schema.DefaultResponseFormat)

	var format schema.ResponseFormat
	assert.NoError(json.Unmarshal([]byte(`{"type":"text"}`), &format))
	assert.Equal(schema.ResponseFormatText, format)
	assert.Error(json.Unmarshal([]byte(`{"type":"xml"}`), &format))
}
