package main

import (
	"fmt"
	"os"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	llm "github.com/mutablelogic/go-llm-sdk"
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
	yaml "gopkg.in/yaml.v3"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	Text        string   `arg:"" help:"User input text"`
	Model       string   `name:"model" help:"Model name" default:"${chat_model}"`
	System      string   `name:"system" help:"System prompt" optional:""`
	Temperature *float64 `name:"temperature" help:"Sampling temperature, between 0 and 2" optional:""`
	MaxTokens   *uint    `name:"max-tokens" help:"Maximum number of tokens to generate" optional:""`
	JSON        bool     `name:"json" help:"Reply with a JSON object"`
	Tools       string   `name:"tools" help:"YAML file of tool definitions" type:"existingfile" optional:""`
	ToolChoice  string   `name:"tool-choice" help:"none, auto or a function name" optional:""`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ChatCmd) Run(ctx *Globals) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ChatCommand")
	defer func() { endSpan(err) }()

	// Messages
	messages := []schema.Message{}
	if cmd.System != "" {
		messages = append(messages, schema.NewSystemMessage(cmd.System, ""))
	}
	messages = append(messages, schema.NewUserMessage(cmd.Text, ""))

	// Options
	opts := []schema.ChatOpt{
		schema.WithChatModel(schema.ChatModel(cmd.Model)),
	}
	if cmd.Temperature != nil {
		opts = append(opts, schema.WithTemperature(*cmd.Temperature))
	}
	if cmd.MaxTokens != nil {
		opts = append(opts, schema.WithMaxTokens(*cmd.MaxTokens))
	}
	if cmd.JSON {
		opts = append(opts, schema.WithResponseFormat(schema.ResponseFormatJSON))
	}
	if cmd.Tools != "" {
		tools, err := readTools(cmd.Tools)
		if err != nil {
			return err
		}
		opts = append(opts, schema.WithTools(tools...))
	}
	switch cmd.ToolChoice {
	case "":
		// Not set
	case schema.ToolChoiceNone.String():
		opts = append(opts, schema.WithToolChoice(schema.ToolChoiceNone))
	case schema.ToolChoiceAuto.String():
		opts = append(opts, schema.WithToolChoice(schema.ToolChoiceAuto))
	default:
		opts = append(opts, schema.WithToolChoice(schema.ToolChoiceFunction{Name: cmd.ToolChoice}))
	}

	// Request
	req, err := schema.NewChatCompletionRequest(messages, opts...)
	if err != nil {
		return err
	}
	response, err := ctx.client.ChatCompletion(parent, req)
	if err != nil {
		return err
	}

	// Print the tool calls, or the reply
	if calls := response.ToolCalls(); len(calls) > 0 {
		for _, call := range calls {
			fmt.Printf("%s(%s)\n", call.Function.Name, call.Function.Arguments)
		}
	} else {
		fmt.Println(response.Text())
	}

	// Return success
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// readTools reads a YAML list of tools. The tool type defaults to function.
func readTools(path string) ([]schema.Tool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tools []schema.Tool
	if err := yaml.Unmarshal(data, &tools); err != nil {
		return nil, llm.ErrDecode.Withf("%s: %v", path, err)
	}
	for i := range tools {
		if tools[i].Type == "" {
			tools[i].Type = schema.DefaultToolType
		}
		if tools[i].Function.Name == "" {
			return nil, llm.ErrMissingField.Withf("%s: tool %d has no name", path, i)
		}
	}
	return tools, nil
}
