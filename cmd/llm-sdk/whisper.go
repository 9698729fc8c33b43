package main

import (
	"fmt"
	"os"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type WhisperFlags struct {
	File        string   `arg:"" help:"Audio file" type:"existingfile"`
	Prompt      string   `name:"prompt" help:"Text to guide the style of the transcript" optional:""`
	Format      string   `name:"format" help:"Response format" enum:"json,text,srt,verbose_json,vtt" default:"${whisper_format}"`
	Temperature *float64 `name:"temperature" help:"Sampling temperature, between 0 and 1" optional:""`
}

type TranscribeCmd struct {
	WhisperFlags `embed:""`

	Language string `name:"language" help:"Language of the audio, as ISO-639-1" optional:""`
}

type TranslateCmd struct {
	WhisperFlags `embed:""`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *TranscribeCmd) Run(ctx *Globals) error {
	opts := []schema.WhisperOpt{}
	if cmd.Language != "" {
		opts = append(opts, schema.WithLanguage(cmd.Language))
	}
	return cmd.run(ctx, "TranscribeCommand", schema.WhisperTranscription, opts...)
}

func (cmd *TranslateCmd) Run(ctx *Globals) error {
	return cmd.run(ctx, "TranslateCommand", schema.WhisperTranslation)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *WhisperFlags) run(ctx *Globals, name string, t schema.WhisperRequestType, opts ...schema.WhisperOpt) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, name)
	defer func() { endSpan(err) }()

	data, err := os.ReadFile(cmd.File)
	if err != nil {
		return err
	}

	opts = append(opts, schema.WithWhisperResponseFormat(schema.WhisperResponseFormat(cmd.Format)))
	if cmd.Prompt != "" {
		opts = append(opts, schema.WithPrompt(cmd.Prompt))
	}
	if cmd.Temperature != nil {
		opts = append(opts, schema.WithWhisperTemperature(*cmd.Temperature))
	}

	req, err := schema.NewWhisperRequest(data, t, opts...)
	if err != nil {
		return err
	}
	response, err := ctx.client.Whisper(parent, req)
	if err != nil {
		return err
	}

	if req.ResponseFormat == schema.WhisperResponseFormatVerboseJSON {
		fmt.Println(response)
	} else {
		fmt.Println(response.Text)
	}

	// Return success
	return nil
}
