package main

import (
	"os"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type SpeechCmd struct {
	Text   string   `arg:"" help:"Text to speak"`
	Out    string   `name:"out" help:"Output file" required:""`
	Model  string   `name:"model" help:"Model name" enum:"tts-1,tts-1-hd" default:"${speech_model}"`
	Voice  string   `name:"voice" help:"Voice" enum:"alloy,echo,fable,onyx,nova,shimmer" default:"${speech_voice}"`
	Format string   `name:"format" help:"Audio format" enum:"mp3,opus,aac,flac" default:"${speech_format}"`
	Speed  *float64 `name:"speed" help:"Speed, between 0.25 and 4.0" optional:""`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *SpeechCmd) Run(ctx *Globals) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "SpeechCommand")
	defer func() { endSpan(err) }()

	opts := []schema.SpeechOpt{
		schema.WithSpeechModel(schema.SpeechModel(cmd.Model)),
		schema.WithVoice(schema.SpeechVoice(cmd.Voice)),
		schema.WithSpeechResponseFormat(schema.SpeechResponseFormat(cmd.Format)),
	}
	if cmd.Speed != nil {
		opts = append(opts, schema.WithSpeed(*cmd.Speed))
	}

	req, err := schema.NewSpeechRequest(cmd.Text, opts...)
	if err != nil {
		return err
	}
	data, err := ctx.client.Speech(parent, req)
	if err != nil {
		return err
	}

	// Write the audio
	return os.WriteFile(cmd.Out, data, 0o644)
}
