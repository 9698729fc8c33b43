package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type EmbedCmd struct {
	Text   []string `arg:"" help:"Text to embed"`
	Format string   `name:"format" help:"Encoding format" enum:"float,base64" default:"${embedding_format}"`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *EmbedCmd) Run(ctx *Globals) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "EmbedCommand")
	defer func() { endSpan(err) }()

	var input schema.EmbeddingInput
	if len(cmd.Text) == 1 {
		input = schema.EmbeddingText(cmd.Text[0])
	} else {
		input = schema.EmbeddingTexts(cmd.Text)
	}

	req, err := schema.NewEmbeddingRequest(input, schema.WithEncodingFormat(schema.EmbeddingEncodingFormat(cmd.Format)))
	if err != nil {
		return err
	}
	response, err := ctx.client.Embedding(parent, req)
	if err != nil {
		return err
	}

	for i, vector := range response.Vectors() {
		fmt.Printf("%d: %v\n", i, vector)
	}

	// Return success
	return nil
}
