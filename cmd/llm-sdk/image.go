package main

import (
	"fmt"
	"os"
	"path/filepath"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ImageCmd struct {
	Prompt  string `arg:"" help:"Image description"`
	Size    string `name:"size" help:"Image size" enum:"1024x1024,1792x1024,1024x1792" default:"${image_size}"`
	Quality string `name:"quality" help:"Image quality" enum:"standard,hd" default:"${image_quality}"`
	Style   string `name:"style" help:"Image style" enum:"vivid,natural" default:"${image_style}"`
	N       *uint  `name:"n" help:"Number of images" optional:""`
	B64     bool   `name:"b64" help:"Return image data rather than URLs"`
	Out     string `name:"out" help:"Directory to write images to, with --b64" type:"existingdir" optional:""`
}

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *ImageCmd) Run(ctx *Globals) (err error) {
	// OTEL
	parent, endSpan := otel.StartSpan(ctx.tracer, ctx.ctx, "ImageCommand")
	defer func() { endSpan(err) }()

	opts := []schema.ImageOpt{
		schema.WithImageSize(schema.ImageSize(cmd.Size)),
		schema.WithImageQuality(schema.ImageQuality(cmd.Quality)),
		schema.WithImageStyle(schema.ImageStyle(cmd.Style)),
	}
	if cmd.N != nil {
		opts = append(opts, schema.WithImageCount(*cmd.N))
	}
	if cmd.B64 {
		opts = append(opts, schema.WithImageResponseFormat(schema.ImageResponseFormatB64JSON))
	}

	req, err := schema.NewCreateImageRequest(cmd.Prompt, opts...)
	if err != nil {
		return err
	}
	response, err := ctx.client.CreateImage(parent, req)
	if err != nil {
		return err
	}

	for i, image := range response.Data {
		if image.RevisedPrompt != "" {
			ctx.logger.Debug("revised prompt", "index", i, "prompt", image.RevisedPrompt)
		}
		if image.URL != "" {
			fmt.Println(image.URL)
			continue
		}
		data, err := image.Decode()
		if err != nil {
			return err
		}
		path := filepath.Join(cmd.Out, fmt.Sprintf("image-%d-%d.png", response.Created, i))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		fmt.Println(path)
	}

	// Return success
	return nil
}
