package schema

import (
	"encoding/base64"

	// Packages
	llm "github.com/mutablelogic/go-llm-sdk"
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ImageModel string
type ImageQuality string
type ImageResponseFormat string
type ImageSize string
type ImageStyle string

// CreateImageRequest is the body of an image generation. Create one with
// NewCreateImageRequest.
type CreateImageRequest struct {
	Prompt         string              `json:"prompt"`
	Model          ImageModel          `json:"model"`
	N              *uint               `json:"n,omitempty"`
	Quality        ImageQuality        `json:"quality,omitempty"`
	ResponseFormat ImageResponseFormat `json:"response_format,omitempty"`
	Size           ImageSize           `json:"size,omitempty"`
	Style          ImageStyle          `json:"style,omitempty"`
	User           string              `json:"user,omitempty"`
}

// ImageOpt sets an optional field of an image request
type ImageOpt func(*CreateImageRequest)

type CreateImageResponse struct {
	Created int64         `json:"created"`
	Data    []ImageObject `json:"data"`
}

// ImageObject is one generated image, as either a URL or base64 data
// depending on the requested response format
type ImageObject struct {
	B64JSON       string `json:"b64_json,omitempty"`
	URL           string `json:"url,omitempty"`
	RevisedPrompt string `json:"revised_prompt,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ImageModelDallE3  ImageModel = "dall-e-3"
	DefaultImageModel            = ImageModelDallE3
)

const (
	ImageQualityStandard ImageQuality = "standard"
	ImageQualityHD       ImageQuality = "hd"
	DefaultImageQuality               = ImageQualityStandard
)

const (
	ImageResponseFormatURL     ImageResponseFormat = "url"
	ImageResponseFormatB64JSON ImageResponseFormat = "b64_json"
	DefaultImageResponseFormat                     = ImageResponseFormatURL
)

const (
	ImageSize1024x1024 ImageSize = "1024x1024"
	ImageSize1792x1024 ImageSize = "1792x1024"
	ImageSize1024x1792 ImageSize = "1024x1792"
	DefaultImageSize             = ImageSize1024x1024
)

const (
	ImageStyleVivid   ImageStyle = "vivid"
	ImageStyleNatural ImageStyle = "natural"
	DefaultImageStyle            = ImageStyleVivid
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewCreateImageRequest returns a request to generate images from a prompt
func NewCreateImageRequest(prompt string, opts ...ImageOpt) (CreateImageRequest, error) {
	if prompt == "" {
		return CreateImageRequest{}, llm.ErrMissingField.With("prompt")
	}
	req := CreateImageRequest{
		Prompt: prompt,
		Model:  DefaultImageModel,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return req, nil
}

////////////////////////////////////////////////////////////////////////////////
// OPTIONS

func WithImageModel(v ImageModel) ImageOpt {
	return func(r *CreateImageRequest) {
		r.Model = v
	}
}

// WithImageCount sets the number of images to generate
func WithImageCount(v uint) ImageOpt {
	return func(r *CreateImageRequest) {
		r.N = types.Ptr(v)
	}
}

func WithImageQuality(v ImageQuality) ImageOpt {
	return func(r *CreateImageRequest) {
		r.Quality = v
	}
}

func WithImageResponseFormat(v ImageResponseFormat) ImageOpt {
	return func(r *CreateImageRequest) {
		r.ResponseFormat = v
	}
}

func WithImageSize(v ImageSize) ImageOpt {
	return func(r *CreateImageRequest) {
		r.Size = v
	}
}

func WithImageStyle(v ImageStyle) ImageOpt {
	return func(r *CreateImageRequest) {
		r.Style = v
	}
}

func WithImageUser(v string) ImageOpt {
	return func(r *CreateImageRequest) {
		r.User = v
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r CreateImageRequest) String() string {
	return types.Stringify(r)
}

func (r CreateImageResponse) String() string {
	return types.Stringify(r)
}

func (v ImageModel) String() string          { return string(v) }
func (v ImageQuality) String() string        { return string(v) }
func (v ImageResponseFormat) String() string { return string(v) }
func (v ImageSize) String() string           { return string(v) }
func (v ImageStyle) String() string          { return string(v) }

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Decode returns the image data of a b64_json response
func (o ImageObject) Decode() ([]byte, error) {
	if o.B64JSON == "" {
		return nil, llm.ErrBadParameter.With("image has no inline data")
	}
	data, err := base64.StdEncoding.DecodeString(o.B64JSON)
	if err != nil {
		return nil, llm.ErrDecode.Wrap(err)
	}
	return data, nil
}
