package openai

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"

	// Packages
	headers "github.com/go-http-utils/headers"
	client "github.com/mutablelogic/go-client"
	schema "github.com/mutablelogic/go-llm-sdk/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// multipartPayload is a buffered multipart/form-data request body
type multipartPayload struct {
	*bytes.Buffer
	contentType string
	accept      string
}

var _ client.Payload = (*multipartPayload)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	whisperFileName        = "file"
	whisperFileContentType = "audio/mp3"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// newWhisperPayload encodes the audio file and fields as a form. Unset
// optional fields are sent as empty strings, and the language is only
// sent for transcriptions.
func newWhisperPayload(req schema.WhisperRequest) (*multipartPayload, error) {
	buf := new(bytes.Buffer)
	w := multipart.NewWriter(buf)

	// File part
	part, err := w.CreatePart(textproto.MIMEHeader{
		headers.ContentDisposition: {`form-data; name="file"; filename="` + whisperFileName + `"`},
		headers.ContentType:        {whisperFileContentType},
	})
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(req.File); err != nil {
		return nil, err
	}

	// Text parts
	fields := [][2]string{
		{"model", req.Model.String()},
		{"response_format", req.ResponseFormat.String()},
		{"prompt", types.Value(req.Prompt)},
		{"temperature", floatValue(req.Temperature)},
	}
	if req.Type != schema.WhisperTranslation {
		fields = append(fields, [2]string{"language", types.Value(req.Language)})
	}
	for _, field := range fields {
		if err := w.WriteField(field[0], field[1]); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	// Text response formats are not JSON
	accept := client.ContentTypeJson
	if !req.ResponseFormat.IsJSON() {
		accept = client.ContentTypeAny
	}

	return &multipartPayload{
		Buffer:      buf,
		contentType: w.FormDataContentType(),
		accept:      accept,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (p *multipartPayload) Method() string {
	return http.MethodPost
}

func (p *multipartPayload) Accept() string {
	return p.accept
}

func (p *multipartPayload) Type() string {
	return p.contentType
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func floatValue(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
