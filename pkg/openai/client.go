/*
openai implements a client for the OpenAI generative AI API: chat
completions, image generation, speech, transcription and translation,
and embeddings.
https://platform.openai.com/docs/api-reference
*/
package openai

import (
	"context"
	"log/slog"
	"time"

	// Packages
	client "github.com/mutablelogic/go-client"
	otel "github.com/mutablelogic/go-client/pkg/otel"
	llm "github.com/mutablelogic/go-llm-sdk"
	version "github.com/mutablelogic/go-llm-sdk/pkg/version"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client sends requests to the API. It is safe for concurrent use.
type Client struct {
	*client.Client
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *metrics
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// DefaultEndpoint is used when no endpoint is given
	DefaultEndpoint = "https://api.openai.com/v1"

	// Timeout applies to every request
	Timeout = 30 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a client for the endpoint, or the default endpoint when
// empty. The token is sent as a bearer credential when not empty.
func New(endpoint, token string, opts ...Opt) (*Client, error) {
	o := options{
		logger:    slog.Default(),
		userAgent: version.UserAgent(),
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	// Client options, with the endpoint and timeout applied last
	clientopts := append([]client.ClientOpt{}, o.clientopts...)
	if o.userAgent != "" {
		clientopts = append(clientopts, client.OptUserAgent(o.userAgent))
	}
	if o.tracer != nil {
		clientopts = append(clientopts, client.OptTracer(o.tracer))
	}
	if token != "" {
		clientopts = append(clientopts, client.OptReqToken(client.Token{
			Scheme: client.Bearer,
			Value:  token,
		}))
	}
	clientopts = append(clientopts, client.OptEndpoint(endpoint), client.OptTimeout(Timeout))

	// Metrics
	var m *metrics
	if o.registerer != nil {
		if v, err := newMetrics(o.registerer); err != nil {
			return nil, err
		} else {
			m = v
		}
	}

	if c, err := client.New(clientopts...); err != nil {
		return nil, err
	} else {
		return &Client{
			Client:  c,
			logger:  o.logger,
			tracer:  o.tracer,
			metrics: m,
		}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// do sends an encoded request and decodes the response into out. A non-2xx
// response is logged and returned as a *llm.RemoteError with the status and
// body as received. Transport errors are returned unchanged.
func (c *Client) do(ctx context.Context, req *request, out any) (err error) {
	// Otel span
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, req.operation,
		attribute.String("path", req.Path()),
		attribute.String("model", req.model),
	)
	defer func() { endSpan(err) }()

	// Metrics
	start := time.Now()
	defer func() { c.metrics.observe(req.operation, err, time.Since(start)) }()

	// Send the request
	failure := newFailure()
	if err := c.DoWithContext(ctx, req.payload, out, client.OptPath(req.path...), client.OptReqTransport(failure.transport)); err != nil {
		if failure.failed() {
			return c.remoteError(ctx, req, failure.status, string(failure.body), err)
		}
		return err
	}

	// Return success
	return nil
}

// remoteError logs a failed response and returns it as a RemoteError
func (c *Client) remoteError(ctx context.Context, req *request, status int, body string, err error) error {
	c.logger.ErrorContext(ctx, "API failed",
		slog.String("operation", req.operation),
		slog.String("path", req.Path()),
		slog.Int("status", status),
		slog.String("body", body),
	)
	return llm.NewRemoteError(status, body, err)
}
