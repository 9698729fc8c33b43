package openai

import (
	"log/slog"

	// Packages
	client "github.com/mutablelogic/go-client"
	llm "github.com/mutablelogic/go-llm-sdk"
	prometheus "github.com/prometheus/client_golang/prometheus"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring the client
type Opt func(*options) error

type options struct {
	clientopts []client.ClientOpt
	logger     *slog.Logger
	tracer     trace.Tracer
	registerer prometheus.Registerer
	userAgent  string
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithClientOpts passes options to the underlying HTTP client, for example
// client.OptTrace to dump requests and responses. The endpoint and timeout
// cannot be overridden.
func WithClientOpts(opts ...client.ClientOpt) Opt {
	return func(o *options) error {
		o.clientopts = append(o.clientopts, opts...)
		return nil
	}
}

// WithLogger sets the logger for failed requests
func WithLogger(logger *slog.Logger) Opt {
	return func(o *options) error {
		if logger == nil {
			return llm.ErrBadParameter.With("logger is required")
		}
		o.logger = logger
		return nil
	}
}

// WithTracer creates a span for each request
func WithTracer(tracer trace.Tracer) Opt {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}

// WithMetrics registers request counters and durations
func WithMetrics(registerer prometheus.Registerer) Opt {
	return func(o *options) error {
		if registerer == nil {
			return llm.ErrBadParameter.With("registerer is required")
		}
		o.registerer = registerer
		return nil
	}
}

// WithUserAgent replaces the default User-Agent header
func WithUserAgent(v string) Opt {
	return func(o *options) error {
		o.userAgent = v
		return nil
	}
}
