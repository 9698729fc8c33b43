package openai

import (
	"bytes"
	"io"
	"net/http"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// failure is an http.RoundTripper middleware for a single request, which
// records the status and body of the last non-2xx response. The body is
// replaced so the response can still be read downstream.
type failure struct {
	http.RoundTripper
	status int
	body   []byte
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func newFailure() *failure {
	return new(failure)
}

// transport wraps the parent transport, for use with client.OptReqTransport
func (f *failure) transport(parent http.RoundTripper) http.RoundTripper {
	if parent == nil {
		parent = http.DefaultTransport
	}
	f.RoundTripper = parent
	return f
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (f *failure) RoundTrip(req *http.Request) (*http.Response, error) {
	// Each hop of a redirect resets the state
	f.status, f.body = 0, nil

	resp, err := f.RoundTripper.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return resp, nil
	}

	// Read the body, and replace it
	data, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(data))
	f.status, f.body = resp.StatusCode, data

	// Return the response
	return resp, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// failed returns true if the last response was not 2xx
func (f *failure) failed() bool {
	return f.status != 0
}
