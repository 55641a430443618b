// Package webhook posts invoice status-change events to a merchant's HTTP
// endpoint and bridges the payment processor to the asynchronous relay.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gabapcia/paysim/internal/webhookrelay"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrEndpointRejected indicates that the merchant endpoint answered with a
// non-2xx status code.
var ErrEndpointRejected = errors.New("webhook endpoint rejected event")

// sink posts events as JSON to a fixed merchant endpoint.
type sink struct {
	endpoint   string
	httpClient *retryablehttp.Client
}

// Compile-time assertion that sink implements the Sink interface.
var _ webhookrelay.Sink = (*sink)(nil)

// NewSink creates a webhook sink pointing to the given merchant endpoint.
// The HTTP client carries its own transport-level retries for transient
// network failures; the relay adds event-level retries on top.
func NewSink(endpoint string, httpClient *retryablehttp.Client) *sink {
	return &sink{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// Deliver implements webhookrelay.Sink. It POSTs the event as JSON and
// treats any 2xx answer as delivered.
func (s *sink) Deliver(ctx context.Context, event webhookrelay.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: %s", ErrEndpointRejected, res.Status)
	}

	return nil
}
