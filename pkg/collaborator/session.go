package collaborator

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Session is the outbound connection scope a single journey request runs in
type Session interface {
	Get(ctx context.Context, service Service, params url.Values, out any) error
}

// ScopedSession is a Session that must be released once the request is done
type ScopedSession interface {
	Session
	Calls() int64
	Release()
}

type SessionSource interface {
	AcquireSession() ScopedSession
}

// Pool hands out one HTTPSession per request. Each session owns its own transport so
// releasing it tears down every connection the request opened.
type Pool struct {
	Endpoints Endpoints
	// Timeout of zero leaves outbound calls unbounded
	Timeout time.Duration
}

func NewPool(endpoints Endpoints, timeout time.Duration) *Pool {
	return &Pool{
		Endpoints: endpoints,
		Timeout:   timeout,
	}
}

func (p *Pool) Acquire() *HTTPSession {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	return &HTTPSession{
		endpoints: p.Endpoints,
		transport: transport,
		client: &http.Client{
			Transport: transport,
			Timeout:   p.Timeout,
		},
	}
}

func (p *Pool) AcquireSession() ScopedSession {
	return p.Acquire()
}

type HTTPSession struct {
	endpoints Endpoints
	transport *http.Transport
	client    *http.Client

	calls    atomic.Int64
	released atomic.Bool
}

func (s *HTTPSession) Get(ctx context.Context, service Service, params url.Values, out any) error {
	if s.released.Load() {
		return NewUpstreamFailure(service, nil, "%s session already released", service.Title())
	}

	endpoint, exists := s.endpoints[service]
	if !exists || endpoint.URL == "" {
		return NewUpstreamFailure(service, nil, "No endpoint configured for %s service", service)
	}

	requestURL := endpoint.URL
	if len(params) > 0 {
		separator := "?"
		if strings.Contains(requestURL, "?") {
			separator = "&"
		}
		requestURL += separator + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return NewUpstreamFailure(service, errors.Wrap(err, "build request"), "Error connecting to %s service: %s", service, err)
	}
	req.Header.Set("Accept", "application/json")
	for key, value := range endpoint.Headers {
		req.Header.Set(key, value)
	}

	s.calls.Add(1)

	resp, err := s.client.Do(req)
	if err != nil {
		return NewUpstreamFailure(service, errors.Wrap(err, "do request"), "Error connecting to %s service: %s", service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewUpstreamFailure(service, errors.Wrap(err, "read body"), "Error reading %s response: %s", service, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Debug().
			Str("service", string(service)).
			Int("status", resp.StatusCode).
			Msg("Collaborator returned non-2xx response")

		upstreamError := NewUpstreamFailure(service, nil, "%s API error: %s", service.Title(), strings.TrimSpace(string(body)))
		upstreamError.StatusCode = resp.StatusCode
		return upstreamError
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return NewUpstreamFailure(service, errors.Wrap(err, "decode body"), "Invalid %s response: %s", service, err)
	}

	return nil
}

// Calls is the number of outbound requests issued through this session
func (s *HTTPSession) Calls() int64 {
	return s.calls.Load()
}

func (s *HTTPSession) Released() bool {
	return s.released.Load()
}

func (s *HTTPSession) Release() {
	if s.released.Swap(true) {
		return
	}

	s.transport.CloseIdleConnections()
}
