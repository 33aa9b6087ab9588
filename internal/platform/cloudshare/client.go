package cloudshare

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/NEXTGEN-CyberLAB/API-Tools/internal/report"
)

// DefaultBaseURL is the CloudShare v3 REST endpoint.
const DefaultBaseURL = "https://use.cloudshare.com/api/v3"

// CallObserver is notified once per call. Implemented by internal/metrics.
type CallObserver interface {
	ObserveCall(op string, success bool, duration time.Duration)
}

// Call describes a single API request.
type Call struct {
	// Op is a short, stable operation name used for logs and metrics.
	Op       string
	Method   string
	Endpoint string
	Params   map[string]string
	Body     any
	// Tag classifies the failure record if the call fails.
	Tag string
}

// Response is a structurally successful (200/201/204) response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte

	call       Call
	url        string
	reqHeaders http.Header
	reqBody    string
}

// Client issues signed requests to the CloudShare API.
type Client struct {
	baseURL    string
	signer     *Signer
	httpClient *http.Client
	recorder   report.Recorder
	observer   CallObserver
	log        logr.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (used by tests against httptest).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the HTTP client timeout. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRecorder sets where failure records are sent.
func WithRecorder(r report.Recorder) Option {
	return func(c *Client) {
		c.recorder = r
	}
}

// WithCallObserver registers a per-call observer.
func WithCallObserver(o CallObserver) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// WithLogger sets the logger used for per-call debug output (V(1)).
func WithLogger(l logr.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a new CloudShare API client.
func NewClient(creds Credentials, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		signer:     NewSigner(creds),
		httpClient: &http.Client{},
		recorder:   report.NewCollector(),
		log:        logr.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do issues a signed request. Any failure is recorded exactly once and
// returned as a *CallError; successful calls are never recorded.
func (c *Client) Do(ctx context.Context, call Call) (*Response, error) {
	start := time.Now()
	resp, err := c.do(ctx, call)
	if c.observer != nil {
		c.observer.ObserveCall(call.label(), err == nil, time.Since(start))
	}
	return resp, err
}

func (c *Client) do(ctx context.Context, call Call) (*Response, error) {
	fullURL := c.baseURL + call.Endpoint

	var bodyBytes []byte
	if call.Body != nil {
		b, err := json.Marshal(call.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s request body: %w", call.label(), err)
		}
		bodyBytes = b
	}

	auth, err := c.signer.Sign(call.Method, fullURL, call.Params)
	if err != nil {
		return nil, fmt.Errorf("failed to sign %s request: %w", call.label(), err)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, fullURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", call.label(), err)
	}
	if len(call.Params) > 0 {
		req.URL.RawQuery = encodeQuery(call.Params)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", auth)

	c.log.V(1).Info("api request", "op", call.label(), "method", call.Method, "url", req.URL.String())

	rec := report.FailureRecord{
		Tag:            call.Tag,
		Method:         call.Method,
		URL:            req.URL.String(),
		RequestHeaders: req.Header.Clone(),
		RequestBody:    string(bodyBytes),
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		rec.Kind = report.KindTransport
		rec.Error = err.Error()
		return nil, c.fail(rec, ErrTransport)
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, readErr := io.ReadAll(httpResp.Body)

	rec.StatusCode = httpResp.StatusCode
	rec.ResponseHeaders = httpResp.Header.Clone()
	rec.ResponseBody = string(respBody)

	if readErr != nil {
		rec.Kind = report.KindTransport
		rec.Error = fmt.Sprintf("failed to read response: %v", readErr)
		return nil, c.fail(rec, ErrTransport)
	}

	c.log.V(1).Info("api response", "op", call.label(), "status", httpResp.StatusCode)

	if !isSuccessStatus(httpResp.StatusCode) {
		rec.Kind = report.KindStatus
		return nil, c.fail(rec, ErrUnexpectedStatus)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       respBody,
		call:       call,
		url:        rec.URL,
		reqHeaders: rec.RequestHeaders,
		reqBody:    rec.RequestBody,
	}, nil
}

// Malformed records a 2xx response that the caller could not use and
// returns the matching *CallError.
func (c *Client) Malformed(resp *Response, reason string) error {
	rec := report.FailureRecord{
		Tag:             resp.call.Tag,
		Kind:            report.KindMalformed,
		Method:          resp.call.Method,
		URL:             resp.url,
		RequestHeaders:  resp.reqHeaders,
		RequestBody:     resp.reqBody,
		StatusCode:      resp.StatusCode,
		ResponseHeaders: resp.Header,
		ResponseBody:    string(resp.Body),
		Error:           reason,
	}
	return c.fail(rec, ErrMalformedResponse)
}

// Decode unmarshals the response body into out. An empty body (204) leaves
// out untouched.
func (r *Response) Decode(out any) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	return json.Unmarshal(r.Body, out)
}

func (c *Client) fail(rec report.FailureRecord, kind error) error {
	if c.recorder != nil {
		c.recorder.Record(rec)
	}
	c.log.V(1).Info("api call failed", "tag", rec.Tag, "kind", string(rec.Kind), "status", rec.StatusCode)
	return &CallError{Record: rec, Err: kind}
}

func (call Call) label() string {
	if call.Op != "" {
		return call.Op
	}
	return call.Endpoint
}

func isSuccessStatus(code int) bool {
	switch code {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return true
	}
	return false
}

// encodeQuery produces the query string in the same key order as the
// signed canonical form.
func encodeQuery(params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return values.Encode()
}
