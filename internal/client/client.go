package client

import (
	"bytes"
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const DefaultBaseURL = "https://veles-cloud.execon.pl:7990"

const (
	headerAPIKey    = "X-API-Key"
	headerRequestID = "X-Request-ID"

	maxResponseBytes = 64 << 20
	maxTraceBytes    = 2 << 20

	connectTimeout        = 10 * time.Second
	tlsHandshakeTimeout   = 10 * time.Second
	expectContinueTimeout = 1 * time.Second
	keepAliveTimeout      = 30 * time.Second
	idleConnTimeout       = 90 * time.Second
	maxIdleConns          = 100
	maxIdleConnsPerHost   = 10
)

var ErrAPIKeyRequired = errors.New("api key is required")

type TraceEvent struct {
	Stage      string
	Method     string
	URL        string
	RequestID  string
	StatusCode int
	DurationMs int64
	Request    string
	Response   string
	Error      string
}

// StatusError is returned for every non-2xx response.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s due to: %s", status, e.Body)
}

type Options struct {
	BaseURL string
	APIKey  string
	SSLMode SSLMode
	// CAFile is a PEM bundle trusted in addition to the system roots.
	CAFile string
	// HTTPClient replaces the client built from SSLMode and CAFile.
	HTTPClient *http.Client
}

// API talks to one Weles AI deployment. It owns its HTTP client, so APIs
// with different trust settings can live in the same process.
type API struct {
	baseURL string
	apiKey  string
	http    *http.Client
	trace   func(TraceEvent)
}

func New(opts Options) (*API, error) {
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		return nil, ErrAPIKeyRequired
	}
	mode, err := ParseSSLMode(string(opts.SSLMode))
	if err != nil {
		return nil, err
	}
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	hc := opts.HTTPClient
	if hc == nil {
		tlsCfg, err := newTLSConfig(mode, opts.CAFile)
		if err != nil {
			return nil, err
		}
		hc = &http.Client{Transport: newTransport(tlsCfg)}
	}
	return &API{baseURL: baseURL, apiKey: key, http: hc}, nil
}

func newTransport(tlsCfg *tls.Config) *http.Transport {
	dialer := &net.Dialer{
		Timeout:   connectTimeout,
		KeepAlive: keepAliveTimeout,
	}
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSClientConfig:       tlsCfg,
		TLSHandshakeTimeout:   tlsHandshakeTimeout,
		ExpectContinueTimeout: expectContinueTimeout,
		IdleConnTimeout:       idleConnTimeout,
		MaxIdleConns:          maxIdleConns,
		MaxIdleConnsPerHost:   maxIdleConnsPerHost,
		ForceAttemptHTTP2:     true,
	}
}

func (a *API) BaseURL() string {
	return a.baseURL
}

func (a *API) SetTrace(fn func(TraceEvent)) {
	a.trace = fn
}

func (a *API) emitTrace(ev TraceEvent) {
	if a.trace != nil {
		a.trace(ev)
	}
}

func readReqBody(req *http.Request) string {
	if req == nil || req.GetBody == nil {
		return ""
	}
	rc, err := req.GetBody()
	if err != nil {
		return ""
	}
	defer rc.Close()
	b, err := io.ReadAll(io.LimitReader(rc, maxTraceBytes))
	if err != nil {
		return ""
	}
	return traceBody(b)
}

func traceBody(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	if len(b) > maxTraceBytes {
		b = b[:maxTraceBytes]
	}
	if utf8.Valid(b) {
		return string(b)
	}
	sum := sha256.Sum256(b)
	return fmt.Sprintf("<binary bytes=%d sha256=%s>", len(b), hex.EncodeToString(sum[:]))
}

func (a *API) postJSON(ctx context.Context, path string, in, out any) error {
	if a.apiKey == "" {
		return ErrAPIKeyRequired
	}
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set(headerAPIKey, a.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, uuid.NewString())
	return a.doJSON(req, out)
}

func (a *API) doJSON(req *http.Request, out any) error {
	reqBody := readReqBody(req)
	reqID := req.Header.Get(headerRequestID)
	a.emitTrace(TraceEvent{
		Stage:     "request",
		Method:    req.Method,
		URL:       req.URL.String(),
		RequestID: reqID,
		Request:   reqBody,
	})
	start := time.Now()
	resp, err := a.http.Do(req)
	if err != nil {
		a.emitTrace(TraceEvent{
			Stage:      "error",
			Method:     req.Method,
			URL:        req.URL.String(),
			RequestID:  reqID,
			DurationMs: time.Since(start).Milliseconds(),
			Request:    reqBody,
			Error:      err.Error(),
		})
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	a.emitTrace(TraceEvent{
		Stage:      "response",
		Method:     req.Method,
		URL:        req.URL.String(),
		RequestID:  reqID,
		StatusCode: resp.StatusCode,
		DurationMs: time.Since(start).Milliseconds(),
		Request:    reqBody,
		Response:   traceBody(body),
	})
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
