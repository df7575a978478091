// Package qai provides the HTTP client for the QAI platform API.
package qai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/shaoqingyang/qingcloud-sdk-go/metrics"
	"github.com/shaoqingyang/qingcloud-sdk-go/signature"
)

// Client is a connection to the QAI platform for one credential pair and
// zone. It is safe for concurrent use.
type Client struct {
	credentials signature.Credentials
	zone        string
	host        string
	port        int
	protocol    string
	httpClient  *http.Client
	logger      zerolog.Logger
	metrics     *metrics.Recorder
}

// ClientConfig contains configuration for the client.
type ClientConfig struct {
	// Credentials is the access key pair used to sign every request.
	Credentials signature.Credentials

	// Zone is the platform zone sent with every call (e.g. "pek3a").
	Zone string

	// Host is the API host. Defaults to DefaultHost.
	Host string

	// Port is the API port. Defaults to DefaultPort.
	Port int

	// Protocol is the URL scheme, "http" or "https". Defaults to https.
	Protocol string

	// Timeout is the per-request timeout. Defaults to 5 seconds.
	Timeout time.Duration

	// Logger receives debug-level request logs.
	Logger zerolog.Logger

	// Metrics records request counts and latencies. Optional.
	Metrics *metrics.Recorder
}

// DefaultClientConfig returns the default client configuration for the
// public QAI endpoint.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Host:     DefaultHost,
		Port:     DefaultPort,
		Protocol: DefaultProtocol,
		Timeout:  5 * time.Second,
		Logger:   zerolog.Nop(),
	}
}

// NewClient creates a Client from the given configuration.
func NewClient(config ClientConfig) *Client {
	if config.Host == "" {
		config.Host = DefaultHost
	}
	if config.Port == 0 {
		config.Port = DefaultPort
	}
	if config.Protocol == "" {
		config.Protocol = DefaultProtocol
	}
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}

	return &Client{
		credentials: config.Credentials,
		zone:        config.Zone,
		host:        config.Host,
		port:        config.Port,
		protocol:    config.Protocol,
		httpClient:  &http.Client{Timeout: config.Timeout},
		logger:      config.Logger.With().Str("component", "qai-client").Logger(),
		metrics:     config.Metrics,
	}
}

// Zone returns the zone the client was configured with.
func (c *Client) Zone() string {
	return c.zone
}

// zoneParams returns a fresh parameter set pre-populated with the zone.
func (c *Client) zoneParams() signature.Params {
	return signature.Params{"zone": signature.String(c.zone)}
}

// SendRequest signs and dispatches one API call and returns the raw
// response body. Only GET, POST, and DELETE are supported. The body, when
// non-nil, is JSON-encoded (POST only). The response body is passed
// through unparsed regardless of status code.
func (c *Client) SendRequest(ctx context.Context, method, path string, params signature.Params, body any, headers map[string]string) (string, error) {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodDelete:
	default:
		return "", &RequestError{Method: method, Path: path, Err: ErrUnsupportedMethod}
	}

	fragment, err := signature.Generate(method, path, c.credentials.AccessKeyID, c.credentials.SecretKey, params)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s://%s:%d%s?%s", c.protocol, c.host, c.port, path, fragment)

	var payload io.Reader
	if body != nil && method == http.MethodPost {
		encoded, err := json.Marshal(body)
		if err != nil {
			return "", &RequestError{Method: method, Path: path, Err: err}
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return "", &RequestError{Method: method, Path: path, Err: err}
	}

	requestID := uuid.NewString()
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	req.Header.Set(ChannelHeader, ChannelAPI)
	req.Header.Set(RequestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		cause := classifyNetworkError(err)
		c.metrics.ObserveRequest(method, path, outcomeOf(cause), elapsed)
		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Dur("elapsed", elapsed).
			Err(err).
			Msg("request failed")
		return "", &RequestError{Method: method, Path: path, Err: cause}
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.ObserveRequest(method, path, outcomeOf(ErrTransport), elapsed)
		return "", &RequestError{Method: method, Path: path, Err: fmt.Errorf("%w: %v", ErrTransport, err)}
	}

	c.metrics.ObserveRequest(method, path, fmt.Sprintf("%d", resp.StatusCode), elapsed)
	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode).
		Dur("elapsed", elapsed).
		Msg("request completed")

	return string(text), nil
}

// classifyNetworkError maps a transport failure onto the error taxonomy:
// deadline and timeout failures wrap ErrTimeout, everything else wraps
// ErrTransport.
func classifyNetworkError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrTransport, err)
}

// outcomeOf returns the metrics outcome label for a classified failure.
func outcomeOf(cause error) string {
	if errors.Is(cause, ErrTimeout) {
		return "timeout"
	}
	return "transport"
}
