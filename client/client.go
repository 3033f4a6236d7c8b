package client // import "github.com/bookly/bookly/client"

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bookly/bookly/api/auth"
	"github.com/pkg/errors"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://127.0.0.1:8080"

var (
	// ErrNotFound is returned when the target of an update or delete is
	// absent from the catalog.
	ErrNotFound = errors.New("client: resource not found")
	// ErrUnauthorized is returned for requests the service rejected for
	// lack of a valid session.
	ErrUnauthorized = errors.New("client: access unauthorized")
	// ErrNoResponse wraps transport-level failures, as opposed to error
	// responses the service actually sent. The distinction only matters
	// for logging, callers surface the same retry message either way.
	ErrNoResponse = errors.New("client: no response from service")
)

// StatusError is an error response the service sent, carrying its
// message verbatim.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("client: service returned status %d", e.StatusCode)
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// Client talks to the book catalog service. It doubles as the
// authentication provider, since sessions live on the same server.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "client: failed to encode request body")
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return errors.Wrap(err, "client: failed to build request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(ErrNoResponse, err.Error())
	}
	defer resp.Body.Close()

	c.captureAccessToken(resp)

	if resp.StatusCode >= http.StatusBadRequest {
		switch resp.StatusCode {
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusUnauthorized:
			return ErrUnauthorized
		}
		return &StatusError{StatusCode: resp.StatusCode, Message: decodeErrorMessage(resp.Body)}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "client: failed to decode response body")
	}
	return nil
}

// captureAccessToken keeps the session token the service set via cookie,
// so later requests can carry it as a bearer token.
func (c *Client) captureAccessToken(resp *http.Response) {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == auth.AccessTokenCookieName {
			c.accessToken = cookie.Value
		}
	}
}

func decodeErrorMessage(body io.Reader) string {
	var msg struct {
		ErrorMessage string `json:"error_message"`
	}
	if err := json.NewDecoder(body).Decode(&msg); err != nil {
		return ""
	}
	return msg.ErrorMessage
}
