// Package client calls the learning API over HTTP and carries the login
// session a front end keeps between calls.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// DefaultBasePath is where the API is mounted on the serverless host.
const DefaultBasePath = "/.netlify/functions/api"

// NetworkError reports a transport failure or a non-2xx answer. The server's
// status and body are not kept beyond the message.
type NetworkError struct {
	msg string
}

func (e *NetworkError) Error() string { return "network error: " + e.msg }

func networkError(format string, args ...interface{}) error {
	return errors.WithStack(&NetworkError{msg: fmt.Sprintf(format, args...)})
}

// Client is the HTTP helper behind the resource wrappers.
type Client struct {
	baseURL    string
	httpClient *http.Client

	Students    *StudentsAPI
	Contents    *ContentsAPI
	QuizResults *QuizResultsAPI
}

// New creates a Client for the API at baseURL (scheme, host and mount path).
// A nil httpClient gets a client with a 30 second timeout.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
	c.Students = &StudentsAPI{c: c}
	c.Contents = &ContentsAPI{c: c}
	c.QuizResults = &QuizResultsAPI{c: c}
	return c
}

// Do sends body (JSON encoded when non-nil) to endpoint. A JSON answer is
// decoded into out; any other answer is returned as text.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out interface{}) (string, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return "", errors.Wrap(err, "encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return "", errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", networkError("%v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", networkError("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", networkError("%v", err)
	}

	if isJSON(resp.Header.Get("Content-Type")) {
		if out != nil && len(raw) > 0 {
			if err := json.Unmarshal(raw, out); err != nil {
				return "", networkError("decode response: %v", err)
			}
		}
		return "", nil
	}
	return string(raw), nil
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.Contains(contentType, "application/json")
	}
	return mediaType == "application/json"
}
