package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const (
	// maxBodyBytes caps any response body read into memory.
	maxBodyBytes = 16 << 20
	// maxErrorBodyBytes caps the body kept on an APIError.
	maxErrorBodyBytes = 4 << 10
)

// ErrBodyTooLarge is returned when a response body exceeds maxBodyBytes.
var ErrBodyTooLarge = errors.New("response body too large")

// APIError represents a non-success HTTP response.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http error %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError carrying a non-success status.
func IsStatus(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}

// Get performs a GET request and returns the full response body.
// Any status outside 2xx yields an *APIError.
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
			Body:       body,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(body) > maxBodyBytes {
		return nil, ErrBodyTooLarge
	}

	return body, nil
}

// getJSON performs a GET request and decodes the JSON body into result.
func (c *Client) getJSON(ctx context.Context, rawURL string, result any) error {
	body, err := c.Get(ctx, rawURL)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
