// Package resend provides a lightweight client for the Resend email API.
// Uses raw HTTP calls (no SDK) to minimize external dependencies.
package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.resend.com"

// SendEmailParams is the body of POST /emails.
type SendEmailParams struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
	ReplyTo string   `json:"reply_to,omitempty"`
}

// SendEmailResponse is the success body of POST /emails.
type SendEmailResponse struct {
	ID string `json:"id"`
}

// APIError is the error body Resend returns with a non-2xx status.
type APIError struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("resend: %s (%d): %s", e.Name, e.StatusCode, e.Message)
}

// Client is the Resend API surface used by the service.
type Client interface {
	// SendEmail sends one email and returns the provider message ID.
	SendEmail(ctx context.Context, params SendEmailParams) (*SendEmailResponse, error)
}

// RealClient is the raw HTTP implementation of Client.
type RealClient struct {
	APIKey     string
	BaseURL    string
	httpClient *http.Client
}

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("resend: not configured")

// NewClient creates a RealClient for the production API.
func NewClient(apiKey string) *RealClient {
	return &RealClient{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

var _ Client = (*RealClient)(nil)

// SendEmail calls POST /emails.
func (c *RealClient) SendEmail(ctx context.Context, params SendEmailParams) (*SendEmailResponse, error) {
	if c.APIKey == "" {
		return nil, ErrNotConfigured
	}
	if len(params.To) == 0 {
		return nil, errors.New("resend send email: no recipients")
	}

	jsonBody, err := json.Marshal(params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.BaseURL, "/")+"/emails",
		bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Name = http.StatusText(resp.StatusCode)
			apiErr.Message = strings.TrimSpace(string(body))
		}
		if apiErr.StatusCode == 0 {
			apiErr.StatusCode = resp.StatusCode
		}
		return nil, apiErr
	}

	var result SendEmailResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("resend send email: decode response: %w", err)
	}
	if result.ID == "" {
		return nil, errors.New("resend send email: empty id in response")
	}
	return &result, nil
}
