// Package httptts speaks card text through an HTTP text to speech service.
package httptts

import (
	"context"
	"fmt"
	"strings"

	"github.com/avast/retry-go"
	"resty.dev/v3"
)

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
}

func NewClient(endpoint, apiKey string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL(endpoint)
	if apiKey != "" {
		client.SetHeader("Authorization", "Bearer "+apiKey)
	}
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		maxRetryAttempts: retryAttempts,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type SynthesizeRequest struct {
	Text     string `json:"text"`
	Language string `json:"language,omitempty"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Retry on network-related errors
	errStr := err.Error()
	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Retry on 5xx errors (server errors)
	if strings.Contains(errStr, "response error 5") {
		return true
	}

	// Retry on rate limiting (429)
	if strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// Synthesize asks the speech service to pronounce text.
func (client *Client) Synthesize(ctx context.Context, text, language string) error {
	if text == "" {
		return nil
	}

	return retry.Do(
		func() error {
			if err := client.synthesize(ctx, text, language); err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
	)
}

func (client *Client) synthesize(ctx context.Context, text, language string) error {
	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(SynthesizeRequest{
			Text:     text,
			Language: language,
		}).
		Post("/speak")
	if err != nil {
		return fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	return nil
}
