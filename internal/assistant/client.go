package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// apiVersion is the service protocol version header value.
const apiVersion = "2023-06-01"

// fallbackAPIKey is the bundled credential used when the operator has not
// configured one. Empty in open builds; a release pipeline may stamp it.
const fallbackAPIKey = ""

// Config holds the transport settings for the assistant client.
type Config struct {
	// BaseURL is the service root, e.g. "https://api.anthropic.com".
	BaseURL string

	// APIKey is the resolved credential. May be empty, in which case every
	// Complete call fails with ErrNoCredential before touching the network.
	APIKey string

	// Model is the text-generation model identifier.
	Model string

	// MaxTokens is the response token budget.
	MaxTokens int

	// Timeout bounds the whole request. Zero means no client-side timeout.
	Timeout time.Duration
}

// Client calls the text-generation service. It performs no JSON
// interpretation beyond unwrapping the service's own envelope — extracting
// the edit-set from the returned text is DecodeEditSet's job.
type Client struct {
	http      *resty.Client
	apiKey    string
	model     string
	maxTokens int
}

// NewClient constructs a Client from the given config.
func NewClient(cfg Config) *Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("anthropic-version", apiVersion).
		SetTimeout(cfg.Timeout)

	return &Client{
		http:      c,
		apiKey:    cfg.APIKey,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
	}
}

// ResolveAPIKey picks the credential to use: the user-configured value wins,
// else the bundled fallback, else ErrNoCredential. This is the only place
// the fallback priority lives.
func ResolveAPIKey(userKey string) (string, error) {
	if userKey != "" {
		return userKey, nil
	}
	if fallbackAPIKey != "" {
		return fallbackAPIKey, nil
	}
	return "", ErrNoCredential
}

// messagesRequest is the service's request envelope.
type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the service's reply envelope: a list of content
// segments, each possibly carrying text.
type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type string  `json:"type"`
	Text *string `json:"text"`
}

// Complete sends one system+user turn to the service and returns the first
// text segment of the reply.
//
// Failure modes, in order: ErrNoCredential before any transport, ErrTransport
// on network errors, *ServiceError on non-200 status (body preserved for
// diagnostics), ErrEmptyResponse when the envelope has no text segment.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNoCredential
	}

	body := messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System:    system,
		Messages:  []message{{Role: "user", Content: user}},
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("x-api-key", c.apiKey).
		SetBody(&body).
		Post("/v1/messages")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", &ServiceError{StatusCode: resp.StatusCode(), Body: resp.String()}
	}

	var envelope messagesResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return "", fmt.Errorf("assistant.Client.Complete: decode envelope: %w", err)
	}

	for _, block := range envelope.Content {
		if block.Text != nil {
			return *block.Text, nil
		}
	}
	return "", ErrEmptyResponse
}
