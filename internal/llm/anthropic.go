package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sirupsen/logrus"
)

type anthropicClient struct {
	client anthropic.Client
	model  string
}

func newAnthropicClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &anthropicClient{
		client: anthropic.NewClient(opts...),
		model:  cfg.Model,
	}, nil
}

func (c *anthropicClient) Complete(ctx context.Context, req Request) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(req.MaxTokens),
		System: []anthropic.TextBlockParam{
			{Type: "text", Text: req.System},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", classify(err)
	}

	if len(resp.Content) == 0 {
		logrus.Warnf("Unexpected response structure from the API. Full response: %s", resp.RawJSON())
		return "", nil
	}

	// The response is a sequence of typed content blocks; the first
	// text-typed block carries the analysis.
	for _, block := range resp.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}

	logrus.Warn("No text content found in the model response.")
	return "", nil
}

func (c *anthropicClient) Model() string {
	return c.model
}

// classify maps SDK errors onto the closed error set. Status-coded API
// failures come back as *anthropic.Error; everything reached over the wire
// without a response is a connectivity failure.
func classify(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return &StatusError{Code: apiErr.StatusCode, Detail: apiErr.Error()}
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &ConnectivityError{Err: err}
	}

	return &UnexpectedError{Err: err}
}
