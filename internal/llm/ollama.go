package llm

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/JexSrs/go-ollama"
)

type ollamaClient struct {
	client *ollama.Ollama
	model  string
}

func newOllamaClient(cfg Config) (Client, error) {
	host := cfg.OllamaHost
	if host == "" {
		host = "http://127.0.0.1:11434"
	}

	ollamaURL, err := url.Parse(host)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}

	return &ollamaClient{
		client: ollama.New(*ollamaURL),
		model:  cfg.Model,
	}, nil
}

func (c *ollamaClient) Complete(_ context.Context, req Request) (string, error) {
	res, err := c.client.Generate(
		c.client.Generate.WithModel(c.model),
		c.client.Generate.WithSystem(req.System),
		c.client.Generate.WithPrompt(req.Prompt),
	)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return "", &ConnectivityError{Err: err}
		}
		return "", &UnexpectedError{Err: err}
	}

	if !res.Done {
		return "", &UnexpectedError{Err: fmt.Errorf("Ollama request did not complete (unexpected streaming behavior)")}
	}

	return strings.TrimSpace(res.Response), nil
}

func (c *ollamaClient) Model() string {
	return c.model
}
