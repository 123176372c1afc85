package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultTimeout bounds a single completion call when none is configured.
const DefaultTimeout = 15 * time.Second

var (
	// ErrClientNotInitialised is returned when attempting to call the API without a configured client.
	ErrClientNotInitialised = errors.New("openai client not initialised")
	// ErrEmptyCompletion is returned when the API answers without usable text.
	ErrEmptyCompletion = errors.New("no completion received")
)

// Client wraps the OpenAI SDK for single-turn chat replies.
type Client struct {
	client       *openai.Client
	model        openai.ChatModel
	systemPrompt string
	timeout      time.Duration
}

// Config configures New.
type Config struct {
	APIKey       string
	Model        string
	SystemPrompt string
	Timeout      time.Duration
	// Options are appended to the SDK options, e.g. option.WithBaseURL in tests.
	Options []option.RequestOption
}

// New returns a client. Without an API key the client is returned
// uninitialised and Reply fails with ErrClientNotInitialised.
func New(cfg Config) *Client {
	c := &Client{
		model:        openai.ChatModelGPT4oMini,
		systemPrompt: cfg.SystemPrompt,
		timeout:      cfg.Timeout,
	}
	if cfg.Model != "" {
		c.model = openai.ChatModel(cfg.Model)
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if cfg.APIKey == "" {
		return c
	}
	opts := append([]option.RequestOption{option.WithAPIKey(cfg.APIKey), option.WithMaxRetries(0)}, cfg.Options...)
	client := openai.NewClient(opts...)
	c.client = &client
	return c
}

// Enabled reports whether the client can reach the API.
func (c *Client) Enabled() bool {
	return c != nil && c.client != nil
}

// Reply sends the system instruction and the user message and returns the
// model's text. Transport errors, non-2xx responses and empty completions
// are all returned as errors.
func (c *Client) Reply(ctx context.Context, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", fmt.Errorf("message cannot be empty")
	}
	if !c.Enabled() {
		return "", ErrClientNotInitialised
	}

	req := openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(c.systemPrompt),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(message),
					},
				},
			},
		},
		Temperature:         openai.Float(0.7),
		MaxCompletionTokens: openai.Int(500),
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	reply := strings.TrimSpace(resp.Choices[0].Message.Content)
	if reply == "" {
		return "", ErrEmptyCompletion
	}
	return reply, nil
}
