// Package anthropic adapts the Anthropic Messages API to the textgen
// contract: one synchronous call with a bounded timeout, no retries.
package anthropic

import (
	"context"
	"log/slog"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/daymentor/mentor-backend/internal/config"
	"github.com/daymentor/mentor-backend/internal/textgen"
)

// Client wraps the Anthropic SDK client with mentor configuration.
// It implements textgen.Generator.
type Client struct {
	api sdk.Client
	cfg config.MentorConfig
	log *slog.Logger
}

// New creates a generation client from mentor configuration.
// Callers must check cfg.Enabled() before constructing one.
func New(cfg config.MentorConfig, logger *slog.Logger) *Client {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Client{
		api: sdk.NewClient(opts...),
		cfg: cfg,
		log: logger.With("adapter", "anthropic"),
	}
}

// Generate sends one request to the model and returns the raw response text.
// The configured timeout bounds the call; any error (network, timeout, empty
// response) is folded into the Result.
func (c *Client) Generate(ctx context.Context, req textgen.Request) textgen.Result {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	params := sdk.MessageNewParams{
		Model:       sdk.Model(c.cfg.Model),
		MaxTokens:   int64(c.cfg.MaxTokens),
		Temperature: sdk.Float(c.cfg.Temperature),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Prompt)),
		},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}

	msg, err := c.api.Messages.New(ctx, params)
	if err != nil {
		c.log.WarnContext(ctx, "generation call failed", slog.String("error", err.Error()))
		return textgen.Failure("api call: %v", err)
	}

	if len(msg.Content) == 0 {
		return textgen.Failure("empty response")
	}

	text := msg.Content[0].Text
	if text == "" {
		return textgen.Failure("response has no text content")
	}

	return textgen.Result{Text: text}
}
