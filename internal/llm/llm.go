// Package llm asks an OpenAI-compatible model for a one-line commit subject
// suggestion. The suggestion only prefills the subject prompt; the user edits
// or replaces it and normal validation still applies.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

const (
	defaultTimeout = 30 * time.Second
	diffLimit      = 4000
)

// ErrNoAPIKey means the suggest feature was requested without credentials.
var ErrNoAPIKey = errors.New("API key not set, configure it first: gsc config set suggest.api_key YOUR_API_KEY")

// Options configures a Client.
type Options struct {
	Model   string
	APIKey  string
	APIBase string
	Timeout time.Duration
}

// Client wraps the chat completion API.
type Client struct {
	opts Options
}

// NewClient creates a suggestion client.
func NewClient(opts Options) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = defaultTimeout
	}
	return &Client{opts: opts}
}

const systemPrompt = "You write git commit subjects. Reply with a single short " +
	"imperative line describing the change, under 72 characters, with no type " +
	"prefix, no emoji, no quotes and no trailing period."

// SuggestSubject returns a one-line subject for the given staged diff.
func (c *Client) SuggestSubject(ctx context.Context, changedFiles []string, diff string) (string, error) {
	if c.opts.APIKey == "" {
		return "", ErrNoAPIKey
	}

	clientConfig := openai.DefaultConfig(c.opts.APIKey)
	if c.opts.APIBase != "" {
		clientConfig.BaseURL = c.opts.APIBase
	}
	client := openai.NewClientWithConfig(clientConfig)

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.opts.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildPrompt(changedFiles, diff)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call LLM: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("LLM returned an empty response")
	}

	return SanitizeSubject(resp.Choices[0].Message.Content), nil
}

func buildPrompt(changedFiles []string, diff string) string {
	if len(diff) > diffLimit {
		diff = diff[:diffLimit] + "\n...(truncated)"
	}
	return fmt.Sprintf("Changed files:\n%s\n\nDiff:\n%s",
		strings.Join(changedFiles, "\n"), diff)
}

// SanitizeSubject reduces a model reply to a single trimmed line without
// surrounding quotes or a trailing period.
func SanitizeSubject(reply string) string {
	line := strings.TrimSpace(reply)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = strings.TrimSpace(line[:i])
	}
	line = strings.Trim(line, "\"'`")
	return strings.TrimSuffix(line, ".")
}
