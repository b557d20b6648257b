package ai

import (
	"context"
	"errors"

	"github.com/Builder-Lawyers/text-corrector/internal/application/errs"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
)

const (
	systemInstruction     = "You are a helpful assistant"
	correctionInstruction = "Correct the following text:\n\n"
)

type OpenAIClient struct {
	cfg    OpenAIConfig
	client openai.Client
}

// NewOpenAIClient disables the SDK's automatic retries so every correction is
// exactly one outbound request.
func NewOpenAIClient(config OpenAIConfig) *OpenAIClient {
	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
		option.WithMaxRetries(0),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}
	return &OpenAIClient{
		config,
		openai.NewClient(opts...),
	}
}

func (c *OpenAIClient) CorrectText(ctx context.Context, text string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemInstruction),
		openai.UserMessage(correctionInstruction + text),
	}

	chatCompletion, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       c.cfg.Model,
		Messages:    messages,
		MaxTokens:   param.Opt[int64]{Value: c.cfg.MaxTokens},
		Temperature: param.Opt[float64]{Value: c.cfg.Temperature},
	})
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", errs.ProviderError{StatusCode: apiErr.StatusCode, Err: err}
		}
		return "", errs.ProviderError{Err: err}
	}
	if chatCompletion == nil || len(chatCompletion.Choices) == 0 {
		return "", errs.ProviderError{Err: errs.ErrNoChoices}
	}
	choice := chatCompletion.Choices[0]
	if !choice.JSON.Message.Valid() || !choice.Message.JSON.Content.Valid() {
		return "", errs.ProviderError{Err: errs.ErrNoContent}
	}

	return choice.Message.Content, nil
}
