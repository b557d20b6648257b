package ai

import (
	"strconv"

	"github.com/Builder-Lawyers/text-corrector/pkg/env"
)

const (
	defaultModel       = "gpt-4o-mini"
	defaultMaxTokens   = 150
	defaultTemperature = 0.7
)

type OpenAIConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	MaxTokens   int64
	Temperature float64
}

func NewOpenAIConfig() OpenAIConfig {
	maxTokens, err := strconv.ParseInt(env.GetEnv("OPENAI_TOKENS", "150"), 10, 64)
	if err != nil || maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	temperature, err := strconv.ParseFloat(env.GetEnv("OPENAI_TEMPERATURE", "0.7"), 64)
	if err != nil {
		temperature = defaultTemperature
	}
	return OpenAIConfig{
		APIKey:      env.GetEnv("OPENAI_KEY", ""),
		Model:       env.GetEnv("OPENAI_MODEL", defaultModel),
		BaseURL:     env.GetEnv("OPENAI_BASE_URL", "https://api.openai.com/v1/"),
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
}
