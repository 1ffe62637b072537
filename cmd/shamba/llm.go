package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/kipkoech/shamba/internal/common"
	"github.com/kipkoech/shamba/internal/llm"
)

// llmConfigFromViper resolves the generative-AI configuration. The API key
// is checked here so a missing key fails before any network call is made.
func llmConfigFromViper() (llm.Config, error) {
	provider := viper.GetString("llm.provider")
	if provider == "" {
		provider = "gemini" // default provider
	}

	timeout := viper.GetDuration("llm.timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("recommend.timeout")
	}

	config := llm.Config{
		Provider:    provider,
		Model:       viper.GetString("llm.model"),
		Temperature: viper.GetFloat64("llm.temperature"),
		MaxTokens:   viper.GetInt("llm.max_tokens"),
		Timeout:     timeout,
	}

	// Get API key based on provider: viper first, then the conventional
	// environment variable.
	switch provider {
	case "gemini":
		apiKey := viper.GetString("llm.gemini_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return llm.Config{}, fmt.Errorf("%w: Gemini API key not found in config or GEMINI_API_KEY environment variable", common.ErrMissingConfig)
		}
		config.APIKey = apiKey

	case "openai":
		apiKey := viper.GetString("llm.openai_api_key")
		if apiKey == "" {
			apiKey = os.Getenv("OPENAI_API_KEY")
		}
		if apiKey == "" {
			return llm.Config{}, fmt.Errorf("%w: OpenAI API key not found in config or OPENAI_API_KEY environment variable", common.ErrMissingConfig)
		}
		config.APIKey = apiKey

	default:
		return llm.Config{}, fmt.Errorf("unsupported LLM provider: %s", provider)
	}

	return config, nil
}

// createLLMClient creates the generative-AI client from configuration.
func createLLMClient() (llm.Client, error) {
	config, err := llmConfigFromViper()
	if err != nil {
		return nil, err
	}

	client, err := llm.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return client, nil
}
