package config

import (
	"fmt"
	"net/url"
	"strconv"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the configuration for values that would break the pipeline.
// A missing NewsAPI key is deliberately not an error here: the newsapi source
// reports it per request instead.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		errors = append(errors, ValidationError{
			Field:   "server.port",
			Message: "port must be numeric",
		})
	}

	if _, err := url.Parse(c.NewsAPI.BaseURL); err != nil {
		errors = append(errors, ValidationError{
			Field:   "newsapi.base_url",
			Message: "invalid NewsAPI base URL",
		})
	}

	if c.Fetcher.MaxArticles < 1 {
		errors = append(errors, ValidationError{
			Field:   "fetcher.max_articles",
			Message: "max_articles must be positive",
		})
	}

	if c.Fetcher.TimeoutSecs < 1 {
		errors = append(errors, ValidationError{
			Field:   "fetcher.timeout_seconds",
			Message: "timeout_seconds must be positive",
		})
	}

	if c.Fetcher.RateLimit <= 0 {
		errors = append(errors, ValidationError{
			Field:   "fetcher.rate_limit",
			Message: "rate_limit must be positive",
		})
	}

	if c.Sentiment.BaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "sentiment.base_url",
			Message: "sentiment inference base URL is required",
		})
	}

	if c.Summarizer.BaseURL == "" {
		errors = append(errors, ValidationError{
			Field:   "summarizer.base_url",
			Message: "Ollama base URL is required",
		})
	} else if _, err := url.Parse(c.Summarizer.BaseURL); err != nil {
		errors = append(errors, ValidationError{
			Field:   "summarizer.base_url",
			Message: "invalid Ollama base URL",
		})
	}

	if c.Summarizer.MinLength < 1 || c.Summarizer.MinLength >= c.Summarizer.MaxLength {
		errors = append(errors, ValidationError{
			Field:   "summarizer.min_length",
			Message: "min_length must be positive and less than max_length",
		})
	}

	if c.TTS.Language == "" {
		errors = append(errors, ValidationError{
			Field:   "tts.language",
			Message: "tts language is required",
		})
	}

	return errors
}
