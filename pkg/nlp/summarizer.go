package nlp

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/schema"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/types"
)

const (
	// Inputs shorter than this are returned unchanged: too short to benefit
	// from summarization.
	summaryMinWords = 50
	// Inputs longer than this are truncated before the model call to bound
	// cost and respect the model's input limits.
	summaryMaxInputWords = 500
	// Fallback truncation length when the model is unavailable.
	summaryFallbackChars = 200
)

const summarizerSystemPrompt = "You are a news editor. Summarize the article the user provides " +
	"in %d to %d words. Respond with the summary only, no preamble."

// SummarizerConfig represents the configuration for the summarization engine.
type SummarizerConfig struct {
	Model     string
	BaseURL   string // Ollama server URL
	MaxLength int    // upper word bound for the summary
	MinLength int    // lower word bound for the summary
}

// Summarizer wraps an LLM behind the length/threshold policy the pipeline
// expects. Decoding is deterministic: the same input yields the same output.
type Summarizer struct {
	config SummarizerConfig
	llm    llms.Model
}

// NewSummarizerWithConfig creates a Summarizer backed by an Ollama model.
func NewSummarizerWithConfig(config SummarizerConfig) (*Summarizer, error) {
	applySummarizerDefaults(&config)

	llm, err := ollama.New(ollama.WithModel(config.Model),
		ollama.WithServerURL(config.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize summarizer LLM: %w", err)
	}

	return NewSummarizerWithModel(config, llm), nil
}

// NewDegradedSummarizer creates a Summarizer whose engine is permanently
// unavailable: every call above the short-text threshold takes the truncation
// fallback, carrying cause as the reason. Used when the real engine failed to
// initialize so the rest of the pipeline can still run.
func NewDegradedSummarizer(config SummarizerConfig, cause error) *Summarizer {
	return NewSummarizerWithModel(config, errModel{err: cause})
}

type errModel struct{ err error }

func (m errModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	return nil, m.err
}

func (m errModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", m.err
}

// NewSummarizerWithModel creates a Summarizer over an existing model handle.
func NewSummarizerWithModel(config SummarizerConfig, llm llms.Model) *Summarizer {
	applySummarizerDefaults(&config)
	return &Summarizer{config: config, llm: llm}
}

func applySummarizerDefaults(config *SummarizerConfig) {
	if config.Model == "" {
		config.Model = "mistral"
	}
	if config.BaseURL == "" {
		config.BaseURL = "http://localhost:11434"
	}
	if config.MaxLength == 0 {
		config.MaxLength = 130
	}
	if config.MinLength == 0 {
		config.MinLength = 30
	}
}

// Summarize produces a short summary of text. Below summaryMinWords the text
// comes back unchanged; above summaryMaxInputWords only the leading words are
// sent to the model. A failed model call degrades to the first 200 characters
// of the text plus an ellipsis, never an error.
func (s *Summarizer) Summarize(ctx context.Context, text string) types.Summary {
	text = strings.TrimSpace(text)

	words := strings.Fields(text)
	if len(words) < summaryMinWords {
		return types.Summary{Text: text}
	}
	if len(words) > summaryMaxInputWords {
		text = strings.Join(words[:summaryMaxInputWords], " ")
	}

	system := fmt.Sprintf(summarizerSystemPrompt, s.config.MinLength, s.config.MaxLength)
	content := []llms.MessageContent{
		llms.TextParts(schema.ChatMessageTypeSystem, system),
		llms.TextParts(schema.ChatMessageTypeHuman, text),
	}

	resp, err := s.llm.GenerateContent(ctx, content,
		llms.WithTemperature(0),
		llms.WithMaxTokens(s.config.MaxLength*2),
	)
	if err != nil {
		return degradedSummary(text, fmt.Errorf("summarizer: %w", err))
	}
	if resp == nil || len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Content) == "" {
		return degradedSummary(text, fmt.Errorf("summarizer: empty response"))
	}

	return types.Summary{Text: strings.TrimSpace(resp.Choices[0].Content)}
}

func degradedSummary(text string, cause error) types.Summary {
	runes := []rune(text)
	if len(runes) > summaryFallbackChars {
		text = string(runes[:summaryFallbackChars])
	}
	return types.Summary{Text: text + "...", Degraded: true, Cause: cause}
}
