package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/types"
)

// The classifier accepts at most 512 characters of input. This is a contract
// with the underlying model, counted in characters, not tokens.
const sentimentMaxChars = 512

const sentimentMaxResponseBytes = 1 << 20 // 1MB

// SentimentConfig represents the configuration for the sentiment classifier.
type SentimentConfig struct {
	BaseURL string // inference API base URL
	Model   string
	Token   string // API token, optional for public models
	Timeout time.Duration
}

// SentimentAnalyzer wraps a hosted text-classification model and normalizes
// its label vocabulary onto positive/neutral/negative.
type SentimentAnalyzer struct {
	config SentimentConfig
	client *http.Client
}

func NewSentimentWithConfig(config SentimentConfig) *SentimentAnalyzer {
	if config.BaseURL == "" {
		config.BaseURL = "https://api-inference.huggingface.co"
	}
	if config.Model == "" {
		config.Model = "distilbert-base-uncased-finetuned-sst-2-english"
	}
	if config.Timeout == 0 {
		config.Timeout = 15 * time.Second
	}

	return &SentimentAnalyzer{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

type classifyRequest struct {
	Inputs string `json:"inputs"`
}

type classifyScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Analyze classifies the sentiment of text. It never returns an error: when
// the classifier is unreachable or replies with garbage, the neutral default
// (score 0.5) is returned with Degraded set.
func (s *SentimentAnalyzer) Analyze(ctx context.Context, text string) types.Sentiment {
	if runes := []rune(text); len(runes) > sentimentMaxChars {
		text = string(runes[:sentimentMaxChars])
	}

	label, score, err := s.classify(ctx, text)
	if err != nil {
		return types.Sentiment{
			Label:    types.SentimentNeutral,
			Score:    0.5,
			Degraded: true,
			Cause:    err,
		}
	}

	return types.Sentiment{Label: mapLabel(label), Score: score}
}

func (s *SentimentAnalyzer) classify(ctx context.Context, text string) (string, float64, error) {
	body, err := json.Marshal(classifyRequest{Inputs: text})
	if err != nil {
		return "", 0, fmt.Errorf("sentiment: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s", s.config.BaseURL, s.config.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", 0, fmt.Errorf("sentiment: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.config.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.config.Token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("sentiment: call classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("sentiment: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, sentimentMaxResponseBytes))
	if err != nil {
		return "", 0, fmt.Errorf("sentiment: read response: %w", err)
	}

	// The API replies [[{"label": ..., "score": ...}, ...]] with candidates
	// ordered by score.
	var nested [][]classifyScore
	if err := json.Unmarshal(raw, &nested); err != nil || len(nested) == 0 || len(nested[0]) == 0 {
		// Some deployments skip the outer array.
		var flat []classifyScore
		if err := json.Unmarshal(raw, &flat); err != nil || len(flat) == 0 {
			return "", 0, fmt.Errorf("sentiment: unexpected response %q", string(raw))
		}
		return flat[0].Label, flat[0].Score, nil
	}

	return nested[0][0].Label, nested[0][0].Score, nil
}

// mapLabel folds the classifier's label vocabulary onto the three-way
// taxonomy. Anything unrecognized is neutral.
func mapLabel(label string) string {
	switch strings.ToLower(label) {
	case "positive", "pos", "label_1":
		return types.SentimentPositive
	case "negative", "neg", "label_0":
		return types.SentimentNegative
	default:
		return types.SentimentNeutral
	}
}
