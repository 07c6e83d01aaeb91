package types

import (
	"context"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/models"
)

// Core interfaces
type Fetcher interface {
	Name() string
	Fetch(ctx context.Context, max int) ([]models.Article, error)
}

// Sentiment is the outcome of one classifier call. Degraded is set when the
// classifier was unavailable and the neutral default was substituted; Cause
// then carries the underlying error for logging and tests.
type Sentiment struct {
	Label    string
	Score    float64
	Degraded bool
	Cause    error
}

type SentimentAnalyzer interface {
	Analyze(ctx context.Context, text string) Sentiment
}

// Summary is the outcome of one summarizer call. A Degraded summary is the
// truncation fallback, not model output.
type Summary struct {
	Text     string
	Degraded bool
	Cause    error
}

type Summarizer interface {
	Summarize(ctx context.Context, text string) Summary
}

// Sentiment labels used across the pipeline.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)
