package processor

import (
	"context"
	"log"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/models"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/types"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/categorize"
)

type Config struct {
	// Content shorter than this is not worth a model call; the description
	// serves as the summary instead.
	SummarizeContentMin int
}

// Processor runs the per-article normalization pipeline: categorization,
// sentiment, summarization and timestamp formatting. The two inference
// adapters are injected and may be shared across processors; Processor itself
// holds no mutable state between calls.
type Processor struct {
	config     Config
	sentiment  types.SentimentAnalyzer
	summarizer types.Summarizer
}

func NewWithConfig(config Config, sentiment types.SentimentAnalyzer, summarizer types.Summarizer) *Processor {
	if config.SummarizeContentMin == 0 {
		config.SummarizeContentMin = 100
	}
	return &Processor{
		config:     config,
		sentiment:  sentiment,
		summarizer: summarizer,
	}
}

func New(sentiment types.SentimentAnalyzer, summarizer types.Summarizer) *Processor {
	return NewWithConfig(Config{}, sentiment, summarizer)
}

// Process normalizes a batch of raw articles, preserving input order. IDs are
// assigned densely by position in the output: an article that fails mid-batch
// is skipped and contributes no gap.
func (p *Processor) Process(ctx context.Context, articles []models.Article) []models.ProcessedArticle {
	out := make([]models.ProcessedArticle, 0, len(articles))

	for _, article := range articles {
		processed, ok := p.processOne(ctx, article)
		if !ok {
			continue
		}
		processed.ID = len(out) + 1
		out = append(out, processed)
	}

	return out
}

// processOne handles a single article. A panic from any step is contained
// here so one bad record cannot abort the batch.
func (p *Processor) processOne(ctx context.Context, article models.Article) (result models.ProcessedArticle, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("processor: skipping article %q: %v", article.Title, r)
			ok = false
		}
	}()

	combined := article.Title + ". " + article.Description

	category := categorize.Categorize(combined)

	sentiment := p.sentiment.Analyze(ctx, combined)
	if sentiment.Degraded {
		log.Printf("processor: sentiment degraded for %q: %v", article.Title, sentiment.Cause)
	}

	summary := article.Description
	if len(article.Content) > p.config.SummarizeContentMin {
		s := p.summarizer.Summarize(ctx, article.Content)
		if s.Degraded {
			log.Printf("processor: summary degraded for %q: %v", article.Title, s.Cause)
		}
		summary = s.Text
	}

	return models.ProcessedArticle{
		Title:          article.Title,
		Summary:        summary,
		Category:       category,
		Sentiment:      sentiment.Label,
		SentimentScore: sentiment.Score,
		Source:         article.Source,
		URL:            article.URL,
		PublishedAt:    FormatRelative(article.PublishedAt),
	}, true
}
