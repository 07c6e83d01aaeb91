package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/models"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/report"
)

func TestGenerateEmpty(t *testing.T) {
	assert.Equal(t, "No articles to summarize.", report.Generate(nil))
}

func TestGenerateGroupsByCategory(t *testing.T) {
	articles := []models.ProcessedArticle{
		{ID: 1, Title: "Tech story", Category: "Technology", Sentiment: "positive", SentimentScore: 0.9, Source: "Wire", Summary: "sum one", URL: "https://example.com/1", PublishedAt: "2 hours ago"},
		{ID: 2, Title: "Politics story", Category: "Politics", Sentiment: "negative", SentimentScore: 0.8, Source: "Wire", Summary: "sum two", PublishedAt: "recently"},
		{ID: 3, Title: "Second tech story", Category: "Technology", Sentiment: "neutral", SentimentScore: 0.5, Source: "Wire", Summary: "sum three", PublishedAt: "1 days ago"},
	}

	out := report.Generate(articles)

	assert.Contains(t, out, "NEWS SUMMARY")
	assert.Contains(t, out, "TECHNOLOGY (2 articles)")
	assert.Contains(t, out, "POLITICS (1 articles)")
	assert.Contains(t, out, "Sentiment: positive (0.90)")
	assert.Contains(t, out, "Link: https://example.com/1")

	// Taxonomy order: Technology before Politics regardless of input order.
	assert.Less(t, strings.Index(out, "TECHNOLOGY"), strings.Index(out, "POLITICS"))
	// Input order kept within a group.
	assert.Less(t, strings.Index(out, "Tech story"), strings.Index(out, "Second tech story"))
}

func TestGenerateGeneralLast(t *testing.T) {
	articles := []models.ProcessedArticle{
		{ID: 1, Title: "Misc story", Category: "General", Sentiment: "neutral", SentimentScore: 0.5, Source: "Wire", Summary: "s", PublishedAt: "recently"},
		{ID: 2, Title: "Science story", Category: "Science", Sentiment: "positive", SentimentScore: 0.7, Source: "Wire", Summary: "s", PublishedAt: "recently"},
	}

	out := report.Generate(articles)
	assert.Less(t, strings.Index(out, "SCIENCE"), strings.Index(out, "GENERAL"))
}
