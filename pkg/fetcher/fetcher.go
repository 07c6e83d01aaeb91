package fetcher

import (
	"fmt"
	"time"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/models"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/types"
)

// Options carries per-request settings shared by the source constructors.
type Options struct {
	NewsAPIKey     string
	NewsAPIBaseURL string
	Country        string
	Category       string

	BBCBaseURL string
	FeedURL    string

	Timeout   time.Duration
	RateLimit float64 // requests per second for the scrape path
	UserAgent string
}

// New returns the fetcher for a source name. Known sources: "newsapi",
// "bbc", "rss".
func New(source string, opts Options) (types.Fetcher, error) {
	switch source {
	case "newsapi":
		return NewNewsAPIWithConfig(NewsAPIConfig{
			APIKey:   opts.NewsAPIKey,
			BaseURL:  opts.NewsAPIBaseURL,
			Country:  opts.Country,
			Category: opts.Category,
			Timeout:  opts.Timeout,
		}), nil
	case "bbc":
		return NewBBCWithConfig(BBCConfig{
			BaseURL:   opts.BBCBaseURL,
			Timeout:   opts.Timeout,
			RateLimit: opts.RateLimit,
			UserAgent: opts.UserAgent,
		}), nil
	case "rss":
		return NewRSSWithConfig(RSSConfig{
			FeedURL: opts.FeedURL,
			Timeout: opts.Timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown news source %q", source)
	}
}

// complete reports whether a record carries the fields the pipeline requires.
// Records missing title or description are dropped at fetch time.
func complete(a models.Article) bool {
	return a.Title != "" && a.Description != ""
}
