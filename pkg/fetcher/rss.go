package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/models"
)

// RSSConfig represents the configuration for the RSS/Atom source.
type RSSConfig struct {
	FeedURL string
	Timeout time.Duration
}

// RSSFetcher reads a syndication feed through gofeed. Any RSS or Atom feed
// works; the default is the BBC world feed.
type RSSFetcher struct {
	config RSSConfig
	parser *gofeed.Parser
}

func NewRSSWithConfig(config RSSConfig) *RSSFetcher {
	if config.FeedURL == "" {
		config.FeedURL = "https://feeds.bbci.co.uk/news/world/rss.xml"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	return &RSSFetcher{
		config: config,
		parser: gofeed.NewParser(),
	}
}

func (f *RSSFetcher) Name() string {
	return "rss"
}

func (f *RSSFetcher) Fetch(ctx context.Context, max int) ([]models.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	feed, err := f.parser.ParseURLWithContext(f.config.FeedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("rss: parse feed %s: %w", f.config.FeedURL, err)
	}

	items := feed.Items
	if len(items) > max {
		items = items[:max]
	}

	source := feed.Title
	if source == "" {
		source = "RSS"
	}

	articles := make([]models.Article, 0, len(items))
	for _, item := range items {
		published := item.Published
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.Format(time.RFC3339)
		}

		article := models.Article{
			Title:       item.Title,
			Description: item.Description,
			Content:     item.Content,
			URL:         item.Link,
			Source:      source,
			PublishedAt: published,
		}
		if !complete(article) {
			continue
		}
		articles = append(articles, article)
	}

	return articles, nil
}
