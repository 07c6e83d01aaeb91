package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/models"
)

// Headlines shorter than this are navigation labels, not stories.
const bbcMinTitleLen = 10

// BBCConfig represents the configuration for the BBC front-page scraper.
type BBCConfig struct {
	BaseURL   string
	Timeout   time.Duration
	RateLimit float64 // requests per second
	UserAgent string
}

// BBCFetcher scrapes headlines from the BBC News front page. The page does
// not expose publish times, so every record is stamped with the scrape time;
// that is a known limitation of this source, not of the pipeline.
type BBCFetcher struct {
	config  BBCConfig
	client  *http.Client
	limiter *rate.Limiter
}

func NewBBCWithConfig(config BBCConfig) *BBCFetcher {
	if config.BaseURL == "" {
		config.BaseURL = "https://www.bbc.com"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	if config.RateLimit == 0 {
		config.RateLimit = 2
	}
	if config.UserAgent == "" {
		config.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}

	return &BBCFetcher{
		config:  config,
		client:  &http.Client{Timeout: config.Timeout},
		limiter: rate.NewLimiter(rate.Limit(config.RateLimit), 1),
	}
}

func (f *BBCFetcher) Name() string {
	return "bbc"
}

func (f *BBCFetcher) Fetch(ctx context.Context, max int) ([]models.Article, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.config.BaseURL+"/news", nil)
	if err != nil {
		return nil, fmt.Errorf("bbc: build request: %w", err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("bbc: fetch front page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bbc: unexpected status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("bbc: parse front page: %w", err)
	}

	scrapedAt := time.Now().Format(time.RFC3339)

	var articles []models.Article
	doc.Find(`h2[data-testid="card-headline"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(articles) >= max {
			return false
		}

		title := strings.TrimSpace(sel.Text())
		if len(title) <= bbcMinTitleLen {
			return true
		}

		link := ""
		if href, ok := sel.Closest("a").Attr("href"); ok {
			if strings.HasPrefix(href, "/") {
				link = f.config.BaseURL + href
			} else {
				link = href
			}
		}

		// The card exposes nothing beyond the headline, so the title
		// doubles as the description.
		articles = append(articles, models.Article{
			Title:       title,
			Description: title,
			URL:         link,
			Source:      "BBC News",
			PublishedAt: scrapedAt,
		})
		return true
	})

	return articles, nil
}
