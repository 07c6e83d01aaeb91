package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/models"
)

// ErrMissingAPIKey means the newsapi source was requested without a key
// configured. The server surfaces this as a client error, not a crash.
var ErrMissingAPIKey = errors.New("NewsAPI key not configured")

const newsAPIMaxResponseBytes = 4 << 20 // 4MB

// NewsAPIConfig represents the configuration for the NewsAPI source.
type NewsAPIConfig struct {
	APIKey   string
	BaseURL  string
	Country  string
	Category string
	Timeout  time.Duration
}

// NewsAPIFetcher pulls top headlines from the NewsAPI JSON endpoint.
type NewsAPIFetcher struct {
	config NewsAPIConfig
	client *http.Client
}

func NewNewsAPIWithConfig(config NewsAPIConfig) *NewsAPIFetcher {
	if config.BaseURL == "" {
		config.BaseURL = "https://newsapi.org"
	}
	if config.Country == "" {
		config.Country = "us"
	}
	if config.Category == "" {
		config.Category = "general"
	}
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}

	return &NewsAPIFetcher{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

func (f *NewsAPIFetcher) Name() string {
	return "newsapi"
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

func (f *NewsAPIFetcher) Fetch(ctx context.Context, max int) ([]models.Article, error) {
	if f.config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	endpoint := fmt.Sprintf("%s/v2/top-headlines?country=%s&category=%s&apiKey=%s",
		f.config.BaseURL,
		url.QueryEscape(f.config.Country),
		url.QueryEscape(f.config.Category),
		url.QueryEscape(f.config.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi: build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi: fetch headlines: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi: unexpected status %d", resp.StatusCode)
	}

	var parsed newsAPIResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, newsAPIMaxResponseBytes)).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("newsapi: decode response: %w", err)
	}

	// Only the first max records are considered; incomplete ones among them
	// are dropped rather than replaced.
	if len(parsed.Articles) > max {
		parsed.Articles = parsed.Articles[:max]
	}

	articles := make([]models.Article, 0, len(parsed.Articles))
	for _, a := range parsed.Articles {
		article := models.Article{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
		}
		if !complete(article) {
			continue
		}
		articles = append(articles, article)
	}

	return articles, nil
}
