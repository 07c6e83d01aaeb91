package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const newsAPIBody = `{
	"status": "ok",
	"articles": [
		{
			"source": {"name": "Example Times"},
			"title": "First headline",
			"description": "First description",
			"content": "First content body",
			"url": "https://example.com/1",
			"publishedAt": "2024-05-01T10:00:00Z"
		},
		{
			"source": {"name": "Example Times"},
			"title": "Headline without description",
			"description": "",
			"url": "https://example.com/2",
			"publishedAt": "2024-05-01T09:00:00Z"
		},
		{
			"source": {"name": "Example Wire"},
			"title": "Third headline",
			"description": "Third description",
			"url": "https://example.com/3",
			"publishedAt": "2024-05-01T08:00:00Z"
		}
	]
}`

func TestNewsAPIFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/top-headlines", r.URL.Path)
		assert.Equal(t, "us", r.URL.Query().Get("country"))
		assert.Equal(t, "technology", r.URL.Query().Get("category"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(newsAPIBody))
	}))
	defer server.Close()

	f := NewNewsAPIWithConfig(NewsAPIConfig{
		APIKey:   "test-key",
		BaseURL:  server.URL,
		Category: "technology",
	})

	articles, err := f.Fetch(context.Background(), 10)
	require.NoError(t, err)

	// The record without a description is dropped at fetch time.
	require.Len(t, articles, 2)
	assert.Equal(t, "First headline", articles[0].Title)
	assert.Equal(t, "First content body", articles[0].Content)
	assert.Equal(t, "Example Times", articles[0].Source)
	assert.Equal(t, "2024-05-01T10:00:00Z", articles[0].PublishedAt)
	assert.Equal(t, "Third headline", articles[1].Title)
}

func TestNewsAPIFetchRespectsMax(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(newsAPIBody))
	}))
	defer server.Close()

	f := NewNewsAPIWithConfig(NewsAPIConfig{APIKey: "test-key", BaseURL: server.URL})

	articles, err := f.Fetch(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "First headline", articles[0].Title)
}

func TestNewsAPIFetchMissingKey(t *testing.T) {
	f := NewNewsAPIWithConfig(NewsAPIConfig{})

	_, err := f.Fetch(context.Background(), 10)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewsAPIFetchBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	f := NewNewsAPIWithConfig(NewsAPIConfig{APIKey: "test-key", BaseURL: server.URL})

	_, err := f.Fetch(context.Background(), 10)
	assert.Error(t, err)
}

const bbcFrontPage = `
<html><body>
	<a href="/news/articles/abc123">
		<h2 data-testid="card-headline">A proper headline about world events</h2>
	</a>
	<a href="https://external.example.com/story">
		<h2 data-testid="card-headline">Another long enough headline here</h2>
	</a>
	<a href="/nav">
		<h2 data-testid="card-headline">Menu</h2>
	</a>
	<h2>Unrelated section title</h2>
</body></html>`

func TestBBCFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/news", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(bbcFrontPage))
	}))
	defer server.Close()

	f := NewBBCWithConfig(BBCConfig{BaseURL: server.URL, RateLimit: 100})

	articles, err := f.Fetch(context.Background(), 10)
	require.NoError(t, err)

	// "Menu" is below the headline length cutoff, the bare h2 has no card
	// marker.
	require.Len(t, articles, 2)
	first := articles[0]
	assert.Equal(t, "A proper headline about world events", first.Title)
	assert.Equal(t, first.Title, first.Description)
	assert.Equal(t, server.URL+"/news/articles/abc123", first.URL)
	assert.Equal(t, "BBC News", first.Source)
	assert.Empty(t, first.Content)
	assert.NotEmpty(t, first.PublishedAt)

	assert.Equal(t, "https://external.example.com/story", articles[1].URL)
}

func TestBBCFetchRespectsMax(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(bbcFrontPage))
	}))
	defer server.Close()

	f := NewBBCWithConfig(BBCConfig{BaseURL: server.URL, RateLimit: 100})

	articles, err := f.Fetch(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, articles, 1)
}

const rssFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
	<channel>
		<title>Test Feed</title>
		<item>
			<title>Feed story one</title>
			<description>Description one</description>
			<link>https://example.com/feed/1</link>
			<pubDate>Mon, 06 May 2024 10:00:00 GMT</pubDate>
		</item>
		<item>
			<title>Feed story without description</title>
			<link>https://example.com/feed/2</link>
		</item>
		<item>
			<title>Feed story three</title>
			<description>Description three</description>
			<link>https://example.com/feed/3</link>
		</item>
	</channel>
</rss>`

func TestRSSFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(rssFeed))
	}))
	defer server.Close()

	f := NewRSSWithConfig(RSSConfig{FeedURL: server.URL})

	articles, err := f.Fetch(context.Background(), 10)
	require.NoError(t, err)

	require.Len(t, articles, 2)
	assert.Equal(t, "Feed story one", articles[0].Title)
	assert.Equal(t, "Description one", articles[0].Description)
	assert.Equal(t, "Test Feed", articles[0].Source)
	assert.Equal(t, "2024-05-06T10:00:00Z", articles[0].PublishedAt)
	assert.Equal(t, "Feed story three", articles[1].Title)
}

func TestNewFactory(t *testing.T) {
	tests := []struct {
		source string
		name   string
	}{
		{"newsapi", "newsapi"},
		{"bbc", "bbc"},
		{"rss", "rss"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			f, err := New(tt.source, Options{})
			require.NoError(t, err)
			assert.Equal(t, tt.name, f.Name())
		})
	}

	_, err := New("telegraph", Options{})
	assert.Error(t, err)
}
