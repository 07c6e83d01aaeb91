package models

// Article is a raw record as returned by a news source, before any NLP.
// PublishedAt is kept as the source's string form (ISO-8601 for NewsAPI);
// parsing is deferred to the processor so a bad timestamp never drops a record.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
}

// ProcessedArticle is the normalized record served to the dashboard.
// IDs are dense 1-based positions in the output batch, recomputed per fetch.
type ProcessedArticle struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Summary        string  `json:"summary"`
	Category       string  `json:"category"`
	Sentiment      string  `json:"sentiment"`
	SentimentScore float64 `json:"sentimentScore"`
	Source         string  `json:"source"`
	URL            string  `json:"url"`
	PublishedAt    string  `json:"publishedAt"`
}
