package tts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// The speech endpoint rejects long inputs; text is split into chunks of at
// most this many characters, at word boundaries, and the audio concatenated.
const maxChunkChars = 200

const maxAudioBytes = 8 << 20 // 8MB per chunk

var (
	urlPattern   = regexp.MustCompile(`https?://\S+`)
	noisePattern = regexp.MustCompile(`[^\w\s.,!?-]`)
)

// Config represents the configuration for the text-to-speech client.
type Config struct {
	BaseURL   string
	Language  string
	UserAgent string
	Timeout   time.Duration
}

// Client converts text into MP3 audio through the Google Translate speech
// endpoint. It is a thin wrapper: errors are returned to the caller, which
// decides how to surface them.
type Client struct {
	config Config
	client *http.Client
}

func NewWithConfig(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = "https://translate.google.com"
	}
	if config.Language == "" {
		config.Language = "en"
	}
	if config.UserAgent == "" {
		config.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// CleanText strips URLs and characters the speech engine trips over.
func CleanText(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = noisePattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Synthesize converts text to MP3 bytes. The input is cleaned first; an
// input that cleans down to nothing is an error.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	clean := CleanText(text)
	if clean == "" {
		return nil, fmt.Errorf("tts: nothing to synthesize")
	}

	var audio []byte
	for _, chunk := range splitChunks(clean, maxChunkChars) {
		data, err := c.fetchChunk(ctx, chunk)
		if err != nil {
			return nil, err
		}
		audio = append(audio, data...)
	}

	return audio, nil
}

func (c *Client) fetchChunk(ctx context.Context, chunk string) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/translate_tts?ie=UTF-8&client=tw-ob&tl=%s&q=%s",
		c.config.BaseURL,
		url.QueryEscape(c.config.Language),
		url.QueryEscape(chunk))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("tts: build request: %w", err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts: fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tts: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAudioBytes))
	if err != nil {
		return nil, fmt.Errorf("tts: read audio: %w", err)
	}
	return data, nil
}

// splitChunks breaks text into pieces of at most limit characters without
// splitting words. A single word longer than limit becomes its own chunk.
func splitChunks(text string, limit int) []string {
	words := strings.Fields(text)

	var chunks []string
	current := strings.Builder{}

	for _, word := range words {
		if current.Len() > 0 && current.Len()+1+len(word) > limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}
