package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/models"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/config"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/fetcher"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/nlp"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/processor"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/tts"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Be careful with this in production
	},
}

// Message is the websocket frame exchanged with the dashboard.
type Message struct {
	Type    string      `json:"type"`
	Content string      `json:"content"`
	Data    interface{} `json:"data,omitempty"`
}

// Server wires the fetch-and-process pipeline to the HTTP surface. The two
// inference adapters are created once here and shared read-only across
// requests; they hold no per-call state.
type Server struct {
	config       *config.Config
	processor    *processor.Processor
	ttsClient    *tts.Client
	modelsLoaded bool
}

func New(cfg *config.Config) *Server {
	sentiment := nlp.NewSentimentWithConfig(nlp.SentimentConfig{
		BaseURL: cfg.Sentiment.BaseURL,
		Model:   cfg.Sentiment.Model,
		Token:   cfg.Sentiment.Token,
	})

	summarizerConfig := nlp.SummarizerConfig{
		Model:     cfg.Summarizer.Model,
		BaseURL:   cfg.Summarizer.BaseURL,
		MaxLength: cfg.Summarizer.MaxLength,
		MinLength: cfg.Summarizer.MinLength,
	}

	modelsLoaded := true
	summarizer, err := nlp.NewSummarizerWithConfig(summarizerConfig)
	if err != nil {
		// The pipeline still runs: every summary degrades to truncation.
		log.Printf("server: summarizer unavailable: %v", err)
		summarizer = nlp.NewDegradedSummarizer(summarizerConfig, err)
		modelsLoaded = false
	}

	return &Server{
		config:       cfg,
		processor:    processor.New(sentiment, summarizer),
		ttsClient:    tts.NewWithConfig(tts.Config{BaseURL: cfg.TTS.BaseURL, Language: cfg.TTS.Language}),
		modelsLoaded: modelsLoaded,
	}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.GET("/news", s.getNews)
		api.GET("/health", s.health)
		api.GET("/tts", s.speak)
	}
	r.GET("/ws", s.handleWebSocket)

	if s.config.Server.WebRoot != "" {
		indexFile := filepath.Join(s.config.Server.WebRoot, "index.html")
		r.StaticFile("/", indexFile)
		r.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet {
				c.Status(http.StatusNotFound)
				return
			}
			c.File(indexFile)
		})
	}
}

// Run starts the API server and blocks.
func (s *Server) Run() error {
	r := gin.Default()
	s.RegisterRoutes(r)
	addr := ":" + s.config.Server.Port
	log.Printf("starting api server at %s ...", addr)
	return r.Run(addr)
}

func (s *Server) getNews(c *gin.Context) {
	source := c.DefaultQuery("source", "bbc")
	category := c.DefaultQuery("category", "general")

	max, err := strconv.Atoi(c.DefaultQuery("max", strconv.Itoa(s.config.Fetcher.MaxArticles)))
	if err != nil || max <= 0 {
		max = s.config.Fetcher.MaxArticles
	}

	articles, err := s.fetch(c.Request.Context(), source, category, max)
	if errors.Is(err, fetcher.ErrMissingAPIKey) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "NewsAPI key not configured"})
		return
	}
	if err != nil {
		// Transient fetch failures degrade to the empty result below.
		log.Printf("server: fetch %s: %v", source, err)
	}

	if len(articles) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No articles found"})
		return
	}

	processed := s.processor.Process(c.Request.Context(), articles)

	c.JSON(http.StatusOK, gin.H{
		"articles":  processed,
		"count":     len(processed),
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"models_loaded": s.modelsLoaded,
		"timestamp":     time.Now().Format(time.RFC3339),
	})
}

func (s *Server) speak(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text parameter is required"})
		return
	}

	audio, err := s.ttsClient.Synthesize(c.Request.Context(), text)
	if err != nil {
		log.Printf("server: tts: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "text-to-speech service failed"})
		return
	}

	c.Data(http.StatusOK, "audio/mpeg", audio)
}

// fetch builds the fetcher for a source name and runs it. Unknown sources
// fall back to the scrape path, matching the dashboard's default.
func (s *Server) fetch(ctx context.Context, source, category string, max int) ([]models.Article, error) {
	if source != "newsapi" && source != "rss" {
		source = "bbc"
	}

	f, err := fetcher.New(source, fetcher.Options{
		NewsAPIKey:     s.config.NewsAPI.APIKey,
		NewsAPIBaseURL: s.config.NewsAPI.BaseURL,
		Country:        s.config.NewsAPI.Country,
		Category:       category,
		FeedURL:        s.config.Fetcher.FeedURL,
		Timeout:        time.Duration(s.config.Fetcher.TimeoutSecs) * time.Second,
		RateLimit:      s.config.Fetcher.RateLimit,
	})
	if err != nil {
		return nil, err
	}

	return f.Fetch(ctx, max)
}

func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Error reading message: %v", err)
			}
			return
		}

		switch msg.Type {
		case "fetch":
			s.streamPipeline(conn, msg.Content)
		default:
			s.sendMessage(conn, "error", fmt.Sprintf("unknown message type %q", msg.Type))
		}
	}
}

// streamPipeline runs one fetch-and-process cycle, pushing progress frames
// to the dashboard as stages complete.
func (s *Server) streamPipeline(conn *websocket.Conn, source string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s.sendMessage(conn, "status", fmt.Sprintf("Fetching news from %s...", source))

	articles, err := s.fetch(ctx, source, "general", s.config.Fetcher.MaxArticles)
	if errors.Is(err, fetcher.ErrMissingAPIKey) {
		s.sendMessage(conn, "error", "NewsAPI key not configured")
		return
	}
	if err != nil {
		log.Printf("server: ws fetch %s: %v", source, err)
	}
	if len(articles) == 0 {
		s.sendMessage(conn, "error", "No articles found")
		return
	}

	s.sendMessage(conn, "progress", fmt.Sprintf("Fetched %d articles, analyzing...", len(articles)))

	processed := s.processor.Process(ctx, articles)

	if err := conn.WriteJSON(Message{
		Type:    "articles",
		Content: fmt.Sprintf("Processed %d articles", len(processed)),
		Data:    gin.H{"articles": processed, "count": len(processed)},
	}); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

func (s *Server) sendMessage(conn *websocket.Conn, msgType string, content string) {
	if err := conn.WriteJSON(Message{Type: msgType, Content: content}); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
