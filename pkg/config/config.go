package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port    string `yaml:"port"`
		WebRoot string `yaml:"web_root"`
	} `yaml:"server"`

	NewsAPI struct {
		APIKey  string `yaml:"api_key"`
		BaseURL string `yaml:"base_url"`
		Country string `yaml:"country"`
	} `yaml:"newsapi"`

	Fetcher struct {
		MaxArticles int     `yaml:"max_articles"`
		TimeoutSecs int     `yaml:"timeout_seconds"`
		RateLimit   float64 `yaml:"rate_limit"`
		FeedURL     string  `yaml:"feed_url"`
	} `yaml:"fetcher"`

	Sentiment struct {
		BaseURL string `yaml:"base_url"`
		Model   string `yaml:"model"`
		Token   string `yaml:"token"`
	} `yaml:"sentiment"`

	Summarizer struct {
		BaseURL   string `yaml:"base_url"`
		Model     string `yaml:"model"`
		MaxLength int    `yaml:"max_length"`
		MinLength int    `yaml:"min_length"`
	} `yaml:"summarizer"`

	TTS struct {
		BaseURL  string `yaml:"base_url"`
		Language string `yaml:"language"`
	} `yaml:"tts"`
}

func LoadConfig(path string) (*Config, error) {
	// A .env file in the working directory is honored but never required.
	_ = godotenv.Load()

	// If no path provided, try default locations
	if path == "" {
		locations := []string{
			"config.yaml",
			"config.yml",
			filepath.Join(os.Getenv("HOME"), ".config/newsai/config.yaml"),
			"/etc/newsai/config.yaml",
		}

		for _, loc := range locations {
			if _, err := os.Stat(loc); err == nil {
				path = loc
				break
			}
		}
	}

	if path == "" {
		return getDefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %v", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %v", err)
	}

	// Merge with environment variables
	mergeWithEnv(&config)

	// Apply defaults for unset values
	applyDefaults(&config)

	return &config, nil
}

func getDefaultConfig() (*Config, error) {
	config := &Config{}
	mergeWithEnv(config)
	applyDefaults(config)
	return config, nil
}

func applyDefaults(config *Config) {
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}

	if config.NewsAPI.BaseURL == "" {
		config.NewsAPI.BaseURL = "https://newsapi.org"
	}
	if config.NewsAPI.Country == "" {
		config.NewsAPI.Country = "us"
	}

	if config.Fetcher.MaxArticles == 0 {
		config.Fetcher.MaxArticles = 10
	}
	if config.Fetcher.TimeoutSecs == 0 {
		config.Fetcher.TimeoutSecs = 10
	}
	if config.Fetcher.RateLimit == 0 {
		config.Fetcher.RateLimit = 2.0
	}
	if config.Fetcher.FeedURL == "" {
		config.Fetcher.FeedURL = "https://feeds.bbci.co.uk/news/world/rss.xml"
	}

	if config.Sentiment.BaseURL == "" {
		config.Sentiment.BaseURL = "https://api-inference.huggingface.co"
	}
	if config.Sentiment.Model == "" {
		config.Sentiment.Model = "distilbert-base-uncased-finetuned-sst-2-english"
	}

	if config.Summarizer.BaseURL == "" {
		config.Summarizer.BaseURL = "http://localhost:11434"
	}
	if config.Summarizer.Model == "" {
		config.Summarizer.Model = "mistral"
	}
	if config.Summarizer.MaxLength == 0 {
		config.Summarizer.MaxLength = 130
	}
	if config.Summarizer.MinLength == 0 {
		config.Summarizer.MinLength = 30
	}

	if config.TTS.BaseURL == "" {
		config.TTS.BaseURL = "https://translate.google.com"
	}
	if config.TTS.Language == "" {
		config.TTS.Language = "en"
	}
}

func mergeWithEnv(config *Config) {
	if port := os.Getenv("PORT"); port != "" {
		config.Server.Port = port
	}
	if key := os.Getenv("NEWSAPI_KEY"); key != "" {
		config.NewsAPI.APIKey = key
	}
	if token := os.Getenv("HF_API_TOKEN"); token != "" {
		config.Sentiment.Token = token
	}
	if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
		config.Summarizer.BaseURL = baseURL
	}
}
