package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/models"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/config"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/fetcher"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/nlp"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/processor"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/report"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/tts"
)

type options struct {
	configPath string
	source     string
	category   string
	max        int
	reportPath string
	audioPath  string
}

func main() {
	opts := parseFlags()

	if err := run(opts); err != nil {
		log.Fatal(err)
	}
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "Path to config file")
	flag.StringVar(&opts.source, "source", "bbc", "News source: bbc, newsapi or rss")
	flag.StringVar(&opts.category, "category", "general", "NewsAPI category")
	flag.IntVar(&opts.max, "max", 0, "Maximum number of articles (0 uses config)")
	flag.StringVar(&opts.reportPath, "out", "", "Write the report to this file")
	flag.StringVar(&opts.audioPath, "audio", "", "Write an MP3 audio summary to this file")
	flag.Parse()

	return opts
}

func getProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("articles"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func getSpinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func run(opts options) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			color.Red("config: %v", e)
		}
		return fmt.Errorf("invalid configuration")
	}

	max := opts.max
	if max <= 0 {
		max = cfg.Fetcher.MaxArticles
	}

	f, err := fetcher.New(opts.source, fetcher.Options{
		NewsAPIKey:     cfg.NewsAPI.APIKey,
		NewsAPIBaseURL: cfg.NewsAPI.BaseURL,
		Country:        cfg.NewsAPI.Country,
		Category:       opts.category,
		FeedURL:        cfg.Fetcher.FeedURL,
		Timeout:        time.Duration(cfg.Fetcher.TimeoutSecs) * time.Second,
		RateLimit:      cfg.Fetcher.RateLimit,
	})
	if err != nil {
		return err
	}

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
	summarizer, err := nlp.NewSummarizerWithConfig(summarizerConfig)
	if err != nil {
		color.Yellow("summarizer unavailable, falling back to truncation: %v", err)
		summarizer = nlp.NewDegradedSummarizer(summarizerConfig, err)
	}

	p := processor.New(sentiment, summarizer)

	ctx := context.Background()

	fetchSpinner := getSpinner(fmt.Sprintf("Fetching news from %s...", f.Name()))
	articles, err := f.Fetch(ctx, max)
	fetchSpinner.Finish()
	fmt.Print("\r")

	if err != nil {
		return fmt.Errorf("failed to fetch articles: %v", err)
	}
	if len(articles) == 0 {
		return fmt.Errorf("no articles fetched from %s", f.Name())
	}
	color.Green("\n✓ Fetched %d articles\n", len(articles))

	// Feed the processor one article at a time so the bar ticks, keeping
	// ids dense across skipped records.
	processingBar := getProgressBar(len(articles), "Analyzing articles...")
	processed := make([]models.ProcessedArticle, 0, len(articles))
	for _, article := range articles {
		for _, pa := range p.Process(ctx, []models.Article{article}) {
			pa.ID = len(processed) + 1
			processed = append(processed, pa)
		}
		processingBar.Add(1)
	}
	color.Green("\n✓ Processed %d articles\n\n", len(processed))

	text := report.Generate(processed)
	fmt.Println(text)

	if opts.reportPath != "" {
		if err := os.WriteFile(opts.reportPath, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write report: %v", err)
		}
		color.Green("✓ Report saved to %s\n", opts.reportPath)
	}

	if opts.audioPath != "" {
		ttsSpinner := getSpinner("Generating audio summary...")
		audio, err := tts.NewWithConfig(tts.Config{
			BaseURL:  cfg.TTS.BaseURL,
			Language: cfg.TTS.Language,
		}).Synthesize(ctx, text)
		ttsSpinner.Finish()
		fmt.Print("\r")

		if err != nil {
			return fmt.Errorf("failed to generate audio: %v", err)
		}
		if err := os.WriteFile(opts.audioPath, audio, 0o644); err != nil {
			return fmt.Errorf("failed to write audio: %v", err)
		}
		color.Green("✓ Audio summary saved to %s\n", opts.audioPath)
	}

	return nil
}
