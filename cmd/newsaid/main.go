package main

import (
	"flag"
	"log"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/pkg/config"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/server"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			log.Printf("config: %v", e)
		}
		log.Fatal("invalid configuration")
	}

	if err := server.New(cfg).Run(); err != nil {
		log.Fatalf("server exit: %v", err)
	}
}
