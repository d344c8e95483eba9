package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/odedgol/product-review-automation/internal/api"
	"github.com/odedgol/product-review-automation/internal/config"
	"github.com/odedgol/product-review-automation/internal/console"
	"github.com/odedgol/product-review-automation/internal/pipeline"
	"github.com/odedgol/product-review-automation/internal/product"
	"github.com/odedgol/product-review-automation/internal/voice"
)

func main() {
	demo := flag.Bool("demo", false, "Run demo mode with pre-generated content")
	productID := flag.String("product", product.DefaultID, "Product ID to review")
	language := flag.String("language", "hebrew", "Language for the script (hebrew|english)")
	listProducts := flag.Bool("list-products", false, "List available products")
	listVoices := flag.Bool("list-voices", false, "List available ElevenLabs voices (requires API key)")
	serve := flag.Bool("serve", false, "Serve the pipeline as a local HTTP API")
	port := flag.String("port", "", "Port for the HTTP API (overrides PORT)")
	flag.Parse()

	if *language != "hebrew" && *language != "english" {
		fmt.Fprintf(os.Stderr, "invalid language %q: choose hebrew or english\n", *language)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	console.Banner()

	if *listProducts {
		fmt.Println()
		console.Step("Available Products:")
		for _, id := range product.IDs() {
			record := product.Lookup(id)
			fmt.Printf("  • %s - %s\n", id, record.Name)
		}
		console.Dim("More products coming soon...")
		return
	}

	if *listVoices {
		if cfg.ElevenLabsAPIKey == "" {
			fmt.Fprintln(os.Stderr, "ELEVENLABS_API_KEY is required to list voices")
			os.Exit(1)
		}
		client := voice.NewClient(cfg.ElevenLabsAPIKey, cfg.OutputDir, cfg.Voice)
		voices, err := client.ListVoices()
		if err != nil {
			log.Fatalf("Failed to list voices: %v", err)
		}
		fmt.Println()
		console.Step("Available Voices:")
		for _, v := range voices {
			fmt.Printf("  • %s (%s) - %s\n", v.Name, v.Category, v.VoiceID)
		}
		return
	}

	if *serve {
		if *port != "" {
			cfg.Port = *port
		}
		server := api.NewServer(cfg)
		fmt.Printf("Serving pipeline API on port %s\n", cfg.Port)
		if err := server.Listen(); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
		return
	}

	p := pipeline.New(cfg)

	if *demo {
		if _, err := p.Demo(); err != nil {
			log.Fatalf("Demo failed: %v", err)
		}
		return
	}

	if _, err := p.Run(*productID, *language); err != nil {
		log.Fatalf("Pipeline failed: %v", err)
	}
}
