// Package pipeline sequences the four production stages: load product,
// generate script, synthesize voice, render output.
package pipeline

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/odedgol/product-review-automation/internal/config"
	"github.com/odedgol/product-review-automation/internal/console"
	"github.com/odedgol/product-review-automation/internal/product"
	"github.com/odedgol/product-review-automation/internal/script"
	"github.com/odedgol/product-review-automation/internal/storyboard"
	"github.com/odedgol/product-review-automation/internal/voice"
)

// reviewScore is the fixed score rendered into the verdict scene. Scoring is
// editorial and lives outside this system for now.
const reviewScore = 8.5

// Pipeline wires the stages together from one config.
type Pipeline struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Pipeline {
	return &Pipeline{cfg: cfg}
}

// Outputs collects the artifacts of one pipeline run.
type Outputs struct {
	RunID          string         `json:"run_id"`
	AudioPath      string         `json:"audio_path"`
	StoryboardPath string         `json:"storyboard_path"`
	Script         *script.Result `json:"script,omitempty"`
}

// Run executes the full pipeline for a product and language. Script
// generation failures degrade to the example script with a warning; every
// other stage error terminates the run.
func (p *Pipeline) Run(productID, language string) (*Outputs, error) {
	runID := uuid.NewString()

	fmt.Println()
	console.Step("🚀 Running Full Pipeline")
	fmt.Printf("Product: %s, Language: %s, Run: %s\n\n", productID, language, runID)

	if p.cfg.AnthropicAPIKey == "" {
		console.Warn("ANTHROPIC_API_KEY not set. Using example script.")
	}
	if p.cfg.ElevenLabsAPIKey == "" {
		console.Warn("ELEVENLABS_API_KEY not set. Voice generation will be mocked.")
	}

	// Stage 1: product data
	console.Step("Loading product data...")
	record := product.Lookup(productID)
	console.Success("Loaded: %s", record.Name)

	// Stage 2: script generation
	console.Step("Generating script...")
	result := p.generateScript(record, language)
	console.Success("Script ready: %d words, %d sections", result.WordCount, result.Sections.Len())

	// Stage 3: voice generation
	console.Step("Generating voice-over...")
	voiceGen := voice.New(p.cfg.ElevenLabsAPIKey, p.cfg.OutputDir, p.cfg.Voice)

	voiceFilename := productID + "_voiceover.mp3"
	if _, offline := voiceGen.(*voice.Placeholder); offline {
		voiceFilename = productID + "_voiceover.txt"
	}
	audioPath, err := voiceGen.Synthesize(result.FullScript, voiceFilename)
	if err != nil {
		return nil, fmt.Errorf("generating voice-over: %w", err)
	}
	console.Success("Voice-over saved to: %s", audioPath)

	// Stage 4: video generation (storyboard until the renderer exists)
	console.Step("Generating video storyboard...")
	renderer := storyboard.NewRenderer(p.cfg.OutputDir, p.cfg.Video)
	storyboardPath, err := renderer.Render(storyboard.Params{
		ProductName: record.Name,
		Images:      record.Images,
		Sections:    result.Sections,
		Pros:        record.Pros,
		Cons:        record.Cons,
		Score:       reviewScore,
		Filename:    productID + "_storyboard.md",
	})
	if err != nil {
		return nil, fmt.Errorf("rendering storyboard: %w", err)
	}

	fmt.Println()
	console.Step("✅ Pipeline Complete!")
	fmt.Printf("Output: %s\n", storyboardPath)

	return &Outputs{
		RunID:          runID,
		AudioPath:      audioPath,
		StoryboardPath: storyboardPath,
		Script:         result,
	}, nil
}

// generateScript prefers the live generator and falls back to the example
// script on any failure. This is the only stage with a catch-and-substitute.
func (p *Pipeline) generateScript(record product.Record, language string) *script.Result {
	if p.cfg.AnthropicAPIKey == "" {
		return script.ExampleScript()
	}

	generator := script.NewGenerator(script.NewAnthropicService(p.cfg.AnthropicAPIKey))
	result, err := generator.Generate(
		product.FormatForScript(record),
		language,
		p.cfg.Script.Style,
		p.cfg.Script.MaxDurationSeconds,
	)
	if err != nil {
		console.Warn("Script generation failed: %v. Using example.", err)
		return script.ExampleScript()
	}
	return result
}

// Demo runs the offline demonstration: no API keys, example script,
// placeholder cost estimate, real storyboard.
func (p *Pipeline) Demo() (string, error) {
	fmt.Println()
	console.Step("🚀 Running Demo Mode")
	fmt.Println("No API keys required - using pre-generated content")
	fmt.Println()

	console.Step("Step 1: Loading product data...")
	record := product.Lookup(product.DefaultID)
	console.Table("Product Information", [][2]string{
		{"Name", record.Name},
		{"Brand", record.Brand},
		{"Price", fmt.Sprintf("$%.2f", record.Price)},
		{"Rating", fmt.Sprintf("%.1f/5", record.Rating)},
		{"Reviews", fmt.Sprintf("%d", record.ReviewCount)},
	})

	fmt.Println()
	console.Step("Step 2: Loading pre-generated script...")
	result := script.ExampleScript()
	console.Success("Script loaded: %d words", result.WordCount)
	console.Success("Language: %s", result.Language)
	console.Success("Sections: %s", strings.Join(result.Sections.Keys(), ", "))

	fmt.Println()
	console.Step("Script Preview:")
	console.Panel("תסריט הסרטון", preview(result.FullScript, 500))

	fmt.Println()
	console.Step("Step 3: Estimating voice-over cost...")
	voiceGen := voice.NewPlaceholder(p.cfg.OutputDir)
	cost := voiceGen.EstimateCost(result.FullScript)
	console.Success("Character count: %d", utf8.RuneCountInString(result.FullScript))
	console.Success("Estimated ElevenLabs cost: $%.2f", cost)

	fmt.Println()
	console.Step("Step 4: Generating video storyboard...")
	renderer := storyboard.NewRenderer(p.cfg.OutputDir, p.cfg.Video)
	storyboardPath, err := renderer.Render(storyboard.Params{
		ProductName: record.Name,
		Images:      record.Images,
		Sections:    result.Sections,
		Pros:        record.Pros,
		Cons:        record.Cons,
		Score:       reviewScore,
		Filename:    product.DefaultID + "_storyboard.md",
	})
	if err != nil {
		return "", fmt.Errorf("rendering storyboard: %w", err)
	}
	console.Success("Storyboard saved to: %s", storyboardPath)

	fmt.Println()
	console.Panel("Summary", fmt.Sprintf(`✅ Demo Complete!

Generated files:
• %s - Video storyboard

To generate actual videos, you need:
1. ElevenLabs API key (for voice-over)
2. Anthropic API key (for custom scripts)

Next steps:
1. Copy .env.example to .env
2. Add your API keys
3. Run: reviewgen -product %s`, storyboardPath, product.DefaultID))

	return storyboardPath, nil
}

func preview(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}
