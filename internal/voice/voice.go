// Package voice turns script text into voice-over audio through the
// ElevenLabs API, with an offline placeholder when no credential is set.
package voice

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/odedgol/product-review-automation/internal/config"
	"github.com/odedgol/product-review-automation/internal/script"
)

// DefaultPricePerThousandChars is the ElevenLabs list price used for cost
// estimates.
const DefaultPricePerThousandChars = 0.30

// Generator is the common interface for voice-over providers. Synthesize
// writes the audio for text under filename in the generator's output
// directory and returns the written path.
type Generator interface {
	Synthesize(text, filename string) (string, error)
	EstimateCost(text string) float64
}

// EstimateCost computes the synthesis price for a text from its character
// count. Pure; linear in the number of characters.
func EstimateCost(text string, pricePerThousandChars float64) float64 {
	chars := utf8.RuneCountInString(text)
	return float64(chars) / 1000 * pricePerThousandChars
}

// New selects the live client when an API key is configured and the offline
// placeholder otherwise. Degrading to the placeholder is deliberate, not an
// error.
func New(apiKey, outputDir string, cfg config.VoiceConfig) Generator {
	if apiKey == "" {
		fmt.Println("Using placeholder voice generator (no API key)")
		return NewPlaceholder(outputDir)
	}
	return NewClient(apiKey, outputDir, cfg)
}

// SynthesizeSections generates one audio file per script section, in the
// order the sections appeared. Sections whose trimmed text is empty are
// skipped. Synthesis is sequential; the first failure aborts the loop and
// files already written stay on disk.
func SynthesizeSections(gen Generator, sections *script.Sections) (map[string]string, error) {
	audioFiles := make(map[string]string)

	for _, section := range sections.Keys() {
		text, _ := sections.Get(section)
		if strings.TrimSpace(text) == "" {
			continue
		}

		filename := fmt.Sprintf("voice_%s.mp3", section)
		fmt.Printf("Generating voice for section: %s\n", section)

		path, err := gen.Synthesize(text, filename)
		if err != nil {
			return audioFiles, fmt.Errorf("synthesizing section %s: %w", section, err)
		}
		audioFiles[section] = path
	}

	return audioFiles, nil
}
