package voice

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// PlaceholderMarker opens every placeholder file, so downstream tooling can
// tell stub output from real audio.
const PlaceholderMarker = "[PLACEHOLDER - Would contain audio for:]"

const placeholderPreviewChars = 200

// Placeholder is the offline voice generator used when no ElevenLabs
// credential is configured. It writes a short text stub instead of audio.
type Placeholder struct {
	outputDir string
}

func NewPlaceholder(outputDir string) *Placeholder {
	return &Placeholder{outputDir: outputDir}
}

// Synthesize writes a readable stub carrying the first 200 characters of the
// input to filename and returns the written path.
func (p *Placeholder) Synthesize(text, filename string) (string, error) {
	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	preview := text
	if utf8.RuneCountInString(preview) > placeholderPreviewChars {
		preview = string([]rune(preview)[:placeholderPreviewChars])
	}

	outputPath := filepath.Join(p.outputDir, filename)
	content := fmt.Sprintf("%s\n%s...", PlaceholderMarker, preview)
	if err := os.WriteFile(outputPath, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing placeholder file: %w", err)
	}

	fmt.Printf("Placeholder: would generate audio for %d characters\n", utf8.RuneCountInString(text))
	fmt.Printf("Placeholder: saved stub to %s\n", outputPath)

	return outputPath, nil
}

// EstimateCost returns the would-be synthesis price and prints a readable
// estimate.
func (p *Placeholder) EstimateCost(text string) float64 {
	cost := EstimateCost(text, DefaultPricePerThousandChars)
	fmt.Printf("Estimated cost: $%.2f (%d characters)\n", cost, utf8.RuneCountInString(text))
	return cost
}
