// Package storyboard renders the fixed eight-scene markdown outline that
// stands in for the unbuilt video renderer.
package storyboard

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/odedgol/product-review-automation/internal/config"
	"github.com/odedgol/product-review-automation/internal/script"
)

const maxListedItems = 5

// Renderer writes storyboard documents into its output directory.
type Renderer struct {
	outputDir string
	video     config.VideoConfig
}

func NewRenderer(outputDir string, video config.VideoConfig) *Renderer {
	return &Renderer{outputDir: outputDir, video: video}
}

// Params carries everything one storyboard needs.
type Params struct {
	ProductName string
	Images      []string
	Sections    *script.Sections
	Pros        []string
	Cons        []string
	Score       float64
	Filename    string
}

// Render substitutes the inputs into the storyboard template and writes the
// result, overwriting unconditionally. Missing script sections come out as
// bracketed placeholder labels, never empty strings. Inputs are trusted: no
// escaping, no score validation.
func (r *Renderer) Render(p Params) (string, error) {
	sections := p.Sections
	if sections == nil {
		sections = script.NewSections()
	}

	imagesList := "  [Add product images]"
	if len(p.Images) > 0 {
		var lines []string
		for i, img := range cap5(p.Images) {
			lines = append(lines, fmt.Sprintf("  %d. %s", i+1, img))
		}
		imagesList = strings.Join(lines, "\n")
	}

	var prosLines, consLines []string
	for _, pro := range cap5(p.Pros) {
		prosLines = append(prosLines, "  ✓ "+pro)
	}
	for _, con := range cap5(p.Cons) {
		consLines = append(consLines, "  ✗ "+con)
	}

	doc := fmt.Sprintf(`# Video Storyboard: %s

## Technical Specs
- Resolution: %dx%d
- FPS: %d
- Duration: ~3 minutes

---

## Scene 1: Title (0:00-0:05)
Text: "%s"

## Scene 2: Hook (0:05-0:15)
%s

## Scene 3: Showcase (0:15-0:30)
Images:
%s

Script:
%s

## Scene 4: Features (0:30-1:15)
%s

## Scene 5: Pros (1:15-1:45)
%s

%s

## Scene 6: Cons (1:45-2:10)
%s

%s

## Scene 7: Verdict (2:10-2:40)
Score: %.1f/10

%s

## Scene 8: CTA (2:40-3:00)
%s

---
## Assets Needed
- Product images
- Voice-over MP3
- Background music
`,
		p.ProductName,
		r.video.Width, r.video.Height,
		r.video.FPS,
		p.ProductName,
		sections.GetOr("hook", "[Hook]"),
		imagesList,
		sections.GetOr("intro", "[Intro]"),
		sections.GetOr("features", "[Features]"),
		strings.Join(prosLines, "\n"),
		sections.GetOr("pros", "[Pros script]"),
		strings.Join(consLines, "\n"),
		sections.GetOr("cons", "[Cons script]"),
		p.Score,
		sections.GetOr("verdict", "[Verdict]"),
		sections.GetOr("cta", "[CTA]"),
	)

	if err := os.MkdirAll(r.outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	outputPath := filepath.Join(r.outputDir, p.Filename)
	if err := os.WriteFile(outputPath, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("writing storyboard: %w", err)
	}

	return outputPath, nil
}

func cap5(items []string) []string {
	if len(items) > maxListedItems {
		return items[:maxListedItems]
	}
	return items
}
