// Package script generates review video scripts and splits them into the
// bracket-marked sections downstream stages consume.
package script

import (
	"fmt"
	"strings"
)

// TextService is the external text-generation call. Implementations wrap a
// specific provider API; the generator only needs a system/user prompt pair
// answered with a single text payload.
type TextService interface {
	GenerateWithSystem(systemPrompt, userPrompt string) (string, error)
}

// Result is one generated script with its parsed sections and metadata.
type Result struct {
	FullScript        string    `json:"full_script"`
	Sections          *Sections `json:"sections"`
	Language          string    `json:"language"`
	EstimatedDuration int       `json:"estimated_duration"`
	WordCount         int       `json:"word_count"`
}

// Generator produces review scripts through a TextService.
type Generator struct {
	ai TextService
}

func NewGenerator(ai TextService) *Generator {
	return &Generator{ai: ai}
}

// Generate builds the prompt pair for the product info, invokes the text
// service and parses the response into sections. Errors from the service
// propagate untouched; the orchestrator decides whether to substitute the
// example script.
func (g *Generator) Generate(productInfo, language, style string, durationSeconds int) (*Result, error) {
	targetWords := targetWordCount(language, durationSeconds)

	system := systemPrompt(language, style)
	user := userPrompt(productInfo, targetWords, language)

	scriptText, err := g.ai.GenerateWithSystem(system, user)
	if err != nil {
		return nil, fmt.Errorf("generating script: %w", err)
	}

	return &Result{
		FullScript:        scriptText,
		Sections:          ParseSections(scriptText),
		Language:          language,
		EstimatedDuration: durationSeconds,
		WordCount:         len(strings.Fields(scriptText)),
	}, nil
}
