package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTextService records the prompts it receives and replays a canned
// response.
type fakeTextService struct {
	systemPrompt string
	userPrompt   string
	response     string
	err          error
}

func (f *fakeTextService) GenerateWithSystem(systemPrompt, userPrompt string) (string, error) {
	f.systemPrompt = systemPrompt
	f.userPrompt = userPrompt
	return f.response, f.err
}

func TestGenerate_ParsesResponse(t *testing.T) {
	fake := &fakeTextService{response: "[HOOK] grab attention\n[CTA] like and subscribe"}
	generator := NewGenerator(fake)

	result, err := generator.Generate("product info", "hebrew", "friendly", 180)
	require.NoError(t, err)

	assert.Equal(t, "hebrew", result.Language)
	assert.Equal(t, 180, result.EstimatedDuration)
	assert.Equal(t, 7, result.WordCount)
	assert.Equal(t, []string{"hook", "cta"}, result.Sections.Keys())
}

func TestGenerate_TargetWordsByLanguage(t *testing.T) {
	tests := []struct {
		language string
		duration int
		want     string
	}{
		{"hebrew", 180, "360"},  // 120 wpm
		{"english", 180, "450"}, // 150 wpm
		{"hebrew", 60, "120"},
		{"english", 60, "150"},
	}

	for _, tt := range tests {
		fake := &fakeTextService{response: "ok"}
		_, err := NewGenerator(fake).Generate("info", tt.language, "friendly", tt.duration)
		require.NoError(t, err)
		assert.Contains(t, fake.userPrompt, tt.want,
			"user prompt for %s/%ds should carry target word count", tt.language, tt.duration)
	}
}

func TestGenerate_PromptStructure(t *testing.T) {
	fake := &fakeTextService{response: "ok"}
	_, err := NewGenerator(fake).Generate("UNIQUE-PRODUCT-INFO", "english", "friendly", 180)
	require.NoError(t, err)

	// The system prompt mandates the seven-part bracket structure.
	for _, marker := range []string{"[HOOK]", "[INTRO]", "[FEATURES]", "[PROS]", "[CONS]", "[VERDICT]", "[CTA]"} {
		assert.Contains(t, fake.systemPrompt, marker)
	}
	assert.Contains(t, fake.userPrompt, "UNIQUE-PRODUCT-INFO")
}

func TestGenerate_HebrewStylePresets(t *testing.T) {
	for _, style := range []string{"friendly", "professional", "casual"} {
		fake := &fakeTextService{response: "ok"}
		_, err := NewGenerator(fake).Generate("info", "hebrew", style, 180)
		require.NoError(t, err)
		assert.Contains(t, fake.systemPrompt, styleInstructions[style])
	}

	// Unknown styles fall back to friendly.
	fake := &fakeTextService{response: "ok"}
	_, err := NewGenerator(fake).Generate("info", "hebrew", "sarcastic", 180)
	require.NoError(t, err)
	assert.Contains(t, fake.systemPrompt, styleInstructions["friendly"])
}

func TestGenerate_ErrorPropagates(t *testing.T) {
	fake := &fakeTextService{err: errors.New("rate limited")}
	result, err := NewGenerator(fake).Generate("info", "hebrew", "friendly", 180)

	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorContains(t, err, "rate limited")
}

func TestExampleScript(t *testing.T) {
	result := ExampleScript()

	assert.Equal(t, "hebrew", result.Language)
	assert.Equal(t, 180, result.EstimatedDuration)
	assert.Equal(t, len(strings.Fields(result.FullScript)), result.WordCount)
	assert.Equal(t, 7, result.Sections.Len())
}
