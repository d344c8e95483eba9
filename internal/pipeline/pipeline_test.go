package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odedgol/product-review-automation/internal/config"
	"github.com/odedgol/product-review-automation/internal/voice"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		OutputDir: t.TempDir(),
		Video:     config.VideoConfig{Width: 1920, Height: 1080, FPS: 30},
		Script: config.ScriptConfig{
			Language:           "hebrew",
			Style:              "friendly",
			MaxDurationSeconds: 180,
		},
	}
}

func TestRun_OfflineProducesPlaceholderArtifacts(t *testing.T) {
	p := New(testConfig(t))

	outputs, err := p.Run("owala_freesip", "hebrew")
	require.NoError(t, err)

	assert.NotEmpty(t, outputs.RunID)

	// Without an ElevenLabs key the voice-over is a text stub.
	assert.Equal(t, "owala_freesip_voiceover.txt", filepath.Base(outputs.AudioPath))
	audio, err := os.ReadFile(outputs.AudioPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(audio), voice.PlaceholderMarker))

	// Without an Anthropic key the example script is used.
	assert.Equal(t, "hebrew", outputs.Script.Language)
	assert.Equal(t, 7, outputs.Script.Sections.Len())

	board, err := os.ReadFile(outputs.StoryboardPath)
	require.NoError(t, err)
	assert.Contains(t, string(board), "# Video Storyboard: Owala FreeSip")
	assert.Contains(t, string(board), "Score: 8.5/10")
}

func TestRun_UnknownProductStillSucceeds(t *testing.T) {
	p := New(testConfig(t))

	outputs, err := p.Run("mystery_gadget", "english")
	require.NoError(t, err)
	assert.Equal(t, "mystery_gadget_storyboard.md", filepath.Base(outputs.StoryboardPath))
}

func TestDemo(t *testing.T) {
	cfg := testConfig(t)
	p := New(cfg)

	path, err := p.Demo()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cfg.OutputDir, "owala_freesip_storyboard.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	doc := string(data)

	// All eight scenes present, with the example script substituted.
	for _, scene := range []string{"Scene 1", "Scene 2", "Scene 3", "Scene 4", "Scene 5", "Scene 6", "Scene 7", "Scene 8"} {
		assert.Contains(t, doc, scene)
	}
	assert.NotContains(t, doc, "[Hook]", "example script sections should fill every slot")
}
