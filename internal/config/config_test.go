package config

import (
	"os"
	"path/filepath"
	"testing"
)

func loadWithTempDirs(t *testing.T) *Config {
	t.Helper()
	base := t.TempDir()
	t.Setenv("OUTPUT_DIR", filepath.Join(base, "output"))
	t.Setenv("VIDEOS_DIR", filepath.Join(base, "output", "videos"))
	t.Setenv("ASSETS_DIR", filepath.Join(base, "assets"))
	t.Setenv("TEMPLATES_DIR", filepath.Join(base, "templates"))

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("ELEVENLABS_API_KEY", "")
	cfg := loadWithTempDirs(t)

	if cfg.Voice.VoiceID != "21m00Tcm4TlvDq8ikWAM" {
		t.Errorf("VoiceID = %q", cfg.Voice.VoiceID)
	}
	if cfg.Voice.ModelID != "eleven_multilingual_v2" {
		t.Errorf("ModelID = %q", cfg.Voice.ModelID)
	}
	if cfg.Voice.Stability != 0.5 || cfg.Voice.SimilarityBoost != 0.8 || cfg.Voice.Style != 0.4 {
		t.Errorf("voice tuning = %+v", cfg.Voice)
	}
	if !cfg.Voice.UseSpeakerBoost {
		t.Error("speaker boost should default on")
	}
	if cfg.Script.Language != "hebrew" || cfg.Script.Style != "friendly" {
		t.Errorf("script defaults = %+v", cfg.Script)
	}
	if cfg.Script.MaxDurationSeconds != 180 || cfg.Script.TargetWords != 450 {
		t.Errorf("script durations = %+v", cfg.Script)
	}
	if cfg.Video.Width != 1920 || cfg.Video.Height != 1080 || cfg.Video.FPS != 30 {
		t.Errorf("video defaults = %+v", cfg.Video)
	}
	if cfg.Template.FontFamily != "Arial" || cfg.Template.PrimaryColor != "#FF6B35" {
		t.Errorf("template defaults = %+v", cfg.Template)
	}
}

func TestLoad_CreatesDirectories(t *testing.T) {
	cfg := loadWithTempDirs(t)

	for _, dir := range []string{cfg.OutputDir, cfg.VideosDir, cfg.AssetsDir, cfg.TemplatesDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("directory %s was not created", dir)
		}
	}
}

func TestLoad_MissingCredentialsNotFatal(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("ELEVENLABS_API_KEY", "")
	cfg := loadWithTempDirs(t)

	if cfg.AnthropicAPIKey != "" || cfg.ElevenLabsAPIKey != "" {
		t.Error("credentials should be empty")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("VOICE_STABILITY", "0.9")
	t.Setenv("SCRIPT_LANGUAGE", "english")
	t.Setenv("VIDEO_FPS", "60")
	cfg := loadWithTempDirs(t)

	if cfg.Voice.Stability != 0.9 {
		t.Errorf("Stability = %v", cfg.Voice.Stability)
	}
	if cfg.Script.Language != "english" {
		t.Errorf("Language = %q", cfg.Script.Language)
	}
	if cfg.Video.FPS != 60 {
		t.Errorf("FPS = %d", cfg.Video.FPS)
	}
}
