package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// VideoConfig holds the encoding parameters for the (future) video renderer.
// The storyboard renderer only consumes Width, Height and FPS for its header.
type VideoConfig struct {
	Width      int
	Height     int
	FPS        int
	Format     string
	Codec      string
	AudioCodec string
}

// VoiceConfig holds the ElevenLabs tuning defaults.
type VoiceConfig struct {
	VoiceID         string
	ModelID         string
	Stability       float64
	SimilarityBoost float64
	Style           float64
	UseSpeakerBoost bool
}

// ScriptConfig holds script generation defaults.
type ScriptConfig struct {
	Language           string
	Style              string
	MaxDurationSeconds int
	TargetWords        int
}

// TemplateConfig holds video template defaults. Unused by the storyboard
// renderer today, carried for the full video renderer.
type TemplateConfig struct {
	IntroDuration         float64
	OutroDuration         float64
	TransitionDuration    float64
	BackgroundMusicVolume float64
	FontFamily            string
	PrimaryColor          string
	SecondaryColor        string
	TextColor             string
}

// Config is the full application configuration.
type Config struct {
	AnthropicAPIKey  string
	ElevenLabsAPIKey string
	OpenAIAPIKey     string // reserved as a backup provider

	OutputDir    string
	VideosDir    string
	AssetsDir    string
	TemplatesDir string

	Port string

	Video    VideoConfig
	Voice    VoiceConfig
	Script   ScriptConfig
	Template TemplateConfig
}

// Load reads configuration from the environment. A .env file is loaded first
// if present. Missing API keys are not an error; the pipeline degrades to
// placeholder implementations instead.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		AnthropicAPIKey:  getEnv("ANTHROPIC_API_KEY", ""),
		ElevenLabsAPIKey: getEnv("ELEVENLABS_API_KEY", ""),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),

		OutputDir:    getEnv("OUTPUT_DIR", "output"),
		AssetsDir:    getEnv("ASSETS_DIR", "assets"),
		TemplatesDir: getEnv("TEMPLATES_DIR", "templates"),

		Port: getEnv("PORT", "8080"),

		Video: VideoConfig{
			Width:      getEnvInt("VIDEO_WIDTH", 1920),
			Height:     getEnvInt("VIDEO_HEIGHT", 1080),
			FPS:        getEnvInt("VIDEO_FPS", 30),
			Format:     "mp4",
			Codec:      "libx264",
			AudioCodec: "aac",
		},
		Voice: VoiceConfig{
			VoiceID:         getEnv("VOICE_ID", "21m00Tcm4TlvDq8ikWAM"), // Rachel
			ModelID:         getEnv("VOICE_MODEL_ID", "eleven_multilingual_v2"),
			Stability:       getEnvFloat("VOICE_STABILITY", 0.5),
			SimilarityBoost: getEnvFloat("VOICE_SIMILARITY_BOOST", 0.8),
			Style:           getEnvFloat("VOICE_STYLE", 0.4),
			UseSpeakerBoost: getEnvBool("VOICE_SPEAKER_BOOST", true),
		},
		Script: ScriptConfig{
			Language:           getEnv("SCRIPT_LANGUAGE", "hebrew"),
			Style:              getEnv("SCRIPT_STYLE", "friendly"),
			MaxDurationSeconds: getEnvInt("SCRIPT_MAX_DURATION", 180),
			TargetWords:        getEnvInt("SCRIPT_TARGET_WORDS", 450),
		},
		Template: TemplateConfig{
			IntroDuration:         5,
			OutroDuration:         5,
			TransitionDuration:    0.5,
			BackgroundMusicVolume: 0.1,
			FontFamily:            "Arial",
			PrimaryColor:          "#FF6B35",
			SecondaryColor:        "#004E89",
			TextColor:             "#FFFFFF",
		},
	}
	cfg.VideosDir = getEnv("VIDEOS_DIR", filepath.Join(cfg.OutputDir, "videos"))

	for _, dir := range []string{cfg.OutputDir, cfg.VideosDir, cfg.AssetsDir, cfg.TemplatesDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return f
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}
