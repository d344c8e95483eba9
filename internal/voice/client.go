package voice

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/odedgol/product-review-automation/internal/config"
)

const (
	baseURL      = "https://api.elevenlabs.io/v1"
	outputFormat = "mp3_44100_128"

	clientTimeout = 120 * time.Second
)

// RecommendedVoices maps friendly names to ElevenLabs voice IDs that handle
// Hebrew well through the multilingual model.
var RecommendedVoices = map[string]string{
	"rachel": "21m00Tcm4TlvDq8ikWAM", // calm, professional female
	"josh":   "TxGEqnHWrfWFTfGW9XjX", // deep, authoritative male
	"bella":  "EXAVITQu4vr4xnSDxMaL", // friendly female
	"adam":   "pNInz6obpgDQGcFmaJgB", // natural male
}

// Client is the live ElevenLabs text-to-speech client.
type Client struct {
	apiKey     string
	httpClient *http.Client
	outputDir  string
	cfg        config.VoiceConfig
}

func NewClient(apiKey, outputDir string, cfg config.VoiceConfig) *Client {
	if cfg.VoiceID == "" {
		cfg.VoiceID = RecommendedVoices["rachel"]
	}
	return &Client{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: clientTimeout},
		outputDir:  outputDir,
		cfg:        cfg,
	}
}

type ttsRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	Style           float64 `json:"style"`
	UseSpeakerBoost bool    `json:"use_speaker_boost"`
}

// Synthesize converts text to speech and streams the audio into filename
// under the output directory, overwriting any existing file. On a mid-stream
// error the partial file stays on disk and the error propagates.
func (c *Client) Synthesize(text, filename string) (string, error) {
	requestBody := ttsRequest{
		Text:    text,
		ModelID: c.cfg.ModelID,
		VoiceSettings: voiceSettings{
			Stability:       c.cfg.Stability,
			SimilarityBoost: c.cfg.SimilarityBoost,
			Style:           c.cfg.Style,
			UseSpeakerBoost: c.cfg.UseSpeakerBoost,
		},
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("marshalling request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s/stream?output_format=%s", baseURL, c.cfg.VoiceID, outputFormat)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	if err := os.MkdirAll(c.outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	outputPath := filepath.Join(c.outputDir, filename)
	file, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("creating audio file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return "", fmt.Errorf("writing audio stream: %w", err)
	}

	return outputPath, nil
}

// EstimateCost returns the synthesis price for text at the default rate.
func (c *Client) EstimateCost(text string) float64 {
	return EstimateCost(text, DefaultPricePerThousandChars)
}

// Voice describes one available ElevenLabs voice.
type Voice struct {
	VoiceID  string `json:"voice_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ListVoices fetches the voices available to the configured API key.
func (c *Client) ListVoices() ([]Voice, error) {
	req, err := http.NewRequest("GET", baseURL+"/voices", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("xi-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		Voices []Voice `json:"voices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return result.Voices, nil
}
