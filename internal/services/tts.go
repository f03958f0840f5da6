package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"
)

// Synthesizer renders narration text to a playable audio file and
// returns its path. Files land in the OS temp directory; callers own
// cleanup.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) (string, error)
}

// SpeechClient is an OpenAI-compatible speech synthesis client.
type SpeechClient struct {
	baseURL    string
	apiKey     string
	voice      string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ Synthesizer = (*SpeechClient)(nil)

// NewSpeechClient creates a speech synthesis client.
func NewSpeechClient(baseURL, apiKey, voice string, logger *slog.Logger) *SpeechClient {
	return &SpeechClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		voice:   voice,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

type speechRequest struct {
	Model          string `json:"model"`
	Voice          string `json:"voice"`
	Input          string `json:"input"`
	ResponseFormat string `json:"response_format"`
}

func (s *SpeechClient) Synthesize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(speechRequest{
		Model:          "tts-1",
		Voice:          s.voice,
		Input:          text,
		ResponseFormat: "wav",
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := s.baseURL + "/v1/audio/speech"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.logger.Error("Speech API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(payload))
		return "", fmt.Errorf("speech API error: %s", resp.Status)
	}

	out, err := os.CreateTemp("", "blindkeep-*.wav")
	if err != nil {
		return "", fmt.Errorf("failed to create audio file: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		_ = os.Remove(out.Name())
		return "", fmt.Errorf("failed to write audio file: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("failed to close audio file: %w", err)
	}

	s.logger.Debug("Narration audio rendered", "path", out.Name())
	return out.Name(), nil
}
