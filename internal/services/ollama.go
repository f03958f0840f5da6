package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// OllamaClient implements ChatClient against a local Ollama server.
type OllamaClient struct {
	baseURL    string
	modelName  string
	httpClient *http.Client
	logger     *slog.Logger
}

var _ ChatClient = (*OllamaClient)(nil)

// NewOllamaClient creates a new Ollama client instance.
func NewOllamaClient(baseURL string, modelName string, logger *slog.Logger) *OllamaClient {
	return &OllamaClient{
		baseURL:   baseURL,
		modelName: modelName,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

type ollamaMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatResponse struct {
	Message ollamaMessage `json:"message"`
	Done    bool          `json:"done"`
}

// Complete sends a single system+user exchange to the Ollama chat API
// (non-streaming) and returns the model's reply text.
func (s *OllamaClient) Complete(ctx context.Context, system, user string) (string, error) {
	reqBody := map[string]interface{}{
		"model": s.modelName,
		"messages": []ollamaMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		"stream": false,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := s.baseURL + "/api/chat"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	s.logger.Debug("Making Ollama chat request", "url", url, "model", s.modelName)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	var responseBody bytes.Buffer
	if _, err := responseBody.ReadFrom(resp.Body); err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("Ollama API returned error",
			"status_code", resp.StatusCode,
			"status", resp.Status,
			"response_body", truncate(responseBody.String(), 500))
		return "", fmt.Errorf("ollama API error: %s", resp.Status)
	}

	var chatResp ollamaChatResponse
	if err := json.Unmarshal(responseBody.Bytes(), &chatResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	return chatResp.Message.Content, nil
}

// WaitForReady polls the Ollama server until it responds or the retry
// budget runs out, so startup can block on a cold local daemon.
func (s *OllamaClient) WaitForReady(ctx context.Context) error {
	const maxRetries = 30
	const retryDelay = 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"/api/tags", nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		resp, err := s.httpClient.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		s.logger.Debug("Ollama not ready yet", "attempt", i+1, "error", err)
		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled while waiting for ollama: %w", ctx.Err())
		case <-time.After(retryDelay):
		}
	}
	return fmt.Errorf("ollama did not become available after %d attempts", maxRetries)
}
