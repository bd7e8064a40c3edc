package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shelfmark/core/internal/config"
)

// ollamaClient calls a local model server speaking the Ollama chat API.
type ollamaClient struct {
	endpoint string
	model    string
	http     *http.Client
}

func newOllamaClient(cfg config.AIConfig) *ollamaClient {
	return &ollamaClient{
		endpoint: cfg.Endpoint,
		model:    cfg.Model,
		http:     &http.Client{Timeout: 120 * time.Second},
	}
}

func (c *ollamaClient) Generate(ctx context.Context, prompt string) (string, error) {
	body, _ := json.Marshal(map[string]interface{}{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
		"stream": false,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var result struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrUnavailable, result.Error)
	}
	if strings.TrimSpace(result.Message.Content) == "" {
		return "", fmt.Errorf("%w: empty reply", ErrUnavailable)
	}
	return result.Message.Content, nil
}
