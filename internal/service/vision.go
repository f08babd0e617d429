package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"billsnap/pkg/config"

	"go.uber.org/zap"
)

// userImageText accompanies the image part of the user message.
const userImageText = "Here is the image of my expenses"

// Recognizer asks a vision-capable model to read a bill image under the
// given instruction prompt and returns the raw text of the first completion
// choice.
type Recognizer interface {
	Recognize(ctx context.Context, apiKey, prompt, imageDataURI string) (string, error)
}

// VisionClient calls an OpenAI-compatible chat completions API. The base URL
// is configurable so self-hosted compatible providers work too.
type VisionClient struct {
	httpClient *http.Client
	baseURL    string
	model      string
	logger     *zap.Logger
}

func NewVisionClient(cfg config.ProviderConfig, logger *zap.Logger) *VisionClient {
	return &VisionClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		logger:     logger,
	}
}

// Recognize requests a single non-streaming completion with the composed
// prompt as the system instruction and the image as high-detail user content.
func (c *VisionClient) Recognize(ctx context.Context, apiKey, prompt, imageDataURI string) (string, error) {
	requestBody := map[string]interface{}{
		"model": c.model,
		"messages": []map[string]interface{}{
			{
				"role":    "system",
				"content": prompt,
			},
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "text",
						"text": userImageText,
					},
					{
						"type": "image_url",
						"image_url": map[string]interface{}{
							"url":    imageDataURI,
							"detail": "high",
						},
					},
				},
			},
		},
		"stream": false,
	}

	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &UpstreamError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(bodyBytes)}
	}

	var completionResp struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
		} `json:"usage"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&completionResp); err != nil {
		return "", &UpstreamError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(completionResp.Choices) == 0 || strings.TrimSpace(completionResp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	c.logger.Info("Vision completion received",
		zap.String("request_id", RequestIDFrom(ctx)),
		zap.String("model", c.model),
		zap.Int("prompt_tokens", completionResp.Usage.PromptTokens),
		zap.Int("completion_tokens", completionResp.Usage.CompletionTokens),
	)

	return completionResp.Choices[0].Message.Content, nil
}
