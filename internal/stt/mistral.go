// Package stt implements the speech-to-text collaborator against the
// Mistral Voxtral transcription API.
package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/devbydaniel/meetnotes/internal/audio"
)

const defaultBaseURL = "https://api.mistral.ai"

// Client calls the Mistral transcription endpoint. One call
// transcribes one self-contained clip; retries are left to the caller.
type Client struct {
	APIKey  string
	Model   string
	BaseURL string
	HTTP    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		Model:   "voxtral-mini-latest",
		BaseURL: defaultBaseURL,
		HTTP:    &http.Client{Timeout: 2 * time.Minute},
	}
}

// Transcribe uploads the clip and returns the transcribed text.
func (c *Client) Transcribe(ctx context.Context, clip audio.Clip, language string) (string, error) {
	if c.APIKey == "" {
		return "", fmt.Errorf("mistral API key not set: set MEETNOTES_MISTRAL_API_KEY or add mistral_api_key to config")
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if err := writer.WriteField("model", c.Model); err != nil {
		return "", err
	}
	if language != "" {
		if err := writer.WriteField("language", language); err != nil {
			return "", err
		}
	}

	part, err := writer.CreateFormFile("file", "audio.wav")
	if err != nil {
		return "", err
	}
	if _, err := part.Write(clip.Data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v1/audio/transcriptions", body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling Mistral API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("mistral API error (HTTP %d): %s", resp.StatusCode, string(respBody))
	}

	var apiResp transcriptionAPIResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", fmt.Errorf("parsing Mistral response: %w", err)
	}
	return apiResp.Text, nil
}

// transcriptionAPIResponse matches the Mistral transcription API response.
type transcriptionAPIResponse struct {
	Text string `json:"text"`
}
