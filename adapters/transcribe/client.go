// Package transcribe is the HTTP client for the external speech-to-text
// collaborator used for voice grade entry.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"rosterd/domain/core"
	"rosterd/ports"
)

// Config holds transcription client settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client posts audio to the transcription endpoint and returns the
// recognized text. Failures are surfaced to the caller; the client never
// retries.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a transcription client.
func NewClient(cfg Config) ports.Transcriber {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe sends audio bytes plus an optional candidate-name hint list
// (joined comma-separated) and returns the recognized text.
func (c *Client) Transcribe(ctx context.Context, audio []byte, candidates []string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("audio", "audio.wav")
	if err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}
	if len(candidates) > 0 {
		if err := writer.WriteField("candidates", strings.Join(candidates, ",")); err != nil {
			return "", fmt.Errorf("failed to build transcription request: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transcribe", &body)
	if err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", core.ErrTranscription, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: status %d: %s", core.ErrTranscription, resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	var out transcribeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: invalid response: %v", core.ErrTranscription, err)
	}
	return out.Text, nil
}
