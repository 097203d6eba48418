package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"rjgems-backend/internal/logger"
)

// TextGenerator is the opaque hosted text model the assistant talks to.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

const defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"

var ErrGeneratorUnavailable = errors.New("AI service temporarily unavailable")

// GeminiClient calls the Generative Language REST API.
type GeminiClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        *logger.Logger
}

func NewGeminiClient(apiKey, model string, log *logger.Logger) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("gemini: api key required")
	}
	if strings.TrimSpace(model) == "" {
		model = "gemini-1.5-flash"
	}

	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &GeminiClient{
		baseURL:    defaultGeminiBaseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Transport: tr, Timeout: 30 * time.Second},
		log:        log,
	}, nil
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateText sends a single-turn generateContent request and returns the
// first candidate's text.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("gemini request failed", "error", err)
		return "", ErrGeneratorUnavailable
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		c.log.Error("gemini request rejected", "status", resp.StatusCode, "body", string(raw))
		return "", ErrGeneratorUnavailable
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if parsed.Error != nil {
		c.log.Error("gemini api error", "code", parsed.Error.Code, "message", parsed.Error.Message)
		return "", ErrGeneratorUnavailable
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", ErrGeneratorUnavailable
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
