package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// FallbackMessage is returned whenever the provider cannot produce insights.
const FallbackMessage = "Insights unavailable at the moment. Please check network connection."

const systemInstruction = "You are an AI Security Analyst for a high-security manufacturing facility. " +
	"Focus on potential risks, flow patterns, and procedural compliance."

// Client calls the Generative Language REST API. A client with an empty API
// key acts as a stub and always returns the fallback message.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

type generateRequest struct {
	SystemInstruction *content         `json:"system_instruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateInsights sends the prompt and returns the model's text. Every
// failure path (missing key, network, quota, malformed payload) degrades to
// FallbackMessage with a nil error: the advisory text must never fail the
// surrounding view.
func (c *Client) GenerateInsights(ctx context.Context, prompt string) string {
	if c.apiKey == "" {
		return FallbackMessage
	}

	reqBody := generateRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig:  generationConfig{Temperature: 0.7},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return FallbackMessage
	}

	url := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		c.model, c.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return FallbackMessage
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return FallbackMessage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FallbackMessage
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return FallbackMessage
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return FallbackMessage
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return FallbackMessage
	}
	return text
}
