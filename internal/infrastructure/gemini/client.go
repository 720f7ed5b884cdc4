package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/pricepersize/backend/internal/domain"
)

// Client handles communication with the Gemini generateContent API for
// receipt image extraction.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new Gemini API client
func NewClient(apiKey, baseURL, model string) *Client {
	// Free-tier Gemini allows 15 requests per minute; 0.25 req/sec with a
	// small burst keeps us comfortably under it.
	limiter := rate.NewLimiter(rate.Limit(0.25), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug toggles verbose request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// generateRequest mirrors the generateContent request body, with the
// receipt image inlined as base64.
type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	TopP             float64 `json:"topP"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// ExtractReceipt sends a receipt image to Gemini and parses the JSON-only
// response into a structured receipt. Transient failures retry up to 3
// times with backoff.
func (c *Client) ExtractReceipt(ctx context.Context, image []byte, mimeType string) (*domain.Receipt, error) {
	reqURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	reqBody := generateRequest{
		Contents: []content{
			{
				Parts: []part{
					{Text: extractionPrompt},
					{InlineData: &inlineData{
						MimeType: mimeType,
						Data:     base64.StdEncoding.EncodeToString(image),
					}},
				},
			},
		},
		GenerationConfig: generationConfig{
			Temperature:      0.1,
			TopP:             0.95,
			MaxOutputTokens:  8192,
			ResponseMimeType: "application/json",
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter error: %w", err)
		}

		body, err := c.doRequest(ctx, reqURL, payload)
		if err != nil {
			if c.debug {
				log.Printf("[GEMINI] Request error (attempt %d): %v", attempt, err)
			}
			lastErr = err
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(exponentialBackoff(attempt)):
			}
			continue
		}

		return parseReceipt(body)
	}

	return nil, lastErr
}

// doRequest executes one POST against the API and returns the body for
// 200 responses, an error otherwise.
func (c *Client) doRequest(ctx context.Context, reqURL string, payload []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "PricePerSize/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		if c.debug {
			log.Printf("[GEMINI] API error - Status: %d, Body: %s", resp.StatusCode, string(body))
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrExtractionFailed, resp.StatusCode)
	}

	return body, nil
}

// parseReceipt unwraps the candidate text and decodes the receipt JSON,
// stripping any markdown fencing the model sneaks in.
func parseReceipt(body []byte) (*domain.Receipt, error) {
	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: empty response", domain.ErrExtractionFailed)
	}

	text := genResp.Candidates[0].Content.Parts[0].Text
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	var receipt domain.Receipt
	if err := json.Unmarshal([]byte(text), &receipt); err != nil {
		return nil, fmt.Errorf("failed to decode receipt data: %w", err)
	}

	return &receipt, nil
}

// exponentialBackoff returns the wait before retry N: 500ms, 1s, 2s.
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}
