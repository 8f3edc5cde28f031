// Package inference provides an HTTP client for hosted text-generation
// models. The network call sits behind the TextGenerator interface so
// callers can substitute a deterministic stub in tests.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the Hugging Face hosted inference endpoint.
const DefaultBaseURL = "https://api-inference.huggingface.co/models"

// DefaultModel is the instruct model used when none is configured.
const DefaultModel = "mistralai/Mistral-7B-Instruct"

const defaultTimeout = 30 * time.Second

// Generation request parameters. Temperature 0 keeps the output
// deterministic for a fixed prompt.
const (
	maxNewTokens = 64
	temperature  = 0.0
)

// ErrUnavailable indicates the inference service could not produce a result
// (network failure, non-2xx status, or an error response body).
var ErrUnavailable = errors.New("inference service unavailable")

// TextGenerator generates raw model output for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Client calls a hosted inference endpoint over HTTPS.
type Client struct {
	baseURL string
	model   string
	token   string
	client  *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the inference endpoint, mainly for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(url, "/") }
}

// WithTimeout overrides the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.client.Timeout = d }
}

// NewClient creates a client for the given model, authenticating with token.
func NewClient(model, token string, opts ...Option) *Client {
	if model == "" {
		model = DefaultModel
	}
	c := &Client{
		baseURL: DefaultBaseURL,
		model:   model,
		token:   token,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateRequest struct {
	Inputs     string             `json:"inputs"`
	Parameters generateParameters `json:"parameters"`
}

type generateParameters struct {
	MaxNewTokens int     `json:"max_new_tokens"`
	Temperature  float64 `json:"temperature"`
}

// Generate sends the prompt and returns the model's raw text output. The
// call is attempted exactly once; any failure wraps ErrUnavailable so
// callers can fall back.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Inputs: prompt,
		Parameters: generateParameters{
			MaxNewTokens: maxNewTokens,
			Temperature:  temperature,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	text, err := extractText(raw)
	if err != nil {
		return "", err
	}
	return text, nil
}

// extractText handles the response shapes different inference backends
// return: a list of objects with generated_text, a single object with
// generated_text, a list of objects with text, or anything else stringified.
func extractText(raw []byte) (string, error) {
	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(raw, &asObject); err == nil {
		if errMsg, ok := asObject["error"]; ok {
			var msg string
			_ = json.Unmarshal(errMsg, &msg)
			return "", fmt.Errorf("%w: upstream error: %s", ErrUnavailable, msg)
		}
		if text, ok := stringField(asObject, "generated_text"); ok {
			return strings.TrimSpace(text), nil
		}
	}

	var asList []map[string]json.RawMessage
	if err := json.Unmarshal(raw, &asList); err == nil && len(asList) > 0 {
		if text, ok := stringField(asList[0], "generated_text"); ok {
			return strings.TrimSpace(text), nil
		}
		if text, ok := stringField(asList[0], "text"); ok {
			return strings.TrimSpace(text), nil
		}
	}

	return strings.TrimSpace(string(raw)), nil
}

func stringField(obj map[string]json.RawMessage, key string) (string, bool) {
	rawField, ok := obj[key]
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(rawField, &s); err != nil {
		return "", false
	}
	return s, true
}
