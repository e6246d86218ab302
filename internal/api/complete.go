package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/textagent/internal/errors"
	"github.com/diogo/textagent/internal/models"
)

// maxErrorBody limits how much of a failed response is carried in the error.
const maxErrorBody = 4096

// CompleteRequest describes one chat completion call. Messages is the full
// ordered conversation context; a leading system message is lifted into the
// wire-level system field. A nil Temperature falls back to the client
// default; an explicit zero is sent as-is.
type CompleteRequest struct {
	Model       models.Preset
	MaxTokens   int
	Temperature *float64
	Messages    []models.Message
}

// wire types for the messages endpoint

type wireContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type wireMessage struct {
	Role    string        `json:"role"`
	Content []wireContent `json:"content"`
}

type wirePayload struct {
	Model       string        `json:"model"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	System      string        `json:"system,omitempty"`
	Messages    []wireMessage `json:"messages"`
}

// Complete sends the full conversation context to the remote endpoint and
// returns the assistant's reply text. One outbound call, zero retries; any
// failure is reported as a typed error from internal/errors.
func (c *Client) Complete(req *CompleteRequest) (string, error) {
	if req == nil {
		return "", fmt.Errorf("request cannot be nil")
	}

	if c.IsClosed() {
		return "", fmt.Errorf("client is closed")
	}

	model := c.GetModel()
	maxTokens := c.maxTokens
	temperature := c.temperature

	if req.Model.ID != "" {
		model = req.Model
	}
	if req.MaxTokens > 0 {
		maxTokens = req.MaxTokens
	}
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	body, err := buildPayload(model, maxTokens, temperature, req.Messages)
	if err != nil {
		return "", fmt.Errorf("failed to build payload: %w", err)
	}

	endpoint := c.endpoint()

	httpReq, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	for key, value := range models.DefaultHeaders() {
		httpReq.Header.Set(key, value)
	}
	httpReq.Header.Set("x-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", classifyTransportError(err, endpoint)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errorBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		message := "completion request failed"
		if m := gjson.GetBytes(errorBody, "error.message"); m.Exists() {
			message = m.String()
		}
		return "", apierrors.NewRequestErrorWithBody(resp.StatusCode, endpoint, message, string(errorBody))
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewNetworkError("read response", endpoint, err)
	}

	return parseResponse(respBody)
}

// buildPayload marshals the conversation into the messages API shape. A
// leading system message becomes the top-level system field; the endpoint
// rejects system roles inside the messages array.
func buildPayload(model models.Preset, maxTokens int, temperature float64, msgs []models.Message) ([]byte, error) {
	payload := wirePayload{
		Model:       model.ID,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages:    make([]wireMessage, 0, len(msgs)),
	}

	for i, msg := range msgs {
		if msg.Role == models.RoleSystem {
			if i != 0 {
				return nil, apierrors.NewStateError("system message not at head of history")
			}
			payload.System = msg.Content
			continue
		}
		payload.Messages = append(payload.Messages, wireMessage{
			Role: string(msg.Role),
			Content: []wireContent{{
				Type: "text",
				Text: msg.Content,
			}},
		})
	}

	return json.Marshal(payload)
}

// parseResponse extracts the reply text from a successful response body.
func parseResponse(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", apierrors.NewParseError("response is not valid JSON", "")
	}

	parsed := gjson.ParseBytes(body)

	// Error envelopes can arrive with a 200 from some proxies
	if errMsg := parsed.Get("error.message"); errMsg.Exists() {
		return "", apierrors.NewParseError(errMsg.String(), "error.message")
	}

	text := parsed.Get("content.0.text")
	if !text.Exists() {
		return "", apierrors.NewParseError("no content in response", "content.0.text")
	}

	return text.String(), nil
}

// classifyTransportError distinguishes an expired deadline from other
// transport failures so callers can tell a stalled call from a refused one.
func classifyTransportError(err error, endpoint string) error {
	if errors.Is(err, context.DeadlineExceeded) || os.IsTimeout(err) ||
		strings.Contains(err.Error(), "Client.Timeout") ||
		strings.Contains(err.Error(), "deadline exceeded") {
		return apierrors.NewTimeoutError(err.Error())
	}
	return apierrors.NewNetworkError("complete", endpoint, err)
}
