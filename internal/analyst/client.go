package analyst

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// requestIDHeader carries the analyst request id on every response.
const requestIDHeader = "X-Snowflake-Request-Id"

// messagePath is the Cortex Analyst message endpoint.
const messagePath = "/api/v2/cortex/analyst/message"

// Client talks to the Cortex Analyst REST endpoint of one Snowflake host.
// Calls are synchronous and rely on the transport's defaults; the caller is
// a single-user terminal session, so no timeout or retry policy is layered
// on top.
type Client struct {
	baseURL       string
	semanticModel string
	client        *http.Client
}

// New creates a client for the given base URL (e.g.
// "https://acme.snowflakecomputing.com") and semantic model stage path
// (e.g. "@DB.SCHEMA.STAGE/model.yaml").
func New(baseURL, semanticModel string) *Client {
	return &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		semanticModel: semanticModel,
		client:        &http.Client{},
	}
}

// Response is a successful analyst reply: the assistant message plus the
// request id taken from the response header ("N/A" when absent).
type Response struct {
	Message   Message `json:"message"`
	RequestID string  `json:"request_id"`
}

// RequestError is a non-2xx or malformed analyst reply. It keeps the request
// id, HTTP status and raw body for the top-level error surface.
type RequestError struct {
	RequestID string
	Status    int
	Body      string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("failed request (id: %s) with status %d: %s", e.RequestID, e.Status, e.Body)
}

// requestBody is the analyst message payload.
type requestBody struct {
	Messages          []Message `json:"messages"`
	SemanticModelFile string    `json:"semantic_model_file"`
}

// SendMessage posts a single user prompt and returns the assistant message.
// The token is the Snowflake session token obtained at login.
func (c *Client) SendMessage(ctx context.Context, token, prompt string) (*Response, error) {
	body, err := json.Marshal(requestBody{
		Messages:          []Message{NewUserMessage(prompt)},
		SemanticModelFile: c.semanticModel,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal analyst request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+messagePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build analyst request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Snowflake Token=%q", token))

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analyst request: %w", err)
	}
	defer resp.Body.Close()

	requestID := resp.Header.Get(requestIDHeader)
	if requestID == "" {
		requestID = "N/A"
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read analyst response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &RequestError{RequestID: requestID, Status: resp.StatusCode, Body: string(raw)}
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode analyst response: %w", err)
	}
	out.RequestID = requestID
	return &out, nil
}
