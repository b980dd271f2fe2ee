package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"telegram-alerts/pkg/metrics"
	"telegram-alerts/pkg/otel"
	"telegram-alerts/pkg/util"
)

// DefaultAPIBaseURL is the public Bot API endpoint.
const DefaultAPIBaseURL = "https://api.telegram.org"

// APIError is a non-200 reply from the Bot API.
type APIError struct {
	StatusCode  int
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("telegram api returned %d", e.StatusCode)
	}
	return fmt.Sprintf("telegram api returned %d: %s", e.StatusCode, e.Description)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL, token string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// SendMessage posts msg via sendMessage.
func (c *Client) SendMessage(ctx context.Context, msg OutgoingMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	ctx, span := otel.ClientSpan(ctx, "telegram", http.MethodPost)
	start := time.Now()

	status, err := c.post(ctx, "sendMessage", body)

	otel.EndClientSpan(span, status, err)
	metrics.RecordOutboundCall("telegram", util.StatusLabel(status, err), time.Since(start))

	if err != nil {
		c.logger.Error("Failed to send Telegram message",
			zap.Int64("chat_id", msg.ChatID),
			zap.String("error_type", util.StatusLabel(status, err)),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (c *Client) post(ctx context.Context, method string, body []byte) (int, error) {
	url := c.baseURL + "/bot" + c.token + "/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	otel.InjectHeaders(ctx, req.Header)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error would echo the bot token
		return 0, fmt.Errorf("telegram %s request failed: %w", method, redact(err, c.token))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode}
	var parsed apiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&parsed); err == nil {
		apiErr.Description = parsed.Description
	}
	return resp.StatusCode, apiErr
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func redact(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return &redactedError{msg: strings.ReplaceAll(err.Error(), token, "<redacted>"), err: err}
}
