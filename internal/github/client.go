package github

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

	"go.uber.org/zap"
	"telegram-alerts/pkg/metrics"
	"telegram-alerts/pkg/otel"
	"telegram-alerts/pkg/util"
)

const (
	DefaultAPIBaseURL = "https://api.github.com"
	DefaultEventType  = "daily-alert"
)

// ErrUnexpectedStatus is returned when the dispatch API answers anything but 204.
var ErrUnexpectedStatus = errors.New("github dispatch returned unexpected status")

// Client fires repository_dispatch events that start the alert workflow.
type Client struct {
	baseURL    string
	token      string
	repo       string
	eventType  string
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(baseURL, token, repo, eventType string, logger *zap.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	if eventType == "" {
		eventType = DefaultEventType
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     token,
		repo:      repo,
		eventType: eventType,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type dispatchRequest struct {
	EventType string `json:"event_type"`
}

// Dispatch sends the configured event. It returns nil only on 204 No Content.
func (c *Client) Dispatch(ctx context.Context) error {
	body, err := json.Marshal(dispatchRequest{EventType: c.eventType})
	if err != nil {
		return err
	}

	ctx, span := otel.ClientSpan(ctx, "github", http.MethodPost)
	start := time.Now()

	status, err := c.dispatch(ctx, body)

	otel.EndClientSpan(span, status, err)
	metrics.RecordOutboundCall("github", util.StatusLabel(status, err), time.Since(start))

	if err != nil {
		c.logger.Error("Failed to trigger GitHub workflow",
			zap.String("repo", c.repo),
			zap.String("event_type", c.eventType),
			zap.String("error_type", util.StatusLabel(status, err)),
			zap.Error(err),
		)
		return err
	}

	c.logger.Info("GitHub workflow triggered",
		zap.String("repo", c.repo),
		zap.String("event_type", c.eventType),
	)
	return nil
}

func (c *Client) dispatch(ctx context.Context, body []byte) (int, error) {
	url := c.baseURL + "/repos/" + c.repo + "/dispatches"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "telegram-alerts-webhook")
	otel.InjectHeaders(ctx, req.Header)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to call github: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return resp.StatusCode, fmt.Errorf("%w: %d %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	return resp.StatusCode, nil
}
