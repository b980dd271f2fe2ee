package alerts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"telegram-alerts/pkg/metrics"
	"telegram-alerts/pkg/otel"
	"telegram-alerts/pkg/util"
)

const (
	DefaultSpinnyAPIBaseURL = "https://api.spinny.com"
	spinnySiteURL           = "https://www.spinny.com"
)

// the API rejects requests that don't look like they come from the website
var spinnyHeaders = map[string]string{
	"accept":          "*/*",
	"accept-language": "en-US,en-IN;q=0.9,en;q=0.8,hi;q=0.7",
	"content-type":    "application/json",
	"origin":          spinnySiteURL,
	"platform":        "web",
	"referer":         spinnySiteURL + "/",
	"sec-fetch-dest":  "empty",
	"sec-fetch-mode":  "cors",
	"sec-fetch-site":  "same-site",
	"user-agent":      "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/144.0.0.0 Safari/537.36",
}

type spinnyClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

func newSpinnyClient(baseURL string, timeout time.Duration, logger *zap.Logger) *spinnyClient {
	if baseURL == "" {
		baseURL = DefaultSpinnyAPIBaseURL
	}
	return &spinnyClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// getJSON GETs path and decodes the body into out. Numbers in untyped fields
// are kept as json.Number.
func (c *spinnyClient) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	ctx, span := otel.ClientSpan(ctx, "spinny", http.MethodGet)
	start := time.Now()

	status, err := c.get(ctx, path, query, out)

	otel.EndClientSpan(span, status, err)
	metrics.RecordOutboundCall("spinny", util.StatusLabel(status, err), time.Since(start))
	return err
}

func (c *spinnyClient) get(ctx context.Context, path string, query url.Values, out interface{}) (int, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range spinnyHeaders {
		req.Header.Set(k, v)
	}
	otel.InjectHeaders(ctx, req.Header)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("spinny request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		return resp.StatusCode, fmt.Errorf("spinny returned %d for %s", resp.StatusCode, path)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to parse spinny response: %w", err)
	}
	return resp.StatusCode, nil
}

// FormatLakh renders a rupee amount: "₹12.35 Lakh" from one lakh up,
// "₹95,000" below.
func FormatLakh(amount int64) string {
	if amount >= 100000 {
		return fmt.Sprintf("₹%.2f Lakh", float64(amount)/100000)
	}
	return "₹" + humanize.Comma(amount)
}

// FormatLakhShort renders a listing price as "₹12.3L", or "N/A" when price
// is not a number.
func FormatLakhShort(price interface{}) string {
	p, ok := toFloat(price)
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("₹%.1fL", p/100000)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// text renders a loosely typed field, or def when it is missing.
func text(v interface{}, def string) string {
	switch s := v.(type) {
	case nil:
		return def
	case string:
		return s
	case json.Number:
		return s.String()
	default:
		return fmt.Sprint(s)
	}
}
