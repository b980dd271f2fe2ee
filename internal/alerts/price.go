package alerts

import (
	"context"
	"encoding/json"
	"html"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"
	"telegram-alerts/internal/schedule"
)

// DefaultCarID is the listing tracked when none is configured.
const DefaultCarID = "25264538"

const timestampLayout = "02 Jan 2006, 03:04 PM"

type priceBreakdownResponse struct {
	Result struct {
		CarName      string      `json:"car_name"`
		PriceBreakup []priceLine `json:"price_breakup"`
	} `json:"result"`
}

type priceLine struct {
	Label   string      `json:"label"`
	Value   json.Number `json:"value"`
	IsTotal bool        `json:"is_total"`
}

// PriceTracker reports the price breakdown of one Spinny listing.
type PriceTracker struct {
	client *spinnyClient
	carID  string
	now    func() time.Time
}

func NewPriceTracker(baseURL, carID string, logger *zap.Logger) *PriceTracker {
	if carID == "" {
		carID = DefaultCarID
	}
	return &PriceTracker{
		client: newSpinnyClient(baseURL, 30*time.Second, logger),
		carID:  carID,
		now:    time.Now,
	}
}

func (p *PriceTracker) Name() string { return "spinny_price" }

func (p *PriceTracker) FailureNotice() string { return "⚠️ Failed to fetch Spinny car price" }

func (p *PriceTracker) Run(ctx context.Context) (string, error) {
	var resp priceBreakdownResponse
	if err := p.client.getJSON(ctx, "/v3/api/pdp/price-breakdown/"+p.carID+"/v2/", nil, &resp); err != nil {
		return "", err
	}

	carName := resp.Result.CarName
	if carName == "" {
		carName = "Unknown Car"
	}

	lines := []string{
		"<b>🚗 Spinny Car Price Update</b>",
		"",
		"<b>Car:</b> " + html.EscapeString(carName),
		"",
		"<b>Price Breakdown:</b>",
	}
	for _, item := range resp.Result.PriceBreakup {
		label := html.EscapeString(item.Label)
		price := FormatLakh(amount(item.Value))
		if item.IsTotal {
			lines = append(lines, "", "<b>💰 "+label+": "+price+"</b>")
		} else {
			lines = append(lines, "• "+label+": "+price)
		}
	}

	lines = append(lines,
		"",
		"<a href='"+spinnySiteURL+"/buy-used-cars/-d"+p.carID+"'>View on Spinny</a>",
		"",
		"<i>Last checked: "+p.now().In(schedule.IST).Format(timestampLayout)+"</i>",
	)
	return strings.Join(lines, "\n"), nil
}

func amount(n json.Number) int64 {
	if v, err := n.Int64(); err == nil {
		return v
	}
	if f, err := n.Float64(); err == nil {
		return int64(math.Round(f))
	}
	return 0
}
