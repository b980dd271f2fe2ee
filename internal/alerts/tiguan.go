package alerts

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"telegram-alerts/internal/schedule"
	"telegram-alerts/pkg/circuitbreaker"
)

const DefaultTiguanModels = "tiguan,tiguan-allspace"

// DefaultCities are all the cities Spinny lists in.
var DefaultCities = []string{
	"delhi-ncr", "bangalore", "hyderabad", "mumbai", "pune",
	"delhi", "gurgaon", "noida", "ahmedabad", "chennai",
	"kolkata", "lucknow", "jaipur", "chandigarh",
	"agra", "ambala", "coimbatore", "faridabad", "ghaziabad",
	"kanpur", "karnal", "kochi", "mysuru", "sonipat", "visakhapatnam",
}

const (
	listingPath     = "/v3/api/listing/v6/"
	cardSeparator   = "\n\n─────────────\n\n"
	cityConcurrency = 5
)

type listingResponse struct {
	Count   int          `json:"count"`
	Results []listingCar `json:"results"`
}

// Listing fields are loosely typed upstream.
type listingCar struct {
	Sold         bool        `json:"sold"`
	Booked       bool        `json:"booked"`
	MakeYear     interface{} `json:"make_year"`
	Model        interface{} `json:"model"`
	Variant      interface{} `json:"variant"`
	Price        interface{} `json:"price"`
	Mileage      interface{} `json:"mileage"`
	FuelType     interface{} `json:"fuel_type"`
	PermanentURL string      `json:"permanent_url"`
	Hub          interface{} `json:"hub"`
}

func (c listingCar) status() (string, string) {
	switch {
	case c.Sold:
		return "🔴", "SOLD"
	case c.Booked:
		return "🟡", "BOOKED"
	}
	return "🟢", "AVAILABLE"
}

// TiguanSearch looks for Tiguan listings across cities.
type TiguanSearch struct {
	client *spinnyClient
	models string
	cities []string
	logger *zap.Logger
	now    func() time.Time
	title  cases.Caser
}

func NewTiguanSearch(baseURL, models string, cities []string, logger *zap.Logger) *TiguanSearch {
	if models == "" {
		models = DefaultTiguanModels
	}
	if len(cities) == 0 {
		cities = DefaultCities
	}
	return &TiguanSearch{
		client: newSpinnyClient(baseURL, 15*time.Second, logger),
		models: models,
		cities: cities,
		logger: logger,
		now:    time.Now,
		title:  cases.Title(language.English),
	}
}

func (s *TiguanSearch) Name() string { return "tiguan_search" }

// Run never fails as a whole; cities that error are logged and skipped.
func (s *TiguanSearch) Run(ctx context.Context) (string, error) {
	results := make([]*listingResponse, len(s.cities))
	// stop hammering Spinny once it is clearly rejecting us
	breaker := circuitbreaker.New(circuitbreaker.DefaultConfig())

	var g errgroup.Group
	g.SetLimit(cityConcurrency)
	for i, city := range s.cities {
		g.Go(func() error {
			err := breaker.Execute(func() error {
				resp, err := s.fetchCity(ctx, city)
				results[i] = resp
				return err
			})
			switch {
			case errors.Is(err, circuitbreaker.ErrOpen):
				s.logger.Debug("Skipping city, spinny circuit open", zap.String("city", city))
			case err != nil:
				s.logger.Warn("Failed to fetch city", zap.String("city", city), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()

	if breaker.State() != circuitbreaker.StateClosed {
		s.logger.Warn("Tiguan search cut short", zap.String("breaker", breaker.State().String()))
	}

	var cards []string
	total := 0
	for i, resp := range results {
		if resp == nil || resp.Count <= 0 {
			continue
		}
		total += resp.Count
		cityName := s.title.String(strings.ReplaceAll(s.cities[i], "-", " "))
		for _, car := range resp.Results {
			cards = append(cards, s.renderCar(cityName, car))
		}
	}

	var msg []string
	if total == 0 {
		msg = []string{"<b>🔍 Tiguan Search</b>", "", fmt.Sprintf("No Tiguans found across %d cities.", len(s.cities))}
	} else {
		msg = []string{fmt.Sprintf("<b>🔍 Tiguan Search (%d found)</b>", total)}
	}
	if len(cards) > 0 {
		msg = append(msg, "", strings.Join(cards, cardSeparator))
	}
	msg = append(msg, "", "<i>Updated: "+s.now().In(schedule.IST).Format(timestampLayout)+"</i>")
	return strings.Join(msg, "\n"), nil
}

func (s *TiguanSearch) fetchCity(ctx context.Context, city string) (*listingResponse, error) {
	q := url.Values{}
	q.Set("model", s.models)
	q.Set("city", city)
	q.Set("page", "1")
	q.Set("show_max_on_assured", "true")
	q.Set("custom_budget_sort", "true")
	q.Set("prioritize_filter_listing", "true")
	q.Set("high_intent_required", "false")
	q.Set("active_banner", "true")
	q.Set("is_max_certified", "0")
	q.Set("is_pulse_exp", "false")
	q.Set("is_new_price", "false")

	var resp listingResponse
	if err := s.client.getJSON(ctx, listingPath, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *TiguanSearch) renderCar(cityName string, car listingCar) string {
	emoji, status := car.status()
	fuel := s.title.String(strings.ToLower(text(car.FuelType, "")))

	lines := []string{
		"<b>" + html.EscapeString(strings.TrimSpace(text(car.MakeYear, "")+" "+text(car.Model, "Tiguan")+" "+text(car.Variant, ""))) + "</b>",
		"📍 " + cityName + " | " + html.EscapeString(fuel) + " | " + html.EscapeString(text(car.Mileage, "N/A")) + " km",
		emoji + " " + status + " | " + FormatLakhShort(car.Price),
	}
	if hub := text(car.Hub, ""); hub != "" {
		lines = append(lines, "🏢 "+html.EscapeString(hub))
	}
	if car.PermanentURL != "" {
		lines = append(lines, "<a href='"+html.EscapeString(spinnySiteURL+car.PermanentURL)+"'>View →</a>")
	}
	return strings.Join(lines, "\n")
}
