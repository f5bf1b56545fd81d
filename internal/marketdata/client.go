package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/ledger-server/internal/config"
)

const defaultBaseURL = "https://apidojo-yahoo-finance-v1.p.rapidapi.com"

// Client talks to the Yahoo Finance API via RapidAPI.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(env *config.Config) *Client {
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  env.RapidAPIKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Search looks up symbols matching the query via autocomplete.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("region", "US")

	var payload struct {
		Quotes []struct {
			Symbol    string `json:"symbol"`
			ShortName string `json:"shortname"`
			LongName  string `json:"longname"`
			Exchange  string `json:"exchange"`
			QuoteType string `json:"quoteType"`
		} `json:"quotes"`
	}
	if err := c.get(ctx, "/auto-complete", params, &payload); err != nil {
		return nil, err
	}

	results := make([]SearchResult, 0, len(payload.Quotes))
	for _, q := range payload.Quotes {
		if q.Symbol == "" {
			continue
		}
		name := q.ShortName
		if name == "" {
			name = q.LongName
		}
		results = append(results, SearchResult{
			Symbol:   q.Symbol,
			Name:     name,
			Exchange: q.Exchange,
			Type:     q.QuoteType,
		})
	}
	return results, nil
}

// Quotes fetches live quotes for the given symbols, keyed by symbol. Symbols
// the provider has no price for are omitted from the result.
func (c *Client) Quotes(ctx context.Context, symbols []string) (map[string]Quote, error) {
	if len(symbols) == 0 {
		return map[string]Quote{}, nil
	}

	params := url.Values{}
	params.Set("symbols", strings.Join(symbols, ","))
	params.Set("region", "US")

	var payload struct {
		QuoteResponse struct {
			Result []struct {
				Symbol                     string  `json:"symbol"`
				ShortName                  string  `json:"shortName"`
				RegularMarketPrice         float64 `json:"regularMarketPrice"`
				RegularMarketChange        float64 `json:"regularMarketChange"`
				RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
			} `json:"result"`
		} `json:"quoteResponse"`
	}
	if err := c.get(ctx, "/market/v2/get-quotes", params, &payload); err != nil {
		return nil, err
	}

	quotes := make(map[string]Quote, len(payload.QuoteResponse.Result))
	for _, r := range payload.QuoteResponse.Result {
		if r.RegularMarketPrice <= 0 {
			continue
		}
		change := decimal.NewFromFloat(r.RegularMarketChange)
		quotes[r.Symbol] = Quote{
			Symbol:        r.Symbol,
			Name:          r.ShortName,
			Price:         decimal.NewFromFloat(r.RegularMarketPrice),
			Change:        change,
			ChangePercent: decimal.NewFromFloat(r.RegularMarketChangePercent),
			ChangeType:    classifyChange(change),
		}
	}
	return quotes, nil
}

// HistoricalClose returns the daily closing prices for a symbol between from
// and to, oldest first.
func (c *Client) HistoricalClose(ctx context.Context, symbol string, from, to time.Time) ([]ClosePoint, error) {
	params := url.Values{}
	params.Set("symbol", symbol)
	params.Set("interval", "1d")
	params.Set("period1", fmt.Sprintf("%d", from.Unix()))
	params.Set("period2", fmt.Sprintf("%d", to.Unix()))
	params.Set("region", "US")

	var payload struct {
		Chart struct {
			Result []struct {
				Timestamp  []int64 `json:"timestamp"`
				Indicators struct {
					Quote []struct {
						Close []*float64 `json:"close"`
					} `json:"quote"`
				} `json:"indicators"`
			} `json:"result"`
		} `json:"chart"`
	}
	if err := c.get(ctx, "/stock/v3/get-chart", params, &payload); err != nil {
		return nil, err
	}

	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	result := payload.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close

	points := make([]ClosePoint, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		points = append(points, ClosePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: decimal.NewFromFloat(*closes[i]),
		})
	}
	return points, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", strings.TrimPrefix(c.baseURL, "https://"))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("marketdata.Client.get")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("market data request failed: %d - %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func classifyChange(change decimal.Decimal) ChangeType {
	switch {
	case change.IsPositive():
		return ChangeUp
	case change.IsNegative():
		return ChangeDown
	default:
		return ChangeFlat
	}
}
