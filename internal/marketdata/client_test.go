package marketdata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := &Client{
		baseURL:    server.URL,
		apiKey:     "test-key",
		httpClient: server.Client(),
	}
	return client, server
}

func TestSearch_Success(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auto-complete", r.URL.Path)
		assert.Equal(t, "apple", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))

		w.Write([]byte(`{"quotes":[
			{"symbol":"AAPL","shortname":"Apple Inc.","exchange":"NMS","quoteType":"EQUITY"},
			{"symbol":"APLE","longname":"Apple Hospitality REIT, Inc.","exchange":"NYQ","quoteType":"EQUITY"},
			{"shortname":"no symbol, skipped"}
		]}`))
	})
	defer server.Close()

	results, err := client.Search(context.Background(), "apple")

	assert.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "AAPL", results[0].Symbol)
	assert.Equal(t, "Apple Inc.", results[0].Name)
	assert.Equal(t, "NMS", results[0].Exchange)
	assert.Equal(t, "Apple Hospitality REIT, Inc.", results[1].Name, "falls back to longname")
}

func TestQuotes_Success(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/market/v2/get-quotes", r.URL.Path)
		assert.Equal(t, "AAPL,DEAD", r.URL.Query().Get("symbols"))

		w.Write([]byte(`{"quoteResponse":{"result":[
			{"symbol":"AAPL","shortName":"Apple Inc.","regularMarketPrice":180.5,"regularMarketChange":-1.25,"regularMarketChangePercent":-0.69},
			{"symbol":"DEAD","shortName":"Delisted","regularMarketPrice":0}
		]}}`))
	})
	defer server.Close()

	quotes, err := client.Quotes(context.Background(), []string{"AAPL", "DEAD"})

	assert.NoError(t, err)
	assert.Len(t, quotes, 1, "zero-priced symbols are dropped")

	quote := quotes["AAPL"]
	assert.Equal(t, "AAPL", quote.Symbol)
	assert.True(t, quote.Price.Equal(decimal.NewFromFloat(180.5)))
	assert.Equal(t, ChangeDown, quote.ChangeType)
}

func TestQuotes_NoSymbols(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	defer server.Close()

	quotes, err := client.Quotes(context.Background(), nil)

	assert.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestQuotes_ProviderError(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"rate limited"}`))
	})
	defer server.Close()

	_, err := client.Quotes(context.Background(), []string{"AAPL"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestHistoricalClose_Success(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/stock/v3/get-chart", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))

		w.Write([]byte(`{"chart":{"result":[{
			"timestamp":[1735689600,1735776000,1735862400],
			"indicators":{"quote":[{"close":[100.5,null,102.25]}]}
		}]}}`))
	})
	defer server.Close()

	points, err := client.HistoricalClose(context.Background(), "AAPL",
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 3, 0, 0, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.Len(t, points, 2, "null closes are skipped")
	assert.Equal(t, time.Unix(1735689600, 0).UTC(), points[0].Date)
	assert.True(t, points[0].Close.Equal(decimal.NewFromFloat(100.5)))
	assert.True(t, points[1].Close.Equal(decimal.NewFromFloat(102.25)))
}

func TestHistoricalClose_EmptyResult(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[]}}`))
	})
	defer server.Close()

	points, err := client.HistoricalClose(context.Background(), "AAPL", time.Now().AddDate(0, -1, 0), time.Now())

	assert.NoError(t, err)
	assert.Nil(t, points)
}

func TestClassifyChange(t *testing.T) {
	assert.Equal(t, ChangeUp, classifyChange(decimal.NewFromFloat(0.01)))
	assert.Equal(t, ChangeDown, classifyChange(decimal.NewFromFloat(-0.01)))
	assert.Equal(t, ChangeFlat, classifyChange(decimal.Zero))
}
