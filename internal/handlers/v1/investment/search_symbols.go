package investment

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/marketdata"
)

// SearchSymbolsInput is the Huma input for symbol search.
type SearchSymbolsInput struct {
	Query string `query:"q" required:"true" minLength:"1" doc:"Search text"`
}

// SearchResult is the API response model for one symbol match.
type SearchResult struct {
	Symbol   string `json:"symbol" doc:"Market symbol"`
	Name     string `json:"name" doc:"Instrument name"`
	Exchange string `json:"exchange" doc:"Exchange code"`
	Type     string `json:"type" doc:"Instrument type"`
}

// SearchSymbolsResponseBody is the response body for symbol search.
type SearchSymbolsResponseBody struct {
	Results []SearchResult `json:"results" doc:"Matching symbols"`
}

// SearchSymbolsOutput is the Huma output for symbol search.
type SearchSymbolsOutput struct {
	Body SearchSymbolsResponseBody
}

// symbolSearcher is the interface for symbol search.
type symbolSearcher interface {
	SearchSymbols(ctx context.Context, query string) ([]marketdata.SearchResult, error)
}

// SearchSymbolsHandler handles GET /v1/investment/search.
type SearchSymbolsHandler struct {
	InvestmentService symbolSearcher
}

// NewSearchSymbolsHandler creates a new SearchSymbolsHandler.
func NewSearchSymbolsHandler(svc symbolSearcher) *SearchSymbolsHandler {
	return &SearchSymbolsHandler{InvestmentService: svc}
}

// Register registers the symbol search endpoint with the Huma API.
func (h *SearchSymbolsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search-symbols",
		Method:      http.MethodGet,
		Path:        "/v1/investment/search",
		Summary:     "Search symbols",
		Description: "Looks up market symbols matching the query.",
		Tags:        []string{"Investments"},
	}, h.handle)
}

func (h *SearchSymbolsHandler) handle(ctx context.Context, input *SearchSymbolsInput) (*SearchSymbolsOutput, error) {
	if _, err := handlerutil.Session(ctx); err != nil {
		return nil, err
	}

	results, err := h.InvestmentService.SearchSymbols(ctx, input.Query)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to search symbols", err)
	}

	out := &SearchSymbolsOutput{
		Body: SearchSymbolsResponseBody{Results: make([]SearchResult, len(results))},
	}
	for i, r := range results {
		out.Body.Results[i] = SearchResult{
			Symbol:   r.Symbol,
			Name:     r.Name,
			Exchange: r.Exchange,
			Type:     r.Type,
		}
	}
	return out, nil
}
