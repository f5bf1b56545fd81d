package investment

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListInvestmentsResponseBody is the response body for listing positions.
type ListInvestmentsResponseBody struct {
	Holdings []Holding `json:"holdings" doc:"Positions, most recently purchased first"`
}

// ListInvestmentsOutput is the Huma output for listing positions.
type ListInvestmentsOutput struct {
	Body ListInvestmentsResponseBody
}

// holdingLister is the interface for listing enriched positions.
type holdingLister interface {
	ListHoldings(ctx context.Context, userID string) ([]service.Holding, error)
}

// ListInvestmentsHandler handles GET /v1/investment.
type ListInvestmentsHandler struct {
	InvestmentService holdingLister
}

// NewListInvestmentsHandler creates a new ListInvestmentsHandler.
func NewListInvestmentsHandler(svc holdingLister) *ListInvestmentsHandler {
	return &ListInvestmentsHandler{InvestmentService: svc}
}

// Register registers the list investments endpoint with the Huma API.
func (h *ListInvestmentsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-investments",
		Method:      http.MethodGet,
		Path:        "/v1/investment",
		Summary:     "List investments",
		Description: "Returns the caller's positions enriched with live quotes where available.",
		Tags:        []string{"Investments"},
	}, h.handle)
}

func (h *ListInvestmentsHandler) handle(ctx context.Context, _ *struct{}) (*ListInvestmentsOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listHoldingsMs")
	}
	holdings, err := h.InvestmentService.ListHoldings(ctx, session.UserID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list investments", err)
	}

	out := &ListInvestmentsOutput{
		Body: ListInvestmentsResponseBody{Holdings: make([]Holding, len(holdings))},
	}
	for i, holding := range holdings {
		out.Body.Holdings[i] = fromService(holding)
	}
	return out, nil
}
