package investment

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// AddInvestmentBody is the request body for recording a position.
type AddInvestmentBody struct {
	Symbol        string `json:"symbol" required:"true" doc:"Market symbol"`
	Name          string `json:"name" required:"true" doc:"Instrument name"`
	Quantity      string `json:"quantity" required:"true" doc:"Positive decimal quantity"`
	PurchaseValue string `json:"purchaseValue" required:"true" doc:"Non-negative decimal total paid"`
	PurchaseDate  string `json:"purchaseDate,omitempty" doc:"RFC3339 purchase date, defaults to now"`
}

// AddInvestmentInput is the Huma input for recording a position.
type AddInvestmentInput struct {
	Body AddInvestmentBody
}

// AddInvestmentOutput is the Huma output for recording a position.
type AddInvestmentOutput struct {
	Status int
}

// AddInvestmentHandler handles POST /v1/investment.
type AddInvestmentHandler struct {
	Operator operator.IOperator
}

// NewAddInvestmentHandler creates a new AddInvestmentHandler.
func NewAddInvestmentHandler(op operator.IOperator) *AddInvestmentHandler {
	return &AddInvestmentHandler{Operator: op}
}

// Register registers the add investment endpoint with the Huma API.
func (h *AddInvestmentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "add-investment",
		Method:      http.MethodPost,
		Path:        "/v1/investment",
		Summary:     "Add investment",
		Description: "Records a purchased position.",
		Tags:        []string{"Investments"},
	}, h.handle)
}

func (h *AddInvestmentHandler) handle(ctx context.Context, input *AddInvestmentInput) (*AddInvestmentOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	quantity, err := decimal.NewFromString(input.Body.Quantity)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid quantity", err)
	}
	purchaseValue, err := decimal.NewFromString(input.Body.PurchaseValue)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid purchaseValue", err)
	}

	purchaseDate := time.Now()
	if input.Body.PurchaseDate != "" {
		purchaseDate, err = time.Parse(time.RFC3339, input.Body.PurchaseDate)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid purchaseDate", err)
		}
	}

	action := &actions.AddInvestment{
		UserID:        session.UserID,
		Symbol:        input.Body.Symbol,
		Name:          input.Body.Name,
		Quantity:      quantity,
		PurchaseValue: purchaseValue,
		PurchaseDate:  purchaseDate,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, handlerutil.ActionError(err, "failed to add investment")
	}

	return &AddInvestmentOutput{Status: http.StatusCreated}, nil
}
