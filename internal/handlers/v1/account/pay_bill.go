package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// PayBillBody is the request body for paying a credit card bill.
type PayBillBody struct {
	SourceAccountID string `json:"sourceAccountID" required:"true" doc:"UUID of the account the payment is drawn from"`
	Amount          string `json:"amount" required:"true" doc:"Positive decimal payment amount"`
}

// PayBillInput is the Huma input for paying a credit card bill.
type PayBillInput struct {
	ID   string `path:"id" doc:"Credit card account UUID"`
	Body PayBillBody
}

// PayBillOutput is the Huma output for paying a credit card bill.
type PayBillOutput struct {
	Status int
}

// PayBillHandler handles POST /v1/account/{id}/pay-bill.
type PayBillHandler struct {
	Operator operator.IOperator
}

// NewPayBillHandler creates a new PayBillHandler.
func NewPayBillHandler(op operator.IOperator) *PayBillHandler {
	return &PayBillHandler{Operator: op}
}

// Register registers the pay bill endpoint with the Huma API.
func (h *PayBillHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "pay-bill",
		Method:      http.MethodPost,
		Path:        "/v1/account/{id}/pay-bill",
		Summary:     "Pay credit card bill",
		Description: "Pays a credit card bill from another account, reconciling any discrepancy between the payment and the outstanding balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *PayBillHandler) handle(ctx context.Context, input *PayBillInput) (*PayBillOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	cardID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	sourceID, err := uuid.FromString(input.Body.SourceAccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid sourceAccountID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	action := &actions.PayBill{
		UserID:          session.UserID,
		CreditCardID:    cardID,
		SourceAccountID: sourceID,
		Amount:          amount,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, handlerutil.ActionError(err, "failed to pay bill")
	}

	return &PayBillOutput{Status: http.StatusOK}, nil
}
