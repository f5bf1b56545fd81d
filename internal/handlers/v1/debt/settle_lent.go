package debt

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

// SettleLentBody is the request body for recording a repayment from a borrower.
type SettleLentBody struct {
	ToAccountID string  `json:"toAccountID" required:"true" doc:"UUID of the account the repayment goes into"`
	Amount      *string `json:"amount,omitempty" doc:"Decimal payment amount, defaults to the full remaining debt"`
}

// SettleLentInput is the Huma input for recording a repayment.
type SettleLentInput struct {
	ID   string `path:"id" doc:"Lent record UUID"`
	Body SettleLentBody
}

// SettleLentOutput is the Huma output for recording a repayment.
type SettleLentOutput struct {
	Status int
}

// SettleLentHandler handles POST /v1/debt/lent/{id}/settle.
type SettleLentHandler struct {
	Operator operator.IOperator
}

// NewSettleLentHandler creates a new SettleLentHandler.
func NewSettleLentHandler(op operator.IOperator) *SettleLentHandler {
	return &SettleLentHandler{Operator: op}
}

// Register registers the settle lent endpoint with the Huma API.
func (h *SettleLentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "settle-lent",
		Method:      http.MethodPost,
		Path:        "/v1/debt/lent/{id}/settle",
		Summary:     "Record repayment from a borrower",
		Description: "Credits an account with a repayment against a lent record. Paying more than the remaining debt is rejected.",
		Tags:        []string{"Debts"},
	}, h.handle)
}

func (h *SettleLentHandler) handle(ctx context.Context, input *SettleLentInput) (*SettleLentOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	lentID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	toID, err := uuid.FromString(input.Body.ToAccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid toAccountID", err)
	}

	var payment *decimal.Decimal
	if input.Body.Amount != nil {
		amount, amountErr := decimal.NewFromString(*input.Body.Amount)
		if amountErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid amount", amountErr)
		}
		payment = &amount
	}

	action := &actions.SettleLent{
		UserID:        session.UserID,
		LentID:        lentID,
		ToAccountID:   toID,
		PaymentAmount: payment,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, handlerutil.ActionError(err, "failed to settle lent record")
	}

	return &SettleLentOutput{Status: http.StatusOK}, nil
}
