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

// SettleBorrowBody is the request body for repaying a borrow.
type SettleBorrowBody struct {
	FromAccountID string  `json:"fromAccountID" required:"true" doc:"UUID of the account the payment is drawn from"`
	Amount        *string `json:"amount,omitempty" doc:"Decimal payment amount, defaults to the full remaining debt"`
}

// SettleBorrowInput is the Huma input for repaying a borrow.
type SettleBorrowInput struct {
	ID   string `path:"id" doc:"Borrow record UUID"`
	Body SettleBorrowBody
}

// SettleBorrowOutput is the Huma output for repaying a borrow.
type SettleBorrowOutput struct {
	Status int
}

// SettleBorrowHandler handles POST /v1/debt/borrow/{id}/settle.
type SettleBorrowHandler struct {
	Operator operator.IOperator
}

// NewSettleBorrowHandler creates a new SettleBorrowHandler.
func NewSettleBorrowHandler(op operator.IOperator) *SettleBorrowHandler {
	return &SettleBorrowHandler{Operator: op}
}

// Register registers the settle borrow endpoint with the Huma API.
func (h *SettleBorrowHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "settle-borrow",
		Method:      http.MethodPost,
		Path:        "/v1/debt/borrow/{id}/settle",
		Summary:     "Repay borrowed money",
		Description: "Pays down a borrow from an account. The account must cover the payment; paying more than the remaining debt is rejected.",
		Tags:        []string{"Debts"},
	}, h.handle)
}

func (h *SettleBorrowHandler) handle(ctx context.Context, input *SettleBorrowInput) (*SettleBorrowOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	borrowID, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}
	fromID, err := uuid.FromString(input.Body.FromAccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid fromAccountID", err)
	}

	var payment *decimal.Decimal
	if input.Body.Amount != nil {
		amount, amountErr := decimal.NewFromString(*input.Body.Amount)
		if amountErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid amount", amountErr)
		}
		payment = &amount
	}

	action := &actions.SettleBorrow{
		UserID:        session.UserID,
		BorrowID:      borrowID,
		FromAccountID: fromID,
		PaymentAmount: payment,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, handlerutil.ActionError(err, "failed to settle borrow")
	}

	return &SettleBorrowOutput{Status: http.StatusOK}, nil
}
