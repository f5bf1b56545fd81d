package transaction

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

// SplitExpenseBody is the request body for a split expense.
type SplitExpenseBody struct {
	AccountID   string   `json:"accountID" required:"true" doc:"Account UUID the full amount is paid from"`
	Amount      string   `json:"amount" required:"true" doc:"Positive decimal total of the expense"`
	Category    string   `json:"category" required:"true" doc:"Category name"`
	Description string   `json:"description" required:"true" doc:"Description of the expense"`
	SplitWith   []string `json:"splitWith" required:"true" minItems:"1" doc:"Friends sharing the expense, excluding the payer"`
}

// SplitExpenseInput is the Huma input for a split expense.
type SplitExpenseInput struct {
	Body SplitExpenseBody
}

// SplitExpenseOutput is the Huma output for a split expense.
type SplitExpenseOutput struct {
	Status int
}

// SplitExpenseHandler handles POST /v1/transaction/split.
type SplitExpenseHandler struct {
	Operator operator.IOperator
}

// NewSplitExpenseHandler creates a new SplitExpenseHandler.
func NewSplitExpenseHandler(op operator.IOperator) *SplitExpenseHandler {
	return &SplitExpenseHandler{Operator: op}
}

// Register registers the split expense endpoint with the Huma API.
func (h *SplitExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "split-expense",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/split",
		Summary:     "Add split expense",
		Description: "Pays the full amount from the account and opens a lent record for each friend's equal share.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *SplitExpenseHandler) handle(ctx context.Context, input *SplitExpenseInput) (*SplitExpenseOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	action := &actions.AddSplitExpense{
		UserID:      session.UserID,
		AccountID:   accountID,
		Amount:      amount,
		Category:    input.Body.Category,
		Description: input.Body.Description,
		SplitWith:   input.Body.SplitWith,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, handlerutil.ActionError(err, "failed to add split expense")
	}

	return &SplitExpenseOutput{Status: http.StatusCreated}, nil
}
