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

// AddIncomeBody is the request body for recording income.
type AddIncomeBody struct {
	AccountID   string `json:"accountID" required:"true" doc:"Account UUID the money goes into"`
	Amount      string `json:"amount" required:"true" doc:"Positive decimal amount"`
	Description string `json:"description" required:"true" doc:"Description of the income"`
	IsBorrowing bool   `json:"isBorrowing,omitempty" doc:"True when the money was borrowed rather than earned"`
	Lender      string `json:"lender,omitempty" doc:"Who lent the money, required to open a borrow record"`
}

// AddIncomeInput is the Huma input for recording income.
type AddIncomeInput struct {
	Body AddIncomeBody
}

// AddIncomeOutput is the Huma output for recording income.
type AddIncomeOutput struct {
	Status int
}

// AddIncomeHandler handles POST /v1/transaction/income.
type AddIncomeHandler struct {
	Operator operator.IOperator
}

// NewAddIncomeHandler creates a new AddIncomeHandler.
func NewAddIncomeHandler(op operator.IOperator) *AddIncomeHandler {
	return &AddIncomeHandler{Operator: op}
}

// Register registers the add income endpoint with the Huma API.
func (h *AddIncomeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "add-income",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/income",
		Summary:     "Add income",
		Description: "Credits an account. Borrowed money additionally opens an outstanding borrow record against the lender.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *AddIncomeHandler) handle(ctx context.Context, input *AddIncomeInput) (*AddIncomeOutput, error) {
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

	action := &actions.AddIncome{
		UserID:      session.UserID,
		AccountID:   accountID,
		Amount:      amount,
		Description: input.Body.Description,
		IsBorrowing: input.Body.IsBorrowing,
		Lender:      input.Body.Lender,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, handlerutil.ActionError(err, "failed to add income")
	}

	return &AddIncomeOutput{Status: http.StatusCreated}, nil
}
