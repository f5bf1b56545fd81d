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

// AddLentBody is the request body for lending money directly.
type AddLentBody struct {
	Borrower      string `json:"borrower" required:"true" doc:"Who the money is lent to"`
	Amount        string `json:"amount" required:"true" doc:"Positive decimal amount"`
	FromAccountID string `json:"fromAccountID" required:"true" doc:"UUID of the account the money leaves"`
}

// AddLentInput is the Huma input for lending money.
type AddLentInput struct {
	Body AddLentBody
}

// AddLentOutput is the Huma output for lending money.
type AddLentOutput struct {
	Status int
}

// AddLentHandler handles POST /v1/debt/lent.
type AddLentHandler struct {
	Operator operator.IOperator
}

// NewAddLentHandler creates a new AddLentHandler.
func NewAddLentHandler(op operator.IOperator) *AddLentHandler {
	return &AddLentHandler{Operator: op}
}

// Register registers the add lent endpoint with the Huma API.
func (h *AddLentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "add-lent",
		Method:      http.MethodPost,
		Path:        "/v1/debt/lent",
		Summary:     "Lend money",
		Description: "Debits the account for the full amount and opens an outstanding lent record. Fails if the account lacks funds.",
		Tags:        []string{"Debts"},
	}, h.handle)
}

func (h *AddLentHandler) handle(ctx context.Context, input *AddLentInput) (*AddLentOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	fromID, err := uuid.FromString(input.Body.FromAccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid fromAccountID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	action := &actions.AddLentMoney{
		UserID:        session.UserID,
		Borrower:      input.Body.Borrower,
		Amount:        amount,
		FromAccountID: fromID,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, handlerutil.ActionError(err, "failed to lend money")
	}

	return &AddLentOutput{Status: http.StatusCreated}, nil
}
