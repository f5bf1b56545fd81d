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

// AddTransferBody is the request body for a transfer between two accounts.
type AddTransferBody struct {
	FromAccountID string `json:"fromAccountID" required:"true" doc:"Source account UUID"`
	ToAccountID   string `json:"toAccountID" required:"true" doc:"Destination account UUID"`
	Amount        string `json:"amount" required:"true" doc:"Decimal amount, the absolute value is moved"`
	Description   string `json:"description,omitempty" doc:"Optional description for both legs"`
}

// AddTransferInput is the Huma input for a transfer.
type AddTransferInput struct {
	Body AddTransferBody
}

// AddTransferOutput is the Huma output for a transfer.
type AddTransferOutput struct {
	Status int
}

// AddTransferHandler handles POST /v1/transaction/transfer.
type AddTransferHandler struct {
	Operator operator.IOperator
}

// NewAddTransferHandler creates a new AddTransferHandler.
func NewAddTransferHandler(op operator.IOperator) *AddTransferHandler {
	return &AddTransferHandler{Operator: op}
}

// Register registers the transfer endpoint with the Huma API.
func (h *AddTransferHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "add-transfer",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/transfer",
		Summary:     "Add transfer",
		Description: "Moves money between two of the caller's accounts, recording one transaction on each side with the same timestamp.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *AddTransferHandler) handle(ctx context.Context, input *AddTransferInput) (*AddTransferOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	fromID, err := uuid.FromString(input.Body.FromAccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid fromAccountID", err)
	}
	toID, err := uuid.FromString(input.Body.ToAccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid toAccountID", err)
	}
	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	action := &actions.AddTransfer{
		UserID:        session.UserID,
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
		Description:   input.Body.Description,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, handlerutil.ActionError(err, "failed to add transfer")
	}

	return &AddTransferOutput{Status: http.StatusCreated}, nil
}
