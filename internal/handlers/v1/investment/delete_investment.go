package investment

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// DeleteInvestmentInput is the Huma input for deleting a position.
type DeleteInvestmentInput struct {
	ID string `path:"id" doc:"Holding UUID"`
}

// DeleteInvestmentOutput is the Huma output for deleting a position.
type DeleteInvestmentOutput struct {
	Status int
}

// DeleteInvestmentHandler handles DELETE /v1/investment/{id}.
type DeleteInvestmentHandler struct {
	Operator operator.IOperator
}

// NewDeleteInvestmentHandler creates a new DeleteInvestmentHandler.
func NewDeleteInvestmentHandler(op operator.IOperator) *DeleteInvestmentHandler {
	return &DeleteInvestmentHandler{Operator: op}
}

// Register registers the delete investment endpoint with the Huma API.
func (h *DeleteInvestmentHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-investment",
		Method:      http.MethodDelete,
		Path:        "/v1/investment/{id}",
		Summary:     "Delete investment",
		Description: "Removes a position from the portfolio.",
		Tags:        []string{"Investments"},
	}, h.handle)
}

func (h *DeleteInvestmentHandler) handle(ctx context.Context, input *DeleteInvestmentInput) (*DeleteInvestmentOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	action := &actions.DeleteInvestment{
		UserID:       session.UserID,
		InvestmentID: id,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, handlerutil.ActionError(err, "failed to delete investment")
	}

	return &DeleteInvestmentOutput{Status: http.StatusOK}, nil
}
