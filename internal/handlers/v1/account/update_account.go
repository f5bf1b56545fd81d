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
	"github.com/carson-networks/ledger-server/internal/storage/account"
)

// UpdateAccountBody is the request body for updating an account. Absent
// fields are left unchanged.
type UpdateAccountBody struct {
	Name            *string `json:"name,omitempty" doc:"Display name"`
	Type            *string `json:"type,omitempty" enum:"bank,cash,creditCard" doc:"Account type"`
	Balance         *string `json:"balance,omitempty" doc:"Decimal balance"`
	CreditLimit     *string `json:"creditLimit,omitempty" doc:"Decimal credit limit"`
	BillingCycleDay *int    `json:"billingCycleDay,omitempty" minimum:"1" maximum:"28" doc:"Day of month the billing cycle starts"`
}

// UpdateAccountInput is the Huma input for updating an account.
type UpdateAccountInput struct {
	ID   string `path:"id" doc:"Account UUID"`
	Body UpdateAccountBody
}

// UpdateAccountOutput is the Huma output for updating an account.
type UpdateAccountOutput struct {
	Status int
}

// UpdateAccountHandler handles PATCH /v1/account/{id}.
type UpdateAccountHandler struct {
	Operator operator.IOperator
}

// NewUpdateAccountHandler creates a new UpdateAccountHandler.
func NewUpdateAccountHandler(op operator.IOperator) *UpdateAccountHandler {
	return &UpdateAccountHandler{Operator: op}
}

// Register registers the update account endpoint with the Huma API.
func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPatch,
		Path:        "/v1/account/{id}",
		Summary:     "Update account",
		Description: "Updates the given fields of an account.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid id", err)
	}

	update := account.AccountUpdate{
		Name:            input.Body.Name,
		BillingCycleDay: input.Body.BillingCycleDay,
	}
	if input.Body.Type != nil {
		accountType, typeErr := parseAccountType(*input.Body.Type)
		if typeErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid type", typeErr)
		}
		update.Type = &accountType
	}
	if input.Body.Balance != nil {
		balance, balErr := decimal.NewFromString(*input.Body.Balance)
		if balErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid balance", balErr)
		}
		update.Balance = &balance
	}
	if input.Body.CreditLimit != nil {
		limit, limitErr := decimal.NewFromString(*input.Body.CreditLimit)
		if limitErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid creditLimit", limitErr)
		}
		update.CreditLimit = &limit
	}

	action := &actions.UpdateAccount{
		UserID:    session.UserID,
		AccountID: id,
		Update:    update,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, handlerutil.ActionError(err, "failed to update account")
	}

	return &UpdateAccountOutput{Status: http.StatusOK}, nil
}
