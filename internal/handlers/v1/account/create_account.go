package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name            string  `json:"name" required:"true" doc:"Display name"`
	Type            string  `json:"type" required:"true" enum:"bank,cash,creditCard" doc:"Account type"`
	Balance         string  `json:"balance" required:"true" doc:"Decimal starting balance"`
	CreditLimit     *string `json:"creditLimit,omitempty" doc:"Decimal credit limit, credit cards only"`
	BillingCycleDay *int    `json:"billingCycleDay,omitempty" minimum:"1" maximum:"28" doc:"Day of month the billing cycle starts"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Status int
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	Operator operator.IOperator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(op operator.IOperator) *CreateAccountHandler {
	return &CreateAccountHandler{Operator: op}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-account",
		Method:      http.MethodPost,
		Path:        "/v1/account",
		Summary:     "Create account",
		Description: "Creates a new account. Credit card balances are normalized to a non-positive debt balance.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	accountType, err := parseAccountType(input.Body.Type)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid type", err)
	}
	balance, err := decimal.NewFromString(input.Body.Balance)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid balance", err)
	}

	var creditLimit *decimal.Decimal
	if input.Body.CreditLimit != nil {
		limit, limitErr := decimal.NewFromString(*input.Body.CreditLimit)
		if limitErr != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid creditLimit", limitErr)
		}
		creditLimit = &limit
	}

	action := &actions.CreateAccount{
		UserID:          session.UserID,
		Name:            input.Body.Name,
		Type:            accountType,
		Balance:         balance,
		CreditLimit:     creditLimit,
		BillingCycleDay: input.Body.BillingCycleDay,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, handlerutil.ActionError(err, "failed to create account")
	}

	return &CreateAccountOutput{Status: http.StatusCreated}, nil
}
