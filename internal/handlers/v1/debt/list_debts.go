package debt

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListDebtsResponseBody is the response body for listing debts.
type ListDebtsResponseBody struct {
	Debts []Debt `json:"debts" doc:"Debt records, newest first"`
}

// ListDebtsOutput is the Huma output for listing debts.
type ListDebtsOutput struct {
	Body ListDebtsResponseBody
}

// debtLister is the interface for listing debt records.
type debtLister interface {
	ListBorrows(ctx context.Context, userID string) ([]service.Debt, error)
	ListLent(ctx context.Context, userID string) ([]service.Debt, error)
}

// ListDebtsHandler handles GET /v1/debt/borrow and GET /v1/debt/lent.
type ListDebtsHandler struct {
	DebtService debtLister
}

// NewListDebtsHandler creates a new ListDebtsHandler.
func NewListDebtsHandler(svc debtLister) *ListDebtsHandler {
	return &ListDebtsHandler{DebtService: svc}
}

// Register registers the debt listing endpoints with the Huma API.
func (h *ListDebtsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-borrows",
		Method:      http.MethodGet,
		Path:        "/v1/debt/borrow",
		Summary:     "List borrowed money",
		Description: "Returns the caller's borrow records with their settlements, newest first.",
		Tags:        []string{"Debts"},
	}, h.handleBorrows)

	huma.Register(api, huma.Operation{
		OperationID: "list-lent",
		Method:      http.MethodGet,
		Path:        "/v1/debt/lent",
		Summary:     "List lent money",
		Description: "Returns the caller's lent records with their settlements, newest first.",
		Tags:        []string{"Debts"},
	}, h.handleLent)
}

func (h *ListDebtsHandler) handleBorrows(ctx context.Context, _ *struct{}) (*ListDebtsOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}
	debts, err := h.DebtService.ListBorrows(ctx, session.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list borrows", err)
	}
	return listOutput(debts), nil
}

func (h *ListDebtsHandler) handleLent(ctx context.Context, _ *struct{}) (*ListDebtsOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}
	debts, err := h.DebtService.ListLent(ctx, session.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list lent records", err)
	}
	return listOutput(debts), nil
}

func listOutput(debts []service.Debt) *ListDebtsOutput {
	out := &ListDebtsOutput{
		Body: ListDebtsResponseBody{Debts: make([]Debt, len(debts))},
	}
	for i, d := range debts {
		out.Body.Debts[i] = fromService(d)
	}
	return out
}
