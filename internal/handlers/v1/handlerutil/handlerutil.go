// Package handlerutil holds the small helpers shared by the v1 handlers.
package handlerutil

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

// Session returns the authenticated session or a 401 error suitable for
// returning from a handler.
func Session(ctx context.Context) (*auth.Session, error) {
	session, err := auth.SessionFromContext(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusUnauthorized, "not authenticated")
	}
	return session, nil
}

// ActionError maps a ledger action failure to an HTTP error. Unknown errors
// become a 500 with the given message.
func ActionError(err error, msg string) error {
	switch {
	case errors.Is(err, actions.ErrAccountNotFound),
		errors.Is(err, actions.ErrDebtNotFound):
		return huma.NewError(http.StatusNotFound, err.Error())
	case errors.Is(err, actions.ErrInsufficientFunds),
		errors.Is(err, actions.ErrInvalidAmount),
		errors.Is(err, actions.ErrInvalidAccountType):
		return huma.NewError(http.StatusUnprocessableEntity, err.Error())
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}
