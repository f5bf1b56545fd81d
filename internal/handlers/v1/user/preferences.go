package user

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage/user"
)

// Preferences is the API model for the user's display settings.
type Preferences struct {
	Currency string `json:"currency" doc:"ISO currency code used for display"`
	Theme    string `json:"theme" enum:"light,dark,system" doc:"UI theme"`
}

// GetPreferencesOutput is the Huma output for fetching preferences.
type GetPreferencesOutput struct {
	Body Preferences
}

// SetPreferencesInput is the Huma input for updating preferences.
type SetPreferencesInput struct {
	Body Preferences
}

// SetPreferencesOutput is the Huma output for updating preferences.
type SetPreferencesOutput struct {
	Status int
}

// preferencesGetter is the interface for reading stored preferences.
type preferencesGetter interface {
	GetPreferences(ctx context.Context, userID string) (*user.Preferences, error)
}

// PreferencesHandler handles GET and PUT /v1/user/preferences.
type PreferencesHandler struct {
	Users    preferencesGetter
	Operator operator.IOperator
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(users preferencesGetter, op operator.IOperator) *PreferencesHandler {
	return &PreferencesHandler{Users: users, Operator: op}
}

// Register registers the preferences endpoints with the Huma API.
func (h *PreferencesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-preferences",
		Method:      http.MethodGet,
		Path:        "/v1/user/preferences",
		Summary:     "Get preferences",
		Description: "Returns the caller's display preferences, falling back to defaults.",
		Tags:        []string{"User"},
	}, h.handleGet)

	huma.Register(api, huma.Operation{
		OperationID: "set-preferences",
		Method:      http.MethodPut,
		Path:        "/v1/user/preferences",
		Summary:     "Set preferences",
		Description: "Replaces the caller's display preferences.",
		Tags:        []string{"User"},
	}, h.handleSet)
}

func (h *PreferencesHandler) handleGet(ctx context.Context, _ *struct{}) (*GetPreferencesOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	prefs, err := h.Users.GetPreferences(ctx, session.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to get preferences", err)
	}

	return &GetPreferencesOutput{Body: Preferences{
		Currency: prefs.Currency,
		Theme:    prefs.Theme,
	}}, nil
}

func (h *PreferencesHandler) handleSet(ctx context.Context, input *SetPreferencesInput) (*SetPreferencesOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	action := &actions.SetPreferences{
		UserID:   session.UserID,
		Currency: input.Body.Currency,
		Theme:    input.Body.Theme,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, handlerutil.ActionError(err, "failed to set preferences")
	}

	return &SetPreferencesOutput{Status: http.StatusOK}, nil
}
