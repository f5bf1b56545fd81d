package account

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/service"
)

const (
	testSecret = "test-secret"
	testUserID = "user-1"
)

func newTestAPI(t *testing.T, h interface{ Register(huma.API) }) (humatest.TestAPI, string) {
	t.Helper()
	_, api := humatest.New(t)
	api.UseMiddleware(auth.NewMiddleware(api, testSecret))
	h.Register(api)

	token, err := auth.GenerateToken(testSecret, testUserID, "Priya", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return api, "Authorization: Bearer " + token
}

type mockAccountGetter struct {
	mock.Mock
}

func (m *mockAccountGetter) GetAccount(ctx context.Context, userID string, id uuid.UUID) (*service.Account, error) {
	args := m.Called(ctx, userID, id)
	acct, _ := args.Get(0).(*service.Account)
	return acct, args.Error(1)
}

func TestHTTP_GetAccount_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	limit := decimal.RequireFromString("5000")
	day := 15

	mockSvc := new(mockAccountGetter)
	mockSvc.On("GetAccount", mock.Anything, testUserID, id).Return(&service.Account{
		ID:              id,
		Name:            "Visa",
		Type:            service.AccountTypeCreditCard,
		Balance:         decimal.RequireFromString("-750.25"),
		CreditLimit:     &limit,
		BillingCycleDay: &day,
		CreatedAt:       time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
	}, nil)

	api, authHeader := newTestAPI(t, NewGetAccountHandler(mockSvc))
	resp := api.Get("/v1/account/"+id.String(), authHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Account
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body.ID)
	assert.Equal(t, "Visa", body.Name)
	assert.Equal(t, typeCreditCard, body.Type)
	assert.Equal(t, "-750.25", body.Balance)
	assert.NotNil(t, body.CreditLimit)
	assert.Equal(t, "5000", *body.CreditLimit)
	assert.Equal(t, &day, body.BillingCycleDay)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockAccountGetter)
	mockSvc.On("GetAccount", mock.Anything, testUserID, id).
		Return(nil, service.ErrAccountNotFound)

	api, authHeader := newTestAPI(t, NewGetAccountHandler(mockSvc))
	resp := api.Get("/v1/account/"+id.String(), authHeader)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetAccount_InvalidID(t *testing.T) {
	mockSvc := new(mockAccountGetter)

	api, authHeader := newTestAPI(t, NewGetAccountHandler(mockSvc))
	resp := api.Get("/v1/account/not-a-uuid", authHeader)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "GetAccount")
}

func TestHTTP_GetAccount_NoToken(t *testing.T) {
	mockSvc := new(mockAccountGetter)

	api, _ := newTestAPI(t, NewGetAccountHandler(mockSvc))
	resp := api.Get("/v1/account/" + uuid.Must(uuid.NewV4()).String())

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "GetAccount")
}

func TestHTTP_GetAccount_ServiceError(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockAccountGetter)
	mockSvc.On("GetAccount", mock.Anything, testUserID, id).
		Return(nil, errors.New("database unavailable"))

	api, authHeader := newTestAPI(t, NewGetAccountHandler(mockSvc))
	resp := api.Get("/v1/account/"+id.String(), authHeader)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
