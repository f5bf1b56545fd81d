package transaction

import (
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
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

const (
	testSecret = "test-secret"
	testUserID = "user-1"
)

// newTestAPI registers the handler behind the real auth middleware and
// returns the API together with a valid Authorization header.
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

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	mockOp := operator.NewMockIOperator(t)
	mockOp.EXPECT().Process(mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		action, ok := a.(*actions.AddTransaction)
		return ok &&
			action.UserID == testUserID &&
			action.AccountID == accountID &&
			action.Amount.Equal(decimal.RequireFromString("-12.50")) &&
			action.Category == "Dining" &&
			action.Description == "Coffee"
	})).Return(nil)

	api, authHeader := newTestAPI(t, NewCreateTransactionHandler(mockOp))
	resp := api.Post("/v1/transaction", authHeader, CreateTransactionBody{
		AccountID:   accountID.String(),
		Amount:      "-12.50",
		Category:    "Dining",
		Description: "Coffee",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
}

func TestHTTP_CreateTransaction_NoToken(t *testing.T) {
	mockOp := operator.NewMockIOperator(t)

	api, _ := newTestAPI(t, NewCreateTransactionHandler(mockOp))
	resp := api.Post("/v1/transaction", CreateTransactionBody{
		AccountID:   uuid.Must(uuid.NewV4()).String(),
		Amount:      "10.00",
		Category:    "Misc",
		Description: "Test",
	})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidAccountID(t *testing.T) {
	mockOp := operator.NewMockIOperator(t)

	api, authHeader := newTestAPI(t, NewCreateTransactionHandler(mockOp))
	resp := api.Post("/v1/transaction", authHeader, CreateTransactionBody{
		AccountID:   "not-a-uuid",
		Amount:      "10.00",
		Category:    "Misc",
		Description: "Test",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockOp := operator.NewMockIOperator(t)

	api, authHeader := newTestAPI(t, NewCreateTransactionHandler(mockOp))
	resp := api.Post("/v1/transaction", authHeader, CreateTransactionBody{
		AccountID:   uuid.Must(uuid.NewV4()).String(),
		Amount:      "not-a-decimal",
		Category:    "Misc",
		Description: "Test",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}

func TestHTTP_CreateTransaction_AccountNotFound(t *testing.T) {
	mockOp := operator.NewMockIOperator(t)
	mockOp.EXPECT().Process(mock.Anything, mock.Anything).Return(actions.ErrAccountNotFound)

	api, authHeader := newTestAPI(t, NewCreateTransactionHandler(mockOp))
	resp := api.Post("/v1/transaction", authHeader, CreateTransactionBody{
		AccountID:   uuid.Must(uuid.NewV4()).String(),
		Amount:      "10.00",
		Category:    "Misc",
		Description: "Test",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
