package account

import (
	"net/http"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
)

func TestHTTP_PayBill_Success(t *testing.T) {
	cardID := uuid.Must(uuid.NewV4())
	sourceID := uuid.Must(uuid.NewV4())

	mockOp := operator.NewMockIOperator(t)
	mockOp.EXPECT().Process(mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		action, ok := a.(*actions.PayBill)
		return ok &&
			action.UserID == testUserID &&
			action.CreditCardID == cardID &&
			action.SourceAccountID == sourceID &&
			action.Amount.Equal(decimal.RequireFromString("520.00"))
	})).Return(nil)

	api, authHeader := newTestAPI(t, NewPayBillHandler(mockOp))
	resp := api.Post("/v1/account/"+cardID.String()+"/pay-bill", authHeader, PayBillBody{
		SourceAccountID: sourceID.String(),
		Amount:          "520.00",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestHTTP_PayBill_NotACreditCard(t *testing.T) {
	mockOp := operator.NewMockIOperator(t)
	mockOp.EXPECT().Process(mock.Anything, mock.Anything).Return(actions.ErrInvalidAccountType)

	api, authHeader := newTestAPI(t, NewPayBillHandler(mockOp))
	resp := api.Post("/v1/account/"+uuid.Must(uuid.NewV4()).String()+"/pay-bill", authHeader, PayBillBody{
		SourceAccountID: uuid.Must(uuid.NewV4()).String(),
		Amount:          "100.00",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_PayBill_CardMissing(t *testing.T) {
	mockOp := operator.NewMockIOperator(t)
	mockOp.EXPECT().Process(mock.Anything, mock.Anything).Return(actions.ErrAccountNotFound)

	api, authHeader := newTestAPI(t, NewPayBillHandler(mockOp))
	resp := api.Post("/v1/account/"+uuid.Must(uuid.NewV4()).String()+"/pay-bill", authHeader, PayBillBody{
		SourceAccountID: uuid.Must(uuid.NewV4()).String(),
		Amount:          "100.00",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_PayBill_InvalidAmount(t *testing.T) {
	mockOp := operator.NewMockIOperator(t)

	api, authHeader := newTestAPI(t, NewPayBillHandler(mockOp))
	resp := api.Post("/v1/account/"+uuid.Must(uuid.NewV4()).String()+"/pay-bill", authHeader, PayBillBody{
		SourceAccountID: uuid.Must(uuid.NewV4()).String(),
		Amount:          "not-a-decimal",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockOp.AssertNotCalled(t, "Process")
}
