package advice

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/advisor"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/handlerutil"
)

// MonthForecast is the API response model for one month of predicted spending.
type MonthForecast struct {
	Month     string `json:"month" doc:"Calendar month in YYYY-MM form"`
	Predicted string `json:"predicted" doc:"Predicted decimal spending"`
}

// PredictExpensesResponseBody is the response body for the expense forecast.
type PredictExpensesResponseBody struct {
	Forecasts []MonthForecast `json:"forecasts" doc:"Forecast months in order"`
}

// PredictExpensesOutput is the Huma output for the expense forecast.
type PredictExpensesOutput struct {
	Body PredictExpensesResponseBody
}

// PredictExpensesHandler handles POST /v1/advice/predict-expenses.
type PredictExpensesHandler struct {
	FinanceService overviewBuilder
	Advisor        advisor.IAdvisor
}

// NewPredictExpensesHandler creates a new PredictExpensesHandler.
func NewPredictExpensesHandler(svc overviewBuilder, adv advisor.IAdvisor) *PredictExpensesHandler {
	return &PredictExpensesHandler{FinanceService: svc, Advisor: adv}
}

// Register registers the predict expenses endpoint with the Huma API.
func (h *PredictExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "predict-expenses",
		Method:      http.MethodPost,
		Path:        "/v1/advice/predict-expenses",
		Summary:     "Predict future expenses",
		Description: "Forecasts the caller's spending for the coming months from their recent transactions.",
		Tags:        []string{"Advice"},
	}, h.handle)
}

func (h *PredictExpensesHandler) handle(ctx context.Context, _ *struct{}) (*PredictExpensesOutput, error) {
	session, err := handlerutil.Session(ctx)
	if err != nil {
		return nil, err
	}

	overview, err := h.FinanceService.Overview(ctx, session.UserID, session.Name)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build finance overview", err)
	}

	forecasts, err := h.Advisor.PredictExpenses(ctx, overview)
	if err != nil {
		return nil, huma.NewError(http.StatusBadGateway, "advisor unavailable", err)
	}

	out := &PredictExpensesOutput{
		Body: PredictExpensesResponseBody{Forecasts: make([]MonthForecast, len(forecasts))},
	}
	for i, f := range forecasts {
		out.Body.Forecasts[i] = MonthForecast{
			Month:     f.Month,
			Predicted: f.Predicted.String(),
		}
	}
	return out, nil
}
