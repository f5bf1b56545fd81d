package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	advisorclient "github.com/carson-networks/ledger-server/internal/advisor"
	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/account"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/advice"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/debt"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/investment"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/status"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/ledger-server/internal/handlers/v1/user"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/operator"
	"github.com/carson-networks/ledger-server/internal/service"
	"github.com/carson-networks/ledger-server/internal/storage"
)

type Rest struct {
	Logger    *logrus.Logger
	Port      string
	JWTSecret string
	Storage   *storage.Storage
	Operator  *operator.OperatorDelegator
	Service   *service.Service
	Advisor   advisorclient.IAdvisor
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("ledger-server", "1.0.0"))
	api.UseMiddleware(logging.NewMiddleware(r.Logger))
	api.UseMiddleware(auth.NewMiddleware(api, r.JWTSecret))

	r.registerHandlers(api)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func (r *Rest) registerHandlers(api huma.API) {
	account.NewCreateAccountHandler(r.Operator).Register(api)
	account.NewGetAccountHandler(r.Service.Account).Register(api)
	account.NewListAccountsHandler(r.Service.Account).Register(api)
	account.NewUpdateAccountHandler(r.Operator).Register(api)
	account.NewDeleteAccountHandler(r.Operator).Register(api)
	account.NewPayBillHandler(r.Operator).Register(api)

	transaction.NewCreateTransactionHandler(r.Operator).Register(api)
	transaction.NewSplitExpenseHandler(r.Operator).Register(api)
	transaction.NewAddIncomeHandler(r.Operator).Register(api)
	transaction.NewAddTransferHandler(r.Operator).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(api)

	debt.NewAddLentHandler(r.Operator).Register(api)
	debt.NewSettleBorrowHandler(r.Operator).Register(api)
	debt.NewSettleLentHandler(r.Operator).Register(api)
	debt.NewListDebtsHandler(r.Service.Debt).Register(api)

	investment.NewAddInvestmentHandler(r.Operator).Register(api)
	investment.NewDeleteInvestmentHandler(r.Operator).Register(api)
	investment.NewListInvestmentsHandler(r.Service.Investment).Register(api)
	investment.NewSearchSymbolsHandler(r.Service.Investment).Register(api)

	advice.NewChatHandler(r.Service.Finance, r.Advisor).Register(api)
	advice.NewPredictExpensesHandler(r.Service.Finance, r.Advisor).Register(api)

	user.NewPreferencesHandler(r.Storage.Users, r.Operator).Register(api)
	user.NewSubmitFeedbackHandler(r.Operator).Register(api)
}
