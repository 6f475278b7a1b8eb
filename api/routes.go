package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/harbor-networks/ledger-server/internal/handlers/v1/account"
	"github.com/harbor-networks/ledger-server/internal/handlers/v1/status"
	"github.com/harbor-networks/ledger-server/internal/handlers/v1/transaction"
	"github.com/harbor-networks/ledger-server/internal/handlers/v1/transfer"
	"github.com/harbor-networks/ledger-server/internal/logging"
	"github.com/harbor-networks/ledger-server/internal/service"
)

type Rest struct {
	Logger  *logrus.Logger
	Port    string
	Service *service.Service
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	humaAPI := humago.New(mux, huma.DefaultConfig("Ledger Server", "1.0.0"))
	humaAPI.UseMiddleware(r.logDataMiddleware)
	r.registerHandlers(humaAPI)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

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

func (r *Rest) registerHandlers(humaAPI huma.API) {
	account.NewCreateAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewGetAccountHandler(r.Service.Account).Register(humaAPI)
	account.NewListAccountsHandler(r.Service.Account).Register(humaAPI)
	account.NewReconcileHandler(r.Service.Projector).Register(humaAPI)

	transaction.NewListTransactionsHandler(r.Service.Ledger).Register(humaAPI)
	transaction.NewExportTransactionsHandler(r.Service.Ledger).Register(humaAPI)

	transfer.NewDepositHandler(r.Service.Transfer).Register(humaAPI)
	transfer.NewWithdrawHandler(r.Service.Transfer).Register(humaAPI)
	transfer.NewPayBillHandler(r.Service.Transfer).Register(humaAPI)
	transfer.NewExecuteTransferHandler(r.Service.Transfer).Register(humaAPI)
	transfer.NewProposeTransferHandler(r.Service.Transfer).Register(humaAPI)
	transfer.NewConfirmTransferHandler(r.Service.Transfer).Register(humaAPI)
}

// logDataMiddleware gives each request its own LogData and emits one summary
// line per request with the timings the handlers recorded.
func (r *Rest) logDataMiddleware(ctx huma.Context, next func(huma.Context)) {
	logData := logging.NewLogData(r.Logger)
	endTimer := logData.AddTiming("duration")

	next(huma.WithContext(ctx, logging.WithLogData(ctx.Context(), logData)))

	endTimer()
	logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
}
