// Package handler exposes the budgeting tools over HTTP. Each tool is a
// POST route that decodes JSON parameters and returns the tool's text
// result with a fresh invocation ID.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/hmalcolm/ynab-bridge-go/internal/infra/observability"
	"github.com/hmalcolm/ynab-bridge-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// toolResponse wraps every tool result.
type toolResponse struct {
	InvocationID string `json:"invocation_id"`
	Result       string `json:"result"`
}

// NewRouter creates the HTTP router with all routes and middleware.
// A non-empty jwtSecret puts the tool routes behind bearer auth.
func NewRouter(tools *service.Tools, metrics *observability.Metrics, logger *zap.Logger, jwtSecret string) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler())
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {
		r.Get("/metrics/tools", toolMetricsHandler(metrics))

		r.Route("/tools", func(r chi.Router) {
			if jwtSecret != "" {
				r.Use(BearerAuthMiddleware(jwtSecret, logger))
			}

			// Budgets
			r.Post("/ynab_get_budgets", toolHandler(logger, tools.GetBudgets))
			r.Post("/ynab_get_budget_summary", toolHandler(logger, tools.GetBudgetSummary))
			r.Post("/ynab_get_budget_overview", toolHandler(logger, tools.GetBudgetOverview))

			// Accounts
			r.Post("/ynab_get_accounts", toolHandler(logger, tools.GetAccounts))
			r.Post("/ynab_get_account", toolHandler(logger, tools.GetAccount))

			// Categories
			r.Post("/ynab_get_categories", toolHandler(logger, tools.GetCategories))
			r.Post("/ynab_get_category", toolHandler(logger, tools.GetCategory))
			r.Post("/ynab_update_category_budget", toolHandler(logger, tools.UpdateCategoryBudget))

			// Payees
			r.Post("/ynab_get_payees", toolHandler(logger, tools.GetPayees))

			// Transactions
			r.Post("/ynab_get_transactions", toolHandler(logger, tools.GetTransactions))
			r.Post("/ynab_get_transaction", toolHandler(logger, tools.GetTransaction))
			r.Post("/ynab_create_transaction", toolHandler(logger, tools.CreateTransaction))
			r.Post("/ynab_update_transaction", toolHandler(logger, tools.UpdateTransaction))
			r.Post("/ynab_search_transactions", toolHandler(logger, tools.SearchTransactions))

			// Months
			r.Post("/ynab_get_month_budget", toolHandler(logger, tools.GetMonthBudget))

			// Scheduled transactions
			r.Post("/ynab_get_scheduled_transactions", toolHandler(logger, tools.GetScheduledTransactions))
			r.Post("/ynab_create_scheduled_transaction", toolHandler(logger, tools.CreateScheduledTransaction))
		})
	})

	return r
}

// toolHandler adapts one tool method into an HTTP handler. An empty or
// absent body means all-default parameters.
func toolHandler[P any](logger *zap.Logger, invoke func(ctx context.Context, p P) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST "+r.URL.Path)
		defer span.End()

		var params P
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil && !errors.Is(err, io.EOF) {
			logger.Debug("invalid tool request body",
				zap.String("path", r.URL.Path),
				zap.Error(err),
			)
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		result := invoke(ctx, params)
		writeJSON(w, http.StatusOK, toolResponse{
			InvocationID: uuid.New().String(),
			Result:       result,
		})
	}
}

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "ynab-bridge",
		})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func toolMetricsHandler(metrics *observability.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, metrics.GetToolSnapshot())
	}
}
