package ynab

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// --- Budget API (implements port.BudgetAPI) ---

// ListBudgets fetches all budgets. The plain list (without accounts) is
// cached; include_accounts responses are always fetched fresh.
func (c *Client) ListBudgets(ctx context.Context, includeAccounts bool) ([]domain.Budget, error) {
	ctx, span := tracer.Start(ctx, "YNAB.ListBudgets")
	defer span.End()
	span.SetAttributes(attribute.Bool("budgets.include_accounts", includeAccounts))

	const cacheKey = "budgets"
	if !includeAccounts {
		if budgets, ok := c.budgetCache.Get(cacheKey); ok {
			c.metrics.IncrCacheHit("budgets")
			return budgets, nil
		}
		c.metrics.IncrCacheMiss("budgets")
	}

	path := "budgets"
	if includeAccounts {
		path = "budgets?include_accounts=true"
	}

	var envelope struct {
		Data struct {
			Budgets []domain.Budget `json:"budgets"`
		} `json:"data"`
	}
	if err := c.call(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}

	if !includeAccounts {
		c.budgetCache.Set(cacheKey, envelope.Data.Budgets)
	}
	return envelope.Data.Budgets, nil
}

// GetBudget fetches one budget with its accounts and category graph.
func (c *Client) GetBudget(ctx context.Context, budgetID string) (*domain.BudgetDetail, error) {
	ctx, span := tracer.Start(ctx, "YNAB.GetBudget")
	defer span.End()
	span.SetAttributes(attribute.String("budget.id", budgetID))

	var envelope struct {
		Data struct {
			Budget domain.BudgetDetail `json:"budget"`
		} `json:"data"`
	}
	path := fmt.Sprintf("budgets/%s", budgetID)
	if err := c.call(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.Budget, nil
}
