package ynab

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// --- Payee API (implements port.PayeeAPI) ---

// ListPayees fetches all payees in a budget. Payee lists change slowly,
// so they are cached per budget.
func (c *Client) ListPayees(ctx context.Context, budgetID string) ([]domain.Payee, error) {
	ctx, span := tracer.Start(ctx, "YNAB.ListPayees")
	defer span.End()
	span.SetAttributes(attribute.String("budget.id", budgetID))

	if payees, ok := c.payeeCache.Get(budgetID); ok {
		c.metrics.IncrCacheHit("payees")
		return payees, nil
	}
	c.metrics.IncrCacheMiss("payees")

	var envelope struct {
		Data struct {
			Payees []domain.Payee `json:"payees"`
		} `json:"data"`
	}
	path := fmt.Sprintf("budgets/%s/payees", budgetID)
	if err := c.call(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}

	c.payeeCache.Set(budgetID, envelope.Data.Payees)
	return envelope.Data.Payees, nil
}
