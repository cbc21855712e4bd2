package ynab

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// --- Month API (implements port.MonthAPI) ---

// GetMonth fetches one month's budget. The month is either a date in
// ISO format (first of the month) or the literal "current".
func (c *Client) GetMonth(ctx context.Context, budgetID, month string) (*domain.Month, error) {
	ctx, span := tracer.Start(ctx, "YNAB.GetMonth")
	defer span.End()
	span.SetAttributes(
		attribute.String("budget.id", budgetID),
		attribute.String("month", month),
	)

	var envelope struct {
		Data struct {
			Month domain.Month `json:"month"`
		} `json:"data"`
	}
	path := fmt.Sprintf("budgets/%s/months/%s", budgetID, month)
	if err := c.call(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.Month, nil
}
