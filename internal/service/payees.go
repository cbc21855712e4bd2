package service

import (
	"context"

	"github.com/hmalcolm/ynab-bridge-go/internal/render"
)

// GetPayees lists all payees in a budget. Payees carry no monetary
// fields and pass through untransformed.
func (t *Tools) GetPayees(ctx context.Context, p GetPayeesParams) string {
	return t.run(ctx, "ynab_get_payees", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		format, err := resolveFormat(p.ResponseFormat, render.FormatMarkdown)
		if err != nil {
			return "", err
		}

		payees, err := t.api.ListPayees(ctx, budgetID)
		if err != nil {
			return "", err
		}

		if format == render.FormatMarkdown {
			return render.Payees(payees), nil
		}
		return render.JSON(payees)
	})
}
