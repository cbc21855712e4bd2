package service

import (
	"context"

	"github.com/hmalcolm/ynab-bridge-go/internal/render"
	"github.com/hmalcolm/ynab-bridge-go/internal/transform"
)

// GetMonthBudget fetches one month's budget with per-category
// allocations and activity.
func (t *Tools) GetMonthBudget(ctx context.Context, p GetMonthBudgetParams) string {
	return t.run(ctx, "ynab_get_month_budget", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		if err := validDate("month", p.Month); err != nil {
			return "", err
		}
		format, err := resolveFormat(p.ResponseFormat, render.FormatMarkdown)
		if err != nil {
			return "", err
		}

		month, err := t.api.GetMonth(ctx, budgetID, p.Month)
		if err != nil {
			return "", err
		}

		view := transform.Month(*month)
		if format == render.FormatMarkdown {
			return render.Month(view, false), nil
		}
		return render.JSON(view)
	})
}
