package service

import (
	"context"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
	"github.com/hmalcolm/ynab-bridge-go/internal/render"
	"github.com/hmalcolm/ynab-bridge-go/internal/transform"
)

// GetCategories lists all categories grouped by category group.
func (t *Tools) GetCategories(ctx context.Context, p GetCategoriesParams) string {
	return t.run(ctx, "ynab_get_categories", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		format, err := resolveFormat(p.ResponseFormat, render.FormatMarkdown)
		if err != nil {
			return "", err
		}

		groups, err := t.api.ListCategoryGroups(ctx, budgetID)
		if err != nil {
			return "", err
		}

		views := transform.CategoryGroups(groups)
		if format == render.FormatMarkdown {
			return render.CategoryGroups(views, false), nil
		}
		return render.JSON(views)
	})
}

// GetCategory fetches a single category with goal details. Defaults to
// JSON output.
func (t *Tools) GetCategory(ctx context.Context, p GetCategoryParams) string {
	return t.run(ctx, "ynab_get_category", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		categoryID, err := requireID("category_id", p.CategoryID)
		if err != nil {
			return "", err
		}
		format, err := resolveFormat(p.ResponseFormat, render.FormatJSON)
		if err != nil {
			return "", err
		}

		category, err := t.api.GetCategory(ctx, budgetID, categoryID)
		if err != nil {
			return "", err
		}

		view := transform.Category(*category)
		if format == render.FormatMarkdown {
			return render.Category(view), nil
		}
		return render.JSON(view)
	})
}

// UpdateCategoryBudget sets a category's budgeted amount for one month
// and returns the updated category.
func (t *Tools) UpdateCategoryBudget(ctx context.Context, p UpdateCategoryBudgetParams) string {
	return t.run(ctx, "ynab_update_category_budget", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		categoryID, err := requireID("category_id", p.CategoryID)
		if err != nil {
			return "", err
		}
		if err := validDate("month", p.Month); err != nil {
			return "", err
		}
		budgeted, err := p.ResolveExactlyOne()
		if err != nil {
			return "", err
		}

		category, err := t.api.UpdateMonthCategory(ctx, budgetID, p.Month, categoryID, domain.SaveMonthCategory{Budgeted: budgeted})
		if err != nil {
			return "", err
		}

		return render.JSON(struct {
			Success  bool                `json:"success"`
			Category domain.CategoryView `json:"category"`
		}{true, transform.Category(*category)})
	})
}
