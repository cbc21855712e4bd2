package service

import (
	"context"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
	"github.com/hmalcolm/ynab-bridge-go/internal/render"
	"github.com/hmalcolm/ynab-bridge-go/internal/transform"

	"golang.org/x/sync/errgroup"
)

// GetBudgets lists all budgets the caller has access to.
func (t *Tools) GetBudgets(ctx context.Context, p GetBudgetsParams) string {
	return t.run(ctx, "ynab_get_budgets", func(ctx context.Context) (string, error) {
		format, err := resolveFormat(p.ResponseFormat, render.FormatMarkdown)
		if err != nil {
			return "", err
		}

		budgets, err := t.api.ListBudgets(ctx, p.IncludeAccounts)
		if err != nil {
			return "", err
		}

		views := transform.Budgets(budgets)
		if format == render.FormatMarkdown {
			return render.Budgets(views, p.IncludeAccounts), nil
		}
		return render.JSON(views)
	})
}

// GetBudgetSummary returns the curated overview of one budget: accounts
// with balances plus category groups carrying member category names.
func (t *Tools) GetBudgetSummary(ctx context.Context, p GetBudgetSummaryParams) string {
	return t.run(ctx, "ynab_get_budget_summary", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		format, err := resolveFormat(p.ResponseFormat, render.FormatMarkdown)
		if err != nil {
			return "", err
		}

		budget, err := t.api.GetBudget(ctx, budgetID)
		if err != nil {
			return "", err
		}

		summary := buildBudgetSummary(budget)
		if format == render.FormatMarkdown {
			return render.BudgetSummary(summary), nil
		}
		return render.JSON(summary)
	})
}

// buildBudgetSummary folds the flat category list into its groups,
// keeping only the category names.
func buildBudgetSummary(budget *domain.BudgetDetail) domain.BudgetSummary {
	namesByGroup := make(map[string][]string)
	for _, cat := range budget.Categories {
		namesByGroup[cat.CategoryGroupID] = append(namesByGroup[cat.CategoryGroupID], cat.Name)
	}

	groups := make([]domain.BudgetSummaryGroup, 0, len(budget.CategoryGroups))
	for _, cg := range budget.CategoryGroups {
		names := namesByGroup[cg.ID]
		if names == nil {
			names = []string{}
		}
		groups = append(groups, domain.BudgetSummaryGroup{
			ID:         cg.ID,
			Name:       cg.Name,
			Hidden:     cg.Hidden,
			Categories: names,
		})
	}

	return domain.BudgetSummary{
		ID:             budget.ID,
		Name:           budget.Name,
		LastModifiedOn: budget.LastModifiedOn,
		CurrencyFormat: budget.CurrencyFormat,
		Accounts:       transform.Accounts(budget.Accounts),
		CategoryGroups: groups,
	}
}

// GetBudgetOverview assembles accounts, the category graph, and one
// month's budget into a single report. The three upstream reads run
// concurrently.
func (t *Tools) GetBudgetOverview(ctx context.Context, p GetBudgetOverviewParams) string {
	return t.run(ctx, "ynab_get_budget_overview", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		format, err := resolveFormat(p.ResponseFormat, render.FormatMarkdown)
		if err != nil {
			return "", err
		}
		monthArg := p.Month
		if monthArg == "" {
			monthArg = "current"
		}
		if monthArg != "current" {
			if err := validDate("month", monthArg); err != nil {
				return "", err
			}
		}

		var (
			accounts []domain.Account
			groups   []domain.CategoryGroup
			month    *domain.Month
		)

		g, gCtx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			accounts, err = t.api.ListAccounts(gCtx, budgetID)
			return err
		})
		g.Go(func() error {
			var err error
			groups, err = t.api.ListCategoryGroups(gCtx, budgetID)
			return err
		})
		g.Go(func() error {
			var err error
			month, err = t.api.GetMonth(gCtx, budgetID, monthArg)
			return err
		})
		if err := g.Wait(); err != nil {
			return "", err
		}

		accountViews := transform.Accounts(accounts)
		groupViews := transform.CategoryGroups(groups)
		monthView := transform.Month(*month)

		if format == render.FormatMarkdown {
			return render.Overview(accountViews, groupViews, monthView, p.IncludeHidden), nil
		}
		return render.JSON(struct {
			Accounts       []domain.AccountView       `json:"accounts"`
			CategoryGroups []domain.CategoryGroupView `json:"category_groups"`
			Month          domain.MonthView           `json:"month"`
		}{accountViews, groupViews, monthView})
	})
}
