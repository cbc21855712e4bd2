package service

import (
	"context"

	"github.com/hmalcolm/ynab-bridge-go/internal/render"
	"github.com/hmalcolm/ynab-bridge-go/internal/transform"
)

// GetAccounts lists all accounts in a budget with balances.
func (t *Tools) GetAccounts(ctx context.Context, p GetAccountsParams) string {
	return t.run(ctx, "ynab_get_accounts", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		format, err := resolveFormat(p.ResponseFormat, render.FormatMarkdown)
		if err != nil {
			return "", err
		}

		accounts, err := t.api.ListAccounts(ctx, budgetID)
		if err != nil {
			return "", err
		}

		views := transform.Accounts(accounts)
		if format == render.FormatMarkdown {
			return render.Accounts(views), nil
		}
		return render.JSON(views)
	})
}

// GetAccount fetches a single account. Defaults to JSON output.
func (t *Tools) GetAccount(ctx context.Context, p GetAccountParams) string {
	return t.run(ctx, "ynab_get_account", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		accountID, err := requireID("account_id", p.AccountID)
		if err != nil {
			return "", err
		}
		format, err := resolveFormat(p.ResponseFormat, render.FormatJSON)
		if err != nil {
			return "", err
		}

		account, err := t.api.GetAccount(ctx, budgetID, accountID)
		if err != nil {
			return "", err
		}

		view := transform.Account(*account)
		if format == render.FormatMarkdown {
			return render.Account(view), nil
		}
		return render.JSON(view)
	})
}
