package service

import (
	"context"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
	"github.com/hmalcolm/ynab-bridge-go/internal/render"
	"github.com/hmalcolm/ynab-bridge-go/internal/transform"
)

// GetScheduledTransactions lists all recurring transactions.
func (t *Tools) GetScheduledTransactions(ctx context.Context, p GetScheduledTransactionsParams) string {
	return t.run(ctx, "ynab_get_scheduled_transactions", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		format, err := resolveFormat(p.ResponseFormat, render.FormatMarkdown)
		if err != nil {
			return "", err
		}

		txns, err := t.api.ListScheduledTransactions(ctx, budgetID)
		if err != nil {
			return "", err
		}

		views := transform.ScheduledTransactions(txns)
		if format == render.FormatMarkdown {
			return render.ScheduledTransactions(views), nil
		}
		return render.JSON(views)
	})
}

// CreateScheduledTransaction creates a recurring transaction template.
// Exactly one amount field must be supplied.
func (t *Tools) CreateScheduledTransaction(ctx context.Context, p CreateScheduledTransactionParams) string {
	return t.run(ctx, "ynab_create_scheduled_transaction", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		accountID, err := requireID("account_id", p.AccountID)
		if err != nil {
			return "", err
		}
		if err := validDate("date_first", p.DateFirst); err != nil {
			return "", err
		}
		if _, err := requireID("frequency", p.Frequency); err != nil {
			return "", err
		}
		if err := validMemo(p.Memo); err != nil {
			return "", err
		}
		amount, err := p.ResolveExactlyOne()
		if err != nil {
			return "", err
		}

		txn, err := t.api.CreateScheduledTransaction(ctx, budgetID, domain.NewScheduledTransaction{
			AccountID:  accountID,
			Date:       p.DateFirst,
			Frequency:  p.Frequency,
			Amount:     amount,
			PayeeID:    p.PayeeID,
			PayeeName:  p.PayeeName,
			CategoryID: p.CategoryID,
			Memo:       p.Memo,
		})
		if err != nil {
			return "", err
		}

		return render.JSON(struct {
			Success              bool                            `json:"success"`
			ScheduledTransaction domain.ScheduledTransactionView `json:"scheduled_transaction"`
		}{true, transform.ScheduledTransaction(*txn)})
	})
}
