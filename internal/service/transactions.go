package service

import (
	"context"
	"strings"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
	"github.com/hmalcolm/ynab-bridge-go/internal/money"
	"github.com/hmalcolm/ynab-bridge-go/internal/render"
	"github.com/hmalcolm/ynab-bridge-go/internal/spill"
	"github.com/hmalcolm/ynab-bridge-go/internal/transform"
)

// sumMilliunits totals the transformed amounts. Null amounts count as
// zero.
func sumMilliunits(txns []domain.TransactionView) int64 {
	var total int64
	for _, t := range txns {
		if t.AmountMilliunits != nil {
			total += *t.AmountMilliunits
		}
	}
	return total
}

// transactionSummary is the summary_only response shape.
type transactionSummary struct {
	Query           string `json:"query,omitempty"`
	Count           int    `json:"count"`
	TotalMilliunits int64  `json:"total_milliunits"`
	Total           string `json:"total"`
}

// GetTransactions fetches transactions with optional entity and date
// filters. Entity filters are applied in priority order: account, then
// category, then payee. Results default to file output.
func (t *Tools) GetTransactions(ctx context.Context, p GetTransactionsParams) string {
	return t.run(ctx, "ynab_get_transactions", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		if err := validOptionalDate("since_date", p.SinceDate); err != nil {
			return "", err
		}

		var raw []domain.Transaction
		switch {
		case p.AccountID != "":
			raw, err = t.api.ListTransactionsByAccount(ctx, budgetID, p.AccountID, p.SinceDate)
		case p.CategoryID != "":
			raw, err = t.api.ListTransactionsByCategory(ctx, budgetID, p.CategoryID, p.SinceDate)
		case p.PayeeID != "":
			raw, err = t.api.ListTransactionsByPayee(ctx, budgetID, p.PayeeID, p.SinceDate)
		default:
			raw, err = t.api.ListTransactions(ctx, budgetID, p.SinceDate)
		}
		if err != nil {
			return "", err
		}

		txns := transform.Transactions(raw)
		total := sumMilliunits(txns)

		if p.SummaryOnly {
			return render.JSON(transactionSummary{
				Count:           len(txns),
				TotalMilliunits: total,
				Total:           money.Format(total),
			})
		}

		doc := &spill.Document{
			Count:           len(txns),
			TotalMilliunits: total,
			Total:           money.Format(total),
			Transactions:    txns,
		}

		toFile := p.OutputToFile == nil || *p.OutputToFile
		return t.spill.MaybeSpill(doc, "transactions", toFile, p.OutputPath)
	})
}

// GetTransaction fetches a single transaction. Always JSON.
func (t *Tools) GetTransaction(ctx context.Context, p GetTransactionParams) string {
	return t.run(ctx, "ynab_get_transaction", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		transactionID, err := requireID("transaction_id", p.TransactionID)
		if err != nil {
			return "", err
		}

		txn, err := t.api.GetTransaction(ctx, budgetID, transactionID)
		if err != nil {
			return "", err
		}
		return render.JSON(transform.Transaction(*txn))
	})
}

// CreateTransaction creates a transaction. Exactly one amount field
// must be supplied; negative is outflow, positive inflow.
func (t *Tools) CreateTransaction(ctx context.Context, p CreateTransactionParams) string {
	return t.run(ctx, "ynab_create_transaction", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		accountID, err := requireID("account_id", p.AccountID)
		if err != nil {
			return "", err
		}
		if err := validDate("date", p.Date); err != nil {
			return "", err
		}
		if err := validMemo(p.Memo); err != nil {
			return "", err
		}
		amount, err := p.ResolveExactlyOne()
		if err != nil {
			return "", err
		}

		cleared := p.Cleared
		if cleared == "" {
			cleared = "uncleared"
		}
		approved := p.Approved == nil || *p.Approved

		txn, err := t.api.CreateTransaction(ctx, budgetID, domain.NewTransaction{
			AccountID:  accountID,
			Date:       p.Date,
			Amount:     amount,
			PayeeID:    p.PayeeID,
			PayeeName:  p.PayeeName,
			CategoryID: p.CategoryID,
			Memo:       p.Memo,
			Cleared:    cleared,
			Approved:   approved,
		})
		if err != nil {
			return "", err
		}

		return render.JSON(struct {
			Success     bool                   `json:"success"`
			Transaction domain.TransactionView `json:"transaction"`
		}{true, transform.Transaction(*txn)})
	})
}

// UpdateTransaction applies a partial update. Omitted fields are left
// unchanged; at most one amount field may be supplied.
func (t *Tools) UpdateTransaction(ctx context.Context, p UpdateTransactionParams) string {
	return t.run(ctx, "ynab_update_transaction", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		transactionID, err := requireID("transaction_id", p.TransactionID)
		if err != nil {
			return "", err
		}
		if p.Date != nil {
			if err := validDate("date", *p.Date); err != nil {
				return "", err
			}
		}
		if err := validMemo(p.Memo); err != nil {
			return "", err
		}
		amount, err := p.ResolveAtMostOne()
		if err != nil {
			return "", err
		}

		txn, err := t.api.UpdateTransaction(ctx, budgetID, transactionID, domain.TransactionPatch{
			AccountID:  p.AccountID,
			Date:       p.Date,
			Amount:     amount,
			PayeeID:    p.PayeeID,
			PayeeName:  p.PayeeName,
			CategoryID: p.CategoryID,
			Memo:       p.Memo,
			Cleared:    p.Cleared,
			Approved:   p.Approved,
		})
		if err != nil {
			return "", err
		}

		return render.JSON(struct {
			Success     bool                   `json:"success"`
			Transaction domain.TransactionView `json:"transaction"`
		}{true, transform.Transaction(*txn)})
	})
}

// SearchTransactions filters a budget's transactions by a
// case-insensitive substring match against payee name or memo.
func (t *Tools) SearchTransactions(ctx context.Context, p SearchTransactionsParams) string {
	return t.run(ctx, "ynab_search_transactions", func(ctx context.Context) (string, error) {
		budgetID, err := requireID("budget_id", p.BudgetID)
		if err != nil {
			return "", err
		}
		query, err := requireID("query", p.Query)
		if err != nil {
			return "", err
		}
		if err := validOptionalDate("since_date", p.SinceDate); err != nil {
			return "", err
		}

		raw, err := t.api.ListTransactions(ctx, budgetID, p.SinceDate)
		if err != nil {
			return "", err
		}

		needle := strings.ToLower(query)
		var matches []domain.TransactionView
		for _, txn := range raw {
			payee := ""
			if txn.PayeeName != nil {
				payee = strings.ToLower(*txn.PayeeName)
			}
			memo := ""
			if txn.Memo != nil {
				memo = strings.ToLower(*txn.Memo)
			}
			if strings.Contains(payee, needle) || strings.Contains(memo, needle) {
				matches = append(matches, transform.Transaction(txn))
			}
		}
		if matches == nil {
			matches = []domain.TransactionView{}
		}

		total := sumMilliunits(matches)

		if p.SummaryOnly {
			return render.JSON(transactionSummary{
				Query:           query,
				Count:           len(matches),
				TotalMilliunits: total,
				Total:           money.Format(total),
			})
		}

		doc := &spill.Document{
			Query:           query,
			Count:           len(matches),
			TotalMilliunits: total,
			Total:           money.Format(total),
			Transactions:    matches,
		}

		toFile := p.OutputToFile == nil || *p.OutputToFile
		return t.spill.MaybeSpill(doc, "search_transactions", toFile, p.OutputPath)
	})
}
