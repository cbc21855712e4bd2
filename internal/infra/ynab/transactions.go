package ynab

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// --- Transaction API (implements port.TransactionAPI) ---

// transactionsEnvelope is shared by every list endpoint.
type transactionsEnvelope struct {
	Data struct {
		Transactions []domain.Transaction `json:"transactions"`
	} `json:"data"`
}

// transactionEnvelope wraps single-transaction responses.
type transactionEnvelope struct {
	Data struct {
		Transaction domain.Transaction `json:"transaction"`
	} `json:"data"`
}

func withSinceDate(path, sinceDate string) string {
	if sinceDate == "" {
		return path
	}
	return path + "?since_date=" + url.QueryEscape(sinceDate)
}

func (c *Client) listTransactions(ctx context.Context, path string) ([]domain.Transaction, error) {
	var envelope transactionsEnvelope
	if err := c.call(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Transactions, nil
}

// ListTransactions fetches all transactions in a budget, optionally
// bounded by a since date.
func (c *Client) ListTransactions(ctx context.Context, budgetID, sinceDate string) ([]domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "YNAB.ListTransactions")
	defer span.End()
	span.SetAttributes(attribute.String("budget.id", budgetID))

	path := withSinceDate(fmt.Sprintf("budgets/%s/transactions", budgetID), sinceDate)
	return c.listTransactions(ctx, path)
}

// ListTransactionsByAccount fetches transactions for one account.
func (c *Client) ListTransactionsByAccount(ctx context.Context, budgetID, accountID, sinceDate string) ([]domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "YNAB.ListTransactionsByAccount")
	defer span.End()
	span.SetAttributes(
		attribute.String("budget.id", budgetID),
		attribute.String("account.id", accountID),
	)

	path := withSinceDate(fmt.Sprintf("budgets/%s/accounts/%s/transactions", budgetID, accountID), sinceDate)
	return c.listTransactions(ctx, path)
}

// ListTransactionsByCategory fetches transactions for one category.
func (c *Client) ListTransactionsByCategory(ctx context.Context, budgetID, categoryID, sinceDate string) ([]domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "YNAB.ListTransactionsByCategory")
	defer span.End()
	span.SetAttributes(
		attribute.String("budget.id", budgetID),
		attribute.String("category.id", categoryID),
	)

	path := withSinceDate(fmt.Sprintf("budgets/%s/categories/%s/transactions", budgetID, categoryID), sinceDate)
	return c.listTransactions(ctx, path)
}

// ListTransactionsByPayee fetches transactions for one payee.
func (c *Client) ListTransactionsByPayee(ctx context.Context, budgetID, payeeID, sinceDate string) ([]domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "YNAB.ListTransactionsByPayee")
	defer span.End()
	span.SetAttributes(
		attribute.String("budget.id", budgetID),
		attribute.String("payee.id", payeeID),
	)

	path := withSinceDate(fmt.Sprintf("budgets/%s/payees/%s/transactions", budgetID, payeeID), sinceDate)
	return c.listTransactions(ctx, path)
}

// GetTransaction fetches a single transaction.
func (c *Client) GetTransaction(ctx context.Context, budgetID, transactionID string) (*domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "YNAB.GetTransaction")
	defer span.End()
	span.SetAttributes(
		attribute.String("budget.id", budgetID),
		attribute.String("transaction.id", transactionID),
	)

	var envelope transactionEnvelope
	path := fmt.Sprintf("budgets/%s/transactions/%s", budgetID, transactionID)
	if err := c.call(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.Transaction, nil
}

// CreateTransaction creates a transaction in a budget.
func (c *Client) CreateTransaction(ctx context.Context, budgetID string, txn domain.NewTransaction) (*domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "YNAB.CreateTransaction")
	defer span.End()
	span.SetAttributes(
		attribute.String("budget.id", budgetID),
		attribute.String("account.id", txn.AccountID),
	)

	body := struct {
		Transaction domain.NewTransaction `json:"transaction"`
	}{Transaction: txn}

	var envelope transactionEnvelope
	path := fmt.Sprintf("budgets/%s/transactions", budgetID)
	if err := c.call(ctx, http.MethodPost, path, body, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.Transaction, nil
}

// UpdateTransaction applies a partial update to an existing transaction.
func (c *Client) UpdateTransaction(ctx context.Context, budgetID, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error) {
	ctx, span := tracer.Start(ctx, "YNAB.UpdateTransaction")
	defer span.End()
	span.SetAttributes(
		attribute.String("budget.id", budgetID),
		attribute.String("transaction.id", transactionID),
	)

	body := struct {
		Transaction domain.TransactionPatch `json:"transaction"`
	}{Transaction: patch}

	var envelope transactionEnvelope
	path := fmt.Sprintf("budgets/%s/transactions/%s", budgetID, transactionID)
	if err := c.call(ctx, http.MethodPut, path, body, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.Transaction, nil
}
