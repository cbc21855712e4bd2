package ynab

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// --- Scheduled transaction API (implements port.ScheduledAPI) ---

// ListScheduledTransactions fetches all scheduled transactions.
func (c *Client) ListScheduledTransactions(ctx context.Context, budgetID string) ([]domain.ScheduledTransaction, error) {
	ctx, span := tracer.Start(ctx, "YNAB.ListScheduledTransactions")
	defer span.End()
	span.SetAttributes(attribute.String("budget.id", budgetID))

	var envelope struct {
		Data struct {
			ScheduledTransactions []domain.ScheduledTransaction `json:"scheduled_transactions"`
		} `json:"data"`
	}
	path := fmt.Sprintf("budgets/%s/scheduled_transactions", budgetID)
	if err := c.call(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.ScheduledTransactions, nil
}

// CreateScheduledTransaction creates a recurring transaction template.
func (c *Client) CreateScheduledTransaction(ctx context.Context, budgetID string, txn domain.NewScheduledTransaction) (*domain.ScheduledTransaction, error) {
	ctx, span := tracer.Start(ctx, "YNAB.CreateScheduledTransaction")
	defer span.End()
	span.SetAttributes(
		attribute.String("budget.id", budgetID),
		attribute.String("account.id", txn.AccountID),
	)

	body := struct {
		ScheduledTransaction domain.NewScheduledTransaction `json:"scheduled_transaction"`
	}{ScheduledTransaction: txn}

	var envelope struct {
		Data struct {
			ScheduledTransaction domain.ScheduledTransaction `json:"scheduled_transaction"`
		} `json:"data"`
	}
	path := fmt.Sprintf("budgets/%s/scheduled_transactions", budgetID)
	if err := c.call(ctx, http.MethodPost, path, body, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.ScheduledTransaction, nil
}
