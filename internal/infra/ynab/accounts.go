package ynab

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// --- Account API (implements port.AccountAPI) ---

// ListAccounts fetches all accounts in a budget.
func (c *Client) ListAccounts(ctx context.Context, budgetID string) ([]domain.Account, error) {
	ctx, span := tracer.Start(ctx, "YNAB.ListAccounts")
	defer span.End()
	span.SetAttributes(attribute.String("budget.id", budgetID))

	var envelope struct {
		Data struct {
			Accounts []domain.Account `json:"accounts"`
		} `json:"data"`
	}
	path := fmt.Sprintf("budgets/%s/accounts", budgetID)
	if err := c.call(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.Accounts, nil
}

// GetAccount fetches a single account.
func (c *Client) GetAccount(ctx context.Context, budgetID, accountID string) (*domain.Account, error) {
	ctx, span := tracer.Start(ctx, "YNAB.GetAccount")
	defer span.End()
	span.SetAttributes(
		attribute.String("budget.id", budgetID),
		attribute.String("account.id", accountID),
	)

	var envelope struct {
		Data struct {
			Account domain.Account `json:"account"`
		} `json:"data"`
	}
	path := fmt.Sprintf("budgets/%s/accounts/%s", budgetID, accountID)
	if err := c.call(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.Account, nil
}
