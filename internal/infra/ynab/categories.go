package ynab

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"

	"go.opentelemetry.io/otel/attribute"
)

// --- Category API (implements port.CategoryAPI) ---

// ListCategoryGroups fetches the category graph: groups with their
// member categories nested.
func (c *Client) ListCategoryGroups(ctx context.Context, budgetID string) ([]domain.CategoryGroup, error) {
	ctx, span := tracer.Start(ctx, "YNAB.ListCategoryGroups")
	defer span.End()
	span.SetAttributes(attribute.String("budget.id", budgetID))

	var envelope struct {
		Data struct {
			CategoryGroups []domain.CategoryGroup `json:"category_groups"`
		} `json:"data"`
	}
	path := fmt.Sprintf("budgets/%s/categories", budgetID)
	if err := c.call(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return envelope.Data.CategoryGroups, nil
}

// GetCategory fetches a single category with goal fields.
func (c *Client) GetCategory(ctx context.Context, budgetID, categoryID string) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "YNAB.GetCategory")
	defer span.End()
	span.SetAttributes(
		attribute.String("budget.id", budgetID),
		attribute.String("category.id", categoryID),
	)

	var envelope struct {
		Data struct {
			Category domain.Category `json:"category"`
		} `json:"data"`
	}
	path := fmt.Sprintf("budgets/%s/categories/%s", budgetID, categoryID)
	if err := c.call(ctx, http.MethodGet, path, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.Category, nil
}

// UpdateMonthCategory sets a category's budgeted amount for one month.
func (c *Client) UpdateMonthCategory(ctx context.Context, budgetID, month, categoryID string, payload domain.SaveMonthCategory) (*domain.Category, error) {
	ctx, span := tracer.Start(ctx, "YNAB.UpdateMonthCategory")
	defer span.End()
	span.SetAttributes(
		attribute.String("budget.id", budgetID),
		attribute.String("category.id", categoryID),
		attribute.String("month", month),
	)

	body := struct {
		Category domain.SaveMonthCategory `json:"category"`
	}{Category: payload}

	var envelope struct {
		Data struct {
			Category domain.Category `json:"category"`
		} `json:"data"`
	}
	path := fmt.Sprintf("budgets/%s/months/%s/categories/%s", budgetID, month, categoryID)
	if err := c.call(ctx, http.MethodPatch, path, body, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data.Category, nil
}
