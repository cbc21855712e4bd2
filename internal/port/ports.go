// Package port declares the interfaces between the service layer and its
// collaborators: the remote budgeting API and the cache.
package port

import (
	"context"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
)

// BudgetAPI reads budget-level data.
type BudgetAPI interface {
	ListBudgets(ctx context.Context, includeAccounts bool) ([]domain.Budget, error)
	GetBudget(ctx context.Context, budgetID string) (*domain.BudgetDetail, error)
}

// AccountAPI reads account data within a budget.
type AccountAPI interface {
	ListAccounts(ctx context.Context, budgetID string) ([]domain.Account, error)
	GetAccount(ctx context.Context, budgetID, accountID string) (*domain.Account, error)
}

// CategoryAPI reads and updates category data within a budget.
type CategoryAPI interface {
	ListCategoryGroups(ctx context.Context, budgetID string) ([]domain.CategoryGroup, error)
	GetCategory(ctx context.Context, budgetID, categoryID string) (*domain.Category, error)
	UpdateMonthCategory(ctx context.Context, budgetID, month, categoryID string, payload domain.SaveMonthCategory) (*domain.Category, error)
}

// PayeeAPI reads payee data within a budget.
type PayeeAPI interface {
	ListPayees(ctx context.Context, budgetID string) ([]domain.Payee, error)
}

// TransactionAPI reads and writes transactions within a budget.
type TransactionAPI interface {
	ListTransactions(ctx context.Context, budgetID, sinceDate string) ([]domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, budgetID, accountID, sinceDate string) ([]domain.Transaction, error)
	ListTransactionsByCategory(ctx context.Context, budgetID, categoryID, sinceDate string) ([]domain.Transaction, error)
	ListTransactionsByPayee(ctx context.Context, budgetID, payeeID, sinceDate string) ([]domain.Transaction, error)
	GetTransaction(ctx context.Context, budgetID, transactionID string) (*domain.Transaction, error)
	CreateTransaction(ctx context.Context, budgetID string, txn domain.NewTransaction) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, budgetID, transactionID string, patch domain.TransactionPatch) (*domain.Transaction, error)
}

// MonthAPI reads month budgets.
type MonthAPI interface {
	GetMonth(ctx context.Context, budgetID, month string) (*domain.Month, error)
}

// ScheduledAPI reads and creates scheduled transactions.
type ScheduledAPI interface {
	ListScheduledTransactions(ctx context.Context, budgetID string) ([]domain.ScheduledTransaction, error)
	CreateScheduledTransaction(ctx context.Context, budgetID string, txn domain.NewScheduledTransaction) (*domain.ScheduledTransaction, error)
}

// BudgetStore is the full capability set the service layer consumes.
type BudgetStore interface {
	BudgetAPI
	AccountAPI
	CategoryAPI
	PayeeAPI
	TransactionAPI
	MonthAPI
	ScheduledAPI
}

// Cache is a generic TTL cache.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}
