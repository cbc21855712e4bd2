package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
	"github.com/hmalcolm/ynab-bridge-go/internal/render"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

const memoMaxLength = 200

// requireID trims and validates a mandatory identifier field.
func requireID(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", &domain.ErrValidation{Field: field, Message: "must not be empty"}
	}
	return v, nil
}

// validDate checks an ISO date of the form YYYY-MM-DD.
func validDate(field, value string) error {
	if !dateRe.MatchString(value) {
		return &domain.ErrValidation{Field: field, Message: "must be an ISO date (YYYY-MM-DD)"}
	}
	return nil
}

// validOptionalDate is validDate for fields that may be omitted.
func validOptionalDate(field, value string) error {
	if value == "" {
		return nil
	}
	return validDate(field, value)
}

func validMemo(memo *string) error {
	if memo != nil && len(*memo) > memoMaxLength {
		return &domain.ErrValidation{
			Field:   "memo",
			Message: fmt.Sprintf("must be at most %d characters", memoMaxLength),
		}
	}
	return nil
}

// resolveFormat applies the per-tool default and validates the result.
func resolveFormat(f render.Format, fallback render.Format) (render.Format, error) {
	if f == "" {
		return fallback, nil
	}
	if !f.Valid() {
		return "", &domain.ErrValidation{
			Field:   "response_format",
			Message: "must be 'markdown' or 'json'",
		}
	}
	return f, nil
}

// GetBudgetsParams lists all budgets.
type GetBudgetsParams struct {
	IncludeAccounts bool          `json:"include_accounts"`
	ResponseFormat  render.Format `json:"response_format"`
}

// GetBudgetSummaryParams fetches the curated budget overview.
type GetBudgetSummaryParams struct {
	BudgetID       string        `json:"budget_id"`
	ResponseFormat render.Format `json:"response_format"`
}

// GetAccountsParams lists a budget's accounts.
type GetAccountsParams struct {
	BudgetID       string        `json:"budget_id"`
	ResponseFormat render.Format `json:"response_format"`
}

// GetAccountParams fetches a single account.
type GetAccountParams struct {
	BudgetID       string        `json:"budget_id"`
	AccountID      string        `json:"account_id"`
	ResponseFormat render.Format `json:"response_format"`
}

// GetCategoriesParams lists the category graph.
type GetCategoriesParams struct {
	BudgetID       string        `json:"budget_id"`
	ResponseFormat render.Format `json:"response_format"`
}

// GetCategoryParams fetches a single category.
type GetCategoryParams struct {
	BudgetID       string        `json:"budget_id"`
	CategoryID     string        `json:"category_id"`
	ResponseFormat render.Format `json:"response_format"`
}

// UpdateCategoryBudgetParams sets one month's budgeted amount.
// Exactly one of the embedded amount fields must be present.
type UpdateCategoryBudgetParams struct {
	BudgetID   string `json:"budget_id"`
	CategoryID string `json:"category_id"`
	Month      string `json:"month"`
	domain.AmountInput
}

// GetPayeesParams lists a budget's payees.
type GetPayeesParams struct {
	BudgetID       string        `json:"budget_id"`
	ResponseFormat render.Format `json:"response_format"`
}

// GetTransactionsParams filters transactions by at most one entity and
// an optional since date. OutputToFile defaults to true; results are
// only returned inline when the caller opts out and the result fits.
type GetTransactionsParams struct {
	BudgetID     string `json:"budget_id"`
	AccountID    string `json:"account_id,omitempty"`
	CategoryID   string `json:"category_id,omitempty"`
	PayeeID      string `json:"payee_id,omitempty"`
	SinceDate    string `json:"since_date,omitempty"`
	OutputToFile *bool  `json:"output_to_file,omitempty"`
	OutputPath   string `json:"output_path,omitempty"`
	SummaryOnly  bool   `json:"summary_only,omitempty"`
}

// GetTransactionParams fetches a single transaction.
type GetTransactionParams struct {
	BudgetID      string `json:"budget_id"`
	TransactionID string `json:"transaction_id"`
}

// CreateTransactionParams creates a transaction. Exactly one of the
// embedded amount fields must be present.
type CreateTransactionParams struct {
	BudgetID   string  `json:"budget_id"`
	AccountID  string  `json:"account_id"`
	Date       string  `json:"date"`
	PayeeID    *string `json:"payee_id,omitempty"`
	PayeeName  *string `json:"payee_name,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	Memo       *string `json:"memo,omitempty"`
	Cleared    string  `json:"cleared,omitempty"`
	Approved   *bool   `json:"approved,omitempty"`
	domain.AmountInput
}

// UpdateTransactionParams patches a transaction. At most one of the
// embedded amount fields may be present; nil fields are left unchanged.
type UpdateTransactionParams struct {
	BudgetID      string  `json:"budget_id"`
	TransactionID string  `json:"transaction_id"`
	AccountID     *string `json:"account_id,omitempty"`
	Date          *string `json:"date,omitempty"`
	PayeeID       *string `json:"payee_id,omitempty"`
	PayeeName     *string `json:"payee_name,omitempty"`
	CategoryID    *string `json:"category_id,omitempty"`
	Memo          *string `json:"memo,omitempty"`
	Cleared       *string `json:"cleared,omitempty"`
	Approved      *bool   `json:"approved,omitempty"`
	domain.AmountInput
}

// SearchTransactionsParams searches payee names and memos.
type SearchTransactionsParams struct {
	BudgetID     string `json:"budget_id"`
	Query        string `json:"query"`
	SinceDate    string `json:"since_date,omitempty"`
	OutputToFile *bool  `json:"output_to_file,omitempty"`
	OutputPath   string `json:"output_path,omitempty"`
	SummaryOnly  bool   `json:"summary_only,omitempty"`
}

// GetMonthBudgetParams fetches one month's budget.
type GetMonthBudgetParams struct {
	BudgetID       string        `json:"budget_id"`
	Month          string        `json:"month"`
	ResponseFormat render.Format `json:"response_format"`
}

// GetScheduledTransactionsParams lists scheduled transactions.
type GetScheduledTransactionsParams struct {
	BudgetID       string        `json:"budget_id"`
	ResponseFormat render.Format `json:"response_format"`
}

// CreateScheduledTransactionParams creates a recurring transaction.
// Exactly one of the embedded amount fields must be present.
type CreateScheduledTransactionParams struct {
	BudgetID   string  `json:"budget_id"`
	AccountID  string  `json:"account_id"`
	DateFirst  string  `json:"date_first"`
	Frequency  string  `json:"frequency"`
	PayeeID    *string `json:"payee_id,omitempty"`
	PayeeName  *string `json:"payee_name,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	Memo       *string `json:"memo,omitempty"`
	domain.AmountInput
}

// GetBudgetOverviewParams assembles accounts, categories, and one month
// into a single curated report.
type GetBudgetOverviewParams struct {
	BudgetID       string        `json:"budget_id"`
	Month          string        `json:"month,omitempty"`
	IncludeHidden  bool          `json:"include_hidden,omitempty"`
	ResponseFormat render.Format `json:"response_format"`
}
