// Package transform converts raw entities into their dual-representation
// views: every non-null monetary field keeps its milliunit integer under a
// <field>_milliunits key and is replaced by a display string. Null fields
// stay null and get no milliunits key. The per-kind monetary field sets are
// fixed by the view struct definitions; there is no runtime field discovery.
package transform

import (
	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
	"github.com/hmalcolm/ynab-bridge-go/internal/money"
)

// display returns the display string for a nullable milliunit amount,
// or nil when the amount is null.
func display(v *int64) *string {
	if v == nil {
		return nil
	}
	s := money.Format(*v)
	return &s
}

// Account transforms balance, cleared_balance and uncleared_balance.
func Account(a domain.Account) domain.AccountView {
	return domain.AccountView{
		ID:                         a.ID,
		Name:                       a.Name,
		Type:                       a.Type,
		OnBudget:                   a.OnBudget,
		Closed:                     a.Closed,
		Note:                       a.Note,
		Balance:                    display(a.Balance),
		BalanceMilliunits:          a.Balance,
		ClearedBalance:             display(a.ClearedBalance),
		ClearedBalanceMilliunits:   a.ClearedBalance,
		UnclearedBalance:           display(a.UnclearedBalance),
		UnclearedBalanceMilliunits: a.UnclearedBalance,
		TransferPayeeID:            a.TransferPayeeID,
		Deleted:                    a.Deleted,
	}
}

// Accounts transforms a slice of accounts preserving order.
func Accounts(in []domain.Account) []domain.AccountView {
	out := make([]domain.AccountView, len(in))
	for i, a := range in {
		out[i] = Account(a)
	}
	return out
}

// Category transforms budgeted, activity, balance, goal_target and
// goal_overall_left.
func Category(c domain.Category) domain.CategoryView {
	return domain.CategoryView{
		ID:                        c.ID,
		CategoryGroupID:           c.CategoryGroupID,
		CategoryGroupName:         c.CategoryGroupName,
		Name:                      c.Name,
		Hidden:                    c.Hidden,
		Note:                      c.Note,
		Budgeted:                  display(c.Budgeted),
		BudgetedMilliunits:        c.Budgeted,
		Activity:                  display(c.Activity),
		ActivityMilliunits:        c.Activity,
		Balance:                   display(c.Balance),
		BalanceMilliunits:         c.Balance,
		GoalType:                  c.GoalType,
		GoalTarget:                display(c.GoalTarget),
		GoalTargetMilliunits:      c.GoalTarget,
		GoalPercentageComplete:    c.GoalPercentageComplete,
		GoalOverallLeft:           display(c.GoalOverallLeft),
		GoalOverallLeftMilliunits: c.GoalOverallLeft,
		Deleted:                   c.Deleted,
	}
}

// Categories transforms a slice of categories preserving order.
func Categories(in []domain.Category) []domain.CategoryView {
	out := make([]domain.CategoryView, len(in))
	for i, c := range in {
		out[i] = Category(c)
	}
	return out
}

// CategoryGroup transforms the group's member categories.
func CategoryGroup(g domain.CategoryGroup) domain.CategoryGroupView {
	return domain.CategoryGroupView{
		ID:         g.ID,
		Name:       g.Name,
		Hidden:     g.Hidden,
		Deleted:    g.Deleted,
		Categories: Categories(g.Categories),
	}
}

// CategoryGroups transforms a slice of category groups preserving order.
func CategoryGroups(in []domain.CategoryGroup) []domain.CategoryGroupView {
	out := make([]domain.CategoryGroupView, len(in))
	for i, g := range in {
		out[i] = CategoryGroup(g)
	}
	return out
}

// Transaction transforms the amount field.
func Transaction(t domain.Transaction) domain.TransactionView {
	return domain.TransactionView{
		ID:                t.ID,
		Date:              t.Date,
		Amount:            display(t.Amount),
		AmountMilliunits:  t.Amount,
		Memo:              t.Memo,
		Cleared:           t.Cleared,
		Approved:          t.Approved,
		FlagColor:         t.FlagColor,
		AccountID:         t.AccountID,
		AccountName:       t.AccountName,
		PayeeID:           t.PayeeID,
		PayeeName:         t.PayeeName,
		CategoryID:        t.CategoryID,
		CategoryName:      t.CategoryName,
		TransferAccountID: t.TransferAccountID,
		ImportID:          t.ImportID,
		Deleted:           t.Deleted,
	}
}

// Transactions transforms a slice of transactions preserving order.
func Transactions(in []domain.Transaction) []domain.TransactionView {
	out := make([]domain.TransactionView, len(in))
	for i, t := range in {
		out[i] = Transaction(t)
	}
	return out
}

// ScheduledTransaction transforms the amount field.
func ScheduledTransaction(t domain.ScheduledTransaction) domain.ScheduledTransactionView {
	return domain.ScheduledTransactionView{
		ID:               t.ID,
		DateFirst:        t.DateFirst,
		DateNext:         t.DateNext,
		Frequency:        t.Frequency,
		Amount:           display(t.Amount),
		AmountMilliunits: t.Amount,
		Memo:             t.Memo,
		FlagColor:        t.FlagColor,
		AccountID:        t.AccountID,
		AccountName:      t.AccountName,
		PayeeID:          t.PayeeID,
		PayeeName:        t.PayeeName,
		CategoryID:       t.CategoryID,
		CategoryName:     t.CategoryName,
		Deleted:          t.Deleted,
	}
}

// ScheduledTransactions transforms a slice preserving order.
func ScheduledTransactions(in []domain.ScheduledTransaction) []domain.ScheduledTransactionView {
	out := make([]domain.ScheduledTransactionView, len(in))
	for i, t := range in {
		out[i] = ScheduledTransaction(t)
	}
	return out
}

// Month transforms income, budgeted, activity and to_be_budgeted, and
// recurses into the month's categories in place, preserving order.
func Month(m domain.Month) domain.MonthView {
	return domain.MonthView{
		Month:                  m.Month,
		Note:                   m.Note,
		Income:                 display(m.Income),
		IncomeMilliunits:       m.Income,
		Budgeted:               display(m.Budgeted),
		BudgetedMilliunits:     m.Budgeted,
		Activity:               display(m.Activity),
		ActivityMilliunits:     m.Activity,
		ToBeBudgeted:           display(m.ToBeBudgeted),
		ToBeBudgetedMilliunits: m.ToBeBudgeted,
		AgeOfMoney:             m.AgeOfMoney,
		Deleted:                m.Deleted,
		Categories:             Categories(m.Categories),
	}
}

// Budget transforms a budget list row, including its accounts when the
// list was fetched with accounts included.
func Budget(b domain.Budget) domain.BudgetView {
	v := domain.BudgetView{
		ID:             b.ID,
		Name:           b.Name,
		LastModifiedOn: b.LastModifiedOn,
		FirstMonth:     b.FirstMonth,
		LastMonth:      b.LastMonth,
		CurrencyFormat: b.CurrencyFormat,
	}
	if len(b.Accounts) > 0 {
		v.Accounts = Accounts(b.Accounts)
	}
	return v
}

// Budgets transforms a slice of budget rows preserving order.
func Budgets(in []domain.Budget) []domain.BudgetView {
	out := make([]domain.BudgetView, len(in))
	for i, b := range in {
		out[i] = Budget(b)
	}
	return out
}
