package render

import (
	"fmt"
	"strings"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
)

// Markdown renderers produce the curated human-readable view: one heading
// per top-level entity with bulleted key facts. Hidden groups and
// categories are omitted unless includeHidden is set; the JSON view never
// omits them.

func orElse(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// Budgets renders the budget list.
func Budgets(budgets []domain.BudgetView, includeAccounts bool) string {
	var b strings.Builder
	b.WriteString("# Budgets\n\n")
	for _, bud := range budgets {
		fmt.Fprintf(&b, "## %s\n", bud.Name)
		fmt.Fprintf(&b, "- **ID**: `%s`\n", bud.ID)
		if bud.LastModifiedOn != nil {
			fmt.Fprintf(&b, "- **Last Modified**: %s\n", *bud.LastModifiedOn)
		}
		if includeAccounts && len(bud.Accounts) > 0 {
			b.WriteString("- **Accounts**:\n")
			for _, acc := range bud.Accounts {
				fmt.Fprintf(&b, "  - %s: %s\n", acc.Name, orElse(acc.Balance, "n/a"))
			}
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// BudgetSummary renders the curated single-budget overview.
func BudgetSummary(s domain.BudgetSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Budget: %s\n\n", s.Name)
	fmt.Fprintf(&b, "**ID**: `%s`\n", s.ID)
	if s.LastModifiedOn != nil {
		fmt.Fprintf(&b, "**Last Modified**: %s\n", *s.LastModifiedOn)
	}
	b.WriteString("\n## Accounts\n")
	for _, acc := range s.Accounts {
		status := ""
		if acc.Closed {
			status = " (closed)"
		}
		fmt.Fprintf(&b, "- **%s**%s: %s (cleared: %s)\n",
			acc.Name, status, orElse(acc.Balance, "n/a"), orElse(acc.ClearedBalance, "n/a"))
	}
	b.WriteString("\n## Category Groups\n")
	for _, g := range s.CategoryGroups {
		if g.Hidden {
			continue
		}
		fmt.Fprintf(&b, "### %s\n", g.Name)
		for _, name := range g.Categories {
			fmt.Fprintf(&b, "  - %s\n", name)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Accounts renders the account list.
func Accounts(accounts []domain.AccountView) string {
	var b strings.Builder
	b.WriteString("# Accounts\n\n")
	for _, acc := range accounts {
		status := ""
		if acc.Closed {
			status = " (closed)"
		}
		onBudget := "off-budget"
		if acc.OnBudget {
			onBudget = "on-budget"
		}
		fmt.Fprintf(&b, "## %s%s\n", acc.Name, status)
		fmt.Fprintf(&b, "- **ID**: `%s`\n", acc.ID)
		fmt.Fprintf(&b, "- **Type**: %s (%s)\n", acc.Type, onBudget)
		fmt.Fprintf(&b, "- **Balance**: %s\n", orElse(acc.Balance, "n/a"))
		fmt.Fprintf(&b, "- **Cleared**: %s\n", orElse(acc.ClearedBalance, "n/a"))
		fmt.Fprintf(&b, "- **Uncleared**: %s\n", orElse(acc.UnclearedBalance, "n/a"))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Account renders a single account.
func Account(acc domain.AccountView) string {
	yesNo := func(v bool) string {
		if v {
			return "Yes"
		}
		return "No"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", acc.Name)
	fmt.Fprintf(&b, "**ID**: `%s`\n", acc.ID)
	fmt.Fprintf(&b, "**Type**: %s\n", acc.Type)
	fmt.Fprintf(&b, "**On Budget**: %s\n", yesNo(acc.OnBudget))
	fmt.Fprintf(&b, "**Closed**: %s\n", yesNo(acc.Closed))
	b.WriteString("\n## Balances\n")
	fmt.Fprintf(&b, "- **Balance**: %s\n", orElse(acc.Balance, "n/a"))
	fmt.Fprintf(&b, "- **Cleared**: %s\n", orElse(acc.ClearedBalance, "n/a"))
	fmt.Fprintf(&b, "- **Uncleared**: %s", orElse(acc.UnclearedBalance, "n/a"))
	return b.String()
}

// CategoryGroups renders the grouped category list.
func CategoryGroups(groups []domain.CategoryGroupView, includeHidden bool) string {
	var b strings.Builder
	b.WriteString("# Categories\n\n")
	for _, g := range groups {
		if g.Hidden && !includeHidden {
			continue
		}
		fmt.Fprintf(&b, "## %s\n", g.Name)
		for _, cat := range g.Categories {
			if cat.Hidden && !includeHidden {
				continue
			}
			fmt.Fprintf(&b, "- **%s** (`%s`)\n", cat.Name, cat.ID)
			fmt.Fprintf(&b, "  - Budgeted: %s | Activity: %s | Balance: %s\n",
				orElse(cat.Budgeted, "n/a"), orElse(cat.Activity, "n/a"), orElse(cat.Balance, "n/a"))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Category renders a single category with its goal section when present.
func Category(cat domain.CategoryView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", cat.Name)
	fmt.Fprintf(&b, "**ID**: `%s`\n", cat.ID)
	fmt.Fprintf(&b, "**Budgeted**: %s\n", orElse(cat.Budgeted, "n/a"))
	fmt.Fprintf(&b, "**Activity**: %s\n", orElse(cat.Activity, "n/a"))
	fmt.Fprintf(&b, "**Balance**: %s\n", orElse(cat.Balance, "n/a"))
	if cat.GoalType != nil {
		b.WriteString("\n## Goal\n")
		fmt.Fprintf(&b, "- Type: %s\n", *cat.GoalType)
		if cat.GoalTarget != nil {
			fmt.Fprintf(&b, "- Target: %s\n", *cat.GoalTarget)
		}
		if cat.GoalPercentageComplete != nil {
			fmt.Fprintf(&b, "- Progress: %d%%\n", *cat.GoalPercentageComplete)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Month renders a month budget with its category allocations.
func Month(m domain.MonthView, includeHidden bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Budget: %s\n\n", m.Month)
	fmt.Fprintf(&b, "**Income**: %s\n", orElse(m.Income, "n/a"))
	fmt.Fprintf(&b, "**Budgeted**: %s\n", orElse(m.Budgeted, "n/a"))
	fmt.Fprintf(&b, "**Activity**: %s\n", orElse(m.Activity, "n/a"))
	fmt.Fprintf(&b, "**To Be Budgeted**: %s\n", orElse(m.ToBeBudgeted, "n/a"))
	if m.AgeOfMoney != nil {
		fmt.Fprintf(&b, "**Age of Money**: %d days\n", *m.AgeOfMoney)
	}
	b.WriteString("\n## Categories\n")
	for _, cat := range m.Categories {
		if cat.Hidden && !includeHidden {
			continue
		}
		fmt.Fprintf(&b, "### %s\n", cat.Name)
		fmt.Fprintf(&b, "- Budgeted: %s\n", orElse(cat.Budgeted, "n/a"))
		fmt.Fprintf(&b, "- Activity: %s\n", orElse(cat.Activity, "n/a"))
		fmt.Fprintf(&b, "- Balance: %s\n", orElse(cat.Balance, "n/a"))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Payees renders the payee list.
func Payees(payees []domain.Payee) string {
	var b strings.Builder
	b.WriteString("# Payees\n\n")
	for _, p := range payees {
		fmt.Fprintf(&b, "- **%s** (`%s`)\n", p.Name, p.ID)
	}
	return strings.TrimRight(b.String(), "\n")
}

// ScheduledTransactions renders the scheduled transaction list.
func ScheduledTransactions(txns []domain.ScheduledTransactionView) string {
	var b strings.Builder
	b.WriteString("# Scheduled Transactions\n\n")
	for _, t := range txns {
		fmt.Fprintf(&b, "## %s\n", orElse(t.PayeeName, "Unknown Payee"))
		fmt.Fprintf(&b, "- **ID**: `%s`\n", t.ID)
		fmt.Fprintf(&b, "- **Amount**: %s\n", orElse(t.Amount, "n/a"))
		fmt.Fprintf(&b, "- **Frequency**: %s\n", t.Frequency)
		fmt.Fprintf(&b, "- **Next Date**: %s\n", t.DateNext)
		if t.Memo != nil && *t.Memo != "" {
			fmt.Fprintf(&b, "- **Memo**: %s\n", *t.Memo)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Overview renders the combined budget overview: accounts, category
// groups and the month's headline numbers in one document.
func Overview(accounts []domain.AccountView, groups []domain.CategoryGroupView, m domain.MonthView, includeHidden bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Budget Overview: %s\n\n", m.Month)
	fmt.Fprintf(&b, "**Income**: %s | **Budgeted**: %s | **Activity**: %s | **To Be Budgeted**: %s\n",
		orElse(m.Income, "n/a"), orElse(m.Budgeted, "n/a"),
		orElse(m.Activity, "n/a"), orElse(m.ToBeBudgeted, "n/a"))
	b.WriteString("\n## Accounts\n")
	for _, acc := range accounts {
		if acc.Closed {
			continue
		}
		fmt.Fprintf(&b, "- **%s**: %s\n", acc.Name, orElse(acc.Balance, "n/a"))
	}
	b.WriteString("\n## Categories\n")
	for _, g := range groups {
		if g.Hidden && !includeHidden {
			continue
		}
		fmt.Fprintf(&b, "### %s\n", g.Name)
		for _, cat := range g.Categories {
			if cat.Hidden && !includeHidden {
				continue
			}
			fmt.Fprintf(&b, "- %s: %s budgeted, %s left\n",
				cat.Name, orElse(cat.Budgeted, "n/a"), orElse(cat.Balance, "n/a"))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
