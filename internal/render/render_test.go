package render_test

import (
	"strings"
	"testing"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
	"github.com/hmalcolm/ynab-bridge-go/internal/render"
	"github.com/hmalcolm/ynab-bridge-go/internal/transform"
)

func i64(v int64) *int64 { return &v }

func TestCategoryGroups_HidesHiddenByDefault(t *testing.T) {
	groups := transform.CategoryGroups([]domain.CategoryGroup{
		{
			ID: "g1", Name: "Bills",
			Categories: []domain.Category{
				{ID: "c1", Name: "Rent", Budgeted: i64(150000)},
				{ID: "c2", Name: "Old Sub", Hidden: true, Budgeted: i64(0)},
			},
		},
		{
			ID: "g2", Name: "Archive", Hidden: true,
			Categories: []domain.Category{
				{ID: "c3", Name: "Ancient", Budgeted: i64(0)},
			},
		},
	})

	md := render.CategoryGroups(groups, false)
	if !strings.Contains(md, "Rent") {
		t.Error("expected visible category in markdown")
	}
	if strings.Contains(md, "Old Sub") || strings.Contains(md, "Archive") {
		t.Errorf("hidden entities leaked into markdown:\n%s", md)
	}

	mdAll := render.CategoryGroups(groups, true)
	if !strings.Contains(mdAll, "Old Sub") || !strings.Contains(mdAll, "Archive") {
		t.Error("include_hidden should surface hidden entities")
	}
}

func TestJSON_NeverOmitsHidden(t *testing.T) {
	groups := transform.CategoryGroups([]domain.CategoryGroup{
		{ID: "g1", Name: "Archive", Hidden: true,
			Categories: []domain.Category{{ID: "c1", Name: "Ancient"}}},
	})

	doc, err := render.JSON(groups)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !strings.Contains(doc, "Archive") || !strings.Contains(doc, "Ancient") {
		t.Errorf("structured view must keep hidden entities:\n%s", doc)
	}
}

func TestAccounts_Markdown(t *testing.T) {
	accounts := transform.Accounts([]domain.Account{
		{
			ID: "a1", Name: "Checking", Type: "checking", OnBudget: true,
			Balance: i64(123450), ClearedBalance: i64(120000), UnclearedBalance: i64(3450),
		},
		{ID: "a2", Name: "Old CC", Type: "creditCard", Closed: true},
	})

	md := render.Accounts(accounts)
	for _, want := range []string{
		"# Accounts",
		"## Checking",
		"- **Balance**: $123.45",
		"- **Type**: checking (on-budget)",
		"## Old CC (closed)",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}
}

func TestCategory_GoalSectionOnlyWhenPresent(t *testing.T) {
	goalType := "TB"
	pct := 40

	with := transform.Category(domain.Category{
		ID: "c1", Name: "Vacation",
		Budgeted: i64(100000), GoalTarget: i64(250000),
		GoalType: &goalType, GoalPercentageComplete: &pct,
	})

	md := render.Category(with)
	if !strings.Contains(md, "## Goal") || !strings.Contains(md, "- Progress: 40%") {
		t.Errorf("expected goal section:\n%s", md)
	}

	without := transform.Category(domain.Category{ID: "c2", Name: "Misc", Budgeted: i64(5000)})
	if strings.Contains(render.Category(without), "## Goal") {
		t.Error("goal section rendered without a goal")
	}
}

func TestMonth_Markdown(t *testing.T) {
	age := 12
	m := transform.Month(domain.Month{
		Month:        "2024-03-01",
		Income:       i64(5000000),
		Budgeted:     i64(4800000),
		Activity:     i64(-3100000),
		ToBeBudgeted: i64(200000),
		AgeOfMoney:   &age,
		Categories: []domain.Category{
			{ID: "c1", Name: "Rent", Budgeted: i64(1500000), Balance: i64(0)},
			{ID: "c2", Name: "Hidden One", Hidden: true},
		},
	})

	md := render.Month(m, false)
	for _, want := range []string{
		"# Budget: 2024-03-01",
		"**Income**: $5,000.00",
		"**Age of Money**: 12 days",
		"### Rent",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("missing %q in:\n%s", want, md)
		}
	}
	if strings.Contains(md, "Hidden One") {
		t.Error("hidden category leaked into month markdown")
	}
}

func TestFormat_Valid(t *testing.T) {
	for _, f := range []render.Format{"", render.FormatMarkdown, render.FormatJSON} {
		if !f.Valid() {
			t.Errorf("%q should be valid", f)
		}
	}
	if render.Format("yaml").Valid() {
		t.Error("unknown format should be invalid")
	}
}
