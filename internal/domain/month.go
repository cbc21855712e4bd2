package domain

// Month is one month's budget as returned by the upstream API.
type Month struct {
	Month        string     `json:"month"`
	Note         *string    `json:"note"`
	Income       *int64     `json:"income"`
	Budgeted     *int64     `json:"budgeted"`
	Activity     *int64     `json:"activity"`
	ToBeBudgeted *int64     `json:"to_be_budgeted"`
	AgeOfMoney   *int       `json:"age_of_money"`
	Deleted      bool       `json:"deleted"`
	Categories   []Category `json:"categories,omitempty"`
}

// MonthView is the transformed month. Its categories are transformed
// in place, preserving order.
type MonthView struct {
	Month                  string         `json:"month"`
	Note                   *string        `json:"note"`
	Income                 *string        `json:"income"`
	IncomeMilliunits       *int64         `json:"income_milliunits,omitempty"`
	Budgeted               *string        `json:"budgeted"`
	BudgetedMilliunits     *int64         `json:"budgeted_milliunits,omitempty"`
	Activity               *string        `json:"activity"`
	ActivityMilliunits     *int64         `json:"activity_milliunits,omitempty"`
	ToBeBudgeted           *string        `json:"to_be_budgeted"`
	ToBeBudgetedMilliunits *int64         `json:"to_be_budgeted_milliunits,omitempty"`
	AgeOfMoney             *int           `json:"age_of_money"`
	Deleted                bool           `json:"deleted"`
	Categories             []CategoryView `json:"categories,omitempty"`
}
