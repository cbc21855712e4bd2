package domain

// CurrencyFormat describes how the budget's currency is displayed.
// Passed through untouched; the bridge always formats in its own
// milliunit convention.
type CurrencyFormat struct {
	ISOCode          string `json:"iso_code"`
	ExampleFormat    string `json:"example_format"`
	DecimalDigits    int    `json:"decimal_digits"`
	DecimalSeparator string `json:"decimal_separator"`
	SymbolFirst      bool   `json:"symbol_first"`
	GroupSeparator   string `json:"group_separator"`
	CurrencySymbol   string `json:"currency_symbol"`
	DisplaySymbol    bool   `json:"display_symbol"`
}

// Budget is a budget summary row from the budget list endpoint.
type Budget struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn *string         `json:"last_modified_on"`
	FirstMonth     string          `json:"first_month,omitempty"`
	LastMonth      string          `json:"last_month,omitempty"`
	CurrencyFormat *CurrencyFormat `json:"currency_format"`
	Accounts       []Account       `json:"accounts,omitempty"`
}

// BudgetView is a budget list row with transformed accounts.
type BudgetView struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn *string         `json:"last_modified_on"`
	FirstMonth     string          `json:"first_month,omitempty"`
	LastMonth      string          `json:"last_month,omitempty"`
	CurrencyFormat *CurrencyFormat `json:"currency_format"`
	Accounts       []AccountView   `json:"accounts,omitempty"`
}

// BudgetDetail is the full single-budget payload: accounts plus the
// category graph (groups and flat categories).
type BudgetDetail struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	LastModifiedOn *string         `json:"last_modified_on"`
	CurrencyFormat *CurrencyFormat `json:"currency_format"`
	Accounts       []Account       `json:"accounts"`
	CategoryGroups []CategoryGroup `json:"category_groups"`
	Categories     []Category      `json:"categories"`
}

// BudgetSummaryGroup is one category group in the curated budget summary,
// carrying only the member category names.
type BudgetSummaryGroup struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Hidden     bool     `json:"hidden"`
	Categories []string `json:"categories"`
}

// BudgetSummary is the curated overview of one budget.
type BudgetSummary struct {
	ID             string               `json:"id"`
	Name           string               `json:"name"`
	LastModifiedOn *string              `json:"last_modified_on"`
	CurrencyFormat *CurrencyFormat      `json:"currency_format"`
	Accounts       []AccountView        `json:"accounts"`
	CategoryGroups []BudgetSummaryGroup `json:"category_groups"`
}
