package domain

// Account is a budget account as returned by the upstream API.
// Monetary fields are milliunit integers; pointers distinguish null
// values from zero balances.
type Account struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Type             string  `json:"type"`
	OnBudget         bool    `json:"on_budget"`
	Closed           bool    `json:"closed"`
	Note             *string `json:"note"`
	Balance          *int64  `json:"balance"`
	ClearedBalance   *int64  `json:"cleared_balance"`
	UnclearedBalance *int64  `json:"uncleared_balance"`
	TransferPayeeID  *string `json:"transfer_payee_id,omitempty"`
	Deleted          bool    `json:"deleted"`
}

// AccountView is the transformed account: each monetary field becomes
// a display string plus a <field>_milliunits duplicate. A field that was
// null upstream stays null and gets no milliunits key.
type AccountView struct {
	ID                         string  `json:"id"`
	Name                       string  `json:"name"`
	Type                       string  `json:"type"`
	OnBudget                   bool    `json:"on_budget"`
	Closed                     bool    `json:"closed"`
	Note                       *string `json:"note"`
	Balance                    *string `json:"balance"`
	BalanceMilliunits          *int64  `json:"balance_milliunits,omitempty"`
	ClearedBalance             *string `json:"cleared_balance"`
	ClearedBalanceMilliunits   *int64  `json:"cleared_balance_milliunits,omitempty"`
	UnclearedBalance           *string `json:"uncleared_balance"`
	UnclearedBalanceMilliunits *int64  `json:"uncleared_balance_milliunits,omitempty"`
	TransferPayeeID            *string `json:"transfer_payee_id,omitempty"`
	Deleted                    bool    `json:"deleted"`
}
