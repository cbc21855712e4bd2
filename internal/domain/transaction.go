package domain

// Transaction is a budget transaction as returned by the upstream API.
// Amount is in milliunits; negative is outflow, positive inflow.
type Transaction struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"`
	Amount            *int64  `json:"amount"`
	Memo              *string `json:"memo"`
	Cleared           string  `json:"cleared"`
	Approved          bool    `json:"approved"`
	FlagColor         *string `json:"flag_color"`
	AccountID         string  `json:"account_id"`
	AccountName       string  `json:"account_name,omitempty"`
	PayeeID           *string `json:"payee_id"`
	PayeeName         *string `json:"payee_name"`
	CategoryID        *string `json:"category_id"`
	CategoryName      *string `json:"category_name"`
	TransferAccountID *string `json:"transfer_account_id"`
	ImportID          *string `json:"import_id"`
	Deleted           bool    `json:"deleted"`
}

// TransactionView is the transformed transaction.
type TransactionView struct {
	ID                string  `json:"id"`
	Date              string  `json:"date"`
	Amount            *string `json:"amount"`
	AmountMilliunits  *int64  `json:"amount_milliunits,omitempty"`
	Memo              *string `json:"memo"`
	Cleared           string  `json:"cleared"`
	Approved          bool    `json:"approved"`
	FlagColor         *string `json:"flag_color"`
	AccountID         string  `json:"account_id"`
	AccountName       string  `json:"account_name,omitempty"`
	PayeeID           *string `json:"payee_id"`
	PayeeName         *string `json:"payee_name"`
	CategoryID        *string `json:"category_id"`
	CategoryName      *string `json:"category_name"`
	TransferAccountID *string `json:"transfer_account_id"`
	ImportID          *string `json:"import_id"`
	Deleted           bool    `json:"deleted"`
}

// NewTransaction is the creation payload sent upstream.
type NewTransaction struct {
	AccountID  string  `json:"account_id"`
	Date       string  `json:"date"`
	Amount     int64   `json:"amount"`
	PayeeID    *string `json:"payee_id,omitempty"`
	PayeeName  *string `json:"payee_name,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	Memo       *string `json:"memo,omitempty"`
	Cleared    string  `json:"cleared,omitempty"`
	Approved   bool    `json:"approved"`
}

// TransactionPatch is a partial update; nil fields are left unchanged.
type TransactionPatch struct {
	AccountID  *string `json:"account_id,omitempty"`
	Date       *string `json:"date,omitempty"`
	Amount     *int64  `json:"amount,omitempty"`
	PayeeID    *string `json:"payee_id,omitempty"`
	PayeeName  *string `json:"payee_name,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	Memo       *string `json:"memo,omitempty"`
	Cleared    *string `json:"cleared,omitempty"`
	Approved   *bool   `json:"approved,omitempty"`
}

// ScheduledTransaction is a recurring transaction template.
type ScheduledTransaction struct {
	ID           string  `json:"id"`
	DateFirst    string  `json:"date_first"`
	DateNext     string  `json:"date_next"`
	Frequency    string  `json:"frequency"`
	Amount       *int64  `json:"amount"`
	Memo         *string `json:"memo"`
	FlagColor    *string `json:"flag_color"`
	AccountID    string  `json:"account_id"`
	AccountName  string  `json:"account_name,omitempty"`
	PayeeID      *string `json:"payee_id"`
	PayeeName    *string `json:"payee_name"`
	CategoryID   *string `json:"category_id"`
	CategoryName *string `json:"category_name"`
	Deleted      bool    `json:"deleted"`
}

// ScheduledTransactionView is the transformed scheduled transaction.
type ScheduledTransactionView struct {
	ID               string  `json:"id"`
	DateFirst        string  `json:"date_first"`
	DateNext         string  `json:"date_next"`
	Frequency        string  `json:"frequency"`
	Amount           *string `json:"amount"`
	AmountMilliunits *int64  `json:"amount_milliunits,omitempty"`
	Memo             *string `json:"memo"`
	FlagColor        *string `json:"flag_color"`
	AccountID        string  `json:"account_id"`
	AccountName      string  `json:"account_name,omitempty"`
	PayeeID          *string `json:"payee_id"`
	PayeeName        *string `json:"payee_name"`
	CategoryID       *string `json:"category_id"`
	CategoryName     *string `json:"category_name"`
	Deleted          bool    `json:"deleted"`
}

// NewScheduledTransaction is the creation payload for a scheduled transaction.
type NewScheduledTransaction struct {
	AccountID  string  `json:"account_id"`
	Date       string  `json:"date"`
	Frequency  string  `json:"frequency"`
	Amount     int64   `json:"amount"`
	PayeeID    *string `json:"payee_id,omitempty"`
	PayeeName  *string `json:"payee_name,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	Memo       *string `json:"memo,omitempty"`
}
