package domain

import "github.com/hmalcolm/ynab-bridge-go/internal/money"

// AmountInput is the request-side union of the two ways a caller can
// express a monetary amount. At most one field may be populated; which
// cardinality applies depends on the operation.
type AmountInput struct {
	Milliunits *int64   `json:"amount_milliunits,omitempty"`
	Dollars    *float64 `json:"amount_dollars,omitempty"`
}

const amountFields = "amount_milliunits, amount_dollars"

// ResolveExactlyOne returns the milliunit amount for creation-style
// operations, where exactly one of the two fields must be present.
func (a AmountInput) ResolveExactlyOne() (int64, error) {
	if (a.Milliunits != nil) == (a.Dollars != nil) {
		return 0, &ErrValidation{
			Field:   amountFields,
			Message: "provide exactly one of amount_milliunits or amount_dollars",
		}
	}
	if a.Milliunits != nil {
		return *a.Milliunits, nil
	}
	return money.FromDollars(*a.Dollars), nil
}

// ResolveAtMostOne returns the milliunit amount for partial updates,
// where the amount may be omitted entirely. A nil result means the
// caller did not supply an amount.
func (a AmountInput) ResolveAtMostOne() (*int64, error) {
	if a.Milliunits != nil && a.Dollars != nil {
		return nil, &ErrValidation{
			Field:   amountFields,
			Message: "provide at most one of amount_milliunits or amount_dollars",
		}
	}
	if a.Milliunits != nil {
		v := *a.Milliunits
		return &v, nil
	}
	if a.Dollars != nil {
		v := money.FromDollars(*a.Dollars)
		return &v, nil
	}
	return nil, nil
}
