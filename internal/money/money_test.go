package money_test

import (
	"testing"

	"github.com/hmalcolm/ynab-bridge-go/internal/money"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		milliunits int64
		want       string
	}{
		{12340, "$12.34"},
		{-500, "-$0.50"},
		{0, "$0.00"},
		{1000, "$1.00"},
		{999, "$1.00"},       // 0.999 rounds up at two decimals
		{500, "$0.50"},
		{-12340, "-$12.34"},
		{1234567890, "$1,234,567.89"},
		{-1234567890, "-$1,234,567.89"},
		{1000000, "$1,000.00"},
		{999999, "$1,000.00"},
		{5, "$0.01"},  // half a cent rounds away from zero
		{-5, "-$0.01"},
		{4, "$0.00"},
	}

	for _, tc := range cases {
		if got := money.Format(tc.milliunits); got != tc.want {
			t.Errorf("Format(%d) = %q, want %q", tc.milliunits, got, tc.want)
		}
	}
}

func TestFormat_SignPrefix(t *testing.T) {
	for _, m := range []int64{-1, -999, -1000000007} {
		got := money.Format(m)
		if len(got) < 2 || got[:2] != "-$" {
			t.Errorf("Format(%d) = %q, want leading -$", m, got)
		}
	}
	for _, m := range []int64{0, 1, 999, 1000000007} {
		got := money.Format(m)
		if got[0] != '$' {
			t.Errorf("Format(%d) = %q, want leading $", m, got)
		}
	}
}

func TestFromDollars(t *testing.T) {
	cases := []struct {
		dollars float64
		want    int64
	}{
		{19.99, 19990},
		{5.0, 5000},
		{0, 0},
		{-42.5, -42500},
		{1.0049, 1004},   // truncates toward zero
		{-1.0049, -1004}, // truncation is symmetric
		{0.001, 1},
		{0.0009, 0},
	}

	for _, tc := range cases {
		if got := money.FromDollars(tc.dollars); got != tc.want {
			t.Errorf("FromDollars(%v) = %d, want %d", tc.dollars, got, tc.want)
		}
	}
}
