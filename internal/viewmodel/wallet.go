package viewmodel

import "github.com/shopspring/decimal"

// UnassignedTokenID marks a wallet that is not trading any token
const UnassignedTokenID int64 = 0

// WalletViewModel is a display-ready wallet record
type WalletViewModel struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Balance     decimal.Decimal `json:"balance"`
	EntryAmount decimal.Decimal `json:"entryAmount"`
	TokenID     int64           `json:"tokenId"`
}

// Assigned reports whether the wallet currently trades a token
func (w WalletViewModel) Assigned() bool {
	return w.TokenID != UnassignedTokenID
}

// FormattedBalance renders the balance with a currency prefix
func (w WalletViewModel) FormattedBalance() string {
	return "$" + w.Balance.StringFixed(2)
}

// FormattedEntryAmount renders the canonical entry amount
func (w WalletViewModel) FormattedEntryAmount() string {
	return w.EntryAmount.StringFixed(2)
}
