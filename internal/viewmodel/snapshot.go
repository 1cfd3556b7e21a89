package viewmodel

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateWalletID = errors.New("duplicate wallet id")
	ErrDuplicateTokenID  = errors.New("duplicate token id")
	ErrNegativeBalance   = errors.New("negative wallet balance")
)

// Snapshot is the complete view model set handed over by the data layer
type Snapshot struct {
	Wallets []WalletViewModel `json:"wallets"`
	Tokens  []TokenViewModel  `json:"tokens"`
}

// Validate checks the hand-off guarantees: unique wallet ids, unique token
// ids and non-negative balances.
func (s Snapshot) Validate() error {
	walletIDs := make(map[int64]struct{}, len(s.Wallets))
	for _, w := range s.Wallets {
		if _, ok := walletIDs[w.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateWalletID, w.ID)
		}
		walletIDs[w.ID] = struct{}{}

		if w.Balance.IsNegative() {
			return fmt.Errorf("%w: wallet %d", ErrNegativeBalance, w.ID)
		}
	}

	tokenIDs := make(map[string]struct{}, len(s.Tokens))
	for _, t := range s.Tokens {
		if _, ok := tokenIDs[t.TokenID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateTokenID, t.TokenID)
		}
		tokenIDs[t.TokenID] = struct{}{}
	}

	return nil
}

// WalletIDs returns the wallet ids in sequence order
func (s Snapshot) WalletIDs() []int64 {
	ids := make([]int64, len(s.Wallets))
	for i, w := range s.Wallets {
		ids[i] = w.ID
	}
	return ids
}
