package domain

import (
	"client-ledger/shared"
)

// AccountSnapshot is a read-only copy of a ClientAccount's balances and state.
type AccountSnapshot struct {
	ClientID  shared.ClientID
	Available shared.Amount
	Held      shared.Amount
	State     AccountState
	Version   int
}

func CreateSnapshot(account *ClientAccount) AccountSnapshot {
	return AccountSnapshot{
		ClientID:  account.ClientID,
		Available: account.Available,
		Held:      account.Held,
		State:     account.State,
		Version:   account.Version,
	}
}

// Total is never stored; it is always derived from available and held.
func (s AccountSnapshot) Total() shared.Amount {
	return s.Available.Add(s.Held)
}

func (s AccountSnapshot) Locked() bool {
	return s.State == Locked
}
