package domain

import (
	"client-ledger/shared"
)

type AccountState int

const (
	Normal AccountState = iota
	Locked
)

func (s AccountState) String() string {
	if s == Locked {
		return "locked"
	}
	return "normal"
}

// ClientAccount is one client's ledger. Only AccountingSystem mutates it.
// Every id in disputed is also a key of transactions.
type ClientAccount struct {
	ClientID  shared.ClientID
	Available shared.Amount
	Held      shared.Amount
	State     AccountState
	Version   int

	transactions map[shared.TransactionID]Transaction
	disputed     map[shared.TransactionID]struct{}
}

func NewClientAccount(clientID shared.ClientID) *ClientAccount {
	return &ClientAccount{
		ClientID:     clientID,
		Available:    shared.ZeroAmount(),
		Held:         shared.ZeroAmount(),
		State:        Normal,
		transactions: make(map[shared.TransactionID]Transaction),
		disputed:     make(map[shared.TransactionID]struct{}),
	}
}

func (a *ClientAccount) isDisputed(id shared.TransactionID) bool {
	_, ok := a.disputed[id]
	return ok
}
