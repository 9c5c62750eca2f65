package domain

import (
	"client-ledger/shared"
)

type TransactionKind int

const (
	Deposit TransactionKind = iota + 1
	Withdrawal
)

func (k TransactionKind) String() string {
	switch k {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	}
	return "unknown"
}

// Transaction is an accepted movement of money. It is never modified once created.
type Transaction struct {
	clientID shared.ClientID
	id       shared.TransactionID
	amount   shared.Amount
	kind     TransactionKind
}

func NewTransaction(clientID shared.ClientID, id shared.TransactionID, amount shared.Amount, kind TransactionKind) Transaction {
	return Transaction{clientID: clientID, id: id, amount: amount, kind: kind}
}

func (t Transaction) ClientID() shared.ClientID {
	return t.clientID
}

func (t Transaction) ID() shared.TransactionID {
	return t.id
}

func (t Transaction) Amount() shared.Amount {
	return t.amount
}

func (t Transaction) Kind() TransactionKind {
	return t.kind
}

// SignedAmount is the effect of the transaction on the available balance.
func (t Transaction) SignedAmount() shared.Amount {
	if t.kind == Withdrawal {
		return t.amount.Neg()
	}
	return t.amount
}
