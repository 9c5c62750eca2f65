package domain

import (
	"client-ledger/shared"
)

// Operation is one input record for the AccountingSystem. The set of
// implementations is closed: TransactionOp, Dispute, Resolve and Chargeback.
type Operation interface {
	ClientID() shared.ClientID
	Kind() string
	isOperation()
}

// TransactionOp carries a deposit or withdrawal.
type TransactionOp struct {
	Transaction Transaction
}

// Dispute, Resolve and Chargeback reference a previous transaction of the same client.

type Dispute struct {
	Client shared.ClientID
	Ref    shared.TransactionID
}

type Resolve struct {
	Client shared.ClientID
	Ref    shared.TransactionID
}

type Chargeback struct {
	Client shared.ClientID
	Ref    shared.TransactionID
}

func NewDeposit(clientID shared.ClientID, id shared.TransactionID, amount shared.Amount) TransactionOp {
	return TransactionOp{Transaction: NewTransaction(clientID, id, amount, Deposit)}
}

func NewWithdrawal(clientID shared.ClientID, id shared.TransactionID, amount shared.Amount) TransactionOp {
	return TransactionOp{Transaction: NewTransaction(clientID, id, amount, Withdrawal)}
}

func (o TransactionOp) ClientID() shared.ClientID { return o.Transaction.ClientID() }
func (o Dispute) ClientID() shared.ClientID       { return o.Client }
func (o Resolve) ClientID() shared.ClientID       { return o.Client }
func (o Chargeback) ClientID() shared.ClientID    { return o.Client }

func (o TransactionOp) Kind() string { return o.Transaction.Kind().String() }
func (Dispute) Kind() string         { return "dispute" }
func (Resolve) Kind() string         { return "resolve" }
func (Chargeback) Kind() string      { return "chargeback" }

func (TransactionOp) isOperation() {}
func (Dispute) isOperation()       {}
func (Resolve) isOperation()       {}
func (Chargeback) isOperation()    {}
