package events

import (
	"client-ledger/shared"
)

// TransactionRecordedEvent marks an accepted deposit or withdrawal.
type TransactionRecordedEvent struct {
	BaseEvent
	TransactionID shared.TransactionID `json:"transactionId"`
	Kind          string               `json:"kind"`
	Amount        shared.Amount        `json:"amount"`
}

// The dispute family carries the signed amount of the referenced transaction,
// negative when the transaction is a withdrawal.

type DisputeOpenedEvent struct {
	BaseEvent
	TransactionID shared.TransactionID `json:"transactionId"`
	Amount        shared.Amount        `json:"amount"`
}

type DisputeResolvedEvent struct {
	BaseEvent
	TransactionID shared.TransactionID `json:"transactionId"`
	Amount        shared.Amount        `json:"amount"`
}

type ChargebackAppliedEvent struct {
	BaseEvent
	TransactionID shared.TransactionID `json:"transactionId"`
	Amount        shared.Amount        `json:"amount"`
}
