package app

import (
	"client-ledger/domain"
	"client-ledger/shared"
)

// ProcessCommand controls how a stream of operations is applied.
type ProcessCommand struct {
	// StopOnError ends processing at the first rejected operation.
	StopOnError bool
}

// ProcessResult summarizes one Process call.
type ProcessResult struct {
	Applied        int
	Rejected       int
	RejectedByKind map[domain.ErrorKind]int
}

// --- Query Structures (Input for Read Operations) ---

type GetHistoryQuery struct {
	ClientID shared.ClientID
	Limit    int
	Skip     int
}
