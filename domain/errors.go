package domain

import (
	"fmt"

	"client-ledger/shared"
)

type DomainError struct {
	message string
}

func NewDomainError(format string, args ...interface{}) *DomainError {
	return &DomainError{message: fmt.Sprintf(format, args...)}
}

func (e *DomainError) Error() string {
	return e.message
}

var (
	ErrAccountLocked              = NewDomainError("account locked")
	ErrInsufficientFunds          = NewDomainError("insufficient funds")
	ErrTransactionDoesNotExist    = NewDomainError("transaction does not exist")
	ErrDuplicateTransaction       = NewDomainError("duplicate transaction")
	ErrTransactionAlreadyDisputed = NewDomainError("transaction already disputed")
	ErrTransactionNotDisputed     = NewDomainError("transaction not disputed")
	ErrCrossClientTransaction     = NewDomainError("cross-client transaction")

	ErrAccountNotFound = NewDomainError("account not found")
)

// ErrorKind classifies a rejected operation.
type ErrorKind int

const (
	AccountLocked ErrorKind = iota + 1
	InsufficientFunds
	TransactionDoesNotExist
	DuplicateTransaction
	TransactionAlreadyDisputed
	TransactionNotDisputed
	CrossClientTransaction
)

var kindNames = map[ErrorKind]string{
	AccountLocked:              "AccountLocked",
	InsufficientFunds:          "InsufficientFunds",
	TransactionDoesNotExist:    "TransactionDoesNotExist",
	DuplicateTransaction:       "DuplicateTransaction",
	TransactionAlreadyDisputed: "TransactionAlreadyDisputed",
	TransactionNotDisputed:     "TransactionNotDisputed",
	CrossClientTransaction:     "CrossClientTransaction",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

func (k ErrorKind) sentinel() *DomainError {
	switch k {
	case AccountLocked:
		return ErrAccountLocked
	case InsufficientFunds:
		return ErrInsufficientFunds
	case TransactionDoesNotExist:
		return ErrTransactionDoesNotExist
	case DuplicateTransaction:
		return ErrDuplicateTransaction
	case TransactionAlreadyDisputed:
		return ErrTransactionAlreadyDisputed
	case TransactionNotDisputed:
		return ErrTransactionNotDisputed
	case CrossClientTransaction:
		return ErrCrossClientTransaction
	}
	return nil
}

// TransactionError is returned by AccountingSystem.RunOperation when an operation
// is rejected. ClientID is set for AccountLocked; TransactionID holds the cause id
// (InsufficientFunds, DuplicateTransaction) or the referenced id for the dispute family.
// It unwraps to the sentinel for its kind, so errors.Is(err, ErrAccountLocked) works.
type TransactionError struct {
	Kind          ErrorKind
	ClientID      shared.ClientID
	TransactionID shared.TransactionID
}

func (e *TransactionError) Error() string {
	switch e.Kind {
	case AccountLocked:
		return fmt.Sprintf("%s: client %d", e.Kind.sentinel(), e.ClientID)
	case InsufficientFunds, DuplicateTransaction:
		return fmt.Sprintf("%s: tx %d", e.Kind.sentinel(), e.TransactionID)
	case TransactionDoesNotExist, TransactionAlreadyDisputed, TransactionNotDisputed:
		return fmt.Sprintf("%s: ref %d", e.Kind.sentinel(), e.TransactionID)
	case CrossClientTransaction:
		return e.Kind.sentinel().Error()
	}
	return e.Kind.String()
}

func (e *TransactionError) Unwrap() error {
	if s := e.Kind.sentinel(); s != nil {
		return s
	}
	return nil
}

func errAccountLocked(clientID shared.ClientID) error {
	return &TransactionError{Kind: AccountLocked, ClientID: clientID}
}

func errInsufficientFunds(causeID shared.TransactionID) error {
	return &TransactionError{Kind: InsufficientFunds, TransactionID: causeID}
}

func errDuplicateTransaction(causeID shared.TransactionID) error {
	return &TransactionError{Kind: DuplicateTransaction, TransactionID: causeID}
}

func errTransactionDoesNotExist(refID shared.TransactionID) error {
	return &TransactionError{Kind: TransactionDoesNotExist, TransactionID: refID}
}

func errTransactionAlreadyDisputed(refID shared.TransactionID) error {
	return &TransactionError{Kind: TransactionAlreadyDisputed, TransactionID: refID}
}

func errTransactionNotDisputed(refID shared.TransactionID) error {
	return &TransactionError{Kind: TransactionNotDisputed, TransactionID: refID}
}

func errCrossClientTransaction() error {
	return &TransactionError{Kind: CrossClientTransaction}
}
