package domain

import (
	"fmt"
	"iter"

	"client-ledger/events"
	"client-ledger/shared"
)

// AccountingSystem owns every client account and the set of transaction ids seen so far.
// It is not safe for concurrent use; callers serialize access to it.
type AccountingSystem struct {
	accounts map[shared.ClientID]*ClientAccount
	seen     map[shared.TransactionID]struct{}

	changes []events.Event
}

func NewAccountingSystem() *AccountingSystem {
	return &AccountingSystem{
		accounts: make(map[shared.ClientID]*ClientAccount),
		seen:     make(map[shared.TransactionID]struct{}),
		changes:  make([]events.Event, 0),
	}
}

// RunOperation applies op to the ledger. The account named by op is registered
// before any validation, so even a rejected operation leaves it behind. A rejected
// operation returns a *TransactionError and changes nothing else.
func (s *AccountingSystem) RunOperation(op Operation) error {
	clientID := op.ClientID()

	account, ok := s.accounts[clientID]
	if !ok {
		account = NewClientAccount(clientID)
		s.accounts[clientID] = account
	}

	if account.State == Locked {
		return errAccountLocked(clientID)
	}

	switch o := op.(type) {
	case TransactionOp:
		return s.applyTransaction(account, o.Transaction)
	case Dispute:
		return s.applyDispute(account, o)
	case Resolve:
		return s.applyResolve(account, o)
	case Chargeback:
		return s.applyChargeback(account, o)
	default:
		return fmt.Errorf("run operation failed: unknown operation type %T for client %d", op, clientID)
	}
}

func (s *AccountingSystem) applyTransaction(account *ClientAccount, tx Transaction) error {
	candidate := account.Available.Add(tx.SignedAmount())
	if candidate.IsNegative() {
		return errInsufficientFunds(tx.ID())
	}
	if _, dup := s.seen[tx.ID()]; dup {
		return errDuplicateTransaction(tx.ID())
	}

	s.seen[tx.ID()] = struct{}{}
	account.transactions[tx.ID()] = tx
	account.Available = candidate

	s.record(account, events.TransactionRecordedType, func(base events.BaseEvent) events.Event {
		return events.TransactionRecordedEvent{
			BaseEvent:     base,
			TransactionID: tx.ID(),
			Kind:          tx.Kind().String(),
			Amount:        tx.Amount(),
		}
	})
	return nil
}

func (s *AccountingSystem) applyDispute(account *ClientAccount, op Dispute) error {
	tx, err := referredTransaction(account, op.Client, op.Ref)
	if err != nil {
		return err
	}
	if account.isDisputed(op.Ref) {
		return errTransactionAlreadyDisputed(op.Ref)
	}

	// For a withdrawal delta is negative: held goes down and available goes up.
	delta := tx.SignedAmount()
	account.disputed[op.Ref] = struct{}{}
	account.Held = account.Held.Add(delta)
	account.Available = account.Available.Sub(delta)

	s.record(account, events.DisputeOpenedType, func(base events.BaseEvent) events.Event {
		return events.DisputeOpenedEvent{BaseEvent: base, TransactionID: op.Ref, Amount: delta}
	})
	return nil
}

func (s *AccountingSystem) applyResolve(account *ClientAccount, op Resolve) error {
	tx, err := referredTransaction(account, op.Client, op.Ref)
	if err != nil {
		return err
	}
	if !account.isDisputed(op.Ref) {
		return errTransactionNotDisputed(op.Ref)
	}

	delta := tx.SignedAmount()
	delete(account.disputed, op.Ref)
	account.Held = account.Held.Sub(delta)
	account.Available = account.Available.Add(delta)

	s.record(account, events.DisputeResolvedType, func(base events.BaseEvent) events.Event {
		return events.DisputeResolvedEvent{BaseEvent: base, TransactionID: op.Ref, Amount: delta}
	})
	return nil
}

func (s *AccountingSystem) applyChargeback(account *ClientAccount, op Chargeback) error {
	tx, err := referredTransaction(account, op.Client, op.Ref)
	if err != nil {
		return err
	}
	if !account.isDisputed(op.Ref) {
		return errTransactionNotDisputed(op.Ref)
	}

	delta := tx.SignedAmount()
	delete(account.disputed, op.Ref)
	account.Held = account.Held.Sub(delta)
	account.State = Locked

	s.record(account, events.ChargebackAppliedType, func(base events.BaseEvent) events.Event {
		return events.ChargebackAppliedEvent{BaseEvent: base, TransactionID: op.Ref, Amount: delta}
	})
	return nil
}

// referredTransaction looks ref up in the account's own history only. The
// client comparison can therefore never fail today; it guards against a
// future change to a global lookup.
func referredTransaction(account *ClientAccount, clientID shared.ClientID, ref shared.TransactionID) (Transaction, error) {
	tx, ok := account.transactions[ref]
	if !ok {
		return Transaction{}, errTransactionDoesNotExist(ref)
	}
	if tx.ClientID() != clientID {
		return Transaction{}, errCrossClientTransaction()
	}
	return tx, nil
}

func (s *AccountingSystem) record(account *ClientAccount, eventType events.EventType, build func(events.BaseEvent) events.Event) {
	account.Version++
	s.changes = append(s.changes, build(events.NewBaseEvent(account.ClientID, account.Version, eventType)))
}

// TakeChanges returns the events recorded since the previous call and clears them.
func (s *AccountingSystem) TakeChanges() []events.Event {
	changes := s.changes
	s.changes = make([]events.Event, 0)
	return changes
}

// Accounts yields a snapshot of every registered account in no particular order.
func (s *AccountingSystem) Accounts() iter.Seq[AccountSnapshot] {
	return func(yield func(AccountSnapshot) bool) {
		for _, account := range s.accounts {
			if !yield(CreateSnapshot(account)) {
				return
			}
		}
	}
}

func (s *AccountingSystem) Account(clientID shared.ClientID) (AccountSnapshot, bool) {
	account, ok := s.accounts[clientID]
	if !ok {
		return AccountSnapshot{}, false
	}
	return CreateSnapshot(account), true
}

func (s *AccountingSystem) Len() int {
	return len(s.accounts)
}
