package app

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"sync"

	"go.uber.org/zap"

	"client-ledger/domain"
	"client-ledger/events"
	"client-ledger/store"
)

// LedgerService is the single writer in front of an AccountingSystem. Every
// operation runs under one exclusive lock, and accepted operations are
// appended to the journal.
type LedgerService struct {
	mu         sync.Mutex
	system     *domain.AccountingSystem
	eventStore store.EventStore
	logger     *zap.Logger
}

func NewLedgerService(es store.EventStore, logger *zap.Logger) (*LedgerService, error) {
	if es == nil {
		return nil, errors.New("event store must not be nil")
	}
	if logger == nil {
		return nil, errors.New("logger must not be nil")
	}
	return &LedgerService{
		system:     domain.NewAccountingSystem(),
		eventStore: es,
		logger:     logger,
	}, nil
}

// Apply runs one operation. Rejections come back as the *domain.TransactionError
// produced by the accounting system.
func (s *LedgerService) Apply(op domain.Operation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.apply(op)
}

func (s *LedgerService) apply(op domain.Operation) error {
	clientID := op.ClientID()
	expectedVersion := 0
	if snap, ok := s.system.Account(clientID); ok {
		expectedVersion = snap.Version
	}

	if err := s.system.RunOperation(op); err != nil {
		s.logger.Warn("operation rejected",
			zap.Uint16("client", uint16(clientID)),
			zap.String("op", op.Kind()),
			zap.Error(err))
		return err
	}

	changes := s.system.TakeChanges()
	if err := s.eventStore.SaveEvents(clientID, expectedVersion, changes); err != nil {
		s.logger.Error("failed to journal operation",
			zap.Uint16("client", uint16(clientID)),
			zap.String("op", op.Kind()),
			zap.Error(err))
		return fmt.Errorf("failed to save %d events for client %d: %w", len(changes), clientID, err)
	}

	s.logger.Debug("operation applied",
		zap.Uint16("client", uint16(clientID)),
		zap.String("op", op.Kind()),
		zap.Int("version", expectedVersion+len(changes)))
	return nil
}

// Process applies ops in order. With StopOnError the first rejection ends
// processing and is returned wrapped with its position in the stream.
// Otherwise rejections are counted and processing continues.
func (s *LedgerService) Process(ctx context.Context, ops iter.Seq[domain.Operation], cmd ProcessCommand) (ProcessResult, error) {
	result := ProcessResult{RejectedByKind: make(map[domain.ErrorKind]int)}

	s.mu.Lock()
	defer s.mu.Unlock()

	position := 0
	for op := range ops {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		position++

		err := s.apply(op)
		if err == nil {
			result.Applied++
			continue
		}

		var txErr *domain.TransactionError
		if !errors.As(err, &txErr) {
			return result, err
		}
		result.Rejected++
		result.RejectedByKind[txErr.Kind]++
		if cmd.StopOnError {
			return result, fmt.Errorf("operation %d (%s for client %d) rejected: %w", position, op.Kind(), op.ClientID(), err)
		}
	}

	s.logger.Info("operations processed",
		zap.Int("applied", result.Applied),
		zap.Int("rejected", result.Rejected))
	return result, nil
}

// Accounts returns a snapshot of every registered account.
func (s *LedgerService) Accounts() []domain.AccountSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshots := make([]domain.AccountSnapshot, 0, s.system.Len())
	for snap := range s.system.Accounts() {
		snapshots = append(snapshots, snap)
	}
	return snapshots
}

func (s *LedgerService) GetTransactionHistory(query GetHistoryQuery) ([]events.Event, error) {
	s.mu.Lock()
	_, registered := s.system.Account(query.ClientID)
	s.mu.Unlock()
	if !registered {
		return nil, fmt.Errorf("%w: cannot get history: client %d", domain.ErrAccountNotFound, query.ClientID)
	}

	history, err := s.eventStore.GetEvents(query.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event history for client %d: %w", query.ClientID, err)
	}

	totalEvents := len(history)
	start := query.Skip
	if start < 0 {
		start = 0
	}
	if start >= totalEvents {
		return []events.Event{}, nil
	}

	end := start + query.Limit
	if query.Limit <= 0 || end > totalEvents {
		end = totalEvents
	}

	return history[start:end], nil
}
